package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// Clients map these codes to their own messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthNameAlreadyExists  = "AUTH_NAME_EXISTS"
	AuthInvalidRole        = "AUTH_INVALID_ROLE"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationInvalidPrice = "VALIDATION_INVALID_PRICE"
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Shops (SHOP_) ====================
	ShopNotFound              = "SHOP_NOT_FOUND"
	ShopkeeperNotFound        = "SHOPKEEPER_NOT_FOUND"
	ShopkeeperAlreadyAssigned = "SHOPKEEPER_ALREADY_ASSIGNED"
	ShopkeeperAlreadyLinked   = "SHOPKEEPER_ALREADY_LINKED"
	CustomerNotFound          = "CUSTOMER_NOT_FOUND"
	CustomerAlreadyLinked     = "CUSTOMER_ALREADY_LINKED"

	// ==================== Products (PRODUCT_) ====================
	ProductNotFound     = "PRODUCT_NOT_FOUND"
	ProductInvalidPrice = "PRODUCT_INVALID_PRICE"
	ProductEmptyIDList  = "PRODUCT_EMPTY_ID_LIST"

	// ==================== Reviews (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewInvalidRating = "REVIEW_INVALID_RATING"

	// ==================== Orders (ORDER_) ====================
	OrderNotFound       = "ORDER_NOT_FOUND"
	OrderItemNotFound   = "ORDER_ITEM_NOT_FOUND"
	OrderInvalidStatus  = "ORDER_INVALID_STATUS"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
