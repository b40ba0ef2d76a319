package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a parsed database error
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts repository errors into a code and a message that is
// safe to return to clients. Constraint violations surfaced by the store are
// matched on the driver's error text, so this works for both postgres and
// the sqlite test database.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An internal server error occurred",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// Unique constraint violation (postgres 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	// Foreign key constraint violation (postgres 23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStrLower)
	}

	// Not null constraint violation (postgres 23502)
	if strings.Contains(errStrLower, "not-null constraint") || strings.Contains(errStrLower, "not null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "Failed to reach the database. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "An internal server error occurred. Please try again later",
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "email") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "A user with this email already exists",
		}
	}
	if strings.Contains(errLower, "name") && strings.Contains(errLower, "users") {
		return ErrorInfo{
			Code:    AuthNameAlreadyExists,
			Message: "A user with this name already exists",
		}
	}
	if strings.Contains(errLower, "shop_assignments") || strings.Contains(errLower, "idx_shop_assignments_shopkeeper") {
		return ErrorInfo{
			Code:    ShopkeeperAlreadyAssigned,
			Message: "This shopkeeper is already assigned to another shop",
		}
	}
	if strings.Contains(errLower, "shopkeepers") && strings.Contains(errLower, "user_id") {
		return ErrorInfo{
			Code:    ShopkeeperAlreadyLinked,
			Message: "This user is already associated with a shopkeeper",
		}
	}
	if strings.Contains(errLower, "customers") && strings.Contains(errLower, "user_id") {
		return ErrorInfo{
			Code:    CustomerAlreadyLinked,
			Message: "This user is already associated with a customer",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "This record already exists",
	}
}

func parseForeignKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "still referenced") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "This record is referenced by other data and cannot be deleted",
		}
	}
	if strings.Contains(errLower, "shop_id") {
		return ErrorInfo{Code: ShopNotFound, Message: "The referenced shop does not exist"}
	}
	if strings.Contains(errLower, "product_id") {
		return ErrorInfo{Code: ProductNotFound, Message: "The referenced product does not exist"}
	}
	if strings.Contains(errLower, "customer_id") {
		return ErrorInfo{Code: CustomerNotFound, Message: "The referenced customer does not exist"}
	}
	if strings.Contains(errLower, "order_id") {
		return ErrorInfo{Code: OrderNotFound, Message: "The referenced order does not exist"}
	}
	if strings.Contains(errLower, "user_id") {
		return ErrorInfo{Code: ResourceNotFound, Message: "The referenced user does not exist"}
	}
	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "A referenced record does not exist",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "shopkeeper"):
		return "Shopkeeper not found"
	case strings.Contains(contextLower, "customer"):
		return "Customer not found"
	case strings.Contains(contextLower, "shop"):
		return "Shop not found"
	case strings.Contains(contextLower, "product"):
		return "Product not found"
	case strings.Contains(contextLower, "review"):
		return "Review not found"
	case strings.Contains(contextLower, "order item"):
		return "Order item not found"
	case strings.Contains(contextLower, "order"):
		return "Order not found"
	case strings.Contains(contextLower, "user"):
		return "User not found"
	}
	return "The requested record was not found"
}

// ParseAndRespond parses an error and writes the JSON response in one step,
// for controller paths that do not map the error themselves.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
