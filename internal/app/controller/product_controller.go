package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/internal/app/service"
	apperrors "github.com/asiburrahmanprince/ecommerce/internal/errors"
	"github.com/asiburrahmanprince/ecommerce/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// Price accepts a JSON number or a quoted decimal string; added_by is
// stamped from the authenticated caller, never from the payload.
type CreateProductRequest struct {
	Name          string      `json:"name" binding:"required"`
	Description   string      `json:"description"`
	Price         model.Price `json:"price"`
	StockQuantity int         `json:"stock_quantity" binding:"gte=0"`
	ShopID        uint        `json:"shop" binding:"required"`
}

type UpdateProductRequest struct {
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Price         *model.Price `json:"price"`
	StockQuantity *int         `json:"stock_quantity" binding:"omitempty,gte=0"`
	ShopID        *uint        `json:"shop"`
}

type BulkDeleteProductsRequest struct {
	IDs []uint `json:"ids"`
}

// List returns all products
// GET /api/v1/products
func (ctrl *ProductController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.List()
	if err != nil {
		log.Error("Failed to list products", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// Search filters products by name, description, price window and shop name
// GET /api/v1/products/search
func (ctrl *ProductController) Search(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := repository.ProductFilter{
		Name:        c.Query("name"),
		Description: c.Query("description"),
		ShopName:    c.Query("shop_name"),
	}

	if raw := c.Query("min_price"); raw != "" {
		price, err := model.ParsePrice(raw)
		if err != nil {
			log.Warn("Invalid min_price in search", map[string]interface{}{
				"min_price": raw,
			})
			apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, "invalid price format")
			return
		}
		filter.MinPrice = &price
	}
	if raw := c.Query("max_price"); raw != "" {
		price, err := model.ParsePrice(raw)
		if err != nil {
			log.Warn("Invalid max_price in search", map[string]interface{}{
				"max_price": raw,
			})
			apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, "invalid price format")
			return
		}
		filter.MaxPrice = &price
	}

	products, err := ctrl.productService.Search(filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPriceRange) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
			return
		}
		log.Error("Failed to search products", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "search products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// Get returns a single product
// GET /api/v1/products/:id
func (ctrl *ProductController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	product, err := ctrl.productService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// Create creates a product stamped with the caller's shopkeeper profile
// POST /api/v1/products
func (ctrl *ProductController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product creation request", map[string]interface{}{
			"error": err.Error(),
		})
		if errors.Is(err, model.ErrInvalidPriceFormat) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, "invalid price format")
			return
		}
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	product, err := ctrl.productService.Create(userID, service.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ShopID:        req.ShopID,
	})
	if err != nil {
		ctrl.respondProductError(c, err, "create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// Update overwrites product fields
// PUT /api/v1/products/:id
func (ctrl *ProductController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product update request", map[string]interface{}{
			"error": err.Error(),
		})
		if errors.Is(err, model.ErrInvalidPriceFormat) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, "invalid price format")
			return
		}
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	product, err := ctrl.productService.Update(uint(id), service.UpdateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ShopID:        req.ShopID,
	})
	if err != nil {
		ctrl.respondProductError(c, err, "update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// Delete removes a product with its reviews and order items
// DELETE /api/v1/products/:id
func (ctrl *ProductController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	if err := ctrl.productService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// BulkCreate persists a batch of products in one transaction
// POST /api/v1/bulk-products
func (ctrl *ProductController) BulkCreate(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var reqs []CreateProductRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		log.Warn("Invalid bulk product request", map[string]interface{}{
			"error": err.Error(),
		})
		if errors.Is(err, model.ErrInvalidPriceFormat) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, "invalid price format")
			return
		}
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	inputs := make([]service.CreateProductInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, service.CreateProductInput{
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			StockQuantity: req.StockQuantity,
			ShopID:        req.ShopID,
		})
	}

	products, err := ctrl.productService.BulkCreate(userID, inputs)
	if err != nil {
		ctrl.respondProductError(c, err, "bulk create products")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Products created successfully",
		"products": products,
		"count":    len(products),
	})
}

// BulkDelete removes the products matching the submitted ids
// DELETE /api/v1/bulk-products
func (ctrl *ProductController) BulkDelete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BulkDeleteProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid bulk delete request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	if err := ctrl.productService.BulkDelete(req.IDs); err != nil {
		if errors.Is(err, service.ErrEmptyProductIDs) {
			apperrors.BadRequest(c, apperrors.ProductEmptyIDList, err.Error())
			return
		}
		log.Error("Failed to bulk delete products", err, map[string]interface{}{
			"count": len(req.IDs),
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "bulk delete products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products deleted successfully",
	})
}

func (ctrl *ProductController) respondProductError(c *gin.Context, err error, context string) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrNotShopkeeper):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
	case errors.Is(err, service.ErrPriceNegative):
		apperrors.BadRequest(c, apperrors.ProductInvalidPrice, err.Error())
	case errors.Is(err, service.ErrShopNotFound):
		apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
	case errors.Is(err, service.ErrProductNotFound):
		apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
	default:
		log.Error("Product operation failed", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
	}
}
