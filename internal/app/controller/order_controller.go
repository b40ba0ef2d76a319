package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/service"
	apperrors "github.com/asiburrahmanprince/ecommerce/internal/errors"
	"github.com/asiburrahmanprince/ecommerce/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type CreateOrderRequest struct {
	CustomerID uint        `json:"customer" binding:"required"`
	ShopID     uint        `json:"shop" binding:"required"`
	TotalPrice model.Price `json:"total_price"`
	Status     string      `json:"status"`
}

type UpdateOrderRequest struct {
	TotalPrice *model.Price `json:"total_price"`
	Status     string       `json:"status"`
}

type CreateOrderItemRequest struct {
	OrderID   uint        `json:"order" binding:"required"`
	ProductID uint        `json:"product" binding:"required"`
	Quantity  int         `json:"quantity" binding:"required,gt=0"`
	Price     model.Price `json:"price"`
}

type UpdateOrderItemRequest struct {
	Quantity *int         `json:"quantity" binding:"omitempty,gt=0"`
	Price    *model.Price `json:"price"`
}

// List returns all orders
// GET /api/v1/orders
func (ctrl *OrderController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orders, err := ctrl.orderService.List()
	if err != nil {
		log.Error("Failed to list orders", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// Get returns a single order
// GET /api/v1/orders/:id
func (ctrl *OrderController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order ID")
		return
	}

	order, err := ctrl.orderService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
			return
		}
		log.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// Create opens an order for a customer against a shop
// POST /api/v1/orders
func (ctrl *OrderController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order creation request", map[string]interface{}{
			"error": err.Error(),
		})
		if errors.Is(err, model.ErrInvalidPriceFormat) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, "invalid price format")
			return
		}
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	order, err := ctrl.orderService.Create(service.CreateOrderInput{
		CustomerID: req.CustomerID,
		ShopID:     req.ShopID,
		TotalPrice: req.TotalPrice,
		Status:     model.OrderStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, err.Error())
		case errors.Is(err, service.ErrCustomerNotFound):
			apperrors.NotFound(c, apperrors.CustomerNotFound, "Customer not found")
		case errors.Is(err, service.ErrShopNotFound):
			apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
		default:
			log.Error("Failed to create order", err, map[string]interface{}{
				"customer_id": req.CustomerID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create order")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// Update overwrites order fields
// PUT /api/v1/orders/:id
func (ctrl *OrderController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order ID")
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order update request", map[string]interface{}{
			"error": err.Error(),
		})
		if errors.Is(err, model.ErrInvalidPriceFormat) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, "invalid price format")
			return
		}
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	order, err := ctrl.orderService.Update(uint(id), service.UpdateOrderInput{
		TotalPrice: req.TotalPrice,
		Status:     model.OrderStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
		case errors.Is(err, service.ErrInvalidOrderStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, err.Error())
		default:
			log.Error("Failed to update order", err, map[string]interface{}{
				"order_id": id,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   order,
	})
}

// Delete removes an order together with its items
// DELETE /api/v1/orders/:id
func (ctrl *OrderController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order ID")
		return
	}

	if err := ctrl.orderService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
			return
		}
		log.Error("Failed to delete order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

// ListItems returns all order items
// GET /api/v1/order-items
func (ctrl *OrderController) ListItems(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	items, err := ctrl.orderService.ListItems()
	if err != nil {
		log.Error("Failed to list order items", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_items": items,
		"count":       len(items),
	})
}

// GetItem returns a single order item
// GET /api/v1/order-items/:id
func (ctrl *OrderController) GetItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order item ID")
		return
	}

	item, err := ctrl.orderService.GetItemByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderItemNotFound) {
			apperrors.NotFound(c, apperrors.OrderItemNotFound, "Order item not found")
			return
		}
		log.Error("Failed to fetch order item", err, map[string]interface{}{
			"order_item_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch order item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_item": item,
	})
}

// CreateItem adds a product line to an order
// POST /api/v1/order-items
func (ctrl *OrderController) CreateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order item creation request", map[string]interface{}{
			"error": err.Error(),
		})
		if errors.Is(err, model.ErrInvalidPriceFormat) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, "invalid price format")
			return
		}
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	item, err := ctrl.orderService.CreateItem(service.CreateOrderItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		default:
			log.Error("Failed to create order item", err, map[string]interface{}{
				"order_id": req.OrderID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create order item")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Order item created successfully",
		"order_item": item,
	})
}

// UpdateItem overwrites order item fields
// PUT /api/v1/order-items/:id
func (ctrl *OrderController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order item ID")
		return
	}

	var req UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order item update request", map[string]interface{}{
			"error": err.Error(),
		})
		if errors.Is(err, model.ErrInvalidPriceFormat) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, "invalid price format")
			return
		}
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	item, err := ctrl.orderService.UpdateItem(uint(id), service.UpdateOrderItemInput{
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		if errors.Is(err, service.ErrOrderItemNotFound) {
			apperrors.NotFound(c, apperrors.OrderItemNotFound, "Order item not found")
			return
		}
		log.Error("Failed to update order item", err, map[string]interface{}{
			"order_item_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update order item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Order item updated successfully",
		"order_item": item,
	})
}

// DeleteItem removes an order item
// DELETE /api/v1/order-items/:id
func (ctrl *OrderController) DeleteItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order item ID")
		return
	}

	if err := ctrl.orderService.DeleteItem(uint(id)); err != nil {
		if errors.Is(err, service.ErrOrderItemNotFound) {
			apperrors.NotFound(c, apperrors.OrderItemNotFound, "Order item not found")
			return
		}
		log.Error("Failed to delete order item", err, map[string]interface{}{
			"order_item_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete order item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order item deleted successfully",
	})
}
