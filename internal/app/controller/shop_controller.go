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

type ShopController struct {
	shopService service.ShopService
}

func NewShopController(shopService service.ShopService) *ShopController {
	return &ShopController{
		shopService: shopService,
	}
}

type CreateShopRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	OwnerID      *uint  `json:"owner_id"`
	ShopkeeperID *uint  `json:"shopkeeper_id"`
}

type UpdateShopRequest struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Status        string  `json:"status"`
	OwnerID       *uint   `json:"owner_id"`
	ShopkeeperIDs *[]uint `json:"shopkeeper_ids"`
}

// List returns all shops
// GET /api/v1/shops
func (ctrl *ShopController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	shops, err := ctrl.shopService.List()
	if err != nil {
		log.Error("Failed to list shops", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shops": shops,
		"count": len(shops),
	})
}

// Get returns a single shop
// GET /api/v1/shops/:id
func (ctrl *ShopController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid shop ID")
		return
	}

	shop, err := ctrl.shopService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
			return
		}
		log.Error("Failed to fetch shop", err, map[string]interface{}{
			"shop_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch shop")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shop": shop,
	})
}

// Create creates a shop, optionally assigning a shopkeeper as staff
// POST /api/v1/shops
func (ctrl *ShopController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid shop creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	shop, err := ctrl.shopService.Create(service.CreateShopInput{
		Name:         req.Name,
		Address:      req.Address,
		Status:       model.ShopStatus(req.Status),
		OwnerID:      req.OwnerID,
		ShopkeeperID: req.ShopkeeperID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidShopStatus):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		case errors.Is(err, service.ErrShopkeeperNotFound):
			apperrors.NotFound(c, apperrors.ShopkeeperNotFound, "Shopkeeper not found")
		case errors.Is(err, service.ErrShopkeeperAlreadyAssigned):
			apperrors.Conflict(c, apperrors.ShopkeeperAlreadyAssigned, "Shopkeeper is already assigned to a shop")
		default:
			log.Error("Failed to create shop", err, map[string]interface{}{
				"name": req.Name,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create shop")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Shop created successfully",
		"shop":    shop,
	})
}

// Update overwrites shop fields and optionally replaces the assignment set
// PUT /api/v1/shops/:id
func (ctrl *ShopController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid shop ID")
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid shop update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	shop, err := ctrl.shopService.Update(uint(id), service.UpdateShopInput{
		Name:          req.Name,
		Address:       req.Address,
		Status:        model.ShopStatus(req.Status),
		OwnerID:       req.OwnerID,
		ShopkeeperIDs: req.ShopkeeperIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShopNotFound):
			apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
		case errors.Is(err, service.ErrInvalidShopStatus):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		case errors.Is(err, service.ErrShopkeeperNotFound):
			apperrors.BadRequest(c, apperrors.ShopkeeperNotFound, "One or more shopkeeper ids do not exist")
		default:
			log.Error("Failed to update shop", err, map[string]interface{}{
				"shop_id": id,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update shop")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shop updated successfully",
		"shop":    shop,
	})
}

// Delete removes a shop with its products, orders and assignments
// DELETE /api/v1/shops/:id
func (ctrl *ShopController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid shop ID")
		return
	}

	if err := ctrl.shopService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			apperrors.NotFound(c, apperrors.ShopNotFound, "Shop not found")
			return
		}
		log.Error("Failed to delete shop", err, map[string]interface{}{
			"shop_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete shop")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shop deleted successfully",
	})
}
