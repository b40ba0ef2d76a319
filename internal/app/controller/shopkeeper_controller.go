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

type ShopkeeperController struct {
	shopkeeperService service.ShopkeeperService
}

func NewShopkeeperController(shopkeeperService service.ShopkeeperService) *ShopkeeperController {
	return &ShopkeeperController{
		shopkeeperService: shopkeeperService,
	}
}

type CreateShopkeeperRequest struct {
	Email          string `json:"email" binding:"required,email"`
	TIN            string `json:"tin"`
	NID            string `json:"nid"`
	ApprovalStatus string `json:"approval_status"`
}

type UpdateShopkeeperRequest struct {
	Email          string `json:"email" binding:"omitempty,email"`
	TIN            string `json:"tin"`
	NID            string `json:"nid"`
	ApprovalStatus string `json:"approval_status"`
}

// List returns all shopkeepers
// GET /api/v1/shopkeepers
func (ctrl *ShopkeeperController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	shopkeepers, err := ctrl.shopkeeperService.List()
	if err != nil {
		log.Error("Failed to list shopkeepers", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shopkeepers": shopkeepers,
		"count":       len(shopkeepers),
	})
}

// Get returns a single shopkeeper
// GET /api/v1/shopkeepers/:id
func (ctrl *ShopkeeperController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid shopkeeper ID")
		return
	}

	shopkeeper, err := ctrl.shopkeeperService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrShopkeeperNotFound) {
			apperrors.NotFound(c, apperrors.ShopkeeperNotFound, "Shopkeeper not found")
			return
		}
		log.Error("Failed to fetch shopkeeper", err, map[string]interface{}{
			"shopkeeper_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch shopkeeper")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shopkeeper": shopkeeper,
	})
}

// Create links an existing user to a new shopkeeper profile
// POST /api/v1/shopkeepers
func (ctrl *ShopkeeperController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateShopkeeperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid shopkeeper creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	shopkeeper, err := ctrl.shopkeeperService.Create(service.CreateShopkeeperInput{
		Email:          req.Email,
		TIN:            req.TIN,
		NID:            req.NID,
		ApprovalStatus: model.ApprovalStatus(req.ApprovalStatus),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserEmailNotFound):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email not found")
		case errors.Is(err, service.ErrShopkeeperAlreadyLinked):
			apperrors.Conflict(c, apperrors.ShopkeeperAlreadyLinked, "User already has a shopkeeper profile")
		default:
			log.Error("Failed to create shopkeeper", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create shopkeeper")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Shopkeeper created successfully",
		"shopkeeper": shopkeeper,
	})
}

// Update overwrites shopkeeper fields, optionally relinking by email
// PUT /api/v1/shopkeepers/:id
func (ctrl *ShopkeeperController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid shopkeeper ID")
		return
	}

	var req UpdateShopkeeperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid shopkeeper update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	shopkeeper, err := ctrl.shopkeeperService.Update(uint(id), service.UpdateShopkeeperInput{
		Email:          req.Email,
		TIN:            req.TIN,
		NID:            req.NID,
		ApprovalStatus: model.ApprovalStatus(req.ApprovalStatus),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShopkeeperNotFound):
			apperrors.NotFound(c, apperrors.ShopkeeperNotFound, "Shopkeeper not found")
		case errors.Is(err, service.ErrUserEmailNotFound):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email not found")
		case errors.Is(err, service.ErrShopkeeperAlreadyLinked):
			apperrors.Conflict(c, apperrors.ShopkeeperAlreadyLinked, "User already has a shopkeeper profile")
		default:
			log.Error("Failed to update shopkeeper", err, map[string]interface{}{
				"shopkeeper_id": id,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update shopkeeper")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Shopkeeper updated successfully",
		"shopkeeper": shopkeeper,
	})
}

// Delete removes a shopkeeper, its assignment and its added products
// DELETE /api/v1/shopkeepers/:id
func (ctrl *ShopkeeperController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid shopkeeper ID")
		return
	}

	if err := ctrl.shopkeeperService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrShopkeeperNotFound) {
			apperrors.NotFound(c, apperrors.ShopkeeperNotFound, "Shopkeeper not found")
			return
		}
		log.Error("Failed to delete shopkeeper", err, map[string]interface{}{
			"shopkeeper_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete shopkeeper")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shopkeeper deleted successfully",
	})
}
