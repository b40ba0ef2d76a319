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

type CustomerController struct {
	customerService service.CustomerService
}

func NewCustomerController(customerService service.CustomerService) *CustomerController {
	return &CustomerController{
		customerService: customerService,
	}
}

type CreateCustomerRequest struct {
	Email          string `json:"email" binding:"required,email"`
	ApprovalStatus string `json:"approval_status"`
}

type UpdateCustomerRequest struct {
	Email          string `json:"email" binding:"omitempty,email"`
	ApprovalStatus string `json:"approval_status"`
}

// List returns all customers
// GET /api/v1/customers
func (ctrl *CustomerController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	customers, err := ctrl.customerService.List()
	if err != nil {
		log.Error("Failed to list customers", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"count":     len(customers),
	})
}

// Get returns a single customer
// GET /api/v1/customers/:id
func (ctrl *CustomerController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid customer ID")
		return
	}

	customer, err := ctrl.customerService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			apperrors.NotFound(c, apperrors.CustomerNotFound, "Customer not found")
			return
		}
		log.Error("Failed to fetch customer", err, map[string]interface{}{
			"customer_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
	})
}

// Create links an existing user to a new customer profile
// POST /api/v1/customers
func (ctrl *CustomerController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid customer creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	customer, err := ctrl.customerService.Create(req.Email, model.ApprovalStatus(req.ApprovalStatus))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserEmailNotFound):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email not found")
		case errors.Is(err, service.ErrCustomerAlreadyLinked):
			apperrors.Conflict(c, apperrors.CustomerAlreadyLinked, "User already has a customer profile")
		default:
			log.Error("Failed to create customer", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create customer")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

// Update overwrites customer fields, optionally relinking by email
// PUT /api/v1/customers/:id
func (ctrl *CustomerController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid customer ID")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid customer update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, validationFields(err))
		return
	}

	customer, err := ctrl.customerService.Update(uint(id), req.Email, model.ApprovalStatus(req.ApprovalStatus))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			apperrors.NotFound(c, apperrors.CustomerNotFound, "Customer not found")
		case errors.Is(err, service.ErrUserEmailNotFound):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email not found")
		case errors.Is(err, service.ErrCustomerAlreadyLinked):
			apperrors.Conflict(c, apperrors.CustomerAlreadyLinked, "User already has a customer profile")
		default:
			log.Error("Failed to update customer", err, map[string]interface{}{
				"customer_id": id,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update customer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}

// Delete removes a customer with its reviews and orders
// DELETE /api/v1/customers/:id
func (ctrl *CustomerController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid customer ID")
		return
	}

	if err := ctrl.customerService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			apperrors.NotFound(c, apperrors.CustomerNotFound, "Customer not found")
			return
		}
		log.Error("Failed to delete customer", err, map[string]interface{}{
			"customer_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer deleted successfully",
	})
}
