package service

import (
	"errors"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyLinked = errors.New("user already has a customer profile")
)

type CustomerService interface {
	List() ([]model.Customer, error)
	GetByID(id uint) (*model.Customer, error)
	Create(email string, approvalStatus model.ApprovalStatus) (*model.Customer, error)
	Update(id uint, email string, approvalStatus model.ApprovalStatus) (*model.Customer, error)
	Delete(id uint) error
}

type customerService struct {
	db           *gorm.DB
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

func NewCustomerService(
	db *gorm.DB,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) CustomerService {
	return &customerService{
		db:           db,
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

func (s *customerService) List() ([]model.Customer, error) {
	logger.Debug("Listing customers")

	customers, err := s.customerRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list customers", err)
		return nil, err
	}
	return customers, nil
}

func (s *customerService) GetByID(id uint) (*model.Customer, error) {
	logger.Debug("Fetching customer by ID", map[string]interface{}{
		"customer_id": id,
	})

	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Customer not found", map[string]interface{}{
				"customer_id": id,
			})
			return nil, ErrCustomerNotFound
		}
		logger.Error("Failed to fetch customer", err, map[string]interface{}{
			"customer_id": id,
		})
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Create(email string, approvalStatus model.ApprovalStatus) (*model.Customer, error) {
	logger.Info("Creating customer profile", map[string]interface{}{
		"email": email,
	})

	user, err := s.resolveUser(email)
	if err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.FindByUserID(user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing customer profile", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("User already has a customer profile", map[string]interface{}{
			"user_id": user.ID,
			"email":   email,
		})
		return nil, ErrCustomerAlreadyLinked
	}

	customer := &model.Customer{
		UserID:         user.ID,
		ApprovalStatus: approvalStatus,
	}
	if customer.ApprovalStatus == "" {
		customer.ApprovalStatus = model.ApprovalPending
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	customer.User = *user

	logger.Info("Customer profile created", map[string]interface{}{
		"customer_id": customer.ID,
		"user_id":     user.ID,
	})

	return customer, nil
}

func (s *customerService) Update(id uint, email string, approvalStatus model.ApprovalStatus) (*model.Customer, error) {
	logger.Info("Updating customer profile", map[string]interface{}{
		"customer_id": id,
	})

	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Customer not found for update", map[string]interface{}{
				"customer_id": id,
			})
			return nil, ErrCustomerNotFound
		}
		logger.Error("Failed to fetch customer for update", err, map[string]interface{}{
			"customer_id": id,
		})
		return nil, err
	}

	// An email in the payload relinks the profile to that user
	if email != "" {
		user, err := s.resolveUser(email)
		if err != nil {
			return nil, err
		}
		if user.ID != customer.UserID {
			existing, err := s.customerRepo.FindByUserID(user.ID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Error("Failed to check existing customer profile", err, map[string]interface{}{
					"user_id": user.ID,
				})
				return nil, err
			}
			if existing != nil {
				logger.Warn("Target user already has a customer profile", map[string]interface{}{
					"user_id": user.ID,
				})
				return nil, ErrCustomerAlreadyLinked
			}
			customer.UserID = user.ID
			customer.User = *user
		}
	}

	if approvalStatus != "" {
		customer.ApprovalStatus = approvalStatus
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}

	logger.Info("Customer profile updated", map[string]interface{}{
		"customer_id": customer.ID,
	})

	return customer, nil
}

// Delete removes a customer together with its reviews and orders.
func (s *customerService) Delete(id uint) error {
	logger.Info("Deleting customer", map[string]interface{}{
		"customer_id": id,
	})

	if _, err := s.customerRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Customer not found for delete", map[string]interface{}{
				"customer_id": id,
			})
			return ErrCustomerNotFound
		}
		logger.Error("Failed to find customer for delete", err, map[string]interface{}{
			"customer_id": id,
		})
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin customer deletion transaction", tx.Error, map[string]interface{}{
			"customer_id": id,
		})
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during customer deletion", nil, map[string]interface{}{
				"customer_id": id,
				"panic":       r,
			})
		}
	}()

	if err := deleteCustomerCascade(tx, id); err != nil {
		tx.Rollback()
		logger.Error("Failed to delete customer", err, map[string]interface{}{
			"customer_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit customer deletion transaction", err, map[string]interface{}{
			"customer_id": id,
		})
		return err
	}

	logger.Info("Customer and related data deleted successfully", map[string]interface{}{
		"customer_id": id,
	})
	return nil
}

func (s *customerService) resolveUser(email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("No user for email", map[string]interface{}{
				"email": email,
			})
			return nil, ErrUserEmailNotFound
		}
		logger.Error("Failed to resolve user by email", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}
	return user, nil
}
