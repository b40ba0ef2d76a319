package service

import (
	"errors"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrUserEmailNotFound       = errors.New("email not found")
	ErrShopkeeperNotFound      = errors.New("shopkeeper not found")
	ErrShopkeeperAlreadyLinked = errors.New("user already has a shopkeeper profile")
)

// CreateShopkeeperInput links an existing user, resolved by email, to a new
// shopkeeper profile.
type CreateShopkeeperInput struct {
	Email          string
	TIN            string
	NID            string
	ApprovalStatus model.ApprovalStatus
}

// UpdateShopkeeperInput carries the optional fields of a shopkeeper update.
// A non-empty Email re-resolves the linked user; empty fields are unchanged.
type UpdateShopkeeperInput struct {
	Email          string
	TIN            string
	NID            string
	ApprovalStatus model.ApprovalStatus
}

type ShopkeeperService interface {
	List() ([]model.Shopkeeper, error)
	GetByID(id uint) (*model.Shopkeeper, error)
	Create(input CreateShopkeeperInput) (*model.Shopkeeper, error)
	Update(id uint, input UpdateShopkeeperInput) (*model.Shopkeeper, error)
	Delete(id uint) error
}

type shopkeeperService struct {
	db             *gorm.DB
	shopkeeperRepo repository.ShopkeeperRepository
	userRepo       repository.UserRepository
}

func NewShopkeeperService(
	db *gorm.DB,
	shopkeeperRepo repository.ShopkeeperRepository,
	userRepo repository.UserRepository,
) ShopkeeperService {
	return &shopkeeperService{
		db:             db,
		shopkeeperRepo: shopkeeperRepo,
		userRepo:       userRepo,
	}
}

func (s *shopkeeperService) List() ([]model.Shopkeeper, error) {
	logger.Debug("Listing shopkeepers")

	shopkeepers, err := s.shopkeeperRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list shopkeepers", err)
		return nil, err
	}
	return shopkeepers, nil
}

func (s *shopkeeperService) GetByID(id uint) (*model.Shopkeeper, error) {
	logger.Debug("Fetching shopkeeper by ID", map[string]interface{}{
		"shopkeeper_id": id,
	})

	shopkeeper, err := s.shopkeeperRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Shopkeeper not found", map[string]interface{}{
				"shopkeeper_id": id,
			})
			return nil, ErrShopkeeperNotFound
		}
		logger.Error("Failed to fetch shopkeeper", err, map[string]interface{}{
			"shopkeeper_id": id,
		})
		return nil, err
	}
	return shopkeeper, nil
}

func (s *shopkeeperService) Create(input CreateShopkeeperInput) (*model.Shopkeeper, error) {
	logger.Info("Creating shopkeeper profile", map[string]interface{}{
		"email": input.Email,
	})

	user, err := s.resolveUser(input.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.shopkeeperRepo.FindByUserID(user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing shopkeeper profile", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("User already has a shopkeeper profile", map[string]interface{}{
			"user_id": user.ID,
			"email":   input.Email,
		})
		return nil, ErrShopkeeperAlreadyLinked
	}

	shopkeeper := &model.Shopkeeper{
		UserID:         user.ID,
		TIN:            input.TIN,
		NID:            input.NID,
		ApprovalStatus: input.ApprovalStatus,
	}
	if shopkeeper.ApprovalStatus == "" {
		shopkeeper.ApprovalStatus = model.ApprovalPending
	}

	if err := s.shopkeeperRepo.Create(shopkeeper); err != nil {
		return nil, err
	}
	shopkeeper.User = *user

	logger.Info("Shopkeeper profile created", map[string]interface{}{
		"shopkeeper_id": shopkeeper.ID,
		"user_id":       user.ID,
	})

	return shopkeeper, nil
}

func (s *shopkeeperService) Update(id uint, input UpdateShopkeeperInput) (*model.Shopkeeper, error) {
	logger.Info("Updating shopkeeper profile", map[string]interface{}{
		"shopkeeper_id": id,
	})

	shopkeeper, err := s.shopkeeperRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Shopkeeper not found for update", map[string]interface{}{
				"shopkeeper_id": id,
			})
			return nil, ErrShopkeeperNotFound
		}
		logger.Error("Failed to fetch shopkeeper for update", err, map[string]interface{}{
			"shopkeeper_id": id,
		})
		return nil, err
	}

	// An email in the payload relinks the profile to that user
	if input.Email != "" {
		user, err := s.resolveUser(input.Email)
		if err != nil {
			return nil, err
		}
		if user.ID != shopkeeper.UserID {
			existing, err := s.shopkeeperRepo.FindByUserID(user.ID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Error("Failed to check existing shopkeeper profile", err, map[string]interface{}{
					"user_id": user.ID,
				})
				return nil, err
			}
			if existing != nil {
				logger.Warn("Target user already has a shopkeeper profile", map[string]interface{}{
					"user_id": user.ID,
				})
				return nil, ErrShopkeeperAlreadyLinked
			}
			shopkeeper.UserID = user.ID
			shopkeeper.User = *user
		}
	}

	if input.TIN != "" {
		shopkeeper.TIN = input.TIN
	}
	if input.NID != "" {
		shopkeeper.NID = input.NID
	}
	if input.ApprovalStatus != "" {
		shopkeeper.ApprovalStatus = input.ApprovalStatus
	}

	if err := s.shopkeeperRepo.Update(shopkeeper); err != nil {
		return nil, err
	}

	logger.Info("Shopkeeper profile updated", map[string]interface{}{
		"shopkeeper_id": shopkeeper.ID,
	})

	return shopkeeper, nil
}

// Delete removes a shopkeeper, its shop assignment and its added products.
// Shops the shopkeeper owned survive with a nulled owner.
func (s *shopkeeperService) Delete(id uint) error {
	logger.Info("Deleting shopkeeper", map[string]interface{}{
		"shopkeeper_id": id,
	})

	if _, err := s.shopkeeperRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Shopkeeper not found for delete", map[string]interface{}{
				"shopkeeper_id": id,
			})
			return ErrShopkeeperNotFound
		}
		logger.Error("Failed to find shopkeeper for delete", err, map[string]interface{}{
			"shopkeeper_id": id,
		})
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin shopkeeper deletion transaction", tx.Error, map[string]interface{}{
			"shopkeeper_id": id,
		})
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during shopkeeper deletion", nil, map[string]interface{}{
				"shopkeeper_id": id,
				"panic":         r,
			})
		}
	}()

	if err := deleteShopkeeperCascade(tx, id); err != nil {
		tx.Rollback()
		logger.Error("Failed to delete shopkeeper", err, map[string]interface{}{
			"shopkeeper_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit shopkeeper deletion transaction", err, map[string]interface{}{
			"shopkeeper_id": id,
		})
		return err
	}

	logger.Info("Shopkeeper and related data deleted successfully", map[string]interface{}{
		"shopkeeper_id": id,
	})
	return nil
}

func (s *shopkeeperService) resolveUser(email string) (*model.User, error) {
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
