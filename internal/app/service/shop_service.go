package service

import (
	"errors"
	"time"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrShopNotFound              = errors.New("shop not found")
	ErrInvalidShopStatus         = errors.New("status must be one of active, pending, deleted")
	ErrShopkeeperAlreadyAssigned = errors.New("shopkeeper is already assigned to a shop")
)

// CreateShopInput optionally carries a shopkeeper to assign as staff and an
// owner at creation time.
type CreateShopInput struct {
	Name         string
	Address      string
	Status       model.ShopStatus
	OwnerID      *uint
	ShopkeeperID *uint
}

// UpdateShopInput carries the optional fields of a shop update. A non-nil
// ShopkeeperIDs replaces the entire assignment set, including with an empty
// list; nil leaves assignments untouched.
type UpdateShopInput struct {
	Name          string
	Address       string
	Status        model.ShopStatus
	OwnerID       *uint
	ShopkeeperIDs *[]uint
}

type ShopService interface {
	List() ([]model.Shop, error)
	GetByID(id uint) (*model.Shop, error)
	Create(input CreateShopInput) (*model.Shop, error)
	Update(id uint, input UpdateShopInput) (*model.Shop, error)
	Delete(id uint) error
	PurgeStaleDeleted(cutoff time.Time) (int, error)
}

type shopService struct {
	db             *gorm.DB
	shopRepo       repository.ShopRepository
	shopkeeperRepo repository.ShopkeeperRepository
}

func NewShopService(
	db *gorm.DB,
	shopRepo repository.ShopRepository,
	shopkeeperRepo repository.ShopkeeperRepository,
) ShopService {
	return &shopService{
		db:             db,
		shopRepo:       shopRepo,
		shopkeeperRepo: shopkeeperRepo,
	}
}

func (s *shopService) List() ([]model.Shop, error) {
	logger.Debug("Listing shops")

	shops, err := s.shopRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list shops", err)
		return nil, err
	}
	return shops, nil
}

func (s *shopService) GetByID(id uint) (*model.Shop, error) {
	logger.Debug("Fetching shop by ID", map[string]interface{}{
		"shop_id": id,
	})

	shop, err := s.shopRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Shop not found", map[string]interface{}{
				"shop_id": id,
			})
			return nil, ErrShopNotFound
		}
		logger.Error("Failed to fetch shop", err, map[string]interface{}{
			"shop_id": id,
		})
		return nil, err
	}
	return shop, nil
}

func (s *shopService) Create(input CreateShopInput) (*model.Shop, error) {
	logger.Info("Creating shop", map[string]interface{}{
		"name": input.Name,
	})

	if input.Status != "" && !model.ValidShopStatus(input.Status) {
		logger.Warn("Shop creation failed: invalid status", map[string]interface{}{
			"status": input.Status,
		})
		return nil, ErrInvalidShopStatus
	}

	if input.OwnerID != nil {
		if err := s.checkShopkeeperExists(*input.OwnerID); err != nil {
			return nil, err
		}
	}

	// The staff assignment, when requested, is created with the shop row
	if input.ShopkeeperID != nil {
		if err := s.checkShopkeeperExists(*input.ShopkeeperID); err != nil {
			return nil, err
		}

		assignment, err := s.shopRepo.FindAssignmentByShopkeeperID(*input.ShopkeeperID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to check existing assignment", err, map[string]interface{}{
				"shopkeeper_id": *input.ShopkeeperID,
			})
			return nil, err
		}
		if assignment != nil {
			logger.Warn("Shopkeeper already assigned to a shop", map[string]interface{}{
				"shopkeeper_id": *input.ShopkeeperID,
				"shop_id":       assignment.ShopID,
			})
			return nil, ErrShopkeeperAlreadyAssigned
		}
	}

	shop := &model.Shop{
		Name:    input.Name,
		Address: input.Address,
		Status:  input.Status,
		OwnerID: input.OwnerID,
	}
	if shop.Status == "" {
		shop.Status = model.ShopStatusPending
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin shop creation transaction", tx.Error, map[string]interface{}{
			"name": input.Name,
		})
		return nil, tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during shop creation", nil, map[string]interface{}{
				"name":  input.Name,
				"panic": r,
			})
		}
	}()

	if err := tx.Create(shop).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create shop in database", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	if input.ShopkeeperID != nil {
		assignment := &model.ShopAssignment{
			ShopID:       shop.ID,
			ShopkeeperID: *input.ShopkeeperID,
		}
		if err := tx.Create(assignment).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to create shop assignment", err, map[string]interface{}{
				"shop_id":       shop.ID,
				"shopkeeper_id": *input.ShopkeeperID,
			})
			return nil, err
		}
		shop.Assignments = []model.ShopAssignment{*assignment}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit shop creation transaction", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	logger.Info("Shop created successfully", map[string]interface{}{
		"shop_id": shop.ID,
		"name":    shop.Name,
	})

	return shop, nil
}

// Update overwrites scalar shop fields and, when ShopkeeperIDs is present,
// replaces the whole assignment set in the same transaction. An unknown
// shopkeeper id aborts the replacement with nothing changed.
func (s *shopService) Update(id uint, input UpdateShopInput) (*model.Shop, error) {
	logger.Info("Updating shop", map[string]interface{}{
		"shop_id": id,
	})

	shop, err := s.shopRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Shop not found for update", map[string]interface{}{
				"shop_id": id,
			})
			return nil, ErrShopNotFound
		}
		logger.Error("Failed to fetch shop for update", err, map[string]interface{}{
			"shop_id": id,
		})
		return nil, err
	}

	if input.Status != "" && !model.ValidShopStatus(input.Status) {
		logger.Warn("Shop update failed: invalid status", map[string]interface{}{
			"shop_id": id,
			"status":  input.Status,
		})
		return nil, ErrInvalidShopStatus
	}

	if input.Name != "" {
		shop.Name = input.Name
	}
	if input.Address != "" {
		shop.Address = input.Address
	}
	if input.Status != "" {
		shop.Status = input.Status
	}
	if input.OwnerID != nil {
		if err := s.checkShopkeeperExists(*input.OwnerID); err != nil {
			return nil, err
		}
		shop.OwnerID = input.OwnerID
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin shop update transaction", tx.Error, map[string]interface{}{
			"shop_id": id,
		})
		return nil, tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during shop update", nil, map[string]interface{}{
				"shop_id": id,
				"panic":   r,
			})
		}
	}()

	if err := tx.Save(shop).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to update shop in database", err, map[string]interface{}{
			"shop_id": id,
		})
		return nil, err
	}

	if input.ShopkeeperIDs != nil {
		if err := tx.Where("shop_id = ?", id).Delete(&model.ShopAssignment{}).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to clear shop assignments", err, map[string]interface{}{
				"shop_id": id,
			})
			return nil, err
		}

		assignments := make([]model.ShopAssignment, 0, len(*input.ShopkeeperIDs))
		for _, shopkeeperID := range *input.ShopkeeperIDs {
			var shopkeeper model.Shopkeeper
			if err := tx.First(&shopkeeper, shopkeeperID).Error; err != nil {
				tx.Rollback()
				if errors.Is(err, gorm.ErrRecordNotFound) {
					logger.Warn("Assignment replace failed: shopkeeper not found", map[string]interface{}{
						"shop_id":       id,
						"shopkeeper_id": shopkeeperID,
					})
					return nil, ErrShopkeeperNotFound
				}
				logger.Error("Failed to resolve shopkeeper for assignment", err, map[string]interface{}{
					"shopkeeper_id": shopkeeperID,
				})
				return nil, err
			}

			assignment := model.ShopAssignment{
				ShopID:       id,
				ShopkeeperID: shopkeeperID,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				tx.Rollback()
				logger.Error("Failed to create shop assignment", err, map[string]interface{}{
					"shop_id":       id,
					"shopkeeper_id": shopkeeperID,
				})
				return nil, err
			}
			assignments = append(assignments, assignment)
		}
		shop.Assignments = assignments
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit shop update transaction", err, map[string]interface{}{
			"shop_id": id,
		})
		return nil, err
	}

	logger.Info("Shop updated successfully", map[string]interface{}{
		"shop_id": shop.ID,
	})

	return shop, nil
}

// Delete removes a shop with its products, orders and assignments.
func (s *shopService) Delete(id uint) error {
	logger.Info("Deleting shop", map[string]interface{}{
		"shop_id": id,
	})

	if _, err := s.shopRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Shop not found for delete", map[string]interface{}{
				"shop_id": id,
			})
			return ErrShopNotFound
		}
		logger.Error("Failed to find shop for delete", err, map[string]interface{}{
			"shop_id": id,
		})
		return err
	}

	return s.deleteShop(id)
}

// PurgeStaleDeleted hard-removes shops that have sat in status deleted since
// before the cutoff. Returns the number of shops purged.
func (s *shopService) PurgeStaleDeleted(cutoff time.Time) (int, error) {
	logger.Info("Purging stale deleted shops", map[string]interface{}{
		"cutoff": cutoff.Format(time.RFC3339),
	})

	shops, err := s.shopRepo.FindStaleDeleted(cutoff)
	if err != nil {
		logger.Error("Failed to find stale deleted shops", err)
		return 0, err
	}

	purged := 0
	for _, shop := range shops {
		if err := s.deleteShop(shop.ID); err != nil {
			logger.Error("Failed to purge shop", err, map[string]interface{}{
				"shop_id": shop.ID,
			})
			return purged, err
		}
		purged++
	}

	logger.Info("Stale deleted shops purged", map[string]interface{}{
		"count": purged,
	})
	return purged, nil
}

func (s *shopService) deleteShop(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin shop deletion transaction", tx.Error, map[string]interface{}{
			"shop_id": id,
		})
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during shop deletion", nil, map[string]interface{}{
				"shop_id": id,
				"panic":   r,
			})
		}
	}()

	if err := deleteShopCascade(tx, id); err != nil {
		tx.Rollback()
		logger.Error("Failed to delete shop", err, map[string]interface{}{
			"shop_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit shop deletion transaction", err, map[string]interface{}{
			"shop_id": id,
		})
		return err
	}

	logger.Info("Shop and related data deleted successfully", map[string]interface{}{
		"shop_id": id,
	})
	return nil
}

func (s *shopService) checkShopkeeperExists(id uint) error {
	if _, err := s.shopkeeperRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Shopkeeper not found", map[string]interface{}{
				"shopkeeper_id": id,
			})
			return ErrShopkeeperNotFound
		}
		logger.Error("Failed to fetch shopkeeper", err, map[string]interface{}{
			"shopkeeper_id": id,
		})
		return err
	}
	return nil
}
