package repository

import (
	"time"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

type ShopRepository interface {
	Create(shop *model.Shop) error
	FindAll() ([]model.Shop, error)
	FindByID(id uint) (*model.Shop, error)
	Update(shop *model.Shop) error
	Delete(id uint) error
	FindAssignmentByShopkeeperID(shopkeeperID uint) (*model.ShopAssignment, error)
	FindStaleDeleted(cutoff time.Time) ([]model.Shop, error)
}

type shopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(shop *model.Shop) error {
	logger.Debug("Creating shop in database", map[string]interface{}{
		"name":   shop.Name,
		"status": shop.Status,
	})

	if err := r.db.Create(shop).Error; err != nil {
		logger.Error("Failed to create shop in database", err, map[string]interface{}{
			"name": shop.Name,
		})
		return err
	}
	return nil
}

func (r *shopRepository) FindAll() ([]model.Shop, error) {
	var shops []model.Shop
	if err := r.db.Preload("Assignments").Find(&shops).Error; err != nil {
		logger.Error("Failed to list shops from database", err)
		return nil, err
	}

	logger.Debug("Shops listed from database", map[string]interface{}{
		"count": len(shops),
	})
	return shops, nil
}

func (r *shopRepository) FindByID(id uint) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.Preload("Assignments").First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepository) Update(shop *model.Shop) error {
	logger.Debug("Updating shop in database", map[string]interface{}{
		"shop_id": shop.ID,
		"name":    shop.Name,
	})

	if err := r.db.Save(shop).Error; err != nil {
		logger.Error("Failed to update shop in database", err, map[string]interface{}{
			"shop_id": shop.ID,
		})
		return err
	}
	return nil
}

func (r *shopRepository) Delete(id uint) error {
	logger.Debug("Deleting shop from database", map[string]interface{}{
		"shop_id": id,
	})

	if err := r.db.Delete(&model.Shop{}, id).Error; err != nil {
		logger.Error("Failed to delete shop from database", err, map[string]interface{}{
			"shop_id": id,
		})
		return err
	}
	return nil
}

func (r *shopRepository) FindAssignmentByShopkeeperID(shopkeeperID uint) (*model.ShopAssignment, error) {
	var assignment model.ShopAssignment
	if err := r.db.Where("shopkeeper_id = ?", shopkeeperID).First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *shopRepository) FindStaleDeleted(cutoff time.Time) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.
		Where("status = ? AND updated_at < ?", model.ShopStatusDeleted, cutoff).
		Find(&shops).Error
	if err != nil {
		logger.Error("Failed to find stale deleted shops", err)
		return nil, err
	}
	return shops, nil
}
