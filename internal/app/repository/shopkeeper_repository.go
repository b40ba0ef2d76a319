package repository

import (
	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

type ShopkeeperRepository interface {
	Create(shopkeeper *model.Shopkeeper) error
	FindAll() ([]model.Shopkeeper, error)
	FindByID(id uint) (*model.Shopkeeper, error)
	FindByUserID(userID uint) (*model.Shopkeeper, error)
	Update(shopkeeper *model.Shopkeeper) error
	Delete(id uint) error
}

type shopkeeperRepository struct {
	db *gorm.DB
}

func NewShopkeeperRepository(db *gorm.DB) ShopkeeperRepository {
	return &shopkeeperRepository{db: db}
}

func (r *shopkeeperRepository) Create(shopkeeper *model.Shopkeeper) error {
	logger.Debug("Creating shopkeeper in database", map[string]interface{}{
		"user_id": shopkeeper.UserID,
	})

	if err := r.db.Create(shopkeeper).Error; err != nil {
		logger.Error("Failed to create shopkeeper in database", err, map[string]interface{}{
			"user_id": shopkeeper.UserID,
		})
		return err
	}
	return nil
}

func (r *shopkeeperRepository) FindAll() ([]model.Shopkeeper, error) {
	var shopkeepers []model.Shopkeeper
	if err := r.db.Preload("User").Find(&shopkeepers).Error; err != nil {
		logger.Error("Failed to list shopkeepers from database", err)
		return nil, err
	}

	logger.Debug("Shopkeepers listed from database", map[string]interface{}{
		"count": len(shopkeepers),
	})
	return shopkeepers, nil
}

func (r *shopkeeperRepository) FindByID(id uint) (*model.Shopkeeper, error) {
	var shopkeeper model.Shopkeeper
	if err := r.db.Preload("User").First(&shopkeeper, id).Error; err != nil {
		return nil, err
	}
	return &shopkeeper, nil
}

func (r *shopkeeperRepository) FindByUserID(userID uint) (*model.Shopkeeper, error) {
	var shopkeeper model.Shopkeeper
	if err := r.db.Where("user_id = ?", userID).First(&shopkeeper).Error; err != nil {
		return nil, err
	}
	return &shopkeeper, nil
}

func (r *shopkeeperRepository) Update(shopkeeper *model.Shopkeeper) error {
	logger.Debug("Updating shopkeeper in database", map[string]interface{}{
		"shopkeeper_id": shopkeeper.ID,
	})

	if err := r.db.Save(shopkeeper).Error; err != nil {
		logger.Error("Failed to update shopkeeper in database", err, map[string]interface{}{
			"shopkeeper_id": shopkeeper.ID,
		})
		return err
	}
	return nil
}

func (r *shopkeeperRepository) Delete(id uint) error {
	logger.Debug("Deleting shopkeeper from database", map[string]interface{}{
		"shopkeeper_id": id,
	})

	if err := r.db.Delete(&model.Shopkeeper{}, id).Error; err != nil {
		logger.Error("Failed to delete shopkeeper from database", err, map[string]interface{}{
			"shopkeeper_id": id,
		})
		return err
	}
	return nil
}
