package repository

import (
	"strings"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

// ProductFilter composes conjunctively; zero-valued criteria are not applied.
// Name, description and shop name match case-insensitive substrings.
type ProductFilter struct {
	Name        string
	Description string
	MinPrice    *model.Price
	MaxPrice    *model.Price
	ShopName    string
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindWithFilter(filter ProductFilter) ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Product{}).Preload("Shop").Preload("AddedBy")
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":    product.Name,
		"shop_id": product.ShopID,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name":    product.Name,
			"shop_id": product.ShopID,
		})
		return err
	}
	return nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	return r.FindWithFilter(ProductFilter{})
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"name":        filter.Name,
		"description": filter.Description,
		"min_price":   filter.MinPrice,
		"max_price":   filter.MaxPrice,
		"shop_name":   filter.ShopName,
	})

	query := r.baseQuery()

	if filter.Name != "" {
		query = query.Where("LOWER(products.name) LIKE ?", substringPattern(filter.Name))
	}
	if filter.Description != "" {
		query = query.Where("LOWER(products.description) LIKE ?", substringPattern(filter.Description))
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", filter.MinPrice.Decimal)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", filter.MaxPrice.Decimal)
	}
	if filter.ShopName != "" {
		query = query.
			Joins("JOIN shops ON shops.id = products.shop_id").
			Where("LOWER(shops.name) LIKE ?", substringPattern(filter.ShopName))
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"name":      filter.Name,
			"shop_name": filter.ShopName,
		})
		return nil, err
	}

	logger.Debug("Products found with filter", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func substringPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	if err := r.db.Delete(&model.Product{}, id).Error; err != nil {
		logger.Error("Failed to delete product from database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	return nil
}
