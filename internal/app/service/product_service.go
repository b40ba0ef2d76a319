package service

import (
	"errors"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrPriceNegative     = errors.New("price must be positive")
	ErrInvalidPriceRange = errors.New("min_price cannot exceed max_price")
	ErrNotShopkeeper     = errors.New("caller has no shopkeeper profile")
	ErrEmptyProductIDs   = errors.New("ids must not be empty")
)

// CreateProductInput is one product payload. AddedBy is never part of the
// input; it is resolved from the authenticated caller.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         model.Price
	StockQuantity int
	ShopID        uint
}

// UpdateProductInput carries the optional fields of a product update.
type UpdateProductInput struct {
	Name          string
	Description   string
	Price         *model.Price
	StockQuantity *int
	ShopID        *uint
}

type ProductService interface {
	List() ([]model.Product, error)
	Search(filter repository.ProductFilter) ([]model.Product, error)
	GetByID(id uint) (*model.Product, error)
	Create(userID uint, input CreateProductInput) (*model.Product, error)
	Update(id uint, input UpdateProductInput) (*model.Product, error)
	Delete(id uint) error
	BulkCreate(userID uint, inputs []CreateProductInput) ([]model.Product, error)
	BulkDelete(ids []uint) error
}

type productService struct {
	db             *gorm.DB
	productRepo    repository.ProductRepository
	shopRepo       repository.ShopRepository
	shopkeeperRepo repository.ShopkeeperRepository
}

func NewProductService(
	db *gorm.DB,
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	shopkeeperRepo repository.ShopkeeperRepository,
) ProductService {
	return &productService{
		db:             db,
		productRepo:    productRepo,
		shopRepo:       shopRepo,
		shopkeeperRepo: shopkeeperRepo,
	}
}

func (s *productService) List() ([]model.Product, error) {
	logger.Debug("Listing products")

	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}
	return products, nil
}

// Search applies the supplied filters conjunctively. A price window where
// the lower bound exceeds the upper bound is rejected before touching the
// database.
func (s *productService) Search(filter repository.ProductFilter) ([]model.Product, error) {
	logger.Debug("Searching products", map[string]interface{}{
		"name":      filter.Name,
		"shop_name": filter.ShopName,
	})

	if filter.MinPrice != nil && filter.MaxPrice != nil &&
		filter.MinPrice.Decimal.GreaterThan(filter.MaxPrice.Decimal) {
		logger.Warn("Product search failed: inverted price range", map[string]interface{}{
			"min_price": filter.MinPrice.String(),
			"max_price": filter.MaxPrice.String(),
		})
		return nil, ErrInvalidPriceRange
	}

	products, err := s.productRepo.FindWithFilter(filter)
	if err != nil {
		logger.Error("Failed to search products", err)
		return nil, err
	}
	return products, nil
}

func (s *productService) GetByID(id uint) (*model.Product, error) {
	logger.Debug("Fetching product by ID", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *productService) Create(userID uint, input CreateProductInput) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"name":    input.Name,
		"shop_id": input.ShopID,
		"user_id": userID,
	})

	shopkeeper, err := s.resolveShopkeeper(userID)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		ShopID:        input.ShopID,
		AddedByID:     shopkeeper.ID,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	product.AddedBy = shopkeeper

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"shop_id":    product.ShopID,
		"added_by":   shopkeeper.ID,
	})

	return product, nil
}

func (s *productService) Update(id uint, input UpdateProductInput) (*model.Product, error) {
	logger.Info("Updating product", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found for update", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product for update", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	if input.Price != nil {
		if input.Price.Decimal.IsNegative() {
			logger.Warn("Product update failed: negative price", map[string]interface{}{
				"product_id": id,
				"price":      input.Price.String(),
			})
			return nil, ErrPriceNegative
		}
		product.Price = *input.Price
	}
	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.ShopID != nil {
		if err := s.checkShopExists(*input.ShopID); err != nil {
			return nil, err
		}
		product.ShopID = *input.ShopID
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	logger.Info("Product updated successfully", map[string]interface{}{
		"product_id": product.ID,
	})

	return product, nil
}

// Delete removes a product with its reviews and order items.
func (s *productService) Delete(id uint) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found for delete", map[string]interface{}{
				"product_id": id,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to find product for delete", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}

	return s.deleteProducts([]uint{id})
}

// BulkCreate validates every payload first and persists all of them in one
// transaction, all stamped with the caller's shopkeeper profile. A single
// invalid payload means nothing is written.
func (s *productService) BulkCreate(userID uint, inputs []CreateProductInput) ([]model.Product, error) {
	logger.Info("Bulk creating products", map[string]interface{}{
		"count":   len(inputs),
		"user_id": userID,
	})

	shopkeeper, err := s.resolveShopkeeper(userID)
	if err != nil {
		return nil, err
	}

	for _, input := range inputs {
		if err := s.validateInput(input); err != nil {
			return nil, err
		}
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin bulk create transaction", tx.Error, map[string]interface{}{
			"user_id": userID,
		})
		return nil, tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during bulk create", nil, map[string]interface{}{
				"user_id": userID,
				"panic":   r,
			})
		}
	}()

	products := make([]model.Product, 0, len(inputs))
	for _, input := range inputs {
		product := model.Product{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			StockQuantity: input.StockQuantity,
			ShopID:        input.ShopID,
			AddedByID:     shopkeeper.ID,
		}
		if err := tx.Create(&product).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to create product in bulk", err, map[string]interface{}{
				"name":    input.Name,
				"shop_id": input.ShopID,
			})
			return nil, err
		}
		products = append(products, product)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit bulk create transaction", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Products bulk created successfully", map[string]interface{}{
		"count":    len(products),
		"added_by": shopkeeper.ID,
	})

	return products, nil
}

// BulkDelete removes the matching products and their children. Unknown ids
// are skipped silently; an empty id list is rejected.
func (s *productService) BulkDelete(ids []uint) error {
	logger.Info("Bulk deleting products", map[string]interface{}{
		"count": len(ids),
	})

	if len(ids) == 0 {
		logger.Warn("Bulk delete failed: empty id list")
		return ErrEmptyProductIDs
	}

	return s.deleteProducts(ids)
}

func (s *productService) deleteProducts(ids []uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin product deletion transaction", tx.Error, map[string]interface{}{
			"count": len(ids),
		})
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during product deletion", nil, map[string]interface{}{
				"count": len(ids),
				"panic": r,
			})
		}
	}()

	if err := deleteProductsCascade(tx, ids); err != nil {
		tx.Rollback()
		logger.Error("Failed to delete products", err, map[string]interface{}{
			"count": len(ids),
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit product deletion transaction", err, map[string]interface{}{
			"count": len(ids),
		})
		return err
	}

	logger.Info("Products and related data deleted successfully", map[string]interface{}{
		"count": len(ids),
	})
	return nil
}

func (s *productService) validateInput(input CreateProductInput) error {
	if input.Price.Decimal.IsNegative() {
		logger.Warn("Product validation failed: negative price", map[string]interface{}{
			"name":  input.Name,
			"price": input.Price.String(),
		})
		return ErrPriceNegative
	}
	return s.checkShopExists(input.ShopID)
}

func (s *productService) checkShopExists(id uint) error {
	if _, err := s.shopRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Shop not found", map[string]interface{}{
				"shop_id": id,
			})
			return ErrShopNotFound
		}
		logger.Error("Failed to fetch shop", err, map[string]interface{}{
			"shop_id": id,
		})
		return err
	}
	return nil
}

func (s *productService) resolveShopkeeper(userID uint) (*model.Shopkeeper, error) {
	shopkeeper, err := s.shopkeeperRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Caller has no shopkeeper profile", map[string]interface{}{
				"user_id": userID,
			})
			return nil, ErrNotShopkeeper
		}
		logger.Error("Failed to resolve caller shopkeeper profile", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return shopkeeper, nil
}
