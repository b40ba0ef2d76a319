package service

import (
	"errors"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderItemNotFound  = errors.New("order item not found")
	ErrInvalidOrderStatus = errors.New("status must be one of pending, confirmed, shipped, delivered")
)

// CreateOrderInput opens an order for a customer against a shop.
type CreateOrderInput struct {
	CustomerID uint
	ShopID     uint
	TotalPrice model.Price
	Status     model.OrderStatus
}

// UpdateOrderInput carries the optional fields of an order update. Status
// membership is validated; progression through the status sequence is not.
type UpdateOrderInput struct {
	TotalPrice *model.Price
	Status     model.OrderStatus
}

// CreateOrderItemInput adds a product line to an order. Price is the unit
// price snapshot taken at order time.
type CreateOrderItemInput struct {
	OrderID   uint
	ProductID uint
	Quantity  int
	Price     model.Price
}

// UpdateOrderItemInput carries the optional fields of an order item update.
type UpdateOrderItemInput struct {
	Quantity *int
	Price    *model.Price
}

type OrderService interface {
	List() ([]model.Order, error)
	GetByID(id uint) (*model.Order, error)
	Create(input CreateOrderInput) (*model.Order, error)
	Update(id uint, input UpdateOrderInput) (*model.Order, error)
	Delete(id uint) error

	ListItems() ([]model.OrderItem, error)
	GetItemByID(id uint) (*model.OrderItem, error)
	CreateItem(input CreateOrderItemInput) (*model.OrderItem, error)
	UpdateItem(id uint, input UpdateOrderItemInput) (*model.OrderItem, error)
	DeleteItem(id uint) error
}

type orderService struct {
	db           *gorm.DB
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	shopRepo     repository.ShopRepository
	productRepo  repository.ProductRepository
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
) OrderService {
	return &orderService{
		db:           db,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		shopRepo:     shopRepo,
		productRepo:  productRepo,
	}
}

func (s *orderService) List() ([]model.Order, error) {
	logger.Debug("Listing orders")

	orders, err := s.orderRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list orders", err)
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetByID(id uint) (*model.Order, error) {
	logger.Debug("Fetching order by ID", map[string]interface{}{
		"order_id": id,
	})

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order not found", map[string]interface{}{
				"order_id": id,
			})
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": id,
		})
		return nil, err
	}
	return order, nil
}

func (s *orderService) Create(input CreateOrderInput) (*model.Order, error) {
	logger.Info("Creating order", map[string]interface{}{
		"customer_id": input.CustomerID,
		"shop_id":     input.ShopID,
	})

	if input.Status != "" && !model.ValidOrderStatus(input.Status) {
		logger.Warn("Order creation failed: invalid status", map[string]interface{}{
			"status": input.Status,
		})
		return nil, ErrInvalidOrderStatus
	}

	if _, err := s.customerRepo.FindByID(input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order creation failed: customer not found", map[string]interface{}{
				"customer_id": input.CustomerID,
			})
			return nil, ErrCustomerNotFound
		}
		logger.Error("Failed to fetch customer for order", err, map[string]interface{}{
			"customer_id": input.CustomerID,
		})
		return nil, err
	}

	if _, err := s.shopRepo.FindByID(input.ShopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order creation failed: shop not found", map[string]interface{}{
				"shop_id": input.ShopID,
			})
			return nil, ErrShopNotFound
		}
		logger.Error("Failed to fetch shop for order", err, map[string]interface{}{
			"shop_id": input.ShopID,
		})
		return nil, err
	}

	order := &model.Order{
		CustomerID: input.CustomerID,
		ShopID:     input.ShopID,
		TotalPrice: input.TotalPrice,
		Status:     input.Status,
	}
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Info("Order created successfully", map[string]interface{}{
		"order_id":    order.ID,
		"customer_id": order.CustomerID,
	})

	return order, nil
}

func (s *orderService) Update(id uint, input UpdateOrderInput) (*model.Order, error) {
	logger.Info("Updating order", map[string]interface{}{
		"order_id": id,
	})

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order not found for update", map[string]interface{}{
				"order_id": id,
			})
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order for update", err, map[string]interface{}{
			"order_id": id,
		})
		return nil, err
	}

	if input.Status != "" {
		if !model.ValidOrderStatus(input.Status) {
			logger.Warn("Order update failed: invalid status", map[string]interface{}{
				"order_id": id,
				"status":   input.Status,
			})
			return nil, ErrInvalidOrderStatus
		}
		order.Status = input.Status
	}
	if input.TotalPrice != nil {
		order.TotalPrice = *input.TotalPrice
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	logger.Info("Order updated successfully", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})

	return order, nil
}

// Delete removes an order together with its items.
func (s *orderService) Delete(id uint) error {
	logger.Info("Deleting order", map[string]interface{}{
		"order_id": id,
	})

	if _, err := s.orderRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order not found for delete", map[string]interface{}{
				"order_id": id,
			})
			return ErrOrderNotFound
		}
		logger.Error("Failed to find order for delete", err, map[string]interface{}{
			"order_id": id,
		})
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin order deletion transaction", tx.Error, map[string]interface{}{
			"order_id": id,
		})
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during order deletion", nil, map[string]interface{}{
				"order_id": id,
				"panic":    r,
			})
		}
	}()

	if err := deleteOrdersCascade(tx, []uint{id}); err != nil {
		tx.Rollback()
		logger.Error("Failed to delete order", err, map[string]interface{}{
			"order_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit order deletion transaction", err, map[string]interface{}{
			"order_id": id,
		})
		return err
	}

	logger.Info("Order and items deleted successfully", map[string]interface{}{
		"order_id": id,
	})
	return nil
}

func (s *orderService) ListItems() ([]model.OrderItem, error) {
	logger.Debug("Listing order items")

	items, err := s.orderRepo.FindAllItems()
	if err != nil {
		logger.Error("Failed to list order items", err)
		return nil, err
	}
	return items, nil
}

func (s *orderService) GetItemByID(id uint) (*model.OrderItem, error) {
	logger.Debug("Fetching order item by ID", map[string]interface{}{
		"order_item_id": id,
	})

	item, err := s.orderRepo.FindItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order item not found", map[string]interface{}{
				"order_item_id": id,
			})
			return nil, ErrOrderItemNotFound
		}
		logger.Error("Failed to fetch order item", err, map[string]interface{}{
			"order_item_id": id,
		})
		return nil, err
	}
	return item, nil
}

func (s *orderService) CreateItem(input CreateOrderItemInput) (*model.OrderItem, error) {
	logger.Info("Creating order item", map[string]interface{}{
		"order_id":   input.OrderID,
		"product_id": input.ProductID,
		"quantity":   input.Quantity,
	})

	if _, err := s.orderRepo.FindByID(input.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order item creation failed: order not found", map[string]interface{}{
				"order_id": input.OrderID,
			})
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order for item", err, map[string]interface{}{
			"order_id": input.OrderID,
		})
		return nil, err
	}

	if _, err := s.productRepo.FindByID(input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order item creation failed: product not found", map[string]interface{}{
				"product_id": input.ProductID,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product for item", err, map[string]interface{}{
			"product_id": input.ProductID,
		})
		return nil, err
	}

	item := &model.OrderItem{
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Price:     input.Price,
	}

	if err := s.orderRepo.CreateItem(item); err != nil {
		return nil, err
	}

	logger.Info("Order item created successfully", map[string]interface{}{
		"order_item_id": item.ID,
		"order_id":      item.OrderID,
	})

	return item, nil
}

func (s *orderService) UpdateItem(id uint, input UpdateOrderItemInput) (*model.OrderItem, error) {
	logger.Info("Updating order item", map[string]interface{}{
		"order_item_id": id,
	})

	item, err := s.orderRepo.FindItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order item not found for update", map[string]interface{}{
				"order_item_id": id,
			})
			return nil, ErrOrderItemNotFound
		}
		logger.Error("Failed to fetch order item for update", err, map[string]interface{}{
			"order_item_id": id,
		})
		return nil, err
	}

	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Price != nil {
		item.Price = *input.Price
	}

	if err := s.orderRepo.UpdateItem(item); err != nil {
		return nil, err
	}

	logger.Info("Order item updated successfully", map[string]interface{}{
		"order_item_id": item.ID,
	})

	return item, nil
}

func (s *orderService) DeleteItem(id uint) error {
	logger.Info("Deleting order item", map[string]interface{}{
		"order_item_id": id,
	})

	if _, err := s.orderRepo.FindItemByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order item not found for delete", map[string]interface{}{
				"order_item_id": id,
			})
			return ErrOrderItemNotFound
		}
		logger.Error("Failed to find order item for delete", err, map[string]interface{}{
			"order_item_id": id,
		})
		return err
	}

	if err := s.orderRepo.DeleteItem(id); err != nil {
		return err
	}

	logger.Info("Order item deleted successfully", map[string]interface{}{
		"order_item_id": id,
	})
	return nil
}
