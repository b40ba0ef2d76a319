package repository

import (
	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindAll() ([]model.Order, error)
	FindByID(id uint) (*model.Order, error)
	Update(order *model.Order) error
	Delete(id uint) error

	CreateItem(item *model.OrderItem) error
	FindAllItems() ([]model.OrderItem, error)
	FindItemByID(id uint) (*model.OrderItem, error)
	UpdateItem(item *model.OrderItem) error
	DeleteItem(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"customer_id": order.CustomerID,
		"shop_id":     order.ShopID,
		"status":      order.Status,
	})

	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"customer_id": order.CustomerID,
		})
		return err
	}
	return nil
}

func (r *orderRepository) FindAll() ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Preload("Customer").Preload("Items").Find(&orders).Error; err != nil {
		logger.Error("Failed to list orders from database", err)
		return nil, err
	}

	logger.Debug("Orders listed from database", map[string]interface{}{
		"count": len(orders),
	})
	return orders, nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Customer").Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Update(order *model.Order) error {
	logger.Debug("Updating order in database", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})

	if err := r.db.Save(order).Error; err != nil {
		logger.Error("Failed to update order in database", err, map[string]interface{}{
			"order_id": order.ID,
		})
		return err
	}
	return nil
}

func (r *orderRepository) Delete(id uint) error {
	logger.Debug("Deleting order from database", map[string]interface{}{
		"order_id": id,
	})

	if err := r.db.Delete(&model.Order{}, id).Error; err != nil {
		logger.Error("Failed to delete order from database", err, map[string]interface{}{
			"order_id": id,
		})
		return err
	}
	return nil
}

func (r *orderRepository) CreateItem(item *model.OrderItem) error {
	logger.Debug("Creating order item in database", map[string]interface{}{
		"order_id":   item.OrderID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	if err := r.db.Create(item).Error; err != nil {
		logger.Error("Failed to create order item in database", err, map[string]interface{}{
			"order_id": item.OrderID,
		})
		return err
	}
	return nil
}

func (r *orderRepository) FindAllItems() ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := r.db.Preload("Product").Find(&items).Error; err != nil {
		logger.Error("Failed to list order items from database", err)
		return nil, err
	}

	logger.Debug("Order items listed from database", map[string]interface{}{
		"count": len(items),
	})
	return items, nil
}

func (r *orderRepository) FindItemByID(id uint) (*model.OrderItem, error) {
	var item model.OrderItem
	if err := r.db.Preload("Product").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderRepository) UpdateItem(item *model.OrderItem) error {
	logger.Debug("Updating order item in database", map[string]interface{}{
		"order_item_id": item.ID,
	})

	if err := r.db.Save(item).Error; err != nil {
		logger.Error("Failed to update order item in database", err, map[string]interface{}{
			"order_item_id": item.ID,
		})
		return err
	}
	return nil
}

func (r *orderRepository) DeleteItem(id uint) error {
	logger.Debug("Deleting order item from database", map[string]interface{}{
		"order_item_id": id,
	})

	if err := r.db.Delete(&model.OrderItem{}, id).Error; err != nil {
		logger.Error("Failed to delete order item from database", err, map[string]interface{}{
			"order_item_id": id,
		})
		return err
	}
	return nil
}
