package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// ValidOrderStatus reports whether the status is one of the enumerated
// values. Progression between statuses is intentionally not checked.
func ValidOrderStatus(status OrderStatus) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID         uint        `gorm:"primarykey" json:"id"`
	CustomerID uint        `gorm:"not null;index" json:"customer_id"`
	ShopID     uint        `gorm:"not null;index" json:"shop"`
	TotalPrice Price       `gorm:"not null" json:"total_price"`
	Status     OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	Customer Customer    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Shop     Shop        `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots the unit price at order time
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order"`
	ProductID uint      `gorm:"not null;index" json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     Price     `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`

	Order   Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product_detail,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
