package model

import "time"

type Product struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         Price     `gorm:"not null" json:"price"`
	StockQuantity int       `gorm:"default:0" json:"stock_quantity"`
	ShopID        uint      `gorm:"not null;index" json:"shop"`
	AddedByID     uint      `gorm:"not null;index" json:"added_by_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Shop    Shop        `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE" json:"-"`
	AddedBy *Shopkeeper `gorm:"foreignKey:AddedByID;constraint:OnDelete:CASCADE" json:"added_by,omitempty"`

	Reviews    []Review    `gorm:"foreignKey:ProductID" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
