package model

import "time"

type ShopStatus string

const (
	ShopStatusActive  ShopStatus = "active"
	ShopStatusPending ShopStatus = "pending"
	ShopStatusDeleted ShopStatus = "deleted"
)

// ValidShopStatus reports whether the status is one of the enumerated values
func ValidShopStatus(status ShopStatus) bool {
	switch status {
	case ShopStatusActive, ShopStatusPending, ShopStatusDeleted:
		return true
	}
	return false
}

type Shop struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	Name      string      `gorm:"not null" json:"name"`
	Address   string      `gorm:"type:text" json:"address"`
	Status    ShopStatus  `gorm:"type:varchar(20);default:'pending'" json:"status"`
	OwnerID   *uint       `gorm:"index" json:"owner_id"` // nulled when the owning shopkeeper is deleted
	Owner     *Shopkeeper `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"owner,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	Assignments []ShopAssignment `gorm:"foreignKey:ShopID" json:"shopkeepers,omitempty"`
	Products    []Product        `gorm:"foreignKey:ShopID" json:"-"`
}

func (Shop) TableName() string {
	return "shops"
}

// ShopAssignment links a shopkeeper to the shop they staff. The unique index
// on shopkeeper_id is what actually holds the one-shop-per-shopkeeper
// invariant under concurrent requests.
type ShopAssignment struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	ShopID       uint      `gorm:"not null;index" json:"shop"`
	ShopkeeperID uint      `gorm:"not null;uniqueIndex" json:"shopkeeper"`
	AssignedAt   time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	Shop       Shop       `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE" json:"-"`
	Shopkeeper Shopkeeper `gorm:"foreignKey:ShopkeeperID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ShopAssignment) TableName() string {
	return "shop_assignments"
}
