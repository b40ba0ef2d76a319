package model

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Shopkeeper extends a User 1:1 with seller identification fields.
// One row per user, enforced by the unique index on user_id.
type Shopkeeper struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	TIN            string         `gorm:"type:varchar(100)" json:"tin"`
	NID            string         `gorm:"type:varchar(100)" json:"nid"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);default:'pending'" json:"approval_status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	OwnedShops []Shop `gorm:"foreignKey:OwnerID" json:"owned_shops,omitempty"`
}

func (Shopkeeper) TableName() string {
	return "shopkeepers"
}
