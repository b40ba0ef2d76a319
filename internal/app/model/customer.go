package model

import "time"

// Customer extends a User 1:1
type Customer struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);default:'pending'" json:"approval_status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}
