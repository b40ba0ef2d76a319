package model

import (
	"time"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleShopkeeper UserRole = "shopkeeper"
	RoleCustomer   UserRole = "customer"
)

// ValidRole reports whether the role is one of the enumerated values
func ValidRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleShopkeeper, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	DateJoined   time.Time `gorm:"autoCreateTime" json:"date_joined"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	IsSuperuser  bool      `gorm:"default:false" json:"is_superuser"`
	UpdatedAt    time.Time `json:"updated_at"`

	Shopkeeper *Shopkeeper `gorm:"foreignKey:UserID" json:"shopkeeper,omitempty"`
	Customer   *Customer   `gorm:"foreignKey:UserID" json:"customer,omitempty"`
}

func (User) TableName() string {
	return "users"
}
