package models

import (
	"time"
)

// Customer represents a registered customer account
type Customer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone        string    `json:"phone" gorm:"size:30"`
	Address      string    `json:"address" gorm:"size:500"`
	PasswordHash string    `json:"-" gorm:"size:255"` // Hidden from JSON
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:CustomerID"`
	Orders   []Order   `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
