package models

import (
	"time"
)

// Order represents a product purchase placed by a customer
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"not null"`
	ProductID  uint      `json:"product_id" gorm:"not null"`
	PaymentID  *uint     `json:"payment_id"` // optional until paid
	Date       string    `json:"date" gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Product  *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Payment  *Payment  `json:"payment,omitempty" gorm:"foreignKey:PaymentID"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
