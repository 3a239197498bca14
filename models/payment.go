package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// RevenueStatuses are the payment states that count towards revenue totals
var RevenueStatuses = []string{string(PaymentStatusCompleted), string(PaymentStatusConfirmed)}

// Payment represents a payment received for an order or quoted booking
type Payment struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	CustomerID uint          `json:"customer_id" gorm:"not null"`
	OrderID    *uint         `json:"order_id"`
	Amount     float64       `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status     PaymentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Method     string        `json:"method" gorm:"type:varchar(50)"`
	Reference  string        `json:"reference" gorm:"type:varchar(64);uniqueIndex"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// CountsTowardsRevenue reports whether the payment is included in revenue totals
func (p *Payment) CountsTowardsRevenue() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusConfirmed
}
