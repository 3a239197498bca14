package models

import (
	"time"
)

// Service represents a cleaning service offered to customers.
// IsAvailable is a pointer so records that never set the flag are treated
// as available (default-available policy).
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(200);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"type:varchar(100)"`
	Duration    int       `json:"duration" gorm:"type:int"` // in minutes
	BasePrice   float64   `json:"base_price" gorm:"type:decimal(10,2)"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(500)"`
	IsAvailable *bool     `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// Available reports whether the service can be booked. A missing flag
// counts as available.
func (s *Service) Available() bool {
	return s.IsAvailable == nil || *s.IsAvailable
}

// ServiceRequest represents the request structure for creating/updating services
type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Duration    int     `json:"duration" binding:"required"`
	BasePrice   float64 `json:"base_price"`
	ImageURL    string  `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}
