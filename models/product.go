package models

import (
	"time"
)

// Product represents a cleaning product sold through the shop
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(200);not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Price         float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int       `json:"stock_quantity" gorm:"default:0"`
	ImageURL      string    `json:"image_url" gorm:"type:varchar(500)"`
	IsAvailable   *bool     `json:"is_available" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Available reports whether the product can be ordered
func (p *Product) Available() bool {
	return p.IsAvailable == nil || *p.IsAvailable
}

// ProductRequest represents the request structure for creating/updating products
type ProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      string  `json:"image_url"`
	IsAvailable   *bool   `json:"is_available"`
}
