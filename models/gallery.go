package models

import (
	"time"
)

// GalleryItem represents a photo or video shown on the public gallery page.
// MediaURL points at the blob store; deleting the record triggers a
// best-effort blob cleanup.
type GalleryItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(200);not null"`
	Description string    `json:"description" gorm:"type:text"`
	MediaURL    string    `json:"media_url" gorm:"type:varchar(500);not null"`
	MediaType   string    `json:"media_type" gorm:"type:varchar(20);not null;default:'image'"`
	Category    string    `json:"category" gorm:"type:varchar(100)"`
	UploadedBy  uint      `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the GalleryItem model
func (GalleryItem) TableName() string {
	return "gallery_items"
}
