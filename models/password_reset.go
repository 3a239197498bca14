package models

import (
	"time"
)

// PasswordReset stores a pending password reset token for a customer or
// admin account. Expired rows are purged by the cleanup job.
type PasswordReset struct {
	Token     string    `json:"token" gorm:"primaryKey;size:64"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Role      string    `json:"role" gorm:"size:20;not null"` // "customer" or "admin"
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the PasswordReset model
func (PasswordReset) TableName() string {
	return "password_resets"
}

// Expired reports whether the token is past its validity window
func (r *PasswordReset) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
