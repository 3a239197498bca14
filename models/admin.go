package models

import (
	"time"
)

type AdminRole string

const (
	RoleAdmin     AdminRole = "admin"
	RoleMainAdmin AdminRole = "main_admin"
)

// Admin represents a console operator account
type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Hidden from JSON
	Role         AdminRole `json:"role" gorm:"type:varchar(20);not null;default:'admin';check:role IN ('admin','main_admin')"`
	FirstLogin   bool      `json:"first_login" gorm:"default:true"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}

// IsMainAdmin checks if the admin holds the elevated console role
func (a *Admin) IsMainAdmin() bool {
	return a.Role == RoleMainAdmin
}
