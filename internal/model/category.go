package model

import (
	"path"
	"strings"
	"time"
)

// Category recipe category, unique by name
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null" validate:"required,max=100"`
	Description string    `json:"description" gorm:"not null;default:''" validate:"required"`
	Image       string    `json:"image" gorm:"not null;default:''" validate:"required,startswith=/"` // e.g. /images/categories/breakfast.jpg
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName pins the table name
func (Category) TableName() string {
	return "categories"
}

// Slug image basename without extension, falls back to the lowercased name
func (c Category) Slug() string {
	if c.Image != "" {
		base := path.Base(c.Image)
		if slug := strings.TrimSuffix(base, path.Ext(base)); slug != "" && slug != "/" && slug != "." {
			return slug
		}
	}
	return strings.ToLower(strings.ReplaceAll(c.Name, " ", "-"))
}
