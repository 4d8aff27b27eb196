package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID            string        `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title         string        `gorm:"size:200;not null;uniqueIndex"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// SubCategory belongs to exactly one Category.
type SubCategory struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title      string    `gorm:"size:200;not null"`
	CategoryID string    `gorm:"size:36;not null;index"`
	Category   *Category `gorm:"foreignKey:CategoryID"`

	// Filled by CategoryRepository for the sidebar, never persisted.
	ProductCount int64 `gorm:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
