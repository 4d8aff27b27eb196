package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID               string       `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name             string       `gorm:"size:200;not null"`
	Slug             string       `gorm:"size:255;not null;uniqueIndex"`
	CategoryID       string       `gorm:"size:36;not null;index"`
	Category         *Category    `gorm:"foreignKey:CategoryID"`
	SubCategoryID    string       `gorm:"size:36;not null;index"`
	SubCategory      *SubCategory `gorm:"foreignKey:SubCategoryID"`
	ShortDescription string       `gorm:"type:text"`
	Description      string       `gorm:"type:text"`
	Image            string       `gorm:"size:255"`
	ProductImages    []ProductImage

	MarkPrice       decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);default:0.00"`
	// Price is derived from MarkPrice and DiscountPercent by
	// calc.SellingPrice on every repository write. It is never
	// accepted from input directly.
	Price decimal.Decimal `gorm:"type:decimal(16,2);not null"`

	Reviews   []Review
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type ProductImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string `gorm:"size:36;not null;index"`
	Path      string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OfferProduct is a promotional banner optionally linked to a product.
type OfferProduct struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title     string   `gorm:"size:200;not null"`
	Desc      string   `gorm:"type:text"`
	Image     string   `gorm:"size:255"`
	IsActive  bool     `gorm:"default:true;index"`
	ProductID *string  `gorm:"size:36;index"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
