package models

import "time"

// Review holds one customer's rating and feedback for a product.
// At most one review may exist per (product, user) pair; the review
// service checks before insert.
type Review struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string   `gorm:"size:36;not null;index"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	UserID    string   `gorm:"size:36;not null;index"`
	User      *User    `gorm:"foreignKey:UserID"`
	Rating    int      `gorm:"not null"`
	Feedback  string   `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
