package models

import "time"

// Wishlist is a (user, product) membership row. The composite unique
// index is what makes the toggle operation safe under concurrent
// requests: a racing duplicate insert fails at the storage layer and
// the conflict is treated as the authoritative outcome.
type Wishlist struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string   `gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product"`
	User      *User    `gorm:"foreignKey:UserID"`
	ProductID string   `gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
}
