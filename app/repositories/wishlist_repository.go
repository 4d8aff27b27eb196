package repositories

import (
	"context"

	"github.com/ssapkota/hamropasal/app/models"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	// Create returns gorm.ErrDuplicatedKey when the (user, product)
	// membership already exists; callers treat that conflict as the
	// authoritative outcome.
	Create(ctx context.Context, entry *models.Wishlist) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, userID, productID string) (bool, error)
	Exists(ctx context.Context, userID, productID string) (bool, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Wishlist, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db}
}

func (r *wishlistRepository) Create(ctx context.Context, entry *models.Wishlist) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *wishlistRepository) Delete(ctx context.Context, userID, productID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Wishlist{})
	return res.RowsAffected > 0, res.Error
}

func (r *wishlistRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Wishlist{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *wishlistRepository) GetByUserID(ctx context.Context, userID string) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.ProductImages").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
