package repositories

import (
	"context"

	"github.com/ssapkota/hamropasal/app/models"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	HasUserReviewed(ctx context.Context, userID, productID string) (bool, error)
	GetByProductID(ctx context.Context, productID string) ([]models.Review, error)
	RatingsByProductID(ctx context.Context, productID string) ([]int, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) HasUserReviewed(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) GetByProductID(ctx context.Context, productID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) RatingsByProductID(ctx context.Context, productID string) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("product_id = ?", productID).
		Pluck("rating", &ratings).Error
	return ratings, err
}
