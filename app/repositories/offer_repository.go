package repositories

import (
	"context"

	"github.com/ssapkota/hamropasal/app/models"
	"gorm.io/gorm"
)

type OfferRepository interface {
	GetActive(ctx context.Context) ([]models.OfferProduct, error)
	Create(ctx context.Context, offer *models.OfferProduct) error
}

type offerRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db}
}

func (r *offerRepository) GetActive(ctx context.Context) ([]models.OfferProduct, error) {
	var offers []models.OfferProduct
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("is_active = ?", true).
		Find(&offers).Error
	return offers, err
}

func (r *offerRepository) Create(ctx context.Context, offer *models.OfferProduct) error {
	return r.db.WithContext(ctx).Create(offer).Error
}
