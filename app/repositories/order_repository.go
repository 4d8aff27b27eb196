package repositories

import (
	"context"
	"errors"

	"github.com/ssapkota/hamropasal/app/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateBatch writes every order row inside one transaction; a
	// failure on any row rolls back all of them.
	CreateBatch(ctx context.Context, orders []models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	UpdatePayment(ctx context.Context, orderID, paymentStatus, transactionID string) error
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) CreateBatch(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range orders {
			if err := tx.Create(&orders[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *gormOrderRepository) UpdatePayment(ctx context.Context, orderID, paymentStatus, transactionID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_status": paymentStatus,
			"transaction_id": transactionID,
		}).Error
}
