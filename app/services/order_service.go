package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderService materializes carts into orders: each session cart line
// becomes one persisted Order row snapshotting name, quantity, unit
// price, computed total and image, plus the delivery phone/address.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// PlaceOrder writes every cart line as an Order row in a single
// all-or-nothing transaction and clears the cart only once the rows
// are committed. The caller is responsible for saving the cleared
// cart back to the session.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, cart *models.Cart, phone, address string) ([]models.Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	orders := make([]models.Order, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		orders = append(orders, models.Order{
			ID:            uuid.New().String(),
			UserID:        userID,
			ProductName:   line.Name,
			Qty:           line.Qty,
			Price:         line.Price,
			Total:         line.Price.Mul(decimal.NewFromInt(int64(line.Qty))),
			Image:         line.Image,
			Phone:         phone,
			Address:       address,
			PaymentStatus: models.PaymentStatusPending,
			OrderDate:     now,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	if err := s.orderRepo.CreateBatch(ctx, orders); err != nil {
		return nil, fmt.Errorf("failed to materialize cart into orders: %w", err)
	}

	cart.Clear()
	return orders, nil
}
