package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	batches   [][]models.Order
	createErr error
	updated   map[string][2]string
}

func (s *stubOrderRepo) CreateBatch(ctx context.Context, orders []models.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.batches = append(s.batches, orders)
	return nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	for _, batch := range s.batches {
		for _, order := range batch {
			if order.ID == id {
				o := order
				return &o, nil
			}
		}
	}
	return nil, nil
}

func (s *stubOrderRepo) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, batch := range s.batches {
		for _, order := range batch {
			if order.UserID == userID {
				out = append(out, order)
			}
		}
	}
	return out, nil
}

func (s *stubOrderRepo) UpdatePayment(ctx context.Context, orderID, paymentStatus, transactionID string) error {
	if s.updated == nil {
		s.updated = map[string][2]string{}
	}
	s.updated[orderID] = [2]string{paymentStatus, transactionID}
	return nil
}

func cartWith(lines ...models.CartLine) *models.Cart {
	cart := models.NewCart()
	for _, line := range lines {
		cart.Lines[line.ProductID] = line
	}
	return cart
}

func TestPlaceOrderMaterializesEveryLine(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo)

	cart := cartWith(
		models.CartLine{UserID: "user-1", ProductID: "p1", Name: "Keyboard", Qty: 2, Price: decimal.NewFromInt(100), Image: "/img/p1.jpg"},
		models.CartLine{UserID: "user-1", ProductID: "p2", Name: "Mouse", Qty: 1, Price: decimal.NewFromInt(50), Image: "/img/p2.jpg"},
	)

	orders, err := svc.PlaceOrder(context.Background(), "user-1", cart, "9800000000", "Kathmandu")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Len(t, repo.batches, 1)

	byName := map[string]models.Order{}
	for _, order := range orders {
		byName[order.ProductName] = order
	}

	keyboard := byName["Keyboard"]
	assert.Equal(t, 2, keyboard.Qty)
	assert.True(t, keyboard.Total.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "/img/p1.jpg", keyboard.Image)

	mouse := byName["Mouse"]
	assert.True(t, mouse.Total.Equal(decimal.NewFromInt(50)))

	for _, order := range orders {
		assert.NotEmpty(t, order.ID)
		assert.Equal(t, "user-1", order.UserID)
		assert.Equal(t, "9800000000", order.Phone)
		assert.Equal(t, "Kathmandu", order.Address)
		assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
		assert.False(t, order.OrderDate.IsZero())
	}
}

func TestPlaceOrderClearsCartOnSuccess(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{})
	cart := cartWith(models.CartLine{UserID: "user-1", ProductID: "p1", Name: "Keyboard", Qty: 1, Price: decimal.NewFromInt(100)})

	_, err := svc.PlaceOrder(context.Background(), "user-1", cart, "9800000000", "Kathmandu")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestPlaceOrderKeepsCartOnFailure(t *testing.T) {
	repoErr := errors.New("deadlock")
	svc := NewOrderService(&stubOrderRepo{createErr: repoErr})
	cart := cartWith(models.CartLine{UserID: "user-1", ProductID: "p1", Name: "Keyboard", Qty: 1, Price: decimal.NewFromInt(100)})

	_, err := svc.PlaceOrder(context.Background(), "user-1", cart, "9800000000", "Kathmandu")
	assert.ErrorIs(t, err, repoErr)
	assert.False(t, cart.IsEmpty())
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{})

	_, err := svc.PlaceOrder(context.Background(), "user-1", models.NewCart(), "9800000000", "Kathmandu")
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = svc.PlaceOrder(context.Background(), "user-1", nil, "9800000000", "Kathmandu")
	assert.ErrorIs(t, err, ErrEmptyCart)
}
