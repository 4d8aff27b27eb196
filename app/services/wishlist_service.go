package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"gorm.io/gorm"
)

// WishlistService maintains the unique (user, product) membership set.
// It never does a check-then-act insert: the storage-level unique
// index is the arbiter, and a duplicate-key conflict from a racing
// request is reported as "already added".
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
}

func NewWishlistService(wishlistRepo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo}
}

// Add is idempotent: it reports whether a new membership was created.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) (created bool, err error) {
	entry := &models.Wishlist{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := s.wishlistRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("failed to add wishlist entry: %w", err)
	}
	return true, nil
}

// Remove reports whether a membership was actually deleted.
func (s *WishlistService) Remove(ctx context.Context, userID, productID string) (removed bool, err error) {
	removed, err = s.wishlistRepo.Delete(ctx, userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to remove wishlist entry: %w", err)
	}
	return removed, nil
}

// Toggle removes an existing membership or creates a missing one and
// reports the resulting state. Delete-first keeps the operation atomic:
// when the row is absent the insert either wins or collides with a
// concurrent toggle, and the conflict means the product is in the
// wishlist either way.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID string) (inWishlist bool, err error) {
	removed, err := s.wishlistRepo.Delete(ctx, userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle wishlist entry: %w", err)
	}
	if removed {
		return false, nil
	}

	entry := &models.Wishlist{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := s.wishlistRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, fmt.Errorf("failed to toggle wishlist entry: %w", err)
	}
	return true, nil
}
