package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"github.com/ssapkota/hamropasal/app/utils/calc"
)

var (
	ErrDuplicateReview  = errors.New("user has already reviewed this product")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrFeedbackRequired = errors.New("feedback is required")
)

// ReviewSummary is the display-oriented aggregate for one product:
// the mean rating rounded to one decimal and its star breakdown.
type ReviewSummary struct {
	Count   int            `json:"count"`
	Average float64        `json:"average"`
	Stars   calc.StarSplit `json:"stars"`
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// Submit persists a new review after the one-per-(user, product)
// check and input validation.
func (s *ReviewService) Submit(ctx context.Context, userID, productID string, rating int, feedback string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	if strings.TrimSpace(feedback) == "" {
		return nil, ErrFeedbackRequired
	}

	exists, err := s.reviewRepo.HasUserReviewed(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Feedback:  feedback,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// Aggregate computes the product's average rating (0 when there are no
// reviews) rounded to one decimal, plus the star split, which always
// sums to five.
func (s *ReviewService) Aggregate(ctx context.Context, productID string) (ReviewSummary, error) {
	ratings, err := s.reviewRepo.RatingsByProductID(ctx, productID)
	if err != nil {
		return ReviewSummary{}, fmt.Errorf("failed to load ratings: %w", err)
	}

	summary := ReviewSummary{Count: len(ratings)}
	if len(ratings) > 0 {
		sum := 0
		for _, rating := range ratings {
			sum += rating
		}
		average := float64(sum) / float64(len(ratings))
		summary.Average = math.Round(average*10) / 10
	}
	summary.Stars = calc.SplitStars(summary.Average)
	return summary, nil
}
