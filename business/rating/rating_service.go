package rating

import (
	"context"
	"fmt"
	"math"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"
)

// RestaurantRepository contract interface
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	UpdateRating(ctx context.Context, id uint, snapshot domain.RatingSnapshot) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindIDsByRestaurant(ctx context.Context, restaurantID uint) ([]uint64, error)
}

// ReviewRepository contract interface
type ReviewRepository interface {
	FindByProductIDs(ctx context.Context, productIDs []uint64) ([]domain.Review, error)
}

type ratingService struct {
	restaurantRepo RestaurantRepository
	productRepo    ProductRepository
	reviewRepo     ReviewRepository
}

func NewRatingService(restaurantRepo RestaurantRepository, productRepo ProductRepository, reviewRepo ReviewRepository) *ratingService {
	return &ratingService{
		restaurantRepo: restaurantRepo,
		productRepo:    productRepo,
		reviewRepo:     reviewRepo,
	}
}

// Recalculate recomputes a restaurant's rating snapshot from its product
// reviews and persists it. The no-products / no-reviews case legitimately
// zeroes the snapshot; a missing restaurant propagates as not found.
func (s *ratingService) Recalculate(ctx context.Context, restaurantID uint) (domain.RatingSnapshot, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when recalculating rating")
		return domain.RatingSnapshot{}, fmt.Errorf("context error: %w", err)
	}

	if _, err := s.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		logger.Error("restaurant not found for rating recalculation", "restaurant_id", restaurantID, "error", err)
		return domain.RatingSnapshot{}, err
	}

	productIDs, err := s.productRepo.FindIDsByRestaurant(ctx, restaurantID)
	if err != nil {
		logger.Error("failed to load product ids", "restaurant_id", restaurantID, "error", err)
		return domain.RatingSnapshot{}, fmt.Errorf("load products: %w", err)
	}

	var reviews []domain.Review
	if len(productIDs) > 0 {
		reviews, err = s.reviewRepo.FindByProductIDs(ctx, productIDs)
		if err != nil {
			logger.Error("failed to load reviews", "restaurant_id", restaurantID, "error", err)
			return domain.RatingSnapshot{}, fmt.Errorf("load reviews: %w", err)
		}
	}

	snapshot := buildSnapshot(reviews)

	if err := s.restaurantRepo.UpdateRating(ctx, restaurantID, snapshot); err != nil {
		logger.Error("failed to persist rating snapshot", "restaurant_id", restaurantID, "error", err)
		return domain.RatingSnapshot{}, fmt.Errorf("persist rating: %w", err)
	}

	return snapshot, nil
}

func buildSnapshot(reviews []domain.Review) domain.RatingSnapshot {
	if len(reviews) == 0 {
		return domain.RatingSnapshot{}
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	avg := roundHalfUp(float64(sum) / float64(len(reviews)))

	return domain.RatingSnapshot{
		AverageRating: avg,
		TotalRatings:  len(reviews),
		IsTopRated:    domain.TopRated(avg, len(reviews)),
	}
}

// roundHalfUp rounds to one decimal place, halves away from zero.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
