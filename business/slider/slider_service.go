package slider

import (
	"context"
	"fmt"
	"sort"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"
)

// RestaurantRepository contract interface
type RestaurantRepository interface {
	FindVerifiedTopRated(ctx context.Context) ([]domain.Restaurant, error)
	FindInSlider(ctx context.Context) ([]domain.Restaurant, error)
}

type sliderService struct {
	restaurantRepo RestaurantRepository
}

func NewSliderService(restaurantRepo RestaurantRepository) *sliderService {
	return &sliderService{
		restaurantRepo: restaurantRepo,
	}
}

// BuildSlider selects the restaurants occupying the promotional slots. Pure
// query, no side effects.
//
// With at most SliderCapacity verified top-rated restaurants the whole set
// qualifies, ordered by rating. With more, the top SliderCapacity by lifetime
// order count are taken first and only then re-sorted by rating for display,
// so a higher-rated restaurant can lose its slot to a higher-volume one.
func (s *sliderService) BuildSlider(ctx context.Context) ([]domain.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	candidates, err := s.restaurantRepo.FindVerifiedTopRated(ctx)
	if err != nil {
		logger.Error("failed to load slider candidates", err)
		return nil, fmt.Errorf("load slider candidates: %w", err)
	}

	if len(candidates) > domain.SliderCapacity {
		// Reward volume first: narrow by lifetime orders, ties broken by id
		// so repeated passes stay deterministic.
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].OrderCount != candidates[j].OrderCount {
				return candidates[i].OrderCount > candidates[j].OrderCount
			}
			return candidates[i].ID < candidates[j].ID
		})
		candidates = candidates[:domain.SliderCapacity]
	}

	sortByRating(candidates)

	return candidates, nil
}

// PublicSlider lists the restaurants currently flagged in_slider, in display
// order. This backs the homepage carousel and stays consistent with what the
// last recalculation pass wrote.
func (s *sliderService) PublicSlider(ctx context.Context) ([]domain.SliderEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	restaurants, err := s.restaurantRepo.FindInSlider(ctx)
	if err != nil {
		logger.Error("failed to load slider members", err)
		return nil, fmt.Errorf("load slider members: %w", err)
	}

	sortByRating(restaurants)

	entries := make([]domain.SliderEntry, 0, len(restaurants))
	for _, r := range restaurants {
		entries = append(entries, domain.SliderEntry{
			RestaurantID: r.ID,
			Name:         r.Name,
			City:         r.City,
			Rating:       r.AverageRating,
			OrderCount:   r.OrderCount,
		})
	}

	return entries, nil
}

// sortByRating orders restaurants by rating descending, lower id first on ties.
func sortByRating(restaurants []domain.Restaurant) {
	sort.SliceStable(restaurants, func(i, j int) bool {
		if restaurants[i].AverageRating != restaurants[j].AverageRating {
			return restaurants[i].AverageRating > restaurants[j].AverageRating
		}
		return restaurants[i].ID < restaurants[j].ID
	})
}
