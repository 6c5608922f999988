package restaurant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"
)

// RestaurantRepository contract interface
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	UpdateVerificationStatus(ctx context.Context, id uint, status domain.VerificationStatus) error
}

type restaurantService struct {
	restaurantRepo RestaurantRepository
}

func NewRestaurantService(restaurantRepo RestaurantRepository) *restaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
	}
}

func (s *restaurantService) Register(ctx context.Context, restaurant *domain.Restaurant) (domain.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when registering restaurant")
		return domain.Restaurant{}, fmt.Errorf("context error: %w", err)
	}

	if restaurant.Name == "" {
		logger.Error("Invalid restaurant data: name is required")
		return domain.Restaurant{}, errors.New("restaurant name is required")
	}

	if restaurant.UserID == 0 {
		logger.Error("Invalid restaurant data: owner is required")
		return domain.Restaurant{}, errors.New("restaurant owner is required")
	}

	now := time.Now()
	newRestaurant := domain.Restaurant{
		UserID:                restaurant.UserID,
		Name:                  restaurant.Name,
		City:                  restaurant.City,
		VerificationStatus:    domain.VerificationPending,
		SliderStatus:          domain.SliderNotIn,
		CommissionType:        domain.CommissionNone,
		SliderPaymentStatus:   domain.PaymentUnpaid,
		MonthlyOrderResetDate: domain.FirstOfNextMonth(now),
	}

	if err := s.restaurantRepo.Create(ctx, &newRestaurant); err != nil {
		logger.Error("failed to create restaurant", err)
		return domain.Restaurant{}, fmt.Errorf("failed to create restaurant: %w", err)
	}

	logger.Info("restaurant registered", "restaurant_id", newRestaurant.ID)

	return newRestaurant, nil
}

func (s *restaurantService) GetByID(ctx context.Context, id uint) (domain.Restaurant, error) {
	if id == 0 {
		return domain.Restaurant{}, errors.New("invalid restaurant id")
	}

	return s.restaurantRepo.FindByID(ctx, id)
}

// SetVerificationStatus moves a restaurant through the admin-approval state
// machine. The document review itself happens outside this service; only
// validated transitions land here.
func (s *restaurantService) SetVerificationStatus(ctx context.Context, id uint, to domain.VerificationStatus) error {
	if !domain.ValidVerificationStatus(to) {
		return &domain.PreconditionError{
			Code:    "INVALID_STATUS",
			Message: fmt.Sprintf("unknown verification status %q", to),
		}
	}

	r, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.CanTransitionVerification(r.VerificationStatus, to); err != nil {
		return err
	}

	if err := s.restaurantRepo.UpdateVerificationStatus(ctx, id, to); err != nil {
		logger.Error("failed to update verification status", "restaurant_id", id, "error", err)
		return fmt.Errorf("update verification status: %w", err)
	}

	logger.Info("verification status updated", "restaurant_id", id, "status", to)

	return nil
}
