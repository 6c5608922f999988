package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{
		DB: db,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	return r.DB.WithContext(ctx).Create(restaurant).Error
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (domain.Restaurant, error) {
	var restaurant domain.Restaurant
	err := r.DB.WithContext(ctx).Where("id=?", id).First(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Restaurant{}, fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return domain.Restaurant{}, err
	}

	return restaurant, nil
}

func (r *RestaurantRepository) FindVerified(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	err := r.DB.WithContext(ctx).
		Where("verification_status=?", domain.VerificationVerified).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (r *RestaurantRepository) FindVerifiedTopRated(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	err := r.DB.WithContext(ctx).
		Where("verification_status=?", domain.VerificationVerified).
		Where("is_top_rated=?", true).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (r *RestaurantRepository) FindInSlider(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	err := r.DB.WithContext(ctx).
		Where("slider_status=?", domain.SliderIn).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (r *RestaurantRepository) UpdateRating(ctx context.Context, id uint, snapshot domain.RatingSnapshot) error {
	row := r.DB.WithContext(ctx).Model(&domain.Restaurant{}).Where("id=?", id).Updates(map[string]any{
		"average_rating": snapshot.AverageRating,
		"total_ratings":  snapshot.TotalRatings,
		"is_top_rated":   snapshot.IsTopRated,
	})
	if row.Error != nil {
		return row.Error
	}
	if row.RowsAffected == 0 {
		return fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, id)
	}

	return nil
}

func (r *RestaurantRepository) UpdateVerificationStatus(ctx context.Context, id uint, status domain.VerificationStatus) error {
	row := r.DB.WithContext(ctx).Model(&domain.Restaurant{}).Where("id=?", id).
		Update("verification_status", status)
	if row.Error != nil {
		return row.Error
	}
	if row.RowsAffected == 0 {
		return fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, id)
	}

	return nil
}

// ResetAllTiers puts every restaurant back to the free tier. Step one of the
// recalculation pass.
func (r *RestaurantRepository) ResetAllTiers(ctx context.Context) error {
	return r.DB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&domain.Restaurant{}).
		Updates(map[string]any{
			"slider_status":     domain.SliderNotIn,
			"commission_type":   domain.CommissionNone,
			"commission_amount": 0,
		}).Error
}

// AssignTier writes a paid tier onto one restaurant. The payment status drops
// back to unpaid on every assignment, matching the recalculation semantics.
func (r *RestaurantRepository) AssignTier(ctx context.Context, id uint, sliderStatus domain.SliderStatus, commissionType domain.CommissionType, amount float64) error {
	row := r.DB.WithContext(ctx).Model(&domain.Restaurant{}).Where("id=?", id).Updates(map[string]any{
		"slider_status":         sliderStatus,
		"commission_type":       commissionType,
		"commission_amount":     amount,
		"slider_payment_status": domain.PaymentUnpaid,
	})
	if row.Error != nil {
		return row.Error
	}
	if row.RowsAffected == 0 {
		return fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, id)
	}

	return nil
}

// MarkPaid opens a new payment window, compare-and-set on the payment state:
// the update only lands while no window is active. Returns false when another
// payment already opened one.
func (r *RestaurantRepository) MarkPaid(ctx context.Context, id uint, paidAt, expiry, resetDate time.Time) (bool, error) {
	row := r.DB.WithContext(ctx).Model(&domain.Restaurant{}).
		Where("id=?", id).
		Where("slider_payment_status=? OR slider_payment_expiry IS NULL OR slider_payment_expiry <= ?", domain.PaymentUnpaid, paidAt).
		Updates(map[string]any{
			"slider_payment_status":    domain.PaymentPaid,
			"slider_payment_date":      paidAt,
			"slider_payment_expiry":    expiry,
			"monthly_order_count":      0,
			"monthly_order_reset_date": resetDate,
		})
	if row.Error != nil {
		return false, row.Error
	}

	return row.RowsAffected > 0, nil
}

// RolloverMonthlyCount lazily resets the monthly counter once the stored reset
// date has passed. Conditional on the stored date so concurrent checks reset
// at most once.
func (r *RestaurantRepository) RolloverMonthlyCount(ctx context.Context, id uint, now, nextReset time.Time) error {
	return r.DB.WithContext(ctx).Model(&domain.Restaurant{}).
		Where("id=?", id).
		Where("monthly_order_reset_date <= ?", now).
		Updates(map[string]any{
			"monthly_order_count":      0,
			"monthly_order_reset_date": nextReset,
		}).Error
}

// IncrementMonthlyCount bumps the monthly counter only while it is under the
// limit, in a single statement. Returns whether the slot was reserved.
func (r *RestaurantRepository) IncrementMonthlyCount(ctx context.Context, id uint, limit int) (bool, error) {
	row := r.DB.WithContext(ctx).Model(&domain.Restaurant{}).
		Where("id=?", id).
		Where("monthly_order_count < ?", limit).
		Update("monthly_order_count", gorm.Expr("monthly_order_count + 1"))
	if row.Error != nil {
		return false, row.Error
	}

	return row.RowsAffected > 0, nil
}

func (r *RestaurantRepository) IncrementOrderCount(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Model(&domain.Restaurant{}).
		Where("id=?", id).
		Update("order_count", gorm.Expr("order_count + 1")).Error
}
