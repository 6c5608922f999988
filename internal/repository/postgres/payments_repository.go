package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"

	"gorm.io/gorm"
)

type PaymentsRepository struct {
	DB *gorm.DB
}

func NewPaymentsRepository(db *gorm.DB) *PaymentsRepository {
	return &PaymentsRepository{
		DB: db,
	}
}

func (r *PaymentsRepository) Create(ctx context.Context, payment *domain.CommissionPayment) error {
	return r.DB.WithContext(ctx).Create(payment).Error
}

func (r *PaymentsRepository) FindByExternalID(ctx context.Context, externalID string) (domain.CommissionPayment, error) {
	var payment domain.CommissionPayment
	err := r.DB.WithContext(ctx).Where("external_id=?", externalID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CommissionPayment{}, fmt.Errorf("%w: payment %s", domain.ErrNotFound, externalID)
	}
	if err != nil {
		return domain.CommissionPayment{}, err
	}

	return payment, nil
}

func (r *PaymentsRepository) FindByRestaurant(ctx context.Context, restaurantID uint) ([]domain.CommissionPayment, error) {
	var payments []domain.CommissionPayment
	err := r.DB.WithContext(ctx).
		Where("restaurant_id=?", restaurantID).
		Order("paid_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}
