package postgres

import (
	"context"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

func (r *ReviewRepository) FindByProductIDs(ctx context.Context, productIDs []uint64) ([]domain.Review, error) {
	if len(productIDs) == 0 {
		return []domain.Review{}, nil
	}

	var reviews []domain.Review
	err := r.DB.WithContext(ctx).Where("product_id IN ?", productIDs).Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}
