package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	var product domain.Product
	err := r.DB.WithContext(ctx).Where("id=?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (r *ProductRepository) FindIDsByRestaurant(ctx context.Context, restaurantID uint) ([]uint64, error) {
	var ids []uint64
	err := r.DB.WithContext(ctx).Model(&domain.Product{}).
		Where("restaurant_id=?", restaurantID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
