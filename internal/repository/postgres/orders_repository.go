package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error) {
	err := r.DB.WithContext(ctx).Create(&data).Error
	if err != nil {
		return domain.Orders{}, err
	}

	return data, nil
}

func (r *OrdersRepository) GetAllOrders(ctx context.Context, userID int) ([]domain.Orders, error) {
	var orders []domain.Orders
	err := r.DB.WithContext(ctx).Where("user_id=?", userID).Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrdersRepository) GetOrder(ctx context.Context, orderID, userID int) (domain.Orders, error) {
	var order domain.Orders
	err := r.DB.WithContext(ctx).Where("id=?", orderID).Where("user_id=?", userID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Orders{}, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if err != nil {
		return domain.Orders{}, err
	}

	return order, nil
}
