package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/metrics"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error)
	GetAllOrders(ctx context.Context, userID int) ([]domain.Orders, error)
	GetOrder(ctx context.Context, orderID, userID int) (domain.Orders, error)
}

// RestaurantRepository contract interface. Counter mutations are single
// conditional statements so concurrent order placements cannot race past the
// limit check.
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	RolloverMonthlyCount(ctx context.Context, id uint, now, nextReset time.Time) error
	IncrementMonthlyCount(ctx context.Context, id uint, limit int) (bool, error)
	IncrementOrderCount(ctx context.Context, id uint) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type OrdersService struct {
	orderRepo      OrdersRepository
	restaurantRepo RestaurantRepository
	productRepo    ProductRepository
}

func NewOrdersService(orderRepo OrdersRepository, restaurantRepo RestaurantRepository, productRepo ProductRepository) *OrdersService {
	return &OrdersService{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		productRepo:    productRepo,
	}
}

// CheckAndReserve runs the monthly order-limit gate for one restaurant and, if
// the order is allowed, reserves the slot.
//
// Restaurants owing no commission, or with an active payment window, are
// unrestricted. Unpaid fee-liable restaurants get at most
// domain.MonthlyOrderLimit orders per calendar month. The counter only ever
// moves for unpaid top_rated restaurants; slider-tier restaurants are
// evaluated against the limit but never incremented, so their counter stays 0.
func (s *OrdersService) CheckAndReserve(ctx context.Context, restaurantID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	now := time.Now()

	// Lazy month rollover before the limit is evaluated. Conditional on the
	// stored reset date so concurrent checks reset at most once.
	if err := s.restaurantRepo.RolloverMonthlyCount(ctx, restaurantID, now, domain.FirstOfNextMonth(now)); err != nil {
		logger.Error("failed to roll over monthly counter", "restaurant_id", restaurantID, "error", err)
		return fmt.Errorf("monthly rollover: %w", err)
	}

	r, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return err
	}

	if !r.CommissionDue() || r.PaymentActive(now) {
		return nil
	}

	if r.CommissionType == domain.CommissionTopRated {
		ok, err := s.restaurantRepo.IncrementMonthlyCount(ctx, restaurantID, domain.MonthlyOrderLimit)
		if err != nil {
			logger.Error("failed to increment monthly counter", "restaurant_id", restaurantID, "error", err)
			return fmt.Errorf("increment monthly counter: %w", err)
		}
		if !ok {
			metrics.OrderLimitRejections.Inc()
			return limitReached(r)
		}
		return nil
	}

	// Slider tier: the limit is evaluated against the stored counter but the
	// counter itself never moves for this tier.
	if r.MonthlyOrderCount >= domain.MonthlyOrderLimit {
		metrics.OrderLimitRejections.Inc()
		return limitReached(r)
	}

	return nil
}

// CreateOrder places an order through the gate. The lifetime counter moves on
// every successful order regardless of tier.
func (s *OrdersService) CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error) {
	product, err := s.productRepo.FindByID(ctx, uint64(data.ProductID))
	if err != nil {
		return domain.Orders{}, err
	}

	if product.RestaurantID != data.RestaurantID {
		return domain.Orders{}, &domain.PreconditionError{
			Code:    "PRODUCT_MISMATCH",
			Message: "product does not belong to this restaurant",
		}
	}

	if err := s.CheckAndReserve(ctx, data.RestaurantID); err != nil {
		return domain.Orders{}, err
	}

	data.PriceEach = product.Price
	data.Subtotal = product.Price * float64(data.Quantity)
	data.OrderStatus = "PLACED"
	data.CreatedAt = time.Now()
	data.UpdatedAt = time.Now()

	order, err := s.orderRepo.CreateOrder(ctx, data)
	if err != nil {
		logger.Error("failed to create order", "restaurant_id", data.RestaurantID, "error", err)
		return domain.Orders{}, err
	}

	if err := s.restaurantRepo.IncrementOrderCount(ctx, data.RestaurantID); err != nil {
		logger.Error("failed to increment lifetime order count", "restaurant_id", data.RestaurantID, "error", err)
	}

	return order, nil
}

func (s *OrdersService) GetAllOrders(ctx context.Context, userID int) ([]domain.Orders, error) {
	return s.orderRepo.GetAllOrders(ctx, userID)
}

func (s *OrdersService) GetOrder(ctx context.Context, orderID, userID int) (domain.Orders, error) {
	return s.orderRepo.GetOrder(ctx, orderID, userID)
}

func limitReached(r domain.Restaurant) error {
	return &domain.PreconditionError{
		Code: "MONTHLY_LIMIT_REACHED",
		Message: fmt.Sprintf(
			"monthly order limit of %d reached; pay the %s %.0f commission fee to lift the limit for 30 days",
			domain.MonthlyOrderLimit, domain.CommissionCurrency, r.CommissionAmount,
		),
		Amount: r.CommissionAmount,
	}
}
