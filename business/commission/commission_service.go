package commission

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RestaurantRepository contract interface
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	FindVerified(ctx context.Context) ([]domain.Restaurant, error)
	FindVerifiedTopRated(ctx context.Context) ([]domain.Restaurant, error)
	ResetAllTiers(ctx context.Context) error
	AssignTier(ctx context.Context, id uint, sliderStatus domain.SliderStatus, commissionType domain.CommissionType, amount float64) error
	MarkPaid(ctx context.Context, id uint, paidAt, expiry, resetDate time.Time) (bool, error)
}

// RatingService contract interface
type RatingService interface {
	Recalculate(ctx context.Context, restaurantID uint) (domain.RatingSnapshot, error)
}

// SliderService contract interface
type SliderService interface {
	BuildSlider(ctx context.Context) ([]domain.Restaurant, error)
}

// PaymentRepository contract interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.CommissionPayment) error
}

// PaymentProcessor contract interface. Invoice status is always re-fetched
// here before a payment is credited.
type PaymentProcessor interface {
	CreateInvoice(ctx context.Context, externalID, payerEmail, description string, amount float64) (string, error)
	GetInvoice(ctx context.Context, invoiceID string) (domain.XenditInvoice, error)
}

// Locker contract interface, backed by Redis. Serializes payment application
// per restaurant so concurrent webhooks cannot double-credit a window.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type commissionService struct {
	restaurantRepo RestaurantRepository
	ratingService  RatingService
	sliderService  SliderService
	paymentRepo    PaymentRepository
	processor      PaymentProcessor
	locker         Locker
}

func NewCommissionService(
	restaurantRepo RestaurantRepository,
	ratingService RatingService,
	sliderService SliderService,
	paymentRepo PaymentRepository,
	processor PaymentProcessor,
	locker Locker,
) *commissionService {
	return &commissionService{
		restaurantRepo: restaurantRepo,
		ratingService:  ratingService,
		sliderService:  sliderService,
		paymentRepo:    paymentRepo,
		processor:      processor,
		locker:         locker,
	}
}

// RecalculateAll runs the full rating aggregation and tier assignment pass.
// Each restaurant update is an independent write; a failure on one restaurant
// is logged and the pass continues. The whole pass is idempotent and safe to
// re-run after a partial failure.
func (s *commissionService) RecalculateAll(ctx context.Context) (domain.TierCounts, error) {
	if err := ctx.Err(); err != nil {
		return domain.TierCounts{}, fmt.Errorf("context error: %w", err)
	}

	started := time.Now()
	defer func() {
		metrics.RecalculationDuration.Observe(time.Since(started).Seconds())
	}()

	verified, err := s.restaurantRepo.FindVerified(ctx)
	if err != nil {
		logger.Error("failed to load verified restaurants", err)
		return domain.TierCounts{}, fmt.Errorf("load verified restaurants: %w", err)
	}

	for _, r := range verified {
		if _, err := s.ratingService.Recalculate(ctx, r.ID); err != nil {
			logger.Error("rating recalculation failed, continuing pass", "restaurant_id", r.ID, "error", err)
		}
	}

	if err := s.restaurantRepo.ResetAllTiers(ctx); err != nil {
		logger.Error("failed to reset commission tiers", err)
		return domain.TierCounts{}, fmt.Errorf("reset tiers: %w", err)
	}

	sliderSet, err := s.sliderService.BuildSlider(ctx)
	if err != nil {
		return domain.TierCounts{}, err
	}

	var counts domain.TierCounts
	inSlider := make(map[uint]bool, len(sliderSet))

	for _, r := range sliderSet {
		inSlider[r.ID] = true
		if err := s.restaurantRepo.AssignTier(ctx, r.ID, domain.SliderIn, domain.CommissionSlider, domain.SliderCommissionFee); err != nil {
			logger.Error("failed to assign slider tier, continuing pass", "restaurant_id", r.ID, "error", err)
			continue
		}
		counts.Slider++
	}

	topRated, err := s.restaurantRepo.FindVerifiedTopRated(ctx)
	if err != nil {
		logger.Error("failed to load top rated restaurants", err)
		return counts, fmt.Errorf("load top rated restaurants: %w", err)
	}

	for _, r := range topRated {
		if inSlider[r.ID] || r.OrderCount <= domain.TopRatedMinOrders {
			continue
		}
		if err := s.restaurantRepo.AssignTier(ctx, r.ID, domain.SliderNotIn, domain.CommissionTopRated, domain.TopRatedCommissionFee); err != nil {
			logger.Error("failed to assign top rated tier, continuing pass", "restaurant_id", r.ID, "error", err)
			continue
		}
		counts.TopRated++
	}

	logger.Info("commission recalculation pass finished",
		"verified", len(verified), "slider", counts.Slider, "top_rated", counts.TopRated)

	return counts, nil
}

// Status returns the composite commission view for one restaurant.
func (s *commissionService) Status(ctx context.Context, restaurantID uint) (domain.CommissionStatus, error) {
	r, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return domain.CommissionStatus{}, err
	}

	return domain.CommissionStatus{
		RestaurantID:        r.ID,
		AverageRating:       r.AverageRating,
		TotalRatings:        r.TotalRatings,
		IsTopRated:          r.IsTopRated,
		SliderStatus:        r.SliderStatus,
		CommissionType:      r.CommissionType,
		CommissionAmount:    r.CommissionAmount,
		SliderPaymentStatus: r.SliderPaymentStatus,
		SliderPaymentExpiry: r.SliderPaymentExpiry,
		MonthlyOrderCount:   r.MonthlyOrderCount,
		OrderCount:          r.OrderCount,
	}, nil
}

// CreateInvoice issues a hosted-checkout invoice for the owed commission and
// returns the payment link. The external id embeds the restaurant id so the
// webhook can route the result back.
func (s *commissionService) CreateInvoice(ctx context.Context, restaurantID uint, payerEmail string) (string, error) {
	r, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return "", err
	}

	if err := paymentPreconditions(r, time.Now()); err != nil {
		return "", err
	}

	externalID := fmt.Sprintf("commission|%d|%s", r.ID, uuid.NewString())
	description := fmt.Sprintf("%s commission fee %s %.0f", r.CommissionType, domain.CommissionCurrency, r.CommissionAmount)

	invoiceURL, err := s.processor.CreateInvoice(ctx, externalID, payerEmail, description, r.CommissionAmount)
	if err != nil {
		logger.Error("failed to create commission invoice", "restaurant_id", r.ID, "error", err)
		return "", fmt.Errorf("create invoice: %w", err)
	}

	logger.Info("commission invoice created", "restaurant_id", r.ID, "external_id", externalID)

	return invoiceURL, nil
}

// HandlePaymentCallback processes a processor callback. The invoice status and
// amount are re-fetched from the processor API; the callback body alone is
// never trusted.
func (s *commissionService) HandlePaymentCallback(ctx context.Context, invoiceID, externalID string, rawPayload []byte) error {
	restaurantID, err := restaurantIDFromExternalID(externalID)
	if err != nil {
		return err
	}

	invoice, err := s.processor.GetInvoice(ctx, invoiceID)
	if err != nil {
		logger.Error("failed to fetch invoice from processor", "invoice_id", invoiceID, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrPaymentUnverified, err)
	}

	if invoice.Status != domain.InvoiceStatusPaid && invoice.Status != domain.InvoiceStatusSettled {
		logger.Warn("invoice not paid according to processor", "invoice_id", invoiceID, "status", invoice.Status)
		return domain.ErrPaymentUnverified
	}

	if invoice.ExternalID != externalID {
		logger.Warn("external id mismatch on payment callback", "invoice_id", invoiceID)
		return domain.ErrPaymentUnverified
	}

	event := domain.PaymentEvent{
		ExternalID: externalID,
		AmountPaid: invoice.PaidAmount,
		Currency:   invoice.Currency,
		PaidAt:     invoice.PaidAt,
	}
	if event.PaidAt.IsZero() {
		event.PaidAt = time.Now()
	}

	return s.RecordPayment(ctx, restaurantID, event, rawPayload)
}

// RecordPayment applies a verified payment event to the restaurant's
// commission window. A Redis lock per restaurant plus a compare-and-set on the
// payment status column guarantee a window is credited at most once.
func (s *commissionService) RecordPayment(ctx context.Context, restaurantID uint, event domain.PaymentEvent, rawPayload []byte) error {
	lockKey := fmt.Sprintf("commission:payment:%d", restaurantID)

	acquired, err := s.locker.Acquire(ctx, lockKey, 10*time.Second)
	if err != nil {
		logger.Error("failed to acquire payment lock", "restaurant_id", restaurantID, "error", err)
		return fmt.Errorf("acquire payment lock: %w", err)
	}
	if !acquired {
		return &domain.PreconditionError{
			Code:    "PAYMENT_IN_PROGRESS",
			Message: "another payment is being processed for this restaurant",
		}
	}
	defer func() {
		if err := s.locker.Release(ctx, lockKey); err != nil {
			logger.Error("failed to release payment lock", "restaurant_id", restaurantID, "error", err)
		}
	}()

	r, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := paymentPreconditions(r, now); err != nil {
		return err
	}

	if event.AmountPaid < r.CommissionAmount {
		logger.Warn("paid amount below owed commission",
			"restaurant_id", restaurantID, "paid", event.AmountPaid, "owed", r.CommissionAmount)
		return domain.ErrPaymentUnverified
	}

	paidAt := event.PaidAt
	expiry := paidAt.AddDate(0, 1, 0)
	resetDate := domain.FirstOfNextMonth(expiry)

	applied, err := s.restaurantRepo.MarkPaid(ctx, restaurantID, paidAt, expiry, resetDate)
	if err != nil {
		logger.Error("failed to mark commission paid", "restaurant_id", restaurantID, "error", err)
		return fmt.Errorf("mark paid: %w", err)
	}
	if !applied {
		return &domain.PreconditionError{
			Code:    "ALREADY_PAID",
			Message: "commission already paid and the 30-day validity window is still active",
		}
	}

	payment := domain.CommissionPayment{
		RestaurantID: restaurantID,
		ExternalID:   event.ExternalID,
		Amount:       event.AmountPaid,
		Currency:     event.Currency,
		Status:       domain.PaymentPaid,
		Payload:      datatypes.JSON(rawPayload),
		PaidAt:       paidAt,
	}
	if err := s.paymentRepo.Create(ctx, &payment); err != nil {
		logger.Error("failed to record payment audit row", "restaurant_id", restaurantID, "error", err)
		return fmt.Errorf("record payment: %w", err)
	}

	metrics.CommissionPaymentsRecorded.Inc()
	logger.Info("commission payment recorded",
		"restaurant_id", restaurantID, "amount", event.AmountPaid, "expiry", expiry)

	return nil
}

func paymentPreconditions(r domain.Restaurant, now time.Time) error {
	if !r.CommissionDue() {
		return &domain.PreconditionError{
			Code:    "NO_COMMISSION_DUE",
			Message: "restaurant has no commission to pay",
		}
	}

	if r.PaymentActive(now) {
		return &domain.PreconditionError{
			Code:    "ALREADY_PAID",
			Message: "commission already paid and the 30-day validity window is still active",
		}
	}

	return nil
}

func restaurantIDFromExternalID(externalID string) (uint, error) {
	parts := strings.Split(externalID, "|")
	if len(parts) != 3 || parts[0] != "commission" {
		return 0, fmt.Errorf("%w: malformed external id", domain.ErrPaymentUnverified)
	}

	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed restaurant id", domain.ErrPaymentUnverified)
	}

	return uint(id), nil
}
