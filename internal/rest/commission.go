package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/internal/middleware"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CommissionHandler struct {
		validate          *validator.Validate
		commissionService CommissionService
		paymentHistory    PaymentHistory
		ownerLookup       OwnerLookup
	}

	CommissionService interface {
		RecalculateAll(ctx context.Context) (domain.TierCounts, error)
		Status(ctx context.Context, restaurantID uint) (domain.CommissionStatus, error)
		CreateInvoice(ctx context.Context, restaurantID uint, payerEmail string) (string, error)
	}

	PaymentHistory interface {
		FindByRestaurant(ctx context.Context, restaurantID uint) ([]domain.CommissionPayment, error)
	}

	// OwnerLookup resolves the restaurant so seller requests can be matched
	// against the owning user id.
	OwnerLookup interface {
		FindByID(ctx context.Context, id uint) (domain.Restaurant, error)
	}

	InvoiceInput struct {
		PayerEmail string `json:"payer_email" validate:"required,email"`
	}
)

func NewCommissionHandler(commissionService CommissionService, paymentHistory PaymentHistory, ownerLookup OwnerLookup) *CommissionHandler {
	return &CommissionHandler{
		validate:          validator.New(),
		commissionService: commissionService,
		paymentHistory:    paymentHistory,
		ownerLookup:       ownerLookup,
	}
}

// checkOwnership rejects sellers acting on a restaurant they do not own.
// Admins pass through.
func (h *CommissionHandler) checkOwnership(c echo.Context, restaurantID uint) error {
	role, _ := c.Get("role").(string)
	if strings.EqualFold(role, middleware.RoleAdmin) {
		return nil
	}

	restaurant, err := h.ownerLookup.FindByID(c.Request().Context(), restaurantID)
	if err != nil {
		return err
	}

	userID, ok := c.Get("user_id").(uint)
	if !ok || restaurant.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "restaurant does not belong to this seller")
	}

	return nil
}

// Recalculate runs the full rating aggregation and tier assignment pass and
// reports how many restaurants landed in each paid tier.
func (h *CommissionHandler) Recalculate(c echo.Context) error {
	counts, err := h.commissionService.RecalculateAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(counts))
}

func (h *CommissionHandler) GetStatus(c echo.Context) error {
	id := c.Param("id")
	restaurant_id, _ := strconv.Atoi(id)

	if err := h.checkOwnership(c, uint(restaurant_id)); err != nil {
		return err
	}

	status, err := h.commissionService.Status(c.Request().Context(), uint(restaurant_id))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(status))
}

func (h *CommissionHandler) CreateInvoice(c echo.Context) error {
	id := c.Param("id")
	restaurant_id, _ := strconv.Atoi(id)

	if err := h.checkOwnership(c, uint(restaurant_id)); err != nil {
		return err
	}

	var request InvoiceInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate invoice input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	invoiceURL, err := h.commissionService.CreateInvoice(c.Request().Context(), uint(restaurant_id), request.PayerEmail)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]string{
		"invoice_url": invoiceURL,
	}))
}

func (h *CommissionHandler) GetPayments(c echo.Context) error {
	id := c.Param("id")
	restaurant_id, _ := strconv.Atoi(id)

	if err := h.checkOwnership(c, uint(restaurant_id)); err != nil {
		return err
	}

	payments, err := h.paymentHistory.FindByRestaurant(c.Request().Context(), uint(restaurant_id))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(payments))
}
