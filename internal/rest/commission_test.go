package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommissionService struct {
	statusCalls  int
	invoiceCalls int
}

func (s *stubCommissionService) RecalculateAll(_ context.Context) (domain.TierCounts, error) {
	return domain.TierCounts{}, nil
}

func (s *stubCommissionService) Status(_ context.Context, restaurantID uint) (domain.CommissionStatus, error) {
	s.statusCalls++
	return domain.CommissionStatus{RestaurantID: restaurantID}, nil
}

func (s *stubCommissionService) CreateInvoice(_ context.Context, _ uint, _ string) (string, error) {
	s.invoiceCalls++
	return "https://checkout.example/invoice", nil
}

type stubPaymentHistory struct {
	calls int
}

func (s *stubPaymentHistory) FindByRestaurant(_ context.Context, _ uint) ([]domain.CommissionPayment, error) {
	s.calls++
	return nil, nil
}

type stubOwnerLookup struct {
	owners map[uint]uint
}

func (s *stubOwnerLookup) FindByID(_ context.Context, id uint) (domain.Restaurant, error) {
	owner, ok := s.owners[id]
	if !ok {
		return domain.Restaurant{}, fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, id)
	}
	return domain.Restaurant{ID: id, UserID: owner}, nil
}

func commissionRequest(method string, userID uint, role string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set("user_id", userID)
	c.Set("role", role)
	return c
}

func TestGetStatus_OwnerAllowed(t *testing.T) {
	svc := &stubCommissionService{}
	handler := NewCommissionHandler(svc, &stubPaymentHistory{}, &stubOwnerLookup{owners: map[uint]uint{1: 7}})

	c := commissionRequest(http.MethodGet, 7, middleware.RoleSeller)
	require.NoError(t, handler.GetStatus(c))
	assert.Equal(t, 1, svc.statusCalls)
}

func TestGetStatus_OtherSellerForbidden(t *testing.T) {
	svc := &stubCommissionService{}
	handler := NewCommissionHandler(svc, &stubPaymentHistory{}, &stubOwnerLookup{owners: map[uint]uint{1: 7}})

	c := commissionRequest(http.MethodGet, 8, middleware.RoleSeller)
	err := handler.GetStatus(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	assert.Zero(t, svc.statusCalls, "the service is never reached for a foreign restaurant")
}

func TestGetStatus_AdminBypassesOwnership(t *testing.T) {
	svc := &stubCommissionService{}
	handler := NewCommissionHandler(svc, &stubPaymentHistory{}, &stubOwnerLookup{owners: map[uint]uint{1: 7}})

	c := commissionRequest(http.MethodGet, 99, middleware.RoleAdmin)
	require.NoError(t, handler.GetStatus(c))
	assert.Equal(t, 1, svc.statusCalls)
}

func TestGetPayments_OtherSellerForbidden(t *testing.T) {
	history := &stubPaymentHistory{}
	handler := NewCommissionHandler(&stubCommissionService{}, history, &stubOwnerLookup{owners: map[uint]uint{1: 7}})

	c := commissionRequest(http.MethodGet, 8, middleware.RoleSeller)
	err := handler.GetPayments(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	assert.Zero(t, history.calls)
}

func TestCreateInvoice_OtherSellerForbidden(t *testing.T) {
	svc := &stubCommissionService{}
	handler := NewCommissionHandler(svc, &stubPaymentHistory{}, &stubOwnerLookup{owners: map[uint]uint{1: 7}})

	c := commissionRequest(http.MethodPost, 8, middleware.RoleSeller)
	err := handler.CreateInvoice(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	assert.Zero(t, svc.invoiceCalls)
}

func TestGetStatus_UnknownRestaurantNotFound(t *testing.T) {
	handler := NewCommissionHandler(&stubCommissionService{}, &stubPaymentHistory{}, &stubOwnerLookup{owners: map[uint]uint{}})

	c := commissionRequest(http.MethodGet, 7, middleware.RoleSeller)
	assert.ErrorIs(t, handler.GetStatus(c), domain.ErrNotFound)
}
