package restaurant

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRestaurantRepo struct {
	restaurants map[uint]*domain.Restaurant
	nextID      uint
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: make(map[uint]*domain.Restaurant), nextID: 1}
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) error {
	restaurant.ID = f.nextID
	f.nextID++
	clone := *restaurant
	f.restaurants[restaurant.ID] = &clone
	return nil
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id uint) (domain.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return domain.Restaurant{}, fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, id)
	}
	return *r, nil
}

func (f *fakeRestaurantRepo) UpdateVerificationStatus(_ context.Context, id uint, status domain.VerificationStatus) error {
	r, ok := f.restaurants[id]
	if !ok {
		return fmt.Errorf("%w: restaurant %d", domain.ErrNotFound, id)
	}
	r.VerificationStatus = status
	return nil
}

func TestRegister(t *testing.T) {
	repo := newFakeRestaurantRepo()
	svc := NewRestaurantService(repo)

	got, err := svc.Register(context.Background(), &domain.Restaurant{
		UserID: 3,
		Name:   "Karachi Biryani House",
		City:   "Karachi",
	})
	require.NoError(t, err)

	assert.NotZero(t, got.ID)
	assert.Equal(t, domain.VerificationPending, got.VerificationStatus)
	assert.Equal(t, domain.SliderNotIn, got.SliderStatus)
	assert.Equal(t, domain.CommissionNone, got.CommissionType)
	assert.Equal(t, domain.PaymentUnpaid, got.SliderPaymentStatus)
	assert.Equal(t, domain.FirstOfNextMonth(time.Now()), got.MonthlyOrderResetDate)
}

func TestRegister_RequiredFields(t *testing.T) {
	svc := NewRestaurantService(newFakeRestaurantRepo())

	_, err := svc.Register(context.Background(), &domain.Restaurant{UserID: 3})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), &domain.Restaurant{Name: "no owner"})
	assert.Error(t, err)
}

func TestSetVerificationStatus(t *testing.T) {
	repo := newFakeRestaurantRepo()
	svc := NewRestaurantService(repo)

	created, err := svc.Register(context.Background(), &domain.Restaurant{UserID: 3, Name: "a"})
	require.NoError(t, err)

	require.NoError(t, svc.SetVerificationStatus(context.Background(), created.ID, domain.VerificationVerified))

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationVerified, got.VerificationStatus)
}

func TestSetVerificationStatus_InvalidTransition(t *testing.T) {
	repo := newFakeRestaurantRepo()
	svc := NewRestaurantService(repo)

	created, err := svc.Register(context.Background(), &domain.Restaurant{UserID: 3, Name: "a"})
	require.NoError(t, err)

	require.NoError(t, svc.SetVerificationStatus(context.Background(), created.ID, domain.VerificationRejected))

	err = svc.SetVerificationStatus(context.Background(), created.ID, domain.VerificationVerified)
	pe, ok := domain.AsPrecondition(err)
	require.True(t, ok, "rejected cannot go straight to verified")
	assert.Equal(t, "INVALID_TRANSITION", pe.Code)

	got, _ := svc.GetByID(context.Background(), created.ID)
	assert.Equal(t, domain.VerificationRejected, got.VerificationStatus)
}

func TestSetVerificationStatus_UnknownStatus(t *testing.T) {
	svc := NewRestaurantService(newFakeRestaurantRepo())

	err := svc.SetVerificationStatus(context.Background(), 1, domain.VerificationStatus("frobnicated"))
	pe, ok := domain.AsPrecondition(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_STATUS", pe.Code)
}

func TestSetVerificationStatus_NotFound(t *testing.T) {
	svc := NewRestaurantService(newFakeRestaurantRepo())

	err := svc.SetVerificationStatus(context.Background(), 42, domain.VerificationVerified)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
