package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Restaurant{}))

	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, r domain.Restaurant) domain.Restaurant {
	t.Helper()
	require.NoError(t, db.Create(&r).Error)
	return r
}

func TestFindByID_NotFound(t *testing.T) {
	repo := NewRestaurantRepository(setupDB(t))

	_, err := repo.FindByID(context.Background(), 123)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindVerifiedTopRated_Filters(t *testing.T) {
	db := setupDB(t)
	repo := NewRestaurantRepository(db)

	seedRestaurant(t, db, domain.Restaurant{Name: "a", VerificationStatus: domain.VerificationVerified, IsTopRated: true})
	seedRestaurant(t, db, domain.Restaurant{Name: "b", VerificationStatus: domain.VerificationVerified, IsTopRated: false})
	seedRestaurant(t, db, domain.Restaurant{Name: "c", VerificationStatus: domain.VerificationPending, IsTopRated: true})

	got, err := repo.FindVerifiedTopRated(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
}

func TestResetAllTiersAndAssignTier(t *testing.T) {
	db := setupDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	r := seedRestaurant(t, db, domain.Restaurant{
		Name:                "a",
		VerificationStatus:  domain.VerificationVerified,
		SliderStatus:        domain.SliderIn,
		CommissionType:      domain.CommissionSlider,
		CommissionAmount:    domain.SliderCommissionFee,
		SliderPaymentStatus: domain.PaymentPaid,
	})

	require.NoError(t, repo.ResetAllTiers(ctx))

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SliderNotIn, got.SliderStatus)
	assert.Equal(t, domain.CommissionNone, got.CommissionType)
	assert.Zero(t, got.CommissionAmount)

	require.NoError(t, repo.AssignTier(ctx, r.ID, domain.SliderIn, domain.CommissionSlider, domain.SliderCommissionFee))

	got, err = repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SliderIn, got.SliderStatus)
	assert.Equal(t, domain.SliderCommissionFee, got.CommissionAmount)
	assert.Equal(t, domain.PaymentUnpaid, got.SliderPaymentStatus, "assignment always reopens the unpaid state")

	err = repo.AssignTier(ctx, 9999, domain.SliderIn, domain.CommissionSlider, domain.SliderCommissionFee)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkPaid_CompareAndSet(t *testing.T) {
	db := setupDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	r := seedRestaurant(t, db, domain.Restaurant{
		Name:                "a",
		CommissionType:      domain.CommissionSlider,
		CommissionAmount:    domain.SliderCommissionFee,
		SliderPaymentStatus: domain.PaymentUnpaid,
		MonthlyOrderCount:   7,
	})

	paidAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	expiry := paidAt.AddDate(0, 1, 0)
	resetDate := domain.FirstOfNextMonth(expiry)

	applied, err := repo.MarkPaid(ctx, r.ID, paidAt, expiry, resetDate)
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, got.SliderPaymentStatus)
	assert.Zero(t, got.MonthlyOrderCount, "payment resets the monthly counter")
	require.NotNil(t, got.SliderPaymentExpiry)
	assert.WithinDuration(t, expiry, *got.SliderPaymentExpiry, time.Second)

	// A second payment while the window is active must not land.
	applied, err = repo.MarkPaid(ctx, r.ID, paidAt.Add(time.Hour), expiry.Add(time.Hour), resetDate)
	require.NoError(t, err)
	assert.False(t, applied)

	// After the window expires the next payment lands again.
	afterExpiry := expiry.Add(time.Hour)
	applied, err = repo.MarkPaid(ctx, r.ID, afterExpiry, afterExpiry.AddDate(0, 1, 0), domain.FirstOfNextMonth(afterExpiry))
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestRolloverMonthlyCount_Conditional(t *testing.T) {
	db := setupDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	now := time.Now()
	r := seedRestaurant(t, db, domain.Restaurant{
		Name:                  "a",
		MonthlyOrderCount:     9,
		MonthlyOrderResetDate: now.Add(-time.Minute),
	})

	nextReset := domain.FirstOfNextMonth(now)
	require.NoError(t, repo.RolloverMonthlyCount(ctx, r.ID, now, nextReset))

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Zero(t, got.MonthlyOrderCount)
	assert.WithinDuration(t, nextReset, got.MonthlyOrderResetDate, time.Second)

	// The stored reset date is now in the future, so a repeated rollover is a
	// no-op even after new orders land.
	_, err = repo.IncrementMonthlyCount(ctx, r.ID, domain.MonthlyOrderLimit)
	require.NoError(t, err)
	require.NoError(t, repo.RolloverMonthlyCount(ctx, r.ID, now, nextReset))

	got, err = repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MonthlyOrderCount)
}

func TestIncrementMonthlyCount_StopsAtLimit(t *testing.T) {
	db := setupDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	r := seedRestaurant(t, db, domain.Restaurant{Name: "a"})

	for i := 0; i < domain.MonthlyOrderLimit; i++ {
		ok, err := repo.IncrementMonthlyCount(ctx, r.ID, domain.MonthlyOrderLimit)
		require.NoError(t, err)
		assert.True(t, ok, "increment %d is under the limit", i+1)
	}

	ok, err := repo.IncrementMonthlyCount(ctx, r.ID, domain.MonthlyOrderLimit)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MonthlyOrderLimit, got.MonthlyOrderCount)
}

func TestUpdateRating(t *testing.T) {
	db := setupDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	r := seedRestaurant(t, db, domain.Restaurant{Name: "a"})

	snapshot := domain.RatingSnapshot{AverageRating: 4.3, TotalRatings: 12, IsTopRated: true}
	require.NoError(t, repo.UpdateRating(ctx, r.ID, snapshot))

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.3, got.AverageRating)
	assert.Equal(t, 12, got.TotalRatings)
	assert.True(t, got.IsTopRated)

	assert.ErrorIs(t, repo.UpdateRating(ctx, 9999, snapshot), domain.ErrNotFound)
}

func TestUpdateVerificationStatus(t *testing.T) {
	db := setupDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	r := seedRestaurant(t, db, domain.Restaurant{Name: "a", VerificationStatus: domain.VerificationPending})

	require.NoError(t, repo.UpdateVerificationStatus(ctx, r.ID, domain.VerificationVerified))

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationVerified, got.VerificationStatus)

	assert.ErrorIs(t, repo.UpdateVerificationStatus(ctx, 9999, domain.VerificationRejected), domain.ErrNotFound)
}
