package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTopRated(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		count  int
		want   bool
	}{
		{"meets both thresholds", 4.0, 5, true},
		{"high rating few reviews", 4.9, 4, false},
		{"many reviews low rating", 3.9, 100, false},
		{"zero everything", 0, 0, false},
		{"well above thresholds", 4.8, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopRated(tt.rating, tt.count))
		})
	}
}

func TestFirstOfNextMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"mid month",
			time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
			time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"first of month",
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"december rolls the year",
			time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstOfNextMonth(tt.in))
		})
	}
}

func TestPaymentActive(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, -1, 0)

	r := Restaurant{SliderPaymentStatus: PaymentPaid, SliderPaymentExpiry: &future}
	assert.True(t, r.PaymentActive(now))

	r.SliderPaymentExpiry = &past
	assert.False(t, r.PaymentActive(now), "expired window is not active")

	r = Restaurant{SliderPaymentStatus: PaymentUnpaid, SliderPaymentExpiry: &future}
	assert.False(t, r.PaymentActive(now), "unpaid status is never active regardless of expiry")

	r = Restaurant{SliderPaymentStatus: PaymentPaid}
	assert.False(t, r.PaymentActive(now), "paid with no expiry is not active")
}

func TestCommissionDue(t *testing.T) {
	assert.False(t, Restaurant{CommissionType: CommissionNone}.CommissionDue())
	assert.True(t, Restaurant{CommissionType: CommissionSlider, CommissionAmount: SliderCommissionFee}.CommissionDue())
	assert.True(t, Restaurant{CommissionType: CommissionTopRated, CommissionAmount: TopRatedCommissionFee}.CommissionDue())
}
