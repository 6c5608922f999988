package domain

import (
	"time"
)

type VerificationStatus string

const (
	VerificationPending      VerificationStatus = "pending"
	VerificationManualReview VerificationStatus = "manual_review"
	VerificationVerified     VerificationStatus = "verified"
	VerificationRejected     VerificationStatus = "rejected"
)

type SliderStatus string

const (
	SliderIn    SliderStatus = "in_slider"
	SliderNotIn SliderStatus = "not_in_slider"
)

type CommissionType string

const (
	CommissionNone     CommissionType = "none"
	CommissionSlider   CommissionType = "slider"
	CommissionTopRated CommissionType = "top_rated"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Fixed business constants for the commission scheme.
const (
	SliderCommissionFee   float64 = 5000
	TopRatedCommissionFee float64 = 1500
	CommissionCurrency            = "PKR"

	SliderCapacity    = 10
	MonthlyOrderLimit = 10

	TopRatedMinRating  = 4.0
	TopRatedMinReviews = 5
	TopRatedMinOrders  = 30
)

type Restaurant struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	UserID             uint               `gorm:"column:user_id;not null;index" json:"user_id"`
	Name               string             `gorm:"column:name;type:text;not null" json:"name"`
	City               string             `gorm:"column:city;type:text" json:"city"`
	VerificationStatus VerificationStatus `gorm:"column:verification_status;type:varchar(20);default:pending;index" json:"verification_status"`

	AverageRating float64 `gorm:"column:average_rating;type:numeric;default:0" json:"average_rating"`
	TotalRatings  int     `gorm:"column:total_ratings;default:0" json:"total_ratings"`
	IsTopRated    bool    `gorm:"column:is_top_rated;default:false;index" json:"is_top_rated"`

	SliderStatus     SliderStatus   `gorm:"column:slider_status;type:varchar(20);default:not_in_slider" json:"slider_status"`
	CommissionType   CommissionType `gorm:"column:commission_type;type:varchar(20);default:none" json:"commission_type"`
	CommissionAmount float64        `gorm:"column:commission_amount;type:numeric;default:0" json:"commission_amount"`

	SliderPaymentStatus PaymentStatus `gorm:"column:slider_payment_status;type:varchar(10);default:unpaid" json:"slider_payment_status"`
	SliderPaymentDate   *time.Time    `gorm:"column:slider_payment_date" json:"slider_payment_date"`
	SliderPaymentExpiry *time.Time    `gorm:"column:slider_payment_expiry" json:"slider_payment_expiry"`

	MonthlyOrderCount     int       `gorm:"column:monthly_order_count;default:0" json:"monthly_order_count"`
	MonthlyOrderResetDate time.Time `gorm:"column:monthly_order_reset_date" json:"monthly_order_reset_date"`

	OrderCount int `gorm:"column:order_count;default:0" json:"order_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// CommissionDue reports whether the restaurant currently owes a commission fee.
func (r Restaurant) CommissionDue() bool {
	return r.CommissionType != CommissionNone && r.CommissionAmount > 0
}

// PaymentActive reports whether a paid commission window covers the given instant.
func (r Restaurant) PaymentActive(now time.Time) bool {
	return r.SliderPaymentStatus == PaymentPaid &&
		r.SliderPaymentExpiry != nil &&
		now.Before(*r.SliderPaymentExpiry)
}

// TopRated applies the fixed rating threshold to an aggregation result.
func TopRated(averageRating float64, totalRatings int) bool {
	return averageRating >= TopRatedMinRating && totalRatings >= TopRatedMinReviews
}

// FirstOfNextMonth returns midnight on the first day of the month after t,
// in t's location.
func FirstOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}
