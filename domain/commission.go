package domain

import (
	"time"

	"gorm.io/datatypes"
)

type (
	// RatingSnapshot is the aggregation result written back onto a restaurant.
	RatingSnapshot struct {
		AverageRating float64 `json:"average_rating"`
		TotalRatings  int     `json:"total_ratings"`
		IsTopRated    bool    `json:"is_top_rated"`
	}

	// CommissionStatus is the composite view exposed to sellers and admin tooling.
	CommissionStatus struct {
		RestaurantID        uint           `json:"restaurant_id"`
		AverageRating       float64        `json:"average_rating"`
		TotalRatings        int            `json:"total_ratings"`
		IsTopRated          bool           `json:"is_top_rated"`
		SliderStatus        SliderStatus   `json:"slider_status"`
		CommissionType      CommissionType `json:"commission_type"`
		CommissionAmount    float64        `json:"commission_amount"`
		SliderPaymentStatus PaymentStatus  `json:"slider_payment_status"`
		SliderPaymentExpiry *time.Time     `json:"slider_payment_expiry"`
		MonthlyOrderCount   int            `json:"monthly_order_count"`
		OrderCount          int            `json:"order_count"`
	}

	// SliderEntry is one public slider slot.
	SliderEntry struct {
		RestaurantID uint    `json:"restaurant_id"`
		Name         string  `json:"name"`
		City         string  `json:"city"`
		Rating       float64 `json:"rating"`
		OrderCount   int     `json:"order_count"`
	}

	// TierCounts is the recalculation pass summary for admin reporting.
	TierCounts struct {
		Slider   int `json:"slider"`
		TopRated int `json:"top_rated"`
	}

	// PaymentEvent is the externally verified "payment succeeded" signal.
	PaymentEvent struct {
		ExternalID string    `json:"external_id"`
		AmountPaid float64   `json:"amount_paid"`
		Currency   string    `json:"currency"`
		PaidAt     time.Time `json:"paid_at"`
	}
)

// CommissionPayment is the audit row kept per verified payment event. The raw
// webhook body is kept alongside for dispute handling.
type CommissionPayment struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RestaurantID uint           `gorm:"column:restaurant_id;not null;index" json:"restaurant_id"`
	ExternalID   string         `gorm:"column:external_id;uniqueIndex;not null" json:"external_id"`
	Amount       float64        `gorm:"column:amount;type:numeric" json:"amount"`
	Currency     string         `gorm:"column:currency;type:varchar(8)" json:"currency"`
	Status       PaymentStatus  `gorm:"column:status;type:varchar(10)" json:"status"`
	Payload      datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload"`
	PaidAt       time.Time      `gorm:"column:paid_at" json:"paid_at"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (CommissionPayment) TableName() string {
	return "commission_payments"
}
