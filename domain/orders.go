package domain

import "time"

type Orders struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	UserID       int       `gorm:"column:user_id;not null;index" json:"user_id"`
	RestaurantID uint      `gorm:"column:restaurant_id;not null;index" json:"restaurant_id"`
	ProductID    int       `gorm:"column:product_id;not null" json:"product_id"`
	Quantity     int       `gorm:"column:quantity" json:"quantity"`
	PriceEach    float64   `gorm:"column:price_each;type:numeric" json:"price_each"`
	Subtotal     float64   `gorm:"column:subtotal;type:numeric" json:"subtotal"`
	OrderStatus  string    `gorm:"column:order_status;default:PLACED" json:"order_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Orders) TableName() string {
	return "orders"
}
