package domain

import (
	"time"
)

type Product struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID uint      `gorm:"column:restaurant_id;not null;index" json:"restaurant_id"`
	ProductName  string    `gorm:"column:product_name;type:text" json:"product_name"`
	Category     string    `gorm:"column:category;type:text" json:"category"`
	Price        float64   `gorm:"column:price;type:numeric" json:"price"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
