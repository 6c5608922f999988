package domain

import "time"

// Review ratings are integers 1-5, one review per buyer/product pair.
type Review struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint64    `gorm:"column:product_id;not null;index" json:"product_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
