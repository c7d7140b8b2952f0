package models

import "time"

// Business is the single-row business profile edited from the admin dashboard.
type Business struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Address        string    `gorm:"type:text" json:"address"`
	Phone          string    `gorm:"type:varchar(50)" json:"phone"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	Currency       string    `gorm:"type:varchar(10);not null;default:'IDR'" json:"currency"`
	DeliveryCharge float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"delivery_charge"`
	OpeningTime    string    `gorm:"type:varchar(10)" json:"opening_time"`
	ClosingTime    string    `gorm:"type:varchar(10)" json:"closing_time"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
