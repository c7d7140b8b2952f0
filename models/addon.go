package models

import "time"

type Addon struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MenuItemID  uint      `gorm:"not null;index" json:"menu_item_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"price"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
