package models

import "time"

// Discount type values shared by menu items, orders and charges.
const (
	DiscountAmount     = "amount"
	DiscountPercentage = "percentage"
)

type MenuItem struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	CategoryID     uint         `gorm:"not null" json:"category_id"`
	Category       MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name           string       `gorm:"type:varchar(255);not null" json:"name"`
	Description    string       `gorm:"type:text" json:"description"`
	Price          float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	DiscountAmount float64      `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount_amount"`
	DiscountType   string       `gorm:"type:varchar(20);not null;default:'amount'" json:"discount_type"`
	IsAvailable    bool         `gorm:"not null;default:true" json:"is_available"`
	Variants       []Variant    `gorm:"foreignKey:MenuItemID" json:"variants"`
	Addons         []Addon      `gorm:"foreignKey:MenuItemID" json:"addons"`
	Charges        []Charge     `gorm:"many2many:menu_item_charges" json:"charges"`
	CreatedAt      time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null" json:"updated_at"`
}
