package models

import "time"

// Variant selection modes and requirements.
const (
	SelectionSingle   = "single"
	SelectionMultiple = "multiple"

	VariantRequired = "required"
	VariantOptional = "optional"
)

// Variant is a named group of options attached to a menu item, e.g. "Size"
// (single, required) or "Toppings" (multiple, optional, max 3).
type Variant struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	MenuItemID    uint            `gorm:"not null;index" json:"menu_item_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	SelectionMode string          `gorm:"type:varchar(20);not null;default:'single'" json:"selection_mode"`
	Requirement   string          `gorm:"type:varchar(20);not null;default:'optional'" json:"requirement"`
	MinSelect     int             `gorm:"not null;default:0" json:"min_select"`
	MaxSelect     int             `gorm:"not null;default:0" json:"max_select"`
	Options       []VariantOption `gorm:"foreignKey:VariantID" json:"options"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

type VariantOption struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VariantID uint      `gorm:"not null;index" json:"variant_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"price"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
