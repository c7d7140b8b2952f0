package models

import "time"

type OrderItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	OrderID    uint     `gorm:"not null;index" json:"order_id"`
	Order      Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	// UnitPrice is the discounted base price at order time, before variant and
	// addon surcharges.
	UnitPrice float64            `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity  int                `gorm:"not null" json:"quantity"`
	SubTotal  float64            `gorm:"type:decimal(10,2);not null" json:"sub_total"`
	Notes     string             `gorm:"type:text" json:"notes"`
	Variants  []OrderItemVariant `gorm:"foreignKey:OrderItemID" json:"variants"`
	Addons    []OrderItemAddon   `gorm:"foreignKey:OrderItemID" json:"addons"`
	CreatedAt time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time          `gorm:"not null" json:"updated_at"`
}

// OrderItemVariant snapshots one chosen variant option.
type OrderItemVariant struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	OrderItemID     uint    `gorm:"not null;index" json:"order_item_id"`
	VariantID       uint    `gorm:"not null" json:"variant_id"`
	VariantName     string  `gorm:"type:varchar(255);not null" json:"variant_name"`
	VariantOptionID uint    `gorm:"not null" json:"variant_option_id"`
	OptionName      string  `gorm:"type:varchar(255);not null" json:"option_name"`
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// OrderItemAddon snapshots one chosen addon with its quantity.
type OrderItemAddon struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderItemID uint    `gorm:"not null;index" json:"order_item_id"`
	AddonID     uint    `gorm:"not null" json:"addon_id"`
	AddonName   string  `gorm:"type:varchar(255);not null" json:"addon_name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
}
