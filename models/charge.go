package models

import "time"

// Charge scopes. Delivery charges are attached to orders by the cart engine
// when the order type switches to delivery.
const (
	ChargeTax      = "tax"
	ChargeService  = "service"
	ChargeDelivery = "delivery"
)

// Charge is an admin-managed tax or service charge. Default charges apply to
// every order; non-default charges apply only to menu items linked to them.
type Charge struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Amount     float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	AmountType string    `gorm:"type:varchar(20);not null;default:'percentage'" json:"amount_type"`
	Scope      string    `gorm:"type:varchar(20);not null;default:'tax'" json:"scope"`
	IsDefault  bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
