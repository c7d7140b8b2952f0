package models

import "time"

// Order statuses.
const (
	OrderDraft      = "draft"
	OrderPlaced     = "placed"
	OrderPreparing  = "preparing"
	OrderOnDelivery = "on_delivery"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Order types and payment types.
const (
	OrderDineIn   = "dine_in"
	OrderTakeaway = "takeaway"
	OrderDelivery = "delivery"

	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

type Order struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	OrderNumber      string        `gorm:"type:varchar(64);unique;not null" json:"order_number"`
	CustomerID       *uint         `gorm:"index" json:"customer_id,omitempty"`
	Customer         *User         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status           string        `gorm:"type:varchar(20);not null;default:'placed'" json:"status"`
	OrderType        string        `gorm:"type:varchar(20);not null;default:'dine_in'" json:"order_type"`
	PaymentType      string        `gorm:"type:varchar(20);not null;default:'cash'" json:"payment_type"`
	PaymentStatus    string        `gorm:"type:varchar(20);not null;default:'unpaid'" json:"payment_status"`
	DiscountValue    float64       `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount_value"`
	DiscountType     string        `gorm:"type:varchar(20);not null;default:'amount'" json:"discount_type"`
	SubTotal         float64       `gorm:"type:decimal(10,2);not null;default:0.00" json:"sub_total"`
	ChargeTotal      float64       `gorm:"type:decimal(10,2);not null;default:0.00" json:"charge_total"`
	GrandTotal       float64       `gorm:"type:decimal(10,2);not null;default:0.00" json:"grand_total"`
	Note             string        `gorm:"type:text" json:"note"`
	DeliveryPersonID *uint         `gorm:"index" json:"delivery_person_id,omitempty"`
	DeliveryPerson   *User         `gorm:"foreignKey:DeliveryPersonID" json:"delivery_person,omitempty"`
	DeliveryDate     *time.Time    `json:"delivery_date,omitempty"`
	Items            []OrderItem   `gorm:"foreignKey:OrderID" json:"items"`
	Charges          []OrderCharge `gorm:"foreignKey:OrderID" json:"charges"`
	CreatedAt        time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"not null" json:"updated_at"`
}

// OrderCharge is a snapshot of a charge as it was applied to an order, so
// later edits to the charge master data never change past orders.
type OrderCharge struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"not null;index" json:"order_id"`
	ChargeID   *uint   `json:"charge_id,omitempty"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	AmountType string  `gorm:"type:varchar(20);not null" json:"amount_type"`
	Amount     float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Applied    float64 `gorm:"type:decimal(10,2);not null" json:"applied"`
}
