package models

import "time"

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationSeated    = "seated"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   User      `gorm:"foreignKey:CustomerID" json:"customer"`
	PartySize  int       `gorm:"not null" json:"party_size"`
	ReservedAt time.Time `gorm:"not null" json:"reserved_at"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Note       string    `gorm:"type:text" json:"note"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
