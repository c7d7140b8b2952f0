package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/models"
	"github.com/mahendrayu/resto-pos/terminal"
	"github.com/mahendrayu/resto-pos/utils"
)

// OrderMonitor cancels unpaid cash-on-delivery and placed orders that were
// never picked up by staff, so the kitchen display does not fill with dead
// orders overnight.
type OrderMonitor struct {
	db *gorm.DB

	// Interval between sweeps and the age after which an untouched placed
	// order is considered stale.
	Interval time.Duration
	MaxAge   time.Duration

	stop chan struct{}
}

func NewOrderMonitor(db *gorm.DB) *OrderMonitor {
	return &OrderMonitor{
		db:       db,
		Interval: 5 * time.Minute,
		MaxAge:   12 * time.Hour,
		stop:     make(chan struct{}),
	}
}

func (m *OrderMonitor) Start() {
	go m.run()
	utils.InfoLogger.Println("Order monitor started")
}

func (m *OrderMonitor) Stop() {
	close(m.stop)
}

func (m *OrderMonitor) run() {
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CancelStaleOrders()
		case <-m.stop:
			return
		}
	}
}

// CancelStaleOrders cancels placed, unpaid orders older than MaxAge and
// notifies the terminals.
func (m *OrderMonitor) CancelStaleOrders() {
	cutoff := time.Now().Add(-m.MaxAge)

	var stale []models.Order
	err := m.db.Where("status = ? AND payment_status = ? AND created_at < ?",
		models.OrderPlaced, models.PaymentStatusUnpaid, cutoff).
		Find(&stale).Error
	if err != nil {
		utils.ErrorLogger.Printf("order monitor: query stale orders: %v", err)
		return
	}

	for _, order := range stale {
		order.Status = models.OrderCancelled
		order.UpdatedAt = time.Now()
		if err := m.db.Save(&order).Error; err != nil {
			utils.ErrorLogger.Printf("order monitor: cancel order %s: %v", order.OrderNumber, err)
			continue
		}
		utils.InfoLogger.Printf("Order %s cancelled as stale (placed %s)", order.OrderNumber, order.CreatedAt)
		terminal.BroadcastOrderCancelled(order)
	}
}
