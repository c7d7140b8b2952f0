package terminal

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/mahendrayu/resto-pos/models"
	"github.com/mahendrayu/resto-pos/utils"
)

// Event types pushed to connected POS terminals.
const (
	EventOrderCreated     = "order_created"
	EventOrderUpdated     = "order_updated"
	EventOrderCancelled   = "order_cancelled"
	EventPaymentUpdated   = "payment_updated"
	EventReservationNotif = "reservation_notification"
	EventStaffNotif       = "staff_notification"
	EventCartState        = "cart_state"
	EventError            = "error"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// client wraps one websocket connection. Gorilla connections allow a single
// writer at a time, so every write goes through the client's mutex: the
// handler replying to its own terminal and the hub fanning out broadcasts
// both take it.
type client struct {
	role string
	mu   sync.Mutex
}

func (cl *client) write(conn *websocket.Conn, data []byte) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

// Hub holds every connected POS terminal and storefront admin session.
// Broadcasts fan out to all of them; terminals filter by event client-side.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]*client),
}

// RegisterClient adds a connection with the authenticated role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = &client{role: role}
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// Reply sends a message to a single registered connection, serialized
// against any broadcast targeting the same connection.
func Reply(conn *websocket.Conn, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	hub.mutex.Lock()
	cl, ok := hub.clients[conn]
	hub.mutex.Unlock()
	if !ok {
		return errors.New("connection not registered")
	}
	return cl.write(conn, data)
}

// BroadcastOrderCreated announces a freshly placed order.
func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{Event: EventOrderCreated, Data: order})
}

// BroadcastOrderUpdated announces status/assignment changes on an order.
func BroadcastOrderUpdated(order models.Order) {
	broadcast(Message{Event: EventOrderUpdated, Data: order})
}

// BroadcastOrderCancelled announces a cancelled or expired order.
func BroadcastOrderCancelled(order models.Order) {
	broadcast(Message{Event: EventOrderCancelled, Data: order})
}

// BroadcastPaymentUpdated announces a payment status change.
func BroadcastPaymentUpdated(order models.Order) {
	broadcast(Message{Event: EventPaymentUpdated, Data: order})
}

// BroadcastReservation announces reservation changes to staff terminals.
func BroadcastReservation(reservation models.Reservation) {
	broadcast(Message{Event: EventReservationNotif, Data: reservation})
}

// BroadcastStaffNotification pushes a plain text notice to staff terminals.
func BroadcastStaffNotification(text string) {
	broadcast(Message{Event: EventStaffNotif, Data: text})
}

func broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("terminal: marshal broadcast: %v", err)
		return
	}

	hub.mutex.Lock()
	targets := make(map[*websocket.Conn]*client, len(hub.clients))
	for conn, cl := range hub.clients {
		targets[conn] = cl
	}
	hub.mutex.Unlock()

	for conn, cl := range targets {
		if err := cl.write(conn, data); err != nil {
			utils.ErrorLogger.Printf("terminal: send to %s client: %v", cl.role, err)
		}
	}
}
