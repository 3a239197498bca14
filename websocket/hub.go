package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a connected admin console
type Client struct {
	Hub   *Hub
	ID    uint // admin ID
	Role  string
	Conn  *websocket.Conn
	Send  chan []byte
	mu    sync.Mutex
}

// Hub manages the WebSocket connections of the admin consoles. New booking
// requests are pushed here so the console updates without polling.
type Hub struct {
	// Registered clients keyed by admin ID
	Clients map[uint]*Client

	// Broadcast channel for messages to all connected consoles
	Broadcast chan *Message

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// Message represents an event pushed to admin consoles
type Message struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[uint]*Client),
		Broadcast:  make(chan *Message),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("🔌 Admin console connected: ID=%d, Role=%s", client.ID, client.Role)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client.ID]; ok {
				delete(h.Clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("🔌 Admin console disconnected: ID=%d", client.ID)

		case message := <-h.Broadcast:
			h.broadcastMessage(message)
		}
	}
}

// broadcastMessage sends a message to all connected consoles
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Error marshaling message: %v", err)
		return
	}

	for id, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(h.Clients, id)
		}
	}
}

// NotifyBookingRequest pushes a new booking request to every connected
// admin console.
func (h *Hub) NotifyBookingRequest(booking interface{}) {
	message := &Message{
		Type:      "booking_request",
		Timestamp: time.Now(),
		Data:      booking,
	}

	select {
	case h.Broadcast <- message:
	default:
		log.Printf("⚠️ Booking notification dropped: hub busy")
	}
}

// NotifyBookingUpdate pushes a status change to every connected console.
func (h *Hub) NotifyBookingUpdate(booking interface{}) {
	message := &Message{
		Type:      "booking_update",
		Timestamp: time.Now(),
		Data:      booking,
	}

	select {
	case h.Broadcast <- message:
	default:
		log.Printf("⚠️ Booking update notification dropped: hub busy")
	}
}

// ConnectedAdmins returns the IDs of the currently connected consoles
func (h *Hub) ConnectedAdmins() []uint {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]uint, 0, len(h.Clients))
	for id := range h.Clients {
		ids = append(ids, id)
	}
	return ids
}
