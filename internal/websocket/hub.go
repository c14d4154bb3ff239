package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Event types pushed to dashboard clients
const (
	EventNotification      = "notification"
	EventToast             = "toast"
	EventSettingsUpdated   = "settings_updated"
	EventContainersUpdated = "containers_updated"
	EventSessionEnded      = "session_ended"
	EventProfileUpdated    = "profile_updated"
)

// Event is the envelope of every pushed message
type Event struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
}

func NewEvent(eventType string, data any) Event {
	return Event{Type: eventType, Timestamp: time.Now().Format(time.RFC3339), Data: data}
}

// Hub maintains active dashboard connections. A user may hold several
// connections (one per open tab).
type Hub struct {
	clients map[*Client]struct{}

	// Outbound messages, targeted by the filter
	broadcast chan *message

	register   chan *Client
	unregister chan *Client

	// closed when Run returns
	done chan struct{}

	mu sync.RWMutex
}

type message struct {
	data   []byte
	filter func(*Client) bool
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan *message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves register/unregister/broadcast until ctx is done, then closes
// every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			log.Println("🔴 [WEBSOCKET] Hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
			log.Printf("✅ [WEBSOCKET] Client CONNECTED")
			log.Printf("   User ID: %s", client.UserID)
			log.Printf("   Role: %s", client.UserRole)
			log.Printf("   Total connected clients: %d", total)
			log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("🔴 [WEBSOCKET] Client DISCONNECTED: %s (remaining: %d)", client.UserID, len(h.clients))
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if msg.filter != nil && !msg.filter(client) {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					// Client buffer full, disconnect
					close(client.send)
					delete(h.clients, client)
					log.Printf("⚠️ Client buffer full, disconnecting: %s", client.UserID)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) enqueue(ev Event, filter func(*Client) bool) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("❌ Failed to marshal %s event: %v", ev.Type, err)
		return
	}
	select {
	case h.broadcast <- &message{data: data, filter: filter}:
	default:
		log.Printf("⚠️ Broadcast queue full, dropping %s event", ev.Type)
	}
}

// Broadcast sends an event to every connected client
func (h *Hub) Broadcast(eventType string, data any) {
	h.enqueue(NewEvent(eventType, data), nil)
}

// BroadcastToUser sends an event to every connection of one user
func (h *Hub) BroadcastToUser(userID, eventType string, data any) {
	h.enqueue(NewEvent(eventType, data), func(c *Client) bool { return c.UserID == userID })
}

// GetClientCount returns the number of open connections
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Register adds a client. It reports false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client; it never blocks after the hub has stopped
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Stopped is closed once Run has returned
func (h *Hub) Stopped() <-chan struct{} { return h.done }
