package ws

import (
	"context"
	"encoding/json"
	"sync"

	"zabudowy-service/internal/domain/contact"

	"go.uber.org/zap"
)

// Event is the envelope pushed to connected admin clients.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

const (
	EventConnected   = "connected"
	EventNewMessage  = "contact.new"
	EventUnreadCount = "contact.unread_count"
)

// Hub fans out back-office events to every connected admin session.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event
	done       chan struct{}

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 64),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.shutdown()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case ev := <-h.broadcast:
			h.broadcastEvent(ev)
		}
	}
}

// NotifyNewMessage pushes a freshly submitted contact message to all
// connected admins. Safe to call when nobody is connected.
func (h *Hub) NotifyNewMessage(m contact.Message) {
	select {
	case h.broadcast <- &Event{Type: EventNewMessage, Data: m}:
	default:
		h.logger.Warn("websocket broadcast queue full, dropping event",
			zap.String("event", EventNewMessage))
	}
}

// NotifyUnreadCount pushes the current unread inbox counter.
func (h *Hub) NotifyUnreadCount(count int) {
	select {
	case h.broadcast <- &Event{Type: EventUnreadCount, Data: map[string]int{"unread": count}}:
	default:
	}
}

func (h *Hub) ConnectedClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("admin websocket connected",
		zap.String("user_id", client.userID),
		zap.Int("total", total))

	client.send <- mustMarshal(&Event{Type: EventConnected})
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.close()
		h.logger.Info("admin websocket disconnected",
			zap.String("user_id", client.userID),
			zap.Int("total", len(h.clients)))
	}
}

func (h *Hub) broadcastEvent(ev *Event) {
	payload := mustMarshal(ev)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Slow consumer, drop the frame rather than block the hub.
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.close()
	}
	h.clients = make(map[*Client]bool)
}

func mustMarshal(ev *Event) []byte {
	data, err := json.Marshal(ev)
	if err != nil {
		return []byte(`{"type":"error"}`)
	}
	return data
}
