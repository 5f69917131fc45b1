package ws

import (
	"encoding/json"
	"sync"

	"citadel_backend/internal/events"
	"citadel_backend/internal/logger"
)

// Hub fans the engine's event stream out to connected websocket clients.
// Each client may filter on a single resource id; an empty filter receives
// everything.
type Hub struct {
	log *events.Log

	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewHub(log *events.Log) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[*Client]bool),
	}
}

// Run consumes the event subscription until the process exits. Meant to be
// launched as a goroutine at startup.
func (h *Hub) Run() {
	ch, cancel := h.log.Subscribe()
	defer cancel()

	for ev := range ch {
		payload, err := json.Marshal(ev)
		if err != nil {
			logger.Error("ws hub: marshal event", "type", ev.Type, "error", err)
			continue
		}
		h.broadcast(ev, payload)
	}
}

func (h *Hub) broadcast(ev events.Event, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.Filter != "" && c.Filter != ev.ResourceID {
			continue
		}
		select {
		case c.Send <- payload:
		default:
			// Slow consumer: drop rather than block the stream.
		}
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	count := len(h.clients)
	h.mu.Unlock()
	logger.Debug("ws client connected", "identity", c.IdentityID, "clients", count)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
	h.mu.Unlock()
}

// ClientCount reports connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
