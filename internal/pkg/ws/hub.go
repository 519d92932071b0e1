package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event is a notification pushed to connected students when an admin
// broadcasts for a visiting company.
type Event struct {
	CompanyName string    `json:"companyName"`
	Message     string    `json:"message"`
	Date        time.Time `json:"date"`
}

// Hub maintains the set of connected notification-stream clients, keyed by
// student ID, and fans broadcast events out to them. The stream is push-only:
// clients never send application data upstream.
type Hub struct {
	clients map[int64]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run starts the hub loop, handling client registrations and departures.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.studentID]; !ok {
		h.clients[client.studentID] = make(map[*Client]bool)
	}
	h.clients[client.studentID][client] = true

	h.logger.Info().
		Int64("studentID", client.studentID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Notification stream client connected")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.clients[client.studentID]; ok {
		if _, ok := conns[client]; ok {
			delete(conns, client)
			close(client.send)
			if len(conns) == 0 {
				delete(h.clients, client.studentID)
			}
			h.logger.Info().
				Int64("studentID", client.studentID).
				Msg("Notification stream client disconnected")
		}
	}
}

// Publish pushes an event to every connected client among the targeted
// students. Students without an open stream simply miss the push; the
// notification is already persisted and shows up on the next inbox read.
func (h *Hub) Publish(event *Event, studentIDs []int64) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal notification event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, id := range studentIDs {
		for client := range h.clients[id] {
			select {
			case client.send <- data:
				delivered++
			default:
				// Slow or gone; the read pump will clean the client up.
			}
		}
	}

	h.logger.Debug().
		Int("targets", len(studentIDs)).
		Int("delivered", delivered).
		Str("companyName", event.CompanyName).
		Msg("Notification event published")
}
