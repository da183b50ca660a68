// Package sse streams garden events to connected clients as server-sent events
package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HealingGarden_Go/internal/logger"
)

// Event is one message on a client's stream
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	ProfileID string `json:"profileId"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is a connected stream for one profile
type Client struct {
	ID           string
	ProfileID    string
	EventChannel chan Event
	// EventFilter is nil for all event types
	EventFilter map[string]bool
}

func (c *Client) wants(ev Event) bool {
	if ev.ProfileID != c.ProfileID {
		return false
	}
	return c.EventFilter == nil || c.EventFilter[ev.Type]
}

// Hub fans garden events out to the clients watching the same profile
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		now:        time.Now,
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the broadcast loop and closes every client stream
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(ev) {
					continue
				}
				// A slow client misses events rather than stalling the others
				select {
				case client.EventChannel <- ev:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client for profileID. With eventTypes empty it receives every
// event of that profile. After Stop the returned client's channel is closed.
func (h *Hub) Register(profileID string, eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		ProfileID:    profileID,
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.EventChannel)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for the clients watching profileID
func (h *Hub) Broadcast(profileID, eventType string, payload any) {
	ev := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ProfileID: profileID,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- ev:
	default:
		logger.Warn(LogMsgEventDropped, "event_type", eventType, logger.AttrKeyProfileID, profileID)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an event in the text/event-stream wire format
func FormatSSEMessage(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}

	msg := "id: " + ev.ID + "\n"
	msg += "event: " + ev.Type + "\n"
	msg += "data: " + string(data) + "\n\n"
	return []byte(msg), nil
}
