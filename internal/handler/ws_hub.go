package handler

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Event types pushed to WebSocket subscribers. Events carry no game state;
// clients refetch the snapshot, which keeps the push path trivial and the
// store lock out of the hub entirely.
const (
	EventConnected   = "connected"
	EventRoomUpdated = "room_updated"
	EventGameStarted = "game_started"
)

// Event is the envelope for all pushed messages.
type Event struct {
	Type string `json:"type"`
	Room string `json:"room"`
}

// Conn is one subscriber: a WebSocket connection bound to a room member.
type Conn struct {
	playerID string
	room     string
	send     chan []byte
}

// Hub fans events out to the connections watching each room. It has its own
// lock and never touches the room store.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Conn]bool // room code -> subscribers
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Conn]bool)}
}

// Register subscribes a connection to its room.
func (h *Hub) Register(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := roomKey(c.room)
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Conn]bool)
	}
	h.rooms[room][c] = true
}

// Unregister removes a connection and closes its send channel.
func (h *Hub) Unregister(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := roomKey(c.room)
	if conns, ok := h.rooms[room]; ok {
		if conns[c] {
			delete(conns, c)
			close(c.send)
		}
		if len(conns) == 0 {
			delete(h.rooms, room)
		}
	}
}

// BroadcastToRoom sends an event to every subscriber of a room. Slow readers
// get dropped messages, not a blocked hub; they recover on the next refetch.
func (h *Hub) BroadcastToRoom(room string, event Event) {
	event.Room = roomKey(event.Room)
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("room", room).Msg("Failed to marshal event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[roomKey(room)] {
		select {
		case c.send <- data:
		default:
			log.Warn().Str("room", roomKey(room)).Msg("Dropping event, subscriber buffer full")
		}
	}
}

// SubscriberCount returns the number of connections watching a room.
func (h *Hub) SubscriberCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomKey(room)])
}

func roomKey(code string) string {
	return strings.ToUpper(code)
}
