package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/wgale/warfront/api/internal/logger"
	"github.com/wgale/warfront/api/internal/service"
)

const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = 54 * time.Second // must be less than pongWait
	maxMsgSize  = 512
	sendBufSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS handled by middleware
	},
}

// WSHandler upgrades member connections so they hear about room changes
// without polling.
type WSHandler struct {
	hub   *Hub
	store *service.Store
}

// NewWSHandler creates a WSHandler.
func NewWSHandler(hub *Hub, store *service.Store) *WSHandler {
	return &WSHandler{hub: hub, store: store}
}

// ServeWS handles GET /api/ws?room=&player=. The player token authenticates
// exactly like the polling API; non-members never get an upgrade.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	player := r.URL.Query().Get("player")

	// Membership check doubles as room existence check.
	if _, err := h.store.GetState(room, player); err != nil {
		writeErr(w, err)
		return
	}

	reqLog := logger.ForRequest(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		reqLog.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	c := &Conn{
		playerID: player,
		room:     room,
		send:     make(chan []byte, sendBufSize),
	}
	h.hub.Register(c)

	welcome, _ := json.Marshal(Event{Type: EventConnected, Room: roomKey(room)})
	c.send <- welcome

	go h.writePump(c, conn)
	go h.readPump(c, conn)

	reqLog.Info().Str("room", roomKey(room)).Int("subscribers", h.hub.SubscriberCount(room)).Msg("WebSocket client connected")
}

// readPump discards inbound frames (the socket is push-only) and tears the
// connection down on close or ping timeout.
func (h *WSHandler) readPump(c *Conn, conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(c)
		conn.Close()
		log.Info().Str("room", roomKey(c.room)).Msg("WebSocket client disconnected")
	}()

	conn.SetReadLimit(maxMsgSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("room", roomKey(c.room)).Msg("WebSocket unexpected close")
			}
			return
		}
	}
}

// writePump forwards hub events to the connection and keeps it alive with
// pings.
func (h *WSHandler) writePump(c *Conn, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
