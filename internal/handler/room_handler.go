package handler

import (
	"net/http"

	"github.com/wgale/warfront/api/internal/apperr"
	"github.com/wgale/warfront/api/internal/service"
	"github.com/wgale/warfront/api/pkg/risk"
)

// RoomHandler translates the HTTP API onto the room store and notifies
// WebSocket subscribers after every successful mutation.
type RoomHandler struct {
	store *service.Store
	hub   *Hub
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(store *service.Store, hub *Hub) *RoomHandler {
	return &RoomHandler{store: store, hub: hub}
}

// CreateRoom handles POST /api/create-room.
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, apperr.New(apperr.InvalidArgument, "Body must be JSON"))
		return
	}

	code, playerID, err := h.store.CreateRoom(req.Name)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeOK(w, map[string]any{"code": code, "player": playerID})
}

// JoinRoom handles POST /api/join-room.
func (h *RoomHandler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, apperr.New(apperr.InvalidArgument, "Body must be JSON"))
		return
	}

	playerID, err := h.store.JoinRoom(req.Code, req.Name)
	if err != nil {
		writeErr(w, err)
		return
	}

	h.hub.BroadcastToRoom(req.Code, Event{Type: EventRoomUpdated, Room: req.Code})
	writeOK(w, map[string]any{"player": playerID})
}

// StartGame handles POST /api/start-game.
func (h *RoomHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code   string `json:"code"`
		Player string `json:"player"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, apperr.New(apperr.InvalidArgument, "Body must be JSON"))
		return
	}

	if err := h.store.StartGame(req.Code, req.Player); err != nil {
		writeErr(w, err)
		return
	}

	h.hub.BroadcastToRoom(req.Code, Event{Type: EventGameStarted, Room: req.Code})
	writeOK(w, nil)
}

// GetState handles GET /api/state?room=&player=.
func (h *RoomHandler) GetState(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	player := r.URL.Query().Get("player")

	snap, err := h.store.GetState(room, player)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeOK(w, map[string]any{"state": snap})
}

// ApplyAction handles POST /api/action.
func (h *RoomHandler) ApplyAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code   string        `json:"code"`
		Player string        `json:"player"`
		Action actionRequest `json:"action"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, apperr.New(apperr.InvalidArgument, "Body must be JSON"))
		return
	}

	action, err := req.Action.toAction()
	if err != nil {
		writeErr(w, err)
		return
	}

	if err := h.store.ApplyAction(req.Code, req.Player, action); err != nil {
		writeErr(w, err)
		return
	}

	h.hub.BroadcastToRoom(req.Code, Event{Type: EventRoomUpdated, Room: req.Code})
	writeOK(w, nil)
}

// actionRequest is the wire shape of an action. The type tag exists only at
// this boundary; everything past it is the closed risk.Action set. Count and
// dice are pointers so an omitted field and an explicit zero stay distinct.
type actionRequest struct {
	Type      string `json:"type"`
	Territory string `json:"territory,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Dice      *int   `json:"dice,omitempty"`
}

func (a actionRequest) toAction() (risk.Action, error) {
	// Absent counts mean "one troop" / "one die"; an explicit zero passes
	// through for the engine to reject.
	count, dice := 1, 1
	if a.Count != nil {
		count = *a.Count
	}
	if a.Dice != nil {
		dice = *a.Dice
	}
	switch a.Type {
	case "reinforce":
		return risk.Reinforce{Territory: a.Territory, Count: count}, nil
	case "attack":
		return risk.Attack{From: a.From, To: a.To, Dice: dice}, nil
	case "end_attack":
		return risk.EndAttack{}, nil
	case "fortify":
		return risk.Fortify{From: a.From, To: a.To, Count: count}, nil
	case "end_turn":
		return risk.EndTurn{}, nil
	default:
		return nil, apperr.New(apperr.InvalidArgument, "Unsupported action")
	}
}
