// Package model holds the room roster types and the player-visible snapshot.
// Rooms and players are mutable and owned by the service store; snapshots are
// value copies safe to hand to transports.
package model

import (
	"time"

	"github.com/wgale/warfront/api/pkg/risk"
)

// Room capacity and lifecycle limits.
const (
	MaxPlayers = 6
	MinPlayers = 2
	LogWindow  = 30 // trailing log entries exposed in snapshots
)

// RoomStatus is the room lifecycle stage.
type RoomStatus string

const (
	StatusLobby      RoomStatus = "lobby"
	StatusInProgress RoomStatus = "in_progress"
	StatusFinished   RoomStatus = "finished"
)

// Player is one member of a room. The ID doubles as the player's credential,
// so it never appears in another player's URL or log line.
type Player struct {
	ID       string
	Name     string
	Color    string
	IsHuman  bool
	Alive    bool
	JoinedAt time.Time
}

// Room is a lobby and, once started, its single game. Players are kept in
// join order; that order seeds color assignment and the turn shuffle.
type Room struct {
	Code      string
	HostID    string
	Status    RoomStatus
	Players   []*Player
	Game      *risk.GameState
	Log       []string
	UpdatedAt time.Time
}

// Player returns the member with the given ID, or nil.
func (r *Room) Player(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// NameOf returns the display name for a player ID, or "Unknown".
func (r *Room) NameOf(id string) string {
	if p := r.Player(id); p != nil {
		return p.Name
	}
	return "Unknown"
}

// Snapshot is the full externally-visible state of a room, rendered for one
// requesting player. The game has no hidden information, so the static world
// tables ride along on every snapshot.
type Snapshot struct {
	Code    string       `json:"code"`
	Status  RoomStatus   `json:"status"`
	HostID  string       `json:"host_id"`
	You     string       `json:"you"`
	Players []PlayerView `json:"players"`
	Log     []string     `json:"log"`
	Config  RoomConfig   `json:"config"`
	Game    *GameView    `json:"game"`
}

// PlayerView is the public slice of a Player.
type PlayerView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	IsHuman bool   `json:"is_human"`
	Alive   bool   `json:"alive"`
}

// RoomConfig echoes the fixed room limits to clients.
type RoomConfig struct {
	MaxPlayers  int  `json:"max_players"`
	MinPlayers  int  `json:"min_players"`
	AISupported bool `json:"ai_supported"`
}

// GameView is the projected game state.
type GameView struct {
	TurnOrder          []string                  `json:"turn_order"`
	TurnIndex          int                       `json:"turn_index"`
	Phase              risk.Phase                `json:"phase"`
	ReinforcementsLeft int                       `json:"reinforcements_left"`
	WinnerID           string                    `json:"winner_id"`
	FortifiedThisTurn  bool                      `json:"fortified_this_turn"`
	Territories        map[string]TerritoryView  `json:"territories"`
	TerritoryDefs      map[string]risk.Territory `json:"territory_defs"`
	ContinentBonus     map[string]int            `json:"continent_bonus"`
}

// TerritoryView is one territory's ownership and garrison.
type TerritoryView struct {
	Owner  string `json:"owner"`
	Troops int    `json:"troops"`
}
