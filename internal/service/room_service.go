package service

import (
	"fmt"
	"strings"

	"github.com/wgale/warfront/api/internal/apperr"
	"github.com/wgale/warfront/api/internal/model"
	"github.com/wgale/warfront/api/pkg/risk"
)

const nameLimit = 18

// CreateRoom opens a new lobby with the caller as host and returns the room
// code plus the host's player token. Stale rooms are purged first.
func (s *Store) CreateRoom(name string) (code, playerID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupLocked()

	code, err = s.generateCodeLocked()
	if err != nil {
		return "", "", err
	}

	host := &model.Player{
		ID:       s.newPlayerID(),
		Name:     sanitizeName(name),
		Color:    playerColors[0],
		IsHuman:  true,
		Alive:    true,
		JoinedAt: s.now(),
	}
	room := &model.Room{
		Code:      code,
		HostID:    host.ID,
		Status:    model.StatusLobby,
		Players:   []*model.Player{host},
		UpdatedAt: s.now(),
	}
	room.Log = append(room.Log, fmt.Sprintf("%s created room %s.", host.Name, code))
	s.rooms[code] = room
	return code, host.ID, nil
}

// JoinRoom adds a player to a lobby. Names are sanitized and de-duplicated
// case-insensitively against the current roster.
func (s *Store) JoinRoom(code, name string) (playerID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomLocked(code)
	if err != nil {
		return "", err
	}
	if room.Status != model.StatusLobby {
		return "", apperr.New(apperr.InvalidState, "Game already started")
	}
	if len(room.Players) >= model.MaxPlayers {
		return "", apperr.New(apperr.Capacity, "Room is full")
	}

	clean := dedupeName(sanitizeName(name), room.Players)
	player := &model.Player{
		ID:       s.newPlayerID(),
		Name:     clean,
		Color:    playerColors[len(room.Players)%len(playerColors)],
		IsHuman:  true,
		Alive:    true,
		JoinedAt: s.now(),
	}
	room.Players = append(room.Players, player)
	room.Log = append(room.Log, fmt.Sprintf("%s joined.", clean))
	room.UpdatedAt = s.now()
	return player.ID, nil
}

// StartGame partitions the world and begins play. Host only, lobby only,
// and at least two players.
func (s *Store) StartGame(code, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomLocked(code)
	if err != nil {
		return err
	}
	if room.HostID != playerID {
		return apperr.New(apperr.Forbidden, "Only host can start")
	}
	if room.Status != model.StatusLobby {
		return apperr.New(apperr.InvalidState, "Game already started")
	}
	if len(room.Players) < model.MinPlayers {
		return apperr.Newf(apperr.InvalidState, "Need at least %d players", model.MinPlayers)
	}

	ids := make([]string, len(room.Players))
	for i, p := range room.Players {
		ids[i] = p.ID
	}
	room.Game = risk.NewGameState(ids, s.rng)
	room.Status = model.StatusInProgress
	room.Log = append(room.Log, "Game started.")
	room.UpdatedAt = s.now()
	return nil
}

// GetState renders the snapshot for a room member and refreshes the room's
// activity clock.
func (s *Store) GetState(code, playerID string) (*model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomLocked(code)
	if err != nil {
		return nil, err
	}
	if room.Player(playerID) == nil {
		return nil, apperr.New(apperr.Forbidden, "Invalid player")
	}
	room.UpdatedAt = s.now()
	return projectRoom(room, playerID), nil
}

// sanitizeName trims, collapses internal whitespace, and caps the length at
// nameLimit characters, not bytes, so multi-byte names are never cut mid-rune.
// Empty input falls back to "Player".
func sanitizeName(name string) string {
	clean := strings.Join(strings.Fields(name), " ")
	if runes := []rune(clean); len(runes) > nameLimit {
		clean = string(runes[:nameLimit])
	}
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return "Player"
	}
	return clean
}

// dedupeName appends " 2", " 3", ... until the name no longer collides
// case-insensitively, shortening the base so the character cap still holds.
func dedupeName(base string, players []*model.Player) string {
	used := make(map[string]bool, len(players))
	for _, p := range players {
		used[strings.ToLower(p.Name)] = true
	}

	baseRunes := []rune(base)
	candidate := base
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" %d", i)
		keep := nameLimit - len(suffix)
		if keep < 1 {
			keep = 1
		}
		if keep > len(baseRunes) {
			keep = len(baseRunes)
		}
		candidate = strings.TrimSpace(string(baseRunes[:keep]) + suffix)
	}
	return candidate
}
