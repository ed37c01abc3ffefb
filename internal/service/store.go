// Package service owns the room registry and all game mutation. One mutex
// guards every room and game; operations are synchronous, I/O-free, and
// validate before committing, so two requests for the same room always apply
// one after the other with no torn state in between.
package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wgale/warfront/api/internal/apperr"
	"github.com/wgale/warfront/api/internal/model"
	"github.com/wgale/warfront/api/pkg/risk"
)

// codeAlphabet excludes 0, 1, I, and O so codes survive being read aloud.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 5
	codeAttempts = 200
)

// playerColors is the fixed palette, assigned by join order.
var playerColors = []string{
	"#ff6b6b",
	"#4dabf7",
	"#51cf66",
	"#ffd43b",
	"#b197fc",
	"#ffa94d",
}

// Store is the in-memory room registry. Everything behind the mutex.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*model.Room
	ttl   time.Duration

	// Injected so tests can pin shuffles, dice, clocks, and IDs.
	rng         *rand.Rand
	dice        risk.Dice
	now         func() time.Time
	newPlayerID func() string
}

// NewStore creates an empty registry. Rooms idle longer than ttl are purged
// opportunistically on the next room creation.
func NewStore(ttl time.Duration) *Store {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Store{
		rooms:       make(map[string]*model.Room),
		ttl:         ttl,
		rng:         rng,
		dice:        risk.NewDice(rng),
		now:         time.Now,
		newPlayerID: uuid.NewString,
	}
}

// RoomCount returns the number of live rooms.
func (s *Store) RoomCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

// cleanupLocked drops rooms idle past the TTL. Sweep-on-write is enough at
// this cardinality; there is no background sweeper to shut down.
func (s *Store) cleanupLocked() {
	cutoff := s.now().Add(-s.ttl)
	for code, room := range s.rooms {
		if room.UpdatedAt.Before(cutoff) {
			delete(s.rooms, code)
		}
	}
}

// generateCodeLocked draws fresh 5-character codes until one is unused.
// Collisions are vanishingly rare below a few hundred thousand rooms, so
// hitting the retry bound means something is operationally wrong.
func (s *Store) generateCodeLocked() (string, error) {
	for i := 0; i < codeAttempts; i++ {
		b := make([]byte, codeLength)
		for j := range b {
			b[j] = codeAlphabet[s.rng.Intn(len(codeAlphabet))]
		}
		code := string(b)
		if _, taken := s.rooms[code]; !taken {
			return code, nil
		}
	}
	return "", apperr.ExhaustedCodes
}

// roomLocked resolves a code (case-insensitive) to a live room.
func (s *Store) roomLocked(code string) (*model.Room, error) {
	room, ok := s.rooms[normalizeCode(code)]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Room not found")
	}
	return room, nil
}

func normalizeCode(code string) string {
	b := []byte(code)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
