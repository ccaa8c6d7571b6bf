// internal/game/game_store.go
package game

import (
	"sync"

	"github.com/google/uuid"
)

// Match pairs an engine with the lock that serializes commands against it.
type Match struct {
	mu     sync.Mutex
	engine *Engine
}

// Do runs fn with exclusive access to the match's engine.
func (m *Match) Do(fn func(*Engine) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.engine)
}

// GameStore keeps the matches a host is running, keyed by engine id.
type GameStore struct {
	mu      sync.Mutex
	matches map[uuid.UUID]*Match
}

// NewGameStore returns an empty store.
func NewGameStore() *GameStore {
	return &GameStore{
		matches: make(map[uuid.UUID]*Match),
	}
}

// AddGame registers an engine and returns its match handle.
func (s *GameStore) AddGame(engine *Engine) *Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := &Match{engine: engine}
	s.matches[engine.ID] = m
	return m
}

// GetGame looks up a match by engine id.
func (s *GameStore) GetGame(id uuid.UUID) (*Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, exists := s.matches[id]
	return m, exists
}

// DeleteGame forgets a match. Unknown ids are ignored.
func (s *GameStore) DeleteGame(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
}

// Len is the number of matches held.
func (s *GameStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}
