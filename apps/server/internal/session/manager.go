package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"promptmaster-lite/progression"
)

const defaultTTL = 24 * time.Hour

// Player binds a browser tab to its progression state. There are no
// accounts or passwords; a lost token simply means a fresh cadet.
type Player struct {
	Token     string
	Progress  *progression.Session
	CreatedAt time.Time
}

// Manager provides in-memory guest session management for single-binary
// deployment. It can be swapped to persistent storage later without
// changing gateway contracts.
type Manager struct {
	mu sync.Mutex

	ttl     time.Duration
	table   *progression.Table
	startXP int
	players map[string]playerRecord // token -> player
}

type playerRecord struct {
	player    *Player
	expiresAt time.Time
}

func NewManager(table *progression.Table, startXP int) *Manager {
	return &Manager{
		ttl:     defaultTTL,
		table:   table,
		startXP: startXP,
		players: make(map[string]playerRecord),
	}
}

// SetTTL overrides the idle expiry. Zero or negative keeps the default.
func (m *Manager) SetTTL(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.mu.Lock()
	m.ttl = ttl
	m.mu.Unlock()
}

// Issue creates a fresh guest session seeded with the starting XP grant.
func (m *Manager) Issue() *Player {
	now := time.Now()
	p := &Player{
		Token:     uuid.NewString(),
		Progress:  progression.NewSession(m.table, m.startXP),
		CreatedAt: now,
	}

	m.mu.Lock()
	m.players[p.Token] = playerRecord{player: p, expiresAt: now.Add(m.ttl)}
	m.mu.Unlock()
	return p
}

// Resolve validates and refreshes a session token. Expired tokens are
// dropped on first sight.
func (m *Manager) Resolve(token string) (*Player, bool) {
	if token == "" {
		return nil, false
	}
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.players[token]
	if !exists {
		return nil, false
	}
	if !now.Before(rec.expiresAt) {
		delete(m.players, token)
		return nil, false
	}
	rec.expiresAt = now.Add(m.ttl)
	m.players[token] = rec
	return rec.player, true
}

// ResolveOrIssue returns the session bound to token if still valid,
// otherwise a brand-new one. The second return reports reuse.
func (m *Manager) ResolveOrIssue(token string) (*Player, bool) {
	if p, ok := m.Resolve(token); ok {
		return p, true
	}
	return m.Issue(), false
}

// Drop invalidates a session token.
func (m *Manager) Drop(token string) {
	if token == "" {
		return
	}
	m.mu.Lock()
	delete(m.players, token)
	m.mu.Unlock()
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.players)
}
