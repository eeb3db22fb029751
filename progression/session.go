package progression

import (
	"sort"
	"sync"
)

// Session is the transient per-player state: cumulative XP, current level,
// selected persona and passed quests. It lives only for the lifetime of a
// connection; nothing is persisted.
//
// XP flows in through AddXP only, and the stored level never decreases even
// if a (hypothetically broken) table resolved a lower level for higher XP.
type Session struct {
	mu        sync.Mutex
	table     *Table
	xp        int
	level     int
	personaID string
	completed map[string]bool
}

// SessionSnapshot is a read-only view of the session for rendering.
type SessionSnapshot struct {
	XP            int      `json:"xp"`
	Level         int      `json:"level"`
	RankTitle     string   `json:"rankTitle"`
	NextRankTitle string   `json:"nextRankTitle,omitempty"`
	XPRemaining   int      `json:"xpRemaining"`
	Progress      int      `json:"progress"`
	PersonaID     string   `json:"personaId,omitempty"`
	Completed     []string `json:"completed,omitempty"`
}

// NewSession creates a session seeded with startXP; the level is resolved
// from the table.
func NewSession(table *Table, startXP int) *Session {
	if startXP < 0 {
		startXP = 0
	}
	return &Session{
		table:     table,
		xp:        startXP,
		level:     table.Resolve(startXP).Level,
		completed: make(map[string]bool),
	}
}

// AddXP credits a reward and recomputes the level. Negative amounts are
// ignored: XP is monotonic. Returns the new totals.
func (s *Session) AddXP(amount int) (xp, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount > 0 {
		s.xp += amount
	}
	if resolved := s.table.Resolve(s.xp).Level; resolved > s.level {
		s.level = resolved
	}
	return s.xp, s.level
}

// XP returns cumulative XP.
func (s *Session) XP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.xp
}

// Level returns the current level.
func (s *Session) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// SelectPersona sets the active persona for subsequent attempts.
func (s *Session) SelectPersona(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personaID = id
}

// PersonaID returns the active persona identifier, empty when none selected.
func (s *Session) PersonaID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.personaID
}

// MarkCompleted records a passed quest for unlock checks.
func (s *Session) MarkCompleted(questID string) {
	if questID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[questID] = true
}

// HasCompleted reports whether the quest has been passed this session.
func (s *Session) HasCompleted(questID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed[questID]
}

// Snapshot returns a consistent view of the session state.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{
		XP:          s.xp,
		Level:       s.level,
		RankTitle:   s.table.RankTitle(s.level),
		XPRemaining: s.table.XPRemaining(s.xp, s.level),
		Progress:    s.table.Progress(s.xp, s.level),
		PersonaID:   s.personaID,
	}
	if next, ok := s.table.Next(s.level); ok {
		snap.NextRankTitle = next.RankTitle
	}
	for id := range s.completed {
		snap.Completed = append(snap.Completed, id)
	}
	sort.Strings(snap.Completed)
	return snap
}
