// Package progression maps cumulative XP to discrete levels and rank titles
// and owns the per-session XP state.
package progression

import (
	"fmt"
	"sort"
)

// Entry is one tier of the level progression table.
type Entry struct {
	Level     int    `json:"level"`
	RankTitle string `json:"rank_title"`
	XPNeeded  int    `json:"xp_needed"`
}

// Table is an immutable, validated level progression table. Entries are kept
// sorted ascending by level.
type Table struct {
	entries []Entry
}

// NewTable validates and builds a progression table. The table must be
// strictly monotonic in both level and XP, and its lowest tier must be
// reachable at zero XP so every non-negative XP value resolves to a level.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("progression table must not be empty")
	}

	sorted := append([]Entry{}, entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Level == sorted[i-1].Level {
			return nil, fmt.Errorf("duplicate level %d", sorted[i].Level)
		}
		if sorted[i].XPNeeded <= sorted[i-1].XPNeeded {
			return nil, fmt.Errorf("xp_needed must increase with level: level %d has %d <= %d",
				sorted[i].Level, sorted[i].XPNeeded, sorted[i-1].XPNeeded)
		}
	}
	if sorted[0].XPNeeded != 0 {
		return nil, fmt.Errorf("lowest tier must require 0 XP, got %d", sorted[0].XPNeeded)
	}

	return &Table{entries: sorted}, nil
}

// Resolve returns the highest tier whose XP threshold does not exceed the
// given cumulative XP. Total for any non-negative XP.
func (t *Table) Resolve(xp int) Entry {
	best := t.entries[0]
	for _, e := range t.entries {
		if e.XPNeeded <= xp {
			best = e
		}
	}
	return best
}

// RankTitle is the reverse lookup: the title of the highest tier at or below
// the given level.
func (t *Table) RankTitle(level int) string {
	best := t.entries[0]
	for _, e := range t.entries {
		if e.Level <= level {
			best = e
		}
	}
	return best.RankTitle
}

// Next returns the first tier strictly above the given level, if any.
func (t *Table) Next(level int) (Entry, bool) {
	for _, e := range t.entries {
		if e.Level > level {
			return e, true
		}
	}
	return Entry{}, false
}

// Progress reports percentage progress toward the next tier, clamped to
// [0, 100]. At the top tier progress is defined as 100.
func (t *Table) Progress(xp, level int) int {
	next, ok := t.Next(level)
	if !ok {
		return 100
	}
	pct := xp * 100 / next.XPNeeded
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// XPRemaining is the XP still needed to reach the next tier, zero at the top
// tier.
func (t *Table) XPRemaining(xp, level int) int {
	next, ok := t.Next(level)
	if !ok {
		return 0
	}
	remaining := next.XPNeeded - xp
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Entries returns a copy of the sorted table.
func (t *Table) Entries() []Entry {
	return append([]Entry{}, t.entries...)
}
