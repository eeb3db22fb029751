package progression

import "testing"

func testTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable([]Entry{
		{Level: 1, RankTitle: "Initiate Prompt", XPNeeded: 0},
		{Level: 5, RankTitle: "Efficiency Expert", XPNeeded: 1800},
		{Level: 10, RankTitle: "Prompt Architect", XPNeeded: 6500},
	})
	if err != nil {
		t.Fatalf("NewTable err: %v", err)
	}
	return tbl
}

func TestTableResolve(t *testing.T) {
	tbl := testTable(t)

	cases := []struct {
		xp        int
		wantLevel int
	}{
		{0, 1},
		{1799, 1},
		{1800, 5},
		{6499, 5},
		{6500, 10},
		{10000, 10},
	}
	for _, tc := range cases {
		if got := tbl.Resolve(tc.xp).Level; got != tc.wantLevel {
			t.Fatalf("Resolve(%d) = level %d, want %d", tc.xp, got, tc.wantLevel)
		}
	}
}

func TestTableRankTitle(t *testing.T) {
	tbl := testTable(t)

	if got := tbl.RankTitle(4); got != "Initiate Prompt" {
		t.Fatalf("RankTitle(4) = %q", got)
	}
	if got := tbl.RankTitle(5); got != "Efficiency Expert" {
		t.Fatalf("RankTitle(5) = %q", got)
	}
	if got := tbl.RankTitle(99); got != "Prompt Architect" {
		t.Fatalf("RankTitle(99) = %q", got)
	}
}

func TestTableNextAndProgress(t *testing.T) {
	tbl := testTable(t)

	next, ok := tbl.Next(4)
	if !ok || next.Level != 5 {
		t.Fatalf("Next(4) = %+v, %v", next, ok)
	}

	if _, ok := tbl.Next(10); ok {
		t.Fatalf("Next(10) should report no higher tier")
	}

	if got := tbl.Progress(900, 4); got != 50 {
		t.Fatalf("Progress(900, 4) = %d, want 50", got)
	}
	if got := tbl.Progress(10000, 10); got != 100 {
		t.Fatalf("Progress at max rank = %d, want 100", got)
	}
	if got := tbl.Progress(99999, 4); got != 100 {
		t.Fatalf("Progress must clamp to 100, got %d", got)
	}
	if got := tbl.XPRemaining(1200, 4); got != 600 {
		t.Fatalf("XPRemaining(1200, 4) = %d, want 600", got)
	}
	if got := tbl.XPRemaining(10000, 10); got != 0 {
		t.Fatalf("XPRemaining at max rank = %d, want 0", got)
	}
}

func TestNewTableValidation(t *testing.T) {
	if _, err := NewTable(nil); err == nil {
		t.Fatalf("empty table should be rejected")
	}

	_, err := NewTable([]Entry{
		{Level: 1, XPNeeded: 100},
	})
	if err == nil {
		t.Fatalf("lowest tier must require 0 XP")
	}

	_, err = NewTable([]Entry{
		{Level: 1, XPNeeded: 0},
		{Level: 5, XPNeeded: 1800},
		{Level: 10, XPNeeded: 1500},
	})
	if err == nil {
		t.Fatalf("non-monotonic xp thresholds should be rejected")
	}

	_, err = NewTable([]Entry{
		{Level: 1, XPNeeded: 0},
		{Level: 1, XPNeeded: 500},
	})
	if err == nil {
		t.Fatalf("duplicate levels should be rejected")
	}
}
