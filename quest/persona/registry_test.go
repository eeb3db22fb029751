package persona

import "testing"

func TestRegistryLoadFromJSON(t *testing.T) {
	r := NewRegistry()
	err := r.LoadFromJSON([]byte(`[
		{"id": "CHAR_06", "name": "The Scripter", "rank": 6, "ability_id": "SCRIPTER_SYNTAX_SHIELD"},
		{"id": "CHAR_04", "name": "The Analyst", "rank": 4, "ability_id": "ANALYST_CLARITY_FOCUS"},
		{"id": "", "name": "no id, skipped"}
	]`))
	if err != nil {
		t.Fatalf("LoadFromJSON err: %v", err)
	}

	if r.Count() != 2 {
		t.Fatalf("count = %d, want 2 (entry without id skipped)", r.Count())
	}

	p := r.Get("CHAR_06")
	if p == nil || p.Ability() != AbilitySyntaxShield {
		t.Fatalf("CHAR_06 lookup failed: %+v", p)
	}

	if r.Get("CHAR_404") != nil {
		t.Fatalf("unknown id should return nil")
	}

	all := r.All()
	if len(all) != 2 || all[0].Rank < all[1].Rank {
		t.Fatalf("All() should sort by descending rank: %+v", all)
	}
}

func TestRegistryLoadFromJSON_Malformed(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadFromJSON([]byte(`{not json`)); err == nil {
		t.Fatalf("expected parse error")
	}
}
