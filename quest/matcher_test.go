package quest

import "testing"

func TestContainsAny_SubstringSemantics(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		phrases []string
		want    bool
	}{
		{"simple hit", "Act as a manager", []string{"act as"}, true},
		{"case folded", "ACT AS A MANAGER", []string{"act as"}, true},
		{"inside larger word", "multitasking is hard", []string{"task"}, true},
		{"no hit", "please help me", []string{"act as", "you are a"}, false},
		{"empty phrase list", "anything", nil, false},
		{"empty text", "", []string{"write"}, false},
		{"empty text empty phrase", "", []string{""}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsAny(tc.text, tc.phrases); got != tc.want {
				t.Fatalf("ContainsAny(%q, %v) = %v, want %v", tc.text, tc.phrases, got, tc.want)
			}
		})
	}
}

func TestWordCount_EmptyTextIsZeroWords(t *testing.T) {
	if got := WordCount(""); got != 0 {
		t.Fatalf("WordCount(empty) = %d, want 0", got)
	}
	if got := WordCount("   \t\n "); got != 0 {
		t.Fatalf("WordCount(whitespace) = %d, want 0", got)
	}
	if got := WordCount("one two  three"); got != 3 {
		t.Fatalf("WordCount = %d, want 3", got)
	}
}
