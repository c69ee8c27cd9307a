package ai

import (
	"testing"
	"time"
)

func TestNewClientEmptyKey(t *testing.T) {
	if c := NewClient("", "m"); c != nil {
		t.Fatal("empty key should yield a nil client")
	}
	if c := NewClient("   ", "m"); c != nil {
		t.Fatal("blank key should yield a nil client")
	}
	if c := NewClient("key", ""); c == nil || c.model != defaultModel {
		t.Fatalf("empty model not defaulted: %+v", c)
	}
}

func TestParseCalorieReply(t *testing.T) {
	est, err := parseCalorieReply(`{"description": "grilled chicken with rice", "calories": 620}`)
	if err != nil {
		t.Fatalf("parseCalorieReply: %v", err)
	}
	if est.Description != "grilled chicken with rice" || est.Calories != 620 {
		t.Fatalf("got %+v", est)
	}
}

func TestParseCalorieReplyFenced(t *testing.T) {
	text := "```json\n{\"description\": \"banana\", \"calories\": 105}\n```"
	est, err := parseCalorieReply(text)
	if err != nil {
		t.Fatalf("parseCalorieReply: %v", err)
	}
	if est.Calories != 105 {
		t.Fatalf("got %+v", est)
	}
}

func TestParseCalorieReplyRejectsImplausible(t *testing.T) {
	for _, text := range []string{
		`{"description": "", "calories": 100}`,
		`{"description": "mystery", "calories": 0}`,
		`{"description": "mystery", "calories": -5}`,
		`not json at all`,
	} {
		if _, err := parseCalorieReply(text); err == nil {
			t.Fatalf("accepted %q", text)
		}
	}
}

func TestParseMatchReply(t *testing.T) {
	text := `{"found": true, "opponent": "Al-Nassr", "competition": "Saudi Pro League", "kickoff": "2025-03-14T19:00:00+03:00"}`
	m, err := parseMatchReply(text)
	if err != nil {
		t.Fatalf("parseMatchReply: %v", err)
	}
	if m == nil || m.Opponent != "Al-Nassr" || m.Competition != "Saudi Pro League" {
		t.Fatalf("got %+v", m)
	}
	if m.ID == "" {
		t.Fatal("no ID assigned")
	}
	want := time.Date(2025, 3, 14, 19, 0, 0, 0, time.FixedZone("", 3*3600))
	if !m.Kickoff.Equal(want) {
		t.Fatalf("kickoff = %v, want %v", m.Kickoff, want)
	}
}

func TestParseMatchReplyNoMatchIsNilNil(t *testing.T) {
	for _, text := range []string{
		`{"found": false}`,
		`{"found": true, "opponent": "", "kickoff": "2025-03-14T19:00:00Z"}`,
		`{"found": true, "opponent": "Al-Nassr", "kickoff": ""}`,
		`{"found": true, "opponent": "Al-Nassr", "kickoff": "next friday"}`,
	} {
		m, err := parseMatchReply(text)
		if err != nil {
			t.Fatalf("%q: err = %v, want nil", text, err)
		}
		if m != nil {
			t.Fatalf("%q: got %+v, want nil", text, m)
		}
	}
}

func TestParseMatchReplyGarbageIsError(t *testing.T) {
	if _, err := parseMatchReply("the next match is on friday"); err == nil {
		t.Fatal("garbage reply did not error")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Fatalf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
