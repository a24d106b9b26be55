package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wuxing-arcade/internal/storage"
)

func TestShortReason(t *testing.T) {
	tests := map[string]string{
		"":                        "-",
		"Hit the danger line":     "Danger line",
		"Overwhelmed by pressure": "Pressure",
		"Abandoned":               "Abandoned",
	}
	for in, want := range tests {
		if got := shortReason(in); got != want {
			t.Errorf("shortReason(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestScoreboardLoadsScoresAndStats(t *testing.T) {
	store := testStore(t)
	results := []storage.Result{
		{GameID: "wuxing", Player: "ann", Score: 40, Shots: 9, EndReason: "Hit the danger line"},
		{GameID: "wuxing", Player: "bob", Score: 90, Shots: 14, EndReason: "Overwhelmed by pressure"},
		{GameID: "other", Score: 500},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, "wuxing", "Wuxing Bubbles", 120, 30)

	if len(m.scores) != 2 {
		t.Fatalf("expected 2 scores for wuxing, got %d", len(m.scores))
	}
	if m.scores[0].Player != "bob" {
		t.Errorf("best score should come first, got %+v", m.scores[0])
	}
	if m.stats == nil || m.stats.GamesCount != 2 || m.stats.HighScore != 90 {
		t.Errorf("unexpected stats %+v", m.stats)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Wuxing Bubbles", "Stats", "bob", "Pressure"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "wuxing", "Wuxing Bubbles", 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should show the placeholder")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "wuxing", "Wuxing Bubbles", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
