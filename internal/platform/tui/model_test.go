package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wuxing-arcade/internal/core"
	"github.com/vovakirdan/wuxing-arcade/internal/storage"
)

type stubGame struct {
	resets int
	seed   int64
	score  int
	over   bool
	lastIn core.InputFrame
}

func (s *stubGame) ID() string    { return "stub" }
func (s *stubGame) Title() string { return "Stub" }
func (s *stubGame) Shots() int    { return 7 }

func (s *stubGame) Reset(cfg core.RuntimeConfig) {
	s.resets++
	s.seed = cfg.Seed
	s.over = false
}

func (s *stubGame) Step(in core.InputFrame) core.StepResult {
	s.lastIn = core.NewInputFrame()
	for a := range in.Actions {
		s.lastIn.Set(a)
	}
	return core.StepResult{State: s.State()}
}

func (s *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (s *stubGame) State() core.GameState {
	gs := core.GameState{Score: s.score, GameOver: s.over}
	if s.over {
		gs.EndReason = "Hit the danger line"
	}
	return gs
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelForwardsActions(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})

	if !g.lastIn.Has(core.ActionAimLeft) || !g.lastIn.Has(core.ActionFire) {
		t.Errorf("step did not receive the pressed actions: %+v", g.lastIn.Actions)
	}

	// Input is cleared after each tick
	update(t, m, TickMsg{})
	if len(g.lastIn.Actions) != 0 {
		t.Errorf("expected empty frame on the next tick, got %+v", g.lastIn.Actions)
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store := testStore(t)
	g := &stubGame{score: 50, over: true}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}, Options{Player: "ann"})

	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 50 || got.Player != "ann" || got.Shots != 7 || got.EndReason != "Hit the danger line" {
		t.Errorf("unexpected entry %+v", got)
	}
}

func TestModelRestartReseeds(t *testing.T) {
	tests := []struct {
		name      string
		fixedSeed bool
	}{
		{"random seed", false},
		{"fixed seed", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &stubGame{over: true}
			m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}, Options{FixedSeed: tc.fixedSeed})

			m = update(t, m, TickMsg{})
			m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
			update(t, m, TickMsg{})

			if g.resets != 1 {
				t.Fatalf("resets = %d, expected 1", g.resets)
			}
			if (g.seed == 42) != tc.fixedSeed {
				t.Errorf("seed = %d, fixed = %v", g.seed, tc.fixedSeed)
			}
		})
	}
}

func TestModelBackToMenu(t *testing.T) {
	store := testStore(t)
	g := &stubGame{score: 12}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if cmd == nil {
		t.Error("back should quit the program")
	}
	if !next.(Model).BackToMenu() {
		t.Error("expected BackToMenu")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].EndReason != "Abandoned" {
		t.Errorf("abandoned game should be recorded, got %+v", scores)
	}
}

func TestModelQuitSavesBeforeFirstTick(t *testing.T) {
	store := testStore(t)
	g := &stubGame{}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{})
	m = update(t, m, TickMsg{})

	// Score changes between ticks are picked up on quit.
	g.score = 30
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || !next.(Model).quitting {
		t.Fatal("q should quit")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 30 || scores[0].EndReason != "Abandoned" {
		t.Errorf("expected an abandoned 30 point game, got %+v", scores)
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 3, TickRate: 60, Seed: 1}, Options{})

	if !strings.Contains(m.View(), "stub") {
		t.Errorf("view should contain the game render, got %q", m.View())
	}
}
