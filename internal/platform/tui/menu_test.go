package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wuxing-arcade/internal/config"
	"github.com/vovakirdan/wuxing-arcade/internal/core"
	"github.com/vovakirdan/wuxing-arcade/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestMenuPresetCycle(t *testing.T) {
	m := NewMenuModel(nil, "wuxing", config.DifficultyHard, core.DefaultConfig())
	if m.Preset() != config.DifficultyHard {
		t.Fatalf("initial preset = %q, expected hard", m.Preset())
	}

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Preset() != config.DifficultyFixed {
		t.Errorf("right from hard should wrap to fixed, got %q", m.Preset())
	}

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Preset() != config.DifficultyNormal {
		t.Errorf("two lefts from fixed should reach normal, got %q", m.Preset())
	}
}

func TestMenuUnknownPresetStartsFixed(t *testing.T) {
	m := NewMenuModel(nil, "wuxing", "", core.DefaultConfig())
	if m.Preset() != config.DifficultyFixed {
		t.Errorf("preset = %q, expected fixed", m.Preset())
	}
}

func TestMenuSelectPlay(t *testing.T) {
	m := NewMenuModel(nil, "wuxing", config.DifficultyEasy, core.DefaultConfig())

	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.WantsPlay() {
		t.Error("enter on Play should start a game")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, "wuxing", "", core.DefaultConfig())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should stay at top, got %d", m.cursor)
	}

	for range 10 {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor should stop at the last item, got %d", m.cursor)
	}

	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.IsQuitting() {
		t.Error("enter on Quit should quit")
	}
}

func TestMenuScoreboardShortcut(t *testing.T) {
	m := NewMenuModel(nil, "wuxing", "", core.DefaultConfig())

	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil || !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: "wuxing", Score: 77}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, "wuxing", "", core.DefaultConfig())
	if !strings.Contains(m.View(), "Best: 77") {
		t.Errorf("menu should show the best score:\n%s", m.View())
	}
}
