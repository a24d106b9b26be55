package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wuxing-arcade/internal/config"
	"github.com/vovakirdan/wuxing-arcade/internal/core"
	"github.com/vovakirdan/wuxing-arcade/internal/storage"
)

// MenuItemKind identifies a menu entry.
type MenuItemKind int

const (
	MenuPlay MenuItemKind = iota
	MenuDifficulty
	MenuScores
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Kind  MenuItemKind
	Title string
}

var menuItems = []MenuItem{
	{Kind: MenuPlay, Title: "Play"},
	{Kind: MenuDifficulty, Title: "Difficulty"},
	{Kind: MenuScores, Title: "High Scores"},
	{Kind: MenuQuit, Title: "Quit"},
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	gameID         string
	items          []MenuItem
	cursor         int
	presets        []config.DifficultyPreset
	presetIdx      int
	best           int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	help           help.Model
	quitting       bool
	play           bool
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The preset starts at the given
// name, or fixed when it is empty or unknown.
func NewMenuModel(store *storage.Store, gameID string, preset config.DifficultyPreset, cfg core.RuntimeConfig) MenuModel {
	presets := config.Presets()
	presetIdx := 0
	for i, p := range presets {
		if p == preset {
			presetIdx = i
		}
	}

	best := 0
	if store != nil {
		if hs, err := store.HighScore(gameID); err == nil {
			best = hs
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		gameID:    gameID,
		items:     menuItems,
		presets:   presets,
		presetIdx: presetIdx,
		best:      best,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cyclePreset(-1)

	case MenuActionRight:
		m.cyclePreset(1)

	case MenuActionSelect:
		switch m.items[m.cursor].Kind {
		case MenuPlay:
			m.play = true
			return m, tea.Quit
		case MenuDifficulty:
			m.cyclePreset(1)
		case MenuScores:
			m.openScoreboard = true
			return m, tea.Quit
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m *MenuModel) cyclePreset(delta int) {
	n := len(m.presets)
	m.presetIdx = ((m.presetIdx+delta)%n + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  W U X I N G   B U B B L E S  "), m.width))
	b.WriteString("\n\n")

	// Element cycles
	b.WriteString(centerText(dimStyle.Render("Sheng grows:  Wood > Fire > Earth > Metal > Water"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Ke destroys:  Wood > Earth > Water > Fire > Metal"), m.width))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
		b.WriteString("\n\n")
	}

	// Menu entries
	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}

		label := item.Title
		if item.Kind == MenuDifficulty {
			label = fmt.Sprintf("Difficulty: < %s >", m.Preset())
		}
		b.WriteString(centerText(style.Render(cursor+label), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keyMapper.Menu), m.width))
	b.WriteString("\n")

	return b.String()
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return m.presets[m.presetIdx]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsPlay returns true if user started a game.
func (m MenuModel) WantsPlay() bool {
	return m.play
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play            bool
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, gameID string, preset config.DifficultyPreset, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, gameID, preset, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Preset: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Preset: m.Preset(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.WantsPlay():
		result.Play = true
	default:
		result.Quit = true
	}

	return result, nil
}
