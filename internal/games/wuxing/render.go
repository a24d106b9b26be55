package wuxing

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/wuxing-arcade/internal/core"
	"github.com/vovakirdan/wuxing-arcade/internal/games/wuxing/sim"
)

// Visual characters for rendering
const (
	ShotChar   = '●'
	GuideChar  = '·'
	DangerChar = '┄'
)

// panelW is the width of the side panel with queue, hold and legend.
const panelW = 30

// guideDots caps the length of the aim guide.
const guideDots = 24

// ElementColor returns the display color of an element.
func ElementColor(e sim.Element) core.Color {
	switch e {
	case sim.Wood:
		return core.ColorGreen
	case sim.Fire:
		return core.ColorBrightRed
	case sim.Earth:
		return core.ColorBrown
	case sim.Metal:
		return core.ColorBrightWhite
	case sim.Water:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

func hintColor(k sim.HintKind) core.Color {
	switch k {
	case sim.HintKe:
		return core.ColorBrightGreen
	case sim.HintSheng:
		return core.ColorYellow
	default:
		return core.ColorGray
	}
}

// layout maps the simulation's world onto terminal cells.
type layout struct {
	cellW  int       // Terminal columns per grid column
	frame  core.Rect // Border around the play field
	panelX int       // Side panel column, -1 when the screen is too narrow
	view   core.Viewport
}

// calculateLayout sizes the play field from the screen and grid geometry.
// Each grid row is one terminal row, so grid cells project exactly.
func (g *Game) calculateLayout() {
	cfg := g.simCfg
	extra := int(math.Floor((cfg.Shooter.Y-cfg.Origin.Y)/cfg.CellSize)) + 1 - cfg.Rows
	innerH := cfg.Rows + extra

	g.minScreenW = cfg.Cols*2 + 2
	g.minScreenH = innerH + 2 + 3

	cellW := 2
	switch {
	case g.runtime.ScreenW >= cfg.Cols*4+2+panelW+2:
		cellW = 4
	case g.runtime.ScreenW >= cfg.Cols*3+2:
		cellW = 3
	}

	frameW := cfg.Cols*cellW + 2
	panelX := -1
	frameX := (g.runtime.ScreenW - frameW) / 2
	if g.runtime.ScreenW >= frameW+panelW+3 {
		frameX = 1
		panelX = frameX + frameW + 2
	}

	frame := core.NewRect(frameX, 1, frameW, innerH+2)
	g.layout = layout{
		cellW:  cellW,
		frame:  frame,
		panelX: panelX,
		view: core.Viewport{
			WorldX: cfg.Origin.X,
			WorldY: cfg.Origin.Y,
			WorldW: cfg.GridW(),
			WorldH: cfg.CellSize * float64(innerH),
			Dst:    core.NewRect(frame.X+1, frame.Y+1, cfg.Cols*cellW, innerH),
		},
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	snap := g.session.Snapshot()

	g.renderHUD(dst, snap)
	g.renderField(dst, snap)
	if g.layout.panelX >= 0 {
		g.renderPanel(dst, snap)
	} else {
		g.renderFooter(dst, snap)
	}
	g.renderOverlay(dst, snap)
}

// renderHUD draws the score, the latest event and the pressure countdown.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	if g.eventTimer > 0 {
		dst.DrawTextCentered(0, g.event, g.eventColor)
	}

	if !snap.Over {
		push := fmt.Sprintf("Push in %.1fs", g.pressureSecondsLeft())
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(push)-1, 0, push, core.ColorGray)
	}
}

// renderField draws the border, danger line, aim guide, bubbles and shot.
func (g *Game) renderField(dst *core.Screen, snap sim.Snapshot) {
	l := g.layout
	dst.DrawBox(l.frame, core.ColorGray)

	// Danger line just below the last grid row
	dst.DrawHLine(l.view.Dst.X, l.view.Dst.Y+snap.Rows, l.view.Dst.W, DangerChar, core.ColorRed)

	if !snap.InFlight && !snap.Over {
		g.renderGuide(dst, snap)
	}

	for r := range snap.Rows {
		for c := range snap.Cols {
			slot := snap.Grid[r][c]
			if !slot.Filled {
				continue
			}
			x := l.view.Dst.X + c*l.cellW + (l.cellW-2)/2
			y := l.view.Dst.Y + r
			text := fmt.Sprintf("%c%d", slot.Element.Char(), slot.Level)
			dst.DrawTextColored(x, y, text, ElementColor(slot.Element))
		}
	}

	if snap.Hint.Kind != sim.HintNone && l.cellW >= 4 {
		x := l.view.Dst.X + snap.Hint.Cell.C*l.cellW
		y := l.view.Dst.Y + snap.Hint.Cell.R
		color := hintColor(snap.Hint.Kind)
		dst.SetColored(x, y, '[', color)
		dst.SetColored(x+l.cellW-1, y, ']', color)
	}

	if snap.InFlight {
		x, y := l.view.Project(snap.Shot.Pos.X, snap.Shot.Pos.Y)
		dst.SetColored(x, y, ShotChar, ElementColor(snap.Shot.Element))
	}

	// Loaded element sits on the shooter
	sx, sy := l.view.Project(g.simCfg.Shooter.X, g.simCfg.Shooter.Y)
	if !snap.InFlight && !snap.Over {
		dst.SetColored(sx, sy, snap.Current.Char(), ElementColor(snap.Current))
	} else {
		dst.SetColored(sx, sy, '^', core.ColorGray)
	}
}

// renderGuide dots the straight aim line until it meets a bubble or leaves
// the grid.
func (g *Game) renderGuide(dst *core.Screen, snap sim.Snapshot) {
	cfg := g.simCfg
	step := cfg.CellSize * 0.5
	dx := math.Cos(snap.Aim) * step
	dy := math.Sin(snap.Aim) * step
	x, y := cfg.Shooter.X, cfg.Shooter.Y

	for i := range guideDots {
		x += dx
		y += dy
		if y < cfg.Origin.Y || x < cfg.Origin.X || x > cfg.Origin.X+cfg.GridW() {
			return
		}
		r := int(math.Floor((y - cfg.Origin.Y) / cfg.CellSize))
		c := int(math.Floor((x - cfg.Origin.X) / cfg.CellSize))
		if r >= 0 && r < snap.Rows && c >= 0 && c < snap.Cols && snap.Grid[r][c].Filled {
			return
		}
		if i == 0 {
			continue
		}
		px, py := g.layout.view.Project(x, y)
		dst.SetColored(px, py, GuideChar, core.ColorGray)
	}
}

// renderPanel draws the queue, hold slot, hint and legend beside the field.
func (g *Game) renderPanel(dst *core.Screen, snap sim.Snapshot) {
	x := g.layout.panelX
	y := g.layout.frame.Y

	dst.DrawTextColored(x, y, "WUXING BUBBLES", core.ColorBrightYellow)
	y += 2

	dst.DrawText(x, y, "Loaded ")
	dst.DrawTextColored(x+8, y, snap.Current.String(), ElementColor(snap.Current))
	y++

	dst.DrawText(x, y, "Hold   ")
	if snap.HasHold {
		dst.DrawTextColored(x+8, y, snap.Hold.String(), ElementColor(snap.Hold))
	} else {
		dst.DrawTextColored(x+8, y, "-", core.ColorGray)
	}
	if snap.SwapLocked {
		dst.DrawTextColored(x+16, y, "(locked)", core.ColorGray)
	}
	y++

	dst.DrawText(x, y, "Next")
	for i, e := range snap.Queue {
		dst.SetColored(x+8+i*2, y, e.Char(), ElementColor(e))
	}
	y++

	dst.DrawTextColored(x, y, fmt.Sprintf("Shots  %d", snap.Shots), core.ColorGray)
	y += 2

	if hint := snap.Hint.String(); hint != "" {
		dst.DrawTextColored(x, y, hint, hintColor(snap.Hint.Kind))
	}
	y += 2

	dst.DrawText(x, y, "Sheng (grows)")
	g.drawCycle(dst, x, y+1, sim.Grows)
	dst.DrawText(x, y+2, "Ke (destroys)")
	g.drawCycle(dst, x, y+3, sim.Controls)
	y += 5

	for _, line := range []string{"←/→ aim   SPACE fire", "TAB swap  P pause", "R restart B menu"} {
		dst.DrawTextColored(x, y, line, core.ColorGray)
		y++
	}
}

// drawCycle draws the five elements chained by rel: W>F>E>M>A>W.
func (g *Game) drawCycle(dst *core.Screen, x, y int, rel func(sim.Element) sim.Element) {
	n := int(sim.ElementCount)
	e := sim.Wood
	for i := range n + 1 {
		dst.SetColored(x+i*2, y, e.Char(), ElementColor(e))
		if i < n {
			dst.SetColored(x+i*2+1, y, '>', core.ColorGray)
		}
		e = rel(e)
	}
}

// renderFooter is the compact HUD used when the side panel does not fit.
func (g *Game) renderFooter(dst *core.Screen, snap sim.Snapshot) {
	y := g.layout.frame.Bottom()

	var sb strings.Builder
	sb.WriteString("Next ")
	for _, e := range snap.Queue {
		sb.WriteRune(e.Char())
	}
	sb.WriteString("  Hold ")
	if snap.HasHold {
		sb.WriteRune(snap.Hold.Char())
	} else {
		sb.WriteRune('-')
	}
	dst.DrawTextCentered(y, sb.String(), core.ColorDefault)

	if hint := snap.Hint.String(); hint != "" {
		dst.DrawTextCentered(y+1, hint, hintColor(snap.Hint.Kind))
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		title := "GAME OVER"
		if snap.Reason != sim.ReasonNone {
			title += ": " + string(snap.Reason)
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		g.drawCenteredBox(dst, title, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := utf8.RuneCountInString(title)
	subtitleW := utf8.RuneCountInString(subtitle)

	boxW := max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightYellow)

	// Draw text
	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
