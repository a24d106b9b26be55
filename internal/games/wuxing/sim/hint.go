package sim

import (
	"fmt"
	"math"
)

// HintKind classifies the bubble the current aim would strike first.
type HintKind int

const (
	HintNone  HintKind = iota
	HintKe             // Target would be removed
	HintSheng          // Target would grow
	HintStick          // Shot would stick next to the target
)

// Hint is the predicted outcome of firing along the current aim.
type Hint struct {
	Kind   HintKind
	Target Element // Valid unless Kind is HintNone
	Cell   Cell    // Cell of the predicted target
}

// String returns the text shown next to the shooter.
func (h Hint) String() string {
	switch h.Kind {
	case HintKe:
		return fmt.Sprintf("KE -> remove %s", h.Target)
	case HintSheng:
		return fmt.Sprintf("Careful: SHENG -> grows %s", h.Target)
	case HintStick:
		return fmt.Sprintf("Hit -> stick (%s)", h.Target)
	default:
		return ""
	}
}

// PredictFirstHit marches a straight ray from the shooter in fixed steps and
// returns the first occupied cell it enters. The march ignores wall bounces
// and gives up when the ray leaves the grid's horizontal span or passes
// above it.
func PredictFirstHit(cfg Config, board *Board, angle float64) (Cell, bool) {
	step := cfg.CellSize * cfg.SearchStepRatio
	dx := math.Cos(angle) * step
	dy := math.Sin(angle) * step

	x, y := cfg.Shooter.X, cfg.Shooter.Y
	for range cfg.MaxHintSteps {
		x += dx
		y += dy

		if y < cfg.Origin.Y {
			return Cell{}, false
		}
		if x < cfg.Origin.X || x > cfg.Origin.X+cfg.GridW() {
			return Cell{}, false
		}

		cell := board.WorldToCell(x, y)
		if !board.InBounds(cell.R, cell.C) {
			continue
		}
		if board.Occupied(cell.R, cell.C) {
			return cell, true
		}
	}
	return Cell{}, false
}

// Classify builds the hint for shooting current at the bubble in cell.
func Classify(current Element, target Element, cell Cell) Hint {
	h := Hint{Target: target, Cell: cell}
	switch Interact(current, target) {
	case OutcomeKe:
		h.Kind = HintKe
	case OutcomeSheng:
		h.Kind = HintSheng
	default:
		h.Kind = HintStick
	}
	return h
}

// Predict returns the hint for firing current along angle.
func Predict(cfg Config, board *Board, current Element, angle float64) Hint {
	cell, ok := PredictFirstHit(cfg, board, angle)
	if !ok {
		return Hint{}
	}
	return Classify(current, board.Get(cell.R, cell.C).Element, cell)
}
