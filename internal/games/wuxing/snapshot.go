package wuxing

import (
	"math"

	"github.com/vovakirdan/wuxing-arcade/internal/games/wuxing/sim"
)

// Snapshot contains the game state on top of the simulation snapshot.
type Snapshot struct {
	Tick          uint64
	State         string
	PressureTicks int
	Pushes        int

	Sim sim.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:         g.state,
		PressureTicks: g.pressureTicks,
		Pushes:        g.pushes,
		Sim:           g.session.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	s := &snap.Sim

	h := snap.Tick
	h = h*31 + uint64(snap.PressureTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pushes)        //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Shots)            //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Current)
	h = h*31 + uint64(s.Hold)
	for _, e := range s.Queue {
		h = h*31 + uint64(e)
	}
	h = h*31 + math.Float64bits(s.Aim)
	if s.InFlight {
		h = h*31 + math.Float64bits(s.Shot.Pos.X)
		h = h*31 + math.Float64bits(s.Shot.Pos.Y)
	}
	if s.Over {
		h = h*31 + 1
	}

	for r := range s.Grid {
		for _, slot := range s.Grid[r] {
			if !slot.Filled {
				h = h * 31
				continue
			}
			h = h*31 + uint64(slot.Element)*4 + uint64(slot.Level) + 1 //#nosec G115 -- hash computation
		}
	}
	return h
}
