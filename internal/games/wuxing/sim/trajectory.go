package sim

import "math"

// Shot is the projectile currently in flight.
type Shot struct {
	Element Element
	Pos     Vec
	Vel     Vec // World units per second
}

// Contact describes why a shot stopped moving.
type Contact struct {
	Hit    bool // The shot overlapped a placed bubble
	Target Cell // Valid when Hit is true
	TopOut bool // The shot reached the ceiling without touching anything
}

// Outcome is the result of the elemental interaction rule.
type Outcome int

const (
	OutcomeStick Outcome = iota // Shot bubble placed in the grid
	OutcomeKe                   // Target destroyed, shot discarded
	OutcomeSheng                // Target grown, shot discarded
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeStick:
		return "Stick"
	case OutcomeKe:
		return "Ke"
	case OutcomeSheng:
		return "Sheng"
	default:
		return "Unknown"
	}
}

// Resolution records what happened when a shot resolved.
type Resolution struct {
	Outcome       Outcome
	Element       Element // Element of the shot
	Hit           bool    // False for a top-out placement
	Target        Cell    // Collided bubble, valid when Hit is true
	TargetElement Element
	TargetLevel   int  // Level after a Sheng growth
	Landing       Cell // Placement cell, valid for OutcomeStick
	Overwrote     bool // The landing cell was occupied and got replaced
	Points        int
	GameOver      bool // The stick landed on the danger row
}

// Interact applies the elemental rule for an attacker hitting a target.
func Interact(attacker, target Element) Outcome {
	switch target {
	case Controls(attacker):
		return OutcomeKe
	case Grows(attacker):
		return OutcomeSheng
	default:
		return OutcomeStick
	}
}

// Resolver moves shots through the play field and resolves collisions
// against a board.
type Resolver struct {
	cfg   Config
	board *Board
}

// NewResolver creates a resolver bound to a board.
func NewResolver(cfg Config, board *Board) *Resolver {
	return &Resolver{cfg: cfg, board: board}
}

// Launch creates a shot at the shooter position travelling along angle.
// The angle is clamped to the aim cone first.
func (r *Resolver) Launch(e Element, angle float64) *Shot {
	angle = r.cfg.ClampAim(angle)
	return &Shot{
		Element: e,
		Pos:     r.cfg.Shooter,
		Vel: Vec{
			X: math.Cos(angle) * r.cfg.ShotSpeed,
			Y: math.Sin(angle) * r.cfg.ShotSpeed,
		},
	}
}

// Step advances a shot by dt seconds. Long ticks are split so that no
// sub-step moves farther than the hint search step, which keeps the overlap
// test from tunnelling through a bubble. Returns the contact and true once
// the shot must be resolved.
func (r *Resolver) Step(s *Shot, dt float64) (Contact, bool) {
	if dt <= 0 {
		return Contact{}, false
	}

	maxStep := r.cfg.SearchStepRatio * r.cfg.CellSize
	dist := math.Hypot(s.Vel.X, s.Vel.Y) * dt
	n := max(1, int(math.Ceil(dist/maxStep)))
	sub := dt / float64(n)

	for range n {
		if c, done := r.stepOnce(s, sub); done {
			return c, true
		}
	}
	return Contact{}, false
}

// stepOnce moves, bounces, and runs the top-out and overlap checks in order.
func (r *Resolver) stepOnce(s *Shot, dt float64) (Contact, bool) {
	s.Pos.X += s.Vel.X * dt
	s.Pos.Y += s.Vel.Y * dt

	inset := r.cfg.CellSize * r.cfg.WallInsetRatio
	leftWall := r.cfg.Origin.X + inset
	rightWall := r.cfg.Origin.X + r.cfg.GridW() - inset

	if s.Pos.X < leftWall {
		s.Pos.X = leftWall
		s.Vel.X = -s.Vel.X
	} else if s.Pos.X > rightWall {
		s.Pos.X = rightWall
		s.Vel.X = -s.Vel.X
	}

	if s.Pos.Y <= r.cfg.Origin.Y+r.cfg.CellSize*0.5 {
		return Contact{TopOut: true}, true
	}

	if cell, ok := r.FindOverlap(s.Pos); ok {
		return Contact{Hit: true, Target: cell}, true
	}
	return Contact{}, false
}

// FindOverlap returns the nearest occupied cell in the 3x3 neighborhood of
// pos whose center lies within the collision threshold.
func (r *Resolver) FindOverlap(pos Vec) (Cell, bool) {
	center := r.board.WorldToCell(pos.X, pos.Y)
	if !r.board.InBounds(center.R, center.C) {
		return Cell{}, false
	}

	threshold := r.cfg.CellSize * r.cfg.CollisionRatio
	best := Cell{}
	bestD := math.Inf(1)
	found := false

	for rr := center.R - 1; rr <= center.R+1; rr++ {
		for cc := center.C - 1; cc <= center.C+1; cc++ {
			if !r.board.Occupied(rr, cc) {
				continue
			}
			d := r.board.CellToWorld(rr, cc).Dist(pos)
			if d <= threshold && d < bestD {
				best = Cell{R: rr, C: cc}
				bestD = d
				found = true
			}
		}
	}
	return best, found
}

// LandingCell picks where a sticking shot at pos is placed.
// With a target it prefers the empty neighbor closest to pos. Otherwise, or
// when the target is enclosed, it snaps pos into the grid and searches the
// row for the nearest empty cell. A full row yields the occupied snapped
// cell, which the caller overwrites.
func (r *Resolver) LandingCell(pos Vec, c Contact) Cell {
	if c.Hit {
		if cell, ok := r.bestAdjacentEmpty(c.Target, pos); ok {
			return cell
		}
	}

	snapped := r.board.ClampCell(r.board.WorldToCell(pos.X, pos.Y))
	if !r.board.Occupied(snapped.R, snapped.C) {
		return snapped
	}
	if cell, ok := r.board.FindNearestEmpty(snapped.R, snapped.C); ok {
		return cell
	}
	return snapped
}

// bestAdjacentEmpty returns the empty 4-neighbor of target closest to pos.
// Ties keep the earlier neighbor.
func (r *Resolver) bestAdjacentEmpty(target Cell, pos Vec) (Cell, bool) {
	best := Cell{}
	bestD := math.Inf(1)
	found := false

	for _, n := range r.board.Neighbors4(target.R, target.C) {
		if r.board.Occupied(n.R, n.C) {
			continue
		}
		d := r.board.CellToWorld(n.R, n.C).Dist(pos)
		if d < bestD {
			best = n
			bestD = d
			found = true
		}
	}
	return best, found
}

// Resolve applies the interaction rule for a stopped shot and mutates the
// board accordingly. Score and queue bookkeeping belong to the caller.
func (r *Resolver) Resolve(s *Shot, c Contact) Resolution {
	res := Resolution{Element: s.Element}

	if c.Hit {
		if target := r.board.Get(c.Target.R, c.Target.C); target != nil {
			res.Hit = true
			res.Target = c.Target
			res.TargetElement = target.Element

			switch Interact(s.Element, target.Element) {
			case OutcomeKe:
				r.board.Remove(c.Target.R, c.Target.C)
				res.Outcome = OutcomeKe
				res.Points = r.cfg.KePoints
				return res
			case OutcomeSheng:
				target.Grow()
				res.Outcome = OutcomeSheng
				res.TargetLevel = target.Level
				res.Points = r.cfg.ShengPoints
				return res
			}
		}
	}

	landing := r.LandingCell(s.Pos, c)
	res.Outcome = OutcomeStick
	res.Landing = landing
	res.Overwrote = r.board.Occupied(landing.R, landing.C)
	r.board.Set(landing.R, landing.C, NewBubble(s.Element))

	if r.board.IsGameOverRow(landing.R) {
		res.GameOver = true
		return res
	}

	res.Points = r.cfg.StickPoints
	return res
}
