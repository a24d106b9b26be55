package sim

import (
	"math"
	"testing"
)

func newTestResolver() (*Resolver, *Board, Config) {
	cfg := DefaultConfig()
	board := NewBoard(cfg.Rows, cfg.Cols, cfg.CellSize, cfg.Origin)
	return NewResolver(cfg, board), board, cfg
}

func TestInteract(t *testing.T) {
	tests := []struct {
		attacker, target Element
		want             Outcome
	}{
		{Wood, Earth, OutcomeKe},
		{Wood, Fire, OutcomeSheng},
		{Wood, Wood, OutcomeStick},
		{Wood, Metal, OutcomeStick},
		{Wood, Water, OutcomeStick},
		{Fire, Metal, OutcomeKe},
		{Water, Wood, OutcomeSheng},
		{Metal, Wood, OutcomeKe},
	}

	for _, tc := range tests {
		if got := Interact(tc.attacker, tc.target); got != tc.want {
			t.Errorf("Interact(%v, %v) = %v, expected %v", tc.attacker, tc.target, got, tc.want)
		}
	}
}

func TestLaunchClampsAngle(t *testing.T) {
	r, _, cfg := newTestResolver()

	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"flat right", 0, cfg.MaxAim()},
		{"flat left", -math.Pi, cfg.MinAim()},
		{"straight up", DefaultAim, DefaultAim},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := r.Launch(Fire, tc.angle)
			wantX := math.Cos(tc.want) * cfg.ShotSpeed
			wantY := math.Sin(tc.want) * cfg.ShotSpeed
			if math.Abs(s.Vel.X-wantX) > 1e-9 || math.Abs(s.Vel.Y-wantY) > 1e-9 {
				t.Errorf("Vel = %+v, expected (%f, %f)", s.Vel, wantX, wantY)
			}
			if s.Pos != cfg.Shooter {
				t.Errorf("Pos = %+v, expected shooter %+v", s.Pos, cfg.Shooter)
			}
		})
	}
}

func TestStepBouncesOffWalls(t *testing.T) {
	r, _, cfg := newTestResolver()
	s := r.Launch(Water, cfg.MinAim())

	if _, done := r.Step(s, 0.25); done {
		t.Fatal("shot should still be below the grid")
	}
	if s.Vel.X <= 0 {
		t.Errorf("Vel.X = %f after hitting the left wall, expected positive", s.Vel.X)
	}
	leftWall := cfg.Origin.X + cfg.CellSize*cfg.WallInsetRatio
	if s.Pos.X < leftWall {
		t.Errorf("Pos.X = %f, expected at least %f", s.Pos.X, leftWall)
	}
}

func TestStepIgnoresNonPositiveDt(t *testing.T) {
	r, _, cfg := newTestResolver()
	s := r.Launch(Water, DefaultAim)

	if _, done := r.Step(s, 0); done {
		t.Error("zero dt should not resolve")
	}
	if s.Pos != cfg.Shooter {
		t.Errorf("zero dt moved the shot to %+v", s.Pos)
	}
}

func runShot(t *testing.T, r *Resolver, s *Shot) Contact {
	t.Helper()
	for i := 0; i < 600; i++ {
		if c, done := r.Step(s, 1.0/60); done {
			return c
		}
	}
	t.Fatal("shot never resolved")
	return Contact{}
}

func TestStraightShotTopsOut(t *testing.T) {
	r, board, _ := newTestResolver()
	s := r.Launch(Metal, DefaultAim)

	c := runShot(t, r, s)
	if !c.TopOut || c.Hit {
		t.Fatalf("contact = %+v, expected top-out", c)
	}

	res := r.Resolve(s, c)
	if res.Outcome != OutcomeStick || res.Landing != (Cell{R: 0, C: 4}) {
		t.Errorf("resolution = %+v, expected stick at (0,4)", res)
	}
	if got := board.Get(0, 4); got == nil || got.Element != Metal {
		t.Error("Metal bubble should be placed at (0,4)")
	}
	if res.Points != 1 {
		t.Errorf("Points = %d, expected 1", res.Points)
	}
}

func TestStraightShotHitsTarget(t *testing.T) {
	r, board, _ := newTestResolver()
	board.Set(5, 4, NewBubble(Metal))
	s := r.Launch(Wood, DefaultAim)

	c := runShot(t, r, s)
	if !c.Hit || c.Target != (Cell{R: 5, C: 4}) {
		t.Fatalf("contact = %+v, expected hit on (5,4)", c)
	}
}

func TestLandingPrefersClosestEmptyNeighbor(t *testing.T) {
	r, board, _ := newTestResolver()
	board.Set(5, 4, NewBubble(Metal))

	center := board.CellToWorld(5, 4)
	pos := Vec{X: center.X - 12, Y: center.Y + 8}
	contact := Contact{Hit: true, Target: Cell{R: 5, C: 4}}

	if got := r.LandingCell(pos, contact); got != (Cell{R: 5, C: 3}) {
		t.Errorf("LandingCell() = %v, expected left neighbor (5,3)", got)
	}

	board.Set(5, 3, NewBubble(Fire))
	if got := r.LandingCell(pos, contact); got != (Cell{R: 6, C: 4}) {
		t.Errorf("LandingCell() = %v, expected lower neighbor (6,4)", got)
	}
}

func TestLandingEnclosedTargetSearchesRow(t *testing.T) {
	r, board, _ := newTestResolver()
	for _, c := range []Cell{{5, 4}, {4, 4}, {6, 4}, {5, 3}, {5, 5}} {
		board.Set(c.R, c.C, NewBubble(Metal))
	}

	center := board.CellToWorld(5, 4)
	pos := Vec{X: center.X - 12, Y: center.Y + 8}
	got := r.LandingCell(pos, Contact{Hit: true, Target: Cell{R: 5, C: 4}})
	if got != (Cell{R: 5, C: 2}) {
		t.Errorf("LandingCell() = %v, expected (5,2)", got)
	}
}

func TestTopOutOnFullRowOverwrites(t *testing.T) {
	r, board, cfg := newTestResolver()
	for c := 0; c < cfg.Cols; c++ {
		board.Set(0, c, NewBubble(Fire))
	}

	s := &Shot{Element: Wood, Pos: Vec{X: cfg.Shooter.X, Y: cfg.Origin.Y + 16}}
	res := r.Resolve(s, Contact{TopOut: true})

	if !res.Overwrote || res.Landing != (Cell{R: 0, C: 4}) {
		t.Errorf("resolution = %+v, expected overwrite at (0,4)", res)
	}
	if got := board.Get(0, 4); got == nil || got.Element != Wood {
		t.Error("(0,4) should now hold Wood")
	}
}

func TestResolveKeRemovesTarget(t *testing.T) {
	r, board, _ := newTestResolver()
	board.Set(3, 2, NewBubble(Earth))

	s := &Shot{Element: Wood, Pos: board.CellToWorld(4, 2)}
	res := r.Resolve(s, Contact{Hit: true, Target: Cell{R: 3, C: 2}})

	if res.Outcome != OutcomeKe || res.Points != 10 {
		t.Errorf("resolution = %+v, expected Ke for 10 points", res)
	}
	if board.Occupied(3, 2) {
		t.Error("target should be removed")
	}
	if board.Count() != 0 {
		t.Errorf("Ke should not place the shot, board has %d bubbles", board.Count())
	}
}

func TestResolveShengGrowsTarget(t *testing.T) {
	r, board, _ := newTestResolver()
	board.Set(3, 2, NewBubble(Fire))
	target := Cell{R: 3, C: 2}

	for want := 2; want <= MaxLevel+1; want++ {
		s := &Shot{Element: Wood, Pos: board.CellToWorld(4, 2)}
		res := r.Resolve(s, Contact{Hit: true, Target: target})

		level := min(want, MaxLevel)
		if res.Outcome != OutcomeSheng || res.TargetLevel != level || res.Points != 3 {
			t.Errorf("resolution = %+v, expected Sheng to level %d", res, level)
		}
	}
	if board.Count() != 1 {
		t.Errorf("Sheng should not place the shot, board has %d bubbles", board.Count())
	}
}

func TestResolveDangerRowEndsGame(t *testing.T) {
	r, board, _ := newTestResolver()
	board.Set(10, 4, NewBubble(Metal))

	center := board.CellToWorld(10, 4)
	s := &Shot{Element: Wood, Pos: Vec{X: center.X, Y: center.Y + 18}}
	res := r.Resolve(s, Contact{Hit: true, Target: Cell{R: 10, C: 4}})

	if res.Landing != (Cell{R: 11, C: 4}) {
		t.Errorf("Landing = %v, expected (11,4)", res.Landing)
	}
	if !res.GameOver {
		t.Error("landing on the danger row should end the game")
	}
	if res.Points != 0 {
		t.Errorf("Points = %d, expected 0 for a losing shot", res.Points)
	}
}
