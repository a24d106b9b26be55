package sim

import "math"

// Reason explains why a session ended.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonDangerLine Reason = "Hit the danger line"
	ReasonPressure   Reason = "Overwhelmed by pressure"
)

// DefaultAim is straight up in screen coordinates.
const DefaultAim = -math.Pi / 2

// Session is one game: the board, the shot queue, the projectile in flight,
// the score and the terminal flag. It is not safe for concurrent use; the
// caller serializes Fire, Advance, SwapHold and TriggerPressure.
type Session struct {
	cfg      Config
	rng      Rand
	board    *Board
	queue    *ShotQueue
	resolver *Resolver

	shot   *Shot
	aim    float64
	hint   Hint
	score  int
	shots  int // Resolved shots
	over   bool
	reason Reason
	last   *Resolution
}

// NewSession validates cfg, seeds the board and loads the first shot.
func NewSession(cfg Config, rng Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board := NewBoard(cfg.Rows, cfg.Cols, cfg.CellSize, cfg.Origin)
	queue := NewShotQueue(rng)
	board.Seed(cfg.SeedRows, cfg.SeedFillProb, rng)

	s := &Session{
		cfg:      cfg,
		rng:      rng,
		board:    board,
		queue:    queue,
		resolver: NewResolver(cfg, board),
		aim:      DefaultAim,
	}
	s.refreshHint()
	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// Shots returns the number of resolved shots.
func (s *Session) Shots() int {
	return s.shots
}

// IsOver reports whether the session reached its terminal state.
func (s *Session) IsOver() bool {
	return s.over
}

// TerminationReason returns why the session ended, or ReasonNone.
func (s *Session) TerminationReason() Reason {
	return s.reason
}

// InFlight reports whether a shot is moving.
func (s *Session) InFlight() bool {
	return s.shot != nil
}

// Aim returns the current clamped aim angle in radians.
func (s *Session) Aim() float64 {
	return s.aim
}

// Hint returns the predicted outcome for the current aim.
func (s *Session) Hint() Hint {
	return s.hint
}

// LastResolution returns the most recent shot resolution, or nil.
func (s *Session) LastResolution() *Resolution {
	return s.last
}

// UpdateAim stores the clamped aim and recomputes the hint.
// It never changes the board, queue or score.
func (s *Session) UpdateAim(angle float64) {
	if s.over {
		return
	}
	s.aim = s.cfg.ClampAim(angle)
	s.refreshHint()
}

// Fire launches the loaded element along angle.
// Returns false if a shot is already in flight or the game is over.
func (s *Session) Fire(angle float64) bool {
	if s.over || s.shot != nil {
		return false
	}

	s.aim = s.cfg.ClampAim(angle)
	s.shot = s.resolver.Launch(s.queue.Current(), s.aim)
	s.queue.Lock()
	s.hint = Hint{}
	return true
}

// SwapHold exchanges the loaded element with the hold slot.
// Returns false while a shot is in flight, after a swap this cycle, or once
// the game is over.
func (s *Session) SwapHold() bool {
	if s.over || s.shot != nil {
		return false
	}
	if !s.queue.Swap() {
		return false
	}
	s.refreshHint()
	return true
}

// Advance moves the shot in flight by dt seconds. When the shot resolves
// the board, score and queue are updated and the resolution is returned.
func (s *Session) Advance(dt float64) *Resolution {
	if s.over || s.shot == nil {
		return nil
	}

	contact, done := s.resolver.Step(s.shot, dt)
	if !done {
		return nil
	}

	res := s.resolver.Resolve(s.shot, contact)
	s.shot = nil
	s.shots++
	s.last = &res

	if res.GameOver {
		s.end(ReasonDangerLine)
		return &res
	}

	s.score += res.Points
	s.queue.Advance()
	s.queue.ResetSwapLock()
	s.refreshHint()
	return &res
}

// TriggerPressure shifts the board down one row and spawns a new top row.
// Returns false if the session was already over or the bottom row was
// occupied, which ends the game.
func (s *Session) TriggerPressure() bool {
	if s.over {
		return false
	}
	if !s.board.ApplyPressure(s.cfg.PressureSpawn, s.rng) {
		s.end(ReasonPressure)
		return false
	}
	if s.shot == nil {
		s.refreshHint()
	}
	return true
}

func (s *Session) end(reason Reason) {
	s.over = true
	s.reason = reason
	s.shot = nil
	s.hint = Hint{}
}

func (s *Session) refreshHint() {
	s.hint = Predict(s.cfg, s.board, s.queue.Current(), s.aim)
}
