package sim

// Slot is one grid cell as seen by a renderer.
type Slot struct {
	Filled  bool
	Element Element // Valid only when Filled is true
	Level   int
}

// Snapshot captures the complete observable session state for rendering,
// determinism testing and replay.
type Snapshot struct {
	Rows  int
	Cols  int
	Grid  [][]Slot
	Score int
	Shots int

	Over   bool
	Reason Reason

	Current    Element
	Hold       Element
	HasHold    bool
	Queue      [QueueSize]Element
	SwapLocked bool

	InFlight bool
	Shot     Shot // Valid only when InFlight is true
	Aim      float64
	Hint     Hint
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	grid := make([][]Slot, s.board.Rows())
	for r := range grid {
		grid[r] = make([]Slot, s.board.Cols())
		for c := range grid[r] {
			if b := s.board.Get(r, c); b != nil {
				grid[r][c] = Slot{Filled: true, Element: b.Element, Level: b.Level}
			}
		}
	}

	hold, hasHold := s.queue.Hold()
	snap := Snapshot{
		Rows:       s.board.Rows(),
		Cols:       s.board.Cols(),
		Grid:       grid,
		Score:      s.score,
		Shots:      s.shots,
		Over:       s.over,
		Reason:     s.reason,
		Current:    s.queue.Current(),
		Hold:       hold,
		HasHold:    hasHold,
		Queue:      s.queue.Upcoming(),
		SwapLocked: s.queue.SwapLocked(),
		InFlight:   s.shot != nil,
		Aim:        s.aim,
		Hint:       s.hint,
	}
	if s.shot != nil {
		snap.Shot = *s.shot
	}
	return snap
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols || a.Score != b.Score || a.Shots != b.Shots {
		return false
	}
	if a.Over != b.Over || a.Reason != b.Reason || a.Current != b.Current {
		return false
	}
	if a.Hold != b.Hold || a.HasHold != b.HasHold || a.Queue != b.Queue {
		return false
	}
	if a.InFlight != b.InFlight || a.Shot != b.Shot || a.Hint != b.Hint {
		return false
	}
	for r := range a.Grid {
		for c := range a.Grid[r] {
			if a.Grid[r][c] != b.Grid[r][c] {
				return false
			}
		}
	}
	return true
}
