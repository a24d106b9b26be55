package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by NewSession for unusable configurations.
var ErrInvalidConfig = errors.New("sim: invalid config")

// Vec is a point or velocity in world space.
// X increases to the right, Y increases downward (screen coordinates).
type Vec struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Config contains every tunable of a session.
type Config struct {
	Rows     int
	Cols     int
	CellSize float64
	Origin   Vec // Top-left corner of the grid
	Shooter  Vec // Spawn point of every shot

	ShotSpeed float64 // World units per second
	MinAimDeg float64
	MaxAimDeg float64

	SeedRows        int
	SeedFillProb    float64
	PressureSpawn   float64
	CollisionRatio  float64 // Overlap threshold as a fraction of CellSize
	WallInsetRatio  float64 // Wall inset as a fraction of CellSize
	SearchStepRatio float64 // Hint ray step as a fraction of CellSize
	MaxHintSteps    int

	KePoints    int
	ShengPoints int
	StickPoints int
}

// Layout of the original portrait play field: 390 wide, 844 tall,
// 120 top panel, 140 bottom panel.
const (
	virtualW    = 390.0
	virtualH    = 844.0
	topPanelH   = 120.0
	bottomPanel = 140.0
)

// DefaultConfig returns the classic 12x9 configuration.
func DefaultConfig() Config {
	return NewConfig(12, 9)
}

// NewConfig returns the default tunables for a rows x cols grid. The cell
// size is the largest whole size whose grid fits the play field width, and
// the grid is centred in the play area between the top and bottom panels.
func NewConfig(rows, cols int) Config {
	cell := math.Floor(virtualW / float64(max(cols, 1)))
	gridW := cell * float64(cols)
	gridH := cell * float64(rows)
	playH := virtualH - topPanelH - bottomPanel

	return Config{
		Rows:     rows,
		Cols:     cols,
		CellSize: cell,
		Origin: Vec{
			X: (virtualW - gridW) / 2,
			Y: topPanelH + (playH-gridH)/2,
		},
		Shooter:         Vec{X: virtualW / 2, Y: virtualH - 60},
		ShotSpeed:       900,
		MinAimDeg:       -160,
		MaxAimDeg:       -20,
		SeedRows:        4,
		SeedFillProb:    0.85,
		PressureSpawn:   0.8,
		CollisionRatio:  0.42,
		WallInsetRatio:  0.1,
		SearchStepRatio: 0.35,
		MaxHintSteps:    80,
		KePoints:        10,
		ShengPoints:     3,
		StickPoints:     1,
	}
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	switch {
	case c.Rows < 2:
		return fmt.Errorf("%w: rows must be at least 2, got %d", ErrInvalidConfig, c.Rows)
	case c.Cols < 1:
		return fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfig, c.Cols)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %g", ErrInvalidConfig, c.CellSize)
	case c.ShotSpeed <= 0:
		return fmt.Errorf("%w: shot speed must be positive, got %g", ErrInvalidConfig, c.ShotSpeed)
	case c.MinAimDeg > c.MaxAimDeg:
		return fmt.Errorf("%w: aim cone [%g, %g] is empty", ErrInvalidConfig, c.MinAimDeg, c.MaxAimDeg)
	case c.SeedRows < 0 || c.SeedRows > c.Rows:
		return fmt.Errorf("%w: seed rows must be in [0, %d], got %d", ErrInvalidConfig, c.Rows, c.SeedRows)
	case !isProb(c.SeedFillProb):
		return fmt.Errorf("%w: seed fill probability %g outside [0, 1]", ErrInvalidConfig, c.SeedFillProb)
	case !isProb(c.PressureSpawn):
		return fmt.Errorf("%w: pressure spawn probability %g outside [0, 1]", ErrInvalidConfig, c.PressureSpawn)
	case c.CollisionRatio <= 0 || c.SearchStepRatio <= 0:
		return fmt.Errorf("%w: collision and search ratios must be positive", ErrInvalidConfig)
	case c.Shooter.Y <= c.Origin.Y+c.GridH():
		return fmt.Errorf("%w: %dx%d grid reaches below the shooter", ErrInvalidConfig, c.Rows, c.Cols)
	}
	return nil
}

func isProb(p float64) bool {
	return p >= 0 && p <= 1
}

// GridW returns the grid width in world units.
func (c Config) GridW() float64 {
	return c.CellSize * float64(c.Cols)
}

// GridH returns the grid height in world units.
func (c Config) GridH() float64 {
	return c.CellSize * float64(c.Rows)
}

// MinAim returns the lower aim bound in radians.
func (c Config) MinAim() float64 {
	return c.MinAimDeg * math.Pi / 180
}

// MaxAim returns the upper aim bound in radians.
func (c Config) MaxAim() float64 {
	return c.MaxAimDeg * math.Pi / 180
}

// ClampAim restricts an angle to the upward aim cone. NaN aims straight up.
func (c Config) ClampAim(angle float64) float64 {
	if math.IsNaN(angle) {
		return DefaultAim
	}
	return math.Max(c.MinAim(), math.Min(c.MaxAim(), angle))
}
