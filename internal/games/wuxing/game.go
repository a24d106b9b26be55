// Package wuxing adapts the five-element bubble shooter simulation to the
// arcade platform: fixed-tick stepping, keyboard aiming, the pressure timer
// and terminal rendering.
package wuxing

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/wuxing-arcade/internal/config"
	"github.com/vovakirdan/wuxing-arcade/internal/core"
	"github.com/vovakirdan/wuxing-arcade/internal/games/wuxing/sim"
	"github.com/vovakirdan/wuxing-arcade/internal/registry"
)

// GameID is the registry and score table identifier.
const GameID = "wuxing"

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// eventTicks is how long an interaction banner stays on screen.
const eventTicks = 45

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// DifficultyPreset returns the preset applied on the next Reset.
func DifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// SimConfig converts a file configuration into simulation tunables and
// validates the result.
func SimConfig(cfg config.WuxingConfig) (sim.Config, error) {
	c := sim.NewConfig(cfg.Board.Rows, cfg.Board.Cols)
	c.SeedRows = cfg.Board.SeedRows
	c.SeedFillProb = cfg.Board.SeedFill
	c.ShotSpeed = cfg.Shot.Speed
	c.MinAimDeg = cfg.Shot.MinAimDeg
	c.MaxAimDeg = cfg.Shot.MaxAimDeg
	c.PressureSpawn = cfg.Pressure.SpawnProb
	c.KePoints = cfg.Scoring.Ke
	c.ShengPoints = cfg.Scoring.Sheng
	c.StickPoints = cfg.Scoring.Stick
	if err := c.Validate(); err != nil {
		return sim.Config{}, err
	}
	return c, nil
}

// Game implements registry.Game for Wuxing Bubbles.
type Game struct {
	session *sim.Session

	// Game state
	state         string
	tickCount     int
	pressureTicks int // Ticks since the last pressure push
	pushes        int // Pressure pushes applied
	event         string
	eventColor    core.Color
	eventTimer    int

	// Configuration
	preset     config.DifficultyPreset // Overrides the CLI preset when set
	runtime    core.RuntimeConfig
	cfg        config.WuxingConfig
	simCfg     sim.Config
	difficulty *config.DifficultyManager

	// Layout (computed from screen size)
	layout         layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Wuxing Bubbles game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Wuxing Bubbles"
}

// SetPreset sets the difficulty preset for this instance.
// Unknown names fall back to the CLI preset.
func (g *Game) SetPreset(name string) {
	p, err := config.ParsePreset(name)
	if err != nil || name == "" {
		g.preset = ""
		return
	}
	g.preset = p
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}

	// Load game config
	cfg, err := config.LoadWuxing(configPath)
	if err != nil {
		cfg = config.DefaultWuxingConfig()
	}

	// Apply difficulty preset if set
	if preset != "" {
		config.ApplyWuxingPreset(&cfg, preset)
	}

	simCfg, err := SimConfig(cfg)
	if err != nil {
		cfg = config.DefaultWuxingConfig()
		if preset != "" {
			config.ApplyWuxingPreset(&cfg, preset)
		}
		simCfg, _ = SimConfig(cfg)
	}

	g.cfg = cfg
	g.simCfg = simCfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	rng := rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- deterministic gameplay RNG
	session, err := sim.NewSession(simCfg, rng)
	if err != nil {
		// Defaults always validate.
		session, _ = sim.NewSession(sim.DefaultConfig(), rng)
		g.simCfg = sim.DefaultConfig()
	}
	g.session = session

	g.calculateLayout()
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.state = StatePlaying
	g.tickCount = 0
	g.pressureTicks = 0
	g.pushes = 0
	g.event = ""
	g.eventTimer = 0
}

// Resize recomputes the layout for a new screen size, keeping the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.calculateLayout()
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.eventTimer > 0 {
		g.eventTimer--
	}

	g.updateAim(in)

	if in.Has(core.ActionSwap) {
		g.session.SwapHold()
	}
	if in.Has(core.ActionFire) {
		g.session.Fire(g.session.Aim())
	}

	if res := g.session.Advance(g.runtime.TickSeconds()); res != nil {
		g.announce(res)
	}

	g.updatePressure()

	if g.session.IsOver() {
		g.state = StateGameOver
	}

	return core.StepResult{State: g.State()}
}

// updateAim rotates the aim by the configured step per held direction.
func (g *Game) updateAim(in core.InputFrame) {
	step := g.cfg.Shot.AimStepDeg * math.Pi / 180
	aim := g.session.Aim()

	switch {
	case in.Has(core.ActionAimLeft) && !in.Has(core.ActionAimRight):
		g.session.UpdateAim(aim - step)
	case in.Has(core.ActionAimRight) && !in.Has(core.ActionAimLeft):
		g.session.UpdateAim(aim + step)
	}
}

// updatePressure counts down to the next board push.
func (g *Game) updatePressure() {
	if g.session.IsOver() {
		return
	}
	g.pressureTicks++
	if g.pressureTicks < g.pressureIntervalTicks() {
		return
	}

	g.pressureTicks = 0
	if g.session.TriggerPressure() {
		g.pushes++
		g.setEvent("The sky presses down", core.ColorGray)
	}
}

// pressureIntervalTicks returns the current pressure interval in ticks.
func (g *Game) pressureIntervalTicks() int {
	ms := g.difficulty.PressureIntervalMs(g.cfg.Pressure.IntervalMs, g.session.Score(), g.tickCount)
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return max(1, ms*rate/1000)
}

// pressureSecondsLeft returns the time until the next push.
func (g *Game) pressureSecondsLeft() float64 {
	left := g.pressureIntervalTicks() - g.pressureTicks
	return float64(left) * g.runtime.TickSeconds()
}

// announce turns a resolution into a short banner.
func (g *Game) announce(res *sim.Resolution) {
	switch {
	case res.GameOver:
		g.setEvent("The danger line is crossed", core.ColorBrightRed)
	case res.Outcome == sim.OutcomeKe:
		g.setEvent("KE! "+res.Element.String()+" destroys "+res.TargetElement.String(), core.ColorBrightGreen)
	case res.Outcome == sim.OutcomeSheng:
		g.setEvent("SHENG: "+res.TargetElement.String()+" grows", core.ColorYellow)
	case !res.Hit:
		g.setEvent(res.Element.String()+" reaches the sky", core.ColorGray)
	default:
		g.setEvent(res.Element.String()+" sticks", core.ColorGray)
	}
}

func (g *Game) setEvent(text string, c core.Color) {
	g.event = text
	g.eventColor = c
	g.eventTimer = eventTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	gs := core.GameState{
		Score:    g.session.Score(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
	if gs.GameOver {
		gs.EndReason = string(g.session.TerminationReason())
	}
	return gs
}

// Shots returns the number of resolved shots.
func (g *Game) Shots() int {
	return g.session.Shots()
}

// Session exposes the underlying simulation.
func (g *Game) Session() *sim.Session {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
