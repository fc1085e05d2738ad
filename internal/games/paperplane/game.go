// Package paperplane implements the paper plane throw game: drag the plane,
// let it go, and try to settle it on the monitor across the office.
package paperplane

import (
	"fmt"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
	"github.com/vovakirdan/paperplane/internal/registry"
)

// flashTicks is how long a hit or reset banner stays up.
const flashTicks = 90

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// Game implements the paper plane game for one interaction mode.
type Game struct {
	id    string
	title string
	mode  string

	cfg     config.PaperPlaneConfig
	runtime core.RuntimeConfig
	layout  Layout
	view    Viewport
	buttons []Button

	flight     *Flight
	controller *Controller
	board      *Scoreboard
	sprite     Tween

	frame        int
	lastPointer  core.Vec2
	settingsOpen bool
	flash        string
	flashLeft    int
	events       []core.Event
}

// New creates a game in release mode.
func New() *Game {
	return &Game{id: "paperplane", title: "Paper Plane", mode: config.ModeRelease}
}

// NewFollow creates a game in follow (slingshot) mode.
func NewFollow() *Game {
	return &Game{id: "paperplane_follow", title: "Paper Plane: Slingshot", mode: config.ModeFollow}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads configuration, measures the scene and starts a fresh board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPaperPlane(configPath)
	if err != nil {
		cfg = config.DefaultPaperPlaneConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPaperPlanePreset(&cfg, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a fresh board from an explicit configuration.
// The game's own interaction mode overrides cfg.Interaction.Mode.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.PaperPlaneConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	cfg.Interaction.Mode = g.mode

	g.cfg = cfg
	g.runtime = runtime
	g.layout = NewLayout(cfg)
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	env := g.layout.Environment()
	g.board = NewScoreboard(cfg.Scoring.InitialBest, nil, Callbacks{
		OnScoreUpdate: func(score int) { g.setFlash(fmt.Sprintf("HIT! +%d", score)) },
		OnReset:       func() { g.setFlash("Back to launch") },
	})
	g.flight = NewFlight(physicsFor(cfg, g.mode), env, g.board)
	g.board.SetRestorer(g.flight)
	g.controller = NewController(cfg.Interaction, runtime.TickRate, g.flight, g.board)
	g.sprite = NewTween(env.Launch)

	g.frame = 0
	g.lastPointer = env.Launch
	g.settingsOpen = false
	g.flash = ""
	g.flashLeft = 0
	g.events = nil
}

// physicsFor builds simulator constants for a mode.
func physicsFor(cfg config.PaperPlaneConfig, mode string) Physics {
	busy := BusyReject
	if cfg.Interaction.BusyPolicy == config.BusyRestart {
		busy = BusyRestart
	}
	return Physics{
		Decay:          cfg.Flight.Decay,
		StopThreshold:  cfg.Flight.StopThreshold,
		MoveTransition: cfg.Flight.MoveTransitionDuration(),
		ResetDuration:  cfg.Flight.ResetDurationDuration(),
		Award:          cfg.Scoring.Award(mode),
		MaxFrames:      cfg.Flight.MaxFrames,
		Busy:           busy,
	}
}

// Resize re-projects the playfield onto a new terminal size without
// touching the simulation.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	// Row 0 carries the title bar
	g.view = NewViewport(g.layout.Playfield, 0, 1, cols, rows-1)
	g.buttons = controlButtons(cols, rows)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if in.Has(core.ActionSettings) {
		g.toggleSettings()
	}
	if in.Has(core.ActionBack) && g.settingsOpen {
		g.settingsOpen = false
	}
	if in.Has(core.ActionReset) {
		g.reset()
	}

	for _, p := range in.Pointer {
		g.handlePointer(p)
	}

	if !g.settingsOpen {
		g.flight.Step()
	}
	g.collectOutcome()

	for _, d := range g.flight.TakeDirectives() {
		g.sprite.Apply(d, g.runtime.TickRate)
	}
	g.sprite.Advance()

	if g.flashLeft > 0 {
		g.flashLeft--
	}

	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) toggleSettings() {
	g.settingsOpen = !g.settingsOpen
	if g.settingsOpen {
		g.controller.Cancel()
	}
}

// reset is the Reset control: clear the board and bring the plane home.
func (g *Game) reset() {
	g.controller.Cancel()
	g.board.OnReset()
}

func (g *Game) handlePointer(p core.PointerEvent) {
	if p.Kind == core.PointerDown {
		if action, ok := buttonAt(g.buttons, p.X, p.Y); ok {
			switch action {
			case core.ActionReset:
				g.reset()
			case core.ActionSettings:
				g.toggleSettings()
			}
			return
		}
	}
	if g.settingsOpen || !g.view.Ready() {
		return
	}

	at := g.lastPointer
	if p.Kind != core.PointerLeave {
		at = g.view.ToWorld(p.X, p.Y)
		g.lastPointer = at
	}
	g.controller.Handle(Gesture{Kind: p.Kind, At: at}, g.frame)
}

// collectOutcome turns a finished flight into an event and updates distance.
func (g *Game) collectOutcome() {
	o, ok := g.flight.TakeOutcome()
	if !ok {
		return
	}

	ev := core.Event{GameID: g.id, Frames: o.Frames}
	switch {
	case o.State == FlightReset:
		ev.Outcome = core.OutcomeReset
	case o.Hit:
		ev.Outcome = core.OutcomeHit
		ev.Award = g.flight.phys.Award
	default:
		ev.Outcome = core.OutcomeSettled
	}
	if o.State == FlightSettled {
		ev.Distance = o.Final.Sub(o.Origin).Len() / g.cfg.Scoring.PixelsPerMetre
		g.board.SetDistance(ev.Distance)
	}
	g.events = append(g.events, ev)
}

func (g *Game) setFlash(text string) {
	g.flash = text
	g.flashLeft = flashTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.board.Score(),
		Best:   g.board.Best(),
		Paused: g.settingsOpen,
	}
}

// Distance returns the distance of the last throw in metres.
func (g *Game) Distance() float64 {
	if g.board == nil {
		return 0
	}
	return g.board.Distance()
}

// Mode returns the interaction mode this game runs in.
func (g *Game) Mode() string {
	return g.mode
}

// Register both variants with the registry
func init() {
	registry.Register("paperplane", func() registry.Game {
		return New()
	})
	registry.Register("paperplane_follow", func() registry.Game {
		return NewFollow()
	})
}
