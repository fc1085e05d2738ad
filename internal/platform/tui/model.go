package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paperplane/internal/core"
	"github.com/vovakirdan/paperplane/internal/registry"
	"github.com/vovakirdan/paperplane/internal/storage"
)

// gameMode returns the interaction mode of a game, or "" if it has none.
func gameMode(g registry.Game) string {
	if m, ok := g.(registry.Moder); ok {
		return m.Mode()
	}
	return ""
}

// GameModel runs one game: it feeds keys and mouse gestures into the
// simulation, records finished throws and can open the throw log.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	throwLog   *ThrowLogModel
	loop       uint64
	lastX      int
	lastY      int
	inSession  bool // Hosted by SessionModel, which owns quitting the program
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model.
// Store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = NewLogger(nil, "")
	}
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		loop:       nextLoop(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.throwLog != nil {
		return m.updateThrowLog(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.lastX, m.lastY = msg.X, msg.Y
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.BlurMsg:
		m.inputFrame.AddPointer(core.PointerLeave, m.lastX, m.lastY)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" && m.store != nil {
		tl := NewThrowLogModel(m.store, m.config.ScreenW, m.config.ScreenH, m.game.ID())
		m.throwLog = &tl
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game unless a dialog is open to take it
	if action == core.ActionBack && !m.gameState.Paused {
		m.backToMenu = true
		if m.inSession {
			return m, nil
		}
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize re-projects the game without resetting it.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.recordThrow(ev)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// recordThrow logs a finished throw and appends it to the throw log.
func (m GameModel) recordThrow(ev core.Event) {
	m.logger.Info("throw",
		"game", ev.GameID,
		"outcome", ev.Outcome,
		"award", ev.Award,
		"distance", ev.Distance,
		"frames", ev.Frames,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.RecordThrow(ev, gameMode(m.game)); err != nil {
		m.logger.Warn("could not record throw", "error", err)
	}
}

// updateThrowLog routes messages to the open throw log.
// The game is frozen meanwhile but the tick chain stays alive.
func (m GameModel) updateThrowLog(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m, tickCmd(m.config.TickRate, m.loop)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
	}

	newLog, cmd := m.throwLog.update(msg)
	switch {
	case newLog.IsQuitting():
		m.throwLog = nil
		m.quitting = true
		return m, tea.Quit
	case newLog.IsGoingBack():
		m.throwLog = nil
		return m, nil
	}
	m.throwLog = &newLog
	return m, cmd
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.throwLog != nil {
		return m.throwLog.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// ThrowLogOpen reports whether the throw log is showing.
func (m GameModel) ThrowLogOpen() bool {
	return m.throwLog != nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
// It reports whether the player asked to go back rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release
		tea.WithReportFocus(),     // Focus loss ends a drag
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
