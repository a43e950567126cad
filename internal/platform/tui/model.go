package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"blockfall/internal/ai"
	"blockfall/internal/config"
	"blockfall/internal/core"
	"blockfall/internal/registry"
	"blockfall/internal/storage"
)

// attractRestartTicks is how long the game-over screen stays up in
// attract mode before the next automatic game.
const attractRestartTicks = 180

// Options controls how a game session runs.
type Options struct {
	// Keys holds the configured key bindings.
	Keys config.KeysConfig

	// Pilot, when non-nil, can play the game. It contributes commands
	// through the same input frame the keyboard feeds.
	Pilot *ai.Pilot

	// Autopilot engages the pilot from the first tick.
	Autopilot bool

	// Attract runs the session as a self-playing demo: the autopilot
	// is forced on, game keys are ignored (quit still works), and a
	// finished game restarts by itself.
	Attract bool
}

// Model is the Bubble Tea model for running a blockfall session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	autopilot  bool
	overTicks  int // ticks spent on the game-over screen (attract mode)
	quitting   bool
	scoreSaved bool // whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Attract {
		opts.Autopilot = true
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(opts.Keys),
		inputFrame: core.NewInputFrame(),
		autopilot:  opts.Autopilot && opts.Pilot != nil,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		// Toggle autopilot mid-game; locked on in attract mode.
		if m.opts.Pilot != nil && !m.opts.Attract {
			m.autopilot = !m.autopilot
			if m.autopilot {
				m.opts.Pilot.Reset()
			}
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Attract mode swallows everything but quit.
	if m.opts.Attract {
		return m, nil
	}

	switch action {
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	// Note: This resets the game - could be improved to preserve state
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		if m.opts.Pilot != nil {
			m.opts.Pilot.Reset()
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart: explicit in normal play, automatic after a delay in
	// attract mode.
	wantRestart := m.inputFrame.Has(core.ActionRestart)
	if m.opts.Attract && m.gameState.GameOver {
		m.overTicks++
		wantRestart = m.overTicks >= attractRestartTicks
	}
	if wantRestart && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.overTicks = 0
		m.inputFrame.Clear()
		if m.opts.Pilot != nil {
			m.opts.Pilot.Reset()
		}
		return m, tickCmd(m.config.TickRate)
	}

	// The pilot feeds the same frame the keyboard does; the engine
	// cannot tell them apart.
	if m.autopilot && m.opts.Pilot != nil {
		if planner, ok := m.game.(ai.Planner); ok {
			m.opts.Pilot.Act(planner, &m.inputFrame)
		}
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the result on game over (once). Autopilot games stay out
	// of the human high-score table.
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && !m.autopilot && m.gameState.Score > 0 {
			if rec, ok := m.game.(interface {
				Points() int
				Level() int
				Lines() int
			}); ok {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveScore(m.game.ID(), rec.Points(), rec.Level(), rec.Lines())
			} else {
				//nolint:errcheck // Best-effort save
				m.store.SaveScore(m.game.ID(), m.gameState.Score, 0, 0)
			}
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
