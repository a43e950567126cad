// Package game implements the blockfall simulation engine: board
// state, piece movement and rotation legality, line clearing, scoring,
// and the tick-driven session state machine. It contains no terminal
// or rendering dependencies beyond the core screen buffer.
package game

import (
	"fmt"
	"math/rand"

	"blockfall/internal/config"
	"blockfall/internal/core"
	"blockfall/internal/registry"
)

// StateTag labels the session state machine.
type StateTag string

const (
	StatePlaying  StateTag = "playing"
	StatePaused   StateTag = "paused"
	StateGameOver StateTag = "game_over"
)

// Game is one blockfall session: board, active piece, randomizer,
// score, and state tag. It implements registry.Game.
//
// The engine advances strictly by discrete ticks. Within one tick the
// order is fixed: at most one game command, then gravity if the tick
// interval elapsed, then any resulting lock/clear/game-over
// resolution. It is not safe for concurrent mutation.
type Game struct {
	cfg config.Config
	rng *rand.Rand
	bag *Bag

	board     *Board
	active    Piece
	hasActive bool
	queue     []PieceKind // upcoming pieces, oldest first
	score     *Score

	state         StateTag
	tick          uint64
	gravityTicker int
	pieceSeq      uint64 // increments on every spawn

	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level knobs set by the CLI before game creation
// (same pattern as the per-game Set* functions the platform expects).
var (
	currentConfig      = config.Default()
	selectedStartLevel int
)

// SetConfig installs the configuration used by subsequently created games.
func SetConfig(cfg config.Config) {
	currentConfig = cfg
}

// SetStartLevel overrides the configured starting level.
// 0 means use the config value.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// New creates a new blockfall session using the installed configuration.
func New() *Game {
	return &Game{cfg: currentConfig}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Config returns the configuration the session runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset initializes or restarts the session: empty grid, fresh bag
// seeded from the runtime config, score back to initial defaults, and
// the first piece spawned.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.bag = NewBag(g.rng)
	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)

	startLevel := g.cfg.Rules.StartLevel
	if selectedStartLevel > 0 {
		startLevel = selectedStartLevel
	}
	g.score = NewScore(startLevel, g.cfg.Rules.LinesPerLevel, g.cfg.Rules.PointsBase)

	g.tick = 0
	g.gravityTicker = 0
	g.pieceSeq = 0
	g.state = StatePlaying
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	g.queue = g.queue[:0]
	for i := 0; i < g.cfg.Rules.PreviewCount; i++ {
		g.queue = append(g.queue, g.bag.Next())
	}
	g.spawnNext()
}

// checkScreenSize flags sessions whose terminal cannot fit the well.
func (g *Game) checkScreenSize() {
	requiredW := g.boardPixelWidth() + 2
	requiredH := g.board.Height() + hudHeight + 3
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Restart is only honored from game over; it discards the session
	// and creates a fresh one with a new seed.
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.state != StateGameOver {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
		return core.StepResult{State: g.State()}
	}

	// Paused and game over freeze the board entirely: no commands, no
	// gravity, no autopilot progress.
	if g.state != StatePlaying || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyCommand(in)

	if g.state == StatePlaying && g.hasActive {
		g.gravityTicker++
		if g.gravityTicker >= g.gravityInterval() {
			g.gravityTicker = 0
			g.gravityStep()
		}
	}

	return core.StepResult{State: g.State()}
}

// applyCommand processes at most one game command from the frame, in a
// fixed priority order so simultaneous key presses resolve
// deterministically.
func (g *Game) applyCommand(in core.InputFrame) {
	if !g.hasActive {
		return
	}

	switch {
	case in.Has(core.ActionHardDrop):
		cleared := g.board.HardDrop(&g.active)
		g.gravityTicker = 0
		g.resolveLock(cleared)
	case in.Has(core.ActionRotateLeft):
		g.board.TryRotate(&g.active, RotateCCW)
	case in.Has(core.ActionRotateRight):
		g.board.TryRotate(&g.active, RotateCW)
	case in.Has(core.ActionMoveLeft):
		g.board.TryMove(&g.active, -1, 0)
	case in.Has(core.ActionMoveRight):
		g.board.TryMove(&g.active, 1, 0)
	case in.Has(core.ActionSoftDrop):
		locked, cleared := g.board.StepDown(&g.active)
		g.gravityTicker = 0
		if locked {
			g.resolveLock(cleared)
		}
	}
}

// gravityInterval returns the gravity period in ticks for the current level.
func (g *Game) gravityInterval() int {
	interval := g.cfg.Gravity.BaseTicks - (g.score.Level()-1)*g.cfg.Gravity.StepTicks
	if interval < g.cfg.Gravity.MinTicks {
		interval = g.cfg.Gravity.MinTicks
	}
	return interval
}

// gravityStep advances the active piece one row; on lock it resolves
// clears, scoring, and the next spawn.
func (g *Game) gravityStep() {
	locked, cleared := g.board.StepDown(&g.active)
	if locked {
		g.resolveLock(cleared)
	}
}

// resolveLock handles a just-locked piece: scoring and the next spawn.
// A blocked spawn is the one and only path into game over.
func (g *Game) resolveLock(cleared int) {
	g.score.Add(cleared)
	g.hasActive = false
	g.spawnNext()
}

// spawnNext takes the next kind from the preview queue (refilled from
// the bag) and spawns it at the canonical position.
func (g *Game) spawnNext() {
	var kind PieceKind
	if len(g.queue) > 0 {
		kind = g.queue[0]
		copy(g.queue, g.queue[1:])
		g.queue[len(g.queue)-1] = g.bag.Next()
	} else {
		kind = g.bag.Next()
	}

	piece, err := g.board.Spawn(kind)
	if err != nil {
		g.state = StateGameOver
		return
	}
	g.active = piece
	g.hasActive = true
	g.pieceSeq++
	g.gravityTicker = 0
}

// State returns the platform-facing state summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Points(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Points returns current points.
func (g *Game) Points() int {
	return g.score.Points()
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.score.Level()
}

// Lines returns total cleared lines.
func (g *Game) Lines() int {
	return g.score.Lines()
}

// DebugState returns a terse one-line summary for logging.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d state=%s score=%d level=%d lines=%d piece=%s seq=%d",
		g.tick, g.state, g.score.Points(), g.score.Level(), g.score.Lines(), g.active.Kind, g.pieceSeq)
}
