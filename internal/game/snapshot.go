package game

// Snapshot captures the renderer-facing view of a session at one tick:
// the static grid, the active piece, upcoming pieces, counters, and
// the state tag. Everything is copied; holding a Snapshot never
// aliases live state.
type Snapshot struct {
	Tick     uint64
	Width    int
	Height   int
	Cells    [][]PieceKind // [row][col], row 0 at the top
	Active   *Piece        // nil when no piece is falling
	Next     []PieceKind
	Score    int
	Level    int
	Lines    int
	State    StateTag
	PieceSeq uint64 // increments on every spawn
}

// Snapshot returns a copy of the current session state.
func (g *Game) Snapshot() Snapshot {
	cells := make([][]PieceKind, g.board.Height())
	for y := range cells {
		cells[y] = make([]PieceKind, g.board.Width())
		for x := range cells[y] {
			cells[y][x] = g.board.Cell(x, y)
		}
	}

	var active *Piece
	if g.hasActive {
		p := g.active
		active = &p
	}

	next := make([]PieceKind, len(g.queue))
	copy(next, g.queue)

	return Snapshot{
		Tick:     g.tick,
		Width:    g.board.Width(),
		Height:   g.board.Height(),
		Cells:    cells,
		Active:   active,
		Next:     next,
		Score:    g.score.Points(),
		Level:    g.score.Level(),
		Lines:    g.score.Lines(),
		State:    g.state,
		PieceSeq: g.pieceSeq,
	}
}

// PlanView is what the autopilot needs to plan a placement: an
// independent board copy, the active piece, and the spawn sequence
// number used to detect when a new piece arrives.
type PlanView struct {
	Board *Board
	Piece Piece
	Seq   uint64
}

// PlanningView returns a planning snapshot, or false when there is
// nothing to plan (paused, game over, or no active piece).
func (g *Game) PlanningView() (PlanView, bool) {
	if g.state != StatePlaying || !g.hasActive {
		return PlanView{}, false
	}
	return PlanView{
		Board: g.board.Clone(),
		Piece: g.active,
		Seq:   g.pieceSeq,
	}, true
}
