package game

import (
	"errors"
	"fmt"
)

// ErrSpawnBlocked is returned by Spawn when the canonical spawn cells
// are already occupied. It ends the session, not the process.
var ErrSpawnBlocked = errors.New("game: spawn position blocked")

// minBoardWidth is the narrowest board any piece fits on.
const minBoardWidth = 4

// Board owns the static grid of locked cells. The active piece is not
// part of the grid; it is merged in exactly once, when it locks.
// Rows are indexed top to bottom: row 0 is the top of the well.
type Board struct {
	width  int
	height int
	cells  [][]PieceKind
}

// NewBoard creates an empty board. Degenerate dimensions are a
// programmer error and abort.
func NewBoard(width, height int) *Board {
	if width < minBoardWidth || height < minBoardWidth {
		panic(fmt.Sprintf("game: degenerate board dimensions %dx%d", width, height))
	}

	cells := make([][]PieceKind, height)
	for y := range cells {
		cells[y] = make([]PieceKind, width)
	}
	return &Board{width: width, height: height, cells: cells}
}

// Width returns the board width in columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in rows.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the kind locked at (x, y), or KindNone if empty.
// Out-of-bounds coordinates report KindNone.
func (b *Board) Cell(x, y int) PieceKind {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return KindNone
	}
	return b.cells[y][x]
}

// Collides reports whether any cell of the piece is outside the grid or
// overlaps a locked cell. This single predicate underlies every move,
// rotation, and drop.
func (b *Board) Collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y < 0 || c.Y >= b.height {
			return true
		}
		if b.cells[c.Y][c.X] != KindNone {
			return true
		}
	}
	return false
}

// Spawn places a new piece of the given kind at the canonical spawn
// position: rotation 0, horizontally centered, top row. Returns
// ErrSpawnBlocked if the spawn cells are already occupied.
func (b *Board) Spawn(kind PieceKind) (Piece, error) {
	p := Piece{Kind: kind, Rot: 0}
	p.X = (b.width - p.Width()) / 2
	p.Y = 0

	if b.Collides(p) {
		return Piece{}, ErrSpawnBlocked
	}
	return p, nil
}

// TryMove attempts to translate the piece by (dx, dy). Illegal moves
// are rejected without any state change.
func (b *Board) TryMove(p *Piece, dx, dy int) bool {
	moved := *p
	moved.X += dx
	moved.Y += dy
	if b.Collides(moved) {
		return false
	}
	*p = moved
	return true
}

// TryRotate attempts to rotate the piece in the given direction. If the
// naive rotated position collides, each wall-kick offset is tried in
// fixed priority order and the first collision-free one is accepted.
// Returns false, leaving the piece untouched, if none succeeds.
func (b *Board) TryRotate(p *Piece, dir RotationDir) bool {
	rotated := p.Rotated(dir)
	for _, kick := range kicks {
		kicked := rotated
		kicked.X += kick.X
		kicked.Y += kick.Y
		if !b.Collides(kicked) {
			*p = kicked
			return true
		}
	}
	return false
}

// StepDown advances the piece one row down if legal. If not, the piece
// locks: its cells are merged into the grid and full rows are cleared.
// Returns whether the piece locked and how many rows cleared.
func (b *Board) StepDown(p *Piece) (locked bool, cleared int) {
	if b.TryMove(p, 0, 1) {
		return false, 0
	}
	return true, b.Lock(*p)
}

// HardDrop moves the piece down until blocked, then locks it
// immediately. Returns the number of rows cleared.
func (b *Board) HardDrop(p *Piece) int {
	for b.TryMove(p, 0, 1) {
	}
	return b.Lock(*p)
}

// Lock merges the piece's cells into the static grid, then removes all
// full rows in one pass: rows above each cleared row shift down,
// preserving column contents and relative order.
func (b *Board) Lock(p Piece) int {
	for _, c := range p.Cells() {
		b.cells[c.Y][c.X] = p.Kind
	}
	return b.clearFullRows()
}

// clearFullRows removes every complete row and returns the count.
func (b *Board) clearFullRows() int {
	cleared := 0
	for y := b.height - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		b.removeRow(y)
		cleared++
		y++ // recheck the row that shifted into this index
	}
	return cleared
}

// rowFull reports whether every column of row y is occupied.
func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if b.cells[y][x] == KindNone {
			return false
		}
	}
	return true
}

// removeRow deletes row y and shifts all rows above it down by one,
// inserting an empty row at the top.
func (b *Board) removeRow(y int) {
	for row := y; row > 0; row-- {
		copy(b.cells[row], b.cells[row-1])
	}
	for x := 0; x < b.width; x++ {
		b.cells[0][x] = KindNone
	}
}

// Clone returns an independent value copy of the grid, so autopilot
// planning never touches live state.
func (b *Board) Clone() *Board {
	clone := &Board{width: b.width, height: b.height}
	clone.cells = make([][]PieceKind, b.height)
	for y := range b.cells {
		clone.cells[y] = make([]PieceKind, b.width)
		copy(clone.cells[y], b.cells[y])
	}
	return clone
}

// ColumnHeights returns, per column, the number of rows from the
// topmost occupied cell down to the floor. An empty column is 0.
func (b *Board) ColumnHeights() []int {
	heights := make([]int, b.width)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.cells[y][x] != KindNone {
				heights[x] = b.height - y
				break
			}
		}
	}
	return heights
}

// Holes counts enclosed holes: empty cells with at least one occupied
// cell somewhere above in the same column.
func (b *Board) Holes() int {
	holes := 0
	for x := 0; x < b.width; x++ {
		covered := false
		for y := 0; y < b.height; y++ {
			if b.cells[y][x] != KindNone {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}
