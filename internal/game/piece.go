package game

import "blockfall/internal/core"

// PieceKind identifies one of the seven tetromino shapes.
// KindNone marks an empty board cell.
type PieceKind uint8

const (
	KindNone PieceKind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// String returns the canonical one-letter name of the kind.
func (k PieceKind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "."
	}
}

// Color returns the render color tag for the kind.
func (k PieceKind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Cell is a board coordinate. X grows rightward, Y grows downward
// (row 0 is the top row).
type Cell struct {
	X, Y int
}

// RotationDir selects the direction of a rotation.
type RotationDir int

const (
	RotateCW  RotationDir = iota // clockwise
	RotateCCW                    // counter-clockwise
)

// shapes holds the static occupancy offsets for every (kind, rotation)
// pair. Offsets are normalized so the bounding box starts at (0, 0).
// Kinds with rotational symmetry carry only their distinct orientations.
var shapes = map[PieceKind][][4]Cell{
	KindI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// kicks is the ordered list of offset candidates tried when a rotation's
// default target position collides. The first collision-free candidate
// wins; if none fits the rotation is rejected.
var kicks = [...]Cell{
	{0, 0},
	{-1, 0},
	{1, 0},
	{-2, 0},
	{2, 0},
	{0, -1},
}

// RotationCount returns the number of distinct rotation states of a kind.
func RotationCount(k PieceKind) int {
	return len(shapes[k])
}

// Kinds returns all piece kinds in a fixed order.
func Kinds() []PieceKind {
	return []PieceKind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// Piece is an active falling piece: a kind, a rotation state, and the
// board position of its bounding box's top-left corner.
type Piece struct {
	Kind PieceKind
	Rot  int
	X, Y int
}

// Cells returns the board coordinates occupied by the piece.
func (p Piece) Cells() [4]Cell {
	offsets := shapes[p.Kind][p.Rot]
	var cells [4]Cell
	for i, off := range offsets {
		cells[i] = Cell{X: p.X + off.X, Y: p.Y + off.Y}
	}
	return cells
}

// Width returns the bounding-box width of the piece in its current rotation.
func (p Piece) Width() int {
	w := 0
	for _, off := range shapes[p.Kind][p.Rot] {
		if off.X+1 > w {
			w = off.X + 1
		}
	}
	return w
}

// Height returns the bounding-box height of the piece in its current rotation.
func (p Piece) Height() int {
	h := 0
	for _, off := range shapes[p.Kind][p.Rot] {
		if off.Y+1 > h {
			h = off.Y + 1
		}
	}
	return h
}

// Rotated returns a copy of the piece advanced one rotation state in the
// given direction, without any collision checking.
func (p Piece) Rotated(dir RotationDir) Piece {
	count := RotationCount(p.Kind)
	next := p
	if dir == RotateCW {
		next.Rot = (p.Rot + 1) % count
	} else {
		next.Rot = (p.Rot - 1 + count) % count
	}
	return next
}
