package game

import "testing"

func TestRotationCounts(t *testing.T) {
	tests := []struct {
		kind PieceKind
		want int
	}{
		{KindI, 2},
		{KindO, 1},
		{KindT, 4},
		{KindS, 2},
		{KindZ, 2},
		{KindJ, 4},
		{KindL, 4},
	}
	for _, tt := range tests {
		if got := RotationCount(tt.kind); got != tt.want {
			t.Errorf("RotationCount(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestShapesNormalized(t *testing.T) {
	// Every rotation's bounding box must start at (0, 0) and hold
	// exactly four distinct cells.
	for _, kind := range Kinds() {
		for rot := 0; rot < RotationCount(kind); rot++ {
			p := Piece{Kind: kind, Rot: rot}
			cells := p.Cells()

			minX, minY := cells[0].X, cells[0].Y
			seen := make(map[Cell]bool)
			for _, c := range cells {
				if c.X < minX {
					minX = c.X
				}
				if c.Y < minY {
					minY = c.Y
				}
				if seen[c] {
					t.Errorf("%s rot %d: duplicate cell %v", kind, rot, c)
				}
				seen[c] = true
			}
			if minX != 0 || minY != 0 {
				t.Errorf("%s rot %d: bounding box origin (%d, %d), want (0, 0)", kind, rot, minX, minY)
			}
		}
	}
}

func TestPieceDimensions(t *testing.T) {
	tests := []struct {
		kind PieceKind
		rot  int
		w, h int
	}{
		{KindI, 0, 4, 1},
		{KindI, 1, 1, 4},
		{KindO, 0, 2, 2},
		{KindT, 0, 3, 2},
		{KindT, 1, 2, 3},
		{KindL, 0, 3, 2},
	}
	for _, tt := range tests {
		p := Piece{Kind: tt.kind, Rot: tt.rot}
		if p.Width() != tt.w || p.Height() != tt.h {
			t.Errorf("%s rot %d: size %dx%d, want %dx%d",
				tt.kind, tt.rot, p.Width(), p.Height(), tt.w, tt.h)
		}
	}
}

func TestRotatedRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		p := Piece{Kind: kind, X: 3, Y: 5}
		count := RotationCount(kind)

		// A full cycle of CW rotations returns to the start.
		q := p
		for i := 0; i < count; i++ {
			q = q.Rotated(RotateCW)
		}
		if q != p {
			t.Errorf("%s: full CW cycle changed piece: %+v", kind, q)
		}

		// CW then CCW is the identity.
		if back := p.Rotated(RotateCW).Rotated(RotateCCW); back != p {
			t.Errorf("%s: CW+CCW changed piece: %+v", kind, back)
		}
	}
}

func TestKindColorsDistinct(t *testing.T) {
	seen := make(map[uint8]PieceKind)
	for _, kind := range Kinds() {
		c := uint8(kind.Color())
		if prev, dup := seen[c]; dup {
			t.Errorf("kinds %s and %s share color %d", prev, kind, c)
		}
		seen[c] = kind
	}
}
