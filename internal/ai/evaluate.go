// Package ai implements the blockfall autopilot: for every newly
// spawned piece it enumerates reachable final placements against a
// board copy, ranks them with a weighted heuristic, and drives the
// winner using the same commands a human player sends. The engine
// never exposes a privileged API to it.
package ai

import (
	"blockfall/internal/config"
	"blockfall/internal/game"
)

// Weights are the heuristic evaluator coefficients. Height, holes, and
// bumpiness carry negative weights (penalties); complete lines carries
// a positive one (reward).
type Weights struct {
	AggregateHeight float64
	CompleteLines   float64
	Holes           float64
	Bumpiness       float64
}

// DefaultWeights returns the empirically tuned default coefficients.
func DefaultWeights() Weights {
	return Weights{
		AggregateHeight: -0.510066,
		CompleteLines:   0.760666,
		Holes:           -0.35663,
		Bumpiness:       -0.184483,
	}
}

// WeightsFromConfig converts configuration weights into evaluator weights.
func WeightsFromConfig(wc config.WeightsConfig) Weights {
	return Weights{
		AggregateHeight: wc.AggregateHeight,
		CompleteLines:   wc.CompleteLines,
		Holes:           wc.Holes,
		Bumpiness:       wc.Bumpiness,
	}
}

// Evaluate scores a hypothetical post-lock board. cleared is the
// number of lines the placement removed. Higher is better.
func Evaluate(b *game.Board, cleared int, w Weights) float64 {
	heights := b.ColumnHeights()

	aggregate := 0
	for _, h := range heights {
		aggregate += h
	}

	bumpiness := 0
	for i := 0; i+1 < len(heights); i++ {
		diff := heights[i] - heights[i+1]
		if diff < 0 {
			diff = -diff
		}
		bumpiness += diff
	}

	return w.AggregateHeight*float64(aggregate) +
		w.CompleteLines*float64(cleared) +
		w.Holes*float64(b.Holes()) +
		w.Bumpiness*float64(bumpiness)
}

// Candidate is one evaluated (rotation, column) placement.
type Candidate struct {
	Rotation int
	Column   int
	Score    float64
}

// EnumeratePlacements returns every legal (rotation, column) placement
// of the piece, each scored by simulating a hard drop against a copy
// of the board. Enumeration order is fixed: rotation ascending, then
// column ascending, so ties resolve deterministically. The live board
// is never mutated.
func EnumeratePlacements(b *game.Board, p game.Piece, w Weights) []Candidate {
	var candidates []Candidate

	for rot := 0; rot < game.RotationCount(p.Kind); rot++ {
		trial := game.Piece{Kind: p.Kind, Rot: rot}
		width := trial.Width()

		for col := 0; col+width <= b.Width(); col++ {
			piece := trial
			piece.X = col
			piece.Y = 0

			sim := b.Clone()
			if sim.Collides(piece) {
				continue
			}
			cleared := sim.HardDrop(&piece)

			candidates = append(candidates, Candidate{
				Rotation: rot,
				Column:   col,
				Score:    Evaluate(sim, cleared, w),
			})
		}
	}

	return candidates
}

// BestPlacement picks the highest-scoring candidate. Ties keep the
// first candidate in enumeration order, making the choice a pure
// function of (board, piece, weights). Returns false if no legal
// placement exists, which only happens alongside imminent game over.
func BestPlacement(b *game.Board, p game.Piece, w Weights) (Candidate, bool) {
	candidates := EnumeratePlacements(b, p, w)
	if len(candidates) == 0 {
		return Candidate{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, true
}
