package ai

import (
	"blockfall/internal/core"
	"blockfall/internal/game"
)

// Pilot drives a session toward planned placements. It plans once per
// spawned piece (detected via the spawn sequence number) and then
// emits at most one command per tick through the same input frame a
// human player uses. It holds no reference into live engine state.
type Pilot struct {
	weights Weights

	planned   bool
	planSeq   uint64
	targetRot int
	targetCol int
	feasible  bool
}

// NewPilot creates an autopilot with the given evaluator weights.
func NewPilot(w Weights) *Pilot {
	return &Pilot{weights: w}
}

// Reset clears any cached plan, forcing a replan on the next act.
func (p *Pilot) Reset() {
	p.planned = false
}

// Planner is the engine surface the pilot consumes.
type Planner interface {
	PlanningView() (game.PlanView, bool)
}

// Act inspects the session and contributes at most one command to the
// frame. It is a no-op while the session is paused, over, or between
// pieces. Commands beyond movement and drops are never emitted; pause,
// restart, and quit stay under the operator's control.
func (p *Pilot) Act(src Planner, frame *core.InputFrame) {
	view, ok := src.PlanningView()
	if !ok {
		return
	}

	if !p.planned || p.planSeq != view.Seq {
		p.plan(view)
	}
	if !p.feasible {
		// No legal placement exists. Let gravity finish the game.
		return
	}

	if action := p.nextAction(view.Piece); action != core.ActionNone {
		frame.Set(action)
	}
}

// plan picks the best placement for the current piece against a board
// copy and caches it for the rest of the piece's fall.
func (p *Pilot) plan(view game.PlanView) {
	p.planned = true
	p.planSeq = view.Seq

	best, ok := BestPlacement(view.Board, view.Piece, p.weights)
	p.feasible = ok
	if ok {
		p.targetRot = best.Rotation
		p.targetCol = best.Column
	}
}

// nextAction derives the single command that moves the piece toward
// the planned placement: rotate first, then shift, then hard drop.
// Deriving from the live piece position each tick means a rejected
// rotation or shift is simply retried or replanned around rather than
// desynchronizing the pilot.
func (p *Pilot) nextAction(piece game.Piece) core.Action {
	if piece.Rot != p.targetRot {
		count := game.RotationCount(piece.Kind)
		cw := (p.targetRot - piece.Rot + count) % count
		if cw <= count-cw {
			return core.ActionRotateRight
		}
		return core.ActionRotateLeft
	}
	if piece.X > p.targetCol {
		return core.ActionMoveLeft
	}
	if piece.X < p.targetCol {
		return core.ActionMoveRight
	}
	return core.ActionHardDrop
}
