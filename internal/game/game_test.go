package game

import (
	"reflect"
	"testing"

	"blockfall/internal/config"
	"blockfall/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	SetConfig(config.Default())
	SetStartLevel(0)
	t.Cleanup(func() {
		SetConfig(config.Default())
		SetStartLevel(0)
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetSpawnsFirstPiece(t *testing.T) {
	g := newTestGame(t, 7)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("state = %s, want playing", snap.State)
	}
	if snap.Active == nil {
		t.Fatal("no active piece after reset")
	}
	if snap.PieceSeq != 1 {
		t.Errorf("piece seq = %d, want 1", snap.PieceSeq)
	}
	if len(snap.Next) != config.Default().Rules.PreviewCount {
		t.Errorf("preview length = %d, want %d", len(snap.Next), config.Default().Rules.PreviewCount)
	}
	if snap.Score != 0 || snap.Lines != 0 {
		t.Errorf("fresh session has score=%d lines=%d", snap.Score, snap.Lines)
	}
}

func TestDeterministicReplay(t *testing.T) {
	a := newTestGame(t, 99)
	b := newTestGame(t, 99)

	script := []core.Action{
		core.ActionMoveLeft, core.ActionNone, core.ActionRotateRight,
		core.ActionMoveRight, core.ActionSoftDrop, core.ActionNone,
		core.ActionHardDrop, core.ActionNone, core.ActionMoveLeft,
	}
	for i := 0; i < 300; i++ {
		f := frameWith(script[i%len(script)])
		a.Step(f)
		b.Step(f)
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if !reflect.DeepEqual(sa, sb) {
		t.Errorf("identical seeds and inputs diverged:\n%+v\n%+v", sa, sb)
	}
}

func TestGravityInterval(t *testing.T) {
	g := newTestGame(t, 1)
	base := g.cfg.Gravity.BaseTicks

	startY := g.Snapshot().Active.Y
	for i := 0; i < base-1; i++ {
		g.Step(frameWith())
	}
	if y := g.Snapshot().Active.Y; y != startY {
		t.Fatalf("piece moved after %d ticks: y=%d", base-1, y)
	}
	g.Step(frameWith())
	if y := g.Snapshot().Active.Y; y != startY+1 {
		t.Errorf("piece y = %d after %d ticks, want %d", y, base, startY+1)
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g := newTestGame(t, 3)
	g.Step(frameWith(core.ActionPause))

	before := g.Snapshot()
	if before.State != StatePaused {
		t.Fatalf("state = %s, want paused", before.State)
	}

	// Nothing but the tick counter may change while paused, including
	// under gravity-length waits and ignored game commands.
	for i := 0; i < 200; i++ {
		g.Step(frameWith(core.ActionMoveLeft, core.ActionSoftDrop))
	}
	after := g.Snapshot()
	before.Tick = after.Tick
	if !reflect.DeepEqual(before, after) {
		t.Errorf("paused session changed state:\n%+v\n%+v", before, after)
	}

	g.Step(frameWith(core.ActionPause))
	if g.Snapshot().State != StatePlaying {
		t.Error("unpause did not resume play")
	}
}

func TestHardDropRunsToGameOver(t *testing.T) {
	g := newTestGame(t, 5)

	over := false
	for i := 0; i < 500; i++ {
		g.Step(frameWith(core.ActionHardDrop))
		if g.State().GameOver {
			over = true
			break
		}
	}
	if !over {
		t.Fatal("spamming hard drops never ended the game")
	}

	// Game commands are dead after game over.
	snap := g.Snapshot()
	g.Step(frameWith(core.ActionHardDrop))
	g.Step(frameWith(core.ActionMoveLeft))
	after := g.Snapshot()
	snap.Tick = after.Tick
	if !reflect.DeepEqual(snap, after) {
		t.Error("game over session still reacts to game commands")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 5)

	// Restart is ignored while playing.
	g.Step(frameWith(core.ActionRestart))
	if g.Snapshot().Tick == 0 {
		t.Fatal("step did not advance")
	}

	for i := 0; i < 500 && !g.State().GameOver; i++ {
		g.Step(frameWith(core.ActionHardDrop))
	}
	if !g.State().GameOver {
		t.Fatal("never reached game over")
	}

	g.Step(frameWith(core.ActionRestart))
	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("state after restart = %s, want playing", snap.State)
	}
	if snap.Score != 0 || snap.Lines != 0 {
		t.Errorf("restart kept score=%d lines=%d", snap.Score, snap.Lines)
	}
	if snap.Active == nil {
		t.Fatal("no active piece after restart")
	}
	for y := 2; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if snap.Cells[y][x] != KindNone {
				t.Fatalf("restart left locked cell at (%d, %d)", x, y)
			}
		}
	}
}

func TestActivePieceNeverOverlaps(t *testing.T) {
	g := newTestGame(t, 11)

	script := []core.Action{
		core.ActionMoveLeft, core.ActionSoftDrop, core.ActionRotateRight,
		core.ActionMoveRight, core.ActionNone, core.ActionRotateLeft,
		core.ActionSoftDrop, core.ActionMoveLeft,
	}
	for i := 0; i < 2000; i++ {
		g.Step(frameWith(script[i%len(script)]))
		snap := g.Snapshot()
		if snap.Active == nil {
			continue
		}
		for _, c := range snap.Active.Cells() {
			if c.X < 0 || c.X >= snap.Width || c.Y < 0 || c.Y >= snap.Height {
				t.Fatalf("tick %d: active cell out of bounds: %v", i, c)
			}
			if snap.Cells[c.Y][c.X] != KindNone {
				t.Fatalf("tick %d: active piece overlaps locked cell at %v", i, c)
			}
		}
		if snap.State == StateGameOver {
			break
		}
	}
}

func TestOneCommandPerTick(t *testing.T) {
	g := newTestGame(t, 8)
	startX := g.Snapshot().Active.X

	// Hard drop outranks movement when both arrive in one frame.
	g.Step(frameWith(core.ActionMoveLeft, core.ActionHardDrop))
	snap := g.Snapshot()
	if snap.PieceSeq != 2 {
		t.Fatalf("hard drop did not lock: seq=%d", snap.PieceSeq)
	}
	// The locked cells must start at the spawn column; a shift before
	// the drop would have left column startX-1 occupied instead.
	leftmost := snap.Width
	for y := range snap.Cells {
		for x := 0; x < snap.Width; x++ {
			if snap.Cells[y][x] != KindNone && x < leftmost {
				leftmost = x
			}
		}
	}
	if leftmost != startX {
		t.Errorf("leftmost locked column = %d, want spawn column %d", leftmost, startX)
	}
}

func TestStartLevelOverride(t *testing.T) {
	SetConfig(config.Default())
	SetStartLevel(5)
	t.Cleanup(func() {
		SetConfig(config.Default())
		SetStartLevel(0)
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if g.Level() != 5 {
		t.Errorf("level = %d, want 5", g.Level())
	}
}
