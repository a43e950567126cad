package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionMoveLeft) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionMoveLeft)
	f.Set(ActionRotateRight)

	if !f.Has(ActionMoveLeft) {
		t.Error("frame should have MoveLeft after Set")
	}
	if !f.Has(ActionRotateRight) {
		t.Error("frame should have RotateRight after Set")
	}
	if f.Has(ActionHardDrop) {
		t.Error("frame should not have HardDrop")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSoftDrop)
	f.Set(ActionPause)

	f.Clear()

	if f.Has(ActionSoftDrop) || f.Has(ActionPause) {
		t.Error("frame should be empty after Clear")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionHardDrop) {
		t.Error("clone should keep actions after original is cleared")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionQuit) {
		t.Error("zero-value frame should have no actions")
	}

	// Set on a zero-value frame must allocate, not panic
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero-value frame should work")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionMoveLeft, "MoveLeft"},
		{ActionMoveRight, "MoveRight"},
		{ActionSoftDrop, "SoftDrop"},
		{ActionHardDrop, "HardDrop"},
		{ActionRotateLeft, "RotateLeft"},
		{ActionRotateRight, "RotateRight"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}
