package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"blockfall/internal/config"
	"blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperDefaults(t *testing.T) {
	km := NewKeyMapper(config.Default().Keys)

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('a'), core.ActionMoveLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{runeKey('d'), core.ActionMoveRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{runeKey('s'), core.ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionHardDrop},
		{runeKey('z'), core.ActionRotateLeft},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateRight},
		{runeKey('x'), core.ActionRotateRight},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{runeKey('e'), core.ActionNone},
	}
	for _, tt := range tests {
		got, _ := km.MapKey(tt.msg)
		if got != tt.want {
			t.Errorf("MapKey(%q) = %s, want %s", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyMapperQuit(t *testing.T) {
	km := NewKeyMapper(config.Default().Keys)

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		if _, isQuit := km.MapKey(msg); !isQuit {
			t.Errorf("MapKey(%q): quit not detected", msg.String())
		}
	}
	if _, isQuit := km.MapKey(runeKey('p')); isQuit {
		t.Error("pause reported as quit")
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(config.Default().Keys)
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('a'), &frame); quit {
		t.Fatal("move reported as quit")
	}
	if !frame.Has(core.ActionMoveLeft) {
		t.Error("frame missing the mapped action")
	}

	// Quit is reported, never injected into the frame.
	frame.Clear()
	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Fatal("quit not reported")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit leaked into the input frame")
	}
}

func TestKeyMapperFirstBindingWins(t *testing.T) {
	keys := config.Default().Keys
	// Deliberately bind a move key to a second action too.
	keys.SoftDrop = append(keys.SoftDrop, keys.MoveLeft[0])

	km := NewKeyMapper(keys)
	got, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys.MoveLeft[0])})
	if got != core.ActionMoveLeft {
		t.Errorf("duplicate binding overrode first meaning: got %s", got)
	}
}
