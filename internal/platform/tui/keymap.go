package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"blockfall/internal/config"
	"blockfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions using
// the configured bindings. This centralizes key handling and makes it
// testable without a terminal.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper builds a key mapper from the configured bindings.
// Later entries never override earlier ones, so a key accidentally
// bound twice keeps its first meaning.
func NewKeyMapper(keys config.KeysConfig) *KeyMapper {
	km := &KeyMapper{bindings: make(map[string]core.Action)}

	bind := func(action core.Action, names []string) {
		for _, name := range names {
			if _, taken := km.bindings[name]; !taken {
				km.bindings[name] = action
			}
		}
	}

	bind(core.ActionQuit, keys.Quit)
	bind(core.ActionMoveLeft, keys.MoveLeft)
	bind(core.ActionMoveRight, keys.MoveRight)
	bind(core.ActionSoftDrop, keys.SoftDrop)
	bind(core.ActionHardDrop, keys.HardDrop)
	bind(core.ActionRotateLeft, keys.RotateLeft)
	bind(core.ActionRotateRight, keys.RotateRight)
	bind(core.ActionPause, keys.Pause)
	bind(core.ActionRestart, keys.Restart)

	return km
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	a, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
