package app

import (
	"github.com/itsjaydesu/jayfolio-sub000/effects"
	"github.com/itsjaydesu/jayfolio-sub000/scene"
)

// Action is a host-level command shared by every input source.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionEffect
	ActionClear
	ActionRandomize
	ActionCalm
	ActionQuit
)

// Command is one decoded key binding.
type Command struct {
	Action  Action
	Effect  effects.Kind
	Combine bool
}

// effectForDigit maps 1..N to the effects in menu order.
func effectForDigit(d int) (effects.Kind, bool) {
	kinds := effects.Kinds()
	if d < 1 || d > len(kinds) {
		return effects.None, false
	}
	return kinds[d-1], true
}

// digitCommand builds the command for a number key. Zero stops everything.
func digitCommand(d int, shift bool) Command {
	if d == 0 {
		return Command{Action: ActionClear}
	}
	k, ok := effectForDigit(d)
	if !ok {
		return Command{}
	}
	return Command{Action: ActionEffect, Effect: k, Combine: shift}
}

// Dispatch applies c to the simulation. It returns false on quit.
func (h *Host) Dispatch(c Command) bool {
	switch c.Action {
	case ActionQuit:
		return false
	case ActionPause:
		h.sim.SetPaused(!h.sim.Paused())
	case ActionEffect:
		h.sim.TriggerEffect(c.Effect.String(), c.Combine)
	case ActionClear:
		h.sim.ClearEffects()
	case ActionRandomize:
		h.sim.Randomize()
	case ActionCalm:
		h.sim.ApplyFieldEffect(scene.PresetCalmReset)
	}
	return true
}
