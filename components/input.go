package components

import (
	"github.com/yohamta/donburi"

	"github.com/pixeldrift/tilerunner/config"
)

// InputData is the polled action state, double-buffered so systems can
// detect presses on the rising edge.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

// Pressed reports whether the action is held this tick.
func (i *InputData) Pressed(action config.ActionID) bool {
	return i.Current[action]
}

// JustPressed reports whether the action went down this tick.
func (i *InputData) JustPressed(action config.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
