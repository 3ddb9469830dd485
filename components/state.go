package components

import (
	"github.com/yohamta/donburi"

	"github.com/jobbie007/bossfight/config"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds spent in the current state
}

// Enter switches to a new state and resets the state timer. Entering the
// current state again is a no-op.
func (s *StateData) Enter(state config.StateID) {
	if s.CurrentState == state {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
