package components

import (
	"log"

	"github.com/yohamta/donburi"

	"github.com/jobbie007/bossfight/assets/animations"
	"github.com/jobbie007/bossfight/config"
)

// AnimationData holds every clip a character owns plus which one is playing.
// Sheets are looked up lazily through the asset registry; SheetDir names the
// character's directory under the sprite root.
type AnimationData struct {
	Animations   map[config.StateID]*animations.Animation
	CurrentState config.StateID
	SheetDir     string
	FrameWidth   int
	FrameHeight  int

	warned map[config.StateID]bool
}

// Play switches playback to the clip for the given state. Re-requesting the
// current clip is a no-op while it loops or is still running; a finished
// non-looping clip restarts so repeated attacks replay from frame zero.
// States with no configured clip are logged once and otherwise ignored.
func (a *AnimationData) Play(state config.StateID) {
	anim, ok := a.Animations[state]
	if !ok {
		if !a.warned[state] {
			if a.warned == nil {
				a.warned = make(map[config.StateID]bool)
			}
			a.warned[state] = true
			log.Printf("Warning: no animation configured for state %s", state)
		}
		return
	}

	if a.CurrentState == state {
		if !anim.Loops && anim.Done() {
			anim.Restart()
		}
		return
	}

	a.CurrentState = state
	anim.Restart()
}

// Current returns the playing clip, or nil when the current state has none.
func (a *AnimationData) Current() *animations.Animation {
	return a.Animations[a.CurrentState]
}

var Animation = donburi.NewComponentType[AnimationData]()
