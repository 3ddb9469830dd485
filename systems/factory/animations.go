package factory

import (
	"fmt"

	"github.com/jobbie007/bossfight/assets/animations"
	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
)

// GenerateAnimations creates an AnimationData component based on the
// character key (e.g., "player", "boss") which maps to a set of animation
// definitions in config. Sprite sheets themselves are resolved lazily by the
// renderer so this works headless too.
func GenerateAnimations(key string, initial cfg.StateID, frameWidth, frameHeight int) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("no animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CurrentState: initial,
		SheetDir:     key,
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
	}

	for state, def := range defs {
		animData.Animations[state] = animations.New(def.Frames, def.FrameDuration, def.Loops)
	}

	return animData
}
