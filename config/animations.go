package config

// AnimationDef describes one animation clip on a horizontal strip sheet.
type AnimationDef struct {
	Frames        int
	FrameDuration float64 // seconds per frame
	Loops         bool
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {Frames: 8, FrameDuration: 0.2, Loops: true},
		Run:     {Frames: 8, FrameDuration: 0.1, Loops: true},
		Jump:    {Frames: 11, FrameDuration: 0.08},
		Attack1: {Frames: 6, FrameDuration: 0.06},
		Attack2: {Frames: 5, FrameDuration: 0.09},
		Attack3: {Frames: 16, FrameDuration: 0.026},
		Parry:   {Frames: 6, FrameDuration: 0.08},
		Dash:    {Frames: 5, FrameDuration: 0.036},
		Hurt:    {Frames: 2, FrameDuration: 0.4},
		Die:     {Frames: 7, FrameDuration: 0.2},
	},
	"boss": {
		BossIdle:     {Frames: 8, FrameDuration: 0.15, Loops: true},
		BossMove:     {Frames: 1, FrameDuration: 0.6, Loops: true},
		BossAttack1:  {Frames: 8, FrameDuration: 0.12},
		BossAttack2:  {Frames: 8, FrameDuration: 0.12},
		BossUltimate: {Frames: 2, FrameDuration: 0.5},
		BossDie:      {Frames: 9, FrameDuration: 0.18},
	},
}

// FrameWindow is an inclusive frame index range.
type FrameWindow struct {
	First int
	Last  int
}

// BossActiveFrames defines the frame windows during which a boss attack
// can deal contact damage.
var BossActiveFrames = map[StateID]FrameWindow{
	BossAttack1:  {First: 3, Last: 6},
	BossAttack2:  {First: 4, Last: 7},
	BossUltimate: {First: 0, Last: 1},
}

// Contains reports whether the frame index falls inside the window.
func (w FrameWindow) Contains(frame int) bool {
	return frame >= w.First && frame <= w.Last
}
