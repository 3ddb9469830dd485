package animations

// Animation advances through the frames of a horizontal strip sheet on a
// seconds-based clock. Looping clips wrap; non-looping clips clamp to the
// last frame and report done.
type Animation struct {
	FrameCount    int
	FrameDuration float64 // seconds per frame
	Loops         bool

	elapsed float64
	frame   int
	done    bool
}

// frameEpsilon absorbs the float error left behind when the remainder of a
// partial frame is carried between updates, so splitting one delta across
// several calls lands on the same frame as a single call.
const frameEpsilon = 1e-9

func New(frameCount int, frameDuration float64, loops bool) *Animation {
	return &Animation{
		FrameCount:    frameCount,
		FrameDuration: frameDuration,
		Loops:         loops,
	}
}

// Update advances the clip by dt seconds. Large deltas skip frames rather
// than slowing playback down. Finished non-looping clips ignore updates.
func (a *Animation) Update(dt float64) {
	if a.done || a.FrameCount <= 0 || a.FrameDuration <= 0 {
		return
	}

	a.elapsed += dt
	steps := int((a.elapsed + frameEpsilon) / a.FrameDuration)
	if steps == 0 {
		return
	}
	a.elapsed -= float64(steps) * a.FrameDuration
	if a.elapsed < 0 {
		a.elapsed = 0
	}

	a.frame += steps
	if a.Loops {
		a.frame %= a.FrameCount
		return
	}
	if a.frame >= a.FrameCount-1 {
		a.frame = a.FrameCount - 1
		a.done = true
		a.elapsed = 0
	}
}

// Frame returns the current frame index into the sheet.
func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether a non-looping clip has reached its last frame.
// Looping clips are never done.
func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
	a.done = false
}
