package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/components"
)

// UpdateClock measures the frame delta. Must run before every system that
// integrates over time.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Tick(time.Now())
}

// DeltaSeconds returns the clamped delta for the current frame.
func DeltaSeconds(ecs *ecs.ECS) float64 {
	return GetOrCreateClock(ecs).DeltaSeconds
}

// ResetClock clears the clock reference time so the next frame reports a
// zero delta. Called when gameplay resumes after a pause or scene change.
func ResetClock(ecs *ecs.ECS) {
	GetOrCreateClock(ecs).Reset()
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
