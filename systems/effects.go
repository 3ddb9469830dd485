package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/components"
)

// UpdateEffects ticks down hit-flash timers.
func UpdateEffects(ecs *ecs.ECS) {
	dt := DeltaSeconds(ecs)

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		flash.Timer = tickDown(flash.Timer, dt)
	})
}
