package factory

import (
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/archetypes"
	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
	"github.com/jobbie007/bossfight/tags"
)

// CreateBoss spawns the boss standing on the ground at the given x, bound to
// its movement corridor and to the player it targets.
func CreateBoss(ecs *ecs.ECS, x, minX, maxX float64, target *donburi.Entry, rng *rand.Rand) *donburi.Entry {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	boss := archetypes.Boss.Spawn(ecs)

	obj := resolv.NewObject(x, cfg.Arena.GroundY-cfg.Boss.HitboxHeight+cfg.Boss.HitboxYOffset,
		cfg.Boss.HitboxWidth, cfg.Boss.HitboxHeight)
	obj.AddTags(tags.ResolvBoss)
	obj.Data = boss
	components.Object.SetValue(boss, components.ObjectData{Object: obj})

	components.Boss.SetValue(boss, components.BossData{
		Target:      target,
		MinX:        minX,
		MaxX:        maxX,
		ActionDelay: cfg.Boss.ActionDelayBase,
		Rand:        rng,
	})
	components.State.SetValue(boss, components.StateData{
		CurrentState:  cfg.BossIdle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(boss, components.PhysicsData{
		OnGround: true,
	})
	components.Health.SetValue(boss, components.HealthData{
		Current: cfg.Boss.Health,
		Max:     cfg.Boss.Health,
	})

	animData := GenerateAnimations("boss", cfg.BossIdle, cfg.Boss.FrameWidth, cfg.Boss.FrameHeight)
	components.Animation.Set(boss, animData)

	components.Flash.SetValue(boss, components.FlashData{
		Interval: cfg.Boss.FlashInterval,
		R:        1, G: 0.4, B: 0.4,
	})

	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}

	return boss
}
