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

// CreatePlayer spawns the player with its collision box standing on the
// ground at the given x. rng may be seeded for deterministic tests; nil gets
// a fresh source.
func CreatePlayer(ecs *ecs.ECS, x float64, rng *rand.Rand) *donburi.Entry {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, cfg.Arena.GroundY-cfg.Player.CollisionHeight,
		cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
		CanDash:   true,
		Rand:      rng,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		OnGround: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	animData := GenerateAnimations("player", cfg.Idle, cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	components.Animation.Set(player, animData)

	// Flash stays attached permanently to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{
		Interval: cfg.Player.HurtFlashInterval,
		R:        1, G: 1, B: 1,
	})

	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}

	return player
}

// GetSpace returns the collision space, or nil when none was created.
func GetSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
