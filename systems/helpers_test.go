package systems

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/jobbie007/bossfight/config"
	"github.com/jobbie007/bossfight/systems/factory"
)

// newFightWorld builds a headless world with the player standing just left of
// the boss. Both share one seeded random source so tests are deterministic.
func newFightWorld(seed int64) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)

	rng := rand.New(rand.NewSource(seed))
	player := factory.CreatePlayer(e, 700, rng)
	boss := factory.CreateBoss(e, 790, cfg.Arena.BossMinX, cfg.Arena.BossMaxX, player, rng)
	return e, player, boss
}

// setDelta fixes the frame delta instead of running the wall clock.
func setDelta(e *ecs.ECS, dt float64) {
	GetOrCreateClock(e).DeltaSeconds = dt
}

func pressJust(e *ecs.ECS, id cfg.ActionID) {
	in := getOrCreateInput(e)
	in.Current[id] = true
	in.Previous[id] = false
}

func holdAction(e *ecs.ECS, id cfg.ActionID) {
	in := getOrCreateInput(e)
	in.Current[id] = true
	in.Previous[id] = true
}

func releaseAll(e *ecs.ECS) {
	in := getOrCreateInput(e)
	in.Current = [cfg.ActionCount]bool{}
	in.Previous = [cfg.ActionCount]bool{}
}
