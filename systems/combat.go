package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
	"github.com/jobbie007/bossfight/tags"
)

// UpdateCombat resolves hits between the player and the boss, drains queued
// damage events and keeps health values within their valid range.
func UpdateCombat(ecs *ecs.ECS) {
	resolvePlayerHits(ecs)
	resolveBossHits(ecs)
	drainDamageEvents(ecs)
	handleDebugDamageKeys(ecs)
	clampHealthAndHandleDeath(ecs)
}

// resolvePlayerHits connects a player swing when the boss body is within
// attack range of the player's facing edge and the boss is vulnerable.
// There is no per-swing latch: the boss's post-hit flash window is the rate
// limit on repeated damage.
func resolvePlayerHits(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	if !state.CurrentState.IsPlayerAttack() {
		return
	}

	obj := components.Object.Get(playerEntry).Object
	collision := obj.Check(player.Direction.X*cfg.Player.AttackRange, 0, tags.ResolvBoss)
	if collision == nil {
		return
	}

	for _, hit := range collision.Objects {
		bossEntry, ok := hit.Data.(*donburi.Entry)
		if !ok || !bossEntry.HasComponent(components.Boss) {
			continue
		}

		bossState := components.State.Get(bossEntry)
		flash := components.Flash.Get(bossEntry)
		if BossInvulnerable(bossState.CurrentState, flash.Timer) {
			continue
		}

		donburi.Add(bossEntry, components.DamageEvent, &components.DamageEventData{
			Amount: cfg.Combat.PlayerAttackDamage,
		})
		return
	}
}

// resolveBossHits deals boss attack damage while the attack is inside its
// active frame window. The boss body widens toward the player during the
// swing; overlap with the widened box is the hit test.
func resolveBossHits(ecs *ecs.ECS) {
	bossEntry, ok := tags.Boss.First(ecs.World)
	if !ok {
		return
	}

	boss := components.Boss.Get(bossEntry)
	if !boss.AttackActive || boss.AttackLanded {
		return
	}

	obj := components.Object.Get(bossEntry).Object

	// Reach extends toward the player.
	reach := cfg.Boss.AttackHitboxWidth - cfg.Boss.HitboxWidth
	dx := -reach
	if boss.Target != nil && boss.Target.Valid() {
		targetObj := components.Object.Get(boss.Target).Object
		if targetObj.X+targetObj.W/2 > obj.X+obj.W/2 {
			dx = reach
		}
	}

	collision := obj.Check(dx, 0, tags.ResolvPlayer)
	if collision == nil {
		return
	}

	for _, hit := range collision.Objects {
		playerEntry, ok := hit.Data.(*donburi.Entry)
		if !ok || !playerEntry.HasComponent(components.Player) {
			continue
		}

		player := components.Player.Get(playerEntry)
		playerState := components.State.Get(playerEntry)
		if playerState.CurrentState == cfg.Die {
			continue
		}
		if player.ParryWindow > 0 || playerState.CurrentState == cfg.Dash {
			// Parried or dashed through: the swing is spent without damage.
			boss.AttackLanded = true
			return
		}
		if player.HurtTimer > 0 {
			continue
		}

		knockDir := cfg.DirectionLeft
		playerObj := components.Object.Get(playerEntry).Object
		if playerObj.X+playerObj.W/2 > obj.X+obj.W/2 {
			knockDir = cfg.DirectionRight
		}

		boss.AttackLanded = true
		donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{
			Amount:     cfg.Combat.BossContactDamage,
			KnockbackX: knockDir * cfg.Player.KnockbackX,
			KnockbackY: cfg.Player.KnockbackY,
		})
		return
	}
}

// drainDamageEvents applies queued damage to whoever carries the event.
func drainDamageEvents(ecs *ecs.ECS) {
	for e := range components.DamageEvent.Iter(ecs.World) {
		dmg := components.DamageEvent.Get(e)

		// The dead take no further damage.
		state := components.State.Get(e)
		if state.CurrentState == cfg.Die || state.CurrentState == cfg.BossDie {
			donburi.Remove[components.DamageEventData](e, components.DamageEvent)
			continue
		}

		hp := components.Health.Get(e)
		hp.Current -= dmg.Amount

		if e.HasComponent(components.Player) {
			player := components.Player.Get(e)
			physics := components.Physics.Get(e)

			player.HurtTimer = cfg.Player.HurtDuration
			state.Enter(cfg.Hurt)
			if dmg.KnockbackX != 0 || dmg.KnockbackY != 0 {
				physics.SpeedX = dmg.KnockbackX
				physics.SpeedY = dmg.KnockbackY
				physics.OnGround = false
			}
			if e.HasComponent(components.Flash) {
				flash := components.Flash.Get(e)
				flash.Timer = cfg.Player.HurtDuration
			}
		}

		if e.HasComponent(components.Boss) {
			if e.HasComponent(components.Flash) {
				flash := components.Flash.Get(e)
				flash.Timer = cfg.Boss.FlashDuration
			}
		}

		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

// handleDebugDamageKeys wires the manual damage and kill test keys.
func handleDebugDamageKeys(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			donburi.Add(e, components.DamageEvent, &components.DamageEventData{Amount: 10})
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			hp := components.Health.Get(e)
			hp.Current = 0
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
			donburi.Add(e, components.DamageEvent, &components.DamageEventData{Amount: 100})
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
			hp := components.Health.Get(e)
			hp.Current = 0
		})
	}
}

// clampHealthAndHandleDeath keeps health in 0..Max and starts the death
// sequence when a combatant reaches zero.
func clampHealthAndHandleDeath(ecs *ecs.ECS) {
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Current > 0 {
			continue
		}

		if e.HasComponent(components.Player) {
			state := components.State.Get(e)
			if state.CurrentState != cfg.Die {
				physics := components.Physics.Get(e)
				physics.SpeedX = 0
				physics.SpeedY = 0
				state.Enter(cfg.Die)
				animData := components.Animation.Get(e)
				animData.Play(cfg.Die)
			}
		}

		if e.HasComponent(components.Boss) {
			state := components.State.Get(e)
			if state.CurrentState != cfg.BossDie {
				boss := components.Boss.Get(e)
				boss.AttackActive = false
				state.Enter(cfg.BossDie)
				animData := components.Animation.Get(e)
				animData.Play(cfg.BossDie)
			}
		}
	}
}
