package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
)

// UpdateBoss drives the boss decision loop: wait, then either reposition or
// attack, with the ultimate taking priority whenever it is off cooldown.
func UpdateBoss(ecs *ecs.ECS) {
	dt := DeltaSeconds(ecs)

	components.Boss.Each(ecs.World, func(bossEntry *donburi.Entry) {
		updateSingleBoss(bossEntry, dt)
	})
}

func updateSingleBoss(bossEntry *donburi.Entry, dt float64) {
	boss := components.Boss.Get(bossEntry)
	state := components.State.Get(bossEntry)
	animData := components.Animation.Get(bossEntry)
	obj := components.Object.Get(bossEntry).Object

	if state.CurrentState == cfg.BossDie {
		advanceAnimation(animData, dt)
		return
	}

	tickBossCooldowns(boss, dt)
	state.StateTimer += dt

	switch state.CurrentState {
	case cfg.BossIdle:
		boss.ActionDelay = tickDown(boss.ActionDelay, dt)
		if boss.ActionDelay <= 0 {
			decideNextAction(boss, state, obj)
		}

	case cfg.BossMove:
		boss.MoveTimer = tickDown(boss.MoveTimer, dt)
		obj.X += boss.MoveDir * cfg.Boss.MoveSpeed * dt
		if obj.X < boss.MinX {
			obj.X = boss.MinX
			boss.MoveTimer = 0
		}
		if obj.X+obj.W > boss.MaxX {
			obj.X = boss.MaxX - obj.W
			boss.MoveTimer = 0
		}
		if boss.MoveTimer <= 0 {
			returnToIdle(boss, state)
		}

	case cfg.BossAttack1, cfg.BossAttack2, cfg.BossUltimate:
		if animationDone(animData) {
			boss.AttackActive = false
			returnToIdle(boss, state)
		}
	}

	obj.Update()

	animData.Play(state.CurrentState)
	advanceAnimation(animData, dt)
	updateAttackWindow(boss, state, animData)
}

func tickBossCooldowns(boss *components.BossData, dt float64) {
	boss.Attack1Cooldown = tickDown(boss.Attack1Cooldown, dt)
	boss.Attack2Cooldown = tickDown(boss.Attack2Cooldown, dt)
	boss.UltimateCooldown = tickDown(boss.UltimateCooldown, dt)
}

// decideNextAction picks what the boss does once its action delay expires.
// The ultimate always wins when ready; otherwise one of three branches is
// drawn uniformly, and a branch whose gate fails (cooldown running, no room
// to move) just re-arms the delay.
func decideNextAction(boss *components.BossData, state *components.StateData, obj *resolv.Object) {
	if boss.UltimateCooldown <= 0 && boss.Target != nil && boss.Target.Valid() {
		startBossAttack(boss, state, cfg.BossUltimate)
		boss.UltimateCooldown = cfg.Boss.UltimateCooldown
		return
	}

	switch boss.Rand.Intn(3) {
	case 0:
		if boss.Attack1Cooldown <= 0 {
			startBossAttack(boss, state, cfg.BossAttack1)
			boss.Attack1Cooldown = cfg.Boss.Attack1Cooldown
			return
		}
	case 1:
		if boss.Attack2Cooldown <= 0 {
			startBossAttack(boss, state, cfg.BossAttack2)
			boss.Attack2Cooldown = cfg.Boss.Attack2Cooldown
			return
		}
	case 2:
		dir := 1.0
		if boss.Rand.Intn(2) == 0 {
			dir = -1.0
		}
		if hasMoveRoom(boss, obj, dir) {
			startBossMove(boss, state, dir)
			return
		}
	}

	boss.ActionDelay = rollActionDelay(boss)
}

func startBossAttack(boss *components.BossData, state *components.StateData, attack cfg.StateID) {
	state.Enter(attack)
	boss.AttackActive = false
	boss.AttackLanded = false
}

// startBossMove commits to a reposition with a random duration.
func startBossMove(boss *components.BossData, state *components.StateData, dir float64) {
	boss.MoveDir = dir
	span := cfg.Boss.MoveDurationMax - cfg.Boss.MoveDurationMin
	boss.MoveTimer = cfg.Boss.MoveDurationMin + boss.Rand.Float64()*span
	state.Enter(cfg.BossMove)
}

// hasMoveRoom reports whether the corridor leaves at least the margin of
// room in the given direction.
func hasMoveRoom(boss *components.BossData, obj *resolv.Object, dir float64) bool {
	if dir < 0 {
		return obj.X-boss.MinX >= cfg.Boss.MoveMargin
	}
	return boss.MaxX-(obj.X+obj.W) >= cfg.Boss.MoveMargin
}

func returnToIdle(boss *components.BossData, state *components.StateData) {
	state.Enter(cfg.BossIdle)
	boss.ActionDelay = rollActionDelay(boss)
}

// rollActionDelay scales the base delay by a random factor.
func rollActionDelay(boss *components.BossData) float64 {
	span := cfg.Boss.ActionDelayMax - cfg.Boss.ActionDelayMin
	return cfg.Boss.ActionDelayBase * (cfg.Boss.ActionDelayMin + boss.Rand.Float64()*span)
}

// updateAttackWindow recomputes whether the current attack frame can deal
// damage this frame.
func updateAttackWindow(boss *components.BossData, state *components.StateData, animData *components.AnimationData) {
	window, ok := cfg.BossActiveFrames[state.CurrentState]
	if !ok {
		boss.AttackActive = false
		return
	}
	anim := animData.Current()
	if anim == nil {
		boss.AttackActive = false
		return
	}
	boss.AttackActive = window.Contains(anim.Frame())
}

// BossInvulnerable reports whether player hits are ignored this frame. The
// boss only takes damage while standing in its idle stance and not already
// flashing from a recent hit.
func BossInvulnerable(state cfg.StateID, flashTimer float64) bool {
	return state.IsBossAttack() || state == cfg.BossMove || flashTimer > 0
}
