package systems

import (
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
	"github.com/jobbie007/bossfight/tags"
)

func UpdatePlayer(ecs *ecs.ECS) {
	dt := DeltaSeconds(ecs)
	input := getOrCreateInput(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry, input, dt)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, input *components.InputData, dt float64) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	// Death is terminal: only the animation keeps running.
	if state.CurrentState == cfg.Die {
		advanceAnimation(animData, dt)
		return
	}

	tickPlayerTimers(player, dt)
	state.StateTimer += dt

	if !isInLockedState(state.CurrentState) {
		handlePlayerInput(input, player, physics, state)
	}

	updatePlayerState(player, physics, state, animData, dt)
	integratePlayerPhysics(ecs, player, physics, state, obj, dt)

	animData.Play(state.CurrentState)
	advanceAnimation(animData, dt)
}

func tickPlayerTimers(player *components.PlayerData, dt float64) {
	player.DashCooldown = tickDown(player.DashCooldown, dt)
	player.AttackCooldown = tickDown(player.AttackCooldown, dt)
	player.ParryCooldown = tickDown(player.ParryCooldown, dt)
	player.ParryWindow = tickDown(player.ParryWindow, dt)
	player.HurtTimer = tickDown(player.HurtTimer, dt)
}

func handlePlayerInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	moveLeft := GetAction(input, cfg.ActionMoveLeft)
	moveRight := GetAction(input, cfg.ActionMoveRight)
	jump := GetAction(input, cfg.ActionJump)
	attack := GetAction(input, cfg.ActionAttack)
	dash := GetAction(input, cfg.ActionDash)
	parry := GetAction(input, cfg.ActionParry)

	// Horizontal movement is velocity-based, no acceleration ramp.
	switch {
	case moveRight.Pressed && !moveLeft.Pressed:
		physics.SpeedX = cfg.Player.MoveSpeed
	case moveLeft.Pressed && !moveRight.Pressed:
		physics.SpeedX = -cfg.Player.MoveSpeed
	default:
		physics.SpeedX = 0
	}
	if absFloat(physics.SpeedX) > cfg.Player.FaceTurnThreshold {
		if physics.SpeedX > 0 {
			player.Direction.X = cfg.DirectionRight
		} else {
			player.Direction.X = cfg.DirectionLeft
		}
	}

	if jump.JustPressed && physics.OnGround {
		physics.SpeedY = -cfg.Player.JumpForce
		physics.OnGround = false
	}

	if attack.JustPressed && player.AttackCooldown <= 0 {
		state.Enter(rollAttackState(player.Rand))
		player.AttackCooldown = cfg.Player.AttackCooldown
		physics.SpeedX = 0
		return
	}

	if parry.JustPressed && player.ParryCooldown <= 0 {
		state.Enter(cfg.Parry)
		player.ParryCooldown = cfg.Player.ParryCooldown
		player.ParryWindow = cfg.Player.ParryWindow
		physics.SpeedX = 0
		return
	}

	if dash.JustPressed && player.CanDash && player.DashCooldown <= 0 {
		state.Enter(cfg.Dash)
		player.CanDash = false
		player.DashTimer = cfg.Player.DashDuration
		player.DashCooldown = cfg.Player.DashCooldown
		physics.SpeedX = player.Direction.X * cfg.Player.DashSpeed
	}
}

func updatePlayerState(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, animData *components.AnimationData, dt float64) {
	switch state.CurrentState {
	case cfg.Idle, cfg.Run, cfg.Jump:
		state.Enter(movementStateFor(physics.SpeedX, physics.OnGround))

	case cfg.Attack1, cfg.Attack2, cfg.Attack3, cfg.Parry:
		if animationDone(animData) {
			state.Enter(movementStateFor(physics.SpeedX, physics.OnGround))
		}

	case cfg.Dash:
		player.DashTimer = tickDown(player.DashTimer, dt)
		physics.SpeedX = player.Direction.X * cfg.Player.DashSpeed
		if player.DashTimer <= 0 {
			physics.SpeedX = 0
			state.Enter(movementStateFor(physics.SpeedX, physics.OnGround))
		}

	case cfg.Hurt:
		if player.HurtTimer <= 0 {
			state.Enter(movementStateFor(physics.SpeedX, physics.OnGround))
		}

	default:
		state.Enter(movementStateFor(physics.SpeedX, physics.OnGround))
	}
}

func integratePlayerPhysics(ecs *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object, dt float64) {
	// A dash holds its height; gravity resumes when it ends.
	if !physics.OnGround && state.CurrentState != cfg.Dash {
		physics.SpeedY += physics.Gravity * dt
	}

	obj.X += physics.SpeedX * dt
	obj.Y += physics.SpeedY * dt

	// Land on the ground plane. Landing re-arms the dash once its cooldown
	// has run out.
	if obj.Y+obj.H >= cfg.Arena.GroundY {
		obj.Y = cfg.Arena.GroundY - obj.H
		physics.SpeedY = 0
		physics.OnGround = true
		if player.DashCooldown <= 0 {
			player.CanDash = true
		}
	}

	// Left wall.
	if obj.X < cfg.Arena.LeftBoundary {
		obj.X = cfg.Arena.LeftBoundary
		if physics.SpeedX < 0 {
			physics.SpeedX = 0
		}
	}

	// The boss body is the right boundary; the player may press a third of
	// the way into it but never pass through.
	if bossEntry, ok := tags.Boss.First(ecs.World); ok {
		bossObj := components.Object.Get(bossEntry).Object
		limit := bossObj.X + bossObj.W/3 - obj.W
		if obj.X > limit {
			obj.X = limit
			if physics.SpeedX > 0 {
				physics.SpeedX = 0
			}
		}
	}

	obj.Update()
}

// rollAttackState picks one of the three swings uniformly.
func rollAttackState(rng *rand.Rand) cfg.StateID {
	switch rng.Intn(3) {
	case 1:
		return cfg.Attack2
	case 2:
		return cfg.Attack3
	default:
		return cfg.Attack1
	}
}

// movementStateFor picks the passive state from velocity and ground contact.
func movementStateFor(vx float64, onGround bool) cfg.StateID {
	switch {
	case !onGround:
		return cfg.Jump
	case absFloat(vx) > cfg.Player.RunSpeedThreshold:
		return cfg.Run
	default:
		return cfg.Idle
	}
}

func isInLockedState(state cfg.StateID) bool {
	return state.IsPlayerAttack() ||
		state == cfg.Parry || state == cfg.Dash ||
		state == cfg.Hurt || state == cfg.Die
}

func animationDone(animData *components.AnimationData) bool {
	if animData == nil {
		return true
	}
	anim := animData.Current()
	return anim == nil || anim.Done()
}

func advanceAnimation(animData *components.AnimationData, dt float64) {
	if animData == nil {
		return
	}
	if anim := animData.Current(); anim != nil {
		anim.Update(dt)
	}
}

func tickDown(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
