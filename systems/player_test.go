package systems

import (
	"math/rand"
	"testing"

	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
)

func TestMovementStateFor(t *testing.T) {
	tests := []struct {
		name     string
		vx       float64
		onGround bool
		want     cfg.StateID
	}{
		{"still on ground", 0, true, cfg.Idle},
		{"slow drift stays idle", cfg.Player.RunSpeedThreshold, true, cfg.Idle},
		{"running right", cfg.Player.MoveSpeed, true, cfg.Run},
		{"running left", -cfg.Player.MoveSpeed, true, cfg.Run},
		{"airborne", 0, false, cfg.Jump},
		{"airborne while moving", cfg.Player.MoveSpeed, false, cfg.Jump},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := movementStateFor(tt.vx, tt.onGround); got != tt.want {
				t.Errorf("movementStateFor(%v, %v) = %s, want %s", tt.vx, tt.onGround, got, tt.want)
			}
		})
	}
}

func TestRollAttackStateCoversAllSwings(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[cfg.StateID]bool{}

	for i := 0; i < 200; i++ {
		s := rollAttackState(rng)
		if !s.IsPlayerAttack() {
			t.Fatalf("rolled non-attack state %s", s)
		}
		seen[s] = true
	}

	for _, s := range []cfg.StateID{cfg.Attack1, cfg.Attack2, cfg.Attack3} {
		if !seen[s] {
			t.Errorf("%s never rolled in 200 draws", s)
		}
	}
}

func TestPlayerRunsRight(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.1)
	holdAction(e, cfg.ActionMoveRight)

	obj := components.Object.Get(playerEntry).Object
	startX := obj.X
	UpdatePlayer(e)

	if obj.X <= startX {
		t.Fatalf("player x = %v, want > %v", obj.X, startX)
	}
	state := components.State.Get(playerEntry)
	if state.CurrentState != cfg.Run {
		t.Fatalf("state = %s, want run", state.CurrentState)
	}
}

func TestPlayerFacingFlips(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.016)
	holdAction(e, cfg.ActionMoveLeft)

	UpdatePlayer(e)

	player := components.Player.Get(playerEntry)
	if player.Direction.X != cfg.DirectionLeft {
		t.Fatalf("direction = %v, want left", player.Direction.X)
	}
}

func TestPlayerJumpRequiresGround(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.016)
	physics := components.Physics.Get(playerEntry)

	pressJust(e, cfg.ActionJump)
	UpdatePlayer(e)
	if physics.OnGround {
		t.Fatal("player still grounded after jumping")
	}
	state := components.State.Get(playerEntry)
	if state.CurrentState != cfg.Jump {
		t.Fatalf("state = %s, want jump", state.CurrentState)
	}

	// A second press mid-air does nothing.
	upwardSpeed := physics.SpeedY
	pressJust(e, cfg.ActionJump)
	UpdatePlayer(e)
	if physics.SpeedY < upwardSpeed {
		t.Fatalf("speed y = %v, air jump re-applied the impulse", physics.SpeedY)
	}
}

func TestPlayerAttackStartsSwing(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.016)
	pressJust(e, cfg.ActionAttack)

	UpdatePlayer(e)

	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	if !state.CurrentState.IsPlayerAttack() {
		t.Fatalf("state = %s, want one of the attacks", state.CurrentState)
	}
	if player.AttackCooldown <= 0 {
		t.Fatal("attack cooldown not armed")
	}
	physics := components.Physics.Get(playerEntry)
	if physics.SpeedX != 0 {
		t.Fatalf("speed x = %v, attacking must stop movement", physics.SpeedX)
	}
}

func TestPlayerAttackBlockedByCooldown(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.016)

	player := components.Player.Get(playerEntry)
	player.AttackCooldown = cfg.Player.AttackCooldown

	pressJust(e, cfg.ActionAttack)
	UpdatePlayer(e)

	state := components.State.Get(playerEntry)
	if state.CurrentState.IsPlayerAttack() {
		t.Fatalf("state = %s, attack started despite cooldown", state.CurrentState)
	}
}

func TestPlayerDashBlockedByCooldown(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.016)

	player := components.Player.Get(playerEntry)
	player.DashCooldown = cfg.Player.DashCooldown

	pressJust(e, cfg.ActionDash)
	UpdatePlayer(e)

	state := components.State.Get(playerEntry)
	if state.CurrentState == cfg.Dash {
		t.Fatal("dash started despite cooldown")
	}
}

func TestPlayerDashRunsItsCourse(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.016)
	pressJust(e, cfg.ActionDash)

	UpdatePlayer(e)

	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	if state.CurrentState != cfg.Dash {
		t.Fatalf("state = %s, want dash", state.CurrentState)
	}
	if physics.SpeedX != player.Direction.X*cfg.Player.DashSpeed {
		t.Fatalf("speed x = %v, want dash speed", physics.SpeedX)
	}

	// Let the dash timer expire.
	releaseAll(e)
	setDelta(e, cfg.Player.DashDuration+0.01)
	UpdatePlayer(e)

	if state.CurrentState == cfg.Dash {
		t.Fatal("dash did not end after its duration")
	}
	if physics.SpeedX != 0 {
		t.Fatalf("speed x = %v after dash, want 0", physics.SpeedX)
	}
}

func TestPlayerDashReArmsOnLandingAfterCooldown(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.016)
	pressJust(e, cfg.ActionDash)
	UpdatePlayer(e)

	player := components.Player.Get(playerEntry)
	if player.CanDash {
		t.Fatal("dash not spent on use")
	}

	// Run the dash out; the cooldown is still ticking so no re-arm yet.
	releaseAll(e)
	setDelta(e, cfg.Player.DashDuration+0.01)
	UpdatePlayer(e)
	pressJust(e, cfg.ActionDash)
	UpdatePlayer(e)

	state := components.State.Get(playerEntry)
	if state.CurrentState == cfg.Dash {
		t.Fatal("dash restarted before its cooldown elapsed")
	}

	// Past the cooldown the grounded player re-arms and can dash again.
	releaseAll(e)
	setDelta(e, cfg.Player.DashCooldown)
	UpdatePlayer(e)
	if !player.CanDash {
		t.Fatal("dash not re-armed on the ground after the cooldown")
	}

	setDelta(e, 0.016)
	pressJust(e, cfg.ActionDash)
	UpdatePlayer(e)
	if state.CurrentState != cfg.Dash {
		t.Fatalf("state = %s, want a second dash", state.CurrentState)
	}
}

func TestPlayerInputIgnoredWhileAttacking(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.016)

	state := components.State.Get(playerEntry)
	state.Enter(cfg.Attack1)
	components.Animation.Get(playerEntry).Play(cfg.Attack1)

	holdAction(e, cfg.ActionMoveRight)
	UpdatePlayer(e)

	physics := components.Physics.Get(playerEntry)
	if physics.SpeedX != 0 {
		t.Fatalf("speed x = %v, movement leaked into an attack", physics.SpeedX)
	}
}

func TestPlayerHurtRecoversToIdle(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.1)

	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	state.Enter(cfg.Hurt)
	player.HurtTimer = 0.05

	UpdatePlayer(e)

	if state.CurrentState != cfg.Idle {
		t.Fatalf("state = %s, want idle after hurt expires", state.CurrentState)
	}
}

func TestPlayerDeathIsTerminal(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.1)

	state := components.State.Get(playerEntry)
	state.Enter(cfg.Die)
	components.Animation.Get(playerEntry).Play(cfg.Die)

	obj := components.Object.Get(playerEntry).Object
	startX := obj.X

	holdAction(e, cfg.ActionMoveRight)
	UpdatePlayer(e)
	pressJust(e, cfg.ActionJump)
	UpdatePlayer(e)

	if state.CurrentState != cfg.Die {
		t.Fatalf("state = %s, left the death state", state.CurrentState)
	}
	if obj.X != startX {
		t.Fatalf("player moved from %v to %v while dead", startX, obj.X)
	}
}

func TestPlayerClampedAtLeftWall(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)
	setDelta(e, 0.1)

	obj := components.Object.Get(playerEntry).Object
	obj.X = cfg.Arena.LeftBoundary + 5
	obj.Update()

	holdAction(e, cfg.ActionMoveLeft)
	UpdatePlayer(e)

	if obj.X != cfg.Arena.LeftBoundary {
		t.Fatalf("player x = %v, want clamped at %v", obj.X, cfg.Arena.LeftBoundary)
	}
}

func TestPlayerCannotPassThroughBoss(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)
	setDelta(e, 0.1)

	playerObj := components.Object.Get(playerEntry).Object
	bossObj := components.Object.Get(bossEntry).Object
	playerObj.X = bossObj.X + bossObj.W/3 - playerObj.W - 5
	playerObj.Update()

	holdAction(e, cfg.ActionMoveRight)
	UpdatePlayer(e)

	limit := bossObj.X + bossObj.W/3 - playerObj.W
	if playerObj.X != limit {
		t.Fatalf("player x = %v, want stopped at %v", playerObj.X, limit)
	}
}

func TestTickDownClampsAtZero(t *testing.T) {
	if got := tickDown(0.05, 0.1); got != 0 {
		t.Fatalf("tickDown(0.05, 0.1) = %v, want 0", got)
	}
	if got := tickDown(0.5, 0.1); got != 0.4 {
		t.Fatalf("tickDown(0.5, 0.1) = %v, want 0.4", got)
	}
}
