package systems

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
)

func TestPlayerHitRateLimitedByFlashWindow(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)

	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	state.Enter(cfg.Attack1)
	player.Direction.X = cfg.DirectionRight

	resolvePlayerHits(e)

	if !bossEntry.HasComponent(components.DamageEvent) {
		t.Fatal("no damage event queued on the boss")
	}

	// Draining the hit starts the boss flash, which blocks further damage
	// until it expires.
	drainDamageEvents(e)
	if components.Flash.Get(bossEntry).Timer <= 0 {
		t.Fatal("boss flash not started by the hit")
	}

	resolvePlayerHits(e)
	if bossEntry.HasComponent(components.DamageEvent) {
		t.Fatal("hit landed inside the flash window")
	}

	hp := components.Health.Get(bossEntry)
	if hp.Current != cfg.Boss.Health-cfg.Combat.PlayerAttackDamage {
		t.Fatalf("boss health = %d, want %d", hp.Current, cfg.Boss.Health-cfg.Combat.PlayerAttackDamage)
	}

	// Once the flash runs out the next swing frame connects again.
	components.Flash.Get(bossEntry).Timer = 0
	resolvePlayerHits(e)
	if !bossEntry.HasComponent(components.DamageEvent) {
		t.Fatal("no hit after the flash window expired")
	}
}

func TestPlayerHitOutOfRange(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)

	obj := components.Object.Get(playerEntry).Object
	bossObj := components.Object.Get(bossEntry).Object
	obj.X = bossObj.X - obj.W - cfg.Player.AttackRange - 40
	obj.Update()

	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	state.Enter(cfg.Attack1)
	player.Direction.X = cfg.DirectionRight

	resolvePlayerHits(e)

	if bossEntry.HasComponent(components.DamageEvent) {
		t.Fatal("swing landed from out of range")
	}
}

func TestPlayerHitIgnoredWhileBossInvulnerable(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)

	bossState := components.State.Get(bossEntry)
	bossState.Enter(cfg.BossAttack1)

	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	state.Enter(cfg.Attack1)
	player.Direction.X = cfg.DirectionRight

	resolvePlayerHits(e)

	if bossEntry.HasComponent(components.DamageEvent) {
		t.Fatal("damage queued against an invulnerable boss")
	}
}

func TestBossHitKnocksPlayerBack(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)

	boss := components.Boss.Get(bossEntry)
	boss.AttackActive = true

	resolveBossHits(e)
	if !boss.AttackLanded {
		t.Fatal("active boss swing did not land")
	}

	drainDamageEvents(e)

	hp := components.Health.Get(playerEntry)
	if hp.Current != cfg.Player.Health-cfg.Combat.BossContactDamage {
		t.Fatalf("player health = %d, want %d", hp.Current, cfg.Player.Health-cfg.Combat.BossContactDamage)
	}

	state := components.State.Get(playerEntry)
	if state.CurrentState != cfg.Hurt {
		t.Fatalf("state = %s, want hurt", state.CurrentState)
	}

	physics := components.Physics.Get(playerEntry)
	if physics.SpeedX != cfg.DirectionLeft*cfg.Player.KnockbackX {
		t.Fatalf("knockback x = %v, want away from the boss", physics.SpeedX)
	}
	if physics.SpeedY != cfg.Player.KnockbackY || physics.OnGround {
		t.Fatalf("knockback y = %v on ground = %v, want launched", physics.SpeedY, physics.OnGround)
	}

	flash := components.Flash.Get(playerEntry)
	if flash.Timer <= 0 {
		t.Fatal("hurt flash not started")
	}
}

func TestParryConsumesBossSwing(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)

	boss := components.Boss.Get(bossEntry)
	boss.AttackActive = true

	player := components.Player.Get(playerEntry)
	player.ParryWindow = cfg.Player.ParryWindow

	resolveBossHits(e)

	if !boss.AttackLanded {
		t.Fatal("parried swing not spent")
	}
	if playerEntry.HasComponent(components.DamageEvent) {
		t.Fatal("parried swing still dealt damage")
	}
}

func TestDashProtectsPlayer(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)

	boss := components.Boss.Get(bossEntry)
	boss.AttackActive = true

	components.State.Get(playerEntry).Enter(cfg.Dash)

	resolveBossHits(e)

	if playerEntry.HasComponent(components.DamageEvent) {
		t.Fatal("dash did not protect against the swing")
	}
	if !boss.AttackLanded {
		t.Fatal("dashed-through swing not spent")
	}
}

func TestBossSwingSkipsHurtPlayer(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)

	boss := components.Boss.Get(bossEntry)
	boss.AttackActive = true

	player := components.Player.Get(playerEntry)
	player.HurtTimer = cfg.Player.HurtDuration

	resolveBossHits(e)

	if playerEntry.HasComponent(components.DamageEvent) {
		t.Fatal("hurt player took a second hit")
	}
	if boss.AttackLanded {
		t.Fatal("swing spent on a player still in hitstun")
	}
}

func TestInactiveBossSwingDoesNothing(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)

	boss := components.Boss.Get(bossEntry)
	boss.AttackActive = false

	resolveBossHits(e)

	if playerEntry.HasComponent(components.DamageEvent) || boss.AttackLanded {
		t.Fatal("hit resolved outside the active frame window")
	}
}

func TestHealthClampedAndDeathStarted(t *testing.T) {
	e, playerEntry, bossEntry := newFightWorld(1)

	playerHP := components.Health.Get(playerEntry)
	playerHP.Current = -20
	bossHP := components.Health.Get(bossEntry)
	bossHP.Current = cfg.Boss.Health + 500

	boss := components.Boss.Get(bossEntry)
	boss.AttackActive = true

	clampHealthAndHandleDeath(e)

	if playerHP.Current != 0 {
		t.Fatalf("player health = %d, want clamped to 0", playerHP.Current)
	}
	if bossHP.Current != cfg.Boss.Health {
		t.Fatalf("boss health = %d, want clamped to max", bossHP.Current)
	}

	state := components.State.Get(playerEntry)
	if state.CurrentState != cfg.Die {
		t.Fatalf("state = %s, want die at zero health", state.CurrentState)
	}
	physics := components.Physics.Get(playerEntry)
	if physics.SpeedX != 0 || physics.SpeedY != 0 {
		t.Fatal("player kept momentum into death")
	}

	// The boss stays alive and keeps its swing.
	bossState := components.State.Get(bossEntry)
	if bossState.CurrentState == cfg.BossDie {
		t.Fatal("boss died at full health")
	}
}

func TestDeadEntitiesIgnoreDamage(t *testing.T) {
	e, playerEntry, _ := newFightWorld(1)

	components.State.Get(playerEntry).Enter(cfg.Die)

	donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{
		Amount:     10,
		KnockbackX: -cfg.Player.KnockbackX,
		KnockbackY: cfg.Player.KnockbackY,
	})
	drainDamageEvents(e)

	if playerEntry.HasComponent(components.DamageEvent) {
		t.Fatal("damage event left on a dead entity")
	}
	hp := components.Health.Get(playerEntry)
	if hp.Current != cfg.Player.Health {
		t.Fatalf("health = %d, the dead took damage", hp.Current)
	}
	state := components.State.Get(playerEntry)
	if state.CurrentState != cfg.Die {
		t.Fatalf("state = %s, damage pulled the player out of death", state.CurrentState)
	}
}

func TestBossDeathCancelsAttack(t *testing.T) {
	e, _, bossEntry := newFightWorld(1)

	boss := components.Boss.Get(bossEntry)
	boss.AttackActive = true
	components.State.Get(bossEntry).Enter(cfg.BossAttack1)

	hp := components.Health.Get(bossEntry)
	hp.Current = 0

	clampHealthAndHandleDeath(e)

	state := components.State.Get(bossEntry)
	if state.CurrentState != cfg.BossDie {
		t.Fatalf("state = %s, want boss death", state.CurrentState)
	}
	if boss.AttackActive {
		t.Fatal("attack still active after death")
	}
}
