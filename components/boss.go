package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

type BossData struct {
	Target *donburi.Entry // the player entity

	// Movement corridor, box-left-edge coordinates.
	MinX float64
	MaxX float64

	// Decision timing, seconds.
	ActionDelay float64 // time until the next decision
	MoveTimer   float64 // time left in the current move
	MoveDir     float64 // -1 left, +1 right while moving

	// Attack cooldowns, seconds.
	Attack1Cooldown  float64
	Attack2Cooldown  float64
	UltimateCooldown float64

	AttackActive bool // true while the current attack is inside its damage window
	AttackLanded bool // current swing already dealt its damage

	Rand *rand.Rand
}

var Boss = donburi.NewComponentType[BossData]()
