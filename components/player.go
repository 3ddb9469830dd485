package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector // X is the facing sign, -1 left / +1 right

	// Seconds-based timers, all count down to zero.
	DashTimer      float64 // time left in the current dash
	DashCooldown   float64
	CanDash        bool // dash is spent on use, re-armed on landing
	AttackCooldown float64
	ParryCooldown  float64
	ParryWindow    float64 // damage immunity left from the last parry
	HurtTimer      float64 // input lockout left from the last hit

	Rand *rand.Rand
}

var Player = donburi.NewComponentType[PlayerData]()
