package components

import "github.com/yohamta/donburi"

// DamageEventData is attached to the entity taking the hit and consumed by
// the combat system on the same frame. Knockback pushes away from the
// attacker.
type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
