package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData drives the two health bars. Shown values trail the real health
// through a short tween so damage reads as a drain instead of a jump.
type HUDData struct {
	PlayerShown  float64 // displayed player health
	PlayerTarget float64
	PlayerTween  *gween.Tween

	BossShown  float64 // displayed boss health
	BossTarget float64
	BossTween  *gween.Tween
}

var HUD = donburi.NewComponentType[HUDData]()
