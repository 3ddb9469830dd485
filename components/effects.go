package components

import "github.com/yohamta/donburi"

// FlashData tracks a timed hit-flash on a sprite. The sprite is tinted on
// alternating intervals until the timer runs out.
type FlashData struct {
	Timer    float64 // seconds remaining, <= 0 means no flash
	Interval float64 // toggle period in seconds
	R, G, B  float32 // tint multipliers while the flash phase is on
}

// Visible reports whether the tint is on for the current phase of the flash.
func (f *FlashData) Visible() bool {
	if f.Timer <= 0 || f.Interval <= 0 {
		return false
	}
	phase := int(f.Timer / f.Interval)
	return phase%2 == 0
}

var Flash = donburi.NewComponentType[FlashData]()
