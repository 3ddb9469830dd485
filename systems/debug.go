package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/components"
)

// UpdateDebug toggles the collision box overlay on F1.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		ToggleHitboxes(ecs)
	}
}

// DrawDebug outlines every collision box in the space when the overlay is
// enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(ecs)
	if !settings.ShowHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255}
		if obj.HasTags("Player") {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags("Boss") {
			c = color.RGBA{255, 0, 0, 255}
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.DrawFilledRect(screen, x, y, w, 1, c, false)
		vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false)
		vector.DrawFilledRect(screen, x, y, 1, h, c, false)
		vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false)
	}
}
