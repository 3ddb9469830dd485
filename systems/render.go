package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/assets"
	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	skyColor    = color.RGBA{R: 24, G: 22, B: 38, A: 255}
	groundColor = color.RGBA{R: 52, G: 44, B: 40, A: 255}
)

// NewDrawArena returns a renderer that paints the sky and ground plane.
func NewDrawArena(arena assets.Arena) func(ecs *ecs.ECS, screen *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		width := float32(screen.Bounds().Dx())
		height := float32(screen.Bounds().Dy())

		vector.DrawFilledRect(screen, 0, 0, width, height, skyColor, false)
		vector.DrawFilledRect(screen,
			0, float32(arena.GroundY),
			width, height-float32(arena.GroundY),
			groundColor, false)
	}
}

// NewDrawAnimated returns a renderer for entities with an Animation
// component. Sprites anchor bottom-center on their collision box and flip
// when facing left; when the sheet is missing a colored rectangle stands in.
func NewDrawAnimated(reg *assets.Registry) func(ecs *ecs.ECS, screen *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		components.Animation.Each(ecs.World, func(e *donburi.Entry) {
			drawAnimatedEntity(reg, e, screen)
		})
	}
}

func drawAnimatedEntity(reg *assets.Registry, e *donburi.Entry, screen *ebiten.Image) {
	o := components.Object.Get(e)
	animData := components.Animation.Get(e)

	var img *ebiten.Image
	if anim := animData.Current(); anim != nil {
		frame := anim.Frame()
		sx := frame * animData.FrameWidth
		srcRect := image.Rect(sx, 0, sx+animData.FrameWidth, animData.FrameHeight)
		img = reg.Frame(animData.SheetDir, animData.CurrentState, frame, srcRect)
	}

	if img == nil {
		drawFallbackRect(e, o, screen)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Anchor at bottom-center so feet line up with the collision box.
	drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))

	if facingLeft(e) {
		drawOp.GeoM.Scale(-1, 1)
	}

	drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)

	// Flash overrides other color effects while its phase is on.
	if e.HasComponent(components.Flash) {
		flash := components.Flash.Get(e)
		if flash.Visible() {
			drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
		}
	}

	screen.DrawImage(img, drawOp)
}

// facingLeft reports the render flip for the entity. The boss always faces
// its target; the player faces its movement direction.
func facingLeft(e *donburi.Entry) bool {
	if e.HasComponent(components.Player) {
		return components.Player.Get(e).Direction.X < 0
	}
	if e.HasComponent(components.Boss) {
		boss := components.Boss.Get(e)
		if boss.Target == nil || !boss.Target.Valid() {
			return true
		}
		obj := components.Object.Get(e)
		targetObj := components.Object.Get(boss.Target)
		return targetObj.X+targetObj.W/2 < obj.X+obj.W/2
	}
	return false
}

// drawFallbackRect stands in for a missing sprite sheet.
func drawFallbackRect(e *donburi.Entry, o *components.ObjectData, screen *ebiten.Image) {
	var entityColor color.RGBA
	switch {
	case e.HasComponent(components.Player):
		entityColor = cfg.Blue
		if physics := components.Physics.Get(e); !physics.OnGround {
			entityColor = cfg.Purple
		}
	case e.HasComponent(components.Boss):
		entityColor = cfg.LightRed
		if boss := components.Boss.Get(e); boss.AttackActive {
			entityColor = cfg.Magenta
		}
	default:
		entityColor = cfg.White
	}

	if e.HasComponent(components.Flash) {
		if flash := components.Flash.Get(e); flash.Visible() {
			entityColor = cfg.White
		}
	}

	vector.DrawFilledRect(screen,
		float32(o.X), float32(o.Y), float32(o.W), float32(o.H),
		entityColor, false)
}
