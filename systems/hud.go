package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
	"github.com/jobbie007/bossfight/fonts"
	"github.com/jobbie007/bossfight/tags"
)

// UpdateHUD retargets the displayed health bars whenever real health changes
// and advances the drain tweens.
func UpdateHUD(ecs *ecs.ECS) {
	dt := float32(DeltaSeconds(ecs))
	hud := GetOrCreateHUD(ecs)

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		hp := components.Health.Get(playerEntry)
		hud.PlayerShown, hud.PlayerTarget, hud.PlayerTween = advanceBarTween(
			hud.PlayerShown, hud.PlayerTarget, hud.PlayerTween, float64(hp.Current), dt)
	}
	if bossEntry, ok := tags.Boss.First(ecs.World); ok {
		hp := components.Health.Get(bossEntry)
		hud.BossShown, hud.BossTarget, hud.BossTween = advanceBarTween(
			hud.BossShown, hud.BossTarget, hud.BossTween, float64(hp.Current), dt)
	}
}

// advanceBarTween restarts the drain tween when the target health moved and
// steps the running tween by dt.
func advanceBarTween(shown, target float64, tween *gween.Tween, actual float64, dt float32) (float64, float64, *gween.Tween) {
	if actual != target {
		target = actual
		tween = gween.New(float32(shown), float32(actual), float32(cfg.HUD.DrainDuration), ease.OutQuad)
	}
	if tween != nil {
		value, done := tween.Update(dt)
		shown = float64(value)
		if done {
			tween = nil
		}
	}
	return shown, target, tween
}

// DrawHUD renders the player bar top-left and the boss bar bottom-center.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := GetOrCreateHUD(ecs)
	width := float64(screen.Bounds().Dx())

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		hp := components.Health.Get(playerEntry)
		frac := barFraction(hud.PlayerShown, hp.Max)
		drawBar(screen,
			cfg.HUD.Margin, cfg.HUD.Margin,
			cfg.HUD.PlayerBarWidth, cfg.HUD.PlayerBarHeight,
			frac, playerBarColor(frac))
		text.Draw(screen, "PLAYER", fonts.UISmall.Get(),
			int(cfg.HUD.Margin), int(cfg.HUD.Margin+cfg.HUD.PlayerBarHeight+16), cfg.White)
	}

	if bossEntry, ok := tags.Boss.First(ecs.World); ok {
		hp := components.Health.Get(bossEntry)
		frac := barFraction(hud.BossShown, hp.Max)
		barX := (width - cfg.HUD.BossBarWidth) / 2
		barY := float64(screen.Bounds().Dy()) - cfg.HUD.Margin - cfg.HUD.BossBarHeight
		drawBar(screen, barX, barY,
			cfg.HUD.BossBarWidth, cfg.HUD.BossBarHeight,
			frac, cfg.LightRed)
		text.Draw(screen, "BOSS", fonts.UISmall.Get(),
			int(barX), int(barY)-6, cfg.White)
	}
}

func barFraction(shown float64, max int) float64 {
	if max <= 0 {
		return 0
	}
	frac := shown / float64(max)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// playerBarColor shifts green to yellow to red as health drops.
func playerBarColor(frac float64) color.RGBA {
	switch {
	case frac <= cfg.HUD.DangerThreshold:
		return cfg.Red
	case frac <= cfg.HUD.WarnThreshold:
		return cfg.Yellow
	default:
		return cfg.BrightGreen
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h, frac float64, fill color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(w), float32(h),
		color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(w*frac), float32(h),
		fill, false)
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed.
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	if _, ok := components.HUD.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.HUD))
		hud := components.HUD.Get(ent)
		hud.PlayerShown = float64(cfg.Player.Health)
		hud.PlayerTarget = hud.PlayerShown
		hud.BossShown = float64(cfg.Boss.Health)
		hud.BossTarget = hud.BossShown
		return hud
	}
	ent, _ := components.HUD.First(ecs.World)
	return components.HUD.Get(ent)
}
