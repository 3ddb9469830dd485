package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
)

// UpdateSettingsMenu closes the overlay on the back action. Widget input is
// handled by the ebitenui overlay owned by the scene.
func UpdateSettingsMenu(e *ecs.ECS) {
	if !IsSettingsOpen(e) {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		CloseSettings(e)
	}
}

// OpenSettings opens the settings overlay. fromPause tracks where Back
// should return to.
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.SelectedOption = components.SettingsOptFullscreen
}

// CloseSettings closes the overlay and persists the current values.
func CloseSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}
	settings.IsOpen = false
	SaveCurrentSettings(settings)
}

// IsSettingsOpen reports whether the settings overlay is showing.
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}

// ToggleFullscreen flips fullscreen mode and applies it immediately.
func ToggleFullscreen(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.Fullscreen = !settings.Fullscreen
	applyDisplaySettings(settings)
}

// CycleResolution advances to the next windowed resolution.
func CycleResolution(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
	applyDisplaySettings(settings)
}

// ToggleHitboxes flips the collision box debug overlay.
func ToggleHitboxes(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.ShowHitboxes = !settings.ShowHitboxes
}

// ResolutionLabel returns the display label of the selected resolution.
func ResolutionLabel(settings *components.SettingsMenuData) string {
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		return ""
	}
	return cfg.SettingsMenu.Resolutions[settings.ResolutionIndex].Label
}

func applyDisplaySettings(settings *components.SettingsMenuData) {
	ebiten.SetFullscreen(settings.Fullscreen)
	if !settings.Fullscreen && settings.ResolutionIndex >= 0 && settings.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[settings.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// GetOrCreateSettingsMenu returns the singleton settings component, seeding
// it from the saved settings on first use.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		data := components.SettingsMenuData{
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		}
		if saved, err := LoadSettings(); err == nil && saved != nil {
			data.Fullscreen = saved.Fullscreen
			data.ResolutionIndex = saved.ResolutionIndex
			data.ShowHitboxes = saved.ShowHitboxes
		}
		components.SettingsMenu.SetValue(ent, data)
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}
