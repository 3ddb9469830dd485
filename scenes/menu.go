package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/jobbie007/bossfight/config"
	"github.com/jobbie007/bossfight/systems"
	"github.com/jobbie007/bossfight/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.settingsUI = ui.NewSettingsUI(ms.ecs)

	createArenaScene := func() interface{} {
		return NewArenaScene(ms.sceneChanger)
	}

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createArenaScene))
	ms.ecs.AddSystem(systems.UpdateSettingsMenu)
	ms.ecs.AddSystem(ms.updateSettingsUI)

	// Renderers (settings overlay draws on top of menu)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	ms.ecs.AddRenderer(cfg.Default, ms.drawSettingsUI)
}

func (ms *MenuScene) updateSettingsUI(e *ecs.ECS) {
	if systems.IsSettingsOpen(e) {
		ms.settingsUI.Refresh()
		ms.settingsUI.Update()
	}
}

func (ms *MenuScene) drawSettingsUI(e *ecs.ECS, screen *ebiten.Image) {
	if systems.IsSettingsOpen(e) {
		ms.settingsUI.Draw(screen)
	}
}
