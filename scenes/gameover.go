package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/jobbie007/bossfight/config"
	"github.com/jobbie007/bossfight/systems"
)

// GameOverScene displays the end-of-fight screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	victory      bool
	once         sync.Once
}

// NewGameOverScene creates the end-of-fight scene. victory selects the
// VICTORY or DEFEAT banner.
func NewGameOverScene(sc SceneChanger, victory bool) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, victory: victory}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createArenaScene := func() interface{} {
		return NewArenaScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	systems.GetOrCreateGameOver(gs.ecs).Victory = gs.victory

	// Minimal systems for the end screen
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createArenaScene, createMenuScene))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
