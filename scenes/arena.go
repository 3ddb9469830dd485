package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/jobbie007/bossfight/assets"
	"github.com/jobbie007/bossfight/components"
	cfg "github.com/jobbie007/bossfight/config"
	"github.com/jobbie007/bossfight/systems"
	"github.com/jobbie007/bossfight/systems/factory"
	"github.com/jobbie007/bossfight/tags"
	"github.com/jobbie007/bossfight/ui"
)

// ArenaScene runs the boss fight.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewArenaScene creates a fresh fight.
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if over, victory := as.fightOutcome(); over {
		as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, victory))
	}
}

// fightOutcome reports whether the fight ended once the losing side's death
// animation has played out.
func (as *ArenaScene) fightOutcome() (over, victory bool) {
	if as.ecs == nil {
		return false, false
	}

	if bossEntry, ok := tags.Boss.First(as.ecs.World); ok {
		state := components.State.Get(bossEntry)
		if state.CurrentState == cfg.BossDie && deathAnimationDone(bossEntry) {
			return true, true
		}
	}
	if playerEntry, ok := tags.Player.First(as.ecs.World); ok {
		state := components.State.Get(playerEntry)
		if state.CurrentState == cfg.Die && deathAnimationDone(playerEntry) {
			return true, false
		}
	}
	return false, false
}

func deathAnimationDone(e *donburi.Entry) bool {
	animData := components.Animation.Get(e)
	anim := animData.Current()
	return anim == nil || anim.Done()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	arena := assets.LoadArena()
	registry := assets.NewRegistry("assets/images")

	as.ecs = ecs.NewECS(donburi.NewWorld())
	as.settingsUI = ui.NewSettingsUI(as.ecs)

	createMenuScene := func() interface{} {
		return NewMenuScene(as.sceneChanger)
	}

	// Entities
	factory.CreateSpace(as.ecs, arena.Width, arena.Height, 16, 16)
	player := factory.CreatePlayer(as.ecs, arena.PlayerSpawnX, nil)
	factory.CreateBoss(as.ecs, arena.BossSpawnX, arena.BossMinX, arena.BossMaxX, player, nil)

	// Systems that always run
	as.ecs.AddSystem(systems.UpdateClock)
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.NewUpdatePause(as.sceneChanger, createMenuScene))
	as.ecs.AddSystem(systems.UpdateSettingsMenu)
	as.ecs.AddSystem(as.updateSettingsUI)
	as.ecs.AddSystem(systems.UpdateDebug)

	// Gameplay systems, skipped while paused or in settings
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBoss))
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))

	// Renderers, back to front
	as.ecs.AddRenderer(cfg.Default, systems.NewDrawArena(arena))
	as.ecs.AddRenderer(cfg.Default, systems.NewDrawAnimated(registry))
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPause)
	as.ecs.AddRenderer(cfg.Default, as.drawSettingsUI)
}

func (as *ArenaScene) updateSettingsUI(e *ecs.ECS) {
	if systems.IsSettingsOpen(e) {
		as.settingsUI.Refresh()
		as.settingsUI.Update()
	}
}

func (as *ArenaScene) drawSettingsUI(e *ecs.ECS, screen *ebiten.Image) {
	if systems.IsSettingsOpen(e) {
		as.settingsUI.Draw(screen)
	}
}
