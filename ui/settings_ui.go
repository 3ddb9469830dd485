package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jobbie007/bossfight/systems"
)

// SettingsUI holds the ebitenui overlay for the settings screen.
type SettingsUI struct {
	UI *ebitenui.UI

	ecs *ecs.ECS

	// Widget references for updates
	fullscreenButton *widget.Button
	resolutionButton *widget.Button
	hitboxButton     *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewSettingsUI creates the settings overlay bound to a scene's ECS.
func NewSettingsUI(e *ecs.ECS) *SettingsUI {
	sui := &SettingsUI{ecs: e}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	sui.fullscreenButton = sui.settingButton("", func() {
		systems.ToggleFullscreen(sui.ecs)
		sui.Refresh()
	})
	panel.AddChild(sui.fullscreenButton)

	sui.resolutionButton = sui.settingButton("", func() {
		systems.CycleResolution(sui.ecs)
		sui.Refresh()
	})
	panel.AddChild(sui.resolutionButton)

	sui.hitboxButton = sui.settingButton("", func() {
		systems.ToggleHitboxes(sui.ecs)
		sui.Refresh()
	})
	panel.AddChild(sui.hitboxButton)

	backButton := sui.settingButton("Back", func() {
		systems.CloseSettings(sui.ecs)
	})
	panel.AddChild(backButton)

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{Container: rootContainer}
	sui.Refresh()
}

func (sui *SettingsUI) settingButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(280, 32)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{220, 220, 220, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{160, 160, 160, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// Refresh syncs the button labels with the current settings values.
func (sui *SettingsUI) Refresh() {
	settings := systems.GetOrCreateSettingsMenu(sui.ecs)

	setButtonLabel(sui.fullscreenButton, "Fullscreen: "+onOff(settings.Fullscreen))
	setButtonLabel(sui.resolutionButton, "Resolution: "+systems.ResolutionLabel(settings))
	setButtonLabel(sui.hitboxButton, "Hitboxes: "+onOff(settings.ShowHitboxes))
}

func setButtonLabel(button *widget.Button, label string) {
	if button == nil {
		return
	}
	if textWidget := button.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// Update advances the widget tree. Call only while the overlay is open.
func (sui *SettingsUI) Update() {
	sui.UI.Update()
}

// Draw renders the overlay on top of the scene.
func (sui *SettingsUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}
