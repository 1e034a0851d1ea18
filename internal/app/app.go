//go:build ebiten

package app

import (
	"beach-weather/internal/render"
	"beach-weather/internal/sims/beach"
	"beach-weather/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a beach World to the ebiten.Game interface.
type Game struct {
	world   *beach.World
	scene   *render.Scene
	hud     *ui.HUD
	overlay *ui.Overlay
	panel   *ui.Panel
	dt      float64
	view    beach.View
}

// New constructs a Game for world that advances dt seconds per update.
// panelWidth adds a tuning panel to the right of the beach when positive.
func New(world *beach.World, dt float64, panelWidth int) *Game {
	layout := world.Layout()
	cfg := world.Config()
	maxWind := cfg.Params.WindSpeed * (1 + cfg.Params.WindGustScale)
	return &Game{
		world:   world,
		scene:   render.NewScene(layout),
		hud:     ui.NewHUD(layout),
		overlay: ui.NewOverlay(world, layout, maxWind),
		panel:   ui.NewPanel(world, panelWidth, layout.ScreenHeight()),
		dt:      dt,
		view:    world.View(),
	}
}

// Update polls the keyboard and advances the world by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.overlay.Update()
	g.panel.Update(g.world.Layout().ScreenWidth())

	g.world.Step(g.dt, pollInput())
	g.view = g.world.View()
	return nil
}

// pollInput reads held arrows and freshly pressed action keys.
func pollInput() beach.Input {
	pressed := inpututil.IsKeyJustPressed
	return beach.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),

		GetSand:  pressed(ebiten.KeyS),
		GetWater: pressed(ebiten.KeyA),
		GetWood:  pressed(ebiten.KeyW),
		Dump:     pressed(ebiten.KeyD),

		ToggleRain:  pressed(ebiten.KeyR),
		ToggleWind:  pressed(ebiten.KeyB),
		ToggleTide:  pressed(ebiten.KeyT),
		ToggleDebug: pressed(ebiten.KeyG),

		Confirm: pressed(ebiten.KeyF),
	}
}

// Draw renders the last view taken after Update.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen, g.view)
	g.overlay.Draw(screen, g.view)
	g.hud.Draw(screen, g.view)
	g.panel.Draw(screen, g.world.Layout().ScreenWidth())
}

// Layout returns the logical screen size: the beach plus the tuning panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	l := g.world.Layout()
	return l.ScreenWidth() + g.panel.Width(), l.ScreenHeight()
}
