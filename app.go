package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cellux/fractalview/internal/config"
	"github.com/cellux/fractalview/internal/nav"
)

type App struct {
	cfg            config.Config
	vertexSource   string
	fragmentSource string
	shouldExit     bool
	nav            *nav.Navigator
	keyMap         nav.KeyMap
	fractal        *FractalRenderer
	overlay        *SelectionOverlay
	hud            *HUD
}

func CreateApp(cfg config.Config, vertexSource, fragmentSource string) *App {
	app := &App{
		cfg:            cfg,
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
	}
	app.nav = nav.NewNavigator(nav.NewViewport(cfg.Width, cfg.Height), logger.With("component", "nav"))
	app.keyMap = app.nav.KeyMap(app.Quit)
	return app
}

func (app *App) Init(window *glfw.Window) error {
	logger.Info("Init")
	fractal, err := CreateFractalRenderer(app.vertexSource, app.fragmentSource)
	if err != nil {
		return fmt.Errorf("fractal program: %w", err)
	}
	app.fractal = fractal
	overlay, err := CreateSelectionOverlay()
	if err != nil {
		return fmt.Errorf("selection overlay: %w", err)
	}
	app.overlay = overlay
	if app.cfg.HUD {
		scale, _ := window.GetContentScale()
		hud, err := CreateHUD(scale)
		if err != nil {
			return fmt.Errorf("hud: %w", err)
		}
		app.hud = hud
	}
	return nil
}

func (app *App) IsRunning() bool {
	return !app.shouldExit
}

func (app *App) Quit() {
	logger.Info("Quit")
	app.shouldExit = true
}

func (app *App) OnKey(key glfw.Key, scancode int, action glfw.Action, modes glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		app.keyMap.HandleKey("Escape")
	}
}

func (app *App) OnChar(char rune) {
	if app.keyMap.HandleKey(string(char)) {
		logger.Debug("OnChar", "char", string(char))
	}
}

func (app *App) OnCursorPos(x, y float64) {
	app.nav.PointerMove(x, y)
}

func (app *App) OnMouseButton(button glfw.MouseButton, action glfw.Action, x, y float64) {
	var b nav.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = nav.ButtonLeft
	case glfw.MouseButtonRight:
		b = nav.ButtonRight
	case glfw.MouseButtonMiddle:
		b = nav.ButtonMiddle
	default:
		return
	}
	switch action {
	case glfw.Press:
		app.nav.PointerButton(b, true, x, y)
	case glfw.Release:
		app.nav.PointerButton(b, false, x, y)
	}
}

func (app *App) OnFramebufferSize(width, height int) {
	logger.Info("OnFramebufferSize", "width", width, "height", height)
	app.nav.Resize(width, height)
}

func (app *App) NeedsRedraw() bool {
	return app.nav.NeedsRedraw()
}

func (app *App) IsAnimating() bool {
	return app.nav.IsAnimating()
}

func (app *App) Update() error {
	app.nav.Tick()
	return nil
}

func (app *App) Render() error {
	frame := app.nav.Frame()
	vp := app.nav.Viewport()
	app.fractal.Render(frame)
	if r, ok := app.nav.SelectionRect(); ok {
		app.overlay.Render(r, vp)
	}
	if app.hud != nil {
		app.hud.Render(frame, vp)
	}
	app.nav.Drawn()
	return nil
}

func (app *App) Close() error {
	logger.Info("Close")
	if app.hud != nil {
		app.hud.Close()
	}
	if app.overlay != nil {
		app.overlay.Close()
	}
	if app.fractal != nil {
		return app.fractal.Close()
	}
	return nil
}
