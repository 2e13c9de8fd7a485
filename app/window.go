package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/renderer"
	"github.com/itsjaydesu/jayfolio-sub000/scene"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/ui"
)

// window is the raylib host: point renderer, panels and input.
type window struct {
	host     *Host
	points   *renderer.Points
	controls *ui.ControlsPanel
	palette  *ui.EffectsPalette
	hud      *ui.HUD
	overlays *ui.OverlayRegistry

	screenW, screenH int32
	inside           bool
}

// RunWindow opens a window and animates until it is closed or the frame
// limit is reached.
func RunWindow(cfg *config.Config, doc settings.Document, opts Options) error {
	points := renderer.NewPoints(cfg)
	h, err := newHost(cfg, doc, points, opts)
	if err != nil {
		return err
	}
	defer h.Close()

	w := &window{
		host:     h,
		points:   points,
		controls: ui.NewControlsPanel(h.sim, 10, 10, 340),
		hud:      ui.NewHUD(),
		overlays: ui.NewOverlayRegistry(),
	}
	w.controls.ExportDir = opts.OutputDir
	w.controls.OnMessage = func(text string) { w.hud.Toast.Show(text, rl.GetTime()) }
	points.Overlay = w.drawOverlay

	if opts.DeviceRatio <= 0 {
		h.sim.SetDeviceRatio(float64(rl.GetWindowScaleDPI().X))
	}
	w.resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

	for !rl.WindowShouldClose() {
		if !w.handleInput() {
			break
		}
		if err := h.step(float64(rl.GetFrameTime())); err != nil {
			return err
		}
		if h.done() {
			break
		}
	}
	return nil
}

func (w *window) resize(width, height int32) {
	w.screenW, w.screenH = width, height
	w.host.sim.Resize(int(width), int(height))
	w.palette = ui.NewEffectsPalette(w.host.sim, width-170, 10, 160)
}

// handleInput processes keyboard and mouse input. It returns false on quit.
func (w *window) handleInput() bool {
	sim := w.host.sim

	if rl.IsWindowResized() {
		if width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()); width != w.screenW || height != w.screenH {
			w.resize(width, height)
		}
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// The panel's close button hides it without going through the registry
	w.overlays.SetEnabled(ui.OverlayControls, sim.ControlsVisible())
	if key := rl.GetKeyPressed(); key != 0 {
		if id, on, ok := w.overlays.HandleKeyPress(key); ok && id == ui.OverlayControls {
			sim.SetControlsVisible(on)
		}
	}

	for _, c := range w.commands() {
		if !w.host.Dispatch(c) {
			return false
		}
	}

	w.handleMouse()
	return true
}

// commands decodes the fixed key bindings pressed this frame.
func (w *window) commands() []Command {
	var out []Command
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	for d := 0; d <= 9; d++ {
		if rl.IsKeyPressed(rl.KeyZero + int32(d)) {
			if c := digitCommand(d, shift); c.Action != ActionNone {
				out = append(out, c)
			}
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		out = append(out, Command{Action: ActionPause})
	}
	if rl.IsKeyPressed(rl.KeyR) {
		out = append(out, Command{Action: ActionRandomize})
	}
	if rl.IsKeyPressed(rl.KeyC) {
		out = append(out, Command{Action: ActionCalm})
	}
	return out
}

func (w *window) handleMouse() {
	sim := w.host.sim
	if !rl.IsCursorOnScreen() {
		if w.inside {
			w.inside = false
			sim.PointerLeave()
		}
		return
	}
	w.inside = true

	pos := rl.GetMousePosition()
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		sim.PointerMove(float64(pos.X), float64(pos.Y))
	}
	if w.overPanel(pos) {
		return
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		sim.PointerDown(float64(pos.X), float64(pos.Y))
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		sim.ContextMenu(float64(pos.X), float64(pos.Y))
	}
}

func (w *window) overPanel(pos rl.Vector2) bool {
	if w.controls.Contains(pos.X, pos.Y) {
		return true
	}
	return w.overlays.IsEnabled(ui.OverlayEffects) && w.palette.Contains(pos.X, pos.Y)
}

// drawOverlay runs inside the renderer's frame, after the field.
func (w *window) drawOverlay(v *scene.View) {
	w.controls.Draw()
	if w.overlays.IsEnabled(ui.OverlayEffects) {
		w.palette.Draw()
	}
	if w.overlays.IsEnabled(ui.OverlayHelp) {
		w.hud.DrawHelp(w.screenW-300, 10, w.overlays)
	}
	w.hud.Draw(w.screenW, w.screenH, rl.GetTime(), w.host.sim.Paused())
}
