package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	toastDuration = 2.2
	toastFade     = 0.25
)

// Toast is a short status message that fades out. Times are seconds on
// the caller's clock.
type Toast struct {
	text  string
	shown float64
}

// Show replaces the current message.
func (t *Toast) Show(text string, now float64) {
	t.text = text
	t.shown = now
}

// Alpha returns the message opacity at now; zero once it has expired.
func (t *Toast) Alpha(now float64) float32 {
	if t.text == "" {
		return 0
	}
	age := now - t.shown
	switch {
	case age < 0 || age >= toastDuration:
		return 0
	case age < toastFade:
		return float32(age / toastFade)
	case age > toastDuration-toastFade:
		return float32((toastDuration - age) / toastFade)
	default:
		return 1
	}
}

// Text returns the current message.
func (t *Toast) Text() string {
	return t.text
}

// HUD draws the transient messages and the help legend.
type HUD struct {
	renderer *Renderer
	Toast    Toast
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the toast, if any, and the paused marker.
func (h *HUD) Draw(screenW, screenH int32, now float64, paused bool) {
	if a := h.Toast.Alpha(now); a > 0 {
		h.renderer.DrawToast(screenW, screenH, h.Toast.Text(), a)
	}
	if paused {
		rl.DrawText("PAUSED", screenW-80, 10, 16, rl.Yellow)
	}
}

// helpLines are the fixed bindings not owned by an overlay.
var helpLines = [][2]string{
	{"Click", "Droplet burst"},
	{"Right click", "Slow ripple"},
	{"Space", "Pause"},
	{"1-7", "Start effect"},
	{"Shift+1", "Layer jitter"},
	{"0", "Clear effects"},
	{"R", "Randomize"},
	{"C", "Calm reset"},
	{"F11", "Fullscreen"},
}

// DrawHelp renders the key reference with overlay bindings first.
func (h *HUD) DrawHelp(x, y int32, overlays *OverlayRegistry) {
	r := h.renderer
	lines := len(helpLines) + len(overlays.All())
	r.DrawPanel(x, y, 280, int32(lines+1)*r.Theme.LineHeight+r.Theme.Padding*2)

	cy := r.DrawSectionHeader(x+r.Theme.Padding, y+r.Theme.Padding, "Keys")
	for _, desc := range overlays.All() {
		cy = r.DrawLabelValue(x+r.Theme.Padding, cy, desc.KeyLabel, fmt.Sprintf("Toggle %s", desc.Name))
	}
	for _, l := range helpLines {
		cy = r.DrawLabelValue(x+r.Theme.Padding, cy, l[0], l[1])
	}
}
