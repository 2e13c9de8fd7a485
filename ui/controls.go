package ui

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

// Handle is the part of the simulation control surface the panels drive.
// Every change goes through it; panels never touch field state directly.
type Handle interface {
	CurrentSettings() settings.Settings
	ApplySettings(p settings.Partial, immediate bool)
	SetLocked(k settings.Key, locked bool)
	Locked(k settings.Key) bool
	Randomize() settings.Partial
	Export() settings.Export
	ApplyFieldEffect(name string) bool
	ControlsVisible() bool
	SetControlsVisible(visible bool)
}

// ExportFile is the file name Download writes.
const ExportFile = "field-settings.json"

// copyToClipboard is swapped in tests, which run without a window.
var copyToClipboard = rl.SetClipboardText

// ControlsPanel renders the "Field Controls" window.
type ControlsPanel struct {
	handle   Handle
	renderer *Renderer
	folders  []FolderDescriptor
	open     []bool
	x, y     int32
	width    int32

	// ExportDir is where Download writes; empty means the working directory.
	ExportDir string
	// OnMessage receives user-facing status text.
	OnMessage func(text string)
}

// NewControlsPanel creates the panel anchored at (x, y).
func NewControlsPanel(h Handle, x, y, width int32) *ControlsPanel {
	folders := DefaultFolders()
	open := make([]bool, len(folders))
	for i, f := range folders {
		open[i] = f.Open
	}
	return &ControlsPanel{
		handle:   h,
		renderer: NewRenderer(),
		folders:  folders,
		open:     open,
		x:        x,
		y:        y,
		width:    width,
	}
}

// Set applies v to k immediately, clamped and snapped to the slider step.
// It reports whether the value changed.
func (c *ControlsPanel) Set(k settings.Key, v float64) bool {
	if !k.IsBool() {
		r := settings.Ranges[k]
		v = snap(r.Clamp(v), r.Min, r.Step)
	}
	cur := c.handle.CurrentSettings()
	if cur.Get(k) == v {
		return false
	}
	c.handle.ApplySettings(settings.Partial{k: v}, true)
	return true
}

// ToggleLock flips the fixed state of k.
func (c *ControlsPanel) ToggleLock(k settings.Key) {
	c.handle.SetLocked(k, !c.handle.Locked(k))
}

// ExportJSON serializes the current values and lock state.
func (c *ControlsPanel) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c.handle.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding settings export: %w", err)
	}
	return data, nil
}

// Copy puts the export on the clipboard.
func (c *ControlsPanel) Copy() error {
	data, err := c.ExportJSON()
	if err != nil {
		return err
	}
	copyToClipboard(string(data))
	c.message("Settings copied to clipboard")
	return nil
}

// Download writes the export to ExportFile and returns its path.
func (c *ControlsPanel) Download() (string, error) {
	data, err := c.ExportJSON()
	if err != nil {
		return "", err
	}
	path := ExportFile
	if c.ExportDir != "" {
		path = c.ExportDir + string(os.PathSeparator) + ExportFile
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing settings export: %w", err)
	}
	c.message("Settings saved to " + path)
	return path, nil
}

// Randomize applies random values to every unlocked parameter.
func (c *ControlsPanel) Randomize() {
	p := c.handle.Randomize()
	c.message(fmt.Sprintf("Randomized %d parameters", len(p)))
}

func (c *ControlsPanel) message(text string) {
	if c.OnMessage != nil {
		c.OnMessage(text)
	}
}

// rows counts the lines the panel needs with the current folder state.
func (c *ControlsPanel) rows() int {
	n := len(c.folders) + 2 // headers, two button rows
	for i, f := range c.folders {
		if c.open[i] {
			n += len(f.Controls)
		}
	}
	return n
}

// Bounds returns the window rectangle for the current folder state.
func (c *ControlsPanel) Bounds() rl.Rectangle {
	th := c.renderer.Theme
	row := float32(th.LineHeight + 2)
	return rl.Rectangle{
		X:      float32(c.x),
		Y:      float32(c.y),
		Width:  float32(c.width),
		Height: float32(c.rows())*row + 24 + float32(th.Padding)*2,
	}
}

// Contains reports whether a visible panel covers (x, y).
func (c *ControlsPanel) Contains(x, y float32) bool {
	return c.handle.ControlsVisible() && rl.CheckCollisionPointRec(rl.Vector2{X: x, Y: y}, c.Bounds())
}

// Draw renders the panel when the handle reports it visible.
func (c *ControlsPanel) Draw() {
	if !c.handle.ControlsVisible() {
		return
	}
	th := c.renderer.Theme
	row := float32(th.LineHeight + 2)
	pad := float32(th.Padding)
	x := float32(c.x)
	w := float32(c.width)

	if gui.WindowBox(c.Bounds(), "Field Controls") {
		c.handle.SetControlsVisible(false)
		return
	}

	cur := c.handle.CurrentSettings()
	inner := w - pad*2
	y := float32(c.y) + 24 + pad/2
	for i, f := range c.folders {
		mark := "+"
		if c.open[i] {
			mark = "-"
		}
		if gui.Button(rl.Rectangle{X: x + pad, Y: y, Width: inner, Height: row - 4}, mark+" "+f.Title) {
			c.open[i] = !c.open[i]
		}
		y += row
		if !c.open[i] {
			continue
		}
		for _, ctl := range f.Controls {
			c.drawControl(ctl, &cur, x+pad, y, inner)
			y += row
		}
	}

	half := (inner - pad) / 2
	if gui.Button(rl.Rectangle{X: x + pad, Y: y, Width: half, Height: row - 4}, "Randomize") {
		c.Randomize()
	}
	if gui.Button(rl.Rectangle{X: x + pad + half + pad, Y: y, Width: half, Height: row - 4}, "Copy Settings") {
		if err := c.Copy(); err != nil {
			c.message(err.Error())
		}
	}
	y += row
	if gui.Button(rl.Rectangle{X: x + pad, Y: y, Width: inner, Height: row - 4}, "Download Settings") {
		if _, err := c.Download(); err != nil {
			c.message(err.Error())
		}
	}
}

func (c *ControlsPanel) drawControl(ctl ControlDescriptor, cur *settings.Settings, x, y, w float32) {
	th := c.renderer.Theme
	lockW := float32(14)

	if ctl.Key.IsBool() {
		on := cur.Get(ctl.Key) != 0
		if next := gui.CheckBox(rl.Rectangle{X: x, Y: y + 3, Width: 14, Height: 14}, ctl.Label, on); next != on {
			c.Set(ctl.Key, boolValue(next))
		}
	} else {
		rl.DrawText(ctl.Label, int32(x), int32(y)+4, th.FontSize, th.LabelColor)
		v := cur.Get(ctl.Key)
		sx := x + float32(th.LabelWidth)
		sw := w - float32(th.LabelWidth) - lockW - 56
		next := gui.SliderBar(rl.Rectangle{X: sx, Y: y + 2, Width: sw, Height: 14}, "", "",
			float32(v), float32(ctl.Range.Min), float32(ctl.Range.Max))
		if float64(next) != float64(float32(v)) {
			c.Set(ctl.Key, float64(next))
		}
		rl.DrawText(FormatValue(v, ctl.Range.Step), int32(sx+sw)+6, int32(y)+4, th.FontSize, th.ValueColor)
	}

	locked := c.handle.Locked(ctl.Key)
	if next := gui.CheckBox(rl.Rectangle{X: x + w - lockW, Y: y + 3, Width: 12, Height: 12}, "", locked); next != locked {
		c.ToggleLock(ctl.Key)
	}
}

// snap rounds v to the nearest step above min.
func snap(v, min, step float64) float64 {
	if step <= 0 {
		return v
	}
	n := math.Round((v - min) / step)
	out := min + n*step
	// Trim float noise so exports read cleanly
	d := decimals(step)
	p := math.Pow(10, float64(d))
	return math.Round(out*p) / p
}

// decimals returns the number of fractional digits in step.
func decimals(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// FormatValue prints v with as many decimals as the slider step.
func FormatValue(v, step float64) string {
	return strconv.FormatFloat(v, 'f', decimals(step), 64)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
