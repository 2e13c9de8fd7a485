package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles plain UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawToast draws a pill-shaped message centered near the bottom edge.
func (r *Renderer) DrawToast(screenW, screenH int32, text string, alpha float32) {
	size := r.Theme.FontSize + 2
	w := rl.MeasureText(text, size) + 32
	h := size + 20
	x := (screenW - w) / 2
	y := screenH - 60 - h

	bg := r.Theme.ToastBg
	bg.A = uint8(float32(bg.A) * alpha)
	fg := r.Theme.ToastText
	fg.A = uint8(float32(fg.A) * alpha)

	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 1, 12, bg)
	rl.DrawText(text, x+16, y+10, size, fg)
}
