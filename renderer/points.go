package renderer

import (
	_ "embed"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/scene"
)

//go:embed shaders/points.vs
var pointsVS string

//go:embed shaders/points.fs
var pointsFS string

// Points draws the field as soft additive sprites in a raylib window. The
// field is drawn into an offscreen target sized by the pixel ratio and
// scaled onto the window.
type Points struct {
	cfg *config.Config

	shader     rl.Shader
	opacityLoc int32
	sprite     rl.Texture2D
	target     rl.RenderTexture2D
	targetW    int32
	targetH    int32

	screenW, screenH int32
	background       rl.Color
	sprites          []Sprite
	initialized      bool

	// Overlay, when set, draws on top of the field inside the frame.
	Overlay func(v *scene.View)
	// Hidden opens the window invisibly, for offline capture.
	Hidden bool
}

// NewPoints creates the window surface. The window opens in Init.
func NewPoints(cfg *config.Config) *Points {
	bg := cfg.Render.Background
	return &Points{
		cfg:        cfg,
		background: rl.Color{R: bg[0], G: bg[1], B: bg[2], A: 255},
	}
}

// Init opens the window and loads GPU resources.
func (p *Points) Init(w, h int) error {
	if p.initialized {
		return nil
	}
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if p.Hidden {
		flags |= rl.FlagWindowHidden
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(w), int32(h), p.cfg.Screen.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("opening %dx%d window", w, h)
	}
	rl.SetTargetFPS(int32(p.cfg.Screen.TargetFPS))

	p.shader = rl.LoadShaderFromMemory(pointsVS, pointsFS)
	if !rl.IsShaderValid(p.shader) {
		rl.CloseWindow()
		return fmt.Errorf("compiling point shader")
	}
	p.opacityLoc = rl.GetShaderLocation(p.shader, "opacity")

	img := rl.GenImageColor(8, 8, rl.White)
	p.sprite = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(p.sprite, rl.FilterBilinear)
	rl.UnloadImage(img)

	p.screenW, p.screenH = int32(w), int32(h)
	p.initialized = true
	return nil
}

// Resize records the new window size. The render target follows on the next draw.
func (p *Points) Resize(w, h int) {
	p.screenW, p.screenH = int32(w), int32(h)
}

// ensureTarget reallocates the offscreen target when its size changes.
func (p *Points) ensureTarget(ratio float64) {
	w := int32(float64(p.screenW) * ratio)
	h := int32(float64(p.screenH) * ratio)
	if w == p.targetW && h == p.targetH {
		return
	}
	if p.targetW > 0 {
		rl.UnloadRenderTexture(p.target)
	}
	p.target = rl.LoadRenderTexture(w, h)
	rl.SetTextureFilter(p.target.Texture, rl.FilterBilinear)
	p.targetW, p.targetH = w, h
}

// Draw renders one frame.
func (p *Points) Draw(v *scene.View) error {
	if !p.initialized {
		return nil
	}
	scale := TargetScale(v.PixelRatio)
	p.ensureTarget(scale)
	p.sprites = Project(v, p.cfg.Render.PointBase, scale, p.sprites)
	v.Grid.Dirty = false

	rl.BeginTextureMode(p.target)
	rl.ClearBackground(p.background)
	rl.BeginShaderMode(p.shader)
	rl.SetShaderValue(p.shader, p.opacityLoc, []float32{float32(v.Settings.Opacity)}, rl.ShaderUniformFloat)
	rl.BeginBlendMode(rl.BlendAdditive)
	src := rl.Rectangle{Width: float32(p.sprite.Width), Height: float32(p.sprite.Height)}
	for i := range p.sprites {
		s := &p.sprites[i]
		half := s.Size / 2
		dst := rl.Rectangle{X: s.X - half, Y: s.Y - half, Width: s.Size, Height: s.Size}
		rl.DrawTexturePro(p.sprite, src, dst, rl.Vector2{}, 0, spriteColor(s))
	}
	rl.EndBlendMode()
	rl.EndShaderMode()
	rl.EndTextureMode()

	rl.BeginDrawing()
	rl.ClearBackground(p.background)
	// Render textures are stored upside down
	rl.DrawTexturePro(
		p.target.Texture,
		rl.Rectangle{Width: float32(p.targetW), Height: -float32(p.targetH)},
		rl.Rectangle{Width: float32(p.screenW), Height: float32(p.screenH)},
		rl.Vector2{},
		0,
		rl.White,
	)
	if v.Settings.ShowStats {
		p.drawStats(v)
	}
	if p.Overlay != nil {
		p.Overlay(v)
	}
	rl.EndDrawing()
	return nil
}

func (p *Points) drawStats(v *scene.View) {
	rl.DrawRectangle(0, 0, 220, 74, rl.Color{R: 0, G: 0, B: 34, A: 200})
	rl.DrawFPS(8, 6)
	rl.DrawText(fmt.Sprintf("points %d  drawn %d", v.Grid.Len(), len(p.sprites)), 8, 30, 12, rl.LightGray)

	names := make([]string, len(v.Effects))
	for i, k := range v.Effects {
		names[i] = k.Label()
	}
	label := "-"
	if len(names) > 0 {
		label = strings.Join(names, " + ")
	}
	rl.DrawText(fmt.Sprintf("effect %s  ratio %.1f", label, v.PixelRatio), 8, 48, 12, rl.LightGray)
}

func spriteColor(s *Sprite) rl.Color {
	return rl.Color{R: toByte(s.R), G: toByte(s.G), B: toByte(s.B), A: 255}
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// Capture writes the last rendered field, before overlays, to a PNG file.
func (p *Points) Capture(path string) error {
	if !p.initialized || p.targetW == 0 {
		return fmt.Errorf("no frame rendered")
	}
	img := rl.LoadImageFromTexture(p.target.Texture)
	defer rl.UnloadImage(img)
	// OpenGL stores render targets bottom-up
	rl.ImageFlipVertical(img)
	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("exporting %s", path)
	}
	return nil
}

// Close frees GPU resources and closes the window.
func (p *Points) Close() {
	if !p.initialized {
		return
	}
	if p.targetW > 0 {
		rl.UnloadRenderTexture(p.target)
	}
	rl.UnloadTexture(p.sprite)
	rl.UnloadShader(p.shader)
	rl.CloseWindow()
	p.initialized = false
}
