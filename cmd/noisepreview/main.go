// Noise preview tool - interactive view of the field noise kernels with sliders.
//
// Usage: go run ./cmd/noisepreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/itsjaydesu/jayfolio-sub000/noise"
)

const (
	windowWidth  = 1000
	windowHeight = 620
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 256
)

// NoiseParams holds the fractal sampling parameters.
type NoiseParams struct {
	Kernel      string
	Seed        int64
	Scale       float32 // Sample units across the preview
	Octaves     int
	Persistence float32
	Speed       float32 // z advance per second
}

func defaultParams() NoiseParams {
	return NoiseParams{
		Kernel:      "perlin",
		Seed:        1337,
		Scale:       6,
		Octaves:     3,
		Persistence: 0.5,
		Speed:       0.3,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Noise Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	src, _ := noise.New(params.Kernel, params.Seed)

	grid := make([]float32, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var z float32
	animating := false
	needsRegen := true

	for !rl.WindowShouldClose() {
		if animating {
			z += rl.GetFrameTime() * params.Speed
			needsRegen = true
		}
		if needsRegen {
			generate(grid, src, params, z)
			updateTexture(texture, grid)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		minVal, maxVal, avg := stats(grid)
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f  Avg: %.3f", minVal, maxVal, avg), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("z: %.2f", z), 15, statsY+20, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)
		rl.DrawText("Noise Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		slider := func(label, lo, hi string, v, min, max float32, format string) float32 {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			next := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				lo, hi, v, min, max,
			)
			rl.DrawText(fmt.Sprintf(format, v), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			panelY += 35
			return next
		}

		if v := slider("Scale (sample units across)", "0.5", "20", params.Scale, 0.5, 20, "%.1f"); v != params.Scale {
			params.Scale = v
			needsRegen = true
		}
		if v := slider("Octaves", "1", "6", float32(params.Octaves), 1, 6, "%.0f"); int(v) != params.Octaves {
			params.Octaves = int(v)
			needsRegen = true
		}
		if v := slider("Persistence (octave gain)", "0.1", "0.9", params.Persistence, 0.1, 0.9, "%.2f"); v != params.Persistence {
			params.Persistence = v
			needsRegen = true
		}
		params.Speed = slider("Speed (z per second)", "0", "2", params.Speed, 0, 2, "%.2f")
		if v := slider("Seed (simplex only)", "0", "99999", float32(params.Seed), 0, 99999, "%.0f"); int64(v) != params.Seed {
			params.Seed = int64(v)
			src, _ = noise.New(params.Kernel, params.Seed)
			needsRegen = true
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Kernel: "+params.Kernel) {
			params.Kernel = toggleText(params.Kernel == "perlin", "simplex", "perlin")
			src, _ = noise.New(params.Kernel, params.Seed)
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset z") {
			z = 0
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			src, _ = noise.New(params.Kernel, params.Seed)
			z = 0
			needsRegen = true
		}
		panelY += 55

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			text := ""
			for _, line := range yamlLines(params) {
				text += line + "\n"
			}
			rl.SetClipboardText(text)
		}

		rl.EndDrawing()
	}
}

func yamlLines(p NoiseParams) []string {
	return []string{
		"noise:",
		fmt.Sprintf("  kernel: %s", p.Kernel),
		fmt.Sprintf("  seed: %d", p.Seed),
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// generate fills the grid with fractal noise remapped to [0, 1].
func generate(grid []float32, src noise.Source, p NoiseParams, z float32) {
	step := float64(p.Scale) / gridSize
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			n := noise.Fractal(src, float64(x)*step, float64(y)*step, float64(z), p.Octaves, float64(p.Persistence))
			grid[y*gridSize+x] = float32(n*0.5 + 0.5)
		}
	}
}

func stats(grid []float32) (minVal, maxVal, avg float32) {
	minVal, maxVal = 1, 0
	var total float32
	for _, v := range grid {
		total += v
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal, total / float32(len(grid))
}

// updateTexture maps values through a dark-to-light blue ramp.
func updateTexture(texture rl.Texture2D, grid []float32) {
	pixels := make([]color.RGBA, len(grid))
	for i, v := range grid {
		pixels[i] = color.RGBA{
			R: uint8(10 + v*190),
			G: uint8(20 + v*220),
			B: uint8(60 + v*195),
			A: 255,
		}
	}
	rl.UpdateTexture(texture, pixels)
}
