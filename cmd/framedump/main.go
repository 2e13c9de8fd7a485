// Frame dump tool - renders the field offscreen for a number of frames and
// writes the final frame to a PNG file for inspection.
//
// Usage: go run ./cmd/framedump -frames 240 -effect spiralFlow -out field.png
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/renderer"
	"github.com/itsjaydesu/jayfolio-sub000/scene"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "field.png", "Output PNG path")
	frames := flag.Int("frames", 240, "Frames to simulate before capture")
	effect := flag.String("effect", "", "Timed effect or preset to apply first")
	section := flag.String("section", "", "Influence section to apply first")
	ratio := flag.Float64("pixel-ratio", 1, "Pixel ratio of the render target")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	points := renderer.NewPoints(cfg)
	points.Hidden = true
	sim, err := scene.New(cfg, settings.DefaultDocument(), scene.WithSurface(points), scene.WithSeed(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create simulation: %v\n", err)
		os.Exit(1)
	}
	defer sim.Close()

	sim.SetDeviceRatio(*ratio)
	if *section != "" {
		sim.ApplyMenuInfluence(*section)
	}
	if *effect != "" && !sim.ApplyFieldEffect(*effect) {
		fmt.Fprintf(os.Stderr, "Unknown effect: %s\n", *effect)
		os.Exit(1)
	}

	for i := 0; i < *frames; i++ {
		if err := sim.Frame(1.0 / 60); err != nil {
			fmt.Fprintf(os.Stderr, "Frame %d failed: %v\n", i, err)
			os.Exit(1)
		}
	}

	if err := points.Capture(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Field rendered to: %s (%d frames, t=%.2fs)\n", *outPath, sim.Frames(), sim.Time())
}
