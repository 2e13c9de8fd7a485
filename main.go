package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/itsjaydesu/jayfolio-sub000/app"
	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/store"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	source := flag.String("settings", "", "Settings document URL or file (overrides config)")
	section := flag.String("section", "", "Influence section applied at start (overrides config)")
	headless := flag.Bool("headless", false, "Run without graphics")
	terminal := flag.Bool("terminal", false, "Render the field as text in the terminal")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	effect := flag.String("effect", "", "Timed effect to start on boot")
	chime := flag.Bool("chime", false, "Play a tone when an effect starts")
	ratio := flag.Float64("pixel-ratio", 0, "Device pixel ratio (0 = detect)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	// Set up slog (JSON to stderr so the terminal surface owns stdout)
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *source != "" {
		cfg.Settings.Source = *source
	}
	if *section != "" {
		cfg.Settings.Section = *section
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	timeout := time.Duration(cfg.Settings.Timeout * float64(time.Second))
	doc := store.Bootstrap(ctx, store.Open(cfg.Settings.Source), timeout)

	opts := app.Options{
		Seed:        rngSeed,
		OutputDir:   *outputDir,
		MaxFrames:   *maxFrames,
		Effect:      *effect,
		Chime:       *chime,
		DeviceRatio: *ratio,
	}

	var err error
	switch {
	case *headless:
		_, err = app.RunHeadless(ctx, cfg, doc, opts)
	case *terminal:
		err = app.RunTerminal(ctx, cfg, doc, opts, nil)
	default:
		err = app.RunWindow(cfg, doc, opts)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
