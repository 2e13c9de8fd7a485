package app

import (
	"context"
	"log/slog"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/renderer"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

// RunHeadless steps the field at a fixed rate with no display, as fast as
// the CPU allows, until the frame limit or ctx is done. It returns the
// number of frames simulated.
func RunHeadless(ctx context.Context, cfg *config.Config, doc settings.Document, opts Options) (int64, error) {
	h, err := newHost(cfg, doc, &renderer.Null{}, opts)
	if err != nil {
		return 0, err
	}
	defer h.Close()

	dt := 1.0 / 60
	if cfg.Screen.TargetFPS > 0 {
		dt = 1 / float64(cfg.Screen.TargetFPS)
	}

	slog.Info("starting headless run", "seed", opts.Seed, "max_frames", opts.MaxFrames, "dt", dt)
	for !h.done() {
		select {
		case <-ctx.Done():
			return h.sim.Frames(), nil
		default:
		}
		if err := h.step(dt); err != nil {
			return h.sim.Frames(), err
		}
	}
	slog.Info("max frames reached", "frames", h.sim.Frames(), "time", h.sim.Time())
	return h.sim.Frames(), nil
}
