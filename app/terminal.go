package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/renderer"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

// terminalCommand decodes a key event. Shift+1 arrives as '!' and layers
// the first effect.
func terminalCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyRune:
	default:
		return Command{}
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return Command{Action: ActionQuit}
	case r == ' ':
		return Command{Action: ActionPause}
	case r == 'r':
		return Command{Action: ActionRandomize}
	case r == 'c':
		return Command{Action: ActionCalm}
	case r == '!':
		return digitCommand(1, true)
	case r >= '0' && r <= '9':
		return digitCommand(int(r-'0'), false)
	}
	return Command{}
}

// terminalInput tracks button state between mouse events.
type terminalInput struct {
	host *Host
	term *renderer.Terminal
	held bool
}

// handle applies one event. It returns false on quit.
func (in *terminalInput) handle(ev tcell.Event) bool {
	sim := in.host.sim
	switch ev := ev.(type) {
	case *tcell.EventResize:
		in.term.Resize(0, 0)
	case *tcell.EventKey:
		return in.host.Dispatch(terminalCommand(ev))
	case *tcell.EventMouse:
		col, row := ev.Position()
		wx, wz := in.term.World(col, row)
		sim.PointerMoveWorld(wx, wz)

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !in.held {
			sim.PointerDownWorld(wx, wz)
		}
		in.held = down
	}
	return true
}

// RunTerminal animates the field on screen, a tcell screen or nil for the
// process terminal, until quit, ctx is done, or the frame limit is reached.
func RunTerminal(ctx context.Context, cfg *config.Config, doc settings.Document, opts Options, screen tcell.Screen) error {
	term := renderer.NewTerminal(screen)
	h, err := newHost(cfg, doc, term, opts)
	if err != nil {
		return err
	}
	defer h.Close()

	in := &terminalInput{host: h, term: term}
	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-term.Events():
			if !ok || !in.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := h.step(dt); err != nil {
				return err
			}
			if h.done() {
				return nil
			}
		}
	}
}
