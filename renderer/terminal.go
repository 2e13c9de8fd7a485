package renderer

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/itsjaydesu/jayfolio-sub000/scene"
)

// shades runs from empty to dense; brightness picks the glyph.
var shades = []rune(" .·:-=+*#%@")

// Terminal draws a top-down view of the field into a tcell screen. Each
// character cell shows the brightest point that falls inside it.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	wg     sync.WaitGroup

	cols, rows int
	halfW      float64
	halfD      float64
	bright     []float32
	lift       []float32

	once   sync.Once
	inited bool
}

// NewTerminal wraps screen. A nil screen uses the process terminal.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, events: make(chan tcell.Event, 64)}
}

// Init takes over the terminal and starts forwarding input events. The
// requested pixel size is ignored; the terminal decides its own size.
func (t *Terminal) Init(_, _ int) error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating terminal screen: %w", err)
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	t.cols, t.rows = t.screen.Size()
	t.inited = true

	t.wg.Add(1)
	go t.poll()
	return nil
}

// poll forwards events until the screen is finalized.
func (t *Terminal) poll() {
	defer t.wg.Done()
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.events <- ev
	}
}

// Events delivers key, mouse and resize events. It is closed after Close.
func (t *Terminal) Events() <-chan tcell.Event {
	return t.events
}

// Resize refreshes the cell grid from the terminal.
func (t *Terminal) Resize(_, _ int) {
	if !t.inited {
		return
	}
	t.screen.Sync()
	t.cols, t.rows = t.screen.Size()
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (cols, rows int) {
	return t.cols, t.rows
}

// World maps a character cell to the world point at its center.
func (t *Terminal) World(col, row int) (x, z float64) {
	if t.cols == 0 || t.rows == 0 {
		return 0, 0
	}
	x = ((float64(col)+0.5)/float64(t.cols)*2 - 1) * t.halfW
	z = ((float64(row)+0.5)/float64(t.rows)*2 - 1) * t.halfD
	return x, z
}

// Draw shades every cell from the points beneath it.
func (t *Terminal) Draw(v *scene.View) error {
	if !t.inited || t.cols == 0 || t.rows == 0 {
		return nil
	}
	g := v.Grid
	t.halfW, t.halfD = g.HalfWidth, g.HalfDepth
	t.accumulate(v)

	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			i := row*t.cols + col
			b := t.bright[i]
			if b <= 0 {
				t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			level := uint8(clampUnit(b) * 255)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(level), int32(level), int32(level)))
			t.screen.SetContent(col, row, Shade(b+t.lift[i]*0.25), nil, style)
		}
	}
	if v.Settings.ShowStats {
		t.drawStats(v)
	}
	g.Dirty = false
	t.screen.Show()
	return nil
}

// accumulate keeps the brightest point per cell and its height lift.
func (t *Terminal) accumulate(v *scene.View) {
	n := t.cols * t.rows
	if cap(t.bright) < n {
		t.bright = make([]float32, n)
		t.lift = make([]float32, n)
	}
	t.bright = t.bright[:n]
	t.lift = t.lift[:n]
	for i := range t.bright {
		t.bright[i] = 0
		t.lift[i] = 0
	}

	g := v.Grid
	opacity := float32(v.Settings.Opacity)
	for ix := 0; ix < g.AmountX; ix++ {
		col := ix * t.cols / g.AmountX
		for iy := 0; iy < g.AmountY; iy++ {
			row := iy * t.rows / g.AmountY
			p := ix*g.AmountY + iy
			b := g.Colors[p*3] * g.Scales[p] / 2 * opacity
			cell := row*t.cols + col
			if b > t.bright[cell] {
				t.bright[cell] = b
				t.lift[cell] = g.Positions[p*3+1] / 200
			}
		}
	}
}

func (t *Terminal) drawStats(v *scene.View) {
	text := fmt.Sprintf(" frame %d  t %.1fs ", v.Frame, v.Time)
	for _, k := range v.Effects {
		text += k.Label() + " "
	}
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range text {
		if i >= t.cols {
			break
		}
		t.screen.SetContent(i, 0, r, nil, style)
	}
}

// Shade picks the glyph for a brightness in [0, 1].
func Shade(b float32) rune {
	b = clampUnit(b)
	return shades[int(b*float32(len(shades)-1)+0.5)]
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Close restores the terminal and waits for the poller to exit.
func (t *Terminal) Close() {
	t.once.Do(func() {
		if !t.inited {
			close(t.events)
			return
		}
		t.screen.Fini()
		// Drain so the poller is not blocked on a full channel
		go func() {
			for range t.events {
			}
		}()
		t.wg.Wait()
		t.inited = false
	})
}
