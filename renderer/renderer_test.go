package renderer

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/itsjaydesu/jayfolio-sub000/camera"
	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/field"
	"github.com/itsjaydesu/jayfolio-sub000/scene"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

func newTestView(t *testing.T) *scene.View {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Workers = 1
	g := field.New(cfg)
	t.Cleanup(g.Close)
	for i := range g.Colors {
		g.Colors[i] = 0.5
	}
	return &scene.View{
		Grid:       g,
		Camera:     camera.New(cfg),
		Settings:   settings.Defaults(),
		PixelRatio: 1,
	}
}

func TestProjectSizesByDepth(t *testing.T) {
	v := newTestView(t)
	sprites := Project(v, 300, 1, nil)
	if len(sprites) == 0 {
		t.Fatal("expected visible sprites")
	}

	near, far := sprites[0], sprites[0]
	for _, s := range sprites {
		if s.X < -s.Size || s.X > float32(v.Camera.ViewportW)+s.Size {
			t.Fatalf("sprite outside the viewport: %+v", s)
		}
		if s.Depth < near.Depth {
			near = s
		}
		if s.Depth > far.Depth {
			far = s
		}
	}
	if near.Size <= far.Size {
		t.Errorf("near sprite (%v) should be larger than far sprite (%v)", near.Size, far.Size)
	}
	want := float32(v.Settings.PointSize * 300 / float64(near.Depth))
	if math.Abs(float64(near.Size-want)) > 1e-3 {
		t.Errorf("expected size %v, got %v", want, near.Size)
	}
	if near.R <= far.R {
		t.Error("fog should dim far sprites more than near ones")
	}
}

func TestProjectTargetScale(t *testing.T) {
	v := newTestView(t)
	one := Project(v, 300, 1, nil)
	two := Project(v, 300, 2, nil)
	if len(one) != len(two) {
		t.Fatalf("scale should not change visibility: %d vs %d", len(one), len(two))
	}
	if math.Abs(float64(two[0].X-2*one[0].X)) > 1e-3 {
		t.Errorf("expected doubled x, got %v and %v", one[0].X, two[0].X)
	}
}

func TestProjectReusesBuffer(t *testing.T) {
	v := newTestView(t)
	buf := Project(v, 300, 1, nil)
	again := Project(v, 300, 1, buf)
	if &again[0] != &buf[0] {
		t.Error("expected the buffer to be reused")
	}
}

func TestFogFactor(t *testing.T) {
	if FogFactor(0, 5000) != 1 {
		t.Error("zero density should not fog")
	}
	if FogFactor(0.0012, 500) <= FogFactor(0.0012, 1500) {
		t.Error("fog should grow with depth")
	}
	if got := FogFactor(0.001, 1000); math.Abs(got-math.Exp(-1)) > 1e-12 {
		t.Errorf("expected e^-1, got %v", got)
	}
}

func TestShade(t *testing.T) {
	if Shade(0) != ' ' || Shade(1) != '@' {
		t.Errorf("unexpected end glyphs %q %q", Shade(0), Shade(1))
	}
	if Shade(2) != '@' || Shade(-1) != ' ' {
		t.Error("brightness should clamp")
	}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	return tcell.NewSimulationScreen("UTF-8")
}

func TestTerminalDraw(t *testing.T) {
	v := newTestView(t)
	screen := newSimScreen(t)
	term := NewTerminal(screen)
	if err := term.Init(0, 0); err != nil {
		t.Fatal(err)
	}
	defer term.Close()
	screen.SetSize(35, 14)
	term.Resize(0, 0)

	v.Grid.Dirty = true
	if err := term.Draw(v); err != nil {
		t.Fatal(err)
	}
	if v.Grid.Dirty {
		t.Error("draw should clear the dirty flag")
	}

	cols, rows := term.Size()
	if cols != 35 || rows != 14 {
		t.Fatalf("expected 35x14, got %dx%d", cols, rows)
	}
	lit := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r, _, _, _ := screen.GetContent(col, row)
			if r != ' ' {
				lit++
			}
		}
	}
	if lit != cols*rows {
		t.Errorf("expected every cell lit, got %d of %d", lit, cols*rows)
	}
}

func TestTerminalWorldMapping(t *testing.T) {
	v := newTestView(t)
	screen := newSimScreen(t)
	term := NewTerminal(screen)
	if err := term.Init(0, 0); err != nil {
		t.Fatal(err)
	}
	defer term.Close()
	screen.SetSize(10, 10)
	term.Resize(0, 0)
	term.Draw(v)

	x, z := term.World(0, 0)
	if x >= 0 || z >= 0 {
		t.Errorf("top-left cell should map to negative x and z, got (%v, %v)", x, z)
	}
	x, z = term.World(9, 9)
	if x <= 0 || z <= 0 {
		t.Errorf("bottom-right cell should map to positive x and z, got (%v, %v)", x, z)
	}
	if x > v.Grid.HalfWidth || z > v.Grid.HalfDepth {
		t.Error("cell centers should stay inside the lattice")
	}
}

func TestTerminalForwardsEvents(t *testing.T) {
	screen := newSimScreen(t)
	term := NewTerminal(screen)
	if err := term.Init(0, 0); err != nil {
		t.Fatal(err)
	}
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-term.Events():
			if k, ok := ev.(*tcell.EventKey); ok && k.Rune() == 'q' {
				term.Close()
				term.Close()
				return
			}
		case <-timeout:
			t.Fatal("key event was not forwarded")
		}
	}
}

func TestNullSurface(t *testing.T) {
	v := newTestView(t)
	var n Null
	n.Init(100, 50)
	v.Grid.Dirty = true
	n.Draw(v)
	if n.Frames != 1 || v.Grid.Dirty {
		t.Error("null surface should count frames and consume the dirty flag")
	}
}
