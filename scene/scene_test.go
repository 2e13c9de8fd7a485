package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/itsjaydesu/jayfolio-sub000/config"
	"github.com/itsjaydesu/jayfolio-sub000/effects"
	"github.com/itsjaydesu/jayfolio-sub000/settings"
	"github.com/itsjaydesu/jayfolio-sub000/transient"
)

type fakeSurface struct {
	inits, draws, closes int
	width, height        int
	last                 View
	initErr              error
}

func (f *fakeSurface) Init(w, h int) error {
	f.inits++
	f.width, f.height = w, h
	return f.initErr
}

func (f *fakeSurface) Draw(v *View) error {
	f.draws++
	f.last = *v
	return nil
}

func (f *fakeSurface) Resize(w, h int) {
	f.width, f.height = w, h
}

func (f *fakeSurface) Close() {
	f.closes++
}

type change struct {
	active bool
	effect string
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	small := []byte("grid:\n  amount_x: 24\n  amount_y: 24\n  workers: 1\n")
	if err := os.WriteFile(path, small, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func newTestSim(t *testing.T, opts ...Option) (*Simulation, *fakeSurface, *[]change) {
	t.Helper()
	surf := &fakeSurface{}
	opts = append([]Option{WithSurface(surf), WithSeed(7)}, opts...)
	sim, err := New(testConfig(t), settings.DefaultDocument(), opts...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sim.Close)

	var log []change
	sim.OnEffectChange(func(active bool, effect string) {
		log = append(log, change{active, effect})
	})
	return sim, surf, &log
}

func TestClickBurstAndDebounce(t *testing.T) {
	sim, _, _ := newTestSim(t)

	if !sim.pointerDownWorld(0, 0) {
		t.Fatal("first click should register")
	}
	seen := map[transient.Profile]bool{}
	for _, rp := range sim.ripples.Ripples() {
		if rp.X != 0 || rp.Z != 0 {
			t.Errorf("%v ripple not centered at origin: (%v, %v)", rp.Profile, rp.X, rp.Z)
		}
		seen[rp.Profile] = true
	}
	for _, p := range []transient.Profile{
		transient.ProfileDropletFlash,
		transient.ProfileDropletFront,
		transient.ProfileDropletInner,
		transient.ProfileDropletCaustic,
		transient.ProfileDropletTrail,
	} {
		if !seen[p] {
			t.Errorf("missing %v ripple", p)
		}
	}
	if _, bursts, _ := sim.ripples.Counts(); bursts != 1 {
		t.Errorf("expected one click burst, got %d", bursts)
	}

	before := len(sim.ripples.Ripples())
	sim.clock = 0.75
	if sim.pointerDownWorld(0, 0) {
		t.Error("click 750ms later should be debounced")
	}
	if len(sim.ripples.Ripples()) != before {
		t.Error("debounced click should not add ripples")
	}
	sim.clock = 0.751
	if !sim.pointerDownWorld(0, 0) {
		t.Error("click 751ms later should register")
	}
}

func TestPointerDownAtScreenCenterHitsOrigin(t *testing.T) {
	sim, _, _ := newTestSim(t)
	cam := sim.Camera()
	sim.PointerDown(cam.ViewportW/2, cam.ViewportH/2)

	rps := sim.ripples.Ripples()
	if len(rps) == 0 {
		t.Fatal("expected ripples")
	}
	if math.Abs(rps[0].X) > 1e-3 || math.Abs(rps[0].Z) > 1e-3 {
		t.Errorf("expected burst at origin, got (%v, %v)", rps[0].X, rps[0].Z)
	}
}

func TestRetriggerRestartsStarfield(t *testing.T) {
	sim, _, log := newTestSim(t)

	if !sim.TriggerEffect("starfield", false) {
		t.Fatal("starfield should start")
	}
	sim.clock = 5
	if !sim.TriggerEffect("starfield", false) {
		t.Fatal("starfield should restart")
	}
	if got := sim.effects.Running(); len(got) != 1 || got[0] != effects.Starfield {
		t.Fatalf("expected a single starfield, got %v", got)
	}

	// The first activation would have expired at 22s
	sim.clock = 26
	sim.Frame(0.05)
	if sim.effects.Fading(effects.Starfield) {
		t.Error("restarted starfield should time from the second trigger")
	}

	sim.clock = 27
	sim.Frame(0.05)
	if !sim.effects.Fading(effects.Starfield) {
		t.Error("expected starfield to begin its exit 22s after the restart")
	}

	want := []change{{true, "starfield"}, {true, "starfield"}, {false, "starfield"}}
	if len(*log) != len(want) {
		t.Fatalf("expected %v, got %v", want, *log)
	}
	for i := range want {
		if (*log)[i] != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], (*log)[i])
		}
	}
}

func TestImmediateSettings(t *testing.T) {
	sim, _, _ := newTestSim(t)
	sim.ApplySettings(settings.Partial{settings.Amplitude: 999}, true)

	if sim.CurrentSettings().Amplitude != 999 || sim.TargetSettings().Amplitude != 999 {
		t.Fatal("immediate apply should set current and target")
	}
	sim.Frame(1.0 / 60)
	if got := sim.CurrentSettings().Amplitude; got != 999 {
		t.Errorf("expected amplitude 999 on the next frame, got %v", got)
	}
}

func TestEasedSettings(t *testing.T) {
	sim, _, _ := newTestSim(t)
	start := sim.CurrentSettings().Amplitude
	sim.ApplySettings(settings.Partial{settings.Amplitude: start + 100}, false)
	sim.Frame(1.0 / 60)
	got := sim.CurrentSettings().Amplitude
	if got <= start || got >= start+100 {
		t.Errorf("expected amplitude between %v and %v, got %v", start, start+100, got)
	}
}

func TestUnknownEffect(t *testing.T) {
	sim, _, log := newTestSim(t)
	if sim.TriggerEffect("laserShow", false) {
		t.Error("unknown effect should report false")
	}
	if sim.effects.Active() || len(*log) != 0 {
		t.Error("unknown effect should change nothing")
	}
}

func TestPauseConsumesDelta(t *testing.T) {
	sim, surf, _ := newTestSim(t)
	sim.SetPaused(true)
	for i := 0; i < 10; i++ {
		sim.Frame(1.0 / 60)
	}
	if sim.Time() != 0 || surf.draws != 0 {
		t.Errorf("paused frames should not simulate or draw, time=%v draws=%d", sim.Time(), surf.draws)
	}

	sim.SetPaused(false)
	sim.Frame(1.0 / 60)
	if math.Abs(sim.Time()-1.0/60) > 1e-12 {
		t.Errorf("expected one frame of time after resume, got %v", sim.Time())
	}
	if surf.draws != 1 {
		t.Errorf("expected one draw, got %d", surf.draws)
	}
}

func TestDeltaClamp(t *testing.T) {
	sim, _, _ := newTestSim(t)
	sim.Frame(5)
	if math.Abs(sim.Time()-0.1) > 1e-12 {
		t.Errorf("expected long frame clamped to 0.1s, got %v", sim.Time())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	sim, surf, log := newTestSim(t)
	sim.TriggerEffect("jitter", false)
	sim.Close()
	sim.Close()

	if surf.closes != 1 {
		t.Errorf("expected one surface close, got %d", surf.closes)
	}
	n := len(*log)

	// Late calls are no-ops
	if sim.TriggerEffect("spiralFlow", false) {
		t.Error("trigger after close should fail")
	}
	sim.AddRipple(0, 0, 1)
	sim.PointerMove(10, 10)
	sim.PointerDown(10, 10)
	sim.Resize(100, 100)
	if err := sim.Frame(1.0 / 60); err != nil {
		t.Error(err)
	}
	if len(*log) != n {
		t.Error("no callbacks expected after close")
	}
	if surf.draws != 0 {
		t.Error("closed simulation should not draw")
	}
}

func TestNoSurfaceRendersNothing(t *testing.T) {
	sim, err := New(testConfig(t), settings.DefaultDocument())
	if err != nil {
		t.Fatal(err)
	}
	defer sim.Close()
	if err := sim.Frame(1.0 / 60); err != nil {
		t.Error(err)
	}
	if err := sim.Render(); err != nil {
		t.Error(err)
	}
	if sim.Frames() != 1 {
		t.Errorf("expected the frame to simulate, got %d", sim.Frames())
	}
}

func TestSurfaceInitFailure(t *testing.T) {
	surf := &fakeSurface{initErr: errors.New("no display")}
	if _, err := New(testConfig(t), settings.DefaultDocument(), WithSurface(surf)); err == nil {
		t.Error("expected surface init error")
	}
}

func TestPixelRatioBoot(t *testing.T) {
	sim, surf, _ := newTestSim(t)
	sim.SetDeviceRatio(3)

	sim.Frame(1.0 / 60)
	if surf.last.PixelRatio != 1 {
		t.Errorf("first frame should draw at boot ratio 1, got %v", surf.last.PixelRatio)
	}
	sim.Frame(1.0 / 60)
	if surf.last.PixelRatio != 2 {
		t.Errorf("later frames should use min(device, 2), got %v", surf.last.PixelRatio)
	}
}

func TestContextMenuDropsSlowLayers(t *testing.T) {
	sim, _, _ := newTestSim(t)
	sim.ContextMenu(400, 300)

	got := map[transient.Profile]transient.Ripple{}
	for _, rp := range sim.ripples.Ripples() {
		if !rp.SlowMotion {
			t.Errorf("%v ripple should be slow-motion", rp.Profile)
		}
		got[rp.Profile] = rp
	}
	want := map[transient.Profile]transient.Easing{
		transient.ProfilePrimary:  transient.EaseOutQuint,
		transient.ProfileHarmonic: transient.EaseInOutSine,
		transient.ProfileEcho:     transient.EaseInOutQuart,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d layers, got %d", len(want), len(got))
	}
	for p, e := range want {
		rp, ok := got[p]
		if !ok {
			t.Errorf("missing %v layer", p)
			continue
		}
		if rp.Easing != e {
			t.Errorf("%v layer: expected easing %v, got %v", p, e, rp.Easing)
		}
	}
	if got[transient.ProfileEcho].Start <= got[transient.ProfilePrimary].Start {
		t.Error("echo layer should trail the primary ring")
	}
}

func TestZeroStrengthHandleRippleIsSilent(t *testing.T) {
	sim, _, _ := newTestSim(t)
	sim.AddRipple(0, 0, 0)
	rps := sim.ripples.Ripples()
	if len(rps) != 1 || rps[0].Strength != 0 {
		t.Fatalf("expected one zero-strength ripple, got %+v", rps)
	}
}

func TestResizeSwapsProfile(t *testing.T) {
	sim, surf, _ := newTestSim(t)
	sim.Resize(600, 900)
	if !sim.Camera().Mobile() {
		t.Error("narrow viewport should use the mobile profile")
	}
	if surf.width != 600 || surf.height != 900 {
		t.Errorf("surface not resized: %dx%d", surf.width, surf.height)
	}
}

func TestPresets(t *testing.T) {
	sim, _, _ := newTestSim(t)

	if !sim.ApplyFieldEffect(PresetDropBall) {
		t.Fatal("dropBall should apply")
	}
	if n := len(sim.ripples.Ripples()); n != 20 {
		t.Errorf("expected 20 dropBall ripples, got %d", n)
	}
	delayed := 0
	for _, rp := range sim.ripples.Ripples() {
		if rp.Start > sim.Time() {
			delayed++
		}
	}
	if delayed != 19 {
		t.Errorf("expected 19 scheduled ripples, got %d", delayed)
	}

	sim.ripples.Clear()
	sim.ApplyFieldEffect(PresetShockwave)
	if n := len(sim.ripples.Ripples()); n != 39 {
		t.Errorf("expected 39 shockwave ripples, got %d", n)
	}

	sim.ApplyFieldEffect(PresetSwirlPulse)
	if got := sim.TargetSettings().SwirlStrength; got != 2.5 {
		t.Errorf("expected swirl target 2.5, got %v", got)
	}
	sim.ApplyFieldEffect(PresetCalmReset)
	if got := sim.TargetSettings().SwirlStrength; got != settings.Defaults().SwirlStrength {
		t.Errorf("calm reset should restore swirl, got %v", got)
	}

	if !sim.ApplyFieldEffect("harmonicPendulum") {
		t.Error("timed effect names should pass through")
	}
	if sim.ApplyFieldEffect("bogus") {
		t.Error("unknown preset should report false")
	}
}

func TestMenuInfluenceRespectsLocks(t *testing.T) {
	sim, _, _ := newTestSim(t)
	sim.ApplyMenuInfluence("projects")
	if got := sim.TargetSettings().SwirlStrength; got != 1.2 {
		t.Errorf("expected projects swirl 1.2, got %v", got)
	}
	if got := sim.TargetSettings().PointSize; got != settings.Defaults().PointSize {
		t.Errorf("locked point size should not move, got %v", got)
	}

	before := sim.TargetSettings()
	sim.ApplyMenuInfluence("nowhere")
	if sim.TargetSettings() != before {
		t.Error("unknown section should change nothing")
	}
}

func TestSimulationsAreIndependent(t *testing.T) {
	a, _, _ := newTestSim(t)
	b, _, _ := newTestSim(t)

	a.TriggerEffect("reactionDiffusionBloom", false)
	a.AddRipple(0, 0, 1)
	a.Frame(1.0 / 60)
	b.Frame(1.0 / 60)

	if b.effects.Active() || len(b.ripples.Ripples()) != 0 {
		t.Error("state leaked between simulations")
	}
}

func TestSnapshot(t *testing.T) {
	sim, _, _ := newTestSim(t)
	sim.TriggerEffect("spiralFlow", false)
	sim.AddRipple(0, 0, 1)
	sim.Frame(1.0 / 60)

	snap := sim.Snapshot()
	if snap.Frame != 1 || snap.Ripples != 1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if len(snap.Effects) != 1 || snap.Effects[0] != "spiralFlow" {
		t.Errorf("expected spiralFlow in snapshot, got %v", snap.Effects)
	}
	if len(snap.Heights) != sim.Grid().Len() {
		t.Errorf("expected %d heights, got %d", sim.Grid().Len(), len(snap.Heights))
	}
}

func TestWorldPointerHandlers(t *testing.T) {
	sim, _, _ := newTestSim(t)
	hw := sim.Grid().HalfWidth

	sim.PointerMoveWorld(hw*2, 0)
	if sim.pointer.X != 1 {
		t.Errorf("expected normalized x clamped to 1, got %v", sim.pointer.X)
	}
	if !sim.PointerDownWorld(100, -50) {
		t.Fatal("expected press to register")
	}
	if rp := sim.ripples.Ripples()[0]; rp.X != 100 || rp.Z != -50 {
		t.Errorf("expected burst at (100, -50), got (%v, %v)", rp.X, rp.Z)
	}
	sim.Close()
	if sim.PointerDownWorld(0, 0) {
		t.Error("press after close should be ignored")
	}
}
