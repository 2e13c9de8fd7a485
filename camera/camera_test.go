package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/itsjaydesu/jayfolio-sub000/config"
)

func TestNew(t *testing.T) {
	cam := New(config.Default())

	if cam.Position != (r3.Vec{X: 0, Y: 380, Z: 1500}) {
		t.Errorf("expected start at (0, 380, 1500), got %v", cam.Position)
	}
	if cam.FOV != 58 {
		t.Errorf("expected fov 58, got %v", cam.FOV)
	}
	if cam.Mobile() {
		t.Error("1280 wide viewport should use the desktop profile")
	}
}

func TestOriginProjectsToCenter(t *testing.T) {
	cam := New(config.Default())

	check := func() {
		t.Helper()
		sx, sy, _, ok := cam.Project(r3.Vec{})
		if !ok {
			t.Fatal("origin should be in front of the camera")
		}
		if math.Abs(sx-cam.ViewportW/2) > 1 || math.Abs(sy-cam.ViewportH/2) > 1 {
			t.Errorf("expected screen center (%v, %v), got (%v, %v)",
				cam.ViewportW/2, cam.ViewportH/2, sx, sy)
		}
	}
	check()

	cam.Resize(1920, 1080)
	check()

	cam.Resize(600, 900)
	if !cam.Mobile() {
		t.Error("600 wide viewport should use the mobile profile")
	}
	if cam.FOV != 68 {
		t.Errorf("expected mobile fov 68, got %v", cam.FOV)
	}
	check()
}

func TestProjectBehindCamera(t *testing.T) {
	cam := New(config.Default())
	if _, _, _, ok := cam.Project(r3.Vec{Y: 380, Z: 3000}); ok {
		t.Error("point behind the eye should not project")
	}
}

func TestGroundHitRoundtrip(t *testing.T) {
	cam := New(config.Default())

	x, z := cam.GroundHit(0, 0)
	if math.Abs(x) > 1e-6 || math.Abs(z) > 1e-6 {
		t.Errorf("center ray should hit the origin, got (%v, %v)", x, z)
	}

	for _, p := range []r3.Vec{{X: 300, Z: 200}, {X: -500, Z: -400}} {
		sx, sy, _, ok := cam.Project(p)
		if !ok {
			t.Fatalf("%v should be visible", p)
		}
		x, z := cam.GroundHit(cam.Normalize(sx, sy))
		if math.Abs(x-p.X) > 0.01 || math.Abs(z-p.Z) > 0.01 {
			t.Errorf("roundtrip failed: %v -> (%v, %v) -> (%v, %v)", p, sx, sy, x, z)
		}
	}
}

func TestGroundHitFallback(t *testing.T) {
	cam := New(config.Default())
	// Top of the screen looks above the horizon from a low eye
	cam.Position = r3.Vec{Y: 10, Z: 1500}
	x, z := cam.GroundHit(0, 1)
	if math.IsNaN(x) || math.IsNaN(z) || math.IsInf(x, 0) || math.IsInf(z, 0) {
		t.Fatalf("fallback produced (%v, %v)", x, z)
	}
}

func TestUpdateConvergesOnOrbit(t *testing.T) {
	cam := New(config.Default())
	for i := 0; i < 2000; i++ {
		cam.Update(1.0/60, 0, 0, false)
	}
	want := r3.Vec{X: 1180, Y: 340, Z: 1350}
	if r3.Norm(r3.Sub(cam.Position, want)) > 1 {
		t.Errorf("expected camera near %v, got %v", want, cam.Position)
	}

	before := cam.Position
	for i := 0; i < 60; i++ {
		cam.Update(1.0/60, 1, 1, false)
	}
	if cam.Position.X <= before.X || cam.Position.Y <= before.Y || cam.Position.Z >= before.Z {
		t.Errorf("pointer offset should pull right, up and forward: %v -> %v", before, cam.Position)
	}
}

func TestUpdateRotates(t *testing.T) {
	cam := New(config.Default())
	cam.Update(10, 0, 0, true)
	if math.Abs(cam.angle-1) > 1e-9 {
		t.Errorf("expected 1 radian after 10s at 0.1 rad/s, got %v", cam.angle)
	}
}
