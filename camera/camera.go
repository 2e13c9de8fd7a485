// Package camera provides the perspective orbit camera looking at the field.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/itsjaydesu/jayfolio-sub000/config"
)

var up = r3.Vec{Y: 1}

// Camera is a perspective camera orbiting the origin. Its position eases
// toward an orbit point offset by the smoothed pointer.
type Camera struct {
	// Position is the eye in world coordinates; Target is what it looks at
	Position r3.Vec
	Target   r3.Vec

	// Vertical field of view in degrees and clip planes
	FOV       float64
	Near, Far float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	cfg        config.CameraConfig
	breakpoint float64
	profile    config.CameraProfile
	mobile     bool
	angle      float64
}

// New creates a camera at the configured start position for a viewport of
// the configured screen size.
func New(cfg *config.Config) *Camera {
	c := &Camera{
		Position:   r3.Vec{X: cfg.Camera.Start[0], Y: cfg.Camera.Start[1], Z: cfg.Camera.Start[2]},
		Near:       cfg.Camera.Near,
		Far:        cfg.Camera.Far,
		cfg:        cfg.Camera,
		breakpoint: float64(cfg.Screen.MobileBreakpoint),
	}
	c.Resize(float64(cfg.Screen.Width), float64(cfg.Screen.Height))
	return c
}

// Resize updates the viewport and swaps the orbit profile when the width
// crosses the mobile breakpoint.
func (c *Camera) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c.ViewportW = w
	c.ViewportH = h
	c.mobile = w < c.breakpoint
	if c.mobile {
		c.profile = c.cfg.Mobile
	} else {
		c.profile = c.cfg.Desktop
	}
	c.FOV = c.profile.FOV
	if c.FOV <= 0 {
		c.FOV = c.cfg.FOV
	}
}

// Mobile reports whether the narrow-viewport profile is active.
func (c *Camera) Mobile() bool {
	return c.mobile
}

// Aspect returns the viewport width over height.
func (c *Camera) Aspect() float64 {
	return c.ViewportW / c.ViewportH
}

// Update advances the orbit by delta seconds when rotating and eases the
// eye toward the orbit point shifted by the pointer (px, py in [-1, 1]).
func (c *Camera) Update(delta, px, py float64, rotate bool) {
	p := c.profile
	if rotate {
		c.angle += delta * p.RotateSpeed
	}
	baseX := math.Cos(c.angle) * p.OrbitRadius
	baseZ := math.Sin(c.angle)*p.OrbitRadius*p.DepthScale + p.DepthOffset

	want := r3.Vec{
		X: baseX + px*p.PointerX,
		Y: p.Height + py*p.PointerY,
		Z: baseZ + py*p.PointerZ,
	}
	c.Position.X += (want.X - c.Position.X) * p.LerpX
	c.Position.Y += (want.Y - c.Position.Y) * p.LerpY
	c.Position.Z += (want.Z - c.Position.Z) * p.LerpZ
}

// Basis returns the camera's forward, right and up unit vectors.
func (c *Camera) Basis() (forward, right, camUp r3.Vec) {
	forward = r3.Unit(r3.Sub(c.Target, c.Position))
	right = r3.Unit(r3.Cross(forward, up))
	camUp = r3.Cross(right, forward)
	return forward, right, camUp
}

// focal returns the distance in pixels from the eye to the image plane.
func (c *Camera) focal() float64 {
	return (c.ViewportH / 2) / math.Tan(c.FOV*math.Pi/360)
}

// Project maps a world point to screen pixels. depth is the distance along
// the view axis; ok is false for points outside the clip range.
func (c *Camera) Project(p r3.Vec) (sx, sy, depth float64, ok bool) {
	f, r, u := c.Basis()
	d := r3.Sub(p, c.Position)
	depth = r3.Dot(d, f)
	if depth <= c.Near || depth >= c.Far {
		return 0, 0, depth, false
	}
	k := c.focal() / depth
	sx = c.ViewportW/2 + r3.Dot(d, r)*k
	sy = c.ViewportH/2 - r3.Dot(d, u)*k
	return sx, sy, depth, true
}

// Normalize converts screen pixels to [-1, 1] with Y up.
func (c *Camera) Normalize(sx, sy float64) (nx, ny float64) {
	return sx/c.ViewportW*2 - 1, -(sy/c.ViewportH*2 - 1)
}

// GroundHit casts a ray through normalized screen coords onto the Y=0
// plane. When the ray misses the plane the point is placed on an
// orthographic projection around the look target instead.
func (c *Camera) GroundHit(nx, ny float64) (x, z float64) {
	f, r, u := c.Basis()
	tanH := math.Tan(c.FOV * math.Pi / 360)
	dir := r3.Add(f, r3.Add(r3.Scale(nx*tanH*c.Aspect(), r), r3.Scale(ny*tanH, u)))

	if dir.Y < -1e-6 {
		t := -c.Position.Y / dir.Y
		hit := r3.Add(c.Position, r3.Scale(t, dir))
		return hit.X, hit.Z
	}

	half := r3.Norm(r3.Sub(c.Target, c.Position)) * tanH
	return c.Target.X + nx*half*c.Aspect(), c.Target.Z - ny*half
}
