package renderer

import "github.com/itsjaydesu/jayfolio-sub000/scene"

// Null is a headless surface. It counts frames and clears the grid's dirty
// flag so the simulation behaves as if something were drawing.
type Null struct {
	Frames int64
	Width  int
	Height int
}

func (n *Null) Init(w, h int) error {
	n.Width, n.Height = w, h
	return nil
}

func (n *Null) Draw(v *scene.View) error {
	n.Frames++
	v.Grid.Dirty = false
	return nil
}

func (n *Null) Resize(w, h int) {
	n.Width, n.Height = w, h
}

func (n *Null) Close() {}
