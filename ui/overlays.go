package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayControls OverlayID = "controls"
	OverlayEffects  OverlayID = "effects"
	OverlayHelp     OverlayID = "help"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID   // Unique identifier
	Name        string      // Display name
	Description string      // What this overlay shows
	Key         int32       // Keyboard key to toggle (0 = no key)
	KeyLabel    string      // Key label for display
	Exclusive   []OverlayID // Other overlays to disable when this is enabled
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:          OverlayControls,
		Name:        "Field Controls",
		Description: "Parameter sliders, locks and export",
		Key:         rl.KeyTab,
		KeyLabel:    "Tab",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayEffects,
		Name:        "Effects",
		Description: "Timed effects and presets",
		Key:         rl.KeyE,
		KeyLabel:    "E",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayHelp,
		Name:        "Help",
		Description: "Keyboard and mouse reference",
		Key:         rl.KeyF1,
		KeyLabel:    "F1",
		Exclusive:   []OverlayID{OverlayEffects},
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = false
}

// Toggle switches an overlay on/off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}
	r.enabled[id] = enabled
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleKeyPress toggles the overlay bound to key.
// Returns the overlay ID, its new state, and whether a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}
