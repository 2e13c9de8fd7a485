package settings

import "math/rand"

// RenderKeys are the parameters that also drive surface uniforms.
var RenderKeys = []Key{Opacity, PointSize, FogDensity, ShowStats}

// Model holds the current and target parameter records. Current eases toward
// Target by a fixed factor each Step; toggles apply immediately.
type Model struct {
	Current Settings
	Target  Settings

	factor     float64
	base       Settings
	influences map[string]Partial
	locked     [numKeys]bool
	published  Settings
}

// NewModel creates a model starting at base with the given easing factor.
// influences overlays the compiled-in table; sections absent from it are ignored.
func NewModel(factor float64, base Settings, influences map[string]Partial) *Model {
	m := &Model{
		Current:    base,
		Target:     base,
		factor:     factor,
		base:       base,
		influences: DefaultInfluences(),
		published:  base,
	}
	for section, p := range influences {
		if def, ok := m.influences[section]; ok {
			m.influences[section] = def.Merge(p)
		}
	}
	for _, k := range DefaultLocked {
		m.locked[k] = true
	}
	return m
}

// Base returns the record ResetToDefaults restores.
func (m *Model) Base() Settings {
	return m.base
}

// Apply sets the target for k. With immediate the current value snaps too.
func (m *Model) Apply(k Key, v float64, immediate bool) {
	m.Target.Set(k, v)
	if immediate || k.IsBool() {
		m.Current.Set(k, v)
	}
}

// ApplyPartial applies every entry of p.
func (m *Model) ApplyPartial(p Partial, immediate bool) {
	for _, k := range p.SortedKeys() {
		m.Apply(k, p[k], immediate)
	}
}

// ResetToDefaults restores the base record into the target. Numeric keys
// then ease back over the following frames; toggles snap.
func (m *Model) ResetToDefaults() {
	m.Target = m.base
	m.Current.AutoRotate = m.base.AutoRotate
	m.Current.ShowStats = m.base.ShowStats
}

// SyncTargetToCurrent drops any pending ease so later changes start from now.
func (m *Model) SyncTargetToCurrent() {
	m.Target = m.Current
}

// Step advances one frame of easing.
func (m *Model) Step() {
	for _, k := range Keys() {
		if k.IsBool() {
			m.Current.Set(k, m.Target.Get(k))
			continue
		}
		cur := m.Current.Get(k)
		m.Current.Set(k, cur+(m.Target.Get(k)-cur)*m.factor)
	}
}

// Changed returns the render keys whose current value moved since the last
// call and marks them published.
func (m *Model) Changed() []Key {
	var changed []Key
	for _, k := range RenderKeys {
		v := m.Current.Get(k)
		if v != m.published.Get(k) {
			changed = append(changed, k)
			m.published.Set(k, v)
		}
	}
	return changed
}

// SetLocked marks k as fixed against influences and randomization.
func (m *Model) SetLocked(k Key, locked bool) {
	if k >= 0 && k < numKeys {
		m.locked[k] = locked
	}
}

// Locked reports whether k is fixed.
func (m *Model) Locked(k Key) bool {
	if k < 0 || k >= numKeys {
		return false
	}
	return m.locked[k]
}

// LockedKeys returns the fixed state of every key.
func (m *Model) LockedKeys() map[Key]bool {
	out := make(map[Key]bool, numKeys)
	for _, k := range Keys() {
		out[k] = m.locked[k]
	}
	return out
}

// Influence returns the overrides for section.
func (m *Model) Influence(section string) (Partial, bool) {
	p, ok := m.influences[section]
	return p, ok
}

// ApplyInfluence eases toward the section's overrides, skipping locked keys.
// It returns the keys applied; unknown sections apply nothing.
func (m *Model) ApplyInfluence(section string) []Key {
	p, ok := m.influences[section]
	if !ok {
		return nil
	}
	var applied []Key
	for _, k := range p.SortedKeys() {
		if m.locked[k] {
			continue
		}
		m.Apply(k, p[k], false)
		applied = append(applied, k)
	}
	return applied
}

// Randomize returns random values for every unlocked key. The caller routes
// them through the same apply path as any other partial.
func (m *Model) Randomize(rng *rand.Rand) Partial {
	return RandomPartial(rng, m.Locked)
}

// Export is the shareable snapshot of current values and lock state.
type Export struct {
	Settings Settings        `json:"settings"`
	Fixed    map[string]bool `json:"fixed"`
}

// Export snapshots the current values and lock state.
func (m *Model) Export() Export {
	fixed := make(map[string]bool, numKeys)
	for _, k := range Keys() {
		fixed[k.String()] = m.locked[k]
	}
	return Export{Settings: m.Current, Fixed: fixed}
}
