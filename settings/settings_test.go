package settings

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"
)

func newTestModel() *Model {
	return NewModel(0.05, Defaults(), nil)
}

func TestKeyNamesRoundtrip(t *testing.T) {
	if len(Keys()) != 18 {
		t.Fatalf("expected 18 keys, got %d", len(Keys()))
	}
	for _, k := range Keys() {
		got, ok := ParseKey(k.String())
		if !ok || got != k {
			t.Errorf("ParseKey(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKey("glitter"); ok {
		t.Error("expected unknown key to fail")
	}
}

func TestEasingMonotonicNoOvershoot(t *testing.T) {
	m := newTestModel()
	m.Apply(Amplitude, 70, true)
	m.Apply(Amplitude, 140, false)

	prev := m.Current.Amplitude
	steps := 0
	for math.Abs(m.Current.Amplitude-140) > 0.01 {
		m.Step()
		steps++
		cur := m.Current.Amplitude
		if cur < prev {
			t.Fatalf("step %d: amplitude decreased %v -> %v", steps, prev, cur)
		}
		if cur > 140 {
			t.Fatalf("step %d: amplitude overshot to %v", steps, cur)
		}
		prev = cur
		if steps > 500 {
			t.Fatalf("did not converge within 500 steps, at %v", cur)
		}
	}
	// (1-0.05)^n * 70 < 0.01 needs about 173 steps
	if steps < 150 || steps > 200 {
		t.Errorf("unexpected convergence step count %d", steps)
	}
}

func TestApplyImmediate(t *testing.T) {
	m := newTestModel()
	m.Apply(Amplitude, 999, true)
	if m.Current.Amplitude != 999 || m.Target.Amplitude != 999 {
		t.Errorf("expected current and target 999, got %v/%v", m.Current.Amplitude, m.Target.Amplitude)
	}
	m.Step()
	if m.Current.Amplitude != 999 {
		t.Errorf("expected amplitude to stay at 999 after step, got %v", m.Current.Amplitude)
	}
}

func TestBoolKeysApplyImmediately(t *testing.T) {
	m := newTestModel()
	m.Apply(AutoRotate, 0, false)
	if m.Current.AutoRotate {
		t.Error("expected autoRotate to switch off without easing")
	}
}

func TestResetToDefaultsEases(t *testing.T) {
	m := newTestModel()
	m.Apply(Amplitude, 120, true)
	m.Apply(ShowStats, 1, false)

	m.ResetToDefaults()
	if m.Target.Amplitude != 50 {
		t.Errorf("expected target amplitude 50, got %v", m.Target.Amplitude)
	}
	if m.Current.Amplitude != 120 {
		t.Errorf("expected current amplitude to still be 120 before stepping, got %v", m.Current.Amplitude)
	}
	if m.Current.ShowStats {
		t.Error("expected showStats to reset immediately")
	}
	m.Step()
	if m.Current.Amplitude >= 120 || m.Current.Amplitude <= 50 {
		t.Errorf("expected amplitude to ease between 50 and 120, got %v", m.Current.Amplitude)
	}
}

func TestSyncTargetToCurrent(t *testing.T) {
	m := newTestModel()
	m.Apply(SwirlStrength, 3, false)
	m.Step()
	m.SyncTargetToCurrent()
	if m.Target.SwirlStrength != m.Current.SwirlStrength {
		t.Errorf("target %v != current %v", m.Target.SwirlStrength, m.Current.SwirlStrength)
	}
}

func TestApplyInfluenceSkipsLocked(t *testing.T) {
	m := newTestModel()

	applied := m.ApplyInfluence("projects")
	for _, k := range applied {
		if k == PointSize {
			t.Error("pointSize is locked by default and must not be applied")
		}
	}
	if m.Target.SwirlStrength != 1.2 {
		t.Errorf("expected swirl target 1.2, got %v", m.Target.SwirlStrength)
	}
	if m.Target.PointSize != 26 {
		t.Errorf("expected locked pointSize to stay 26, got %v", m.Target.PointSize)
	}

	m.SetLocked(PointSize, false)
	m.ApplyInfluence("projects")
	if m.Target.PointSize != 24 {
		t.Errorf("expected unlocked pointSize 24, got %v", m.Target.PointSize)
	}
}

func TestApplyInfluenceUnknownSection(t *testing.T) {
	m := newTestModel()
	before := m.Target
	if applied := m.ApplyInfluence("nowhere"); applied != nil {
		t.Errorf("expected nothing applied, got %v", applied)
	}
	if m.Target != before {
		t.Error("unknown section must not change target")
	}
}

func TestFetchedInfluencesOverlayDefaults(t *testing.T) {
	m := NewModel(0.05, Defaults(), map[string]Partial{
		"sounds": {RippleStrength: 80},
		"bogus":  {Amplitude: 1},
	})
	p, ok := m.Influence("sounds")
	if !ok {
		t.Fatal("expected sounds section")
	}
	if p[RippleStrength] != 80 || p[MouseInfluence] != 0.003 {
		t.Errorf("unexpected merged section %v", p)
	}
	if _, ok := m.Influence("bogus"); ok {
		t.Error("sections absent from the default table must be dropped")
	}
}

func TestRandomizeRespectsLocks(t *testing.T) {
	m := newTestModel()
	p := m.Randomize(rand.New(rand.NewSource(3)))
	for _, k := range DefaultLocked {
		if _, ok := p[k]; ok {
			t.Errorf("locked key %v was randomized", k)
		}
	}
	v, ok := p[Amplitude]
	if !ok || v < 30 || v > 140 {
		t.Errorf("amplitude %v outside random range", v)
	}
}

func TestChangedReportsRenderKeys(t *testing.T) {
	m := newTestModel()
	if got := m.Changed(); len(got) != 0 {
		t.Fatalf("expected no changes initially, got %v", got)
	}
	m.Apply(Opacity, 0.5, true)
	m.Apply(Amplitude, 10, true)
	got := m.Changed()
	if len(got) != 1 || got[0] != Opacity {
		t.Errorf("expected [opacity], got %v", got)
	}
	if again := m.Changed(); len(again) != 0 {
		t.Errorf("expected changes to be consumed, got %v", again)
	}
}

func TestPartialJSON(t *testing.T) {
	var p Partial
	data := []byte(`{"amplitude": 80, "autoRotate": false, "showStats": 1, "unknownKey": 5}`)
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(p) != 3 {
		t.Fatalf("expected 3 known keys, got %v", p)
	}
	if p[Amplitude] != 80 || p[AutoRotate] != 0 || p[ShowStats] != 1 {
		t.Errorf("unexpected values %v", p)
	}

	data = []byte(`{"amplitude": "loud", "opacity": null, "brightness": 0.4}`)
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal with bad values: %v", err)
	}
	if len(p) != 1 || p[Brightness] != 0.4 {
		t.Errorf("expected only brightness to survive, got %v", p)
	}
}

func TestParseDocumentKeepsDefaultsForNullAndBadValues(t *testing.T) {
	data := []byte(`{"base": {"amplitude": 120, "opacity": null, "pointSize": "big"}}`)
	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	def := Defaults()
	if doc.Base.Amplitude != 120 {
		t.Errorf("expected amplitude 120, got %v", doc.Base.Amplitude)
	}
	if doc.Base.Opacity != def.Opacity {
		t.Errorf("null opacity must keep default %v, got %v", def.Opacity, doc.Base.Opacity)
	}
	if doc.Base.PointSize != def.PointSize {
		t.Errorf("string pointSize must keep default %v, got %v", def.PointSize, doc.Base.PointSize)
	}
}

func TestParseDocumentMerges(t *testing.T) {
	data := []byte(`{
		"base": {"amplitude": 90, "autoRotate": false},
		"influences": {"about": {"brightness": 0.5}, "extra": {"amplitude": 1}}
	}`)
	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Base.Amplitude != 90 || doc.Base.AutoRotate {
		t.Errorf("base overlay not applied: %+v", doc.Base)
	}
	if doc.Base.RippleSpeed != 250 {
		t.Errorf("missing keys must keep defaults, got rippleSpeed %v", doc.Base.RippleSpeed)
	}
	if doc.Influences["about"][Brightness] != 0.5 {
		t.Errorf("about brightness not overlaid: %v", doc.Influences["about"])
	}
	if doc.Influences["about"][AnimationSpeed] != 0.28 {
		t.Errorf("about defaults lost: %v", doc.Influences["about"])
	}
	if _, ok := doc.Influences["extra"]; ok {
		t.Error("unknown section must be dropped")
	}
}

func TestExportSnapshot(t *testing.T) {
	m := newTestModel()
	exp := m.Export()
	if !exp.Fixed["opacity"] || exp.Fixed["amplitude"] {
		t.Errorf("unexpected fixed map %v", exp.Fixed)
	}
	data, err := json.Marshal(exp)
	if err != nil {
		t.Fatal(err)
	}
	var back map[string]json.RawMessage
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if _, ok := back["settings"]; !ok {
		t.Error("expected settings key in export")
	}
}
