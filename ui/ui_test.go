package ui

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

type fakeHandle struct {
	cur      settings.Settings
	locked   map[settings.Key]bool
	applied  []settings.Partial
	visible  bool
	effects  []string
	combined []bool
	presets  []string
	cleared  int
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{cur: settings.Defaults(), locked: map[settings.Key]bool{}, visible: true}
}

func (f *fakeHandle) CurrentSettings() settings.Settings { return f.cur }

func (f *fakeHandle) ApplySettings(p settings.Partial, immediate bool) {
	f.applied = append(f.applied, p)
	if immediate {
		f.cur.Overlay(p)
	}
}

func (f *fakeHandle) SetLocked(k settings.Key, locked bool) { f.locked[k] = locked }
func (f *fakeHandle) Locked(k settings.Key) bool            { return f.locked[k] }

func (f *fakeHandle) Randomize() settings.Partial {
	return settings.Partial{settings.Amplitude: 50, settings.SwirlStrength: 1}
}

func (f *fakeHandle) Export() settings.Export {
	fixed := map[string]bool{}
	for _, k := range settings.Keys() {
		fixed[k.String()] = f.locked[k]
	}
	return settings.Export{Settings: f.cur, Fixed: fixed}
}

func (f *fakeHandle) ApplyFieldEffect(name string) bool {
	f.presets = append(f.presets, name)
	return true
}

func (f *fakeHandle) TriggerEffect(name string, combine bool) bool {
	f.effects = append(f.effects, name)
	f.combined = append(f.combined, combine)
	return true
}

func (f *fakeHandle) ClearEffects()                   { f.cleared++ }
func (f *fakeHandle) ControlsVisible() bool           { return f.visible }
func (f *fakeHandle) SetControlsVisible(visible bool) { f.visible = visible }

func TestFoldersCoverEveryKey(t *testing.T) {
	seen := map[settings.Key]bool{}
	for _, f := range DefaultFolders() {
		for _, c := range f.Controls {
			if seen[c.Key] {
				t.Errorf("%v appears twice", c.Key)
			}
			seen[c.Key] = true
			if !c.Key.IsBool() && c.Range.Max <= c.Range.Min {
				t.Errorf("%v has empty range %+v", c.Key, c.Range)
			}
		}
	}
	for _, k := range settings.Keys() {
		if !seen[k] {
			t.Errorf("no control for %v", k)
		}
	}
}

func TestSetAppliesImmediately(t *testing.T) {
	h := newFakeHandle()
	p := NewControlsPanel(h, 0, 0, 320)

	if !p.Set(settings.Amplitude, 90.4) {
		t.Fatal("expected change")
	}
	if got := h.cur.Amplitude; got != 90 {
		t.Errorf("expected value snapped to 90, got %v", got)
	}
	if p.Set(settings.Amplitude, 90) {
		t.Error("unchanged value should not apply")
	}
	if len(h.applied) != 1 {
		t.Errorf("expected one apply, got %d", len(h.applied))
	}

	p.Set(settings.Amplitude, 1000)
	if h.cur.Amplitude != settings.Ranges[settings.Amplitude].Max {
		t.Errorf("expected clamp to max, got %v", h.cur.Amplitude)
	}

	if !p.Set(settings.AutoRotate, 0) || h.cur.AutoRotate {
		t.Error("toggle should apply")
	}
}

func TestSnapTrimsNoise(t *testing.T) {
	got := snap(0.1234, 0.05, 0.005)
	if math.Abs(got-0.125) > 1e-12 {
		t.Errorf("expected 0.125, got %v", got)
	}
	if FormatValue(0.125, 0.005) != "0.125" {
		t.Errorf("unexpected format %q", FormatValue(0.125, 0.005))
	}
	if FormatValue(72, 1) != "72" {
		t.Errorf("unexpected format %q", FormatValue(72, 1))
	}
}

func TestToggleLock(t *testing.T) {
	h := newFakeHandle()
	p := NewControlsPanel(h, 0, 0, 320)
	p.ToggleLock(settings.SwirlStrength)
	if !h.locked[settings.SwirlStrength] {
		t.Error("expected lock")
	}
	p.ToggleLock(settings.SwirlStrength)
	if h.locked[settings.SwirlStrength] {
		t.Error("expected unlock")
	}
}

func TestCopyAndDownload(t *testing.T) {
	h := newFakeHandle()
	h.locked[settings.PointSize] = true
	p := NewControlsPanel(h, 0, 0, 320)
	p.ExportDir = t.TempDir()

	var messages []string
	p.OnMessage = func(s string) { messages = append(messages, s) }

	var clip string
	prev := copyToClipboard
	copyToClipboard = func(s string) { clip = s }
	defer func() { copyToClipboard = prev }()

	if err := p.Copy(); err != nil {
		t.Fatal(err)
	}
	if len(messages) != 1 || messages[0] != "Settings copied to clipboard" {
		t.Errorf("unexpected messages %v", messages)
	}

	var doc struct {
		Settings map[string]any  `json:"settings"`
		Fixed    map[string]bool `json:"fixed"`
	}
	if err := json.Unmarshal([]byte(clip), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Settings["amplitude"] != h.cur.Amplitude {
		t.Errorf("amplitude missing from export: %v", doc.Settings)
	}
	if !doc.Fixed["pointSize"] || doc.Fixed["amplitude"] {
		t.Errorf("unexpected fixed map %v", doc.Fixed)
	}

	path, err := p.Download()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != ExportFile {
		t.Errorf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != clip {
		t.Error("download and clipboard should carry the same document")
	}
}

func TestRandomizeReports(t *testing.T) {
	h := newFakeHandle()
	p := NewControlsPanel(h, 0, 0, 320)
	var msg string
	p.OnMessage = func(s string) { msg = s }
	p.Randomize()
	if msg != "Randomized 2 parameters" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestPaletteRoutesEffectsAndPresets(t *testing.T) {
	h := newFakeHandle()
	pal := NewEffectsPalette(h, 0, 0, 140)
	entries := PaletteEntries()

	for i, e := range entries {
		if e.Label == "" {
			t.Errorf("entry %s has no label", e.Name)
		}
		pal.Activate(i, true)
	}
	if len(h.effects) != 7 {
		t.Errorf("expected 7 timed effects, got %v", h.effects)
	}
	if len(h.presets) != len(entries)-7 {
		t.Errorf("expected presets routed separately, got %v", h.presets)
	}
	for _, c := range h.combined {
		if !c {
			t.Error("combine flag lost")
		}
	}
	if pal.Activate(len(entries), false) {
		t.Error("out of range entry should be rejected")
	}
}

func TestToastAlpha(t *testing.T) {
	var toast Toast
	if toast.Alpha(0) != 0 {
		t.Error("empty toast should be invisible")
	}
	toast.Show("hello", 10)
	if a := toast.Alpha(10); a != 0 {
		t.Errorf("expected fade in from 0, got %v", a)
	}
	if a := toast.Alpha(11); a != 1 {
		t.Errorf("expected full alpha mid-life, got %v", a)
	}
	if a := toast.Alpha(10 + toastDuration - toastFade/2); a <= 0 || a >= 1 {
		t.Errorf("expected fading alpha, got %v", a)
	}
	if a := toast.Alpha(10 + toastDuration); a != 0 {
		t.Errorf("expected expiry, got %v", a)
	}
}

func TestOverlayExclusivity(t *testing.T) {
	reg := NewOverlayRegistry()
	if id, on, ok := reg.HandleKeyPress(rl.KeyE); !ok || !on || id != OverlayEffects {
		t.Fatalf("expected effects toggled on, got %v %v %v", id, on, ok)
	}
	reg.Toggle(OverlayHelp)
	if reg.IsEnabled(OverlayEffects) {
		t.Error("help should close effects")
	}
	if !reg.IsEnabled(OverlayHelp) {
		t.Error("help should be on")
	}
	if _, _, ok := reg.HandleKeyPress(rl.KeyZ); ok {
		t.Error("unbound key should not toggle")
	}
	if reg.Toggle("missing") {
		t.Error("unknown overlay should not toggle")
	}
}
