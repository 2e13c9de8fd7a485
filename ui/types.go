// Package ui provides the descriptor-driven debug controls for the field.
// Panels are laid out from metadata so the parameter list can change
// alongside the settings model without touching drawing code.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/itsjaydesu/jayfolio-sub000/settings"
)

// ControlDescriptor defines one parameter row.
type ControlDescriptor struct {
	Key   settings.Key // Parameter driven by the row
	Label string       // Display label
	Range settings.Range
}

// FolderDescriptor groups rows under a collapsible header.
type FolderDescriptor struct {
	Title    string
	Controls []ControlDescriptor
	Open     bool // Initial state
}

// control builds a row from the settings slider bounds.
func control(k settings.Key, label string) ControlDescriptor {
	return ControlDescriptor{Key: k, Label: label, Range: settings.Ranges[k]}
}

// DefaultFolders returns the panel layout: waves, tone and interaction.
func DefaultFolders() []FolderDescriptor {
	return []FolderDescriptor{
		{
			Title: "Waves",
			Open:  true,
			Controls: []ControlDescriptor{
				control(settings.Amplitude, "Amplitude"),
				control(settings.WaveXFrequency, "Frequency X"),
				control(settings.WaveYFrequency, "Frequency Y"),
				control(settings.SwirlStrength, "Swirl Strength"),
				control(settings.SwirlFrequency, "Swirl Scale"),
				control(settings.AnimationSpeed, "Flow Speed"),
			},
		},
		{
			Title: "Tone & Glow",
			Controls: []ControlDescriptor{
				control(settings.Opacity, "Glow"),
				control(settings.PointSize, "Point Scale"),
				control(settings.Brightness, "Brightness"),
				control(settings.Contrast, "Contrast"),
				control(settings.FogDensity, "Fog"),
			},
		},
		{
			Title: "Interaction",
			Controls: []ControlDescriptor{
				control(settings.MouseInfluence, "Pointer Warp"),
				control(settings.RippleStrength, "Ripple Strength"),
				control(settings.RippleSpeed, "Ripple Speed"),
				control(settings.RippleWidth, "Ripple Width"),
				control(settings.RippleDecay, "Ripple Fade"),
				{Key: settings.AutoRotate, Label: "Auto Rotate"},
				{Key: settings.ShowStats, Label: "Show Stats"},
			},
		},
	}
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	ToastBg        rl.Color
	ToastText      rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 22, B: 26, A: 235},
		PanelBorder:    rl.Color{R: 60, G: 64, B: 72, A: 255},
		SectionHeader:  rl.Color{R: 235, G: 235, B: 235, A: 255},
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		ToastBg:        rl.Color{R: 20, G: 20, B: 20, A: 210},
		ToastText:      rl.Color{R: 245, G: 245, B: 245, A: 255},
		Padding:        10,
		LineHeight:     20,
		LabelWidth:     110,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
