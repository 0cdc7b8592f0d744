// Package settings holds the overlay's editable state.
package settings

import "msd/internal/theme"

// --- Ranges ---
const (
	MinDotSize = 1.0
	MaxDotSize = 20.0

	MinOutlineThickness = 1.0
	MaxOutlineThickness = 5.0
)

// --- Shapes ---
type Shape int

const (
	Circle Shape = iota
	Cross
	Triangle
	Square
)

// ShapeNames lists the shapes in selector order.
var ShapeNames = []string{"Circle", "Cross", "Triangle", "Square"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(ShapeNames) {
		return "Unknown"
	}
	return ShapeNames[s]
}

// State is everything the settings panel edits. It lives for the whole
// process and is reset to Default on every start.
type State struct {
	AccentColor      theme.Color
	DotColor         theme.Color
	DotSize          float32
	DotShape         Shape
	IsFilled         bool
	ShowOutline      bool
	OutlineThickness float32
	OutlineColor     theme.Color
	ShowOverlay      bool
}

func Default() *State {
	return &State{
		AccentColor:      theme.RGBA(0.2, 0.6, 1.0, 1.0),
		DotColor:         theme.RGBA(1, 0, 0, 1),
		DotSize:          5,
		DotShape:         Circle,
		IsFilled:         true,
		ShowOutline:      false,
		OutlineThickness: 1,
		OutlineColor:     theme.RGBA(0, 0, 0, 1),
		ShowOverlay:      true,
	}
}

// ToggleOverlay flips ShowOverlay and returns the new value.
func (s *State) ToggleOverlay() bool {
	s.ShowOverlay = !s.ShowOverlay
	return s.ShowOverlay
}

func (s *State) SetDotSize(v float32) {
	s.DotSize = Clamp(v, MinDotSize, MaxDotSize)
}

func (s *State) SetOutlineThickness(v float32) {
	s.OutlineThickness = Clamp(v, MinOutlineThickness, MaxOutlineThickness)
}

// SetDotShape accepts any index and clamps it onto the known shapes.
func (s *State) SetDotShape(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(ShapeNames) {
		i = len(ShapeNames) - 1
	}
	s.DotShape = Shape(i)
}

// Normalize re-applies every range constraint.
func (s *State) Normalize() {
	s.SetDotSize(s.DotSize)
	s.SetOutlineThickness(s.OutlineThickness)
	s.SetDotShape(int(s.DotShape))
	s.AccentColor = s.AccentColor.Clamped()
	s.DotColor = s.DotColor.Clamped()
	s.OutlineColor = s.OutlineColor.Clamped()
}

// Clamp forces v into [lo, hi]. NaN collapses to lo.
func Clamp(v, lo, hi float32) float32 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
