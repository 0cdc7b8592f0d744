package overlay

import (
	"msd/internal/input"
	"msd/internal/settings"
	"msd/internal/theme"
)

// drawSettings declares the settings window. The chrome is derived from
// the accent every frame, and again right after the accent is edited so
// the rest of the frame already uses the new colors.
func (o *Overlay) drawSettings(in input.Frame) {
	s := o.State
	w := o.Window

	w.Begin(o.list, in, theme.FromAccent(s.AccentColor))

	if w.ColorEdit4("Accent Color", &s.AccentColor) {
		w.SetChrome(theme.FromAccent(s.AccentColor))
	}

	w.Separator()

	w.Text("Dot Settings")
	w.ColorEdit4("Dot Color", &s.DotColor)
	w.SliderFloat("Dot Size", &s.DotSize, settings.MinDotSize, settings.MaxDotSize)

	shape := int(s.DotShape)
	if w.Combo("Dot Shape", &shape, settings.ShapeNames) {
		o.log.Debug().Stringer("shape", settings.Shape(shape)).Msg("shape changed")
	}
	s.SetDotShape(shape)

	w.Checkbox("Filled", &s.IsFilled)
	w.Checkbox("Show Outline", &s.ShowOutline)

	if s.ShowOutline {
		w.SliderFloat("Outline Thickness", &s.OutlineThickness, settings.MinOutlineThickness, settings.MaxOutlineThickness)
		w.ColorEdit4("Outline Color", &s.OutlineColor)
	}

	w.Separator()

	w.Text(HelpText)

	w.End()
}
