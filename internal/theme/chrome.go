package theme

// Brightness factors applied to the accent for button states.
const (
	HoveredFactor = 1.2
	ActiveFactor  = 0.8
)

var (
	WindowBg = RGBA(0.1, 0.1, 0.1, 0.9)
	Text     = RGBA(1, 1, 1, 1)
	TextDim  = RGBA(0.6, 0.6, 0.6, 1)
	FrameBg  = RGBA(0.2, 0.2, 0.2, 0.8)
	Border   = RGBA(0.45, 0.45, 0.5, 0.5)
)

// Chrome is the set of panel colors for one frame.
// It is rebuilt from the accent every frame and never stored.
type Chrome struct {
	WindowBg      Color
	TitleBg       Color
	TitleBgActive Color
	Button        Color
	ButtonHovered Color
	ButtonActive  Color
	FrameBg       Color
	Text          Color
	TextDim       Color
	Border        Color
}

// FromAccent derives the five accent-dependent colors from accent and
// fills the rest with the fixed palette.
func FromAccent(accent Color) Chrome {
	return Chrome{
		WindowBg:      WindowBg,
		TitleBg:       accent,
		TitleBgActive: accent,
		Button:        accent,
		ButtonHovered: accent.Scale(HoveredFactor),
		ButtonActive:  accent.Scale(ActiveFactor),
		FrameBg:       FrameBg,
		Text:          Text,
		TextDim:       TextDim,
		Border:        Border,
	}
}
