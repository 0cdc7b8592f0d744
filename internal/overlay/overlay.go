// Package overlay is the per-frame logic of the dot overlay: the
// visibility toggle, the settings panel and the centered marker.
package overlay

import (
	"github.com/rs/zerolog"

	"msd/internal/drawlist"
	"msd/internal/input"
	"msd/internal/marker"
	"msd/internal/panel"
	"msd/internal/settings"
)

const (
	PanelTitle = "MSD Settings"
	HelpText   = "Press Insert to hide/show overlay"

	panelX = 60
	panelY = 60
)

type Overlay struct {
	State  *settings.State
	Window *panel.Window

	log           zerolog.Logger
	list          *drawlist.List
	width, height int
}

func New(state *settings.State, log zerolog.Logger) *Overlay {
	return &Overlay{
		State:  state,
		Window: panel.NewWindow(PanelTitle, panelX, panelY),
		log:    log,
		list:   drawlist.New(),
	}
}

// Resize records the current display size.
func (o *Overlay) Resize(width, height int) {
	o.width, o.height = width, height
	o.Window.BoundsW, o.Window.BoundsH = float32(width), float32(height)
}

// Center is the middle of the display as of the last Resize.
func (o *Overlay) Center() drawlist.Point {
	return drawlist.Pt(float32(o.width)*0.5, float32(o.height)*0.5)
}

// WantsMouse reports whether the window should receive mouse input this
// frame. Everywhere else clicks go to whatever is underneath.
func (o *Overlay) WantsMouse() bool {
	return o.State.ShowOverlay && o.Window.WantsMouse()
}

// Frame runs one frame and returns its draw list. The list is reused
// by the next call.
func (o *Overlay) Frame(in input.Frame) *drawlist.List {
	o.list.Reset()

	if in.ToggleOverlay {
		visible := o.State.ToggleOverlay()
		o.log.Info().Bool("visible", visible).Msg("overlay toggled")
	}
	if !o.State.ShowOverlay {
		o.Window.Release()
		return o.list
	}

	o.State.Normalize()
	o.drawSettings(in)
	marker.Draw(o.list, o.Center(), marker.StyleOf(o.State))

	return o.list
}
