package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"msd/internal/drawlist"
	"msd/internal/host"
	"msd/internal/input"
	"msd/internal/overlay"
)

// Game adapts the overlay to ebiten's loop.
type Game struct {
	overlay *overlay.Overlay
	input   input.Source
	face    text.Face
	frame   *drawlist.List
}

func NewGame(o *overlay.Overlay, src input.Source, face text.Face) *Game {
	return &Game{
		overlay: o,
		input:   src,
		face:    face,
		frame:   drawlist.New(),
	}
}

// Update: one overlay frame per tick; clicks pass through outside the panel
func (g *Game) Update() error {
	g.frame = g.overlay.Frame(g.input.Poll())
	ebiten.SetWindowMousePassthrough(!g.overlay.WantsMouse())
	return nil
}

// Draw: replay the last frame on a cleared, transparent screen
func (g *Game) Draw(screen *ebiten.Image) {
	host.Replay(screen, g.frame, g.face)
}

// Layout: the screen is the window, so the marker tracks resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
