package assets

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Glyph size of the UI font in pixels. The panel lays text out on this grid.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

var uiFace *text.GoXFace

// UIFace returns the fixed-width face used for all panel text.
func UIFace() text.Face {
	if uiFace == nil {
		uiFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return uiFace
}
