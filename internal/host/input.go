package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"msd/internal/input"
)

// ToggleKey shows and hides the overlay.
const ToggleKey = ebiten.KeyInsert

// Input polls ebiten's keyboard and mouse state.
type Input struct{}

func (Input) Poll() input.Frame {
	x, y := ebiten.CursorPosition()
	return input.Frame{
		CursorX:           x,
		CursorY:           y,
		MouseDown:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseJustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseJustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		ToggleOverlay:     inpututil.IsKeyJustPressed(ToggleKey),
	}
}
