// Package input holds the per-frame input snapshot the overlay reads.
package input

// Frame is the polled state of the inputs for a single frame.
// Polling happens once, before any widget looks at it, so every widget
// in a frame sees the same values.
type Frame struct {
	CursorX, CursorY int

	MouseDown         bool // left button held
	MouseJustPressed  bool // left button went down this frame
	MouseJustReleased bool // left button went up this frame

	ToggleOverlay bool // toggle key went down this frame
}

// Source produces one Frame per tick.
type Source interface {
	Poll() Frame
}

// Cursor returns the cursor position as floats.
func (f Frame) Cursor() (float32, float32) {
	return float32(f.CursorX), float32(f.CursorY)
}

// Script replays a fixed sequence of frames, then repeats an idle frame
// with the cursor where the last scripted frame left it.
type Script struct {
	Frames []Frame
	next   int
}

func (s *Script) Poll() Frame {
	if s.next < len(s.Frames) {
		f := s.Frames[s.next]
		s.next++
		return f
	}
	if len(s.Frames) == 0 {
		return Frame{}
	}
	last := s.Frames[len(s.Frames)-1]
	return Frame{CursorX: last.CursorX, CursorY: last.CursorY, MouseDown: last.MouseDown && !last.MouseJustReleased}
}
