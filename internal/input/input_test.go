package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptReplaysThenIdles(t *testing.T) {
	s := &Script{Frames: []Frame{
		{CursorX: 1, CursorY: 2, MouseDown: true, MouseJustPressed: true},
		{CursorX: 3, CursorY: 4, MouseDown: true},
	}}

	assert.True(t, s.Poll().MouseJustPressed)
	assert.Equal(t, 3, s.Poll().CursorX)

	idle := s.Poll()
	assert.Equal(t, Frame{CursorX: 3, CursorY: 4, MouseDown: true}, idle)
	assert.Equal(t, idle, s.Poll())
}

func TestEmptyScript(t *testing.T) {
	assert.Equal(t, Frame{}, (&Script{}).Poll())
}

func TestCursor(t *testing.T) {
	x, y := Frame{CursorX: 7, CursorY: -2}.Cursor()
	assert.Equal(t, float32(7), x)
	assert.Equal(t, float32(-2), y)
}
