package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msd/internal/drawlist"
	"msd/internal/input"
	"msd/internal/theme"
)

// With the default metrics and the window at (20, 20):
// content starts at x=28, the first row at y=48, rows are 23 apart,
// and frames are 194 wide.
const (
	left   = 28
	row0   = 48
	rowGap = 23
	frameW = 194
)

var chrome = theme.FromAccent(theme.RGBA(0.2, 0.6, 1, 1))

func click(x, y int) input.Frame {
	return input.Frame{CursorX: x, CursorY: y, MouseDown: true, MouseJustPressed: true}
}

func hold(x, y int) input.Frame {
	return input.Frame{CursorX: x, CursorY: y, MouseDown: true}
}

func idle(x, y int) input.Frame {
	return input.Frame{CursorX: x, CursorY: y}
}

func frame(w *Window, in input.Frame, body func()) *drawlist.List {
	l := drawlist.New()
	w.Begin(l, in, chrome)
	body()
	w.End()
	return l
}

func TestCheckboxToggles(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	v := false

	var changed bool
	frame(w, click(left+2, row0+2), func() { changed = w.Checkbox("Filled", &v) })
	assert.True(t, changed)
	assert.True(t, v)

	frame(w, hold(left+2, row0+2), func() { changed = w.Checkbox("Filled", &v) })
	assert.False(t, changed, "holding the button is not a second click")
	assert.True(t, v)

	frame(w, idle(left+2, row0+2), func() {})
	frame(w, click(left+2, row0+2), func() { changed = w.Checkbox("Filled", &v) })
	assert.True(t, changed)
	assert.False(t, v)
}

func TestSliderDragAndClamp(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	v := float32(5)

	frame(w, click(left+frameW/2, row0+5), func() { w.SliderFloat("Dot Size", &v, 1, 20) })
	assert.InDelta(t, 10.5, v, 1e-4)

	frame(w, hold(5000, 900), func() { w.SliderFloat("Dot Size", &v, 1, 20) })
	assert.Equal(t, float32(20), v, "dragging keeps tracking outside the frame")

	frame(w, hold(-500, 900), func() { w.SliderFloat("Dot Size", &v, 1, 20) })
	assert.Equal(t, float32(1), v)

	frame(w, idle(left+frameW, row0+5), func() { w.SliderFloat("Dot Size", &v, 1, 20) })
	assert.Equal(t, float32(1), v, "released slider does not follow the cursor")
}

func TestSliderClampsForeignValues(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	v := float32(99)

	var changed bool
	frame(w, idle(0, 0), func() { changed = w.SliderFloat("Outline Thickness", &v, 1, 5) })

	assert.True(t, changed)
	assert.Equal(t, float32(5), v)
}

func TestComboSelectsFromPopup(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	items := []string{"Circle", "Cross", "Triangle", "Square"}
	cur := 0
	filled := false

	body := func() {
		w.Combo("Dot Shape", &cur, items)
		w.Checkbox("Filled", &filled)
	}

	l := frame(w, click(left+10, row0+5), body)
	assert.Equal(t, 0, cur)
	cmds := l.Commands()
	require.NotEmpty(t, cmds)
	assert.Equal(t, "Square", cmds[len(cmds)-2].Text, "popup is drawn last")

	frame(w, idle(left+10, row0+5), body)

	// item 2 sits over the checkbox row; only the combo reacts
	listTop := row0 + 19
	var changed bool
	frame(w, click(left+10, listTop+2*19+5), func() {
		changed = w.Combo("Dot Shape", &cur, items)
		w.Checkbox("Filled", &filled)
	})
	assert.True(t, changed)
	assert.Equal(t, 2, cur)
	assert.False(t, filled)

	l = frame(w, idle(0, 0), body)
	for _, c := range l.Commands() {
		assert.NotEqual(t, "Square", c.Text, "popup closed after selection")
	}
}

func TestComboClickOutsideCloses(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	items := []string{"a", "b"}
	cur := 1

	frame(w, click(left+10, row0+5), func() { w.Combo("c", &cur, items) })
	frame(w, idle(0, 0), func() { w.Combo("c", &cur, items) })
	frame(w, click(900, 900), func() { w.Combo("c", &cur, items) })

	assert.Equal(t, 1, cur)
	assert.Empty(t, w.openCombo)
}

func TestComboClampsIndex(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	items := []string{"Circle", "Cross", "Triangle", "Square"}

	cur := 9
	frame(w, idle(0, 0), func() { w.Combo("Dot Shape", &cur, items) })
	assert.Equal(t, 3, cur)

	cur = -4
	frame(w, idle(0, 0), func() { w.Combo("Dot Shape", &cur, items) })
	assert.Equal(t, 0, cur)
}

func TestColorEditChannelDrag(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	c := theme.RGBA(0, 0, 0, 1)
	cw := float32(frameW-19-16) / 4

	var changed bool
	x := int(left + cw/2)
	frame(w, click(x, row0+5), func() { changed = w.ColorEdit4("Dot Color", &c) })
	assert.True(t, changed)
	assert.InDelta(t, 0.5, c.R, 0.03)
	assert.Equal(t, float32(0), c.G)

	frame(w, hold(-100, row0+5), func() { w.ColorEdit4("Dot Color", &c) })
	assert.Equal(t, float32(0), c.R)

	frame(w, hold(5000, row0+5), func() { w.ColorEdit4("Dot Color", &c) })
	assert.Equal(t, float32(1), c.R)
	assert.Equal(t, float32(1), c.A)
}

func TestEndDrawsWindowUnderWidgets(t *testing.T) {
	w := NewWindow("MSD Settings", 20, 20)
	l := frame(w, idle(0, 0), func() {
		w.Text("Dot Settings")
		w.Separator()
	})

	cmds := l.Commands()
	require.GreaterOrEqual(t, len(cmds), 6)
	assert.Equal(t, drawlist.RectFilled, cmds[0].Kind)
	assert.Equal(t, chrome.WindowBg.NRGBA(), cmds[0].Color)
	assert.Equal(t, drawlist.Pt(20, 20), cmds[0].P[0])
	assert.Equal(t, float32(20+340), cmds[0].P[1].X)
	assert.Equal(t, "MSD Settings", cmds[3].Text)
	assert.Equal(t, "Dot Settings", cmds[4].Text)
	assert.Equal(t, drawlist.Line, cmds[5].Kind)
}

func TestWindowRespectsMinWidth(t *testing.T) {
	w := NewWindow("x", 0, 0)
	w.Metrics.Width = 100
	assert.Equal(t, float32(300), w.Width())
}

func TestTitleDragMovesWindow(t *testing.T) {
	w := NewWindow("Test", 20, 20)

	frame(w, click(40, 25), func() {})
	frame(w, hold(140, 125), func() {})
	assert.Equal(t, float32(120), w.X)
	assert.Equal(t, float32(120), w.Y)

	frame(w, idle(400, 400), func() {})
	assert.Equal(t, float32(120), w.X)
}

func TestTitleDragStaysOnDisplay(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	w.BoundsW, w.BoundsH = 800, 600

	frame(w, click(40, 25), func() {})
	frame(w, hold(-300, -300), func() {})
	assert.Equal(t, float32(0), w.X)
	assert.Equal(t, float32(0), w.Y)

	frame(w, hold(2000, 2000), func() {})
	assert.Equal(t, 800-w.Width(), w.X)
	assert.Equal(t, 600-w.Metrics.TitleHeight, w.Y, "title bar still visible")

	// a smaller display pulls the window back in
	w.BoundsW, w.BoundsH = 400, 300
	frame(w, idle(0, 0), func() {})
	assert.Equal(t, 400-w.Width(), w.X)
	assert.Equal(t, 300-w.Metrics.TitleHeight, w.Y)
}

func TestWantsMouse(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	items := []string{"a", "b"}
	cur := 0
	body := func() { w.Combo("c", &cur, items) }

	frame(w, idle(900, 900), body)
	assert.False(t, w.WantsMouse())

	frame(w, idle(left+10, row0+5), body)
	assert.True(t, w.WantsMouse(), "cursor over the window")

	frame(w, click(left+10, row0+5), body)
	frame(w, idle(900, 900), body)
	assert.True(t, w.WantsMouse(), "open popup")

	w.Release()
	assert.False(t, w.WantsMouse())
	assert.Empty(t, w.openCombo)

	l := frame(w, idle(900, 900), body)
	for _, c := range l.Commands() {
		assert.NotEqual(t, "b", c.Text, "popup stays closed after Release")
	}
}

func TestTitleUsesActiveColorWhenHovered(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	c := chrome
	c.TitleBg = theme.RGBA(0, 0, 1, 1)
	c.TitleBgActive = theme.RGBA(0, 1, 0, 1)

	l := drawlist.New()
	w.Begin(l, idle(0, 0), c)
	w.End()
	assert.Equal(t, c.TitleBg.NRGBA(), l.Commands()[2].Color)

	l = drawlist.New()
	w.Begin(l, idle(30, 30), c)
	w.End()
	assert.Equal(t, c.TitleBgActive.NRGBA(), l.Commands()[2].Color)
	assert.True(t, w.Hovered())
}

func TestSetChromeRecolorsSameFrame(t *testing.T) {
	w := NewWindow("Test", 20, 20)
	next := theme.FromAccent(theme.RGBA(1, 0, 0, 1))

	l := drawlist.New()
	w.Begin(l, idle(0, 0), chrome)
	w.SetChrome(next)
	w.End()

	assert.Equal(t, next, w.Chrome())
	assert.Equal(t, next.TitleBg.NRGBA(), l.Commands()[2].Color)
}
