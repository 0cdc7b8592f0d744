// Package panel is a small immediate-mode window toolkit that draws into
// a drawlist.List.
//
// A Window is declared anew every frame: Begin, then widget calls in
// display order, then End. Widgets read the frame's input snapshot,
// update the value they are bound to, and emit draw commands. Only the
// window position and which widget currently owns the mouse survive
// between frames.
package panel

import (
	"msd/internal/drawlist"
	"msd/internal/input"
	"msd/internal/theme"
)

// Metrics is the fixed geometry of a window. Glyph sizes match
// basicfont.Face7x13.
type Metrics struct {
	Width       float32
	MinWidth    float32
	TitleHeight float32
	Padding     float32
	ItemHeight  float32
	Spacing     float32
	LabelWidth  float32
	GlyphWidth  float32
	GlyphHeight float32
}

func DefaultMetrics() Metrics {
	return Metrics{
		Width:       340,
		MinWidth:    300,
		TitleHeight: 20,
		Padding:     8,
		ItemHeight:  19,
		Spacing:     4,
		LabelWidth:  130,
		GlyphWidth:  7,
		GlyphHeight: 13,
	}
}

const titleID = "##title"

// Window is one movable panel.
type Window struct {
	Title   string
	X, Y    float32
	Metrics Metrics

	// Bounds is the display size the title bar is kept inside. Zero
	// leaves the position unclamped.
	BoundsW, BoundsH float32

	active    string // widget holding the mouse button
	openCombo string
	dragDX    float32
	dragDY    float32
	hovered   bool

	// valid between Begin and End
	list     *drawlist.List
	in       input.Frame
	chrome   theme.Chrome
	start    int
	cursorY  float32
	consumed bool
	popup    []drawlist.Command
}

func NewWindow(title string, x, y float32) *Window {
	return &Window{
		Title:   title,
		X:       x,
		Y:       y,
		Metrics: DefaultMetrics(),
	}
}

// Width of the window for this frame.
func (w *Window) Width() float32 {
	return max(w.Metrics.Width, w.Metrics.MinWidth, w.textWidth(w.Title)+2*w.Metrics.Padding)
}

// Hovered reports whether the cursor was over the window last frame.
func (w *Window) Hovered() bool {
	return w.hovered
}

// WantsMouse reports whether the window needs mouse input: the cursor
// was over it last frame, a widget holds the button, or a popup is open.
func (w *Window) WantsMouse() bool {
	return w.hovered || w.active != "" || w.openCombo != ""
}

// Release drops the held widget and any open popup, for a window that
// stops being declared.
func (w *Window) Release() {
	w.active = ""
	w.openCombo = ""
	w.hovered = false
}

// Begin starts the window for this frame. chrome is used for every
// command until SetChrome or End.
func (w *Window) Begin(l *drawlist.List, in input.Frame, chrome theme.Chrome) {
	w.list = l
	w.in = in
	w.chrome = chrome
	w.start = l.Len()
	w.consumed = false
	w.popup = w.popup[:0]

	if !in.MouseDown && !in.MouseJustPressed {
		w.active = ""
	}

	cx, cy := in.Cursor()
	if w.clickable(w.X, w.Y, w.X+w.Width(), w.Y+w.Metrics.TitleHeight) {
		w.active = titleID
		w.dragDX = cx - w.X
		w.dragDY = cy - w.Y
		w.consumed = true
	}
	if w.active == titleID && in.MouseDown {
		w.X = cx - w.dragDX
		w.Y = cy - w.dragDY
	}
	w.clampToBounds()

	w.cursorY = w.Y + w.Metrics.TitleHeight + w.Metrics.Padding
}

// SetChrome swaps the colors used by the rest of the frame, including
// the title bar drawn by End.
func (w *Window) SetChrome(c theme.Chrome) {
	w.chrome = c
}

// Chrome returns the colors currently in use.
func (w *Window) Chrome() theme.Chrome {
	return w.chrome
}

// End draws the window background and title bar underneath the widgets
// and puts any open popup on top of them.
func (w *Window) End() {
	m := w.Metrics
	width := w.Width()
	height := w.cursorY - w.Y - m.Spacing + m.Padding

	cx, cy := w.in.Cursor()
	w.hovered = inside(cx, cy, w.X, w.Y, w.X+width, w.Y+height)

	title := w.chrome.TitleBg
	if w.hovered || w.active != "" {
		title = w.chrome.TitleBgActive
	}

	lo := drawlist.Pt(w.X, w.Y)
	hi := drawlist.Pt(w.X+width, w.Y+height)
	w.list.InsertAt(w.start,
		drawlist.Command{Kind: drawlist.RectFilled, P: [3]drawlist.Point{lo, hi}, Color: w.chrome.WindowBg.NRGBA()},
		drawlist.Command{Kind: drawlist.Rect, P: [3]drawlist.Point{lo, hi}, Color: w.chrome.Border.NRGBA(), Thickness: 1},
		drawlist.Command{Kind: drawlist.RectFilled, P: [3]drawlist.Point{lo, drawlist.Pt(w.X+width, w.Y+m.TitleHeight)}, Color: title.NRGBA()},
		drawlist.Command{Kind: drawlist.Text, P: [3]drawlist.Point{drawlist.Pt(w.X+m.Padding, w.Y+(m.TitleHeight-m.GlyphHeight)/2)}, Color: w.chrome.Text.NRGBA(), Text: w.Title},
	)
	w.list.Append(w.popup...)

	w.list = nil
}

// clampToBounds keeps the whole title bar on the display.
func (w *Window) clampToBounds() {
	if w.BoundsW > 0 {
		w.X = max(0, min(w.X, w.BoundsW-w.Width()))
	}
	if w.BoundsH > 0 {
		w.Y = max(0, min(w.Y, w.BoundsH-w.Metrics.TitleHeight))
	}
}

// clickable reports whether the button went down inside the rectangle
// this frame and no other widget has claimed the click.
func (w *Window) clickable(x0, y0, x1, y1 float32) bool {
	if !w.in.MouseJustPressed || w.consumed || w.active != "" || w.openCombo != "" {
		return false
	}
	cx, cy := w.in.Cursor()
	return inside(cx, cy, x0, y0, x1, y1)
}

func (w *Window) hover(x0, y0, x1, y1 float32) bool {
	cx, cy := w.in.Cursor()
	return inside(cx, cy, x0, y0, x1, y1)
}

// row reserves the next item row and returns its top.
func (w *Window) row() float32 {
	y := w.cursorY
	w.cursorY += w.Metrics.ItemHeight + w.Metrics.Spacing
	return y
}

func (w *Window) contentLeft() float32 {
	return w.X + w.Metrics.Padding
}

func (w *Window) frameWidth() float32 {
	return w.Width() - 2*w.Metrics.Padding - w.Metrics.LabelWidth
}

func (w *Window) textWidth(s string) float32 {
	return float32(len(s)) * w.Metrics.GlyphWidth
}

func (w *Window) textY(rowY float32) float32 {
	return rowY + (w.Metrics.ItemHeight-w.Metrics.GlyphHeight)/2
}

// buttonColor picks the accent variant for a widget's state.
func (w *Window) buttonColor(active, hovered bool) theme.Color {
	switch {
	case active:
		return w.chrome.ButtonActive
	case hovered:
		return w.chrome.ButtonHovered
	}
	return w.chrome.Button
}

func inside(x, y, x0, y0, x1, y1 float32) bool {
	return x >= x0 && x < x1 && y >= y0 && y < y1
}
