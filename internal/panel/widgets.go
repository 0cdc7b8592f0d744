package panel

import (
	"fmt"

	"msd/internal/drawlist"
	"msd/internal/settings"
	"msd/internal/theme"
)

const grabWidth = 10

// Text draws a line of plain text.
func (w *Window) Text(s string) {
	y := w.row()
	w.list.AddText(drawlist.Pt(w.contentLeft(), w.textY(y)), w.chrome.Text.NRGBA(), s)
}

// Separator draws a horizontal rule across the content area.
func (w *Window) Separator() {
	y := w.cursorY + w.Metrics.Spacing/2
	w.cursorY += 2 * w.Metrics.Spacing
	x0 := w.contentLeft()
	x1 := w.X + w.Width() - w.Metrics.Padding
	w.list.AddLine(drawlist.Pt(x0, y), drawlist.Pt(x1, y), w.chrome.Border.NRGBA(), 1)
}

// Checkbox toggles *v when the box or its label is clicked. It reports
// whether *v changed.
func (w *Window) Checkbox(label string, v *bool) bool {
	m := w.Metrics
	y := w.row()
	x := w.contentLeft()
	box := m.ItemHeight
	hitX1 := x + box + m.Spacing + w.textWidth(label)

	changed := false
	if w.clickable(x, y, hitX1, y+box) {
		*v = !*v
		changed = true
		w.consumed = true
	}

	hovered := w.hover(x, y, hitX1, y+box)
	frame := w.chrome.FrameBg
	if hovered {
		frame = w.chrome.ButtonHovered.Scale(0.5)
	}
	w.list.AddRectFilled(drawlist.Pt(x, y), drawlist.Pt(x+box, y+box), frame.NRGBA())
	if *v {
		inset := box / 4
		mark := w.buttonColor(hovered && w.in.MouseDown, hovered)
		w.list.AddRectFilled(drawlist.Pt(x+inset, y+inset), drawlist.Pt(x+box-inset, y+box-inset), mark.NRGBA())
	}
	w.list.AddText(drawlist.Pt(x+box+m.Spacing, w.textY(y)), w.chrome.Text.NRGBA(), label)
	return changed
}

// SliderFloat binds *v to a horizontal slider over [lo, hi]. The value is
// clamped into range every frame, whatever its source.
func (w *Window) SliderFloat(label string, v *float32, lo, hi float32) bool {
	y := w.row()
	x := w.contentLeft()
	fw := w.frameWidth()
	before := *v

	if w.clickable(x, y, x+fw, y+w.Metrics.ItemHeight) {
		w.active = label
		w.consumed = true
	}
	held := w.active == label && w.in.MouseDown
	if held {
		cx, _ := w.in.Cursor()
		*v = lo + (cx-x)/fw*(hi-lo)
	}
	*v = settings.Clamp(*v, lo, hi)

	hovered := w.hover(x, y, x+fw, y+w.Metrics.ItemHeight)
	w.frame(x, y, fw)
	t := float32(0)
	if hi > lo {
		t = (*v - lo) / (hi - lo)
	}
	gx := x + t*(fw-grabWidth)
	w.list.AddRectFilled(drawlist.Pt(gx, y+2), drawlist.Pt(gx+grabWidth, y+w.Metrics.ItemHeight-2), w.buttonColor(held, hovered).NRGBA())
	w.centeredText(fmt.Sprintf("%.3f", *v), x, y, fw)
	w.label(label, y)

	return *v != before
}

// Combo selects one of items. *current is clamped into the item range.
// The open list is drawn on top of the window by End.
func (w *Window) Combo(label string, current *int, items []string) bool {
	if len(items) == 0 {
		return false
	}
	m := w.Metrics
	y := w.row()
	x := w.contentLeft()
	fw := w.frameWidth()
	before := *current
	*current = clampIndex(*current, len(items))

	cx, cy := w.in.Cursor()
	open := w.openCombo == label
	listY := y + m.ItemHeight
	listY1 := listY + float32(len(items))*m.ItemHeight

	if open && w.in.MouseJustPressed && !w.consumed {
		if inside(cx, cy, x, listY, x+fw, listY1) {
			*current = int((cy - listY) / m.ItemHeight)
			*current = clampIndex(*current, len(items))
		}
		w.openCombo = ""
		w.consumed = true
		open = false
	} else if w.clickable(x, y, x+fw, y+m.ItemHeight) {
		w.openCombo = label
		w.consumed = true
		open = true
	}

	hovered := w.hover(x, y, x+fw, y+m.ItemHeight)
	w.frame(x, y, fw)
	w.list.AddText(drawlist.Pt(x+m.Padding/2, w.textY(y)), w.chrome.Text.NRGBA(), items[*current])
	arrowX := x + fw - m.ItemHeight
	w.list.AddRectFilled(drawlist.Pt(arrowX, y), drawlist.Pt(x+fw, y+m.ItemHeight), w.buttonColor(open, hovered).NRGBA())
	mid := arrowX + m.ItemHeight/2
	w.list.AddTriangleFilled(
		drawlist.Pt(mid-4, y+m.ItemHeight/2-2),
		drawlist.Pt(mid+4, y+m.ItemHeight/2-2),
		drawlist.Pt(mid, y+m.ItemHeight/2+3),
		w.chrome.Text.NRGBA(),
	)
	w.label(label, y)

	if open {
		w.popup = append(w.popup, rectFilled(x, listY, x+fw, listY1, w.chrome.WindowBg))
		for i, item := range items {
			iy := listY + float32(i)*m.ItemHeight
			switch {
			case inside(cx, cy, x, iy, x+fw, iy+m.ItemHeight):
				w.popup = append(w.popup, rectFilled(x, iy, x+fw, iy+m.ItemHeight, w.chrome.ButtonHovered))
			case i == *current:
				w.popup = append(w.popup, rectFilled(x, iy, x+fw, iy+m.ItemHeight, w.chrome.Button))
			}
			w.popup = append(w.popup, drawlist.Command{
				Kind:  drawlist.Text,
				P:     [3]drawlist.Point{drawlist.Pt(x+m.Padding/2, w.textY(iy))},
				Color: w.chrome.Text.NRGBA(),
				Text:  item,
			})
		}
		w.popup = append(w.popup, drawlist.Command{
			Kind:      drawlist.Rect,
			P:         [3]drawlist.Point{drawlist.Pt(x, listY), drawlist.Pt(x+fw, listY1)},
			Color:     w.chrome.Border.NRGBA(),
			Thickness: 1,
		})
	}

	return *current != before
}

var channelNames = [4]string{"R", "G", "B", "A"}

// ColorEdit4 edits the four channels of *c with one slider each, followed
// by a swatch of the current color.
func (w *Window) ColorEdit4(label string, c *theme.Color) bool {
	m := w.Metrics
	y := w.row()
	x := w.contentLeft()
	fw := w.frameWidth()
	before := *c
	*c = c.Clamped()

	gap := m.Spacing
	cw := (fw - m.ItemHeight - 4*gap) / 4
	for i := range channelNames {
		id := label + "##" + channelNames[i]
		x0 := x + float32(i)*(cw+gap)
		if w.clickable(x0, y, x0+cw, y+m.ItemHeight) {
			w.active = id
			w.consumed = true
		}
		held := w.active == id && w.in.MouseDown
		if held {
			cx, _ := w.in.Cursor()
			*c = c.WithChannel(i, (cx-x0)/cw)
		}

		v := c.Channel(i)
		hovered := w.hover(x0, y, x0+cw, y+m.ItemHeight)
		w.frame(x0, y, cw)
		w.list.AddRectFilled(drawlist.Pt(x0, y+m.ItemHeight-3), drawlist.Pt(x0+v*cw, y+m.ItemHeight), w.buttonColor(held, hovered).NRGBA())
		w.centeredText(fmt.Sprintf("%s:%d", channelNames[i], int(v*255+0.5)), x0, y, cw)
	}

	sx := x + fw - m.ItemHeight
	w.list.AddRectFilled(drawlist.Pt(sx, y), drawlist.Pt(sx+m.ItemHeight, y+m.ItemHeight), c.NRGBA())
	w.list.AddRect(drawlist.Pt(sx, y), drawlist.Pt(sx+m.ItemHeight, y+m.ItemHeight), w.chrome.Border.NRGBA(), 1)
	w.label(label, y)

	return *c != before
}

func (w *Window) frame(x, y, width float32) {
	w.list.AddRectFilled(drawlist.Pt(x, y), drawlist.Pt(x+width, y+w.Metrics.ItemHeight), w.chrome.FrameBg.NRGBA())
}

func (w *Window) label(s string, y float32) {
	lx := w.contentLeft() + w.frameWidth() + w.Metrics.Spacing
	w.list.AddText(drawlist.Pt(lx, w.textY(y)), w.chrome.Text.NRGBA(), s)
}

func (w *Window) centeredText(s string, x, y, width float32) {
	tx := x + (width-w.textWidth(s))/2
	w.list.AddText(drawlist.Pt(tx, w.textY(y)), w.chrome.Text.NRGBA(), s)
}

func rectFilled(x0, y0, x1, y1 float32, c theme.Color) drawlist.Command {
	return drawlist.Command{
		Kind:  drawlist.RectFilled,
		P:     [3]drawlist.Point{drawlist.Pt(x0, y0), drawlist.Pt(x1, y1)},
		Color: c.NRGBA(),
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
