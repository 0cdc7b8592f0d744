// Package marker draws the centered dot in one of the four shapes.
package marker

import (
	"msd/internal/drawlist"
	"msd/internal/settings"
	"msd/internal/theme"
)

// Segments used for circle shapes.
const Segments = 32

// sin(60°), the horizontal reach of an equilateral triangle's base corners.
const triangleSpread = 0.866

// Style is everything that decides how the marker looks.
type Style struct {
	Shape            settings.Shape
	Size             float32
	Fill             theme.Color
	Outline          theme.Color
	ShowOutline      bool
	OutlineThickness float32
	Filled           bool
}

// StyleOf reads the marker fields out of the settings state.
func StyleOf(s *settings.State) Style {
	return Style{
		Shape:            s.DotShape,
		Size:             s.DotSize,
		Fill:             s.DotColor,
		Outline:          s.OutlineColor,
		ShowOutline:      s.ShowOutline,
		OutlineThickness: s.OutlineThickness,
		Filled:           s.IsFilled,
	}
}

// Draw emits the marker centered at pos. The outline, when enabled, is
// emitted before the fill so the fill paints over it. Unknown shapes
// emit nothing.
func Draw(l *drawlist.List, pos drawlist.Point, st Style) {
	fill := st.Fill.NRGBA()
	outline := st.Outline.NRGBA()
	size, t := st.Size, st.OutlineThickness

	switch st.Shape {
	case settings.Circle:
		if st.ShowOutline {
			l.AddCircle(pos, size+t, outline, Segments, t)
		}
		if st.Filled {
			l.AddCircleFilled(pos, size, fill, Segments)
		} else {
			l.AddCircle(pos, size, fill, Segments, 1)
		}

	case settings.Cross:
		half := size * 0.5
		if st.ShowOutline {
			l.AddLine(drawlist.Pt(pos.X-half-t, pos.Y), drawlist.Pt(pos.X+half+t, pos.Y), outline, t*3)
			l.AddLine(drawlist.Pt(pos.X, pos.Y-half-t), drawlist.Pt(pos.X, pos.Y+half+t), outline, t*3)
		}
		var width float32 = 1
		if st.Filled {
			width = 2
		}
		l.AddLine(drawlist.Pt(pos.X-half, pos.Y), drawlist.Pt(pos.X+half, pos.Y), fill, width)
		l.AddLine(drawlist.Pt(pos.X, pos.Y-half), drawlist.Pt(pos.X, pos.Y+half), fill, width)

	case settings.Triangle:
		p1 := drawlist.Pt(pos.X, pos.Y-size)
		p2 := drawlist.Pt(pos.X-size*triangleSpread, pos.Y+size*0.5)
		p3 := drawlist.Pt(pos.X+size*triangleSpread, pos.Y+size*0.5)
		if st.ShowOutline {
			l.AddTriangle(p1, p2, p3, outline, t)
		}
		if st.Filled {
			l.AddTriangleFilled(p1, p2, p3, fill)
		} else {
			l.AddTriangle(p1, p2, p3, fill, 1)
		}

	case settings.Square:
		lo := drawlist.Pt(pos.X-size, pos.Y-size)
		hi := drawlist.Pt(pos.X+size, pos.Y+size)
		if st.ShowOutline {
			grow := drawlist.Pt(t, t)
			l.AddRect(lo.Sub(grow), hi.Add(grow), outline, t)
		}
		if st.Filled {
			l.AddRectFilled(lo, hi, fill)
		} else {
			l.AddRect(lo, hi, fill, 1)
		}
	}
}
