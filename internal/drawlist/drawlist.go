// Package drawlist records primitive draw commands for one frame.
//
// Commands carry their own color and thickness, so there is no style
// stack: whoever adds a command decides how it looks. The list is
// replayed in insertion order, which makes later commands paint over
// earlier ones.
package drawlist

import "image/color"

type Kind int

const (
	Line Kind = iota
	Circle
	CircleFilled
	Triangle
	TriangleFilled
	Rect
	RectFilled
	Text
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "Line"
	case Circle:
		return "Circle"
	case CircleFilled:
		return "CircleFilled"
	case Triangle:
		return "Triangle"
	case TriangleFilled:
		return "TriangleFilled"
	case Rect:
		return "Rect"
	case RectFilled:
		return "RectFilled"
	case Text:
		return "Text"
	}
	return "Unknown"
}

// Filled reports whether the kind paints its interior.
func (k Kind) Filled() bool {
	return k == CircleFilled || k == TriangleFilled || k == RectFilled
}

type Point struct {
	X, Y float32
}

func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Command is a single primitive. Which fields matter depends on Kind:
//
//	Line:             P[0], P[1], Thickness
//	Circle*:          P[0] (center), Radius, Segments, Thickness
//	Triangle*:        P[0..2], Thickness
//	Rect*:            P[0] (min), P[1] (max), Thickness
//	Text:             P[0] (top-left), Text
type Command struct {
	Kind      Kind
	P         [3]Point
	Radius    float32
	Segments  int
	Thickness float32
	Color     color.NRGBA
	Text      string
}

type List struct {
	cmds []Command
}

func New() *List {
	return &List{}
}

func (l *List) Len() int {
	return len(l.cmds)
}

// Commands returns the recorded commands. The slice is owned by the list.
func (l *List) Commands() []Command {
	return l.cmds
}

// Reset empties the list but keeps its capacity for the next frame.
func (l *List) Reset() {
	l.cmds = l.cmds[:0]
}

// Append adds commands to the end of the list.
func (l *List) Append(cmds ...Command) {
	l.cmds = append(l.cmds, cmds...)
}

// InsertAt places cmds before the command currently at index i.
// It lets a container draw its background after measuring its contents.
func (l *List) InsertAt(i int, cmds ...Command) {
	if i < 0 {
		i = 0
	}
	if i >= len(l.cmds) {
		l.cmds = append(l.cmds, cmds...)
		return
	}
	l.cmds = append(l.cmds[:i], append(append([]Command(nil), cmds...), l.cmds[i:]...)...)
}

func (l *List) AddLine(p1, p2 Point, col color.NRGBA, thickness float32) {
	l.Append(Command{Kind: Line, P: [3]Point{p1, p2}, Color: col, Thickness: thickness})
}

func (l *List) AddCircle(center Point, radius float32, col color.NRGBA, segments int, thickness float32) {
	l.Append(Command{Kind: Circle, P: [3]Point{center}, Radius: radius, Segments: segments, Color: col, Thickness: thickness})
}

func (l *List) AddCircleFilled(center Point, radius float32, col color.NRGBA, segments int) {
	l.Append(Command{Kind: CircleFilled, P: [3]Point{center}, Radius: radius, Segments: segments, Color: col})
}

func (l *List) AddTriangle(p1, p2, p3 Point, col color.NRGBA, thickness float32) {
	l.Append(Command{Kind: Triangle, P: [3]Point{p1, p2, p3}, Color: col, Thickness: thickness})
}

func (l *List) AddTriangleFilled(p1, p2, p3 Point, col color.NRGBA) {
	l.Append(Command{Kind: TriangleFilled, P: [3]Point{p1, p2, p3}, Color: col})
}

func (l *List) AddRect(lo, hi Point, col color.NRGBA, thickness float32) {
	l.Append(Command{Kind: Rect, P: [3]Point{lo, hi}, Color: col, Thickness: thickness})
}

func (l *List) AddRectFilled(lo, hi Point, col color.NRGBA) {
	l.Append(Command{Kind: RectFilled, P: [3]Point{lo, hi}, Color: col})
}

func (l *List) AddText(pos Point, col color.NRGBA, s string) {
	l.Append(Command{Kind: Text, P: [3]Point{pos}, Color: col, Text: s})
}
