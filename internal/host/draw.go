package host

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"msd/internal/drawlist"
)

// DefaultSegments is used when a circle command does not say.
const DefaultSegments = 32

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Replay draws every command of l onto dst in order. face is used for
// Text commands; a nil face skips them.
func Replay(dst *ebiten.Image, l *drawlist.List, face text.Face) {
	cmds := l.Commands()
	for i := range cmds {
		drawCommand(dst, &cmds[i], face)
	}
}

func drawCommand(dst *ebiten.Image, c *drawlist.Command, face text.Face) {
	switch c.Kind {
	case drawlist.Line:
		vector.StrokeLine(dst, c.P[0].X, c.P[0].Y, c.P[1].X, c.P[1].Y, c.Thickness, c.Color, true)
	case drawlist.Circle:
		strokePath(dst, circlePath(c.P[0], c.Radius, c.Segments), c.Thickness, c.Color)
	case drawlist.CircleFilled:
		fillPath(dst, circlePath(c.P[0], c.Radius, c.Segments), c.Color)
	case drawlist.Triangle:
		strokePath(dst, polygonPath(c.P[:]), c.Thickness, c.Color)
	case drawlist.TriangleFilled:
		fillPath(dst, polygonPath(c.P[:]), c.Color)
	case drawlist.Rect:
		lo, hi := c.P[0], c.P[1]
		corners := []drawlist.Point{lo, drawlist.Pt(hi.X, lo.Y), hi, drawlist.Pt(lo.X, hi.Y)}
		strokePath(dst, polygonPath(corners), c.Thickness, c.Color)
	case drawlist.RectFilled:
		lo, hi := c.P[0], c.P[1]
		vector.DrawFilledRect(dst, lo.X, lo.Y, hi.X-lo.X, hi.Y-lo.Y, c.Color, false)
	case drawlist.Text:
		if face == nil {
			return
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(c.P[0].X), float64(c.P[0].Y))
		op.ColorScale.ScaleWithColor(c.Color)
		text.Draw(dst, c.Text, face, op)
	}
}

func circlePath(center drawlist.Point, radius float32, segments int) *vector.Path {
	if segments <= 2 {
		segments = DefaultSegments
	}
	pts := make([]drawlist.Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = drawlist.Pt(
			center.X+radius*float32(math.Cos(a)),
			center.Y+radius*float32(math.Sin(a)),
		)
	}
	return polygonPath(pts)
}

func polygonPath(pts []drawlist.Point) *vector.Path {
	var p vector.Path
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return &p
}

func fillPath(dst *ebiten.Image, p *vector.Path, clr color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr, ebiten.FillRuleNonZero)
}

func strokePath(dst *ebiten.Image, p *vector.Path, width float32, clr color.Color) {
	op := &vector.StrokeOptions{
		Width:      width,
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, clr, ebiten.FillRuleFillAll)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color, rule ebiten.FillRule) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	op.FillRule = rule
	dst.DrawTriangles(vs, is, white(), op)
}
