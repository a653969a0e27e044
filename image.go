package gridpaint

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageTarget paints primitives onto a draw.Image. Text uses a single
// bitmap face regardless of family and size; wrapping is not performed.
// Colors that fail to parse are painted black.
type ImageTarget struct {
	dst  draw.Image
	face font.Face
}

// NewImageTarget returns a target drawing on dst with the basic 7x13 face.
func NewImageTarget(dst draw.Image) *ImageTarget {
	return &ImageTarget{dst: dst, face: basicfont.Face7x13}
}

// WithFace returns a copy of the target using face for text.
func (t *ImageTarget) WithFace(face font.Face) *ImageTarget {
	return &ImageTarget{dst: t.dst, face: face}
}

func (t *ImageTarget) FillRect(r Rect, c string) {
	rect, ok := pixelRect(r)
	if !ok {
		return
	}
	draw.Draw(t.dst, rect, image.NewUniform(solid(c)), image.Point{}, draw.Over)
}

func (t *ImageTarget) StrokeRect(r Rect, s Stroke) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	left, top := r.X, r.Y
	right, bottom := r.X+r.Width, r.Y+r.Height
	t.StrokeEdge(Point{left, top}, Point{right, top}, s)
	t.StrokeEdge(Point{right, top}, Point{right, bottom}, s)
	t.StrokeEdge(Point{left, bottom}, Point{right, bottom}, s)
	t.StrokeEdge(Point{left, top}, Point{left, bottom}, s)
}

// StrokeEdge draws horizontal and vertical lines only; cell edges are never
// diagonal.
func (t *ImageTarget) StrokeEdge(from, to Point, s Stroke) {
	if s.Width <= 0 {
		return
	}
	width := int(math.Max(1, math.Round(s.Width)))
	src := image.NewUniform(solid(s.Color))
	x0, y0 := int(math.Floor(from.X)), int(math.Floor(from.Y))
	x1, y1 := int(math.Floor(to.X)), int(math.Floor(to.Y))
	horizontal := y0 == y1
	if !horizontal && x0 != x1 {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	length := x1 - x0
	if !horizontal {
		length = y1 - y0
	}
	for i := 0; i < length; i++ {
		if !dashOn(s.Dash, float64(i)) {
			continue
		}
		var px image.Rectangle
		if horizontal {
			px = image.Rect(x0+i, y0, x0+i+1, y0+width)
		} else {
			px = image.Rect(x0, y0+i, x0+width, y0+i+1)
		}
		draw.Draw(t.dst, px, src, image.Point{}, draw.Over)
	}
}

func (t *ImageTarget) DrawText(r Rect, text string, style TextStyle) {
	rect, ok := pixelRect(r)
	if !ok || text == "" {
		return
	}
	pad := int(math.Round(style.Padding))
	metrics := t.face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	advance := font.MeasureString(t.face, text).Ceil()

	var x int
	switch style.HorizontalAlign {
	case AlignRight:
		x = rect.Max.X - pad - advance
	case AlignCenter:
		x = rect.Min.X + (rect.Dx()-advance)/2
	default:
		x = rect.Min.X + pad
	}
	var baseline int
	switch style.VerticalAlign {
	case AlignTop:
		baseline = rect.Min.Y + pad + ascent
	case AlignMiddle:
		baseline = rect.Min.Y + (rect.Dy()+ascent-descent)/2
	default:
		baseline = rect.Max.Y - pad - descent
	}

	clip, ok := t.dst.(subImager)
	dst := t.dst
	if ok {
		if sub, ok := clip.SubImage(rect).(draw.Image); ok {
			dst = sub
		}
	}
	src := image.NewUniform(solid(style.Color))
	d := &font.Drawer{Dst: dst, Src: src, Face: t.face, Dot: fixed.P(x, baseline)}
	d.DrawString(text)
	if style.FontWeight == WeightBold {
		d.Dot = fixed.P(x+1, baseline)
		d.DrawString(text)
	}
	for _, deco := range strings.Fields(style.Decoration) {
		var y int
		switch deco {
		case DecorationUnderline:
			y = baseline + 1
		case DecorationStrike:
			y = baseline - ascent/3
		default:
			continue
		}
		draw.Draw(dst, image.Rect(x, y, x+advance, y+1), src, image.Point{}, draw.Over)
	}
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// pixelRect snaps r to whole pixels. It reports false for empty rects.
func pixelRect(r Rect) (image.Rectangle, bool) {
	if r.Width <= 0 || r.Height <= 0 {
		return image.Rectangle{}, false
	}
	x0, y0 := int(math.Floor(r.X)), int(math.Floor(r.Y))
	x1, y1 := int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height))
	return image.Rect(x0, y0, x1, y1), true
}

// dashOn reports whether offset falls on an "on" segment of dash.
func dashOn(dash []float64, offset float64) bool {
	var total float64
	for _, d := range dash {
		total += d
	}
	if total <= 0 {
		return true
	}
	pos := math.Mod(offset, total)
	for i, d := range dash {
		if pos < d {
			return i%2 == 0
		}
		pos -= d
	}
	return true
}

func solid(c string) color.RGBA {
	rgba, ok := ParseColor(c)
	if !ok {
		return color.RGBA{A: 0xff}
	}
	return rgba
}
