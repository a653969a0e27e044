package gridpaint

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	transparent = color.RGBA{}
)

func newCanvas() (*image.RGBA, *ImageTarget) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	return img, NewImageTarget(img)
}

func TestImageTarget_FillRect(t *testing.T) {
	img, target := newCanvas()
	target.FillRect(Rect{X: 1, Y: 1, Width: 9, Height: 9}, "#ff0000")

	assert.Equal(t, transparent, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(1, 1))
	assert.Equal(t, red, img.RGBAAt(9, 9))
	assert.Equal(t, transparent, img.RGBAAt(10, 10))
}

func TestImageTarget_DegenerateRectIsNoop(t *testing.T) {
	img, target := newCanvas()
	target.FillRect(Rect{Width: 0, Height: 10}, "red")
	target.StrokeRect(Rect{Width: 10, Height: -1}, Stroke{Color: "red", Width: 1})
	target.DrawText(Rect{Width: 0, Height: 10}, "x", TextStyle{Color: "red"})
	for _, b := range img.Pix {
		assert.Zero(t, b)
	}
}

func TestImageTarget_StrokeEdge(t *testing.T) {
	img, target := newCanvas()
	target.StrokeEdge(Point{X: 0, Y: 5}, Point{X: 10, Y: 5}, Stroke{Color: "red", Width: 1})
	for x := 0; x < 10; x++ {
		assert.Equal(t, red, img.RGBAAt(x, 5), "x=%d", x)
	}
	assert.Equal(t, transparent, img.RGBAAt(10, 5))
	assert.Equal(t, transparent, img.RGBAAt(0, 6))
}

func TestImageTarget_StrokeEdgeVerticalWide(t *testing.T) {
	img, target := newCanvas()
	target.StrokeEdge(Point{X: 3, Y: 10}, Point{X: 3, Y: 0}, Stroke{Color: "red", Width: 2})
	assert.Equal(t, red, img.RGBAAt(3, 0))
	assert.Equal(t, red, img.RGBAAt(4, 9))
	assert.Equal(t, transparent, img.RGBAAt(5, 5))
}

func TestImageTarget_StrokeEdgeDash(t *testing.T) {
	img, target := newCanvas()
	target.StrokeEdge(Point{X: 0, Y: 0}, Point{X: 8, Y: 0}, Stroke{Color: "red", Width: 1, Dash: []float64{2, 2}})
	want := []bool{true, true, false, false, true, true, false, false}
	for x, on := range want {
		if on {
			assert.Equal(t, red, img.RGBAAt(x, 0), "x=%d", x)
		} else {
			assert.Equal(t, transparent, img.RGBAAt(x, 0), "x=%d", x)
		}
	}
}

func TestImageTarget_DiagonalIgnored(t *testing.T) {
	img, target := newCanvas()
	target.StrokeEdge(Point{X: 0, Y: 0}, Point{X: 5, Y: 5}, Stroke{Color: "red", Width: 1})
	for _, b := range img.Pix {
		assert.Zero(t, b)
	}
}

func TestImageTarget_DrawTextClipped(t *testing.T) {
	img, target := newCanvas()
	cell := Rect{X: 0, Y: 0, Width: 20, Height: 20}
	target.DrawText(cell, "WWWWWWWW", TextStyle{Color: "red", VerticalAlign: AlignMiddle, Padding: 2})

	inside := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			assert.Less(t, x, 20, "text leaked outside the cell at x=%d", x)
			inside++
		}
	}
	assert.Positive(t, inside)
}

func TestImageTarget_RendersCell(t *testing.T) {
	img, target := newCanvas()
	r := NewRenderer()
	err := r.Render(CellConfig{
		Value:    "ok",
		Fill:     "#ff0000",
		Geometry: Rect{Width: 20, Height: 20},
	}, Light, target)
	assert.NoError(t, err)
	assert.Equal(t, red, img.RGBAAt(2, 17))
}

func TestSolid_UnparseableIsBlack(t *testing.T) {
	assert.Equal(t, color.RGBA{A: 0xff}, solid("not-a-color"))
}
