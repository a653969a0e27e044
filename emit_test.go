package gridpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderRecorded(t *testing.T, r *Renderer, cfg CellConfig, mode ThemeMode) *Recorder {
	t.Helper()
	rec := &Recorder{}
	require.NoError(t, r.Render(cfg, mode, rec))
	return rec
}

func TestEmit_HiddenCellDrawsNothing(t *testing.T) {
	r := NewRenderer()
	cfgs := []CellConfig{
		{IsHidden: true, Value: 5},
		{IsHidden: true, Fill: "red", IsMergedCell: true, Value: "x",
			Borders: Borders{All: &Border{Color: "#000", Width: 1}}, Geometry: Rect{Width: 10, Height: 10}},
	}
	for _, cfg := range cfgs {
		rec := renderRecorded(t, r, cfg, Light)
		assert.Empty(t, rec.Ops)
	}
}

func TestEmit_HiddenCellSkipsFormatter(t *testing.T) {
	called := false
	r := NewRenderer(WithFormatter(FormatterFunc(func(any, Datatype, FormatOptions) (string, error) {
		called = true
		return "x", nil
	})))
	renderRecorded(t, r, CellConfig{IsHidden: true, Value: 1}, Light)
	assert.False(t, called)
}

func TestEmit_NumberLightMode(t *testing.T) {
	geom := Rect{X: 0, Y: 0, Width: 100, Height: 20}
	rec := renderRecorded(t, NewRenderer(), CellConfig{Value: 42, Datatype: Number, Geometry: geom}, Light)
	require.Len(t, rec.Ops, 1)
	op := rec.Ops[0]
	assert.Equal(t, OpDrawText, op.Kind)
	assert.Equal(t, "42", op.Text)
	assert.Equal(t, geom, op.Rect)
	assert.Equal(t, AlignRight, op.Style.HorizontalAlign)
	assert.Equal(t, "#333", op.Style.Color)
	assert.Equal(t, 0.0, op.Style.HitStrokeWidth)
}

func TestEmit_MergedCellDarkMode(t *testing.T) {
	geom := Rect{X: 10, Y: 20, Width: 200, Height: 40}
	rec := renderRecorded(t, NewRenderer(), CellConfig{Value: "hi", IsMergedCell: true, Geometry: geom}, Dark)
	require.Equal(t, []OpKind{OpFillRect, OpDrawText}, rec.Kinds())
	assert.Equal(t, Rect{X: 11, Y: 21, Width: 199, Height: 39}, rec.Ops[0].Rect)
	assert.Equal(t, DarkModeSurface, rec.Ops[0].Color)
	assert.Equal(t, "hi", rec.Ops[1].Text)
	assert.Equal(t, AlignLeft, rec.Ops[1].Style.HorizontalAlign)
	assert.Equal(t, "white", rec.Ops[1].Style.Color)
}

func TestEmit_MergedCellDefaultFillLight(t *testing.T) {
	rec := renderRecorded(t, NewRenderer(), CellConfig{IsMergedCell: true, Geometry: Rect{Width: 5, Height: 5}}, Light)
	require.Equal(t, []OpKind{OpFillRect}, rec.Kinds())
	assert.Equal(t, "white", rec.Ops[0].Color)
}

func TestEmit_FullOrder(t *testing.T) {
	geom := Rect{X: 0, Y: 0, Width: 50, Height: 10}
	cfg := CellConfig{
		Value:         "t",
		Fill:          "#ffffff",
		ShowGridLines: true,
		Borders: Borders{
			Top:    &Border{Color: "red", Width: 1},
			Right:  &Border{Color: "green", Width: 2},
			Bottom: &Border{Color: "blue", Width: 1, Dash: []float64{2, 1}},
			Left:   &Border{Color: "black", Width: 1},
		},
		Geometry: geom,
	}
	rec := renderRecorded(t, NewRenderer(), cfg, Light)
	require.Equal(t, []OpKind{OpFillRect, OpStrokeRect, OpStrokeEdge, OpStrokeEdge, OpStrokeEdge, OpStrokeEdge, OpDrawText}, rec.Kinds())

	assert.Equal(t, Rect{X: 1, Y: 1, Width: 49, Height: 9}, rec.Ops[0].Rect)
	assert.Equal(t, "#ffffff", rec.Ops[0].Color)
	assert.Equal(t, Rect{X: 0.5, Y: 0.5, Width: 50, Height: 10}, rec.Ops[1].Rect)
	assert.Equal(t, Stroke{Color: "#cccccc", Width: 1}, rec.Ops[1].Stroke)

	top, right, bottom, left := rec.Ops[2], rec.Ops[3], rec.Ops[4], rec.Ops[5]
	assert.Equal(t, [2]Point{{0, 0}, {50, 0}}, [2]Point{top.From, top.To})
	assert.Equal(t, "red", top.Stroke.Color)
	assert.Equal(t, [2]Point{{50, 0}, {50, 10}}, [2]Point{right.From, right.To})
	assert.Equal(t, 2.0, right.Stroke.Width)
	assert.Equal(t, [2]Point{{0, 10}, {50, 10}}, [2]Point{bottom.From, bottom.To})
	assert.Equal(t, []float64{2, 1}, bottom.Stroke.Dash)
	assert.Equal(t, [2]Point{{0, 0}, {0, 10}}, [2]Point{left.From, left.To})
}

func TestEmit_BordersWithoutFill(t *testing.T) {
	cfg := CellConfig{
		Borders:  Borders{Bottom: &Border{Color: "#000", Width: 1}},
		Geometry: Rect{Width: 10, Height: 10},
	}
	rec := renderRecorded(t, NewRenderer(), cfg, Light)
	assert.Equal(t, []OpKind{OpStrokeEdge}, rec.Kinds())
}

func TestEmit_DegenerateGeometryStillEmits(t *testing.T) {
	cfg := CellConfig{Value: "x", Fill: "red", Geometry: Rect{X: 5, Y: 5, Width: 0, Height: -3}}
	rec := renderRecorded(t, NewRenderer(), cfg, Light)
	require.Equal(t, []OpKind{OpFillRect, OpStrokeRect, OpDrawText}, rec.Kinds())
	assert.Equal(t, Rect{X: 6, Y: 6, Width: -1, Height: -4}, rec.Ops[0].Rect)
}

func TestEmit_NilValueNoTextPrimitive(t *testing.T) {
	rec := renderRecorded(t, NewRenderer(), CellConfig{Value: nil, Fill: "red", Geometry: Rect{Width: 10, Height: 10}}, Light)
	assert.NotContains(t, rec.Kinds(), OpDrawText)
}

func TestRecorder_StringAndReset(t *testing.T) {
	rec := &Recorder{}
	rec.FillRect(Rect{1, 1, 9, 9}, "#fff")
	rec.DrawText(Rect{0, 0, 10, 10}, "a", TextStyle{})
	assert.Equal(t, "fillRect(1,1,9,9 #fff)\ndrawText(0,0,10,10 \"a\")\n", rec.String())
	rec.Reset()
	assert.Empty(t, rec.Ops)
}
