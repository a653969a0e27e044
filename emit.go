package gridpaint

// Emit issues the draw calls for one resolved cell. The order is fixed so
// that later primitives layer over earlier ones:
//
//  1. background fill, inset 1px on the leading edges
//  2. outline of an explicit fill at a half-pixel offset
//  3. explicit per-edge borders, top, right, bottom, left
//  4. the text run
//
// Degenerate geometry is passed through; the target must no-op safely.
func Emit(v ResolvedVisual, geom Rect, t DrawTarget) {
	if v.ShouldDrawFill {
		t.FillRect(Rect{
			X:      geom.X + 1,
			Y:      geom.Y + 1,
			Width:  geom.Width - 1,
			Height: geom.Height - 1,
		}, v.FillColor)
		if v.ShouldDrawBorder {
			t.StrokeRect(Rect{
				X:      geom.X + 0.5,
				Y:      geom.Y + 0.5,
				Width:  geom.Width,
				Height: geom.Height,
			}, Stroke{Color: v.StrokeColor, Width: 1})
		}
	}
	for e, edge := range v.Edges {
		if !edge.Present {
			continue
		}
		from, to := edgeLine(Edge(e), geom)
		t.StrokeEdge(from, to, edge.Stroke)
	}
	if v.HasText {
		t.DrawText(geom, v.Text, v.TextStyle())
	}
}

// edgeLine returns the endpoints of one side of r.
func edgeLine(e Edge, r Rect) (Point, Point) {
	left, top := r.X, r.Y
	right, bottom := r.X+r.Width, r.Y+r.Height
	switch e {
	case EdgeTop:
		return Point{left, top}, Point{right, top}
	case EdgeRight:
		return Point{right, top}, Point{right, bottom}
	case EdgeBottom:
		return Point{left, bottom}, Point{right, bottom}
	default:
		return Point{left, top}, Point{left, bottom}
	}
}
