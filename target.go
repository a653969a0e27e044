package gridpaint

// Stroke describes a line: color, width in pixels and an optional dash
// pattern of alternating on/off lengths.
type Stroke struct {
	Color string
	Width float64
	Dash  []float64
}

// TextStyle carries every attribute the draw target needs to lay out and
// paint one text run. Line breaking and shaping are the target's job.
type TextStyle struct {
	Color           string
	FontFamily      string
	FontSize        float64
	FontWeight      FontWeight
	FontStyle       FontStyle
	Decoration      string
	HorizontalAlign HorizontalAlign
	VerticalAlign   VerticalAlign
	Padding         float64
	LineHeight      float64
	Wrap            WrapMode
	HitStrokeWidth  float64
}

// FontSpec returns the combined "weight style" string canvas hosts expect,
// e.g. "bold italic".
func (s TextStyle) FontSpec() string {
	return string(s.FontWeight) + " " + string(s.FontStyle)
}

// DrawTarget is the immediate-mode surface cells are painted on. The
// pipeline only issues these calls and never reads back from the target.
// Implementations must tolerate zero or negative sizes.
type DrawTarget interface {
	FillRect(r Rect, color string)
	StrokeRect(r Rect, s Stroke)
	StrokeEdge(from, to Point, s Stroke)
	DrawText(r Rect, text string, style TextStyle)
}
