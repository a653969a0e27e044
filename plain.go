package gridpaint

// PlainCell is the generic grid cell: a string value on a stroked
// background, with no formatter and no theme. Empty fields take the
// renderer's PlainDefaults.
type PlainCell struct {
	Value       string
	Fill        string
	Stroke      string
	StrokeWidth float64
	TextColor   string
	Align       HorizontalAlign
	VAlign      VerticalAlign
	Padding     *float64
	FontFamily  string
	FontSize    float64
	FontWeight  FontWeight
	FontStyle   FontStyle
	Decoration  string
	Wrap        WrapMode
	Geometry    Rect
}

// RenderPlain always fills and strokes the cell rect, then draws the value
// when it is non-empty.
func (r *Renderer) RenderPlain(c PlainCell, t DrawTarget) {
	d := r.opts.defaults.Plain
	stroke := Stroke{
		Color: orString(c.Stroke, d.Stroke),
		Width: orPositive(c.StrokeWidth, d.StrokeWidth),
	}
	t.FillRect(c.Geometry, orString(c.Fill, d.Fill))
	t.StrokeRect(c.Geometry, stroke)
	if c.Value == "" {
		return
	}
	style := TextStyle{
		Color:           orString(c.TextColor, d.TextColor),
		FontFamily:      orString(c.FontFamily, d.FontFamily),
		FontSize:        orPositive(c.FontSize, d.FontSize),
		FontWeight:      c.FontWeight,
		FontStyle:       c.FontStyle,
		Decoration:      c.Decoration,
		HorizontalAlign: c.Align,
		VerticalAlign:   c.VAlign,
		Padding:         d.Padding,
		Wrap:            c.Wrap,
	}
	if style.FontWeight == "" {
		style.FontWeight = WeightNormal
	}
	if style.FontStyle == "" {
		style.FontStyle = StyleNormal
	}
	if style.HorizontalAlign == "" {
		style.HorizontalAlign = d.Align
	}
	if style.VerticalAlign == "" {
		style.VerticalAlign = d.VerticalAlign
	}
	if c.Padding != nil {
		style.Padding = *c.Padding
	}
	if style.Wrap == "" {
		style.Wrap = d.Wrap
	}
	t.DrawText(c.Geometry, c.Value, style)
}
