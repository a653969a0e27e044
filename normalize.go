package gridpaint

// Edge identifies one side of a cell rectangle.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "unknown"
}

// EdgeStroke is a flattened per-edge border. Present is false when the edge
// has no stroke.
type EdgeStroke struct {
	Present bool
	Stroke  Stroke
}

// NormalizedConfig is the subset of CellConfig relevant to drawing. Border
// sub-objects are replaced by Edges, ordered top, right, bottom, left.
type NormalizedConfig struct {
	Value    any
	Datatype Datatype
	Format   FormatSpec
	Style    StyleFlags

	Color string
	Fill  string
	Edges [4]EdgeStroke

	HorizontalAlign HorizontalAlign
	VerticalAlign   VerticalAlign

	FontFamily string
	FontSize   float64
	LineHeight float64
	Wrap       WrapMode
	Padding    *float64

	ShowGridLines bool
	IsMergedCell  bool
}

// Normalize flattens cfg for drawing. It reports skip=true for hidden cells,
// in which case the returned config is empty and nothing must be drawn.
func Normalize(cfg CellConfig) (NormalizedConfig, bool) {
	if cfg.IsHidden {
		return NormalizedConfig{}, true
	}
	n := NormalizedConfig{
		Value:           cfg.Value,
		Datatype:        cfg.Datatype,
		Format:          cfg.Format,
		Style:           cfg.Style,
		Color:           cfg.Color,
		Fill:            cfg.Fill,
		HorizontalAlign: cfg.HorizontalAlign,
		VerticalAlign:   cfg.VerticalAlign,
		FontFamily:      cfg.FontFamily,
		FontSize:        cfg.FontSize,
		LineHeight:      cfg.LineHeight,
		Wrap:            cfg.Wrap,
		Padding:         cfg.Padding,
		ShowGridLines:   cfg.ShowGridLines,
		IsMergedCell:    cfg.IsMergedCell,
	}
	if cfg.Format.Decimals != nil {
		d := *cfg.Format.Decimals
		n.Format.Decimals = &d
	}
	if cfg.Padding != nil {
		p := *cfg.Padding
		n.Padding = &p
	}
	b := cfg.Borders
	n.Edges[EdgeTop] = flattenEdge(b.All, b.Top)
	n.Edges[EdgeRight] = flattenEdge(b.All, b.Right)
	n.Edges[EdgeBottom] = flattenEdge(b.All, b.Bottom)
	n.Edges[EdgeLeft] = flattenEdge(b.All, b.Left)
	return n, false
}

// flattenEdge merges an edge border over the shared fallback. A negative
// edge width switches the edge off regardless of All.
func flattenEdge(all, edge *Border) EdgeStroke {
	var s Stroke
	if all != nil {
		s = Stroke{Color: all.Color, Width: all.Width, Dash: all.Dash}
	}
	if edge != nil {
		if edge.Width < 0 {
			return EdgeStroke{}
		}
		if edge.Color != "" {
			s.Color = edge.Color
		}
		if edge.Width != 0 {
			s.Width = edge.Width
		}
		if edge.Dash != nil {
			s.Dash = edge.Dash
		}
	}
	if s.Width <= 0 || s.Color == "" {
		return EdgeStroke{}
	}
	if len(s.Dash) > 0 {
		s.Dash = append([]float64(nil), s.Dash...)
	} else {
		s.Dash = nil
	}
	return EdgeStroke{Present: true, Stroke: s}
}
