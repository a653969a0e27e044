package gridpaint

import "strings"

// ResolvedVisual is the fully defaulted description of how one cell looks.
// It is a pure function of the normalized config, the theme mode and the
// renderer's defaults and formatter.
type ResolvedVisual struct {
	Text    string
	HasText bool // false means no text glyph is drawn

	TextColor   string
	FillColor   string
	StrokeColor string // outline of an explicit fill

	FontWeight FontWeight
	FontStyle  FontStyle
	Decoration string

	HorizontalAlign HorizontalAlign
	VerticalAlign   VerticalAlign

	FontFamily string
	FontSize   float64
	LineHeight float64
	Wrap       WrapMode
	Padding    float64

	ShouldDrawFill   bool
	ShouldDrawBorder bool
	Edges            [4]EdgeStroke

	HitStrokeWidth float64
}

// Resolve computes the visual for cfg. Only the formatter can fail, and its
// error is returned unmodified.
func (r *Renderer) Resolve(cfg NormalizedConfig, mode ThemeMode) (ResolvedVisual, error) {
	d := r.opts.defaults
	palette := d.Palette(mode)

	var v ResolvedVisual
	if r.opts.formatter != nil {
		text, err := r.opts.formatter.Format(cfg.Value, cfg.Datatype, formatOptions(cfg.Format))
		if err != nil {
			return ResolvedVisual{}, err
		}
		v.Text, v.HasText = text, text != ""
	} else {
		v.Text, v.HasText = Stringify(cfg.Value)
	}

	v.FontWeight = WeightNormal
	if cfg.Style.Bold {
		v.FontWeight = WeightBold
	}
	v.FontStyle = StyleNormal
	if cfg.Style.Italic {
		v.FontStyle = StyleItalic
	}
	v.Decoration = decoration(cfg.Style)

	v.HorizontalAlign = cfg.HorizontalAlign
	if v.HorizontalAlign == "" {
		v.HorizontalAlign = AlignLeft
		if cfg.Datatype == Number {
			v.HorizontalAlign = AlignRight
		}
	}
	v.VerticalAlign = cfg.VerticalAlign
	if v.VerticalAlign == "" {
		v.VerticalAlign = d.VerticalAlign
	}

	v.TextColor = cfg.Color
	if v.TextColor == "" {
		v.TextColor = palette.Text
	}
	hasFill := cfg.Fill != ""
	v.FillColor = cfg.Fill
	if !hasFill {
		v.FillColor = palette.Fill
	}
	v.ShouldDrawFill = hasFill || cfg.IsMergedCell
	v.ShouldDrawBorder = hasFill
	if hasFill {
		v.StrokeColor = cfg.Fill
		if cfg.ShowGridLines {
			v.StrokeColor = Luminance(cfg.Fill, d.GridLineShift)
		}
	}
	v.Edges = cfg.Edges

	v.FontFamily = orString(cfg.FontFamily, d.FontFamily)
	v.FontSize = orPositive(cfg.FontSize, d.FontSize)
	v.LineHeight = orPositive(cfg.LineHeight, d.LineHeight)
	v.Wrap = cfg.Wrap
	if v.Wrap == "" {
		v.Wrap = d.Wrap
	}
	v.Padding = d.Padding
	if cfg.Padding != nil {
		v.Padding = *cfg.Padding
	}
	return v, nil
}

// TextStyle returns the attributes for the text primitive.
func (v ResolvedVisual) TextStyle() TextStyle {
	return TextStyle{
		Color:           v.TextColor,
		FontFamily:      v.FontFamily,
		FontSize:        v.FontSize,
		FontWeight:      v.FontWeight,
		FontStyle:       v.FontStyle,
		Decoration:      v.Decoration,
		HorizontalAlign: v.HorizontalAlign,
		VerticalAlign:   v.VerticalAlign,
		Padding:         v.Padding,
		LineHeight:      v.LineHeight,
		Wrap:            v.Wrap,
		HitStrokeWidth:  v.HitStrokeWidth,
	}
}

func decoration(s StyleFlags) string {
	var parts []string
	if s.Underline {
		parts = append(parts, DecorationUnderline)
	}
	if s.Strike {
		parts = append(parts, DecorationStrike)
	}
	return strings.Join(parts, " ")
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orPositive(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
