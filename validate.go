package gridpaint

import "fmt"

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // the cell renders wrong or not at all
	SeverityWarning                 // the value is coerced to a fallback
)

// ValidationIssue is a single problem found in a cell config.
type ValidationIssue struct {
	Severity Severity
	Index    int    // position in the validated slice
	Field    string // CellConfig field, e.g. "Fill" or "Borders.Top"
	Message  string
}

// String formats the issue as "[ERROR] cell 3 Fill: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] cell %d %s: %s", sev, v.Index, v.Field, v.Message)
}

// PatternChecker is implemented by formatters that can check a
// FormatSpec.Pattern without formatting a value.
type PatternChecker interface {
	CheckPattern(pattern string) error
}

// Validate checks configs for values the pipeline would reject or silently
// replace: unknown enum values, unparseable colors, negative sizes. Hidden
// cells are skipped. Patterns are checked only when the renderer's formatter
// implements PatternChecker.
func (r *Renderer) Validate(cells []CellConfig) []ValidationIssue {
	var issues []ValidationIssue
	for i, cfg := range cells {
		if cfg.IsHidden {
			continue
		}
		add := func(sev Severity, field, format string, args ...any) {
			issues = append(issues, ValidationIssue{
				Severity: sev,
				Index:    i,
				Field:    field,
				Message:  fmt.Sprintf(format, args...),
			})
		}

		switch cfg.HorizontalAlign {
		case "", AlignLeft, AlignCenter, AlignRight:
		default:
			add(SeverityError, "HorizontalAlign", "unknown alignment %q", cfg.HorizontalAlign)
		}
		switch cfg.VerticalAlign {
		case "", AlignTop, AlignMiddle, AlignBottom:
		default:
			add(SeverityError, "VerticalAlign", "unknown alignment %q", cfg.VerticalAlign)
		}
		switch cfg.Wrap {
		case "", WrapNone, WrapWord, WrapChar:
		default:
			add(SeverityError, "Wrap", "unknown wrap mode %q", cfg.Wrap)
		}
		if cfg.Geometry.Width < 0 || cfg.Geometry.Height < 0 {
			add(SeverityError, "Geometry", "negative size %gx%g", cfg.Geometry.Width, cfg.Geometry.Height)
		}

		checkColor := func(field, c string) {
			if c == "" {
				return
			}
			if _, ok := ParseColor(c); !ok {
				add(SeverityWarning, field, "unparseable color %q", c)
			}
		}
		checkColor("Color", cfg.Color)
		checkColor("Fill", cfg.Fill)

		borders := []struct {
			field string
			b     *Border
		}{
			{"Borders.All", cfg.Borders.All},
			{"Borders.Top", cfg.Borders.Top},
			{"Borders.Right", cfg.Borders.Right},
			{"Borders.Bottom", cfg.Borders.Bottom},
			{"Borders.Left", cfg.Borders.Left},
		}
		for _, e := range borders {
			if e.b == nil {
				continue
			}
			checkColor(e.field, e.b.Color)
			if e.b == cfg.Borders.All && e.b.Width < 0 {
				add(SeverityWarning, e.field, "negative shared width %g draws no edge", e.b.Width)
			}
			for _, d := range e.b.Dash {
				if d < 0 {
					add(SeverityWarning, e.field, "negative dash segment %g", d)
					break
				}
			}
		}

		if cfg.FontSize < 0 {
			add(SeverityWarning, "FontSize", "negative size %g replaced by default", cfg.FontSize)
		}
		if cfg.LineHeight < 0 {
			add(SeverityWarning, "LineHeight", "negative line height %g replaced by default", cfg.LineHeight)
		}
		if cfg.Padding != nil && *cfg.Padding < 0 {
			add(SeverityWarning, "Padding", "negative padding %g", *cfg.Padding)
		}

		if pc, ok := r.opts.formatter.(PatternChecker); ok && cfg.Format.Pattern != "" {
			if err := pc.CheckPattern(cfg.Format.Pattern); err != nil {
				add(SeverityWarning, "Format.Pattern", "%v; the formatter's own expression is used", err)
			}
		}
	}
	return issues
}
