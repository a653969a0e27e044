package gridpaint

import (
	"fmt"
	"strings"
)

// Describe renders each cell onto a Recorder and returns a human-readable
// listing of the resolved text and the primitives it emits, one block per
// cell. name labels cell i; nil labels cells by index. Useful for debugging
// styles without a canvas.
func (r *Renderer) Describe(cells []CellConfig, mode ThemeMode, name func(i int) string) (string, error) {
	if name == nil {
		name = func(i int) string { return fmt.Sprintf("cell %d", i) }
	}
	var b strings.Builder
	for i, cfg := range cells {
		norm, skip := Normalize(cfg)
		if skip {
			fmt.Fprintf(&b, "%s hidden\n", name(i))
			continue
		}
		v, err := r.Resolve(norm, mode)
		if err != nil {
			return "", fmt.Errorf("describe %s: %w", name(i), err)
		}
		g := cfg.Geometry
		fmt.Fprintf(&b, "%s %s (%g,%g %gx%g)%s\n", name(i), cfg.Datatype, g.X, g.Y, g.Width, g.Height, describeAttrs(cfg, v))

		var rec Recorder
		Emit(v, g, &rec)
		for _, op := range rec.Ops {
			fmt.Fprintf(&b, "  %s\n", op)
		}
	}
	return b.String(), nil
}

// describeAttrs returns the resolved attributes worth showing for a cell.
func describeAttrs(cfg CellConfig, v ResolvedVisual) string {
	parts := []string{
		fmt.Sprintf("align=%s/%s", v.HorizontalAlign, v.VerticalAlign),
		fmt.Sprintf("font=%q", v.TextStyle().FontSpec()),
	}
	if v.Decoration != "" {
		parts = append(parts, fmt.Sprintf("decoration=%q", v.Decoration))
	}
	if cfg.IsMergedCell {
		parts = append(parts, "merged")
	}
	if v.Wrap != WrapNone {
		parts = append(parts, fmt.Sprintf("wrap=%s", v.Wrap))
	}
	return " " + strings.Join(parts, " ")
}
