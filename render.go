package gridpaint

import "fmt"

// Renderer runs the normalize → resolve → emit pipeline for one cell at a
// time. It holds no per-cell state and is safe for concurrent use.
type Renderer struct {
	opts *Options
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Renderer{opts: o}
}

// Defaults returns the defaults in effect.
func (r *Renderer) Defaults() Defaults {
	return r.opts.defaults
}

// Render draws cfg onto t. Hidden cells draw nothing. A formatter error is
// returned as is and nothing is drawn for the cell.
func (r *Renderer) Render(cfg CellConfig, mode ThemeMode, t DrawTarget) error {
	norm, skip := Normalize(cfg)
	if skip {
		r.opts.logger.Trace().Msg("skip hidden cell")
		return nil
	}
	v, err := r.Resolve(norm, mode)
	if err != nil {
		r.opts.logger.Debug().Err(err).
			Stringer("datatype", cfg.Datatype).
			Interface("value", cfg.Value).
			Msg("format cell")
		return err
	}
	Emit(v, cfg.Geometry, t)
	return nil
}

// RenderAll renders cells in slice order and stops at the first error,
// which is wrapped with the cell's index and geometry.
func (r *Renderer) RenderAll(cells []CellConfig, mode ThemeMode, t DrawTarget) error {
	for i, cfg := range cells {
		if err := r.Render(cfg, mode, t); err != nil {
			g := cfg.Geometry
			return fmt.Errorf("render cell %d at (%g,%g): %w", i, g.X, g.Y, err)
		}
	}
	return nil
}
