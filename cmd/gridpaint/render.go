package main

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/javajack/gridpaint"
)

// sourceParams are the flags shared by every command that reads a range.
type sourceParams struct {
	file     string
	rng      string
	dark     bool
	grid     bool
	defaults string
	expr     string
	verbose  bool
}

func (p *sourceParams) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&p.file, "file", "f", "", "xlsx workbook to read")
	flags.StringVarP(&p.rng, "range", "r", "", `range to read, e.g. "Sheet1!A1:F20"`)
	flags.BoolVar(&p.dark, "dark", false, "use the dark theme")
	flags.BoolVar(&p.grid, "grid", false, "show grid lines")
	flags.StringVar(&p.defaults, "defaults", "", "YAML file overriding render defaults")
	flags.StringVar(&p.expr, "expr", "", "format values with this expression instead of the number formatter")
	flags.BoolVarP(&p.verbose, "verbose", "v", false, "log debug output")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("range")
}

func (p *sourceParams) mode() gridpaint.ThemeMode {
	if p.dark {
		return gridpaint.Dark
	}
	return gridpaint.Light
}

// source is a range read from a workbook plus a renderer configured from
// the flags.
type source struct {
	cells    []gridpaint.CellConfig
	area     gridpaint.AreaRef
	renderer *gridpaint.Renderer
	log      zerolog.Logger
}

func (p *sourceParams) open() (*source, error) {
	log := newLogger(p.verbose)

	defaults := gridpaint.DefaultDefaults()
	if p.defaults != "" {
		fd, err := os.Open(p.defaults)
		if err != nil {
			return nil, fmt.Errorf("open defaults: %w", err)
		}
		defaults, err = gridpaint.LoadDefaults(fd)
		fd.Close()
		if err != nil {
			return nil, err
		}
	}

	var formatter gridpaint.Formatter = gridpaint.NewNumberFormatter()
	if p.expr != "" {
		f, err := gridpaint.NewExprFormatter(p.expr)
		if err != nil {
			return nil, err
		}
		formatter = f
	}

	wb, err := gridpaint.OpenWorkbook(p.file)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	cells, area, err := wb.ReadRange(p.rng)
	if err != nil {
		return nil, err
	}
	for i := range cells {
		cells[i].ShowGridLines = p.grid
	}
	log.Debug().Str("range", area.String()).Int("cells", len(cells)).Msg("read range")

	return &source{
		cells: cells,
		area:  area,
		renderer: gridpaint.NewRenderer(
			gridpaint.WithDefaults(defaults),
			gridpaint.WithFormatter(formatter),
			gridpaint.WithLogger(log),
		),
		log: log,
	}, nil
}

type renderCommandParams struct {
	sourceParams
	out string
}

func newRenderCommand() *cobra.Command {
	var params renderCommandParams
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a worksheet range to PNG",
		Long: `Render a worksheet range to PNG.

Every cell in the range is read from the workbook, resolved with the number
formatter and painted in row-major order. Merged regions paint once from their
top-left cell; hidden rows and columns paint nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(params)
		},
	}
	params.register(cmd)
	cmd.Flags().StringVarP(&params.out, "out", "o", "cells.png", "output PNG path")
	return cmd
}

func runRender(params renderCommandParams) error {
	src, err := params.open()
	if err != nil {
		return err
	}

	var width, height float64
	for _, cfg := range src.cells {
		if cfg.IsHidden {
			continue
		}
		g := cfg.Geometry
		width = math.Max(width, g.X+g.Width)
		height = math.Max(height, g.Y+g.Height)
	}
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(width))+1, int(math.Ceil(height))+1))

	mode := params.mode()
	target := gridpaint.NewImageTarget(img)
	target.FillRect(gridpaint.Rect{Width: width + 1, Height: height + 1}, src.renderer.Defaults().Palette(mode).Fill)
	if err := src.renderer.RenderAll(src.cells, mode, target); err != nil {
		return err
	}

	out, err := os.Create(params.out)
	if err != nil {
		return fmt.Errorf("create output %q: %w", params.out, err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		os.Remove(params.out)
		return fmt.Errorf("encode png: %w", err)
	}
	src.log.Info().
		Str("range", src.area.String()).
		Int("cells", len(src.cells)).
		Str("out", params.out).
		Msg("rendered")
	return nil
}
