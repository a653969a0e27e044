package gridpaint

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Palette is the pair of fallback colors used for one theme mode.
type Palette struct {
	Text string `yaml:"text"`
	Fill string `yaml:"fill"`
}

// PlainDefaults configures the generic grid cell (see PlainCell). Its
// vertical alignment defaults to middle, unlike formatted cells.
type PlainDefaults struct {
	Fill          string          `yaml:"fill"`
	Stroke        string          `yaml:"stroke"`
	StrokeWidth   float64         `yaml:"strokeWidth"`
	TextColor     string          `yaml:"textColor"`
	Align         HorizontalAlign `yaml:"align"`
	VerticalAlign VerticalAlign   `yaml:"verticalAlign"`
	Padding       float64         `yaml:"padding"`
	FontFamily    string          `yaml:"fontFamily"`
	FontSize      float64         `yaml:"fontSize"`
	Wrap          WrapMode        `yaml:"wrap"`
}

// Defaults holds every fallback the resolver applies to unset fields.
type Defaults struct {
	FontFamily    string        `yaml:"fontFamily"`
	FontSize      float64       `yaml:"fontSize"`
	LineHeight    float64       `yaml:"lineHeight"`
	Padding       float64       `yaml:"padding"`
	Wrap          WrapMode      `yaml:"wrap"`
	VerticalAlign VerticalAlign `yaml:"verticalAlign"`

	// GridLineShift is the luminance percent applied to an explicit fill to
	// derive its outline when grid lines are visible.
	GridLineShift float64 `yaml:"gridLineShift"`

	Light Palette       `yaml:"light"`
	Dark  Palette       `yaml:"dark"`
	Plain PlainDefaults `yaml:"plain"`
}

// Dark surface color used as the default cell background in dark mode.
const DarkModeSurface = "#252E3E"

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		FontFamily:    "Arial",
		FontSize:      12,
		LineHeight:    0.5,
		Padding:       5,
		Wrap:          WrapNone,
		VerticalAlign: AlignBottom,
		GridLineShift: -20,
		Light:         Palette{Text: "#333", Fill: "white"},
		Dark:          Palette{Text: "white", Fill: DarkModeSurface},
		Plain: PlainDefaults{
			Fill:          "white",
			Stroke:        "#d9d9d9",
			StrokeWidth:   0.5,
			TextColor:     "#333",
			Align:         AlignLeft,
			VerticalAlign: AlignMiddle,
			Padding:       5,
			FontFamily:    "Arial, sans-serif",
			FontSize:      12,
			Wrap:          WrapNone,
		},
	}
}

// Palette returns the palette for mode.
func (d Defaults) Palette(mode ThemeMode) Palette {
	if mode == Dark {
		return d.Dark
	}
	return d.Light
}

// LoadDefaults reads YAML overrides on top of DefaultDefaults. Keys that are
// absent keep their built-in value.
func LoadDefaults(r io.Reader) (Defaults, error) {
	d := DefaultDefaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && err != io.EOF {
		return Defaults{}, fmt.Errorf("decode defaults: %w", err)
	}
	return d, nil
}
