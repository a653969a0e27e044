package gridpaint

// Datatype classifies a cell's raw value. It drives default alignment and
// default formatting.
type Datatype int

const (
	Text Datatype = iota
	Number
	Date
	Boolean
	Hyperlink
)

// String returns the upper-case name used by formatters and expressions.
func (d Datatype) String() string {
	switch d {
	case Text:
		return "TEXT"
	case Number:
		return "NUMBER"
	case Date:
		return "DATE"
	case Boolean:
		return "BOOLEAN"
	case Hyperlink:
		return "HYPERLINK"
	default:
		return "UNKNOWN"
	}
}

// HorizontalAlign is a horizontal text alignment. The empty value means unset.
type HorizontalAlign string

const (
	AlignLeft   HorizontalAlign = "left"
	AlignCenter HorizontalAlign = "center"
	AlignRight  HorizontalAlign = "right"
)

// VerticalAlign is a vertical text alignment. The empty value means unset.
type VerticalAlign string

const (
	AlignTop    VerticalAlign = "top"
	AlignMiddle VerticalAlign = "middle"
	AlignBottom VerticalAlign = "bottom"
)

// WrapMode controls how the draw target breaks long text.
type WrapMode string

const (
	WrapNone WrapMode = "none"
	WrapWord WrapMode = "word"
	WrapChar WrapMode = "char"
)

type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

type FontStyle string

const (
	StyleNormal FontStyle = "normal"
	StyleItalic FontStyle = "italic"
)

// Text decoration keywords, space-joined in TextStyle.Decoration.
const (
	DecorationUnderline = "underline"
	DecorationStrike    = "line-through"
)

// ThemeMode is the light/dark flag supplied by the host's theming provider.
type ThemeMode int

const (
	Light ThemeMode = iota
	Dark
)

func (m ThemeMode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// FormatSpec is consumed only by the Formatter. Pattern is an opaque
// number/date format code.
type FormatSpec struct {
	Decimals       *int
	Percent        bool
	Currency       bool
	CurrencySymbol string
	Pattern        string
}

// StyleFlags are independent, combinable font toggles.
type StyleFlags struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
}

// Border describes one stroke. A zero Width means no stroke.
type Border struct {
	Color string
	Width float64
	Dash  []float64
}

// Borders holds per-edge strokes. All is the shared fallback; each edge
// overrides it field by field, and a zero Width inherits All's width. Set a
// negative Width on an edge to draw no stroke there.
type Borders struct {
	All    *Border
	Top    *Border
	Right  *Border
	Bottom *Border
	Left   *Border
}

// Rect is a cell rectangle in canvas pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// CellConfig is the read-only snapshot of one cell handed in by the data
// store. Every field except Value and Datatype is optional.
type CellConfig struct {
	Value    any
	Datatype Datatype
	Format   FormatSpec
	Style    StyleFlags

	Color   string // explicit text color
	Fill    string // explicit background color
	Borders Borders

	HorizontalAlign HorizontalAlign
	VerticalAlign   VerticalAlign

	FontFamily string
	FontSize   float64
	LineHeight float64
	Wrap       WrapMode
	Padding    *float64

	ShowGridLines bool
	IsMergedCell  bool
	IsHidden      bool

	// Geometry is assigned by the virtualization host.
	Geometry Rect
}
