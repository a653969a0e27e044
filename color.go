package gridpaint

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor decodes "#rgb", "#rrggbb", "#rrggbbaa" (the leading '#' is
// optional) or a CSS color name.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, false
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, true
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
	default:
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// HexColor encodes c as "#rrggbb", dropping alpha.
func HexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Luminance shifts every channel of c by percent*255/100 and clamps to
// [0,255]. Negative percent darkens. Each call starts from c, so repeated
// calls with the same input agree. Colors that cannot be decoded are
// returned unchanged.
func Luminance(c string, percent float64) string {
	rgba, ok := ParseColor(c)
	if !ok {
		return c
	}
	shift := percent * 255 / 100
	adjust := func(ch uint8) uint8 {
		v := math.Round(float64(ch) + shift)
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return HexColor(color.RGBA{R: adjust(rgba.R), G: adjust(rgba.G), B: adjust(rgba.B), A: 0xff})
}
