package tokengen

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLColor is an immutable hue/saturation/lightness color.
//
// Hue is always in [0, 360). Saturation and lightness are percentages
// clamped to [0, 100]. Every transform returns a new value.
type HSLColor struct {
	h float64
	s float64
	l float64
}

// NewHSL builds a color, wrapping hue and clamping saturation and lightness.
func NewHSL(h, s, l float64) HSLColor {
	return HSLColor{
		h: normalizeHue(h),
		s: clampPercent(s),
		l: clampPercent(l),
	}
}

// H returns the hue in degrees, [0, 360).
func (c HSLColor) H() float64 { return c.h }

// S returns the saturation percentage, [0, 100].
func (c HSLColor) S() float64 { return c.s }

// L returns the lightness percentage, [0, 100].
func (c HSLColor) L() float64 { return c.l }

// Lighten raises lightness by amount, saturating at 100.
func (c HSLColor) Lighten(amount float64) HSLColor {
	return NewHSL(c.h, c.s, c.l+amount)
}

// Darken lowers lightness by amount, saturating at 0.
func (c HSLColor) Darken(amount float64) HSLColor {
	return NewHSL(c.h, c.s, c.l-amount)
}

// Saturate raises saturation by amount, saturating at 100.
func (c HSLColor) Saturate(amount float64) HSLColor {
	return NewHSL(c.h, c.s+amount, c.l)
}

// Desaturate lowers saturation by amount, saturating at 0.
func (c HSLColor) Desaturate(amount float64) HSLColor {
	return NewHSL(c.h, c.s-amount, c.l)
}

// Rotate shifts the hue by degrees. Negative rotation wraps around.
func (c HSLColor) Rotate(degrees float64) HSLColor {
	return NewHSL(c.h+degrees, c.s, c.l)
}

// WithLightness returns the color with lightness replaced.
func (c HSLColor) WithLightness(l float64) HSLColor {
	return NewHSL(c.h, c.s, l)
}

// WithSaturation returns the color with saturation replaced.
func (c HSLColor) WithSaturation(s float64) HSLColor {
	return NewHSL(c.h, s, c.l)
}

// Complement returns the color on the opposite side of the wheel.
func (c HSLColor) Complement() HSLColor {
	return c.Rotate(180)
}

// Analogous returns the neighbours at -offset and +offset.
func (c HSLColor) Analogous(offset float64) (HSLColor, HSLColor) {
	return c.Rotate(-offset), c.Rotate(offset)
}

// Triadic returns the colors at +120 and +240 degrees.
func (c HSLColor) Triadic() (HSLColor, HSLColor) {
	return c.Rotate(120), c.Rotate(240)
}

// Tetradic returns the colors at +90, +180 and +270 degrees.
func (c HSLColor) Tetradic() (HSLColor, HSLColor, HSLColor) {
	return c.Rotate(90), c.Rotate(180), c.Rotate(270)
}

// RGB converts to 8-bit sRGB channels.
func (c HSLColor) RGB() (r, g, b uint8) {
	return c.colorful().RGB255()
}

// Hex formats the color as #rrggbb.
func (c HSLColor) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// CSS formats the color as hsl(H, S%, L%) with at most one decimal.
func (c HSLColor) CSS() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)",
		formatNumber(c.h, 1), formatNumber(c.s, 1), formatNumber(c.l, 1))
}

func (c HSLColor) String() string {
	return c.CSS()
}

func (c HSLColor) colorful() colorful.Color {
	return colorful.Hsl(c.h, c.s/100, c.l/100).Clamped()
}

// ParseHex parses #rgb or #rrggbb (the leading # is optional).
func ParseHex(hex string) (HSLColor, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return HSLColor{}, fmt.Errorf("invalid hex color %q", hex)
	}

	col, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return HSLColor{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	h, sat, l := col.Hsl()
	return NewHSL(h, sat*100, l*100), nil
}

// MustParseHex is ParseHex for constant inputs. It panics on malformed input.
func MustParseHex(hex string) HSLColor {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
