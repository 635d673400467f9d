package tokengen

import "math"

// WCAG 2.x contrast thresholds for normal and large text.
const (
	ContrastAALarge = 3.0
	ContrastAA      = 4.5
	ContrastAAA     = 7.0
)

// ContrastLevel is the highest WCAG level a contrast ratio satisfies.
type ContrastLevel int

const (
	LevelFail ContrastLevel = iota
	LevelAALarge
	LevelAA
	LevelAAA
)

func (l ContrastLevel) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	case LevelAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

// LevelForRatio classifies a contrast ratio.
func LevelForRatio(ratio float64) ContrastLevel {
	switch {
	case ratio >= ContrastAAA:
		return LevelAAA
	case ratio >= ContrastAA:
		return LevelAA
	case ratio >= ContrastAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// RelativeLuminance returns the WCAG relative luminance in [0, 1].
func (c HSLColor) RelativeLuminance() float64 {
	r, g, b := c.RGB()
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize decodes one gamma-encoded sRGB channel.
func linearize(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns (Llighter + 0.05) / (Ldarker + 0.05). The argument
// order does not matter.
func (c HSLColor) ContrastRatio(other HSLColor) float64 {
	l1 := c.RelativeLuminance()
	l2 := other.RelativeLuminance()
	if l2 > l1 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// MeetsWCAGAA reports whether normal text reaches 4.5:1.
func (c HSLColor) MeetsWCAGAA(other HSLColor) bool {
	return c.ContrastRatio(other) >= ContrastAA
}

// MeetsWCAGAAA reports whether normal text reaches 7:1.
func (c HSLColor) MeetsWCAGAAA(other HSLColor) bool {
	return c.ContrastRatio(other) >= ContrastAAA
}

// MeetsWCAGAALarge reports whether large text reaches 3:1.
func (c HSLColor) MeetsWCAGAALarge(other HSLColor) bool {
	return c.ContrastRatio(other) >= ContrastAALarge
}

// Contrast classifies the pair.
func (c HSLColor) Contrast(other HSLColor) ContrastLevel {
	return LevelForRatio(c.ContrastRatio(other))
}

var (
	contentLight = NewHSL(0, 0, 100)
	contentDark  = NewHSL(240, 10, 10)
)

// ReadableOn picks a text color for c used as a background: white or
// near-black, whichever contrasts more.
func (c HSLColor) ReadableOn() HSLColor {
	if contentLight.ContrastRatio(c) >= contentDark.ContrastRatio(c) {
		return contentLight
	}
	return contentDark
}
