package tokengen

import (
	"fmt"
	"strings"
)

// ColorScheme selects how secondary and accent colors are derived from the seed.
type ColorScheme int

const (
	Monochromatic ColorScheme = iota
	Analogous
	Complementary
	Triadic
	Tetradic
	SplitComplementary
)

var schemeNames = map[ColorScheme]string{
	Monochromatic:      "monochromatic",
	Analogous:          "analogous",
	Complementary:      "complementary",
	Triadic:            "triadic",
	Tetradic:           "tetradic",
	SplitComplementary: "split-complementary",
}

// ColorSchemes lists every scheme in declaration order.
func ColorSchemes() []ColorScheme {
	return []ColorScheme{Monochromatic, Analogous, Complementary, Triadic, Tetradic, SplitComplementary}
}

func (s ColorScheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ColorScheme(%d)", int(s))
}

// ParseColorScheme accepts the String form, case-insensitively. Underscores
// and spaces are treated as dashes.
func ParseColorScheme(name string) (ColorScheme, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	if normalized == "splitcomplementary" {
		normalized = "split-complementary"
	}
	for _, s := range ColorSchemes() {
		if schemeNames[s] == normalized {
			return s, nil
		}
	}
	return Monochromatic, fmt.Errorf("unknown color scheme %q", name)
}

// derive returns the secondary and accent colors for the seed.
func (s ColorScheme) derive(seed HSLColor) (secondary, accent HSLColor) {
	switch s {
	case Analogous:
		return seed.Analogous(30)
	case Complementary:
		return seed.Complement(), seed.Lighten(20)
	case Triadic:
		return seed.Triadic()
	case Tetradic:
		sec, acc, _ := seed.Tetradic()
		return sec, acc
	case SplitComplementary:
		return seed.Rotate(150), seed.Rotate(210)
	default:
		return seed.Desaturate(20), seed.Lighten(15)
	}
}
