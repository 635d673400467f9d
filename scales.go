package tokengen

import (
	"fmt"
	"math"
	"strconv"
)

// Token is a single named design value.
type Token struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Group Group  `json:"group" yaml:"group"`
}

// Group categorizes a token for output and linting.
type Group string

const (
	GroupColor      Group = "color"
	GroupGradient   Group = "gradient"
	GroupTypography Group = "typography"
	GroupSpacing    Group = "spacing"
	GroupRadius     Group = "radius"
	GroupShadow     Group = "shadow"
)

// TypographyScale is a modular type scale.
type TypographyScale struct {
	FontFamilyBase    string
	FontFamilyHeading string
	FontFamilyMono    string
	FontSizeBase      float64 // px
	LineHeightBase    float64
	ScaleRatio        float64
}

// DefaultTypography is a 16px base on a 1.25 major-third scale.
func DefaultTypography() TypographyScale {
	return TypographyScale{
		FontFamilyBase:    "'Inter', system-ui, -apple-system, sans-serif",
		FontFamilyHeading: "'Outfit', system-ui, -apple-system, sans-serif",
		FontFamilyMono:    "'JetBrains Mono', 'Fira Code', monospace",
		FontSizeBase:      16,
		LineHeightBase:    1.5,
		ScaleRatio:        1.25,
	}
}

var fontSizeSteps = []struct {
	name string
	exp  int
}{
	{"xs", -3}, {"sm", -2}, {"base", 0}, {"lg", 1}, {"xl", 2},
	{"2xl", 3}, {"3xl", 4}, {"4xl", 5}, {"5xl", 6},
}

// Size returns the font size in px for a scale step, and false for an
// unknown step.
func (t TypographyScale) Size(step string) (float64, bool) {
	for _, s := range fontSizeSteps {
		if s.name == step {
			return t.FontSizeBase * math.Pow(t.ScaleRatio, float64(s.exp)), true
		}
	}
	return 0, false
}

func (t TypographyScale) tokens(prefix string) []Token {
	out := []Token{
		{Name: varName(prefix, "font-family-base"), Value: t.FontFamilyBase},
		{Name: varName(prefix, "font-family-heading"), Value: t.FontFamilyHeading},
		{Name: varName(prefix, "font-family-mono"), Value: t.FontFamilyMono},
	}
	for _, s := range fontSizeSteps {
		size, _ := t.Size(s.name)
		out = append(out, Token{Name: varName(prefix, "font-size-"+s.name), Value: rem(size / 16)})
	}
	out = append(out,
		Token{Name: varName(prefix, "line-height-tight"), Value: "1.25"},
		Token{Name: varName(prefix, "line-height-normal"), Value: formatNumber(t.LineHeightBase, 4)},
		Token{Name: varName(prefix, "line-height-relaxed"), Value: "1.75"},
		Token{Name: varName(prefix, "letter-spacing-tight"), Value: "-0.025em"},
		Token{Name: varName(prefix, "letter-spacing-normal"), Value: "0em"},
		Token{Name: varName(prefix, "letter-spacing-wide"), Value: "0.025em"},
	)
	return withGroup(out, GroupTypography)
}

// SpacingScale is a geometric spacing progression.
type SpacingScale struct {
	BaseUnit   float64 // px
	ScaleRatio float64
	Steps      int
}

// DefaultSpacing is 4px growing by 1.5 over 12 steps.
func DefaultSpacing() SpacingScale {
	return SpacingScale{BaseUnit: 4, ScaleRatio: 1.5, Steps: 12}
}

// Step returns the spacing in px for step i.
func (s SpacingScale) Step(i int) float64 {
	return s.BaseUnit * math.Pow(s.ScaleRatio, float64(i))
}

func (s SpacingScale) tokens(prefix string) []Token {
	out := make([]Token, 0, s.Steps)
	for i := 0; i < s.Steps; i++ {
		out = append(out, Token{Name: varName(prefix, "spacing-"+strconv.Itoa(i)), Value: px(s.Step(i))})
	}
	return withGroup(out, GroupSpacing)
}

// RadiusScale is a geometric border-radius progression.
type RadiusScale struct {
	BaseRadius  float64 // px
	ScaleFactor float64
}

// DefaultRadius is 4px growing by sqrt(2).
func DefaultRadius() RadiusScale {
	return RadiusScale{BaseRadius: 4, ScaleFactor: 1.414}
}

var radiusSteps = []struct {
	name string
	exp  int
}{
	{"sm", 0}, {"base", 1}, {"md", 2}, {"lg", 3}, {"xl", 4}, {"2xl", 5}, {"3xl", 6},
}

func (r RadiusScale) tokens(prefix string) []Token {
	out := []Token{{Name: varName(prefix, "radius-none"), Value: "0px"}}
	for _, s := range radiusSteps {
		v := r.BaseRadius * math.Pow(r.ScaleFactor, float64(s.exp))
		out = append(out, Token{Name: varName(prefix, "radius-"+s.name), Value: px(v)})
	}
	out = append(out, Token{Name: varName(prefix, "radius-full"), Value: "9999px"})
	return withGroup(out, GroupRadius)
}

// ShadowScale derives elevation shadows from a single opacity.
type ShadowScale struct {
	Intensity float64
}

// DefaultShadows uses 10% black.
func DefaultShadows() ShadowScale {
	return ShadowScale{Intensity: 0.1}
}

func (s ShadowScale) alpha(factor float64) string {
	return fmt.Sprintf("rgba(0, 0, 0, %s)", formatNumber(s.Intensity*factor, 3))
}

func (s ShadowScale) tokens(prefix string) []Token {
	out := []Token{
		{Name: varName(prefix, "shadow-sm"), Value: fmt.Sprintf("0 1px 2px 0 %s", s.alpha(1))},
		{Name: varName(prefix, "shadow-base"), Value: fmt.Sprintf("0 1px 3px 0 %s, 0 1px 2px -1px %s", s.alpha(1.5), s.alpha(1))},
		{Name: varName(prefix, "shadow-md"), Value: fmt.Sprintf("0 4px 6px -1px %s, 0 2px 4px -2px %s", s.alpha(2), s.alpha(1.5))},
		{Name: varName(prefix, "shadow-lg"), Value: fmt.Sprintf("0 10px 15px -3px %s, 0 4px 6px -4px %s", s.alpha(2.5), s.alpha(2))},
		{Name: varName(prefix, "shadow-xl"), Value: fmt.Sprintf("0 20px 25px -5px %s, 0 8px 10px -6px %s", s.alpha(3), s.alpha(2.5))},
		{Name: varName(prefix, "shadow-2xl"), Value: fmt.Sprintf("0 25px 50px -12px %s", s.alpha(4))},
		{Name: varName(prefix, "shadow-inner"), Value: fmt.Sprintf("inset 0 2px 4px 0 %s", s.alpha(2))},
		{Name: varName(prefix, "shadow-none"), Value: "none"},
	}
	return withGroup(out, GroupShadow)
}

func withGroup(tokens []Token, g Group) []Token {
	for i := range tokens {
		tokens[i].Group = g
	}
	return tokens
}
