// Package tokengen derives design tokens from a single seed color.
//
// A seed color and a color scheme produce a full semantic palette, which is
// merged with static typography, spacing, radius and shadow scales and
// serialized as CSS custom properties.
//
// # Tokens
//
//	seed := tokengen.NewHSL(210, 80, 45)
//	tokens := tokengen.New(seed, tokengen.Complementary)
//	css := tokens.CSSString()
//	// :root {
//	//   --sh-color-primary: hsl(210, 80%, 45%);
//	//   ...
//	// }
//
// # Contrast
//
// Colors expose WCAG relative luminance and contrast ratio:
//
//	text := tokengen.MustParseHex("#1a1a1a")
//	ok := text.MeetsWCAGAA(tokens.Palette().Surface)
//
// Derived semantic roles are a heuristic and are not guaranteed to pass AA
// against arbitrary surfaces. Check them explicitly.
//
// # Responsive values
//
// ResponsiveValue resolves mobile-first: a value set at Sm applies to every
// larger tier until overridden.
//
//	cols := tokengen.NewResponsiveValue(1).WithSm(2).WithLg(4)
//	n, _ := cols.Get(tokengen.Md) // 2
//
// All values are immutable and safe for concurrent use.
//
// # CLI Tool
//
//	go install github.com/yacobolo/tokengen/cmd/tokengen@latest
package tokengen
