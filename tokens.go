package tokengen

import "fmt"

// Defaults used by Default.
const (
	DefaultPrefix   = "sh"
	DefaultSelector = ":root"
	DefaultScheme   = Monochromatic
)

// DefaultSeed is the library's default primary color.
var DefaultSeed = NewHSL(312, 35, 33)

// DesignTokens is a complete, immutable theme: a derived palette plus static
// scales. Construct a new value to change the theme.
type DesignTokens struct {
	seed       HSLColor
	palette    ColorPalette
	typography TypographyScale
	spacing    SpacingScale
	radius     RadiusScale
	shadows    ShadowScale
	prefix     string
	selector   string
}

// New derives a light-mode theme from seed.
func New(seed HSLColor, scheme ColorScheme) DesignTokens {
	return NewWithMode(seed, scheme, Light)
}

// NewWithMode derives a theme with mode's surface tones.
func NewWithMode(seed HSLColor, scheme ColorScheme, mode ColorMode) DesignTokens {
	return DesignTokens{
		seed:       seed,
		palette:    FromPrimaryMode(seed, scheme, mode),
		typography: DefaultTypography(),
		spacing:    DefaultSpacing(),
		radius:     DefaultRadius(),
		shadows:    DefaultShadows(),
		prefix:     DefaultPrefix,
		selector:   DefaultSelector,
	}
}

// Default is New(DefaultSeed, DefaultScheme). Every call serializes identically.
func Default() DesignTokens {
	return New(DefaultSeed, DefaultScheme)
}

// WithPrefix returns a copy emitting --prefix-* names. An empty prefix emits
// bare names.
func (t DesignTokens) WithPrefix(prefix string) DesignTokens {
	t.prefix = prefix
	return t
}

// WithSelector returns a copy wrapping declarations in selector.
func (t DesignTokens) WithSelector(selector string) DesignTokens {
	t.selector = selector
	return t
}

// WithMode returns a copy with the palette re-derived for mode.
func (t DesignTokens) WithMode(mode ColorMode) DesignTokens {
	t.palette = FromPrimaryMode(t.seed, t.palette.Scheme, mode)
	return t
}

func (t DesignTokens) Seed() HSLColor              { return t.seed }
func (t DesignTokens) Palette() ColorPalette       { return t.palette }
func (t DesignTokens) Typography() TypographyScale { return t.typography }
func (t DesignTokens) Spacing() SpacingScale       { return t.spacing }
func (t DesignTokens) Radius() RadiusScale         { return t.radius }
func (t DesignTokens) Shadows() ShadowScale        { return t.shadows }
func (t DesignTokens) Prefix() string              { return t.prefix }
func (t DesignTokens) Selector() string            { return t.selector }

// VarName returns the full custom property name for a token suffix, e.g.
// VarName("color-primary") is "--sh-color-primary".
func (t DesignTokens) VarName(name string) string {
	return varName(t.prefix, name)
}

// ColorVar returns the custom property name for a palette role.
func (t DesignTokens) ColorVar(role Role) string {
	return t.VarName("color-" + string(role))
}

// variantRoles get light/dark/content variants.
var variantRoles = map[Role]bool{RolePrimary: true, RoleSecondary: true, RoleAccent: true}

// Tokens lists every token in a fixed order: colors, gradients, typography,
// spacing, radius, shadows.
func (t DesignTokens) Tokens() []Token {
	var out []Token
	out = append(out, t.colorTokens()...)
	out = append(out, t.gradientTokens()...)
	out = append(out, t.typography.tokens(t.prefix)...)
	out = append(out, t.spacing.tokens(t.prefix)...)
	out = append(out, t.radius.tokens(t.prefix)...)
	out = append(out, t.shadows.tokens(t.prefix)...)
	return out
}

func (t DesignTokens) colorTokens() []Token {
	var out []Token
	for _, nc := range t.palette.Roles() {
		name := t.ColorVar(nc.Role)
		out = append(out, Token{Name: name, Value: nc.Color.CSS(), Group: GroupColor})
		if variantRoles[nc.Role] {
			out = append(out,
				Token{Name: name + "-light", Value: nc.Color.Lighten(10).CSS(), Group: GroupColor},
				Token{Name: name + "-dark", Value: nc.Color.Darken(10).CSS(), Group: GroupColor},
				Token{Name: name + "-content", Value: nc.Color.ReadableOn().CSS(), Group: GroupColor},
			)
		}
	}
	return out
}

func (t DesignTokens) gradientTokens() []Token {
	gradient := func(c HSLColor) string {
		return fmt.Sprintf("linear-gradient(135deg, %s, %s)", c.CSS(), c.Lighten(15).CSS())
	}
	return []Token{
		{Name: t.VarName("gradient-primary"), Value: gradient(t.palette.Primary), Group: GroupGradient},
		{Name: t.VarName("gradient-secondary"), Value: gradient(t.palette.Secondary), Group: GroupGradient},
	}
}

// CSSVariables maps each custom property name to its value.
func (t DesignTokens) CSSVariables() map[string]string {
	tokens := t.Tokens()
	vars := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		vars[tok.Name] = tok.Value
	}
	return vars
}

// CSSString renders the tokens as a declaration block under the selector, one
// declaration per line in Tokens order.
func (t DesignTokens) CSSString() string {
	return DeclarationBlock(t.selector, t.Tokens())
}
