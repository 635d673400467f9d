package tokengen

import (
	"fmt"
	"strings"
)

// ColorMode selects light or dark surface tones.
type ColorMode int

const (
	Light ColorMode = iota
	Dark
)

func (m ColorMode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseColorMode accepts "light" or "dark".
func ParseColorMode(name string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("unknown color mode %q", name)
}

// Semantic target hues. They do not follow the seed.
const (
	SuccessHue = 142.0
	WarningHue = 38.0
	ErrorHue   = 0.0
	InfoHue    = 217.0
)

// Role names a palette member. The string is used in token names.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
	RoleSuccess    Role = "success"
	RoleWarning    Role = "warning"
	RoleError      Role = "error"
	RoleInfo       Role = "info"
	RoleNeutral    Role = "neutral"
	RoleBackground Role = "background"
	RoleSurface    Role = "surface"
	RoleSurfaceAlt Role = "surface-alt"
	RoleBorder     Role = "border"
	RoleText       Role = "text"
	RoleTextMuted  Role = "text-muted"
)

// NamedColor pairs a role with its color.
type NamedColor struct {
	Role  Role
	Color HSLColor
}

// ColorPalette is the full semantic color set derived from one seed.
// Every role is populated.
type ColorPalette struct {
	Primary   HSLColor
	Secondary HSLColor
	Accent    HSLColor
	Success   HSLColor
	Warning   HSLColor
	Error     HSLColor
	Info      HSLColor
	Neutral   HSLColor

	Background HSLColor
	Surface    HSLColor
	SurfaceAlt HSLColor
	Border     HSLColor
	Text       HSLColor
	TextMuted  HSLColor

	Scheme ColorScheme
	Mode   ColorMode
}

// FromPrimary derives a light-mode palette from the seed.
func FromPrimary(seed HSLColor, scheme ColorScheme) ColorPalette {
	return FromPrimaryMode(seed, scheme, Light)
}

// FromPrimaryMode derives a palette with the surface tones of mode.
// The same inputs always produce identical output.
func FromPrimaryMode(seed HSLColor, scheme ColorScheme, mode ColorMode) ColorPalette {
	secondary, accent := scheme.derive(seed)

	// Semantic roles inherit the seed's saturation character, bounded so that
	// a grey seed still yields recognisable status colors.
	sat := clamp(seed.S()*0.5+40, 50, 90)
	shift := (seed.L() - 50) * 0.1
	semanticL := func(base float64) float64 {
		return clamp(base+shift, 36, 58)
	}

	p := ColorPalette{
		Primary:   seed,
		Secondary: secondary,
		Accent:    accent,
		Success:   NewHSL(SuccessHue, sat, semanticL(42)),
		Warning:   NewHSL(WarningHue, sat+8, semanticL(52)),
		Error:     NewHSL(ErrorHue, sat+4, semanticL(46)),
		Info:      NewHSL(InfoHue, sat, semanticL(50)),
		Neutral:   NewHSL(seed.H(), min(seed.S(), 12), 50),
		Scheme:    scheme,
		Mode:      mode,
	}

	tint := min(seed.S(), 20)
	muted := min(seed.S(), 10)
	surface := func(s, l float64) HSLColor { return NewHSL(seed.H(), s, l) }

	if mode == Dark {
		p.Background = surface(muted, 8)
		p.Surface = surface(muted, 12)
		p.SurfaceAlt = surface(muted, 16)
		p.Border = surface(muted, 22)
		p.Text = surface(muted*0.5, 98)
		p.TextMuted = surface(muted*0.6, 70)
	} else {
		p.Background = surface(tint, 98)
		p.Surface = surface(0, 100)
		p.SurfaceAlt = surface(muted, 96)
		p.Border = surface(muted, 88)
		p.Text = surface(muted, 12)
		p.TextMuted = surface(muted*0.6, 40)
	}

	return p
}

// Roles lists every palette member in a fixed order.
func (p ColorPalette) Roles() []NamedColor {
	return []NamedColor{
		{RolePrimary, p.Primary},
		{RoleSecondary, p.Secondary},
		{RoleAccent, p.Accent},
		{RoleSuccess, p.Success},
		{RoleWarning, p.Warning},
		{RoleError, p.Error},
		{RoleInfo, p.Info},
		{RoleNeutral, p.Neutral},
		{RoleBackground, p.Background},
		{RoleSurface, p.Surface},
		{RoleSurfaceAlt, p.SurfaceAlt},
		{RoleBorder, p.Border},
		{RoleText, p.Text},
		{RoleTextMuted, p.TextMuted},
	}
}

// Color looks up a role.
func (p ColorPalette) Color(role Role) (HSLColor, bool) {
	for _, nc := range p.Roles() {
		if nc.Role == role {
			return nc.Color, true
		}
	}
	return HSLColor{}, false
}

// SurfaceRoles are the roles text is drawn on.
func SurfaceRoles() []Role {
	return []Role{RoleBackground, RoleSurface, RoleSurfaceAlt}
}

// ForegroundRoles are the roles drawn on surfaces.
func ForegroundRoles() []Role {
	return []Role{
		RoleText, RoleTextMuted,
		RolePrimary, RoleSecondary, RoleAccent,
		RoleSuccess, RoleWarning, RoleError, RoleInfo,
	}
}
