package cssvars

import (
	"strings"

	"github.com/yacobolo/tokengen"
)

// propertyGroups maps CSS property names to the token group their values
// should come from.
var propertyGroups = map[string]tokengen.Group{
	// Color
	"color":                 tokengen.GroupColor,
	"background":            tokengen.GroupColor,
	"background-color":      tokengen.GroupColor,
	"border":                tokengen.GroupColor,
	"border-color":          tokengen.GroupColor,
	"border-top":            tokengen.GroupColor,
	"border-right":          tokengen.GroupColor,
	"border-bottom":         tokengen.GroupColor,
	"border-left":           tokengen.GroupColor,
	"border-inline":         tokengen.GroupColor,
	"border-block":          tokengen.GroupColor,
	"outline":               tokengen.GroupColor,
	"outline-color":         tokengen.GroupColor,
	"text-decoration":       tokengen.GroupColor,
	"text-decoration-color": tokengen.GroupColor,
	"caret-color":           tokengen.GroupColor,
	"accent-color":          tokengen.GroupColor,
	"column-rule":           tokengen.GroupColor,
	"column-rule-color":     tokengen.GroupColor,
	"fill":                  tokengen.GroupColor,
	"stroke":                tokengen.GroupColor,
	"stop-color":            tokengen.GroupColor,
	"background-image":      tokengen.GroupGradient,

	// Shadow
	"box-shadow":  tokengen.GroupShadow,
	"text-shadow": tokengen.GroupShadow,

	// Radius
	"border-radius": tokengen.GroupRadius,

	// Typography
	"font-family":    tokengen.GroupTypography,
	"font-size":      tokengen.GroupTypography,
	"line-height":    tokengen.GroupTypography,
	"letter-spacing": tokengen.GroupTypography,

	// Spacing
	"gap":        tokengen.GroupSpacing,
	"row-gap":    tokengen.GroupSpacing,
	"column-gap": tokengen.GroupSpacing,
	"padding":    tokengen.GroupSpacing,
	"margin":     tokengen.GroupSpacing,
}

// categorizeProperty returns the token group a property draws from, or ""
// when no group applies.
func categorizeProperty(name string) tokengen.Group {
	name = strings.ToLower(strings.TrimSpace(name))

	// Check exact match
	if g, ok := propertyGroups[name]; ok {
		return g
	}

	// Vendor prefixes map to the unprefixed property
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if strings.HasPrefix(name, prefix) {
			return categorizeProperty(strings.TrimPrefix(name, prefix))
		}
	}

	switch {
	case strings.HasSuffix(name, "-color"):
		return tokengen.GroupColor
	case strings.HasPrefix(name, "border-") && strings.HasSuffix(name, "-radius"):
		return tokengen.GroupRadius
	case strings.HasPrefix(name, "padding-"), strings.HasPrefix(name, "margin-"):
		return tokengen.GroupSpacing
	}
	return ""
}

// isColorProperty reports whether hardcoded colors in the property's value
// should be linted.
func isColorProperty(name string) bool {
	switch categorizeProperty(name) {
	case tokengen.GroupColor, tokengen.GroupGradient, tokengen.GroupShadow:
		return true
	}
	return false
}
