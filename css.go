package tokengen

import (
	"strings"
)

// varName builds a custom property name: --prefix-name.
func varName(prefix, name string) string {
	if prefix == "" {
		return "--" + name
	}
	return "--" + prefix + "-" + name
}

func ensureDashes(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}

// Var references a custom property. The leading dashes are optional.
func Var(name string) string {
	return "var(" + ensureDashes(name) + ")"
}

// VarWithFallback references a custom property with a fallback value.
func VarWithFallback(name, fallback string) string {
	return "var(" + ensureDashes(name) + ", " + fallback + ")"
}

// Define renders a single declaration.
func Define(name, value string) string {
	return ensureDashes(name) + ": " + value + ";"
}

// DeclarationBlock renders selector { ... } with one declaration per line.
func DeclarationBlock(selector string, tokens []Token) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, t := range tokens {
		b.WriteString("  ")
		b.WriteString(Define(t.Name, t.Value))
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}

// IsValidIdentifier reports whether s is a plain CSS identifier: a letter,
// underscore or dash followed by letters, digits, underscores or dashes.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '-':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

// Escape makes s safe inside a double-quoted CSS string.
func Escape(s string) string {
	return escaper.Replace(s)
}
