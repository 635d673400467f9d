package tokengen

import (
	"fmt"
	"strings"
)

// ContainerConfig describes the responsive page container.
type ContainerConfig struct {
	MaxWidths ResponsiveValue[int] // px
	Padding   ResponsiveValue[int] // px, horizontal
	Center    bool
}

// DefaultContainer caps width at each tier's minimum and pads 16/24/32px.
func DefaultContainer() ContainerConfig {
	return ContainerConfig{
		MaxWidths: EmptyResponsiveValue[int]().
			WithSm(640).WithMd(768).WithLg(1024).WithXl(1280).WithXxl(1536),
		Padding: NewResponsiveValue(16).WithMd(24).WithLg(32),
		Center:  true,
	}
}

// GridConfig describes the responsive grid.
type GridConfig struct {
	Columns ResponsiveValue[int]
	Gap     ResponsiveValue[int] // px
}

// DefaultGrid goes from one column up to four, with widening gaps.
func DefaultGrid() GridConfig {
	return GridConfig{
		Columns: NewResponsiveValue(1).WithSm(2).WithMd(3).WithLg(4),
		Gap:     NewResponsiveValue(16).WithMd(24).WithLg(32),
	}
}

type cssRule struct {
	selector string
	decls    []string
}

func writeRules(b *strings.Builder, indent string, rules []cssRule) {
	for _, r := range rules {
		fmt.Fprintf(b, "%s%s {\n", indent, r.selector)
		for _, d := range r.decls {
			fmt.Fprintf(b, "%s  %s;\n", indent, d)
		}
		fmt.Fprintf(b, "%s}\n", indent)
	}
}

// writeTiers emits base rules for Xs and one media block per larger tier
// that rules returns.
func writeTiers(b *strings.Builder, rules func(bp Breakpoint) []cssRule) {
	for _, bp := range Breakpoints() {
		rs := rules(bp)
		if len(rs) == 0 {
			continue
		}
		if bp == Xs {
			writeRules(b, "", rs)
			continue
		}
		fmt.Fprintf(b, "\n%s {\n", bp.MediaQuery())
		writeRules(b, "  ", rs)
		b.WriteString("}\n")
	}
}

func className(prefix, name string) string {
	if prefix == "" {
		return "." + name
	}
	return "." + prefix + "-" + name
}

// ContainerCSS renders the container rules. A tier gets a media block only
// when its resolved width or padding differs from the tier below.
func ContainerCSS(prefix string, cfg ContainerConfig) string {
	var b strings.Builder
	sel := className(prefix, "container")

	writeTiers(&b, func(bp Breakpoint) []cssRule {
		var decls []string
		if bp == Xs {
			decls = append(decls, "width: 100%", "margin-left: auto", "margin-right: auto")
		}
		if w, ok := cfg.MaxWidths.Get(bp); ok && changed(cfg.MaxWidths, bp) {
			decls = append(decls, fmt.Sprintf("max-width: %dpx", w))
		}
		if p, ok := cfg.Padding.Get(bp); ok && changed(cfg.Padding, bp) {
			decls = append(decls, fmt.Sprintf("padding-left: %dpx", p), fmt.Sprintf("padding-right: %dpx", p))
		}
		if len(decls) == 0 {
			return nil
		}
		return []cssRule{{selector: sel, decls: decls}}
	})

	if cfg.Center {
		b.WriteString("\n")
		writeRules(&b, "", []cssRule{{
			selector: className(prefix, "container-center"),
			decls:    []string{"display: flex", "flex-direction: column", "align-items: center"},
		}})
	}
	return b.String()
}

// GridCSS renders the grid rules, resolving columns and gap per tier.
func GridCSS(prefix string, cfg GridConfig) string {
	var b strings.Builder
	sel := className(prefix, "grid")

	writeTiers(&b, func(bp Breakpoint) []cssRule {
		var decls []string
		if bp == Xs {
			decls = append(decls, "display: grid")
		}
		if n, ok := cfg.Columns.Get(bp); ok && changed(cfg.Columns, bp) {
			decls = append(decls, fmt.Sprintf("grid-template-columns: repeat(%d, minmax(0, 1fr))", n))
		}
		if g, ok := cfg.Gap.Get(bp); ok && changed(cfg.Gap, bp) {
			decls = append(decls, fmt.Sprintf("gap: %dpx", g))
		}
		if len(decls) == 0 {
			return nil
		}
		return []cssRule{{selector: sel, decls: decls}}
	})
	return b.String()
}

// changed reports whether bp resolves differently from the tier below it.
func changed[T comparable](r ResponsiveValue[T], bp Breakpoint) bool {
	cur, ok := r.Get(bp)
	if !ok {
		return false
	}
	if bp == Xs {
		return true
	}
	prev, ok := r.Get(bp - 1)
	return !ok || prev != cur
}
