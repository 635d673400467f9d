package tokengen

import (
	"fmt"
	"strings"
)

// Breakpoint is a named viewport tier. Tiers are totally ordered:
// Xs < Sm < Md < Lg < Xl < Xxl.
type Breakpoint int

const (
	Xs Breakpoint = iota
	Sm
	Md
	Lg
	Xl
	Xxl

	numBreakpoints = int(Xxl) + 1
)

var breakpointMinWidths = [numBreakpoints]int{0, 640, 768, 1024, 1280, 1536}

var breakpointNames = [numBreakpoints]string{"xs", "sm", "md", "lg", "xl", "xxl"}

// Breakpoints lists every tier in ascending order.
func Breakpoints() []Breakpoint {
	return []Breakpoint{Xs, Sm, Md, Lg, Xl, Xxl}
}

func (b Breakpoint) valid() bool {
	return b >= Xs && b <= Xxl
}

// MinWidth is the tier's lower bound in pixels.
func (b Breakpoint) MinWidth() int {
	if !b.valid() {
		return 0
	}
	return breakpointMinWidths[b]
}

// MaxWidth is one pixel below the next tier. Xxl is unbounded.
func (b Breakpoint) MaxWidth() (int, bool) {
	if !b.valid() || b == Xxl {
		return 0, false
	}
	return breakpointMinWidths[b+1] - 1, true
}

// MediaQuery renders the mobile-first query for the tier. Xs is the base
// tier and has no query.
func (b Breakpoint) MediaQuery() string {
	if b.MinWidth() == 0 {
		return ""
	}
	return fmt.Sprintf("@media (min-width: %dpx)", b.MinWidth())
}

// RangeQuery renders a query matching only this tier.
func (b Breakpoint) RangeQuery() string {
	if b.MinWidth() == 0 {
		upper, _ := b.MaxWidth()
		return fmt.Sprintf("@media (max-width: %dpx)", upper)
	}
	if upper, ok := b.MaxWidth(); ok {
		return fmt.Sprintf("@media (min-width: %dpx) and (max-width: %dpx)", b.MinWidth(), upper)
	}
	return b.MediaQuery()
}

// Container is the class suffix used for tier-scoped utilities.
func (b Breakpoint) Container() string {
	return b.String()
}

func (b Breakpoint) String() string {
	if !b.valid() {
		return fmt.Sprintf("Breakpoint(%d)", int(b))
	}
	return breakpointNames[b]
}

// ParseBreakpoint accepts the String form, case-insensitively. "2xl" is an
// alias for xxl.
func ParseBreakpoint(name string) (Breakpoint, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "2xl" {
		return Xxl, nil
	}
	for i, bn := range breakpointNames {
		if bn == n {
			return Breakpoint(i), nil
		}
	}
	return Xs, fmt.Errorf("unknown breakpoint %q", name)
}
