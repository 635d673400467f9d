package tokengen

// ResponsiveValue holds a sparse set of per-breakpoint values with
// mobile-first resolution. The zero value has no tiers set.
//
// Builders return modified copies; a ResponsiveValue is never changed in place.
type ResponsiveValue[T any] struct {
	values [numBreakpoints]T
	set    [numBreakpoints]bool
}

// NewResponsiveValue sets base at Xs, so every tier resolves.
func NewResponsiveValue[T any](base T) ResponsiveValue[T] {
	return EmptyResponsiveValue[T]().With(Xs, base)
}

// EmptyResponsiveValue has no tiers set.
func EmptyResponsiveValue[T any]() ResponsiveValue[T] {
	return ResponsiveValue[T]{}
}

// With sets the value at one tier. Invalid tiers are ignored.
func (r ResponsiveValue[T]) With(bp Breakpoint, value T) ResponsiveValue[T] {
	if !bp.valid() {
		return r
	}
	r.values[bp] = value
	r.set[bp] = true
	return r
}

func (r ResponsiveValue[T]) WithXs(value T) ResponsiveValue[T]  { return r.With(Xs, value) }
func (r ResponsiveValue[T]) WithSm(value T) ResponsiveValue[T]  { return r.With(Sm, value) }
func (r ResponsiveValue[T]) WithMd(value T) ResponsiveValue[T]  { return r.With(Md, value) }
func (r ResponsiveValue[T]) WithLg(value T) ResponsiveValue[T]  { return r.With(Lg, value) }
func (r ResponsiveValue[T]) WithXl(value T) ResponsiveValue[T]  { return r.With(Xl, value) }
func (r ResponsiveValue[T]) WithXxl(value T) ResponsiveValue[T] { return r.With(Xxl, value) }

// Get returns the value at bp, or at the nearest smaller tier that has one.
// It never falls back to a larger tier. ok is false when nothing at or
// below bp is set.
func (r ResponsiveValue[T]) Get(bp Breakpoint) (value T, ok bool) {
	if !bp.valid() {
		return value, false
	}
	for i := int(bp); i >= 0; i-- {
		if r.set[i] {
			return r.values[i], true
		}
	}
	return value, false
}

// IsSet reports whether bp was set explicitly.
func (r ResponsiveValue[T]) IsSet(bp Breakpoint) bool {
	return bp.valid() && r.set[bp]
}

// Defined lists the explicitly set tiers in ascending order.
func (r ResponsiveValue[T]) Defined() []Breakpoint {
	var out []Breakpoint
	for _, bp := range Breakpoints() {
		if r.set[bp] {
			out = append(out, bp)
		}
	}
	return out
}
