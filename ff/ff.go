// package ff provides "fast-math" wrappers for float32 and float64. A
// wrapped value marks everything computed from it as eligible for relaxed
// arithmetic: reassociation and fusion are allowed, and nothing is promised
// about results when NaN or an infinity shows up. The wrapper stores any bit
// pattern just fine, it is the arithmetic contract that changes, not the
// representation. Misuse never panics or errors, it just produces the wrong
// number.
package ff

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Fast is a relaxed-arithmetic wrapper for a single float. It enforces no
// invariant on the stored value and adds no overhead over the raw float.
type Fast[F constraints.Float] struct {
	v F
}

// F32 wraps a float32.
type F32 = Fast[float32]

// F64 wraps a float64.
type F64 = Fast[float64]

// Unchecked wraps a value for relaxed arithmetic. There is no validation and
// nothing to fail; the name exists so call sites that opt in to relaxed
// semantics are easy to find. The caller takes on the obligation that the
// value is only ever combined with finite, non-NaN operands.
func Unchecked[F constraints.Float](v F) Fast[F] {
	return Fast[F]{v}
}

// From is a convenience alias for Unchecked. It carries exactly the same
// caller obligation but doesn't say so at the call site, which makes audits
// harder. Prefer Unchecked anywhere the opt-in should be visible.
func From[F constraints.Float](v F) Fast[F] {
	return Fast[F]{v}
}

// Raw returns the wrapped value. Combined with Ptr this is how a Fast
// reaches the whole math package surface without re-exporting it:
// math.Sin(x.Raw()), and so on.
func (x Fast[F]) Raw() F {
	return x.v
}

// Ptr returns a pointer to the wrapped value, for in-place updates.
func (x *Fast[F]) Ptr() *F {
	return &x.v
}

// Format forwards every verb and flag to the wrapped value, so formatting a
// Fast is byte for byte the same as formatting the raw float.
func (x Fast[F]) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), x.v)
}

func (x Fast[F]) String() string {
	return fmt.Sprintf("%v", x.v)
}
