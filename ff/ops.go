package ff

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// The operator table. Each operator exists in three shapes: the canonical
// wrapped-op-raw method (XxxRaw), the wrapped-op-wrapped method, and the
// raw-op-wrapped package function. Only the canonical form computes anything,
// the other two delegate to it, so the three shapes cannot drift apart.
//
// Go's compiler has no fast-math mode, so apart from MulAdd these all lower
// to the ordinary instructions. The wrapper still buys the contract: anything
// holding a Fast may be reassociated (see fastfloat.SumParallel) and is
// allowed to go wrong on NaN or infinity.

// AddRaw returns x + y.
func (x Fast[F]) AddRaw(y F) Fast[F] {
	return Fast[F]{x.v + y}
}

// SubRaw returns x - y.
func (x Fast[F]) SubRaw(y F) Fast[F] {
	return Fast[F]{x.v - y}
}

// MulRaw returns x * y.
func (x Fast[F]) MulRaw(y F) Fast[F] {
	return Fast[F]{x.v * y}
}

// DivRaw returns x / y.
func (x Fast[F]) DivRaw(y F) Fast[F] {
	return Fast[F]{x.v / y}
}

// ModRaw returns the floating-point remainder of x / y, with the sign of x.
func (x Fast[F]) ModRaw(y F) Fast[F] {
	return Fast[F]{fmod(x.v, y)}
}

// MulAddRaw returns x*y + z with a single rounding. This is the one operator
// where Go really does offer the fusion that relaxed arithmetic licenses
// everywhere else.
func (x Fast[F]) MulAddRaw(y, z F) Fast[F] {
	return Fast[F]{fma(x.v, y, z)}
}

// Add returns x + y.
func (x Fast[F]) Add(y Fast[F]) Fast[F] { return x.AddRaw(y.v) }

// Sub returns x - y.
func (x Fast[F]) Sub(y Fast[F]) Fast[F] { return x.SubRaw(y.v) }

// Mul returns x * y.
func (x Fast[F]) Mul(y Fast[F]) Fast[F] { return x.MulRaw(y.v) }

// Div returns x / y.
func (x Fast[F]) Div(y Fast[F]) Fast[F] { return x.DivRaw(y.v) }

// Mod returns the floating-point remainder of x / y.
func (x Fast[F]) Mod(y Fast[F]) Fast[F] { return x.ModRaw(y.v) }

// MulAdd returns x*y + z with a single rounding.
func (x Fast[F]) MulAdd(y, z Fast[F]) Fast[F] { return x.MulAddRaw(y.v, z.v) }

// Add returns x + y for a raw left operand.
func Add[F constraints.Float](x F, y Fast[F]) Fast[F] { return Unchecked(x).AddRaw(y.v) }

// Sub returns x - y for a raw left operand.
func Sub[F constraints.Float](x F, y Fast[F]) Fast[F] { return Unchecked(x).SubRaw(y.v) }

// Mul returns x * y for a raw left operand.
func Mul[F constraints.Float](x F, y Fast[F]) Fast[F] { return Unchecked(x).MulRaw(y.v) }

// Div returns x / y for a raw left operand.
func Div[F constraints.Float](x F, y Fast[F]) Fast[F] { return Unchecked(x).DivRaw(y.v) }

// Mod returns the remainder of x / y for a raw left operand.
func Mod[F constraints.Float](x F, y Fast[F]) Fast[F] { return Unchecked(x).ModRaw(y.v) }

// In-place forms, all derived from the binary table above. Width-specific
// behaviour lives only in the canonical methods.

// AddEq sets x to x + y.
func (x *Fast[F]) AddEq(y Fast[F]) { *x = x.Add(y) }

// SubEq sets x to x - y.
func (x *Fast[F]) SubEq(y Fast[F]) { *x = x.Sub(y) }

// MulEq sets x to x * y.
func (x *Fast[F]) MulEq(y Fast[F]) { *x = x.Mul(y) }

// DivEq sets x to x / y.
func (x *Fast[F]) DivEq(y Fast[F]) { *x = x.Div(y) }

// ModEq sets x to the remainder of x / y.
func (x *Fast[F]) ModEq(y Fast[F]) { *x = x.Mod(y) }

// AddRawEq sets x to x + y.
func (x *Fast[F]) AddRawEq(y F) { *x = x.AddRaw(y) }

// SubRawEq sets x to x - y.
func (x *Fast[F]) SubRawEq(y F) { *x = x.SubRaw(y) }

// MulRawEq sets x to x * y.
func (x *Fast[F]) MulRawEq(y F) { *x = x.MulRaw(y) }

// DivRawEq sets x to x / y.
func (x *Fast[F]) DivRawEq(y F) { *x = x.DivRaw(y) }

// ModRawEq sets x to the remainder of x / y.
func (x *Fast[F]) ModRawEq(y F) { *x = x.ModRaw(y) }

// fmod dispatches remainder to the right width. There is no remainder
// instruction to relax on any platform Go targets, so this is the standard
// library behaviour for both widths. Defined float types fall through to the
// float64 path; fmod is exact, so computing it at double precision gives the
// same answer either way.
func fmod[F constraints.Float](x, y F) F {
	switch v := any(x).(type) {
	case float32:
		return F(math32.Mod(v, float32(y)))
	case float64:
		return F(math.Mod(v, float64(y)))
	default:
		return F(math.Mod(float64(x), float64(y)))
	}
}

// fma dispatches fused multiply-add to the right width. Defined float types
// take the float64 path; for a 32 bit defined type that can double-round,
// which is within the relaxed contract.
func fma[F constraints.Float](x, y, z F) F {
	switch v := any(x).(type) {
	case float32:
		return F(math32.FMA(v, float32(y), float32(z)))
	case float64:
		return F(math.FMA(v, float64(y), float64(z)))
	default:
		return F(math.FMA(float64(x), float64(y), float64(z)))
	}
}
