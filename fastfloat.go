// package fastfloat does relaxed floating point arithmetic over slices,
// folding them through the wrappers in package ff. The folds here are the
// canonical consumers of ff: wrap the inputs, fold with the wrapped
// operators, unwrap the accumulator at the end.
package fastfloat

import (
	"context"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/pfcm/fastfloat/ff"
)

// Sum folds xs into a relaxed accumulator and returns the total. The caller
// accepts the relaxed contract for every element: no NaNs, no infinities,
// and no promise about association order.
func Sum[F constraints.Float](xs []F) F {
	acc := ff.Unchecked[F](0)
	for _, x := range xs {
		acc.AddRawEq(x)
	}
	return acc.Raw()
}

// StrictSum is the plain left-to-right fold, for comparing against Sum.
func StrictSum[F constraints.Float](xs []F) F {
	var acc F
	for _, x := range xs {
		acc += x
	}
	return acc
}

// Dot returns the dot product of xs and ys, accumulating with fused
// multiply-adds. If the lengths differ the extra elements are ignored.
func Dot[F constraints.Float](xs, ys []F) F {
	n := min(len(xs), len(ys))
	acc := ff.Unchecked[F](0)
	for i := 0; i < n; i++ {
		acc = ff.Unchecked(xs[i]).MulAddRaw(ys[i], acc.Raw())
	}
	return acc.Raw()
}

// StrictDot is the unfused multiply-then-add fold, for comparing against Dot.
func StrictDot[F constraints.Float](xs, ys []F) F {
	n := min(len(xs), len(ys))
	var acc F
	for i := 0; i < n; i++ {
		acc += xs[i] * ys[i]
	}
	return acc
}

// Lerp does linear interpolation between a and b:
//
//	Lerp(a, b, c) = a + c*(b-a)
//
// computed with a fused multiply-add.
func Lerp[F constraints.Float](a, b, c F) F {
	return ff.Unchecked(c).MulAddRaw(b-a, a).Raw()
}

// SumParallel sums xs across the given number of workers, one relaxed
// accumulator per worker. Splitting the fold like this reassociates it,
// which is exactly what wrapping the accumulator licenses; the result can
// differ from Sum in the low bits. Workers below 1 are treated as 1.
func SumParallel[F constraints.Float](ctx context.Context, xs []F, workers int) (F, error) {
	workers = max(1, min(workers, len(xs)))
	partials := make([]F, workers)

	g, ctx := errgroup.WithContext(ctx)
	stride := (len(xs) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * stride
		hi := min(lo+stride, len(xs))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partials[w] = Sum(xs[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return Sum(partials), nil
}
