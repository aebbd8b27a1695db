package fastfloat

import (
	"context"
	"math/rand"
	"testing"
)

// ints returns n small integer-valued floats. Integer values this small are
// exact under any association, so relaxed folds have to agree with strict
// ones bit for bit.
func ints(n int) []float64 {
	rng := rand.New(rand.NewSource(17))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(rng.Intn(2000) - 1000)
	}
	return xs
}

func TestSum(t *testing.T) {
	for _, n := range []int{0, 1, 2, 100, 4097} {
		xs := ints(n)
		if got, want := Sum(xs), StrictSum(xs); got != want {
			t.Errorf("Sum of %d ints: %v, want: %v", n, got, want)
		}
	}
}

func TestSum32(t *testing.T) {
	xs := []float32{1.5, 2.5, -4, 0.25}
	if got, want := Sum(xs), float32(0.25); got != want {
		t.Errorf("Sum: %v, want: %v", got, want)
	}
}

func TestDot(t *testing.T) {
	for _, n := range []int{0, 1, 100} {
		xs, ys := ints(n), ints(n)
		if got, want := Dot(xs, ys), StrictDot(xs, ys); got != want {
			t.Errorf("Dot of %d ints: %v, want: %v", n, got, want)
		}
	}
}

func TestDotLengthMismatch(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{10, 10}
	if got := Dot(xs, ys); got != 30 {
		t.Errorf("Dot with short ys: %v, want: 30", got)
	}
	if got := Dot(ys, xs); got != 30 {
		t.Errorf("Dot with short xs: %v, want: 30", got)
	}
}

func TestLerp(t *testing.T) {
	for _, c := range []struct {
		a, b, c, out float64
	}{
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0.5, 0.5},
		{2, 4, 0.25, 2.5},
		{-1, 1, 0.5, 0},
	} {
		if got := Lerp(c.a, c.b, c.c); got != c.out {
			t.Errorf("Lerp(%v, %v, %v) = %v, want: %v", c.a, c.b, c.c, got, c.out)
		}
	}
}

func TestSumParallel(t *testing.T) {
	xs := ints(10000)
	want := StrictSum(xs)
	for _, workers := range []int{0, 1, 2, 7, 64, 20000} {
		got, err := SumParallel(context.Background(), xs, workers)
		if err != nil {
			t.Fatalf("SumParallel(%d workers): %v", workers, err)
		}
		if got != want {
			t.Errorf("SumParallel(%d workers): %v, want: %v", workers, got, want)
		}
	}
}

func TestSumParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := SumParallel(ctx, ints(100), 4); err == nil {
		t.Error("SumParallel on a cancelled context: nil error")
	}
}

func BenchmarkStrictSum(b *testing.B) {
	xs := ints(4096)
	for i := 0; i < b.N; i++ {
		sink = StrictSum(xs)
	}
}

func BenchmarkSum(b *testing.B) {
	xs := ints(4096)
	for i := 0; i < b.N; i++ {
		sink = Sum(xs)
	}
}

func BenchmarkDot(b *testing.B) {
	xs, ys := ints(4096), ints(4096)
	for i := 0; i < b.N; i++ {
		sink = Dot(xs, ys)
	}
}

func BenchmarkStrictDot(b *testing.B) {
	xs, ys := ints(4096), ints(4096)
	for i := 0; i < b.N; i++ {
		sink = StrictDot(xs, ys)
	}
}

var sink float64
