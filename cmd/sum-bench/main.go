// sum-bench compares strict folds with the relaxed folds in package
// fastfloat over a large random input, and reports timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/fastfloat"
)

var (
	nFlag       = flag.Int("n", 1<<24, "`number` of input elements")
	workersFlag = flag.Int("workers", runtime.NumCPU(), "`number` of workers for the parallel sum")
	seedFlag    = flag.Int64("seed", 1, "random `seed` for the input")
	profileFlag = flag.Bool("profile", false, "whether to write pprof profiles to the current working directory")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("sum-bench: ")

	if *profileFlag {
		finish, err := startProfiles()
		if err != nil {
			log.Fatalf("Starting profiling: %v", err)
		}
		defer func() {
			if err := finish(); err != nil {
				log.Fatalf("Finishing profiles: %v", err)
			}
		}()
	}

	rng := rand.New(rand.NewSource(*seedFlag))
	xs := make([]float64, *nFlag)
	ys := make([]float64, *nFlag)
	for i := range xs {
		xs[i] = rng.Float64() - 0.5
		ys[i] = rng.Float64() - 0.5
	}

	ctx := interruptContext()
	p := message.NewPrinter(language.English)
	p.Printf("%d elements, %d workers\n", *nFlag, *workersFlag)

	report(p, "strict sum", func() float64 { return fastfloat.StrictSum(xs) })
	report(p, "fast sum", func() float64 { return fastfloat.Sum(xs) })
	report(p, "parallel sum", func() float64 {
		total, err := fastfloat.SumParallel(ctx, xs, *workersFlag)
		if err != nil {
			log.Fatalf("Parallel sum: %v", err)
		}
		return total
	})
	report(p, "strict dot", func() float64 { return fastfloat.StrictDot(xs, ys) })
	report(p, "fast dot", func() float64 { return fastfloat.Dot(xs, ys) })
}

func report(p *message.Printer, name string, f func() float64) {
	start := time.Now()
	total := f()
	p.Printf("%-12s\t%v\t%v\n", name, total, time.Since(start))
}

func interruptContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}

func startProfiles() (func() error, error) {
	cpu, err := os.Create("cpu.pprof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(cpu); err != nil {
		return nil, fmt.Errorf("starting cpu profile: %w", err)
	}

	mem, err := os.Create("mem.pprof")
	if err != nil {
		return nil, err
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := cpu.Close(); err != nil {
			return err
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(mem); err != nil {
			return err
		}
		return mem.Close()
	}, nil
}
