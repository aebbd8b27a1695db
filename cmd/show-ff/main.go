// show-ff shows the representations of fast floats and the results of the
// relaxed operators, mostly for debugging precision surprises.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pfcm/fastfloat/ff"
)

var (
	widthsFlag = flag.String("widths", "", "comma separated list of `widths` to show, out of f32, f64. Leave empty to show both")
	opsFlag    = flag.String("ops", "", "comma separated list of `operations` to show. Available operations are: "+strings.Join(opKeys, ", ")+". Defaults to all operations")
)

var widthKeys = []string{"f32", "f64"}

var opKeys = []string{"add", "sub", "mul", "div", "mod", "muladd"}

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if n := flag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}

	widths, err := parseKeys(*widthsFlag, widthKeys)
	if err != nil {
		fail(err.Error())
	}
	ops, err := parseKeys(*opsFlag, opKeys)
	if err != nil {
		fail(err.Error())
	}

	a, err := parse(flag.Arg(0))
	if err != nil {
		fail(err.Error())
	}
	w := tabwriter.NewWriter(os.Stdout, 14, 1, 1, ' ', 0)

	showConversions(w, widths, a)

	if flag.NArg() == 2 {
		b, err := parse(flag.Arg(1))
		if err != nil {
			fail(err.Error())
		}
		fmt.Fprintln(w)
		showConversions(w, widths, b)
		fmt.Fprintln(w)
		showOps(w, widths, ops, a, b)
	}

	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func parseKeys(s string, all []string) (map[string]bool, error) {
	known := make(map[string]bool)
	for _, k := range all {
		known[k] = true
	}
	if s == "" {
		return known, nil
	}
	result := make(map[string]bool)
	for _, k := range strings.Split(s, ",") {
		if !known[k] {
			return nil, fmt.Errorf("unknown key %q", k)
		}
		result[k] = true
	}
	return result, nil
}

func parse(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}

func showConversions(w io.Writer, widths map[string]bool, f float64) {
	if widths["f32"] {
		v := ff.Unchecked(float32(f))
		fmt.Fprintf(w, "f32\t%v\t%e\t%E\t%x\tbits %08x\n",
			v, v, v, v, math.Float32bits(v.Raw()))
	}
	if widths["f64"] {
		v := ff.Unchecked(f)
		fmt.Fprintf(w, "f64\t%v\t%e\t%E\t%x\tbits %016x\n",
			v, v, v, v, math.Float64bits(v.Raw()))
	}
}

func showOps(w io.Writer, widths, show map[string]bool, a, b float64) {
	if widths["f32"] {
		showWidthOps(w, "f32", show, float32(a), float32(b))
	}
	if widths["f64"] {
		showWidthOps(w, "f64", show, a, b)
	}
}

func showWidthOps[F float32 | float64](w io.Writer, width string, show map[string]bool, a, b F) {
	x, y := ff.Unchecked(a), ff.Unchecked(b)
	results := []struct {
		op  string
		out ff.Fast[F]
	}{
		{"add", x.Add(y)},
		{"sub", x.Sub(y)},
		{"mul", x.Mul(y)},
		{"div", x.Div(y)},
		{"mod", x.Mod(y)},
		{"muladd", x.MulAdd(y, y)},
	}
	for _, r := range results {
		if !show[r.op] {
			continue
		}
		fmt.Fprintf(w, "%s %s\t%v\t%e\t%x\n", width, r.op, r.out, r.out, r.out)
	}
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help)
	os.Exit(1)
}

const help = `show-ff shows the fast-float representations of the same value
at both widths.
Usage:
	show-ff [-widths] [-ops] num [num]

Where num is a float literal in Go syntax. If a second number is provided,
also shows the results of the relaxed operations between them (muladd shows
a*b + b, fused).
`
