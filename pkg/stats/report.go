package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report prints count, mean, median, min, max and (with two or more
// samples) standard deviation for every operation that has at least one
// sample. Operations with no samples are omitted entirely.
func Report(w io.Writer, rec *Recorder) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "PERFORMANCE STATISTICS")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for _, op := range Operations {
		times := rec.Samples(op)
		if len(times) == 0 {
			continue
		}
		sorted := make([]float64, len(times))
		copy(sorted, times)
		sort.Float64s(sorted)

		fmt.Fprintf(w, "\n%s OPERATION:\n", strings.ToUpper(string(op)))
		fmt.Fprintf(w, "  Total requests: %d\n", len(times))
		fmt.Fprintf(w, "  Average time: %.2fms\n", stat.Mean(times, nil))
		fmt.Fprintf(w, "  Median time: %.2fms\n", median(sorted))
		fmt.Fprintf(w, "  Min time: %.2fms\n", floats.Min(sorted))
		fmt.Fprintf(w, "  Max time: %.2fms\n", floats.Max(sorted))
		if len(times) > 1 {
			fmt.Fprintf(w, "  Std deviation: %.2fms\n", stat.StdDev(times, nil))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// median of an already-sorted slice; the two middle values are averaged for
// even counts.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
