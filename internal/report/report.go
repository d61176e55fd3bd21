// Package report turns sketch estimates into relative-error distributions and exports them.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/klauspost/compress/gzip"
)

// RelativeError returns (estimate-truth)/truth.
// A zero truth yields 0 for a zero estimate and +Inf otherwise.
func RelativeError(estimate, truth int64) float64 {
	if truth == 0 {
		if estimate == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return float64(estimate-truth) / float64(truth)
}

// Distribution is a set of relative errors sorted ascending.
type Distribution []float64

// NewDistribution sorts values in place and returns them as a Distribution.
func NewDistribution(values []float64) Distribution {
	slices.Sort(values)
	return Distribution(values)
}

func (d Distribution) Len() int { return len(d) }

// Quantile returns the value at rank q*(len-1), q in [0, 1]. NaN if empty.
func (d Distribution) Quantile(q float64) float64 {
	if len(d) == 0 {
		return math.NaN()
	}
	q = min(max(q, 0), 1)
	return d[int(q*float64(len(d)-1))]
}

func (d Distribution) Median() float64 { return d.Quantile(0.5) }
func (d Distribution) Min() float64    { return d.Quantile(0) }
func (d Distribution) Max() float64    { return d.Quantile(1) }

// Mean returns the arithmetic mean. NaN if empty.
func (d Distribution) Mean() float64 {
	if len(d) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range d {
		sum += v
	}
	return sum / float64(len(d))
}

// NonNegative reports whether no error is below zero, i.e. nothing was under-estimated.
func (d Distribution) NonNegative() bool {
	return len(d) == 0 || d[0] >= 0
}

// Summary is a fixed set of statistics over a Distribution.
type Summary struct {
	Count  int
	Min    float64
	Median float64
	P90    float64
	P99    float64
	Mean   float64
	Max    float64
}

func (d Distribution) Summarize() Summary {
	return Summary{
		Count:  d.Len(),
		Min:    d.Min(),
		Median: d.Median(),
		P90:    d.Quantile(0.9),
		P99:    d.Quantile(0.99),
		Mean:   d.Mean(),
		Max:    d.Max(),
	}
}

// WriteJSON writes d as a flat JSON array.
func WriteJSON(w io.Writer, d Distribution) error {
	values := []float64(d)
	if values == nil {
		values = []float64{}
	}
	if err := json.NewEncoder(w).Encode(values); err != nil {
		return fmt.Errorf("failed to encode distribution: %w", err)
	}
	return nil
}

// WriteFile writes d as a flat JSON array to path, gzip-compressed if compress is set.
func WriteFile(path string, d Distribution, compress bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if !compress {
		return WriteJSON(f, d)
	}

	zw := gzip.NewWriter(f)
	if err := WriteJSON(zw, d); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to flush gzip stream: %w", err)
	}
	return nil
}
