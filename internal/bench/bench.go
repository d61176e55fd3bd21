// Package bench replays synthetic traces through a sketch and measures its relative error.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"github.com/keilerkonzept/countmin"
	"github.com/keilerkonzept/countmin/heap"
	"github.com/keilerkonzept/countmin/internal/config"
	"github.com/keilerkonzept/countmin/internal/report"
	"github.com/keilerkonzept/countmin/internal/trace"
	"golang.org/x/sync/errgroup"
)

// Flow is one of the largest estimated flows.
type Flow struct {
	Key      int64
	Estimate int64
	Truth    int64
}

// Result is the outcome of a single benchmark run.
type Result struct {
	Rows      int
	Columns   int // Actual (prime) column count.
	SizeBytes int
	Flows     int
	Total     int64 // Sum of all inserted amounts.
	Exact     int   // Flows estimated without error.

	Errors  report.Distribution
	Summary report.Summary
	Top     []Flow
	Output  string // Path the distribution was written to, if any.
	Elapsed time.Duration
}

// Evaluate inserts every event of tr into s, then queries every key.
// Each key must appear in tr at most once. It keeps the `top` flows with the largest estimates.
func Evaluate(s *countmin.Sketch, tr trace.Trace, top int) *Result {
	start := time.Now()
	for _, e := range tr {
		s.Add(e.Key, e.Amount)
	}

	h := heap.NewMin(top)
	errs := make([]float64, len(tr))
	exact := 0
	for i, e := range tr {
		estimate := s.Count(e.Key)
		truth := int64(e.Amount)
		if estimate == truth {
			exact++
		}
		errs[i] = report.RelativeError(estimate, truth)
		h.Update(e.Key, estimate)
	}

	dist := report.NewDistribution(errs)
	out := &Result{
		Rows:      s.Rows(),
		Columns:   s.Columns(),
		SizeBytes: s.SizeBytes(),
		Flows:     len(tr),
		Total:     tr.Total(),
		Exact:     exact,
		Errors:    dist,
		Summary:   dist.Summarize(),
		Elapsed:   time.Since(start),
	}
	if h.Len() == 0 {
		return out
	}
	truths := make(map[int64]int64, h.Len())
	for _, e := range tr {
		if h.Contains(e.Key) {
			truths[e.Key] += int64(e.Amount)
		}
	}
	for _, item := range h.SortedSlice() {
		out.Top = append(out.Top, Flow{
			Key:      item.Key,
			Estimate: item.Count,
			Truth:    truths[item.Key],
		})
	}
	return out
}

func newSketch(cfg *config.Config, columns int) (*countmin.Sketch, error) {
	opts, err := cfg.SketchOptions()
	if err != nil {
		return nil, err
	}
	s, err := countmin.New(cfg.Sketch.Rows, columns, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sketch: %w", err)
	}
	return s, nil
}

func generate(cfg *config.Config, logger *slog.Logger) (trace.Trace, error) {
	g, err := trace.NewSeeded(cfg.TraceConfig(), cfg.Trace.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace generator: %w", err)
	}
	tr := g.Generate()
	logger.Info("generated trace", "flows", len(tr), "total", tr.Total(), "seed", cfg.Trace.Seed)
	return tr, nil
}

// Run generates a trace, evaluates a sketch on it, and writes the sorted error
// distribution to cfg.Output.Path unless the path is empty.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tr, err := generate(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := newSketch(cfg, cfg.Sketch.Columns)
	if err != nil {
		return nil, err
	}
	logger.Debug("created sketch", "rows", s.Rows(), "columns", s.Columns(), "bytes", s.SizeBytes())

	res := Evaluate(s, tr, cfg.Output.Top)
	logger.Info("evaluated sketch",
		"median", res.Summary.Median,
		"mean", res.Summary.Mean,
		"exact", res.Exact,
		"elapsed", res.Elapsed)
	if !res.Errors.NonNegative() {
		// Count-min never under-estimates; a negative error means a counter wrapped.
		logger.Warn("negative relative error observed", "min", res.Summary.Min)
	}

	if cfg.Output.Path != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := report.WriteFile(cfg.Output.Path, res.Errors, cfg.Output.Gzip); err != nil {
			return nil, err
		}
		res.Output = cfg.Output.Path
		logger.Info("wrote error distribution", "path", res.Output, "gzip", cfg.Output.Gzip)
	}
	return res, nil
}

// SweepPoint is the error summary for one requested column count.
type SweepPoint struct {
	RequestedColumns int
	Columns          int
	SizeBytes        int
	Summary          report.Summary
}

// Sweep evaluates one sketch per requested column count on a shared trace.
// Sketches run in parallel; each is owned by a single goroutine.
func Sweep(ctx context.Context, cfg *config.Config, columns []int, logger *slog.Logger) ([]SweepPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, c := range columns {
		if c < 1 {
			return nil, fmt.Errorf("%w: rows=%d columns=%d", countmin.ErrInvalidDimension, cfg.Sketch.Rows, c)
		}
	}
	tr, err := generate(cfg, logger)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, len(columns))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range columns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := newSketch(cfg, c)
			if err != nil {
				return err
			}
			res := Evaluate(s, tr, 0)
			points[i] = SweepPoint{
				RequestedColumns: c,
				Columns:          res.Columns,
				SizeBytes:        res.SizeBytes,
				Summary:          res.Summary,
			}
			logger.Debug("evaluated sweep point", "columns", res.Columns, "median", res.Summary.Median)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(points, func(a, b SweepPoint) int { return a.RequestedColumns - b.RequestedColumns })
	return points, nil
}
