// Package trace generates synthetic flow traces whose sizes follow a Zipf distribution.
package trace

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	DefaultFlows    = 100_000
	DefaultMaxSize  = 10_000
	DefaultExponent = 2.0
)

var ErrInvalidConfig = errors.New("trace: invalid config")

// Event is one observed flow: its id and its size.
type Event struct {
	Key    int64
	Amount uint32
}

// Trace holds one event per flow, keyed 0..len-1.
type Trace []Event

// Total returns the sum of all amounts.
func (t Trace) Total() int64 {
	var sum int64
	for _, e := range t {
		sum += int64(e.Amount)
	}
	return sum
}

type Config struct {
	Flows    int     // Number of distinct flows.
	MaxSize  uint32  // Largest possible flow size; sizes are drawn from [1, MaxSize].
	Exponent float64 // Zipf exponent s, must be > 1.
}

// DefaultConfig returns 100000 flows with sizes in [1, 10000] and exponent 2.
func DefaultConfig() Config {
	return Config{Flows: DefaultFlows, MaxSize: DefaultMaxSize, Exponent: DefaultExponent}
}

func (c Config) Validate() error {
	switch {
	case c.Flows < 1:
		return fmt.Errorf("%w: flows must be positive, got %d", ErrInvalidConfig, c.Flows)
	case c.MaxSize < 1:
		return fmt.Errorf("%w: max size must be positive, got %d", ErrInvalidConfig, c.MaxSize)
	case !(c.Exponent > 1):
		return fmt.Errorf("%w: exponent must be > 1, got %g", ErrInvalidConfig, c.Exponent)
	}
	return nil
}

// Generator draws traces from a caller-supplied random source.
type Generator struct {
	cfg  Config
	zipf *rand.Zipf // nil when MaxSize is 1
}

// NewGenerator returns a generator reading randomness from r.
func NewGenerator(cfg Config, r *rand.Rand) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	g := &Generator{cfg: cfg}
	if cfg.MaxSize > 1 {
		g.zipf = rand.NewZipf(r, cfg.Exponent, 1, uint64(cfg.MaxSize-1))
	}
	return g, nil
}

// NewSeeded returns a generator backed by a PCG source with the given seed.
func NewSeeded(cfg Config, seed uint64) (*Generator, error) {
	return NewGenerator(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Size draws a single flow size in [1, MaxSize].
func (g *Generator) Size() uint32 {
	if g.zipf == nil {
		return 1
	}
	return uint32(g.zipf.Uint64()) + 1
}

// Generate draws one size for each of the configured flows.
func (g *Generator) Generate() Trace {
	out := make(Trace, g.cfg.Flows)
	for i := range out {
		out[i] = Event{Key: int64(i), Amount: g.Size()}
	}
	return out
}
