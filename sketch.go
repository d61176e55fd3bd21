// Package countmin implements a Count-Min sketch over int64 keys, as described in
// "An Improved Data Stream Summary: The Count-Min Sketch and its Applications" [1].
//
// The sketch never under-estimates: Count(key) is at least the sum of all amounts
// added for key. A Sketch is not safe for concurrent use.
//
// [1] http://dimacs.rutgers.edu/~graham/pubs/papers/cm-full.pdf
package countmin

import (
	"fmt"
	"math"

	"github.com/keilerkonzept/countmin/internal/sizeof"
)

// Sketch is a Count-Min sketch with a prime number of columns per row.
//
// Counters are int64. With the default wraparound policy a counter wraps once its
// accumulated total exceeds math.MaxInt64; use [WithSaturation] to clamp instead.
type Sketch struct {
	rows     int
	columns  int
	seed     uint64
	family   HashFamily
	saturate bool

	counters []int64 // rows*columns, row-major.
}

// New returns a sketch with `rows` hash rows and the smallest prime >= `columns` counters per row.
//
//   - The base seed defaults to [DefaultSeed] unless the [WithSeed] option is set.
//   - The hash family defaults to [XXHash] unless the [WithHashFamily] option is set.
//
// It returns an error matching [ErrInvalidDimension] if rows or columns is less than 1.
func New(rows, columns int, opts ...Option) (*Sketch, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: rows=%d columns=%d", ErrInvalidDimension, rows, columns)
	}

	out := Sketch{
		rows:    rows,
		columns: NextPrime(columns),
		seed:    DefaultSeed,
		family:  XXHash{},
	}

	for _, opt := range opts {
		opt(&out)
	}
	if out.family == nil {
		out.family = XXHash{}
	}

	out.counters = make([]int64, out.rows*out.columns)
	return &out, nil
}

// Rows returns the number of hash rows.
func (me *Sketch) Rows() int { return me.rows }

// Columns returns the number of counters per row. Always prime.
func (me *Sketch) Columns() int { return me.columns }

// Seed returns the base seed.
func (me *Sketch) Seed() uint64 { return me.seed }

// SizeBytes returns the current size of the sketch in bytes.
func (me *Sketch) SizeBytes() int {
	return sizeofSketchStruct + len(me.counters)*sizeof.Int64
}

// Incr counts a single instance of the given key.
func (me *Sketch) Incr(key int64) {
	me.Add(key, 1)
}

// Add increments the given key's count by the given amount.
func (me *Sketch) Add(key int64, amount uint32) {
	a := int64(amount)
	for i := range me.rows {
		c := &me.counters[SlotIndex(me.family, key, me.seed, i, me.columns)]
		if me.saturate && *c > math.MaxInt64-a {
			*c = math.MaxInt64
			continue
		}
		*c += a
	}
}

// Count returns the estimated count of the given key: the minimum over all rows.
func (me *Sketch) Count(key int64) int64 {
	minCount := int64(math.MaxInt64)
	for i := range me.rows {
		minCount = min(minCount, me.counters[SlotIndex(me.family, key, me.seed, i, me.columns)])
	}
	return minCount
}
