package countmin

import (
	"github.com/OneOfOne/xxhash"
	"github.com/dgryski/go-metro"
	"github.com/keilerkonzept/countmin/internal/unsafeutil"
)

// DefaultSeed is the base seed of row 0. Row i hashes with DefaultSeed+i.
const DefaultSeed = 114514

// HashFamily derives the per-row hash functions of a sketch from one seeded primitive.
// Implementations must produce well-distributed outputs that change with the seed,
// otherwise all rows collapse onto the same columns.
type HashFamily interface {
	Hash64(key int64, seed uint64) uint64
}

// XXHash hashes the key's native-endian bytes with seeded xxhash64.
type XXHash struct{}

func (XXHash) Hash64(key int64, seed uint64) uint64 {
	return xxhash.Checksum64S(unsafeutil.Int64Bytes(&key), seed)
}

// MetroHash hashes the key's native-endian bytes with seeded metrohash64.
type MetroHash struct{}

func (MetroHash) Hash64(key int64, seed uint64) uint64 {
	return metro.Hash64(unsafeutil.Int64Bytes(&key), seed)
}

// SlotIndex returns the index into the flat counter slice for the given key and row.
func SlotIndex(family HashFamily, key int64, seed uint64, row, columns int) int {
	column := int(family.Hash64(key, seed+uint64(row)) % uint64(columns))
	return row*columns + column
}
