package countmin

type Option func(*Sketch)

// WithSeed sets the base seed. Row i hashes with seed+i.
func WithSeed(seed uint64) Option { return func(s *Sketch) { s.seed = seed } }

// WithHashFamily sets the hash primitive the rows are derived from.
func WithHashFamily(family HashFamily) Option { return func(s *Sketch) { s.family = family } }

// WithSaturation makes counters clamp at math.MaxInt64 instead of wrapping around.
func WithSaturation() Option { return func(s *Sketch) { s.saturate = true } }
