package scan

// DefaultIntraRowMinLen is the row length from which a row may be scanned
// in parallel chunks when the batch alone cannot occupy the pool and the
// intra-row scan is enabled.
const DefaultIntraRowMinLen = 1 << 16

// DefaultChunkLen is the smallest chunk handed to a worker by the intra-row
// scan.
const DefaultChunkLen = 4096

// Config holds engine settings.
type Config struct {
	// Workers is the pool size. Zero selects GOMAXPROCS.
	Workers int

	// IntraRowMinLen is the minimum row length for the chunked intra-row
	// scan.
	IntraRowMinLen int

	// ChunkLen is the minimum chunk length of the intra-row scan.
	ChunkLen int

	// IntraRow enables the chunked intra-row scan. It is off by default:
	// every row is folded by a single worker, left to right.
	IntraRow bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used by Default and by NewEngine
// without options.
func DefaultConfig() Config {
	return Config{
		IntraRowMinLen: DefaultIntraRowMinLen,
		ChunkLen:       DefaultChunkLen,
	}
}

// WithWorkers sets the pool size.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithIntraRowMinLen sets the row length from which the chunked intra-row
// scan may be used.
func WithIntraRowMinLen(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.IntraRowMinLen = n
		}
	}
}

// WithChunkLen sets the minimum chunk length of the intra-row scan.
func WithChunkLen(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.ChunkLen = n
		}
	}
}

// WithIntraRow lets long rows of small batches be split into chunks that
// are scanned in parallel. Chunk totals regroup floating-point products, so
// results match the left-to-right fold within rounding only, and a chunk
// whose gain product overflows can saturate where the fold stays finite.
func WithIntraRow() Option {
	return func(cfg *Config) {
		cfg.IntraRow = true
	}
}

// WithForceSequential keeps every row on one worker, which makes results
// bit-identical to a plain left-to-right loop. It overrides an earlier
// WithIntraRow.
func WithForceSequential() Option {
	return func(cfg *Config) {
		cfg.IntraRow = false
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
