package gabm

import (
	"fmt"
	"strconv"

	"github.com/laffernandes/ga-benchmark/model"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvModel               = "GABM_MODEL"
	EnvDimensions          = "GABM_D_DIMENSIONS"
	EnvEmbeddingDimensions = "GABM_N_DIMENSIONS"
)

// Config selects the model under test.
type Config struct {
	// Model is the model family.
	Model model.Kind

	// D is the dimension of the modeled Euclidean space.
	D int

	// N is the number of coordinates read from each blade factor row.
	// Zero selects the number of basis vectors of the model.
	N int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the 3D Euclidean model with full-length rows.
func DefaultConfig() Config {
	return Config{
		Model: model.KindEuclidean,
		D:     3,
	}
}

// WithModel sets the model family.
func WithModel(kind model.Kind) Option {
	return func(cfg *Config) {
		if _, _, ok := kind.DimensionRange(); ok {
			cfg.Model = kind
		}
	}
}

// WithDimensions sets the Euclidean dimension D.
func WithDimensions(d int) Option {
	return func(cfg *Config) {
		if d > 0 {
			cfg.D = d
		}
	}
}

// WithEmbeddingDimensions sets the factor row length N.
func WithEmbeddingDimensions(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.N = n
		}
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

// ConfigFromEnv builds a Config from the GABM_* variables returned by
// lookup (typically os.LookupEnv). Unset variables keep their defaults;
// opts are applied afterwards.
func ConfigFromEnv(lookup func(string) (string, bool), opts ...Option) (Config, error) {
	cfg := DefaultConfig()

	if s, ok := lookup(EnvModel); ok && s != "" {
		kind, err := model.ParseKind(s)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvModel, err)
		}
		cfg.Model = kind
	}

	for _, v := range []struct {
		name string
		dst  *int
	}{
		{EnvDimensions, &cfg.D},
		{EnvEmbeddingDimensions, &cfg.N},
	} {
		s, ok := lookup(v.name)
		if !ok || s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q is not a non-negative integer", ErrInvalidConfig, v.name, s)
		}
		*v.dst = n
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg, nil
}

// Validate checks that cfg names a registered model and a usable row length.
func (cfg Config) Validate() error {
	_, err := cfg.resolve()
	return err
}

func (cfg Config) resolve() (*model.Model, error) {
	m, err := model.Lookup(cfg.Model, cfg.D)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.N < 0 || cfg.N > m.N() {
		return nil, fmt.Errorf("%w: N=%d outside 0..%d for %s", ErrInvalidConfig, cfg.N, m.N(), m.Name())
	}
	return m, nil
}

// String implements fmt.Stringer.
func (cfg Config) String() string {
	return fmt.Sprintf("Model=%v D=%d N=%d", cfg.Model, cfg.D, cfg.N)
}
