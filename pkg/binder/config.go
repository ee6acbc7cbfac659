package binder

import "github.com/dmitrymomot/paramscheck/pkg/config"

const (
	// DefaultMaxJSONSize is the largest accepted JSON body (1 MB).
	DefaultMaxJSONSize = 1 << 20
	// DefaultMaxMemory is the multipart memory threshold (10 MB); larger
	// uploads spill to temporary files.
	DefaultMaxMemory = 10 << 20
)

// Config holds the request binding limits.
type Config struct {
	MaxJSONSize int64  `env:"BINDER_MAX_JSON_SIZE" envDefault:"1048576"`
	MaxMemory   int64  `env:"BINDER_MAX_MEMORY" envDefault:"10485760"`
	DefaultLang string `env:"BINDER_DEFAULT_LANG" envDefault:"en"`
}

// DefaultConfig returns the built-in limits.
func DefaultConfig() Config {
	return Config{
		MaxJSONSize: DefaultMaxJSONSize,
		MaxMemory:   DefaultMaxMemory,
		DefaultLang: "en",
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.MaxJSONSize <= 0 {
		c.MaxJSONSize = d.MaxJSONSize
	}
	if c.MaxMemory <= 0 {
		c.MaxMemory = d.MaxMemory
	}
	if c.DefaultLang == "" {
		c.DefaultLang = d.DefaultLang
	}
	return c
}
