package validator

import (
	"log/slog"

	"github.com/dmitrymomot/paramscheck/pkg/config"
	"github.com/dmitrymomot/paramscheck/pkg/logger"
)

// DefaultMaxDepth caps nesting of nested object fields.
const DefaultMaxDepth = 32

// Config holds engine settings that may come from the environment.
type Config struct {
	// MaxDepth is the deepest nesting level a nested field may reach.
	MaxDepth int `env:"PARAMSCHECK_MAX_DEPTH" envDefault:"32"`
	// LogRejections logs finalized rejections at Info instead of Debug.
	LogRejections bool `env:"PARAMSCHECK_LOG_REJECTIONS" envDefault:"false"`
}

// DefaultConfig returns the settings used when no Config is supplied.
func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Option configures a Validator.
type Option func(*Validator)

// WithConfig applies cfg. A non-positive MaxDepth keeps the default.
func WithConfig(cfg Config) Option {
	return func(v *Validator) {
		if cfg.MaxDepth > 0 {
			v.cfg.MaxDepth = cfg.MaxDepth
		}
		v.cfg.LogRejections = cfg.LogRejections
	}
}

// WithMaxDepth caps nesting depth. Non-positive values are ignored.
func WithMaxDepth(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.cfg.MaxDepth = n
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithChecker replaces the checker used for fields of type t.
func WithChecker(t Type, c Checker) Option {
	return func(v *Validator) {
		if c != nil {
			v.checkers[t] = c
		}
	}
}

func discardLogger() *slog.Logger {
	return logger.Discard()
}
