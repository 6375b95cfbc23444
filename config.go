package simpleval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/simpleval/pkg/config"
	"github.com/dmitrymomot/simpleval/pkg/i18n"
	"github.com/dmitrymomot/simpleval/pkg/logger"
)

// Config holds environment driven validator settings.
type Config struct {
	// MessagesPath points to a YAML or JSON message catalog. Empty means no catalog.
	MessagesPath  string `env:"SIMPLEVAL_MESSAGES_PATH"`
	Language      string `env:"SIMPLEVAL_LANGUAGE" envDefault:"en"`
	StrictRules   bool   `env:"SIMPLEVAL_STRICT_RULES" envDefault:"false"`
	FallbackToKey bool   `env:"SIMPLEVAL_FALLBACK_TO_KEY" envDefault:"false"`
	LogLevel      string `env:"SIMPLEVAL_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"SIMPLEVAL_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment (and ./.env when present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrLoadingConfig, err)
	}
	return cfg, nil
}

// NewLogger builds the logger described by LogLevel and LogFormat, writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("simpleval")),
	), nil
}

// LoadMessages loads the catalog at MessagesPath and returns the messages for
// Language. It returns an empty map when MessagesPath is empty.
func (c Config) LoadMessages(ctx context.Context, log *slog.Logger) (map[string]string, error) {
	if c.MessagesPath == "" {
		return map[string]string{}, nil
	}

	cat, err := i18n.NewCatalog(ctx, i18n.NewFileAdapter(c.MessagesPath),
		i18n.WithDefaultLanguage(c.Language),
		i18n.WithLogger(log),
	)
	if err != nil {
		return nil, errors.Join(ErrLoadingMessages, err)
	}

	messages, ok := cat.Messages(c.Language)
	if !ok {
		return nil, fmt.Errorf("%w %q in %s", ErrLanguageNotFound, c.Language, c.MessagesPath)
	}
	return messages, nil
}

// NewFromConfig creates a validator whose messages, logger and policies come
// from cfg. Diagnostics are written to w. opts are applied after the
// config-derived options.
func NewFromConfig(ctx context.Context, cfg Config, w io.Writer, data map[string]any, rules map[string]string, opts ...Option) (*Validator, error) {
	log, err := cfg.NewLogger(w)
	if err != nil {
		return nil, err
	}

	messages, err := cfg.LoadMessages(ctx, log)
	if err != nil {
		return nil, err
	}

	base := []Option{WithLogger(log)}
	if cfg.StrictRules {
		base = append(base, WithStrictRules())
	}
	if cfg.FallbackToKey {
		base = append(base, WithFallbackToKey())
	}

	return New(data, rules, messages, append(base, opts...)...), nil
}
