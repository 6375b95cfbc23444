package i18n

import "log/slog"

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language served when the requested one is missing.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger for load diagnostics. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}
