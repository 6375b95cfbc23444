package simpleval

import "log/slog"

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for debug diagnostics. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithStrictRules records a failure for rule names that are not supported
// instead of ignoring them.
func WithStrictRules() Option {
	return func(v *Validator) { v.strictRules = true }
}

// WithFallbackToKey reports the failure key itself as the message when the
// catalog has no entry for it, instead of dropping the failure.
func WithFallbackToKey() Option {
	return func(v *Validator) { v.fallbackToKey = true }
}
