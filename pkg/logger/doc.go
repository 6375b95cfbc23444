// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across the
// validation pipeline.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("signup")),
//	)
//	log.Debug("rule skipped", logger.Field("email"), logger.Rule("emial"))
//
// Discard returns a logger that drops every record; it is the default for
// components that log only when a caller asks them to.
//
// # Configuration
//
// Level and format usually come from configuration strings. ParseLevel and
// ParseFormat convert them and report invalid input as errors wrapping
// ErrInvalidLevel or ErrInvalidFormat.
package logger
