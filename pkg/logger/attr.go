package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Params records raw rule parameters under the key "params".
func Params(params []string) slog.Attr {
	return slog.Any("params", params)
}

// FailureKey records a "<field>.<rule>" key under the key "failure_key".
func FailureKey(key string) slog.Attr {
	return slog.String("failure_key", key)
}

// Language records a language tag under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
