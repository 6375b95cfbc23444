package simpleval

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/simpleval/pkg/logger"
	"github.com/dmitrymomot/simpleval/pkg/validator"
)

// Failure is a single reported validation failure.
type Failure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator applies rule declarations to a set of field values.
type Validator struct {
	data     map[string]any
	rules    map[string]string
	messages map[string]string
	aux      map[string]any

	logger        *slog.Logger
	strictRules   bool
	fallbackToKey bool
}

// New creates a validator. The maps are copied, so later changes by the
// caller do not affect it. Nil maps are treated as empty.
func New(data map[string]any, rules, messages map[string]string, opts ...Option) *Validator {
	v := &Validator{
		data:     cloneOrEmpty(data),
		rules:    cloneOrEmpty(rules),
		messages: cloneOrEmpty(messages),
		aux:      map[string]any{},
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func cloneOrEmpty[V any](m map[string]V) map[string]V {
	if m == nil {
		return map[string]V{}
	}
	return maps.Clone(m)
}

// AddData registers auxiliary data under key for rules such as inArr.
// An existing entry is replaced.
func (v *Validator) AddData(key string, value any) {
	v.aux[key] = value
}

// Fails validates every field that has a rule declaration and returns the
// failures that have a message. Fields are visited in ascending name order
// and rules in declaration order. The result is empty, never nil, when
// nothing fails.
func (v *Validator) Fails() []Failure {
	results := v.run()
	fails := make([]Failure, 0, len(results))
	for _, r := range results {
		fails = append(fails, Failure{Field: r.field, Message: r.message})
	}
	return fails
}

// Passes reports whether Fails returns no failures.
func (v *Validator) Passes() bool {
	return len(v.run()) == 0
}

// Validate returns nil when nothing fails, otherwise validator.ValidationErrors
// whose TranslationKey is the failure key.
func (v *Validator) Validate() error {
	results := v.run()
	if len(results) == 0 {
		return nil
	}

	errs := make(validator.ValidationErrors, 0, len(results))
	for _, r := range results {
		errs.Add(validator.ValidationError{
			Field:          r.field,
			Message:        r.message,
			TranslationKey: r.key,
			TranslationValues: map[string]any{
				"field":  r.field,
				"rule":   r.rule.Name,
				"params": r.rule.Params,
			},
		})
	}
	return errs
}

// result is a failure with the rule that produced it.
type result struct {
	field   string
	rule    ParsedRule
	key     string
	message string
}

func (v *Validator) run() []result {
	var results []result
	for _, field := range slices.Sorted(maps.Keys(v.data)) {
		declaration := v.rules[field]
		if declaration == "" {
			continue
		}

		failed := v.apply(field, v.data[field], ParseRules(declaration))
		results = append(results, v.withMessages(field, failed)...)
	}
	return results
}

// failureKey builds the "<field>.<rule>" catalog key.
func failureKey(field, rule string) string {
	return field + "." + rule
}
