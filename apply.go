package simpleval

import (
	"log/slog"

	"github.com/dmitrymomot/simpleval/pkg/logger"
)

// apply runs rules against value in order and returns the rules that failed.
func (v *Validator) apply(field string, value any, rules []ParsedRule) []ParsedRule {
	val := newFieldValue(value)

	var failed []ParsedRule
	for _, rule := range rules {
		def, ok := ruleTable[rule.Name]
		if !ok {
			v.logger.Debug("unknown rule",
				logger.Field(field),
				logger.Rule(rule.Name),
				slog.Bool("strict", v.strictRules),
			)
			if v.strictRules {
				failed = append(failed, rule)
			}
			continue
		}

		if def.skipEmpty && val.empty() {
			continue
		}

		args, ok := coerce(def, rule.Params, v.aux)
		if !ok {
			v.logger.Debug("rule parameters unusable",
				logger.Field(field),
				logger.Rule(rule.Name),
				logger.Params(rule.Params),
			)
			failed = append(failed, rule)
			continue
		}

		if !def.check(field, val, args).Passes() {
			failed = append(failed, rule)
		}
	}
	return failed
}
