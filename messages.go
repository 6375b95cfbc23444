package simpleval

import "github.com/dmitrymomot/simpleval/pkg/logger"

// withMessages pairs failed rules with catalog messages. Failures without a
// message are dropped unless fallback to key is enabled.
func (v *Validator) withMessages(field string, failed []ParsedRule) []result {
	results := make([]result, 0, len(failed))
	for _, rule := range failed {
		key := failureKey(field, rule.Name)

		msg, ok := v.messages[key]
		if !ok {
			if !v.fallbackToKey {
				v.logger.Debug("failure without message dropped", logger.FailureKey(key))
				continue
			}
			msg = key
		}

		results = append(results, result{field: field, rule: rule, key: key, message: msg})
	}
	return results
}
