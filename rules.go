package simpleval

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/simpleval/pkg/validator"
)

// paramKind tags how a raw parameter is converted before a rule runs.
type paramKind int

const (
	paramInt paramKind = iota + 1
	paramDataKey
)

// ruleArgs holds converted parameters.
type ruleArgs struct {
	ints []int
	data any
}

// ruleDef is one dispatch table entry.
type ruleDef struct {
	params []paramKind
	// skipEmpty rules pass without evaluation when the value is empty.
	skipEmpty bool
	check     func(field string, val fieldValue, args ruleArgs) validator.Rule
}

// ruleTable maps rule names to their definitions. Every check reports
// whether the value passes; a rule fails when its check does not pass.
// For required this means the failure is recorded when the value is empty.
var ruleTable = map[string]ruleDef{
	"required": {
		check: func(field string, val fieldValue, _ ruleArgs) validator.Rule {
			if val.collection {
				return validator.RequiredSlice(field, val.items)
			}
			return validator.RequiredString(field, val.text)
		},
	},
	"min": {
		params: []paramKind{paramInt},
		check: func(field string, val fieldValue, args ruleArgs) validator.Rule {
			if val.collection {
				return validator.MinLenSlice(field, val.items, args.ints[0])
			}
			return validator.MinLenString(field, val.text, args.ints[0])
		},
	},
	"max": {
		params: []paramKind{paramInt},
		check: func(field string, val fieldValue, args ruleArgs) validator.Rule {
			if val.collection {
				return validator.MaxLenSlice(field, val.items, args.ints[0])
			}
			return validator.MaxLenString(field, val.text, args.ints[0])
		},
	},
	"btw": {
		params: []paramKind{paramInt, paramInt},
		check: func(field string, val fieldValue, args ruleArgs) validator.Rule {
			if val.collection {
				return validator.LenBetweenSlice(field, val.items, args.ints[0], args.ints[1])
			}
			return validator.LenBetweenString(field, val.text, args.ints[0], args.ints[1])
		},
	},
	"email": {
		skipEmpty: true,
		check: func(field string, val fieldValue, _ ruleArgs) validator.Rule {
			return validator.ValidEmail(field, val.text)
		},
	},
	"inArr": {
		params:    []paramKind{paramDataKey},
		skipEmpty: true,
		check: func(field string, val fieldValue, args ruleArgs) validator.Rule {
			return validator.InListString(field, val.text, members(args.data))
		},
	},
}

// SupportedRules returns the sorted names of all built-in rules.
func SupportedRules() []string {
	return slices.Sorted(maps.Keys(ruleTable))
}

// coerce converts raw parameters for def. ok is false when a parameter is
// missing, not an integer where one is expected, or names auxiliary data
// that was never registered.
func coerce(def ruleDef, raw []string, aux map[string]any) (args ruleArgs, ok bool) {
	for i, kind := range def.params {
		if i >= len(raw) {
			return ruleArgs{}, false
		}

		switch kind {
		case paramInt:
			n, err := strconv.Atoi(strings.TrimSpace(raw[i]))
			if err != nil {
				return ruleArgs{}, false
			}
			args.ints = append(args.ints, n)
		case paramDataKey:
			data, found := aux[raw[i]]
			if !found {
				return ruleArgs{}, false
			}
			args.data = data
		}
	}
	return args, true
}
