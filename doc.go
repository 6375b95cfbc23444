// Package simpleval validates a map of field values against pipe-delimited
// rule declarations and reports failures with catalog messages.
//
// A declaration such as "required|min:3|max:20" lists rules applied in
// order. Parameters follow a colon and are separated by commas. Each failing
// rule produces a failure key "<field>.<rule>" which is looked up in the
// message catalog passed to New.
//
// Supported rules:
//
//   - required   value is not empty
//   - min:n      length is at least n
//   - max:n      length is at most n
//   - btw:lo,hi  length is within [lo, hi]
//   - email      value is an e-mail address (empty values pass)
//   - inArr:key  value is a member of the data registered with AddData(key, ...)
//     (empty values pass, an unregistered key fails)
//
// Length is measured in characters for scalar values and in items for
// slices, arrays and maps.
//
// # Usage
//
//	v := simpleval.New(
//	    map[string]any{"username": "jo", "role": "guest"},
//	    map[string]string{"username": "required|min:3", "role": "inArr:roles"},
//	    map[string]string{
//	        "username.min": "Username must have at least 3 characters.",
//	        "role.inArr":   "Unknown role.",
//	    },
//	)
//	v.AddData("roles", []string{"admin", "user"})
//
//	for _, f := range v.Fails() {
//	    fmt.Println(f.Field, f.Message)
//	}
//
// # Lenient defaults
//
// Unknown rule names are ignored and failure keys without a catalog entry
// produce no message. WithStrictRules and WithFallbackToKey switch each of
// these to a visible failure.
//
// # Concurrency
//
// Fails, Passes and Validate only read the validator and may run
// concurrently. AddData must not run concurrently with them.
package simpleval
