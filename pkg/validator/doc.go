// Package validator provides the primitive predicates used by rule
// declarations: emptiness, length bounds, e-mail shape and set membership.
//
// Every primitive returns a Rule: a Check function paired with the
// ValidationError that describes a failure. Rule.Passes evaluates it; a
// Rule without a Check never passes.
//
// Length-based rules count characters, not bytes. Values are normalised to
// Unicode NFC before counting so that "é" written as one code point or as
// "e" plus a combining accent has the same length.
//
// # Usage
//
//	var errs validator.ValidationErrors
//	for _, rule := range []validator.Rule{
//	    validator.RequiredString("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.LenBetweenString("username", username, 3, 20),
//	} {
//	    if !rule.Passes() {
//	        errs.Add(rule.Error)
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface so a whole set of
// failures can be returned from a single call. Use
// ExtractValidationErrors to recover it from a wrapped error.
package validator
