package simpleval_test

import (
	"fmt"

	"github.com/dmitrymomot/simpleval"
)

func Example() {
	v := simpleval.New(
		map[string]any{
			"username": "jo",
			"email":    "jo@example.com",
			"role":     "guest",
		},
		map[string]string{
			"username": "required|min:3|max:20",
			"email":    "required|email",
			"role":     "inArr:roles",
		},
		map[string]string{
			"username.min": "Username must have at least 3 characters.",
			"role.inArr":   "Unknown role.",
		},
	)
	v.AddData("roles", []string{"admin", "user"})

	for _, f := range v.Fails() {
		fmt.Printf("%s: %s\n", f.Field, f.Message)
	}
	// Output:
	// role: Unknown role.
	// username: Username must have at least 3 characters.
}
