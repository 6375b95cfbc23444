package simpleval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/simpleval"
)

func TestParseRules(t *testing.T) {
	tests := []struct {
		name        string
		declaration string
		want        []simpleval.ParsedRule
	}{
		{
			name:        "empty declaration",
			declaration: "",
			want:        []simpleval.ParsedRule{},
		},
		{
			name:        "rule without params has one empty param",
			declaration: "required",
			want:        []simpleval.ParsedRule{{Name: "required", Params: []string{""}}},
		},
		{
			name:        "multiple rules keep order",
			declaration: "required|min:3|max:20",
			want: []simpleval.ParsedRule{
				{Name: "required", Params: []string{""}},
				{Name: "min", Params: []string{"3"}},
				{Name: "max", Params: []string{"20"}},
			},
		},
		{
			name:        "comma separated params",
			declaration: "btw:2,4",
			want:        []simpleval.ParsedRule{{Name: "btw", Params: []string{"2", "4"}}},
		},
		{
			name:        "only the first colon separates the name",
			declaration: "inArr:time:zones",
			want:        []simpleval.ParsedRule{{Name: "inArr", Params: []string{"time:zones"}}},
		},
		{
			name:        "params stay raw strings",
			declaration: "min: 3 ,x",
			want:        []simpleval.ParsedRule{{Name: "min", Params: []string{" 3 ", "x"}}},
		},
		{
			name:        "unknown names are not rejected",
			declaration: "nope:1|",
			want: []simpleval.ParsedRule{
				{Name: "nope", Params: []string{"1"}},
				{Name: "", Params: []string{""}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, simpleval.ParseRules(tt.declaration))
		})
	}
}

func TestSupportedRules(t *testing.T) {
	assert.Equal(t, []string{"btw", "email", "inArr", "max", "min", "required"}, simpleval.SupportedRules())
}
