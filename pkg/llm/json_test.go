package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{
			name:   "bare object",
			in:     `{"intent":"chat"}`,
			want:   `{"intent":"chat"}`,
			wantOK: true,
		},
		{
			name:   "markdown fence",
			in:     "```json\n{\"intent\":\"chat\"}\n```",
			want:   `{"intent":"chat"}`,
			wantOK: true,
		},
		{
			name:   "surrounding prose",
			in:     `好的，以下是结果：{"sql":"WITH t AS (SELECT 1) SELECT * FROM t"} 希望对您有帮助`,
			want:   `{"sql":"WITH t AS (SELECT 1) SELECT * FROM t"}`,
			wantOK: true,
		},
		{
			name:   "nested objects",
			in:     `{"a":{"b":{"c":1}},"d":2}`,
			want:   `{"a":{"b":{"c":1}},"d":2}`,
			wantOK: true,
		},
		{
			name:   "braces inside strings",
			in:     `{"text":"not a } closer","n":1}`,
			want:   `{"text":"not a } closer","n":1}`,
			wantOK: true,
		},
		{
			name:   "escaped quote inside string",
			in:     `{"text":"she said \"}\"","n":1}`,
			want:   `{"text":"she said \"}\"","n":1}`,
			wantOK: true,
		},
		{
			name:   "only first object",
			in:     `{"a":1} {"b":2}`,
			want:   `{"a":1}`,
			wantOK: true,
		},
		{
			name:   "no object",
			in:     "抱歉，我无法回答这个问题。",
			wantOK: false,
		},
		{
			name:   "unbalanced object",
			in:     `{"a":{"b":1}`,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstJSONObject(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
