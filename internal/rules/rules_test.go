package rules

import (
	"testing"

	"github.com/tony-montemuro/picoserver/internal/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		rules    string
		sep      byte
		expected []string
	}{
		{
			name:     "Standard cookie list",
			rules:    "SID=abc123; theme=dark",
			sep:      ';',
			expected: []string{"SID=abc123", "theme=dark"},
		},
		{
			name:     "Trailing separator",
			rules:    "a=1;",
			sep:      ';',
			expected: []string{"a=1"},
		},
		{
			name:     "Empty parts in the middle",
			rules:    "a=1; ;\t;b=2",
			sep:      ';',
			expected: []string{"a=1", "b=2"},
		},
		{
			name:     "Whitespace within parts is kept",
			rules:    " fo o ,\tb\t ar ",
			sep:      ',',
			expected: []string{"fo o", "b\t ar"},
		},
		{
			name:     "Empty input",
			rules:    "",
			sep:      ';',
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.SliceEqual(t, Extract(tt.rules, tt.sep), tt.expected)
		})
	}
}
