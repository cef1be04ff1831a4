package constructs

import (
	"testing"

	"github.com/tony-montemuro/picoserver/internal/assert"
)

type byteCheck struct {
	name     string
	byte     byte
	expected bool
}

func TestHex_Value(t *testing.T) {
	tests := []struct {
		name        string
		byte        byte
		expected    byte
		expectError bool
	}{
		{name: "Zero", byte: '0', expected: 0},
		{name: "Nine", byte: '9', expected: 9},
		{name: "Lowercase a", byte: 'a', expected: 10},
		{name: "Lowercase f", byte: 'f', expected: 15},
		{name: "Uppercase A", byte: 'A', expected: 10},
		{name: "Uppercase F", byte: 'F', expected: 15},
		{name: "Lowercase g", byte: 'g', expectError: true},
		{name: "Percent sign", byte: '%', expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Hex(tt.byte).Value()
			if assert.ErrorStatus(t, err, tt.expectError) {
				assert.Equal(t, res, tt.expected)
			}
		})
	}
}

func TestHttpByte_IsEscape(t *testing.T) {
	tests := []byteCheck{
		{
			name:     "Percent sign (%)",
			byte:     '%',
			expected: true,
		},
		{
			name:     "Not percent sign (%)",
			byte:     'a',
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, HttpByte(tt.byte).IsEscape(), tt.expected)
		})
	}
}

func TestHttpByte_IsEncodedSpace(t *testing.T) {
	tests := []byteCheck{
		{
			name:     "Plus sign (+)",
			byte:     '+',
			expected: true,
		},
		{
			name:     "Space",
			byte:     ' ',
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, HttpByte(tt.byte).IsEncodedSpace(), tt.expected)
		})
	}
}

func TestHttpByte_IsHex(t *testing.T) {
	tests := []byteCheck{
		{name: "Digit", byte: '7', expected: true},
		{name: "Hex letter", byte: 'c', expected: true},
		{name: "Non-hex letter", byte: 'z', expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, HttpByte(tt.byte).IsHex(), tt.expected)
		})
	}
}
