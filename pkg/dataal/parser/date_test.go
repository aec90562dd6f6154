package parser

import (
	"testing"
)

func TestIsDateString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"12/03/2024", true},
		{"1-2-24", true},
		{"01.02.2024", true},
		{"2024-01-15", true},
		{"2024/1/2", true},
		{"15 Ocak 2024", true},
		{"3 Şubat 2023", true},
		{"12 March 2023", true},
		{"March 12, 2023", true},
		{"March 12 2023", true},
		{"2024-01-15T10:30:00Z", true},
		{"2024-01-15 10:30", true},
		{"Mon, 02 Jan 2006 15:04:05 MST", true},
		{"  2024-01-15  ", true},
		{"", false},
		{"   ", false},
		{"hello", false},
		{"123", false},
		{"3.14", false},
		{"12/03", false},
		{"Ahmet 5", false},
	}

	for _, tt := range tests {
		result := IsDateString(tt.input)
		if result != tt.expected {
			t.Errorf("IsDateString(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
