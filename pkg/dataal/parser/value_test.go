package parser

import (
	"testing"
)

func TestTypeValue(t *testing.T) {
	tests := []struct {
		input    any
		expected any
	}{
		{nil, nil},
		{"", nil},
		{"3,14", 3.14},
		{"42", 42.0},
		{" 7 ", 7.0},
		{"-0.5", -0.5},
		{"1e3", 1000.0},
		{"abc", "abc"},
		{"12/03/2024", "12/03/2024"},
		{"2024-01-15", "2024-01-15"},
		{"   ", "   "},
		{"NaN", "NaN"},
		{"Infinity", "Infinity"},
		{"1,2,3", "1,2,3"},
		{"12abc", "12abc"},
		{5, 5},
		{int64(9), int64(9)},
		{2.5, 2.5},
		{true, true},
	}

	for _, tt := range tests {
		result := TypeValue(tt.input)
		if result != tt.expected {
			t.Errorf("TypeValue(%#v) = %#v, expected %#v", tt.input, result, tt.expected)
		}
	}
}

func TestTypeValueIdempotent(t *testing.T) {
	inputs := []any{nil, "", "3,14", "abc", "2024-01-15", 7.0, int64(3), false, " 8 "}
	for _, in := range inputs {
		once := TypeValue(in)
		twice := TypeValue(once)
		if once != twice {
			t.Errorf("TypeValue(TypeValue(%#v)) = %#v, expected %#v", in, twice, once)
		}
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, ""},
		{"x", "x"},
		{1.0, "1"},
		{3.14, "3.14"},
		{-2.5, "-2.5"},
		{0.0, "0"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{123456789.0, "123456789"},
		{int64(42), "42"},
		{7, "7"},
		{true, "true"},
	}

	for _, tt := range tests {
		result := Stringify(tt.input)
		if result != tt.expected {
			t.Errorf("Stringify(%#v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input    any
		expected bool
	}{
		{nil, true},
		{"", true},
		{"  ", true},
		{"a", false},
		{0, false},
		{0.0, false},
		{false, false},
	}

	for _, tt := range tests {
		result := isBlank(tt.input)
		if result != tt.expected {
			t.Errorf("isBlank(%#v) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
