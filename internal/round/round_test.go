package round

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("accepted inputs", func(t *testing.T) {
		tests := []struct {
			name     string
			input    any
			expected float64
		}{
			{"float64", 1.5, 1.5},
			{"float32", float32(2), 2},
			{"int", 42, 42},
			{"int64", int64(-7), -7},
			{"uint", uint(9), 9},
			{"numeric string", "3.25", 3.25},
			{"padded string", "  -10 ", -10},
			{"scientific string", "1e3", 1000},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := Parse(tt.input)
				if err != nil {
					t.Fatalf("Parse(%v) returned error: %v", tt.input, err)
				}
				if got != tt.expected {
					t.Errorf("Parse(%v) = %v, want %v", tt.input, got, tt.expected)
				}
			})
		}
	})

	t.Run("rejected inputs", func(t *testing.T) {
		tests := []struct {
			name  string
			input any
		}{
			{"nil", nil},
			{"bool", true},
			{"slice", []float64{1}},
			{"non-numeric string", "twelve"},
			{"empty string", ""},
			{"NaN", math.NaN()},
			{"positive infinity", math.Inf(1)},
			{"negative infinity", math.Inf(-1)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Parse(tt.input)
				if err == nil {
					t.Fatalf("Parse(%v) expected error, got nil", tt.input)
				}
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Errorf("Parse(%v) error type = %T, want *InvalidInputError", tt.input, err)
				}
			})
		}
	})
}

func TestSigDigits(t *testing.T) {
	tests := []struct {
		value    float64
		expected int
	}{
		{0.001, 3},
		{0.01, 2},
		{0.1, 1},
		{0.5, 1},
		{0.0004, 4},
		{1, 0},
		{5, 0},
		{10, -1},
		{250, -2},
	}

	for _, tt := range tests {
		if got := SigDigits(tt.value); got != tt.expected {
			t.Errorf("SigDigits(%v) = %d, want %d", tt.value, got, tt.expected)
		}
	}
}

func TestHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		precision int
		expected  float64
	}{
		{"tie rounds up", 2.5, 0, 3},
		{"negative tie rounds away", -2.5, 0, -3},
		{"below tie rounds down", 2.4, 0, 2},
		{"above tie rounds up", 2.6, 0, 3},
		{"one decimal place", 1.25, 1, 1.3},
		{"negative one decimal place", -1.25, 1, -1.3},
		{"two decimal places", 3.141, 2, 3.14},
		{"integer unchanged", 12.0, 0, 12},
		{"string input", "7.5", 0, 8},
		{"zero", 0.0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HalfAwayFromZero(tt.input, tt.precision)
			if err != nil {
				t.Fatalf("HalfAwayFromZero(%v, %d) returned error: %v", tt.input, tt.precision, err)
			}
			if got != tt.expected {
				t.Errorf("HalfAwayFromZero(%v, %d) = %v, want %v", tt.input, tt.precision, got, tt.expected)
			}
		})
	}

	t.Run("invalid input", func(t *testing.T) {
		_, err := HalfAwayFromZero("bogus", 0)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected *InvalidInputError, got %v", err)
		}
	})
}

func TestBankers(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		precision int
		expected  float64
	}{
		{"tie to even below", 2.5, 0, 2},
		{"tie to even above", 3.5, 0, 4},
		{"tie stays even", 4.5, 0, 4},
		{"negative tie to even", -2.5, 0, -2},
		{"negative tie to even above", -3.5, 0, -4},
		{"non-tie nearest", 2.6, 0, 3},
		{"non-tie nearest down", 2.4, 0, 2},
		{"one decimal tie", 0.25, 1, 0.2},
		{"one decimal tie above", 0.35, 1, 0.4},
		{"zero short-circuits", 0.0, 3, 0},
		{"string input", "4.5", 0, 4},
		{"integer unchanged", 1234, 1, 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bankers(tt.input, tt.precision)
			if err != nil {
				t.Fatalf("Bankers(%v, %d) returned error: %v", tt.input, tt.precision, err)
			}
			if got != tt.expected {
				t.Errorf("Bankers(%v, %d) = %v, want %v", tt.input, tt.precision, got, tt.expected)
			}
		})
	}

	t.Run("small magnitudes keep significant digits", func(t *testing.T) {
		tests := []struct {
			input     float64
			precision int
			expected  float64
		}{
			{0.0004, 1, 0.0004},
			{0.001, 1, 0.001},
			{0.5, 0, 0.5},
			{-0.0004, 1, -0.0004},
		}

		for _, tt := range tests {
			got, err := Bankers(tt.input, tt.precision)
			if err != nil {
				t.Fatalf("Bankers(%v, %d) returned error: %v", tt.input, tt.precision, err)
			}
			if got != tt.expected {
				t.Errorf("Bankers(%v, %d) = %v, want %v", tt.input, tt.precision, got, tt.expected)
			}
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := Bankers(nil, 0)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected *InvalidInputError, got %v", err)
		}
	})
}
