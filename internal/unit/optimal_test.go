package unit

import (
	"errors"
	"testing"
)

func TestOptimalSuffix(t *testing.T) {
	m := Default()

	tests := []struct {
		name      string
		numbers   []float64
		unit      string
		from      string
		optimizer Optimizer
		expected  string
	}{
		{"min picks the smallest value's suffix", []float64{100, 500000, 1000000}, "mass", "g", Min, "g"},
		{"max picks the largest value's suffix", []float64{100, 500000, 1000000}, "mass", "g", Max, "ton"},
		{"freq picks the majority suffix", []float64{100, 5000, 7000}, "mass", "g", Freq, "kg"},
		{"empty optimizer defaults to freq", []float64{100, 5000, 7000}, "mass", "g", "", "kg"},
		{"signs are ignored", []float64{-100, -500000, -1000000}, "mass", "g", Min, "g"},
		{"single value", []float64{2500}, "mass", "g", Freq, "kg"},
		{"default from is base", []float64{0.5, 0.7}, "mass", "", Freq, "g"},
		{"data set in bytes", []float64{1200, 3400, 5600000}, "data", "B", Freq, "KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.OptimalSuffix(tt.numbers, tt.unit, tt.from, false, tt.optimizer)
			if err != nil {
				t.Fatalf("OptimalSuffix(%v, %q, %q, %q) returned error: %v", tt.numbers, tt.unit, tt.from, tt.optimizer, err)
			}
			if got != tt.expected {
				t.Errorf("OptimalSuffix(%v, %q, %q, %q) = %q, want %q", tt.numbers, tt.unit, tt.from, tt.optimizer, got, tt.expected)
			}
		})
	}
}

func TestOptimalSuffixEmptyInput(t *testing.T) {
	m := Default()

	t.Run("returns the resolved from suffix", func(t *testing.T) {
		got, err := m.OptimalSuffix(nil, "mass", "kg", false, Freq)
		if err != nil {
			t.Fatalf("OptimalSuffix returned error: %v", err)
		}
		if got != "kg" {
			t.Errorf("OptimalSuffix(empty) = %q, want %q", got, "kg")
		}
	})

	t.Run("defaults to the base suffix", func(t *testing.T) {
		got, err := m.OptimalSuffix(nil, "data", "", false, Min)
		if err != nil {
			t.Fatalf("OptimalSuffix returned error: %v", err)
		}
		if got != "B" {
			t.Errorf("OptimalSuffix(empty) = %q, want %q", got, "B")
		}
	})
}

func TestOptimalSuffixFreqTieBreak(t *testing.T) {
	m := Default()

	// 100 fits to g first, 5000 to kg; with one vote each the suffix seen
	// earliest in input order wins.
	got, err := m.OptimalSuffix([]float64{100, 5000}, "mass", "g", false, Freq)
	if err != nil {
		t.Fatalf("OptimalSuffix returned error: %v", err)
	}
	if got != "g" {
		t.Errorf("OptimalSuffix tie = %q, want %q", got, "g")
	}

	got, err = m.OptimalSuffix([]float64{5000, 100}, "mass", "g", false, Freq)
	if err != nil {
		t.Fatalf("OptimalSuffix returned error: %v", err)
	}
	if got != "kg" {
		t.Errorf("OptimalSuffix tie = %q, want %q", got, "kg")
	}
}

func TestOptimalSuffixOffset(t *testing.T) {
	m := Default()

	// 9999 g converts to kg normally but stays in grams with the widened
	// window.
	got, err := m.OptimalSuffix([]float64{9999}, "mass", "g", false, Freq)
	if err != nil {
		t.Fatalf("OptimalSuffix returned error: %v", err)
	}
	if got != "kg" {
		t.Errorf("OptimalSuffix without offset = %q, want %q", got, "kg")
	}

	got, err = m.OptimalSuffix([]float64{9999}, "mass", "g", true, Freq)
	if err != nil {
		t.Fatalf("OptimalSuffix returned error: %v", err)
	}
	if got != "g" {
		t.Errorf("OptimalSuffix with offset = %q, want %q", got, "g")
	}
}

func TestOptimalSuffixErrors(t *testing.T) {
	m := Default()

	t.Run("unknown optimizer", func(t *testing.T) {
		_, err := m.OptimalSuffix([]float64{1}, "mass", "g", false, "average")
		var optErr *UnknownOptimizerError
		if !errors.As(err, &optErr) {
			t.Fatalf("expected *UnknownOptimizerError, got %v", err)
		}
		if optErr.Optimizer != "average" {
			t.Errorf("error optimizer = %q, want %q", optErr.Optimizer, "average")
		}
	})

	t.Run("unknown family", func(t *testing.T) {
		_, err := m.OptimalSuffix([]float64{1}, "nonexistent", "", false, Min)
		var unitErr *InvalidUnitError
		if !errors.As(err, &unitErr) {
			t.Fatalf("expected *InvalidUnitError, got %v", err)
		}
	})

	t.Run("unknown from suffix", func(t *testing.T) {
		_, err := m.OptimalSuffix([]float64{1}, "mass", "bogus", false, Min)
		var suffixErr *InvalidSuffixError
		if !errors.As(err, &suffixErr) {
			t.Fatalf("expected *InvalidSuffixError, got %v", err)
		}
	})
}
