package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/umwelt-studio/numeral/internal/unit"
)

func TestRead(t *testing.T) {
	t.Run("whitespace and newline separated", func(t *testing.T) {
		input := "100 2500\n0.5\t-7\n"
		values, err := Read(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}

		expected := []float64{100, 2500, 0.5, -7}
		if len(values) != len(expected) {
			t.Fatalf("Read returned %d values, want %d", len(values), len(expected))
		}
		for i, v := range expected {
			if values[i] != v {
				t.Errorf("values[%d] = %v, want %v", i, values[i], v)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		values, err := Read(strings.NewReader(""))
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
		if len(values) != 0 {
			t.Errorf("Read returned %d values, want 0", len(values))
		}
	})

	t.Run("bad token fails the read", func(t *testing.T) {
		_, err := Read(strings.NewReader("1 two 3"))
		if err == nil {
			t.Fatal("expected error for non-numeric token, got nil")
		}
		if !strings.Contains(err.Error(), "two") {
			t.Errorf("error %q does not name the offending token", err.Error())
		}
	})
}

func TestReadFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "numeral-test-")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "data.txt")
	if err := os.WriteFile(path, []byte("1 2 3\n"), 0o644); err != nil {
		t.Fatalf("Failed to write data file: %v", err)
	}

	values, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if len(values) != 3 {
		t.Errorf("ReadFile returned %d values, want 3", len(values))
	}

	if _, err := ReadFile(filepath.Join(tmpDir, "missing.txt")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestWrite(t *testing.T) {
	results := []unit.Converted{
		{Number: 5, Unit: "mass", Suffix: "kg"},
		{Number: 0.5, Unit: "mass", Suffix: "g"},
		{Number: 1500, Unit: "count", Suffix: ""},
	}

	var sb strings.Builder
	if err := Write(&sb, results); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	expected := "5 kg\n0.5 g\n1500\n"
	if sb.String() != expected {
		t.Errorf("Write output = %q, want %q", sb.String(), expected)
	}
}
