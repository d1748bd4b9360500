// Package batch handles dataset input and output for commands that operate
// on many values at once. It reads whitespace-separated numbers from files
// or streams and writes conversion results back out one per line.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/umwelt-studio/numeral/internal/round"
	"github.com/umwelt-studio/numeral/internal/unit"
)

// Read parses every whitespace-separated token from r as a number. A token
// that does not parse fails the whole read; partial datasets are worse than
// no dataset.
func Read(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []float64
	for scanner.Scan() {
		v, err := round.Parse(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q: %w", scanner.Text(), err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return values, nil
}

// ReadFile reads a dataset from path, or from stdin when path is "-".
func ReadFile(path string) ([]float64, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write renders one conversion result per line: the number followed by its
// suffix, or just the number for suffix-less families.
func Write(w io.Writer, results []unit.Converted) error {
	bw := bufio.NewWriter(w)

	for _, r := range results {
		line := strconv.FormatFloat(r.Number, 'f', -1, 64)
		if r.Suffix != "" {
			line += " " + r.Suffix
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
