package main

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func renderTable(t *testing.T, cols int) []string {
	t.Helper()
	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	printTable(out, cols, nil)
	if err := out.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

// TestPrintTableLayout checks the column-major layout of the plain table.
func TestPrintTableLayout(t *testing.T) {
	lines := renderTable(t, 4)
	if len(lines) != 32 {
		t.Fatalf("expected 32 lines, got %d", len(lines))
	}

	first := "  0 00 NUL    32 20 SP     64 40 @      96 60 `"
	if lines[0] != first {
		t.Errorf("expected %q, got %q", first, lines[0])
	}
	last := " 31 1F US     63 3F ?      95 5F _     127 7F DEL"
	if lines[31] != last {
		t.Errorf("expected %q, got %q", last, lines[31])
	}
}

// TestPrintTableColumnCounts checks the row count for several column
// settings, including ones that do not divide 128 evenly.
func TestPrintTableColumnCounts(t *testing.T) {
	tests := []struct {
		name         string
		cols         int
		expectedRows int
	}{
		{"one column", 1, 128},
		{"four columns", 4, 32},
		{"five columns", 5, 26},
		{"eight columns", 8, 16},
		{"sixteen columns", 16, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := renderTable(t, tt.cols)
			if len(lines) != tt.expectedRows {
				t.Errorf("expected %d rows, got %d", tt.expectedRows, len(lines))
			}
		})
	}
}

// TestPrintTableCoversAllCharacters checks that every code point appears
// exactly once whatever the column count.
func TestPrintTableCoversAllCharacters(t *testing.T) {
	for _, cols := range []int{1, 3, 4, 5, 7, 8, 16} {
		lines := renderTable(t, cols)
		seen := make(map[string]bool)
		for _, line := range lines {
			fields := strings.Fields(line)
			for i := 0; i+1 < len(fields); i++ {
				// Hex column follows the decimal one.
				if len(fields[i+1]) == 2 && isHexField(fields[i+1]) && isDecField(fields[i]) {
					seen[fields[i]] = true
				}
			}
		}
		for n := 0; n < 128; n++ {
			if !seen[strconv.Itoa(n)] {
				t.Errorf("cols=%d: code point %d missing from table", cols, n)
			}
		}
	}
}

func isDecField(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isHexField(s string) bool {
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'F') {
			return false
		}
	}
	return len(s) > 0
}
