package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestParseLevel tests recognition of level names from the environment
func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected zerolog.Level
		ok       bool
	}{
		{"empty", "", zerolog.NoLevel, false},
		{"trace", "trace", zerolog.TraceLevel, true},
		{"debug", "debug", zerolog.DebugLevel, true},
		{"info", "info", zerolog.InfoLevel, true},
		{"warn", "warn", zerolog.WarnLevel, true},
		{"warning alias", "warning", zerolog.WarnLevel, true},
		{"error", "error", zerolog.ErrorLevel, true},
		{"disabled", "disabled", zerolog.Disabled, true},
		{"off alias", "off", zerolog.Disabled, true},
		{"mixed case", "DeBuG", zerolog.DebugLevel, true},
		{"surrounding spaces", "  info  ", zerolog.InfoLevel, true},
		{"unknown", "verbose", zerolog.NoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, ok := parseLevel(tt.input)
			if ok != tt.ok {
				t.Errorf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && lvl != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, lvl)
			}
		})
	}
}

// TestParseBool tests recognition of boolean values from the environment
func TestParseBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		ok       bool
	}{
		{"empty", "", false, false},
		{"true", "true", true, true},
		{"false", "false", false, true},
		{"one", "1", true, true},
		{"zero", "0", false, true},
		{"uppercase", "TRUE", true, true},
		{"spaces", " true ", true, true},
		{"garbage", "yes please", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := parseBool(tt.input)
			if ok != tt.ok {
				t.Errorf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && v != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, v)
			}
		})
	}
}
