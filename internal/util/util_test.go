package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"seconds only", 45 * time.Second, "45s"},
		{"sub-second rounds", 800 * time.Millisecond, "1s"},
		{"minutes and seconds", 5*time.Minute + 10*time.Second, "5m10s"},
		{"exact minute", time.Minute, "1m0s"},
		{"hours and minutes", time.Hour + 30*time.Minute, "1h30m"},
		{"zero", 0, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
