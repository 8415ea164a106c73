package verify

import (
	"testing"
	"time"
)

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{"full window", 15 * time.Minute, "15:00"},
		{"mid flight", 9*time.Minute + 7*time.Second, "09:07"},
		{"under a minute", 42 * time.Second, "00:42"},
		{"zero", 0, "00:00"},
		{"clamped negative", -3 * time.Second, "00:00"},
		{"subsecond rounds", 500 * time.Millisecond, "00:01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatCountdown(tc.remaining); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
