package verify

import (
	"fmt"
	"time"
)

// FormatCountdown renders a remaining duration as MM:SS, clamped at 00:00.
// Purely cosmetic: the attempt's own deadline is authoritative.
func FormatCountdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
