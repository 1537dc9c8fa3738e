package smash

import "fmt"

// FormatRemaining renders milliseconds as m:ss. Partial seconds are
// truncated, so 999 ms shows as 0:00 and 65000 ms as 1:05.
func FormatRemaining(ms int) string {
	if ms < 0 {
		ms = 0
	}
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
