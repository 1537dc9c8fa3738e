// Package tui runs a round inside a Bubble Tea program. It turns mouse and
// key messages into input frames, draws controller frames to the terminal
// and owns the tick loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asteroid-smasher/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsedMs returns the whole milliseconds to consume on this tick and the
// new clock base. The base only moves by what was consumed, so sub-millisecond
// remainders carry into later ticks and the round tracks wall time. Every
// tick consumes at least 1 ms. The first tick (zero prev) counts as one
// nominal interval; a clock that went backwards restarts the base at now.
func elapsedMs(prev, now time.Time, rt core.RuntimeConfig) (int, time.Time) {
	if prev.IsZero() {
		return rt.TickInterval(), now
	}
	if now.Before(prev) {
		return 1, now
	}
	whole := core.Max(1, int(now.Sub(prev)/time.Millisecond))
	return whole, prev.Add(time.Duration(whole) * time.Millisecond)
}
