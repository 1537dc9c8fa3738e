package tui

import (
	"github.com/vovakirdan/asteroid-smasher/internal/core"
	"github.com/vovakirdan/asteroid-smasher/internal/smash"
)

// ScreenPresenter draws controller frames into a screen buffer.
// It implements smash.Presenter.
type ScreenPresenter struct {
	screen *core.Screen
	last   smash.Frame
	frames int
}

// NewScreenPresenter creates a presenter with a w x h screen.
func NewScreenPresenter(w, h int) *ScreenPresenter {
	return &ScreenPresenter{screen: core.NewScreen(w, h)}
}

// Render stores the frame and redraws the screen.
func (p *ScreenPresenter) Render(f smash.Frame) {
	p.last = f
	p.frames++
	smash.DrawFrame(p.screen, f)
}

// Resize changes the screen size and redraws the last frame.
func (p *ScreenPresenter) Resize(w, h int) {
	p.screen.Resize(w, h)
	if p.frames > 0 {
		smash.DrawFrame(p.screen, p.last)
	}
}

// Screen returns the buffer holding the last drawn frame.
func (p *ScreenPresenter) Screen() *core.Screen {
	return p.screen
}

// Last returns the most recent frame and whether one was rendered.
func (p *ScreenPresenter) Last() (smash.Frame, bool) {
	return p.last, p.frames > 0
}

// Frames returns how many frames were rendered.
func (p *ScreenPresenter) Frames() int {
	return p.frames
}

var _ smash.Presenter = (*ScreenPresenter)(nil)
