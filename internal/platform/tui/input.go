package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asteroid-smasher/internal/core"
	"github.com/vovakirdan/asteroid-smasher/internal/smash"
)

// MouseInput collects terminal mouse events between ticks. It implements
// smash.InputSource.
type MouseInput struct {
	vp    smash.Viewport
	frame core.InputFrame
}

// NewMouseInput creates an input source over the given viewport with the
// pointer resting at start.
func NewMouseInput(vp smash.Viewport, start core.Point) *MouseInput {
	return &MouseInput{
		vp:    vp,
		frame: core.NewInputFrame(start),
	}
}

// SetViewport changes the cell to play-field mapping after a resize.
func (in *MouseInput) SetViewport(vp smash.Viewport) {
	in.vp = vp
}

// HandleMouse records the pointer position and any left-button transition.
// Wheel and other buttons only move the pointer.
func (in *MouseInput) HandleMouse(msg tea.MouseMsg) {
	in.frame.Pointer = in.vp.ToField(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			in.frame.Push(core.EventPointerDown)
		}
	case tea.MouseActionRelease:
		// X10 terminals report releases without a button.
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			in.frame.Push(core.EventPointerUp)
		}
	}
}

// RequestQuit queues a quit for the next tick.
func (in *MouseInput) RequestQuit() {
	in.frame.Push(core.EventQuit)
}

// Poll returns everything collected since the last poll and empties the
// queue. The pointer carries over.
func (in *MouseInput) Poll() core.InputFrame {
	f := in.frame.Clone()
	in.frame.Clear()
	return f
}

var _ smash.InputSource = (*MouseInput)(nil)
