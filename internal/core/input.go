package core

// EventKind is a discrete input event, abstracted from the physical device.
type EventKind int

const (
	EventNone        EventKind = iota
	EventPointerDown           // Left mouse button pressed
	EventPointerUp             // Left mouse button released
	EventQuit                  // Esc, Q, Ctrl+C or terminal close
)

// String returns a human-readable name for the event.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerUp:
		return "PointerUp"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the input source collected between two ticks:
// the latest pointer position and the ordered queue of discrete events.
type InputFrame struct {
	// Pointer is the last reported pointer position in play-field space.
	Pointer Point
	// Events are kept in arrival order; presses and releases may interleave.
	Events []EventKind
}

// NewInputFrame creates an empty input frame with the pointer at p.
func NewInputFrame(p Point) InputFrame {
	return InputFrame{Pointer: p}
}

// Push appends an event to the queue. EventNone is dropped.
func (f *InputFrame) Push(k EventKind) {
	if k == EventNone {
		return
	}
	f.Events = append(f.Events, k)
}

// Has returns true if the given event occurred this frame.
func (f InputFrame) Has(k EventKind) bool {
	for _, e := range f.Events {
		if e == k {
			return true
		}
	}
	return false
}

// Clear drops all queued events but keeps the pointer position.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Pointer: f.Pointer}
	if len(f.Events) > 0 {
		clone.Events = append([]EventKind(nil), f.Events...)
	}
	return clone
}
