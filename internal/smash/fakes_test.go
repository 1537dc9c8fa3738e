package smash

import (
	"github.com/vovakirdan/asteroid-smasher/internal/config"
	"github.com/vovakirdan/asteroid-smasher/internal/core"
)

// scriptedInput replays queued frames, then idles at the last pointer.
type scriptedInput struct {
	frames  []core.InputFrame
	pointer core.Point
}

func (s *scriptedInput) push(f core.InputFrame) {
	s.frames = append(s.frames, f)
}

func (s *scriptedInput) Poll() core.InputFrame {
	if len(s.frames) == 0 {
		return core.NewInputFrame(s.pointer)
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	s.pointer = f.Pointer
	return f
}

// recordingPresenter keeps every rendered frame.
type recordingPresenter struct {
	frames []Frame
}

func (p *recordingPresenter) Render(f Frame) {
	p.frames = append(p.frames, f)
}

func (p *recordingPresenter) last() Frame {
	return p.frames[len(p.frames)-1]
}

// memoryStore is an in-memory HighScoreStore that records writes.
type memoryStore struct {
	high     int
	readErr  error
	writeErr error
	writes   []int
}

func (m *memoryStore) ReadHighScore() (int, error) {
	return m.high, m.readErr
}

func (m *memoryStore) WriteHighScore(score int) error {
	m.writes = append(m.writes, score)
	if m.writeErr != nil {
		return m.writeErr
	}
	m.high = score
	return nil
}

// countingSound counts effect calls.
type countingSound struct {
	smashes, roundOvers int
}

func (s *countingSound) PlaySmash()     { s.smashes++ }
func (s *countingSound) PlayRoundOver() { s.roundOvers++ }

// harness bundles a controller with its fake collaborators.
type harness struct {
	c         *Controller
	input     *scriptedInput
	presenter *recordingPresenter
	store     *memoryStore
	sound     *countingSound
}

func newHarness(cfg config.SmashConfig, seed int64, stored int) *harness {
	h := &harness{
		input:     &scriptedInput{},
		presenter: &recordingPresenter{},
		store:     &memoryStore{high: stored},
		sound:     &countingSound{},
	}
	c, err := NewController(cfg, seed, h.input, h.presenter, h.store, h.sound)
	if err != nil {
		panic(err)
	}
	h.c = c
	return h
}

// frame builds an input frame with the pointer at (x, y) and the given events.
func frame(x, y int, events ...core.EventKind) core.InputFrame {
	f := core.NewInputFrame(core.Point{X: x, Y: y})
	for _, e := range events {
		f.Push(e)
	}
	return f
}

// place replaces the obstacles with fixed ones at the given top-left corners.
func (h *harness) place(points ...core.Point) []*Obstacle {
	h.c.entities.obstacles = h.c.entities.obstacles[:0]
	obs := make([]*Obstacle, 0, len(points))
	for _, p := range points {
		obs = append(obs, &Obstacle{Pos: p, Vel: core.Vec{DX: 1, DY: 1}, W: 16, H: 16})
	}
	h.c.entities.Add(obs...)
	return obs
}
