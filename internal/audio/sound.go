// Package audio plays the short synthesized effects of a round.
// Sound is optional: an uninitialized manager ignores every call.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect lengths.
const (
	smashDuration     = 60 * time.Millisecond
	roundOverStep     = 120 * time.Millisecond
	roundOverDuration = 3 * roundOverStep // One step per note
)

// Falling three-note phrase played when the clock runs out.
var roundOverNotes = []float64{660, 523.25, 392}

// SoundManager mixes effects onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager with the given volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued effects. The speaker itself stays open for the
// lifetime of the process.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Enabled reports whether effects reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlaySmash plays a short high blip.
func (sm *SoundManager) PlaySmash() {
	sm.play(smashEffect)
}

// PlayRoundOver plays the falling end-of-round phrase.
func (sm *SoundManager) PlayRoundOver() {
	sm.play(roundOverEffect)
}

func (sm *SoundManager) play(build func(float64) (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := build(sm.volume)
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func smashEffect(volume float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return nil, err
	}
	return withVolume(beep.Take(sampleRate.N(smashDuration), tone), volume), nil
}

func roundOverEffect(volume float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(roundOverNotes))
	for _, freq := range roundOverNotes {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Take(sampleRate.N(roundOverStep), tone))
	}
	return withVolume(beep.Seq(notes...), volume), nil
}

// withVolume scales s linearly. Log2(0) is -Inf, so zero means silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
