package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	if sm.Enabled() {
		t.Error("new manager should not be enabled")
	}
	sm.PlaySmash()
	sm.PlayRoundOver()
	sm.Cleanup()
	sm.PlaySmash()
}

func TestSmashEffectLength(t *testing.T) {
	s, err := smashEffect(1)
	if err != nil {
		t.Fatalf("smashEffect() failed: %v", err)
	}
	n, peak := drain(t, s)
	if want := sampleRate.N(smashDuration); n != want {
		t.Errorf("smash samples = %d, want %d", n, want)
	}
	if peak == 0 {
		t.Error("smash effect is silent")
	}
}

func TestRoundOverEffectLength(t *testing.T) {
	s, err := roundOverEffect(1)
	if err != nil {
		t.Fatalf("roundOverEffect() failed: %v", err)
	}
	n, _ := drain(t, s)
	if want := sampleRate.N(roundOverStep) * len(roundOverNotes); n != want {
		t.Errorf("round over samples = %d, want %d", n, want)
	}
	if want := sampleRate.N(roundOverDuration); n != want {
		t.Errorf("round over samples = %d, want %d (%v)", n, want, roundOverDuration)
	}
}

func TestWithVolume(t *testing.T) {
	tests := []struct {
		name    string
		vol     float64
		maxPeak float64
		silent  bool
	}{
		{name: "full", vol: 1, maxPeak: 1.0001},
		{name: "half", vol: 0.5, maxPeak: 0.5001},
		{name: "zero", vol: 0, silent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := smashEffect(tt.vol)
			if err != nil {
				t.Fatalf("smashEffect() failed: %v", err)
			}
			_, peak := drain(t, s)
			if tt.silent {
				if peak != 0 {
					t.Errorf("peak = %v, want silence", peak)
				}
				return
			}
			if peak == 0 || peak > tt.maxPeak {
				t.Errorf("peak = %v, want (0, %v]", peak, tt.maxPeak)
			}
		})
	}
}
