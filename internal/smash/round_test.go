package smash

import (
	"errors"
	"testing"
)

func TestRoundInitialState(t *testing.T) {
	r := NewRound(120000, 5, &memoryStore{high: 5})

	if r.Phase() != PhaseActive {
		t.Errorf("Phase() = %v, expected active", r.Phase())
	}
	if r.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", r.Score())
	}
	if r.Remaining() != 120000 {
		t.Errorf("Remaining() = %d, expected 120000", r.Remaining())
	}
	if r.HighScore() != 5 || r.StoredHighScore() != 5 {
		t.Errorf("HighScore() = %d, expected 5", r.HighScore())
	}
}

func TestRoundTickCountsDown(t *testing.T) {
	r := NewRound(1000, 0, nil)

	prev := r.Remaining()
	for i := 0; i < 5; i++ {
		if r.Tick(16) {
			t.Fatal("round should not end yet")
		}
		if r.Remaining() >= prev {
			t.Fatalf("Remaining() did not decrease: %d -> %d", prev, r.Remaining())
		}
		prev = r.Remaining()
	}
	if r.Remaining() != 1000-5*16 {
		t.Errorf("Remaining() = %d, expected %d", r.Remaining(), 1000-5*16)
	}
}

func TestRoundEndsExactlyOnce(t *testing.T) {
	store := &memoryStore{high: 5}
	r := NewRound(100, 5, store)
	r.OnSmashHit(7)

	if r.Tick(60) {
		t.Fatal("round should not end at 40ms remaining")
	}
	if !r.Tick(60) {
		t.Fatal("round should end when remaining time reaches zero")
	}
	if r.Phase() != PhaseEnded {
		t.Errorf("Phase() = %v, expected ended", r.Phase())
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0 (never negative)", r.Remaining())
	}

	for i := 0; i < 10; i++ {
		if r.Tick(16) {
			t.Fatal("Tick should report the transition only once")
		}
	}

	if len(store.writes) != 1 || store.writes[0] != 7 {
		t.Errorf("writes = %v, expected exactly [7]", store.writes)
	}
	if !r.NewHighScore() {
		t.Error("NewHighScore() should be true")
	}
}

func TestRoundEndsAtExactlyZero(t *testing.T) {
	r := NewRound(32, 0, nil)
	r.Tick(16)
	if !r.Tick(16) {
		t.Error("round should end when remaining time is exactly zero")
	}
}

func TestRoundHighScoreWriteRule(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		score     int
		wantWrite bool
	}{
		{"beats record", 5, 7, true},
		{"ties record", 5, 5, false},
		{"below record", 5, 3, false},
		{"first score", 0, 1, true},
		{"zero score", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &memoryStore{high: tc.stored}
			r := NewRound(10, tc.stored, store)
			r.OnSmashHit(tc.score)
			r.Tick(10)

			if got := len(store.writes) == 1; got != tc.wantWrite {
				t.Errorf("write happened = %v, expected %v (writes %v)", got, tc.wantWrite, store.writes)
			}
			if len(store.writes) > 1 {
				t.Errorf("at most one write per round, got %v", store.writes)
			}
			if r.NewHighScore() != tc.wantWrite {
				t.Errorf("NewHighScore() = %v, expected %v", r.NewHighScore(), tc.wantWrite)
			}
		})
	}
}

func TestRoundNoScoringAfterEnd(t *testing.T) {
	r := NewRound(10, 0, nil)
	r.OnSmashHit(2)
	r.Tick(10)
	r.OnSmashHit(5)

	if r.Score() != 2 {
		t.Errorf("Score() = %d, expected 2 (hits after the end are ignored)", r.Score())
	}
}

func TestRoundOnSmashHitIgnoresNonPositive(t *testing.T) {
	r := NewRound(10, 0, nil)
	r.OnSmashHit(3)
	r.OnSmashHit(0)
	r.OnSmashHit(-4)

	if r.Score() != 3 {
		t.Errorf("Score() = %d, expected 3", r.Score())
	}
}

func TestRoundWriteErrorIsReported(t *testing.T) {
	boom := errors.New("disk full")
	store := &memoryStore{writeErr: boom}
	r := NewRound(10, 0, store)
	r.OnSmashHit(1)
	r.Tick(10)

	if !errors.Is(r.WriteErr(), boom) {
		t.Errorf("WriteErr() = %v, expected %v", r.WriteErr(), boom)
	}
	if r.Phase() != PhaseEnded {
		t.Error("a failed write should still end the round")
	}
}

func TestRoundHighScoreDisplay(t *testing.T) {
	r := NewRound(1000, 5, nil)
	r.OnSmashHit(3)
	if r.HighScore() != 5 {
		t.Errorf("HighScore() = %d, expected stored 5", r.HighScore())
	}
	r.OnSmashHit(4)
	if r.HighScore() != 7 {
		t.Errorf("HighScore() = %d, expected current 7", r.HighScore())
	}
	if r.NewHighScore() {
		t.Error("NewHighScore() is only set when the round ends")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseActive.String() != "active" || PhaseEnded.String() != "ended" || Phase(9).String() != "unknown" {
		t.Error("unexpected Phase names")
	}
}
