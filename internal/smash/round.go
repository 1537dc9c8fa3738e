package smash

// Phase is the lifecycle state of a round.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseEnded        // Terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Round tracks score, the countdown and the phase. When the countdown runs
// out it ends the round and writes a new high score, once.
type Round struct {
	phase     Phase
	score     int
	remaining int // Milliseconds, never negative
	stored    int // High score read at round start
	store     HighScoreStore

	newRecord bool
	writeErr  error
}

// NewRound starts an active round. stored is the high score read from store
// at round start.
func NewRound(timeLimitMs, stored int, store HighScoreStore) *Round {
	return &Round{
		phase:     PhaseActive,
		remaining: timeLimitMs,
		stored:    stored,
		store:     store,
	}
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Score returns the points earned so far.
func (r *Round) Score() int {
	return r.score
}

// Remaining returns the remaining time in milliseconds.
func (r *Round) Remaining() int {
	return r.remaining
}

// StoredHighScore returns the high score read at round start.
func (r *Round) StoredHighScore() int {
	return r.stored
}

// HighScore returns the best score to display: the stored record, or the
// current score once it is higher.
func (r *Round) HighScore() int {
	if r.score > r.stored {
		return r.score
	}
	return r.stored
}

// NewHighScore reports whether the round ended with a new record.
func (r *Round) NewHighScore() bool {
	return r.newRecord
}

// WriteErr returns the error of the high-score write, if it failed.
func (r *Round) WriteErr() error {
	return r.writeErr
}

// OnSmashHit awards points for destroyed obstacles. Ignored once ended.
func (r *Round) OnSmashHit(count int) {
	if r.phase != PhaseActive || count <= 0 {
		return
	}
	r.score += count
}

// Tick consumes elapsed milliseconds. Reports true on the tick the round
// ends; every later call is a no-op returning false.
func (r *Round) Tick(elapsedMs int) bool {
	if r.phase != PhaseActive {
		return false
	}

	r.remaining -= elapsedMs
	if r.remaining > 0 {
		return false
	}

	r.remaining = 0
	r.phase = PhaseEnded
	r.persist()
	return true
}

// persist writes the score when it beats the stored record. Runs only from
// the Active -> Ended transition, which happens once.
func (r *Round) persist() {
	if r.score <= r.stored {
		return
	}
	r.newRecord = true
	if r.store != nil {
		r.writeErr = r.store.WriteHighScore(r.score)
	}
}
