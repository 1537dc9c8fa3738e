package storage

import "github.com/vovakirdan/asteroid-smasher/internal/smash"

// HighScoreRecord binds a Store to one game's high score. It implements
// smash.HighScoreStore.
type HighScoreRecord struct {
	store  *Store
	gameID string
}

// NewHighScoreRecord creates a record for the given game.
func NewHighScoreRecord(store *Store, gameID string) *HighScoreRecord {
	return &HighScoreRecord{store: store, gameID: gameID}
}

// ReadHighScore returns the stored record, 0 when none exists.
func (r *HighScoreRecord) ReadHighScore() (int, error) {
	return r.store.HighScore(r.gameID)
}

// WriteHighScore stores score if it beats the stored record.
func (r *HighScoreRecord) WriteHighScore(score int) error {
	_, err := r.store.RaiseHighScore(r.gameID, score)
	return err
}

// Ensure HighScoreRecord implements smash.HighScoreStore
var _ smash.HighScoreStore = (*HighScoreRecord)(nil)
