// Package smash implements the Robot Hand Asteroid Smasher round: a hand
// follows the pointer and smashes bouncing asteroids until the clock runs out.
//
// The package is pure game logic. Input, rendering, persistence and sound are
// collaborators behind small interfaces, driven one tick at a time by the
// platform layer.
package smash

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/asteroid-smasher/internal/config"
	"github.com/vovakirdan/asteroid-smasher/internal/core"
)

// GameID identifies the game in score storage.
const GameID = "smasher"

// Title is the display name.
const Title = "Robot Hand Asteroid Smasher"

// InputSource is polled once per tick for the pointer and queued events.
type InputSource interface {
	Poll() core.InputFrame
}

// Presenter receives one frame per tick. The controller never reads from it.
type Presenter interface {
	Render(f Frame)
}

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	ReadHighScore() (int, error)
	WriteHighScore(score int) error
}

// Sound plays effects. It is optional; a nil Sound is silent.
type Sound interface {
	PlaySmash()
	PlayRoundOver()
}

// Frame is everything the presenter needs to draw one tick.
type Frame struct {
	Field        Field
	Actor        Sprite
	Obstacles    []Sprite
	Phase        Phase
	Score        int
	Remaining    string // m:ss
	HighScore    int
	NewHighScore bool
	SpawnTarget  int
}

// StepResult is returned by Controller.Step after each tick.
type StepResult struct {
	Quit     bool  // Quit was requested; the tick was abandoned
	Hits     int   // Obstacles smashed this tick
	Ended    bool  // The round ended on this tick
	Phase    Phase // Phase after the tick
	Score    int
	WriteErr error // High-score write failure, reported on the ending tick
}

// Controller runs one round.
type Controller struct {
	entities  *EntitySet
	spawn     *SpawnPolicy
	round     *Round
	input     InputSource
	presenter Presenter
	sound     Sound
	ticks     int
}

// NewController reads the high score and sets up a round with its opening
// wave. A failed read is returned as is: no round starts without the record.
func NewController(cfg config.SmashConfig, seed int64, input InputSource, presenter Presenter, store HighScoreStore, sound Sound) (*Controller, error) {
	stored, err := store.ReadHighScore()
	if err != nil {
		return nil, fmt.Errorf("smash: cannot read high score: %w", err)
	}

	field := Field{W: cfg.Field.Width, H: cfg.Field.Height}
	rng := rand.New(rand.NewSource(seed))

	c := &Controller{
		entities:  NewEntitySet(field, NewActor(field, cfg.Actor.Width, cfg.Actor.Height)),
		spawn:     NewSpawnPolicy(rng, cfg.Obstacles.InitialCount, cfg.Obstacles.Speeds, cfg.Obstacles.Width, cfg.Obstacles.Height),
		round:     NewRound(cfg.Round.TimeLimitMs, stored, store),
		input:     input,
		presenter: presenter,
		sound:     sound,
	}
	c.spawn.Populate(c.entities)
	return c, nil
}

// Step runs one tick: poll input, handle smash events, move entities,
// advance the clock, render. A quit request abandons the tick before any of
// that happens.
func (c *Controller) Step(elapsedMs int) StepResult {
	frame := c.input.Poll()
	if frame.Has(core.EventQuit) {
		return StepResult{Quit: true, Phase: c.round.Phase(), Score: c.round.Score()}
	}

	c.ticks++
	c.entities.Actor().Aim(frame.Pointer)

	result := StepResult{}
	for _, ev := range frame.Events {
		switch ev {
		case core.EventPointerDown:
			if c.round.Phase() == PhaseActive {
				c.entities.Actor().Smashing = true
				if c.smash() {
					result.Hits++
				}
			}
		case core.EventPointerUp:
			c.entities.Actor().Smashing = false
		}
	}

	c.entities.Advance()

	// A tick always consumes time, so the countdown strictly decreases.
	if elapsedMs < 1 {
		elapsedMs = 1
	}
	if c.round.Tick(elapsedMs) {
		result.Ended = true
		result.WriteErr = c.round.WriteErr()
		if c.sound != nil {
			c.sound.PlayRoundOver()
		}
	}

	c.presenter.Render(c.Frame())

	result.Phase = c.round.Phase()
	result.Score = c.round.Score()
	return result
}

// smash destroys the first obstacle under the hand. Other overlapping
// obstacles survive until the next press.
func (c *Controller) smash() bool {
	hits := c.entities.Collisions()
	if len(hits) == 0 {
		return false
	}
	c.entities.Remove(hits[0])
	c.round.OnSmashHit(1)
	if c.sound != nil {
		c.sound.PlaySmash()
	}
	c.spawn.Refill(c.entities)
	return true
}

// Frame snapshots the current state for rendering.
func (c *Controller) Frame() Frame {
	sprites := c.entities.Sprites()
	return Frame{
		Field:        c.entities.Field(),
		Actor:        sprites[0],
		Obstacles:    sprites[1:],
		Phase:        c.round.Phase(),
		Score:        c.round.Score(),
		Remaining:    FormatRemaining(c.round.Remaining()),
		HighScore:    c.round.HighScore(),
		NewHighScore: c.round.NewHighScore(),
		SpawnTarget:  c.spawn.Target(),
	}
}

// Phase returns the round phase.
func (c *Controller) Phase() Phase {
	return c.round.Phase()
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.round.Score()
}

// StoredHighScore returns the record read at round start.
func (c *Controller) StoredHighScore() int {
	return c.round.StoredHighScore()
}

// Ticks returns the number of completed ticks.
func (c *Controller) Ticks() int {
	return c.ticks
}
