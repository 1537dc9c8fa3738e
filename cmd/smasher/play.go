package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/asteroid-smasher/internal/audio"
	"github.com/vovakirdan/asteroid-smasher/internal/config"
	"github.com/vovakirdan/asteroid-smasher/internal/core"
	"github.com/vovakirdan/asteroid-smasher/internal/platform/tui"
	"github.com/vovakirdan/asteroid-smasher/internal/smash"
	"github.com/vovakirdan/asteroid-smasher/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a two-minute round.

Controls:
  Mouse      - Move the hand
  Left click - Smash the asteroid under the hand
  R          - Play again (after time is up)
  Esc/Q      - Quit

Examples:
  smasher play
  smasher play --seed 42
  smasher play --config ./my-smasher.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs rounds until the user quits. Every resource it opens is released
// before it returns, so callers may exit right after.
func play() error {
	gameCfg, err := config.LoadSmash(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, logCloser, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logCloser.Close()

	// The high score is part of the round, so storage is required
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open scores database", "path", flagDBPath, "err", err)
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Sound is optional; a nil smash.Sound plays nothing
	var sound smash.Sound
	if !flagMute && gameCfg.Audio.Enabled {
		sm := audio.NewSoundManager(gameCfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	logger.Debug("starting", "fps", rt.TickRate, "screen", fmt.Sprintf("%dx%d", width, height), "db", flagDBPath)

	err = tui.Run(tui.Options{
		Game:    gameCfg,
		Runtime: rt,
		Record:  storage.NewHighScoreRecord(store, smash.GameID),
		History: store,
		Sound:   sound,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
