// smasher is Robot Hand Asteroid Smasher: move the mouse to steer a robot
// hand, click to smash bouncing asteroids before the two-minute clock runs
// out.
//
// Usage:
//
//	smasher                  - Play a round
//	smasher play             - Play a round
//	smasher scores           - Show the best rounds
//	smasher stats            - Show aggregated statistics
//	smasher reset            - Delete stored scores
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--config <path>    - Use a custom game config YAML
//	--log-file <path>  - Log destination, "-" for stderr
//	--debug            - Enable debug logging
//	--mute             - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smasher",
	Short: "Robot Hand Asteroid Smasher - smash asteroids in your terminal",
	Long: `Robot Hand Asteroid Smasher is a mouse-driven terminal arcade round.
A robot hand follows your pointer; click to smash the asteroid under it.
Each smash scores a point and clearing the field brings a bigger wave.
The round lasts two minutes and the best score is kept.

Available commands:
  play     - Play a round (default)
  scores   - View the best rounds
  stats    - View aggregated statistics
  reset    - Delete stored scores

Examples:
  smasher
  smasher --seed 42 --mute
  smasher scores --interactive
  smasher --config ./my-smasher.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/smasher.log", `Log file ("-" for stderr)`)
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
}
