// agent8 is a side-scrolling arcade game: dangle from a rope, dodge falling
// tools, shoot them for points and grab the coins.
//
// Usage:
//
//	agent8                   - Play in the terminal
//	agent8 play              - Same as above
//	agent8 play --window     - Play in a desktop window
//	agent8 menu              - Title menu with difficulty and high scores
//	agent8 scores            - Show high scores
//	agent8 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.agent8/scores.db)
//	--config <path>      - Game config file (YAML or TOML), watched for changes
//	--difficulty <name>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/agent8/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
	flagHold       int
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "agent8",
	Short: "Agent8 - dodge the tools, shoot them, grab the coins",
	Long: `Agent8 hangs from a rope on the left of the screen. Tools fall from
the fan and kill on touch; shoot them for points and collect coins, but
don't shoot the coins.

Available commands:
  play     - Play the game (default)
  menu     - Title menu with difficulty and high scores
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  agent8
  agent8 play --difficulty hard
  agent8 play --window
  agent8 menu
  agent8 serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().IntVar(&flagHold, "hold", 8, "Ticks a terminal key stays held after its last event")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with each run")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
