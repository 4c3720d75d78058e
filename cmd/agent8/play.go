package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/agent8/internal/games/agent8"
	"github.com/vovakirdan/agent8/internal/platform/tui"
	"github.com/vovakirdan/agent8/internal/platform/window"
)

var (
	flagWindow bool
	flagScale  float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Agent8",
	Long: `Start playing straight away.

Controls:
  Up/W       - Climb
  Down/S     - Fast fall
  Space      - Fire, respawn after death
  P          - Pause
  R          - Restart with a new seed
  Esc        - Leave the game
  Q/Ctrl+C   - Quit
  Ctrl+S     - Screenshot (terminal only)

Difficulty options:
  easy   - Start at lowest difficulty, progresses with score
  normal - Start at 30% difficulty, progresses with score
  hard   - Start at 70% difficulty, progresses with score
  fixed  - No progression, stays at config's initial level

Examples:
  agent8 play
  agent8 play --difficulty hard
  agent8 play --window --scale 0.75
  agent8 play --config ./agent8.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	cmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to 1280x720")
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	game := agent8.New()
	cfg := runtimeConfig()

	if flagWindow {
		_, err = window.Run(game, s.store, cfg, window.Options{
			Player:     flagPlayer,
			ConfigPath: flagConfig,
			Log:        s.log,
			Scale:      flagScale,
		})
	} else {
		_, err = tui.Run(game, s.store, cfg, tui.Options{
			Player:     flagPlayer,
			ConfigPath: flagConfig,
			Log:        s.log,
		})
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
