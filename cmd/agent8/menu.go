package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/agent8/internal/games/agent8"
	"github.com/vovakirdan/agent8/internal/platform/tui"
	"github.com/vovakirdan/agent8/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, look at the high scores or start a game. Leaving a game
with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  agent8 menu
  agent8 menu --fps 30
  agent8 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := runtimeConfig()
	preset := s.preset

	for {
		menuResult, err := tui.RunMenu(s.store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(s.store, agent8.ID, flagPlayer, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}
		if g, ok := game.(*agent8.Game); ok {
			g.SetPreset(preset)
		}

		backToMenu, err := tui.Run(game, s.store, cfg, tui.Options{
			Player:     flagPlayer,
			ConfigPath: flagConfig,
			Log:        s.log,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
