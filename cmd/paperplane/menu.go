package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paperplane/internal/platform/tui"
	"github.com/vovakirdan/paperplane/internal/registry"
	"github.com/vovakirdan/paperplane/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Leaving a game returns you to the menu. Throws are kept in a
session log until the program exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Throw log
  Q            - Quit

Examples:
  paperplane menu
  paperplane menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := openLogger("paperplane", nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open throw log", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsThrowLog {
			goBack, err := tui.RunThrowLog(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
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
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		backToMenu, err := tui.Run(game, store, cfg, logger.With("game", game.ID()))
		if err != nil {
			return fmt.Errorf("cannot run game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
