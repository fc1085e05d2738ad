package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paperplane/internal/platform/tui"
	"github.com/vovakirdan/paperplane/internal/registry"
	"github.com/vovakirdan/paperplane/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: paperplane).

Controls:
  Mouse drag  - Grab the plane and throw it (paperplane)
                or pull back from anywhere (paperplane_follow)
  R           - Reset the plane and score
  S           - Settings
  Tab         - Throw log
  Esc/B       - Close dialog / leave
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wide target, gentle throws
  normal - Standard target size
  hard   - Small target, sensitive throws
  fixed  - Keep the config file's values unchanged

Examples:
  paperplane play
  paperplane play paperplane_follow
  paperplane play --difficulty hard
  paperplane play --config ./my-plane.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "paperplane"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'paperplane list' to see available variants)", gameID)
	}

	logger, closer, err := openLogger("paperplane", nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	// The throw log lives for this run only
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open throw log", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
