// paperplane is a terminal game: throw a paper plane into the target circle
// with the mouse.
//
// Usage:
//
//	paperplane list              - List available variants
//	paperplane play [variant]    - Play a variant (default: paperplane)
//	paperplane menu              - Pick variants interactively
//	paperplane serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Preset: easy, normal, hard, fixed
//	--log-file <path>     - Write structured logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paperplane/internal/core"
	"github.com/vovakirdan/paperplane/internal/games/paperplane"
	"github.com/vovakirdan/paperplane/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paperplane",
	Short: "Paper Plane - throw a paper plane into the circle",
	Long: `Paper Plane is a terminal game played with the mouse.
Drag the plane and let go to throw it; land it on the target
circle on the monitor to score.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play

Examples:
  paperplane play
  paperplane play paperplane_follow --difficulty easy
  paperplane menu --log-file ./paperplane.log
  paperplane serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		paperplane.SetConfigPath(flagConfig)
		paperplane.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// openLogger returns the logger selected by --log-file, writing to
// fallback when no file was given. The closer must be called on exit.
func openLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return tui.NewLogger(fallback, prefix), io.NopCloser(nil), nil
	}

	f, err := tui.OpenLogFile(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	return tui.NewLogger(f, prefix), f, nil
}
