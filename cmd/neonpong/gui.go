package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/platform/gui"
)

var flagScale float64

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open a desktop window",
	Long: `Play Neon Pong in a desktop window.

The window needs the ebiten build tag:
  go run -tags ebiten ./cmd/neonpong gui

Controls:
  1/2/3   - Start easy, medium or hard
  Mouse   - Move the paddle
  R       - Restart (after game over)
  Q/Esc   - Quit`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the field")
	guiCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runGUI(_ *cobra.Command, _ []string) {
	store, board := openBoard()
	opts := gui.Options{
		Config:   gameCfg,
		Board:    board,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Scale:    flagScale,
		Mute:     flagMute,
		Logger:   logger,
	}
	if store != nil {
		opts.Results = store
	}

	err := gui.Run(opts)

	if store != nil {
		store.Close() //nolint:errcheck
	}

	if errors.Is(err, gui.ErrNoGUI) {
		fmt.Fprintln(os.Stderr, "The desktop window requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/neonpong gui` or build with `-tags ebiten`.")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
