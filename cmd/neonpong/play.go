package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/platform/tui"
	"github.com/vovakirdan/neon-pong/internal/sfx"
)

var (
	flagDifficulty string
	flagName       string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Play Neon Pong in the terminal.

Controls:
  Mouse       - Move the paddle
  Up/Down     - Nudge the paddle
  R           - Restart (after game over)
  Esc/B       - Back to the menu
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Examples:
  neonpong play
  neonpong play --difficulty hard
  neonpong play --name Alice --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start right away with this difficulty")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name shown above the paddle")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")
}

func runPlay(_ *cobra.Command, _ []string) {
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = gameCfg.Gameplay.Difficulty
	}
	if difficulty != "" {
		if _, err := gameCfg.Profile(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'neonpong difficulties' to see the presets.")
			os.Exit(1)
		}
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := gameCfg
	if flagName != "" {
		cfg.Player.Name = flagName
	}

	store, board := openBoard()
	deps := tui.Deps{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Board:      board,
		Logger:     logger,
		Difficulty: difficulty,
	}
	if store != nil {
		deps.Results = store
		deps.Stats = store
	}
	if !flagMute {
		deps.Sound = sfx.NewBell(os.Stdout)
	}

	runErr := tui.Run(deps)

	if store != nil {
		store.Close() //nolint:errcheck
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
