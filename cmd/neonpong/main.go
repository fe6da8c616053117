// neonpong is a neon Pong game against an AI paddle, playable in the
// terminal, over SSH, in a browser or in a desktop window.
//
// Usage:
//
//	neonpong play            - Play in this terminal
//	neonpong serve           - Start the SSH server
//	neonpong web             - Start the browser front end
//	neonpong gui             - Open a desktop window (needs -tags ebiten)
//	neonpong scores          - Show the leaderboard and match history
//	neonpong difficulties    - List difficulty presets
//
// Global flags:
//
//	--fps <rate>        - Tick rate (default: 60)
//	--seed <value>      - RNG seed for reproducible matches
//	--db <path>         - Database path (default: ~/.neonpong/neonpong.db)
//	--config <path>     - Game config (YAML or TOML)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagEnvFile  string

	logger  *log.Logger
	gameCfg config.PongConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonpong",
	Short: "Neon Pong - beat the AI paddle",
	Long: `Neon Pong is a Pong variant: move your paddle with the mouse, beat the
AI to the target score and collect power-ups on the way.

Available commands:
  play          - Play in this terminal
  serve         - Start the SSH server for remote play
  web           - Serve the browser version
  gui           - Open a desktop window
  scores        - View the leaderboard
  difficulties  - List difficulty presets

Examples:
  neonpong play --difficulty hard
  neonpong serve --ssh :2222
  neonpong web --addr :8080
  neonpong scores --history 20`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the database (default "+storage.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", ".env", "Environment file to load")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
}

// setup loads the environment and the game config and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	if err := config.LoadEnv(flagEnvFile); err != nil {
		return fmt.Errorf("cannot load %s: %w", flagEnvFile, err)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonpong",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	gameCfg = cfg
	return nil
}

// dbPath resolves the database path: flag, then environment, then default.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return config.GetEnv(config.EnvDBPath, storage.DefaultPath)
}

// openBoard opens the database and its leaderboard. Without a database the
// leaderboard lives in memory for this run only; store is nil then.
func openBoard() (*storage.Store, *leaderboard.Board) {
	store, err := storage.Open(dbPath())
	if err != nil {
		logger.Warn("Could not open database, scores will not be saved", "error", err)
		return nil, leaderboard.New(leaderboard.NewMemoryStore(), logger)
	}
	return store, leaderboard.New(store.Leaderboard(), logger)
}
