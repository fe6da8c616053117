package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server so others can play from their terminal.

Each connection gets its own match; the SSH user name is used as the
player name. All players share one leaderboard.

The address defaults to $NEONPONG_SSH_HOST:$NEONPONG_SSH_PORT when set
(also read from .env), otherwise :23234.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at ~/.neonpong/host_key

Examples:
  neonpong serve
  neonpong serve --ssh :2222
  neonpong serve --host-key ./my_host_key

Connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

// sshAddress resolves the listen address: flag, then environment, then default.
func sshAddress() string {
	if flagSSHAddr != "" {
		return flagSSHAddr
	}
	def := tui.DefaultSSHServerConfig()
	_, defPort, _ := net.SplitHostPort(def.Address)
	host := config.GetEnv(config.EnvSSHHost, "")
	port := config.GetEnvInt(config.EnvSSHPort, 0)
	if port <= 0 {
		p, _ := strconv.Atoi(defPort)
		port = p
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = sshAddress()
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	store, board := openBoard()
	deps := tui.Deps{
		Config: gameCfg,
		Board:  board,
		Logger: logger,
	}
	if store != nil {
		defer store.Close() //nolint:errcheck
		deps.Results = store
		deps.Stats = store
	}

	server, err := tui.NewSSHServer(cfg, deps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Neon Pong SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("Server error", "error", err)
	}
}
