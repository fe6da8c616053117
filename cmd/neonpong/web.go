package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser version",
	Long: `Serve Neon Pong over HTTP. The page draws on a canvas and talks to
the server over a websocket; every browser tab plays its own match.

The address defaults to $NEONPONG_WEB_ADDR when set, otherwise :8080.

Examples:
  neonpong web
  neonpong web --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address")
}

func runWeb(_ *cobra.Command, _ []string) {
	cfg := web.DefaultConfig()
	cfg.Address = config.GetEnv(config.EnvWebAddr, cfg.Address)
	if flagWebAddr != "" {
		cfg.Address = flagWebAddr
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	store, board := openBoard()
	var server *web.Server
	if store != nil {
		defer store.Close() //nolint:errcheck
		server = web.NewServer(cfg, gameCfg, board, store, logger)
	} else {
		server = web.NewServer(cfg, gameCfg, board, nil, logger)
	}

	fmt.Printf("Open http://localhost%s in a browser\n", displayAddr(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("Server error", "error", err)
	}
}

// displayAddr strips the host from addr so it can follow "localhost".
func displayAddr(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return ":" + port
}
