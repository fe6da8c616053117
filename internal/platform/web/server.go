// Package web serves the browser front end: a static canvas page and a
// websocket endpoint that runs one pong match per connection.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/pong"
	"github.com/vovakirdan/neon-pong/internal/session"
)

//go:embed assets
var assets embed.FS

const (
	readLimit    = 1 << 16
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
)

// Config holds web server settings.
type Config struct {
	Address  string
	TickRate int
	Seed     int64
}

// DefaultConfig returns the default listen address and tick rate.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		TickRate: 60,
	}
}

// Server hosts browser sessions. All sessions share one leaderboard.
type Server struct {
	cfg      Config
	game     config.PongConfig
	board    *leaderboard.Board
	results  pong.ResultRecorder
	logger   *log.Logger
	upgrader websocket.Upgrader
	sessions atomic.Int64
	httpSrv  *http.Server
}

// NewServer creates a server. board and results may be nil.
func NewServer(cfg Config, game config.PongConfig, board *leaderboard.Board, results pong.ResultRecorder, logger *log.Logger) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		cfg:     cfg,
		game:    game,
		board:   board,
		results: results,
		logger:  logger,
		upgrader: websocket.Upgrader{
			// Any origin may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.httpSrv = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes: the page at /, the socket at /ws and
// the leaderboard at /api/scores.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/api/scores", s.handleScores)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("Starting web server", "address", s.cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Address
}

func (s *Server) handleScores(w http.ResponseWriter, _ *http.Request) {
	msg := session.Scores{Entries: []leaderboard.Entry{}, Lines: []string{}}
	if s.board != nil {
		for _, e := range s.board.Top(leaderboard.Size(s.game.Gameplay.LeaderboardTop)) {
			msg.Entries = append(msg.Entries, e)
			msg.Lines = append(msg.Lines, e.String())
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		s.logger.Debug("Failed to write scores", "error", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("Upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	n := s.sessions.Add(1)
	logger := s.logger.With("remote", r.RemoteAddr, "session", n)
	logger.Info("Session started")
	defer logger.Info("Session ended")

	conn := &wsConn{ws: ws}
	ws.SetReadLimit(readLimit)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	opts := []pong.Option{
		pong.WithSeed(s.cfg.Seed + n),
		pong.WithTickRate(s.cfg.TickRate),
		pong.WithLogger(logger),
	}
	if s.board != nil {
		opts = append(opts, pong.WithRecorder(s.board))
	}
	if s.results != nil {
		opts = append(opts, pong.WithResults(s.results))
	}
	match := pong.NewMatch(s.game, opts...)
	runner := session.NewRunner(match, conn, session.Options{
		TickRate: s.cfg.TickRate,
		Board:    s.board,
		Logger:   logger,
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer cancel()
		if err := runner.Run(ctx); err != nil {
			logger.Debug("Runner stopped", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		conn.pingLoop(ctx)
	}()

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("Read failed", "error", err)
			}
			break
		}
		if err := runner.Handle(msg); err != nil {
			logger.Debug("Bad message", "error", err)
		}
	}

	cancel()
	wg.Wait()
}

// wsConn serialises writes to a websocket. gorilla allows one concurrent
// writer only.
type wsConn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) Close() error {
	return c.ws.Close()
}

func (c *wsConn) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}
