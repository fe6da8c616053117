// Package session runs one pong match for one remote client: it owns the
// tick loop, receives commands and pointer updates from the transport and
// streams rendered frames back.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/pong"
	"github.com/vovakirdan/neon-pong/internal/render"
	"github.com/vovakirdan/neon-pong/internal/sfx"
)

// Conn is the transport-neutral connection to a client.
type Conn interface {
	Send([]byte) error
	Close() error
}

// command is queued from the reader goroutine to the tick goroutine.
type command struct {
	start      bool
	difficulty string
}

// Runner drives a Match for one connection.
type Runner struct {
	match    *pong.Match
	conn     Conn
	board    *leaderboard.Board
	logger   *log.Logger
	tickRate int

	inbox chan command

	// Latest pointer, last writer wins
	mu         sync.Mutex
	pointerY   float64
	hasPointer bool

	lastPhase pong.Phase
}

// Options configures a Runner.
type Options struct {
	TickRate int                // Ticks per second, default 60
	Board    *leaderboard.Board // Sent after each game over when set
	Logger   *log.Logger
}

// NewRunner creates a runner for match streaming to conn.
func NewRunner(match *pong.Match, conn Conn, opts Options) *Runner {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Runner{
		match:     match,
		conn:      conn,
		board:     opts.Board,
		logger:    opts.Logger,
		tickRate:  opts.TickRate,
		inbox:     make(chan command, 16),
		lastPhase: match.Phase(),
	}
}

// Handle decodes one client message. Pointer updates are stored directly;
// start and restart are queued for the tick goroutine. Safe to call from
// the transport's reader goroutine.
func (r *Runner) Handle(raw []byte) error {
	env, err := DecodeEnvelope(raw)
	if err != nil {
		return err
	}

	switch env.T {
	case MsgPointer:
		p, err := DecodePayload[Pointer](env)
		if err != nil {
			return err
		}
		r.SetPointer(p.Y)
	case MsgStart:
		s, err := DecodePayload[Start](env)
		if err != nil {
			return err
		}
		r.enqueue(command{start: true, difficulty: s.Difficulty})
	case MsgRestart:
		r.enqueue(command{})
	default:
		return fmt.Errorf("session: unknown message type %q", env.T)
	}
	return nil
}

// SetPointer records the latest pointer position.
func (r *Runner) SetPointer(y float64) {
	r.mu.Lock()
	r.pointerY = y
	r.hasPointer = true
	r.mu.Unlock()
}

func (r *Runner) enqueue(c command) {
	select {
	case r.inbox <- c:
	default:
		r.logger.Debug("Command dropped, inbox full")
	}
}

// Run sends the hello message and then ticks until ctx is cancelled or the
// connection fails. The connection is closed on return.
func (r *Runner) Run(ctx context.Context) error {
	defer r.conn.Close() //nolint:errcheck

	if err := r.sendHello(); err != nil {
		return err
	}
	if err := r.sendFrame(nil); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-r.inbox:
			if err := r.apply(c); err != nil {
				return err
			}
		case <-ticker.C:
			if err := r.tick(); err != nil {
				return err
			}
		}
	}
}

// apply runs a queued command and reports rejections to the client.
func (r *Runner) apply(c command) error {
	var err error
	if c.start {
		err = r.match.Start(c.difficulty)
	} else {
		err = r.match.Restart()
	}
	if err != nil {
		r.logger.Debug("Command rejected", "error", err)
		return r.send(MsgError, ErrorMessage{Message: err.Error()})
	}
	return nil
}

func (r *Runner) tick() error {
	r.mu.Lock()
	if r.hasPointer {
		r.match.SetPointer(r.pointerY)
		r.hasPointer = false
	}
	r.mu.Unlock()

	events := r.match.Step()
	phase := r.match.Phase()
	changed := phase != r.lastPhase
	r.lastPhase = phase

	if phase != pong.PhaseRunning && !changed {
		return nil
	}
	if err := r.sendFrame(events); err != nil {
		return err
	}
	if changed && phase == pong.PhaseGameOver {
		return r.sendScores()
	}
	return nil
}

func (r *Runner) sendHello() error {
	cfg := r.match.Config()
	return r.send(MsgHello, Hello{
		FieldW:       cfg.Field.Width,
		FieldH:       cfg.Field.Height,
		Difficulties: cfg.DifficultyNames(),
		Player:       cfg.Player.Name,
		TickRate:     r.tickRate,
	})
}

func (r *Runner) sendFrame(events []pong.Event) error {
	snap := r.match.Snapshot()
	frame := Frame{
		Tick:        snap.Tick,
		Phase:       snap.Phase.String(),
		PlayerScore: snap.PlayerScore,
		AIScore:     snap.AIScore,
		Commands:    render.Record(snap).Commands,
	}
	if snap.Winner != pong.SideNone {
		frame.Winner = snap.Winner.String()
	}
	for _, ev := range events {
		if s, ok := sfx.ForEvent(ev); ok {
			frame.Sounds = append(frame.Sounds, s.String())
		}
	}
	return r.send(MsgFrame, frame)
}

func (r *Runner) sendScores() error {
	if r.board == nil {
		return nil
	}
	top := r.board.Top(leaderboard.Size(r.match.Config().Gameplay.LeaderboardTop))
	msg := Scores{Entries: top, Lines: make([]string, 0, len(top))}
	for _, e := range top {
		msg.Lines = append(msg.Lines, e.String())
	}
	return r.send(MsgScores, msg)
}

// ErrSend wraps transport failures returned from Run.
var ErrSend = errors.New("send failed")

func (r *Runner) send(t string, payload any) error {
	b, err := Encode(t, payload)
	if err != nil {
		return err
	}
	if err := r.conn.Send(b); err != nil {
		return fmt.Errorf("session: %w: %w", ErrSend, err)
	}
	return nil
}
