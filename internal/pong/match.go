package pong

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/leaderboard"
)

var (
	// ErrAlreadyRunning is returned by Start while a match is in progress.
	ErrAlreadyRunning = errors.New("match already running")
	// ErrNotGameOver is returned by Restart before the match has ended.
	ErrNotGameOver = errors.New("match is not over")
)

// Recorder persists player wins.
type Recorder interface {
	Record(leaderboard.Entry) error
}

// Result summarizes a finished match, win or loss.
type Result struct {
	Difficulty  string
	Winner      Side
	PlayerScore int
	AIScore     int
	Duration    time.Duration // Match clock at game over
	Ticks       uint64
}

// ResultRecorder keeps a history of finished matches.
type ResultRecorder interface {
	RecordResult(Result) error
}

// Match drives one session: it owns the MatchState, buffers the latest
// pointer position and records a leaderboard entry when the player wins.
// A Match is not safe for concurrent use; hosts that read input on another
// goroutine hand the pointer over themselves.
type Match struct {
	cfg      config.PongConfig
	tickRate int
	seed     int64
	recorder Recorder
	results  ResultRecorder
	logger   *log.Logger

	params  Params
	state   MatchState
	played  int64
	pointer Input
	saved   bool
}

// Option configures a Match.
type Option func(*Match)

// WithSeed sets the base RNG seed. Match n (0-based) uses seed+n.
func WithSeed(seed int64) Option {
	return func(m *Match) { m.seed = seed }
}

// WithTickRate sets ticks per second.
func WithTickRate(rate int) Option {
	return func(m *Match) { m.tickRate = rate }
}

// WithRecorder sets where player wins are recorded.
func WithRecorder(r Recorder) Option {
	return func(m *Match) { m.recorder = r }
}

// WithResults sets where finished matches are logged.
func WithResults(r ResultRecorder) Option {
	return func(m *Match) { m.results = r }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) { m.logger = l }
}

// NewMatch creates a match in PhaseNotStarted.
func NewMatch(cfg config.PongConfig, opts ...Option) *Match {
	m := &Match{
		cfg:      cfg,
		tickRate: 60,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m
}

// Start begins a match with the named difficulty. It is allowed before the
// first match and after a game over; the latter lets a finished match go
// straight to another difficulty, which Restart cannot do.
func (m *Match) Start(difficulty string) error {
	if m.state.Phase == PhaseRunning {
		return ErrAlreadyRunning
	}
	profile, err := m.cfg.Profile(difficulty)
	if err != nil {
		return err
	}
	m.params = NewParams(m.cfg, profile, m.tickRate)
	m.begin()
	return nil
}

// Restart replays the match with the previously selected difficulty.
func (m *Match) Restart() error {
	if m.state.Phase != PhaseGameOver {
		return fmt.Errorf("pong: cannot restart in %s: %w", m.state.Phase, ErrNotGameOver)
	}
	m.begin()
	return nil
}

// Abandon drops a running match without recording anything and returns it
// to NotStarted. Front ends call it when the player leaves a match for the
// menu; it is the only way out of Running other than a game over.
func (m *Match) Abandon() {
	if m.state.Phase == PhaseRunning {
		m.logger.Debug("Match abandoned", "tick", m.state.Tick)
		m.state.Phase = PhaseNotStarted
	}
}

func (m *Match) begin() {
	m.state = NewState(m.params, m.seed+m.played)
	m.played++
	m.pointer = Input{}
	m.saved = false
	m.logger.Debug("Match started", "difficulty", m.params.Difficulty, "seed", m.seed+m.played-1)
}

// SetPointer stores the pointer position for the next tick. Later calls
// overwrite earlier ones. Ignored unless the match is running.
func (m *Match) SetPointer(y float64) {
	if m.state.Phase != PhaseRunning {
		return
	}
	m.pointer = Input{PointerY: y, HasPointer: true}
}

// Step advances the match by one tick.
func (m *Match) Step() []Event {
	if m.state.Phase != PhaseRunning {
		return nil
	}
	var events []Event
	m.state, events = Step(m.state, m.pointer, m.params)
	m.pointer = Input{}

	for _, ev := range events {
		if over, ok := ev.(GameOverEvent); ok {
			m.finish(over)
		}
	}
	return events
}

// finish records the result and, for a player win, one leaderboard entry.
func (m *Match) finish(over GameOverEvent) {
	if m.saved {
		return
	}
	m.saved = true
	m.logger.Info("Match over", "winner", over.Winner, "player", over.PlayerScore, "ai", over.AIScore)

	if m.results != nil {
		res := Result{
			Difficulty:  m.params.Difficulty,
			Winner:      over.Winner,
			PlayerScore: over.PlayerScore,
			AIScore:     over.AIScore,
			Duration:    m.state.Clock,
			Ticks:       m.state.Tick,
		}
		if err := m.results.RecordResult(res); err != nil {
			m.logger.Warn("Failed to record match result", "error", err)
		}
	}

	if over.Winner != SidePlayer || m.recorder == nil {
		return
	}
	entry := leaderboard.Entry{
		Name:       m.params.PlayerName,
		Score:      over.PlayerScore,
		Difficulty: m.params.Difficulty,
	}
	if err := m.recorder.Record(entry); err != nil {
		m.logger.Warn("Failed to record win", "error", err)
	}
}

// Phase returns the lifecycle state.
func (m *Match) Phase() Phase {
	return m.state.Phase
}

// Params returns the parameters of the current match.
func (m *Match) Params() Params {
	return m.params
}

// State returns a copy of the simulation state.
func (m *Match) State() MatchState {
	return m.state
}

// Config returns the configuration the match was created with.
func (m *Match) Config() config.PongConfig {
	return m.cfg
}

// Snapshot returns a read-only view for rendering. Before the first Start
// it describes an empty field.
func (m *Match) Snapshot() Snapshot {
	if m.state.Phase == PhaseNotStarted && m.params.FieldW == 0 {
		p := NewParams(m.cfg, config.DifficultyProfile{}, m.tickRate)
		return MatchState{}.Snapshot(p)
	}
	return m.state.Snapshot(m.params)
}
