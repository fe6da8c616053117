package pong

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/leaderboard"
)

type countingRecorder struct {
	entries []leaderboard.Entry
	results []Result
}

func (r *countingRecorder) RecordResult(res Result) error {
	r.results = append(r.results, res)
	return nil
}

func (r *countingRecorder) Record(e leaderboard.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func TestMatchLifecycle(t *testing.T) {
	m := NewMatch(config.DefaultPongConfig(), WithSeed(1))

	if m.Phase() != PhaseNotStarted {
		t.Fatalf("new match phase = %s", m.Phase())
	}
	if events := m.Step(); events != nil {
		t.Errorf("Step before Start should do nothing, got %v", events)
	}
	if err := m.Restart(); !errors.Is(err, ErrNotGameOver) {
		t.Errorf("Restart before start: expected ErrNotGameOver, got %v", err)
	}
	if err := m.Start("nightmare"); !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
	if m.Phase() != PhaseNotStarted {
		t.Error("failed Start should leave the match not started")
	}

	if err := m.Start(config.DifficultyMedium); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if m.Phase() != PhaseRunning {
		t.Fatalf("phase after Start = %s", m.Phase())
	}
	if err := m.Start(config.DifficultyHard); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start: expected ErrAlreadyRunning, got %v", err)
	}
	if err := m.Restart(); !errors.Is(err, ErrNotGameOver) {
		t.Errorf("Restart while running: expected ErrNotGameOver, got %v", err)
	}

	m.Abandon()
	if m.Phase() != PhaseNotStarted {
		t.Errorf("phase after Abandon = %s", m.Phase())
	}
}

func TestEasyProfileFixedAtStart(t *testing.T) {
	m := NewMatch(config.DefaultPongConfig(), WithSeed(3))
	if err := m.Start(config.DifficultyEasy); err != nil {
		t.Fatal(err)
	}

	check := func() {
		t.Helper()
		p := m.Params()
		if p.AISpeed != 3 || p.BallBaseVX != 6 || p.BallBaseVY != 3 {
			t.Errorf("params = ai %v vx %v vy %v, expected 3/6/3", p.AISpeed, p.BallBaseVX, p.BallBaseVY)
		}
	}
	check()

	s := m.State()
	if s.BallVX != 6 || (s.BallVY != 3 && s.BallVY != -3) {
		t.Errorf("serve = (%v, %v), expected (6, +/-3)", s.BallVX, s.BallVY)
	}

	// Selecting another difficulty mid-match is rejected and changes nothing
	if err := m.Start(config.DifficultyHard); err == nil {
		t.Fatal("expected Start to fail while running")
	}
	for i := 0; i < 50; i++ {
		m.Step()
	}
	check()
}

func TestPointerIsLastWriterWins(t *testing.T) {
	m := NewMatch(config.DefaultPongConfig(), WithSeed(1))
	m.SetPointer(100) // Ignored before start
	if err := m.Start(config.DifficultyEasy); err != nil {
		t.Fatal(err)
	}

	m.SetPointer(100)
	m.SetPointer(400)
	m.Step()

	h := m.State().PaddleH
	if got := m.State().PlayerY; got != 400-h/2 {
		t.Errorf("PlayerY = %v, expected %v", got, 400-h/2)
	}

	// Without new input the paddle stays
	m.Step()
	if got := m.State().PlayerY; got != 400-h/2 {
		t.Errorf("PlayerY moved without input: %v", got)
	}
}

// forcePlayerWin drives the match to a player win through the real Step.
func forcePlayerWin(t *testing.T, m *Match) []Event {
	t.Helper()
	var all []Event
	for m.Phase() == PhaseRunning {
		setUpPlayerPoint(&m.state, m.params)
		m.state.Slot = Slot{}
		all = append(all, m.Step()...)
		if m.state.Tick > 1000 {
			t.Fatal("match did not end")
		}
	}
	return all
}

func TestPlayerWinRecordedOnce(t *testing.T) {
	rec := &countingRecorder{}
	cfg := config.DefaultPongConfig()
	m := NewMatch(cfg, WithSeed(5), WithRecorder(rec), WithResults(rec))
	if err := m.Start(config.DifficultyHard); err != nil {
		t.Fatal(err)
	}

	events := forcePlayerWin(t, m)

	if m.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, expected GameOver", m.Phase())
	}
	if n := countEvents[GameOverEvent](events); n != 1 {
		t.Errorf("got %d game over events, expected 1", n)
	}
	snap := m.Snapshot()
	if snap.Winner != SidePlayer || snap.PlayerScore != 5 {
		t.Errorf("snapshot winner/score = %s/%d", snap.Winner, snap.PlayerScore)
	}
	if !strings.Contains(snap.WinnerText(), cfg.Player.Name+" Wins!") {
		t.Errorf("WinnerText() = %q", snap.WinnerText())
	}

	for i := 0; i < 10; i++ {
		m.Step()
	}
	if len(rec.entries) != 1 {
		t.Fatalf("recorded %d entries, expected 1", len(rec.entries))
	}
	want := leaderboard.Entry{Name: cfg.Player.Name, Score: 5, Difficulty: "hard"}
	if rec.entries[0] != want {
		t.Errorf("entry = %+v, expected %+v", rec.entries[0], want)
	}
	if len(rec.results) != 1 || rec.results[0].Winner != SidePlayer || rec.results[0].Ticks == 0 {
		t.Errorf("results = %+v", rec.results)
	}

	// Restart keeps the difficulty and records the next win separately
	if err := m.Restart(); err != nil {
		t.Fatalf("Restart() error: %v", err)
	}
	s := m.State()
	if s.PlayerScore != 0 || s.AIScore != 0 || m.Params().Difficulty != "hard" {
		t.Errorf("restart state = %d:%d %s", s.PlayerScore, s.AIScore, m.Params().Difficulty)
	}
	forcePlayerWin(t, m)
	if len(rec.entries) != 2 {
		t.Errorf("recorded %d entries after second win, expected 2", len(rec.entries))
	}
}

func TestAIWinNotRecorded(t *testing.T) {
	rec := &countingRecorder{}
	m := NewMatch(config.DefaultPongConfig(), WithRecorder(rec), WithResults(rec))
	if err := m.Start(config.DifficultyEasy); err != nil {
		t.Fatal(err)
	}

	for m.Phase() == PhaseRunning {
		setUpAIPoint(&m.state, m.params)
		m.state.Slot = Slot{}
		m.Step()
	}

	if m.Snapshot().Winner != SideAI {
		t.Fatalf("winner = %s", m.Snapshot().Winner)
	}
	if m.Snapshot().WinnerText() != "🤖 AI Wins!" {
		t.Errorf("WinnerText() = %q", m.Snapshot().WinnerText())
	}
	if len(rec.entries) != 0 {
		t.Errorf("AI win should not be recorded, got %v", rec.entries)
	}
	if len(rec.results) != 1 || rec.results[0].Winner != SideAI || rec.results[0].AIScore != 5 {
		t.Errorf("results = %+v", rec.results)
	}
}

func TestRestartSeedsDiffer(t *testing.T) {
	m := NewMatch(config.DefaultPongConfig(), WithSeed(10))
	if err := m.Start(config.DifficultyEasy); err != nil {
		t.Fatal(err)
	}
	first := m.State().RNG

	forcePlayerWin(t, m)
	if err := m.Restart(); err != nil {
		t.Fatal(err)
	}
	if m.State().RNG == first {
		t.Error("each match should get its own seed")
	}
}

func TestSnapshotBeforeStart(t *testing.T) {
	m := NewMatch(config.DefaultPongConfig())
	snap := m.Snapshot()

	if snap.FieldW != 900 || snap.FieldH != 600 {
		t.Errorf("field = %vx%v", snap.FieldW, snap.FieldH)
	}
	if snap.Phase != PhaseNotStarted || snap.WinnerText() != "" {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestSnapshotPowerUp(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	s := NewState(p, 1)

	s.Slot = Slot{State: SlotSpawned, Kind: PowerUpBallSlow, X: 300, Y: 200}
	snap := s.Snapshot(p)
	if !snap.PowerUpSpawned || snap.PowerUpActive || snap.PowerUpX != 300 || snap.PickupRadius != p.PickupRadius {
		t.Errorf("spawned snapshot = %+v", snap)
	}

	s.activate(p)
	s.Clock += p.PowerUpTime / 4
	snap = s.Snapshot(p)
	if snap.PowerUpSpawned || !snap.PowerUpActive || snap.PowerUpKind != PowerUpBallSlow {
		t.Errorf("active snapshot = %+v", snap)
	}
	if snap.Remaining != p.PowerUpTime-p.PowerUpTime/4 {
		t.Errorf("Remaining = %v", snap.Remaining)
	}
}
