package pong

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/neon-pong/internal/config"
)

func testParams(t *testing.T, difficulty string) Params {
	t.Helper()
	cfg := config.DefaultPongConfig()
	profile, err := cfg.Profile(difficulty)
	if err != nil {
		t.Fatalf("Profile(%q): %v", difficulty, err)
	}
	return NewParams(cfg, profile, 60)
}

// setUpPlayerPoint places the ball so the next tick crosses the right edge
// without touching the AI paddle.
func setUpPlayerPoint(s *MatchState, p Params) {
	s.AIY = 0
	s.BallY = p.FieldH - 3*p.BallR
	s.BallVY = 0
	s.BallX = p.FieldW - p.BallR - 1
	s.BallVX = 10
}

// setUpAIPoint places the ball so the next tick crosses the left edge
// without touching the player paddle.
func setUpAIPoint(s *MatchState, p Params) {
	s.PlayerY = 0
	s.BallY = p.FieldH - 3*p.BallR
	s.BallVY = 0
	s.BallX = p.BallR + 1
	s.BallVX = -10
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func TestStepMovesBallByVelocity(t *testing.T) {
	p := testParams(t, config.DifficultyMedium)
	p.SpawnChance = 0
	s := NewState(p, 42)

	if s.BallX != p.FieldW/2 || s.BallY != p.FieldH/2 {
		t.Fatalf("ball should start at the center, got (%v, %v)", s.BallX, s.BallY)
	}
	if s.BallVX != 7 {
		t.Fatalf("opening serve VX = %v, expected 7", s.BallVX)
	}
	vy := s.BallVY

	next, events := Step(s, Input{}, p)

	if next.BallX != p.FieldW/2+7 || next.BallY != p.FieldH/2+vy {
		t.Errorf("ball at (%v, %v), expected (%v, %v)", next.BallX, next.BallY, p.FieldW/2+7, p.FieldH/2+vy)
	}
	if len(events) != 0 {
		t.Errorf("no collision expected, got events %v", events)
	}
	if next.Tick != 1 || next.Clock != p.TickDuration {
		t.Errorf("tick/clock = %d/%v, expected 1/%v", next.Tick, next.Clock, p.TickDuration)
	}
}

func TestStepNoOpOutsideRunning(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)

	for _, phase := range []Phase{PhaseNotStarted, PhaseGameOver} {
		s := NewState(p, 1)
		s.Phase = phase
		next, events := Step(s, Input{PointerY: 10, HasPointer: true}, p)
		if next != s || events != nil {
			t.Errorf("Step in %s should not change anything", phase)
		}
	}
}

func TestWallBounce(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	p.SpawnChance = 0

	tests := []struct {
		name   string
		y, vy  float64
		wantY  float64
		wantVY float64
	}{
		{"top", p.BallR + 1, -5, p.BallR, 5},
		{"bottom", p.FieldH - p.BallR - 1, 5, p.FieldH - p.BallR, -5},
		{"no contact", p.FieldH / 2, 5, p.FieldH/2 + 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(p, 7)
			s.BallY = tc.y
			s.BallVY = tc.vy

			next, events := Step(s, Input{}, p)

			if next.BallY != tc.wantY || next.BallVY != tc.wantVY {
				t.Errorf("ball y/vy = %v/%v, expected %v/%v", next.BallY, next.BallVY, tc.wantY, tc.wantVY)
			}
			wantBounces := 1
			if tc.name == "no contact" {
				wantBounces = 0
			}
			if n := countEvents[BounceEvent](events); n != wantBounces {
				t.Errorf("got %d bounce events, expected %d", n, wantBounces)
			}
		})
	}
}

func TestPaddleCollisionSpin(t *testing.T) {
	p := testParams(t, config.DifficultyMedium)
	p.SpawnChance = 0

	t.Run("player", func(t *testing.T) {
		s := NewState(p, 3)
		s.PlayerY = 200
		s.BallX = p.PlayerX + p.PaddleW + p.BallR + 2
		s.BallY = 200 + s.PaddleH/2 + 10
		s.BallVX = -7
		s.BallVY = 0

		next, events := Step(s, Input{}, p)

		if next.BallVX != 7 {
			t.Errorf("VX = %v, expected 7 after player hit", next.BallVX)
		}
		if want := 10 * p.Spin; math.Abs(next.BallVY-want) > 1e-9 {
			t.Errorf("VY = %v, expected %v", next.BallVY, want)
		}
		if n := countEvents[BounceEvent](events); n != 1 {
			t.Errorf("got %d bounce events, expected 1", n)
		}
	})

	t.Run("ai", func(t *testing.T) {
		s := NewState(p, 3)
		s.AIY = 300
		s.BallX = p.AIX - p.BallR - 2
		s.BallY = 300 + s.PaddleH/2 - 20
		s.BallVX = 7
		s.BallVY = 0

		next, events := Step(s, Input{}, p)

		if next.BallVX != -7 {
			t.Errorf("VX = %v, expected -7 after AI hit", next.BallVX)
		}
		if want := -20 * p.Spin; math.Abs(next.BallVY-want) > 1e-9 {
			t.Errorf("VY = %v, expected %v", next.BallVY, want)
		}
		ev, ok := events[0].(BounceEvent)
		if !ok || ev.Surface != SurfacePaddle || ev.Side != SideAI {
			t.Errorf("first event = %#v, expected AI paddle bounce", events[0])
		}
	})
}

func TestPointerAppliedAndClamped(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	p.SpawnChance = 0

	tests := []struct {
		pointer float64
		want    float64
	}{
		{300, 300 - p.BasePaddleH/2},
		{-1000, 0},
		{5000, p.FieldH - p.BasePaddleH},
		{p.BasePaddleH / 2, 0},
	}

	for _, tc := range tests {
		s := NewState(p, 1)
		next, _ := Step(s, Input{PointerY: tc.pointer, HasPointer: true}, p)
		if next.PlayerY != tc.want {
			t.Errorf("pointer %v: PlayerY = %v, expected %v", tc.pointer, next.PlayerY, tc.want)
		}
	}

	s := NewState(p, 1)
	s.PlayerY = 123
	if next, _ := Step(s, Input{}, p); next.PlayerY != 123 {
		t.Errorf("without pointer input the paddle should stay, got %v", next.PlayerY)
	}
}

func TestPaddlesStayInBounds(t *testing.T) {
	p := testParams(t, config.DifficultyHard)
	p.SpawnChance = 0.05 // Exercise paddle growth often

	for seed := int64(1); seed <= 5; seed++ {
		s := NewState(p, seed)
		inputs := NewRNG(seed * 31)

		for tick := 0; tick < 3000; tick++ {
			in := Input{PointerY: inputs.Float64()*(p.FieldH+1000) - 500, HasPointer: inputs.Intn(3) > 0}
			s, _ = Step(s, in, p)

			maxY := p.FieldH - s.PaddleH
			if s.PlayerY < 0 || s.PlayerY > maxY {
				t.Fatalf("seed %d tick %d: PlayerY %v outside [0, %v]", seed, tick, s.PlayerY, maxY)
			}
			if s.AIY < 0 || s.AIY > maxY {
				t.Fatalf("seed %d tick %d: AIY %v outside [0, %v]", seed, tick, s.AIY, maxY)
			}
			if s.BallY < 0 || s.BallY > p.FieldH {
				t.Fatalf("seed %d tick %d: BallY %v left the field", seed, tick, s.BallY)
			}
			if s.Phase == PhaseGameOver {
				s = NewState(p, seed+int64(tick))
			}
		}
	}
}

func TestStepDeterminism(t *testing.T) {
	p := testParams(t, config.DifficultyMedium)
	p.SpawnChance = 0.02

	run := func() (MatchState, []Event) {
		s := NewState(p, 12345)
		inputs := NewRNG(99)
		var all []Event
		for i := 0; i < 2000 && s.Phase == PhaseRunning; i++ {
			var events []Event
			in := Input{PointerY: inputs.Float64() * p.FieldH, HasPointer: i%4 != 0}
			s, events = Step(s, in, p)
			all = append(all, events...)
		}
		return s, all
	}

	s1, ev1 := run()
	s2, ev2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed: states differ\n%+v\n%+v", s1, s2)
	}
	if !reflect.DeepEqual(ev1, ev2) {
		t.Errorf("Determinism failed: event streams differ (%d vs %d events)", len(ev1), len(ev2))
	}
	if countEvents[PowerUpEvent](ev1) == 0 {
		t.Error("expected at least one power-up event in a long run")
	}
}

func TestScoringServesTowardsLoser(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	p.SpawnChance = 0

	t.Run("player point", func(t *testing.T) {
		s := NewState(p, 5)
		setUpPlayerPoint(&s, p)
		next, events := Step(s, Input{}, p)

		if next.PlayerScore != 1 || next.AIScore != 0 {
			t.Fatalf("score = %d:%d, expected 1:0", next.PlayerScore, next.AIScore)
		}
		if next.BallX != p.FieldW/2 || next.BallY != p.FieldH/2 {
			t.Errorf("ball should be re-centered, got (%v, %v)", next.BallX, next.BallY)
		}
		if next.BallVX != p.BallBaseVX || math.Abs(next.BallVY) != p.BallBaseVY {
			t.Errorf("serve velocity = (%v, %v)", next.BallVX, next.BallVY)
		}
		ev, ok := events[0].(ScoreEvent)
		if !ok || ev.Scorer != SidePlayer || ev.PlayerScore != 1 {
			t.Errorf("first event = %#v, expected player score", events[0])
		}
	})

	t.Run("ai point", func(t *testing.T) {
		s := NewState(p, 5)
		setUpAIPoint(&s, p)
		next, _ := Step(s, Input{}, p)

		if next.AIScore != 1 || next.PlayerScore != 0 {
			t.Fatalf("score = %d:%d, expected 0:1", next.PlayerScore, next.AIScore)
		}
		if next.BallVX != -p.BallBaseVX {
			t.Errorf("serve VX = %v, expected %v", next.BallVX, -p.BallBaseVX)
		}
	})
}

func TestGameOverExactlyOnce(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	p.SpawnChance = 0
	s := NewState(p, 9)

	gameOvers := 0
	for i := 0; i < p.TargetScore; i++ {
		setUpPlayerPoint(&s, p)
		var events []Event
		s, events = Step(s, Input{}, p)
		gameOvers += countEvents[GameOverEvent](events)
	}

	if s.Phase != PhaseGameOver || s.Winner != SidePlayer {
		t.Fatalf("phase/winner = %s/%s, expected GameOver/player", s.Phase, s.Winner)
	}
	if gameOvers != 1 {
		t.Errorf("got %d game over events, expected 1", gameOvers)
	}

	frozen := s
	for i := 0; i < 100; i++ {
		var events []Event
		s, events = Step(s, Input{PointerY: 10, HasPointer: true}, p)
		if len(events) != 0 {
			t.Fatalf("events after game over: %v", events)
		}
	}
	if s != frozen {
		t.Error("state changed after game over")
	}
	if s.PlayerScore != p.TargetScore {
		t.Errorf("PlayerScore = %d, expected %d", s.PlayerScore, p.TargetScore)
	}
}

func TestAIDeadZone(t *testing.T) {
	p := testParams(t, config.DifficultyMedium)
	p.SpawnChance = 0

	s := NewState(p, 2)
	s.BallVY = 0
	s.AIY = s.BallY - s.PaddleH/2

	next, _ := Step(s, Input{}, p)
	if next.AIY != s.AIY {
		t.Errorf("AI inside the dead zone moved from %v to %v", s.AIY, next.AIY)
	}

	s.AIY = 0
	next, _ = Step(s, Input{}, p)
	if next.AIY != p.AISpeed {
		t.Errorf("AI far above the ball should move down by %v, got %v", p.AISpeed, next.AIY)
	}

	s.AIY = p.FieldH - s.PaddleH
	next, _ = Step(s, Input{}, p)
	if next.AIY != p.FieldH-s.PaddleH-p.AISpeed {
		t.Errorf("AI far below the ball should move up, got %v", next.AIY)
	}
}

func TestSpawnPlacement(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	p.SpawnChance = 1

	kinds := map[PowerUpKind]bool{}
	for seed := int64(0); seed < 200; seed++ {
		s := NewState(p, seed)
		next, events := Step(s, Input{}, p)

		if next.Slot.State != SlotSpawned {
			t.Fatalf("seed %d: slot state = %v, expected spawned", seed, next.Slot.State)
		}
		x, y := next.Slot.X, next.Slot.Y
		if x < 0.2*p.FieldW || x >= 0.8*p.FieldW || y < 0.15*p.FieldH || y >= 0.85*p.FieldH {
			t.Errorf("seed %d: spawn at (%v, %v) outside the spawn area", seed, x, y)
		}
		if n := countEvents[PowerUpEvent](events); n != 1 {
			t.Errorf("seed %d: got %d power-up events, expected 1", seed, n)
		}
		kinds[next.Slot.Kind] = true

		// A spawned slot blocks further spawns
		again, _ := Step(next, Input{}, p)
		if again.Slot.State == SlotSpawned && (again.Slot.X != x || again.Slot.Y != y) {
			t.Fatalf("seed %d: second spawn replaced the first", seed)
		}
	}
	if len(kinds) != len(PowerUpKinds()) {
		t.Errorf("expected every kind to spawn, got %v", kinds)
	}
}

func TestPickupActivates(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	p.SpawnChance = 0
	s := NewState(p, 4)
	s.BallVY = 0
	s.Slot = Slot{State: SlotSpawned, Kind: PowerUpBallFast, X: s.BallX + s.BallVX + 20, Y: s.BallY}

	next, events := Step(s, Input{}, p)

	if next.Slot.State != SlotActive {
		t.Fatalf("slot state = %v, expected active", next.Slot.State)
	}
	if want := p.BallBaseVX * p.FastFactor; math.Abs(next.BallVX-want) > 1e-9 {
		t.Errorf("VX = %v, expected %v", next.BallVX, want)
	}
	if next.Slot.ExpiresAt != p.PowerUpTime {
		t.Errorf("ExpiresAt = %v, expected %v", next.Slot.ExpiresAt, p.PowerUpTime)
	}
	found := false
	for _, ev := range events {
		if pe, ok := ev.(PowerUpEvent); ok && pe.Change == PowerUpActivated && pe.Kind == PowerUpBallFast {
			found = true
		}
	}
	if !found {
		t.Errorf("expected activation event, got %v", events)
	}
}

func TestPaddleGrowRoundTripThroughStep(t *testing.T) {
	cfg := config.DefaultPongConfig()
	p := NewParams(cfg, config.DifficultyProfile{Name: "slow", AISpeed: 1, BallBaseVX: 1, BallBaseVY: 0}, 60)
	p.SpawnChance = 0

	s := NewState(p, 11)
	before := s.PaddleH
	s.Slot = Slot{State: SlotSpawned, Kind: PowerUpPaddleGrow, X: s.BallX + 1, Y: s.BallY}

	s, _ = Step(s, Input{}, p)
	if s.Slot.State != SlotActive || s.PaddleH != before*p.GrowFactor {
		t.Fatalf("after pickup: slot %v, height %v", s.Slot.State, s.PaddleH)
	}

	expired := false
	for i := 0; i < 300 && !expired; i++ {
		var events []Event
		s, events = Step(s, Input{}, p)
		for _, ev := range events {
			if pe, ok := ev.(PowerUpEvent); ok && pe.Change == PowerUpExpired {
				expired = true
			}
		}
		if !expired && s.PaddleH != before*p.GrowFactor {
			t.Fatalf("tick %d: height changed before expiry", i)
		}
	}

	if !expired {
		t.Fatal("power-up never expired")
	}
	if s.Clock < p.PowerUpTime {
		t.Errorf("expired at %v, before the %v duration", s.Clock, p.PowerUpTime)
	}
	if s.PaddleH != before {
		t.Errorf("PaddleH = %v, expected exactly %v", s.PaddleH, before)
	}
	if s.Slot.State != SlotEmpty {
		t.Errorf("slot should be empty after expiry, got %v", s.Slot.State)
	}
}

func TestPowerUpRoundTrip(t *testing.T) {
	p := testParams(t, config.DifficultyMedium)

	for _, kind := range PowerUpKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			s := NewState(p, 8)
			s.BallVX, s.BallVY = 7.3, -4.1
			s.Clock = 2 * time.Second
			before := s

			s.Slot = Slot{State: SlotSpawned, Kind: kind}
			s.activate(p)
			if s.Slot.ExpiresAt != before.Clock+p.PowerUpTime {
				t.Errorf("ExpiresAt = %v", s.Slot.ExpiresAt)
			}
			s.Clock += p.PowerUpTime
			s.expire(p)

			if s.PaddleH != before.PaddleH {
				t.Errorf("PaddleH = %v, expected %v", s.PaddleH, before.PaddleH)
			}
			if math.Abs(s.BallVX-before.BallVX) > 1e-9 || math.Abs(s.BallVY-before.BallVY) > 1e-9 {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", s.BallVX, s.BallVY, before.BallVX, before.BallVY)
			}
			if s.Slot != (Slot{}) {
				t.Errorf("slot not cleared: %+v", s.Slot)
			}
		})
	}
}

func TestGrowReclampsPaddles(t *testing.T) {
	p := testParams(t, config.DifficultyMedium)
	s := NewState(p, 8)
	s.PlayerY = p.FieldH - s.PaddleH
	s.AIY = p.FieldH - s.PaddleH

	s.Slot = Slot{State: SlotSpawned, Kind: PowerUpPaddleGrow}
	s.activate(p)

	if s.PlayerY+s.PaddleH > p.FieldH || s.AIY+s.PaddleH > p.FieldH {
		t.Errorf("paddles overflow after grow: player %v ai %v height %v", s.PlayerY, s.AIY, s.PaddleH)
	}
}

func TestGrowCappedAtFieldHeight(t *testing.T) {
	p := testParams(t, config.DifficultyMedium)
	p.BasePaddleH = 500
	s := NewState(p, 8)
	s.PaddleH = p.BasePaddleH
	s.PlayerY = 50
	s.AIY = 100

	s.Slot = Slot{State: SlotSpawned, Kind: PowerUpPaddleGrow}
	s.activate(p)

	if s.PaddleH > p.FieldH {
		t.Fatalf("PaddleH = %v, want at most %v", s.PaddleH, p.FieldH)
	}
	for _, y := range []float64{s.PlayerY, s.AIY} {
		if y < 0 || y > p.FieldH-s.PaddleH {
			t.Errorf("paddle y %v out of [0, %v]", y, p.FieldH-s.PaddleH)
		}
	}

	s.Clock = s.Slot.ExpiresAt
	s.expire(p)
	if s.PaddleH != 500 {
		t.Errorf("PaddleH after expiry = %v, want 500", s.PaddleH)
	}
}

func TestScoreCancelsActivePowerUp(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	p.SpawnChance = 0
	s := NewState(p, 6)

	s.Slot = Slot{State: SlotSpawned, Kind: PowerUpPaddleGrow}
	s.activate(p)
	setUpAIPoint(&s, p)

	next, events := Step(s, Input{}, p)

	if next.PaddleH != p.BasePaddleH {
		t.Errorf("PaddleH = %v, expected base %v after a point", next.PaddleH, p.BasePaddleH)
	}
	if next.Slot.State != SlotEmpty {
		t.Errorf("active power-up should be cancelled, slot = %+v", next.Slot)
	}
	cancelled := false
	for _, ev := range events {
		if pe, ok := ev.(PowerUpEvent); ok && pe.Change == PowerUpCancelled {
			cancelled = true
		}
	}
	if !cancelled {
		t.Errorf("expected a cancel event, got %v", events)
	}
}

func TestScoreKeepsSpawnedPowerUp(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	p.SpawnChance = 0
	s := NewState(p, 6)
	s.Slot = Slot{State: SlotSpawned, Kind: PowerUpBallSlow, X: 400, Y: 100}
	setUpPlayerPoint(&s, p)

	next, _ := Step(s, Input{}, p)
	if next.Slot.State != SlotSpawned || next.Slot.X != 400 {
		t.Errorf("spawned pickup should survive a point, got %+v", next.Slot)
	}
}

func TestRNG(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed should give the same sequence")
		}
	}

	r := NewRNG(1)
	for i := 0; i < 10000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of [0, 1)", f)
		}
		if n := r.Intn(3); n < 0 || n >= 3 {
			t.Fatalf("Intn(3) = %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}
