package pong

import "github.com/vovakirdan/neon-pong/internal/core"

// PowerUpKind is a collectible effect.
type PowerUpKind int

const (
	PowerUpPaddleGrow PowerUpKind = iota // Taller paddles
	PowerUpBallSlow                      // Slower ball
	PowerUpBallFast                      // Faster ball
	powerUpCount                         // Sentinel for counting kinds
)

// PowerUpKinds lists every kind in spawn order.
func PowerUpKinds() []PowerUpKind {
	return []PowerUpKind{PowerUpPaddleGrow, PowerUpBallSlow, PowerUpBallFast}
}

// String returns the pickup label drawn on the field.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpPaddleGrow:
		return "paddle+"
	case PowerUpBallSlow:
		return "slowball"
	case PowerUpBallFast:
		return "fastball"
	default:
		return "?"
	}
}

// Effect returns the banner text shown while the power-up is active.
func (k PowerUpKind) Effect() string {
	switch k {
	case PowerUpPaddleGrow:
		return "Increase paddle size"
	case PowerUpBallSlow:
		return "Slow down ball"
	case PowerUpBallFast:
		return "Speed up ball"
	default:
		return ""
	}
}

// Color returns the neon color of the pickup and banner.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpPaddleGrow:
		return core.ColorCyan
	case PowerUpBallSlow:
		return core.ColorYellow
	case PowerUpBallFast:
		return core.ColorPink
	default:
		return core.ColorWhite
	}
}

// maybeSpawn places a random power-up while the slot is empty.
func (s *MatchState) maybeSpawn(p Params) (Event, bool) {
	if s.Slot.State != SlotEmpty {
		return nil, false
	}
	if s.RNG.Float64() >= p.SpawnChance {
		return nil, false
	}
	kind := PowerUpKind(s.RNG.Intn(int(powerUpCount)))
	x := s.RNG.Float64()*(p.FieldW*(p.SpawnMaxX-p.SpawnMinX)) + p.FieldW*p.SpawnMinX
	y := s.RNG.Float64()*(p.FieldH*(p.SpawnMaxY-p.SpawnMinY)) + p.FieldH*p.SpawnMinY
	s.Slot = Slot{State: SlotSpawned, Kind: kind, X: x, Y: y}
	return PowerUpEvent{Kind: kind, Change: PowerUpSpawned}, true
}

// activate applies the spawned power-up and starts its timer.
func (s *MatchState) activate(p Params) Event {
	kind := s.Slot.Kind
	f := p.factor(kind)
	slot := Slot{
		State:     SlotActive,
		Kind:      kind,
		ExpiresAt: s.Clock + p.PowerUpTime,
		Factor:    1,
	}

	switch kind {
	case PowerUpPaddleGrow:
		slot.RestoreH = s.PaddleH
		// Never taller than the field, so the clamp range stays valid.
		s.PaddleH = min(s.PaddleH*f, p.FieldH)
		s.clampPaddles(p)
	case PowerUpBallSlow, PowerUpBallFast:
		slot.Factor = f
		s.BallVX *= f
		s.BallVY *= f
	}

	s.Slot = slot
	return PowerUpEvent{Kind: kind, Change: PowerUpActivated}
}

// expire undoes the active effect exactly and empties the slot.
func (s *MatchState) expire(p Params) Event {
	kind := s.Slot.Kind

	switch kind {
	case PowerUpPaddleGrow:
		s.PaddleH = s.Slot.RestoreH
		s.clampPaddles(p)
	case PowerUpBallSlow, PowerUpBallFast:
		if s.Slot.Factor != 0 {
			s.BallVX /= s.Slot.Factor
			s.BallVY /= s.Slot.Factor
		}
	}

	s.Slot = Slot{}
	return PowerUpEvent{Kind: kind, Change: PowerUpExpired}
}

// cancel drops an active effect without reversing it. Used after a point,
// when the ball and paddles are reset anyway.
func (s *MatchState) cancel() (Event, bool) {
	if s.Slot.State != SlotActive {
		return nil, false
	}
	kind := s.Slot.Kind
	s.Slot = Slot{}
	return PowerUpEvent{Kind: kind, Change: PowerUpCancelled}, true
}
