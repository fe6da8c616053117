// Package pong implements the Neon Pong simulation: a mouse-controlled
// player paddle on the left, a jittery AI paddle on the right, and a single
// power-up slot. The core is the pure Step function; Match wraps it with the
// start/restart lifecycle and leaderboard recording.
package pong

import (
	"math"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Input is the external input applied at the start of a tick.
type Input struct {
	PointerY   float64 // Pointer position in field coordinates
	HasPointer bool    // False keeps the paddle where it is
}

// Step advances a running match by one tick and returns the new state and
// the events produced. Outside PhaseRunning it returns s unchanged.
func Step(s MatchState, in Input, p Params) (MatchState, []Event) {
	if s.Phase != PhaseRunning {
		return s, nil
	}
	var events []Event

	// Pointer
	if in.HasPointer {
		s.PlayerY = core.ClampF(in.PointerY-s.PaddleH/2, 0, p.FieldH-s.PaddleH)
	}

	// Power-up timer
	if s.Slot.State == SlotActive && s.Clock >= s.Slot.ExpiresAt {
		events = append(events, s.expire(p))
	}

	// Ball motion
	s.BallX += s.BallVX
	s.BallY += s.BallVY

	// Walls
	if s.BallY-p.BallR < 0 {
		s.BallY = p.BallR
		s.BallVY = -s.BallVY
		events = append(events, BounceEvent{Surface: SurfaceWall})
	}
	if s.BallY+p.BallR > p.FieldH {
		s.BallY = p.FieldH - p.BallR
		s.BallVY = -s.BallVY
		events = append(events, BounceEvent{Surface: SurfaceWall})
	}

	// Paddles
	if s.BallX-p.BallR <= p.PlayerX+p.PaddleW && s.overlapsPaddle(s.PlayerY, p) {
		s.BallVX = math.Abs(s.BallVX)
		s.BallVY += (s.BallY - (s.PlayerY + s.PaddleH/2)) * p.Spin
		events = append(events, BounceEvent{Surface: SurfacePaddle, Side: SidePlayer})
	}
	if s.BallX+p.BallR >= p.AIX && s.overlapsPaddle(s.AIY, p) {
		s.BallVX = -math.Abs(s.BallVX)
		s.BallVY += (s.BallY - (s.AIY + s.PaddleH/2)) * p.Spin
		events = append(events, BounceEvent{Surface: SurfacePaddle, Side: SideAI})
	}

	// Pickup
	if s.Slot.State == SlotSpawned {
		dist := math.Hypot(s.BallX-s.Slot.X, s.BallY-s.Slot.Y)
		if dist < p.BallR+p.PickupRadius {
			events = append(events, s.activate(p))
		}
	}

	// Scoring
	scorer := SideNone
	switch {
	case s.BallX-p.BallR < 0:
		scorer = SideAI
		s.AIScore++
	case s.BallX+p.BallR > p.FieldW:
		scorer = SidePlayer
		s.PlayerScore++
	}
	if scorer != SideNone {
		events = append(events, ScoreEvent{Scorer: scorer, PlayerScore: s.PlayerScore, AIScore: s.AIScore})

		if s.PlayerScore >= p.TargetScore || s.AIScore >= p.TargetScore {
			s.Phase = PhaseGameOver
			s.Winner = scorer
			events = append(events, GameOverEvent{Winner: scorer, PlayerScore: s.PlayerScore, AIScore: s.AIScore})
			s.advanceClock(p)
			return s, events
		}

		s.resetBall(p, scorer)
		if ev, ok := s.cancel(); ok {
			events = append(events, ev)
		}
		s.PaddleH = p.BasePaddleH
		s.clampPaddles(p)
	}

	s.moveAI(p)

	if ev, ok := s.maybeSpawn(p); ok {
		events = append(events, ev)
	}

	s.advanceClock(p)
	return s, events
}

// overlapsPaddle reports whether the ball vertically overlaps a paddle whose
// top edge is at y.
func (s *MatchState) overlapsPaddle(y float64, p Params) bool {
	return s.BallY+p.BallR >= y && s.BallY-p.BallR <= y+s.PaddleH
}

// moveAI steps the AI paddle towards a jittered ball position. It holds
// still inside the dead zone, so it never overshoots by more than AISpeed.
func (s *MatchState) moveAI(p Params) {
	center := s.AIY + s.PaddleH/2
	target := s.BallY + s.RNG.Float64()*2*p.AIJitter - p.AIJitter

	if center < target-p.AIDeadZone {
		s.AIY += p.AISpeed
	} else if center > target+p.AIDeadZone {
		s.AIY -= p.AISpeed
	}
	s.AIY = core.ClampF(s.AIY, 0, p.FieldH-s.PaddleH)
}

func (s *MatchState) advanceClock(p Params) {
	s.Clock += p.TickDuration
	s.Tick++
}
