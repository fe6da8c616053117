package pong

import "time"

// Snapshot is a read-only view of a match for front ends.
type Snapshot struct {
	FieldW, FieldH float64

	PaddleW, PaddleH float64
	PlayerX, PlayerY float64
	AIX, AIY         float64

	BallX, BallY, BallR float64

	PlayerScore int
	AIScore     int
	TargetScore int

	Phase      Phase
	Winner     Side
	Difficulty string
	PlayerName string
	PlayerTag  string

	// Pickup on the field, valid when PowerUpSpawned is true.
	PowerUpSpawned bool
	PowerUpX       float64
	PowerUpY       float64
	PickupRadius   float64

	// Running effect, valid when PowerUpActive is true.
	PowerUpActive bool
	PowerUpKind   PowerUpKind
	Remaining     time.Duration

	Tick uint64
}

// Snapshot builds a read-only view of s.
func (s MatchState) Snapshot(p Params) Snapshot {
	snap := Snapshot{
		FieldW:      p.FieldW,
		FieldH:      p.FieldH,
		PaddleW:     p.PaddleW,
		PaddleH:     s.PaddleH,
		PlayerX:     p.PlayerX,
		PlayerY:     s.PlayerY,
		AIX:         p.AIX,
		AIY:         s.AIY,
		BallX:       s.BallX,
		BallY:       s.BallY,
		BallR:       p.BallR,
		PlayerScore: s.PlayerScore,
		AIScore:     s.AIScore,
		TargetScore: p.TargetScore,
		Phase:       s.Phase,
		Winner:      s.Winner,
		Difficulty:  p.Difficulty,
		PlayerName:  p.PlayerName,
		PlayerTag:   p.PlayerTag,
		Tick:        s.Tick,
	}

	switch s.Slot.State {
	case SlotSpawned:
		snap.PowerUpSpawned = true
		snap.PowerUpKind = s.Slot.Kind
		snap.PowerUpX = s.Slot.X
		snap.PowerUpY = s.Slot.Y
		snap.PickupRadius = p.PickupRadius
	case SlotActive:
		snap.PowerUpActive = true
		snap.PowerUpKind = s.Slot.Kind
		snap.Remaining = max(s.Slot.ExpiresAt-s.Clock, 0)
	}
	return snap
}

// WinnerText returns the game-over headline, or "" while no one has won.
func (s Snapshot) WinnerText() string {
	switch s.Winner {
	case SidePlayer:
		return "🏆 " + s.PlayerName + " Wins!"
	case SideAI:
		return "🤖 AI Wins!"
	default:
		return ""
	}
}
