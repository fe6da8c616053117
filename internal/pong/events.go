package pong

// Event is something that happened during a tick. Presentation adapters
// (sound, banners, network) consume events; the simulation never calls them.
type Event interface {
	isEvent()
}

// Surface is what the ball bounced off.
type Surface int

const (
	SurfaceWall Surface = iota
	SurfacePaddle
)

// BounceEvent is emitted on a wall or paddle contact.
type BounceEvent struct {
	Surface Surface
	Side    Side // Paddle owner, SideNone for walls
}

// ScoreEvent is emitted when the ball leaves the field on one side.
type ScoreEvent struct {
	Scorer      Side
	PlayerScore int
	AIScore     int
}

// PowerUpChange describes a power-up slot transition.
type PowerUpChange int

const (
	PowerUpSpawned PowerUpChange = iota
	PowerUpActivated
	PowerUpExpired
	PowerUpCancelled // Effect dropped because a point was scored
)

// String returns the change name.
func (c PowerUpChange) String() string {
	switch c {
	case PowerUpSpawned:
		return "spawned"
	case PowerUpActivated:
		return "activated"
	case PowerUpExpired:
		return "expired"
	case PowerUpCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// PowerUpEvent is emitted on every power-up slot transition.
type PowerUpEvent struct {
	Kind   PowerUpKind
	Change PowerUpChange
}

// GameOverEvent is emitted exactly once, on the tick a side reaches the
// target score.
type GameOverEvent struct {
	Winner      Side
	PlayerScore int
	AIScore     int
}

func (BounceEvent) isEvent()   {}
func (ScoreEvent) isEvent()    {}
func (PowerUpEvent) isEvent()  {}
func (GameOverEvent) isEvent() {}
