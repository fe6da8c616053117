package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/render"
)

// Message types. Client to server: start, restart, pointer.
// Server to client: hello, frame, scores, error.
const (
	MsgHello   = "hello"
	MsgFrame   = "frame"
	MsgScores  = "scores"
	MsgError   = "error"
	MsgStart   = "start"
	MsgRestart = "restart"
	MsgPointer = "pointer"
)

// Envelope wraps every message on the wire.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"`
}

// Hello is sent once after connecting.
type Hello struct {
	FieldW       float64  `json:"fieldW"`
	FieldH       float64  `json:"fieldH"`
	Difficulties []string `json:"difficulties"`
	Player       string   `json:"player"`
	TickRate     int      `json:"tickRate"`
}

// Frame is one rendered tick.
type Frame struct {
	Tick        uint64           `json:"tick"`
	Phase       string           `json:"phase"`
	PlayerScore int              `json:"playerScore"`
	AIScore     int              `json:"aiScore"`
	Winner      string           `json:"winner,omitempty"`
	Sounds      []string         `json:"sounds,omitempty"`
	Commands    []render.Command `json:"commands"`
}

// Scores carries the formatted leaderboard.
type Scores struct {
	Entries []leaderboard.Entry `json:"entries"`
	Lines   []string            `json:"lines"`
}

// ErrorMessage reports a rejected command.
type ErrorMessage struct {
	Message string `json:"message"`
}

// Start asks for a new match.
type Start struct {
	Difficulty string `json:"difficulty"`
}

// Pointer is the pointer position in field coordinates.
type Pointer struct {
	Y float64 `json:"y"`
}

// Encode wraps payload in an envelope of type t. A nil payload sends no body.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, errors.New("session: empty message type")
	}
	env := Envelope{T: t}
	if payload != nil {
		pb, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("session: cannot encode %s: %w", t, err)
		}
		env.P = pb
	}
	return json.Marshal(env)
}

// DecodeEnvelope parses the outer envelope.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, errors.New("session: empty message")
	}
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Envelope{}, fmt.Errorf("session: malformed envelope: %w", err)
	}
	if env.T == "" {
		return Envelope{}, errors.New("session: missing message type")
	}
	return env, nil
}

// DecodePayload parses the payload of env as T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("session: empty payload for %q", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("session: malformed %s payload: %w", env.T, err)
	}
	return out, nil
}
