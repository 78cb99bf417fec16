// Package communication defines the wire types shared by the game
// server and its clients.
package communication

import (
	"catan/game"
)

// CreateGameRequest starts a new game. Seed drives the dice; zero
// means the server picks one.
type CreateGameRequest struct {
	Seed uint64 `json:"seed,omitempty"`
}

// CreateGameResponse returns the key under which the new game is
// addressable.
type CreateGameResponse struct {
	Key      string        `json:"key"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// ActionRequest submits one action for the player claiming the turn.
type ActionRequest struct {
	Player game.PlayerID `json:"player"`
	Action game.Action   `json:"action"`
}

// ActionResponse reports whether the game accepted the action, plus
// the snapshot after it was applied (or refused).
type ActionResponse struct {
	Accepted bool          `json:"accepted"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// ErrorResponse carries a human-readable refusal.
type ErrorResponse struct {
	Error string `json:"error"`
}
