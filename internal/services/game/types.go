package game

import (
	"github.com/KirkDiggler/fairdice/internal/models"
)

const (
	// firstMoveRange is the draw space for the opening guess round
	firstMoveRange = 2

	// defaultMaxTieRerolls is used when the configured bound is missing or
	// not positive; at least one roll attempt must always happen
	defaultMaxTieRerolls = 100
)

// Config holds configuration for the game service
type Config struct {
	// MaxTieRerolls bounds how many times tied throws are replayed before
	// the session is declared a tie. Without a bound, two dice with
	// identical face sets could re-roll forever.
	MaxTieRerolls int
}

// PlaySessionInput carries the validated die set
type PlaySessionInput struct {
	// Dice is the playable set, already validated upstream
	Dice []models.Die
}

// PlaySessionOutput carries the finished session
type PlaySessionOutput struct {
	// Session holds the final state, including the outcome
	Session *models.Session
}
