package fairness

import (
	"github.com/KirkDiggler/fairdice/internal/models"
)

// RunDrawInput describes one draw
type RunDrawInput struct {
	// Range is the size of the draw space; must be at least 2
	Range int

	// Label announces what the draw decides
	Label string

	// PromptLabel is shown above the number menu
	PromptLabel string
}

// RunDrawOutput carries everything the draw produced
type RunDrawOutput struct {
	// Result is the completed round
	Result models.RoundResult

	// Commitment holds the key, value, and MAC that bound the computer,
	// retained so the round can be written to the audit trail
	Commitment models.Commitment
}
