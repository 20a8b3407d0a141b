package audit

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fairdice/internal/repositories/audit Repository

import (
	"context"
)

// Repository stores the reveal trail of completed draws so a player can
// re-verify any round after the session is over
type Repository interface {
	// SaveReveal appends one completed round's artifacts
	SaveReveal(ctx context.Context, input *SaveRevealInput) error

	// ListReveals returns a session's records in the order they were saved
	ListReveals(ctx context.Context, input *ListRevealsInput) (*ListRevealsOutput, error)
}
