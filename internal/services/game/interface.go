package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fairdice/internal/services/game Service

// Service drives one full game session: the first-move decision, die
// selection, one roll per side, and resolution
type Service interface {
	// PlaySession runs the session to completion or abandonment. An
	// abandoned session is a clean result, not an error.
	PlaySession(ctx context.Context, input *PlaySessionInput) (*PlaySessionOutput, error)
}
