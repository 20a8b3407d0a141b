package fairness

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fairdice/internal/services/fairness Service

// Service runs one provably fair draw over an arbitrary range. The same
// protocol decides who moves first (range 2) and produces both throws
// (range = face count); only the range differs.
type Service interface {
	// RunDraw executes one commit, choose, reveal sequence and returns the
	// combined result together with the commitment artifacts
	RunDraw(ctx context.Context, input *RunDrawInput) (*RunDrawOutput, error)
}
