package audit

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/fairdice/internal/models"
)

// Define errors
var (
	ErrNilInput  = errors.New("input cannot be nil")
	ErrNilRecord = errors.New("record cannot be nil")
)

// memoryRepository implements the Repository interface in process memory.
// This is the default: the game needs no persistence, the trail just has to
// outlive the round it belongs to.
type memoryRepository struct {
	mu      sync.Mutex
	records map[string][]*models.RevealRecord
}

// NewMemory creates a new in-memory audit repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		records: make(map[string][]*models.RevealRecord),
	}
}

// SaveReveal appends a record to its session's trail
func (r *memoryRepository) SaveReveal(ctx context.Context, input *SaveRevealInput) error {
	if input == nil {
		return ErrNilInput
	}

	if input.Record == nil {
		return ErrNilRecord
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *input.Record
	r.records[copied.SessionID] = append(r.records[copied.SessionID], &copied)

	return nil
}

// ListReveals returns a session's records in save order
func (r *memoryRepository) ListReveals(ctx context.Context, input *ListRevealsInput) (*ListRevealsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.records[input.SessionID]
	records := make([]*models.RevealRecord, 0, len(stored))
	for _, rec := range stored {
		copied := *rec
		records = append(records, &copied)
	}

	return &ListRevealsOutput{Records: records}, nil
}
