package audit

import (
	"github.com/KirkDiggler/fairdice/internal/models"
)

// SaveRevealInput holds the record to append
type SaveRevealInput struct {
	// Record is the completed round's artifacts
	Record *models.RevealRecord
}

// ListRevealsInput identifies the session to read back
type ListRevealsInput struct {
	// SessionID is the session whose trail is wanted
	SessionID string
}

// ListRevealsOutput carries the stored records
type ListRevealsOutput struct {
	// Records are in save order
	Records []*models.RevealRecord
}
