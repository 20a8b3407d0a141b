package game

import "errors"

// Define errors
var (
	ErrNilInput      = errors.New("input cannot be nil")
	ErrNotEnoughDice = errors.New("session needs at least two dice")

	ErrNilFairnessService = errors.New("fairness service cannot be nil")
	ErrNilEntropySource   = errors.New("entropy source cannot be nil")
	ErrNilPrompter        = errors.New("prompter cannot be nil")
	ErrNilPresenter       = errors.New("presenter cannot be nil")
	ErrNilHelpRenderer    = errors.New("help renderer cannot be nil")
	ErrNilAuditRepo       = errors.New("audit repository cannot be nil")
	ErrNilClock           = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator   = errors.New("UUID generator cannot be nil")
)
