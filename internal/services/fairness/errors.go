package fairness

import "errors"

// Define errors
var (
	// ErrRoundCancelled signals the human chose exit before the reveal; the
	// key is never disclosed and no result is produced. Deliberate
	// termination, not a failure.
	ErrRoundCancelled = errors.New("round cancelled")

	ErrNilInput     = errors.New("input cannot be nil")
	ErrInvalidRange = errors.New("range must be at least 2")

	ErrNilEntropySource = errors.New("entropy source cannot be nil")
	ErrNilPrompter      = errors.New("prompter cannot be nil")
	ErrNilPresenter     = errors.New("presenter cannot be nil")
	ErrNilHelpRenderer  = errors.New("help renderer cannot be nil")
)
