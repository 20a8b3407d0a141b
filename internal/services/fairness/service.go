package fairness

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/KirkDiggler/fairdice/internal/common/entropy"
	"github.com/KirkDiggler/fairdice/internal/crypto/commitment"
	"github.com/KirkDiggler/fairdice/internal/models"
	"github.com/KirkDiggler/fairdice/internal/ui"
)

// service implements the Service interface
type service struct {
	entropy   entropy.Source
	prompter  ui.Prompter
	presenter ui.Presenter
	help      ui.HelpRenderer
}

// NewService creates a new fairness service
func NewService(source entropy.Source, prompter ui.Prompter, presenter ui.Presenter, help ui.HelpRenderer) (*service, error) {
	if source == nil {
		return nil, ErrNilEntropySource
	}

	if prompter == nil {
		return nil, ErrNilPrompter
	}

	if presenter == nil {
		return nil, ErrNilPresenter
	}

	if help == nil {
		return nil, ErrNilHelpRenderer
	}

	return &service{
		entropy:   source,
		prompter:  prompter,
		presenter: presenter,
		help:      help,
	}, nil
}

// RunDraw executes the three protocol steps in their fixed order.
//
// Step 1 generates the key and value together and discloses only the MAC,
// binding the computer before it can learn anything. Step 2 collects the
// human's number; once it is recorded the commitment can no longer be redone.
// Step 3 discloses the value, the key, and the combined result, at which
// point the human can recompute the MAC and compare it with step 1.
func (s *service) RunDraw(ctx context.Context, input *RunDrawInput) (*RunDrawOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Range < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRange, input.Range)
	}

	// Step 1: commit
	key, err := s.entropy.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate commitment key: %w", err)
	}

	value, err := s.entropy.UniformInRange(input.Range)
	if err != nil {
		return nil, fmt.Errorf("failed to draw committed value: %w", err)
	}

	mac := commitment.Commit(key, value)

	s.presenter.ShowCommitment(&ui.ShowCommitmentInput{
		Label: input.Label,
		Range: input.Range,
		MAC:   mac,
	})

	// Step 2: the human's number. Help re-prompts without advancing; exit
	// aborts before the key is ever shown.
	var humanValue int
	for {
		choice, err := s.prompter.PromptNumber(&ui.NumberPromptInput{
			Label: input.PromptLabel,
			Range: input.Range,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read choice: %w", err)
		}

		if choice.Kind == ui.ChoiceExit {
			return nil, ErrRoundCancelled
		}

		if choice.Kind == ui.ChoiceHelp {
			s.help.ShowHelp()
			continue
		}

		humanValue = choice.Number
		break
	}

	// Step 3: reveal. The raw key is disclosed, never the MAC again.
	combined := (value + humanValue) % input.Range

	s.presenter.ShowReveal(&ui.ShowRevealInput{
		ComputerValue: value,
		KeyHex:        hex.EncodeToString(key),
		Combined:      combined,
		Range:         input.Range,
	})

	return &RunDrawOutput{
		Result: models.RoundResult{
			ComputerValue: value,
			HumanValue:    humanValue,
			Range:         input.Range,
			Combined:      combined,
		},
		Commitment: models.Commitment{
			SecretKey: key,
			Value:     value,
			Range:     input.Range,
			MAC:       mac,
		},
	}, nil
}
