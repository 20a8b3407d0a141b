package ui

//go:generate mockgen -package=mocks -destination=mocks/mock_ui.go github.com/KirkDiggler/fairdice/internal/ui Prompter,Presenter,HelpRenderer

import (
	"github.com/KirkDiggler/fairdice/internal/models"
)

// ChoiceKind discriminates the closed set of menu selections
type ChoiceKind int

const (
	// ChoiceNumber is a numeric selection from the menu
	ChoiceNumber ChoiceKind = iota

	// ChoiceExit is the cancel meta-choice
	ChoiceExit

	// ChoiceHelp is the help meta-choice
	ChoiceHelp
)

// Choice is one parsed menu selection
type Choice struct {
	// Kind identifies which variant this choice is
	Kind ChoiceKind

	// Number holds the selection when Kind is ChoiceNumber
	Number int
}

// NumberPromptInput describes a numeric menu over [0, Range)
type NumberPromptInput struct {
	// Label is the line shown above the menu
	Label string

	// Range is the exclusive upper bound of valid selections
	Range int
}

// DiePromptInput describes a die-selection menu
type DiePromptInput struct {
	// Label is the line shown above the menu
	Label string

	// Dice are the selectable dice, in menu order
	Dice []models.Die
}

// Prompter collects the human's menu selections. Implementations must handle
// malformed or out-of-range entries themselves by re-prompting; a returned
// ChoiceNumber is always valid for the menu that was shown.
type Prompter interface {
	// PromptNumber asks for an integer in [0, Range), or exit/help
	PromptNumber(input *NumberPromptInput) (Choice, error)

	// PromptDie asks the human to pick one die; Number indexes into Dice
	PromptDie(input *DiePromptInput) (Choice, error)
}

// ShowCommitmentInput carries the step-1 disclosure
type ShowCommitmentInput struct {
	// Label announces what this draw decides
	Label string

	// Range is the size of the draw space
	Range int

	// MAC is the hex commitment disclosed before the human chooses
	MAC string
}

// ShowRevealInput carries the step-3 disclosure
type ShowRevealInput struct {
	// ComputerValue is the value that was committed to
	ComputerValue int

	// KeyHex is the hex-encoded secret key, shown only now
	KeyHex string

	// Combined is (ComputerValue + HumanValue) mod Range
	Combined int

	// Range is the size of the draw space
	Range int
}

// Presenter emits the game's artifacts. The order of calls is part of the
// fairness contract: the commitment must be shown before the human's choice
// is collected, and the key only after it.
type Presenter interface {
	// ShowCommitment announces a draw and discloses its MAC
	ShowCommitment(input *ShowCommitmentInput)

	// ShowReveal discloses the computer's value, the key, and the combined result
	ShowReveal(input *ShowRevealInput)

	// ShowFirstMover announces which side picks its die first
	ShowFirstMover(side models.Side)

	// ShowDieAssignment announces which die a side now holds
	ShowDieAssignment(side models.Side, die models.Die)

	// ShowThrow announces a side's throw value
	ShowThrow(side models.Side, throw int)

	// ShowOutcome announces the final result of a session
	ShowOutcome(session *models.Session)

	// ShowAbandoned announces that the session ended without a result
	ShowAbandoned()
}

// HelpRenderer draws the win-probability table in response to the help
// meta-choice
type HelpRenderer interface {
	ShowHelp()
}
