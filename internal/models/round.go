package models

// RoundPurpose identifies which step of a session a fair draw belongs to
type RoundPurpose string

const (
	// RoundPurposeFirstMove is the opening range-2 draw that decides who picks a die first
	RoundPurposeFirstMove RoundPurpose = "first_move"

	// RoundPurposeComputerRoll is the computer's throw
	RoundPurposeComputerRoll RoundPurpose = "computer_roll"

	// RoundPurposeHumanRoll is the human's throw
	RoundPurposeHumanRoll RoundPurpose = "human_roll"
)

// Commitment binds the computer to a value before the human has chosen.
// The key and value are held as raw first-class fields; the MAC is derived
// from them exactly once and never used as a stand-in for the key when the
// round is revealed.
type Commitment struct {
	// SecretKey is the fresh 256-bit MAC key, generated for this commitment only
	SecretKey []byte

	// Value is the computer's contribution, uniform in [0, Range)
	Value int

	// Range is the size of the value space
	Range int

	// MAC is the hex-encoded authentication code over Value keyed by SecretKey
	MAC string
}

// RoundResult is the outcome of one completed fair draw
type RoundResult struct {
	// ComputerValue is the committed value the computer revealed
	ComputerValue int

	// HumanValue is the number the human entered
	HumanValue int

	// Range is the size of the draw space
	Range int

	// Combined is (ComputerValue + HumanValue) mod Range
	Combined int
}
