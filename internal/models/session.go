package models

import "time"

// Side identifies one of the two players
type Side string

const (
	// SideComputer is the committing party
	SideComputer Side = "computer"

	// SideHuman is the verifying party
	SideHuman Side = "human"
)

// SessionOutcome represents how a session ended
type SessionOutcome string

const (
	// OutcomeComputerWon indicates the computer's throw was strictly greater
	OutcomeComputerWon SessionOutcome = "computer_won"

	// OutcomeHumanWon indicates the human's throw was strictly greater
	OutcomeHumanWon SessionOutcome = "human_won"

	// OutcomeTie indicates the throws stayed equal through every re-roll
	OutcomeTie SessionOutcome = "tie"

	// OutcomeAbandoned indicates the human exited before the session resolved
	OutcomeAbandoned SessionOutcome = "abandoned"
)

// Session is the state threaded through the game coordinator. Fields are
// filled in as the session advances; Outcome is set last.
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// Dice is the full set the players picked from
	Dice []Die

	// FirstMover is the side that picked its die first
	FirstMover Side

	// ComputerDie is the die held by the computer
	ComputerDie Die

	// HumanDie is the die held by the human
	HumanDie Die

	// ComputerThrow is the computer's throw value (a face value, not an index)
	ComputerThrow int

	// HumanThrow is the human's throw value
	HumanThrow int

	// Outcome is set once the session resolves or is abandoned
	Outcome SessionOutcome

	// StartedAt is when the session began
	StartedAt time.Time
}
