package models

import "time"

// RevealRecord is the audit trail entry for one completed fair draw. It holds
// everything the human needs to re-verify the round after the session ends:
// recomputing the MAC over ComputerValue with the revealed key must reproduce
// the MAC that was disclosed before they chose.
type RevealRecord struct {
	// ID is the unique identifier for this record
	ID string

	// SessionID links the record to the session it was produced in
	SessionID string

	// Purpose is which step of the session the draw served
	Purpose RoundPurpose

	// Range is the size of the draw space
	Range int

	// ComputerValue is the value the computer committed to
	ComputerValue int

	// HumanValue is the number the human entered
	HumanValue int

	// Combined is (ComputerValue + HumanValue) mod Range
	Combined int

	// MAC is the hex authentication code disclosed before the human's choice
	MAC string

	// KeyHex is the hex-encoded secret key disclosed after it
	KeyHex string

	// CreatedAt is when the round completed
	CreatedAt time.Time
}
