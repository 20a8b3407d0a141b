package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/fairdice/internal/models"
)

const (
	// MinDice is the smallest playable set; with fewer than 3 dice the
	// second mover has no real choice left
	MinDice = 3

	// FaceCount is the number of faces each die must have
	FaceCount = 6
)

// UsageExample is appended to configuration errors so the player can see a
// corrected invocation
const UsageExample = "example: fairdice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3"

// Define errors
var (
	ErrTooFewDice     = errors.New("too few dice")
	ErrWrongFaceCount = errors.New("wrong number of faces")
	ErrBadFace        = errors.New("face is not an integer")
)

// ParseDice builds the playable die set from the raw command-line arguments.
// Each argument is a comma-separated list of exactly six integers. Errors name
// the specific cause and the offending argument so the message can be shown
// as-is.
func ParseDice(args []string) ([]models.Die, error) {
	if len(args) < MinDice {
		return nil, fmt.Errorf("%w: need at least %d dice, got %d", ErrTooFewDice, MinDice, len(args))
	}

	dice := make([]models.Die, 0, len(args))
	for i, arg := range args {
		die, err := parseDie(arg)
		if err != nil {
			return nil, fmt.Errorf("die %d (%q): %w", i+1, arg, err)
		}
		dice = append(dice, die)
	}

	return dice, nil
}

func parseDie(arg string) (models.Die, error) {
	tokens := strings.Split(arg, ",")
	if len(tokens) != FaceCount {
		return models.Die{}, fmt.Errorf("%w: need exactly %d faces, got %d", ErrWrongFaceCount, FaceCount, len(tokens))
	}

	faces := make([]int, 0, FaceCount)
	for _, token := range tokens {
		face, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return models.Die{}, fmt.Errorf("%w: %q", ErrBadFace, token)
		}
		faces = append(faces, face)
	}

	return models.NewDie(faces), nil
}
