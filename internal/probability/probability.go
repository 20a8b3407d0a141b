// Package probability computes pairwise win chances between dice. It backs
// the help table only; game outcomes come from real rolls.
package probability

import "github.com/KirkDiggler/fairdice/internal/models"

// Beats returns the probability that a roll of a exceeds a roll of b, given
// that the rolls differ. Tied face pairs carry no information about which die
// is stronger, so they are excluded rather than counted as losses; identical
// dice come out at exactly one half. A pair where every face ties has no
// decisive outcomes and is reported as one half as well. Exact over the
// face-pair grid, no sampling involved.
func Beats(a, b models.Die) float64 {
	wins := 0
	losses := 0

	for _, fa := range a.Faces() {
		for _, fb := range b.Faces() {
			if fa > fb {
				wins++
			}
			if fa < fb {
				losses++
			}
		}
	}

	decisive := wins + losses
	if decisive == 0 {
		return 0.5
	}

	return float64(wins) / float64(decisive)
}

// Matrix returns Beats for every ordered pair of the given dice;
// result[i][j] is the chance die i beats die j. The diagonal compares a die
// with itself and is reported as-is.
func Matrix(dice []models.Die) [][]float64 {
	matrix := make([][]float64, len(dice))
	for i := range dice {
		matrix[i] = make([]float64, len(dice))
		for j := range dice {
			matrix[i][j] = Beats(dice[i], dice[j])
		}
	}

	return matrix
}
