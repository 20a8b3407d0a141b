package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/KirkDiggler/fairdice/internal/models"
	"github.com/KirkDiggler/fairdice/internal/probability"
)

// HelpTable renders the pairwise win-probability table for the session's
// dice. It implements ui.HelpRenderer.
type HelpTable struct {
	out  io.Writer
	dice []models.Die
}

// NewHelpTable creates a help renderer over the given dice
func NewHelpTable(out io.Writer, dice []models.Die) *HelpTable {
	return &HelpTable{
		out:  out,
		dice: dice,
	}
}

// ShowHelp prints the probability that each row die beats each column die.
// The diagonal compares a die against itself and is parenthesized since
// both sides can never hold the same die.
func (h *HelpTable) ShowHelp() {
	fmt.Fprintln(h.out, "Probability of the win for the user:")

	table := tablewriter.NewWriter(h.out)

	header := []string{"User dice v"}
	for _, die := range h.dice {
		header = append(header, die.String())
	}
	table.SetHeader(header)

	matrix := probability.Matrix(h.dice)
	for i, die := range h.dice {
		row := []string{die.String()}
		for j := range h.dice {
			cell := strconv.FormatFloat(matrix[i][j], 'f', 4, 64)
			if i == j {
				cell = "- (" + cell + ")"
			}
			row = append(row, cell)
		}
		table.Append(row)
	}

	table.Render()
}
