package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/fairdice/internal/models"
	"github.com/KirkDiggler/fairdice/internal/ui"
)

// Config holds configuration for the console
type Config struct {
	// Input overrides the line source, used by tests. Defaults to stdin.
	Input io.Reader

	// Output overrides where the game writes. Defaults to stdout.
	Output io.Writer
}

// Console implements ui.Prompter and ui.Presenter over a line-oriented
// terminal. Malformed menu entries are reported and re-prompted here; the
// state machines above never see them.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a new console
func New(cfg *Config) *Console {
	in := io.Reader(os.Stdin)
	out := io.Writer(os.Stdout)

	if cfg != nil && cfg.Input != nil {
		in = cfg.Input
	}
	if cfg != nil && cfg.Output != nil {
		out = cfg.Output
	}

	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// PromptNumber shows the numeric menu for [0, Range) and reads until it gets
// a valid selection, exit, or help
func (c *Console) PromptNumber(input *ui.NumberPromptInput) (ui.Choice, error) {
	for {
		if input.Label != "" {
			fmt.Fprintln(c.out, input.Label)
		}
		for i := 0; i < input.Range; i++ {
			fmt.Fprintf(c.out, "%d - %d\n", i, i)
		}
		c.printMetaChoices()

		line, err := c.readLine()
		if err != nil {
			return ui.Choice{}, err
		}

		if choice, ok := parseMetaChoice(line); ok {
			return choice, nil
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n >= input.Range {
			fmt.Fprintf(c.out, "Invalid selection %q, pick a number between 0 and %d.\n", line, input.Range-1)
			continue
		}

		return ui.Choice{Kind: ui.ChoiceNumber, Number: n}, nil
	}
}

// PromptDie shows the die menu and reads until it gets a valid selection,
// exit, or help
func (c *Console) PromptDie(input *ui.DiePromptInput) (ui.Choice, error) {
	for {
		if input.Label != "" {
			fmt.Fprintln(c.out, input.Label)
		}
		for i, die := range input.Dice {
			fmt.Fprintf(c.out, "%d - %s\n", i, die)
		}
		c.printMetaChoices()

		line, err := c.readLine()
		if err != nil {
			return ui.Choice{}, err
		}

		if choice, ok := parseMetaChoice(line); ok {
			return choice, nil
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n >= len(input.Dice) {
			fmt.Fprintf(c.out, "Invalid selection %q, pick a number between 0 and %d.\n", line, len(input.Dice)-1)
			continue
		}

		return ui.Choice{Kind: ui.ChoiceNumber, Number: n}, nil
	}
}

func (c *Console) printMetaChoices() {
	fmt.Fprintln(c.out, "X - exit")
	fmt.Fprintln(c.out, "? - help")
	fmt.Fprint(c.out, "Your selection: ")
}

func parseMetaChoice(line string) (ui.Choice, bool) {
	switch strings.ToUpper(line) {
	case "X":
		return ui.Choice{Kind: ui.ChoiceExit}, true
	case "?":
		return ui.Choice{Kind: ui.ChoiceHelp}, true
	}

	return ui.Choice{}, false
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(c.scanner.Text()), nil
}

// ShowCommitment announces the draw and its binding MAC
func (c *Console) ShowCommitment(input *ui.ShowCommitmentInput) {
	if input.Label != "" {
		fmt.Fprintln(c.out, input.Label)
	}
	fmt.Fprintf(c.out, "I selected a random value in the range 0..%d (HMAC=%s).\n", input.Range-1, input.MAC)
}

// ShowReveal discloses the committed value and the key, then the combined
// result
func (c *Console) ShowReveal(input *ui.ShowRevealInput) {
	fmt.Fprintf(c.out, "My number is %d (KEY=%s).\n", input.ComputerValue, input.KeyHex)
	fmt.Fprintf(c.out, "The fair number generation result is %d (mod %d).\n", input.Combined, input.Range)
}

// ShowFirstMover announces who picks a die first
func (c *Console) ShowFirstMover(side models.Side) {
	if side == models.SideHuman {
		fmt.Fprintln(c.out, "You make the first move.")
		return
	}
	fmt.Fprintln(c.out, "I make the first move.")
}

// ShowDieAssignment announces a side's die
func (c *Console) ShowDieAssignment(side models.Side, die models.Die) {
	if side == models.SideHuman {
		fmt.Fprintf(c.out, "You choose the [%s] die.\n", die)
		return
	}
	fmt.Fprintf(c.out, "I choose the [%s] die.\n", die)
}

// ShowThrow announces a side's throw value
func (c *Console) ShowThrow(side models.Side, throw int) {
	if side == models.SideHuman {
		fmt.Fprintf(c.out, "Your roll result is %d.\n", throw)
		return
	}
	fmt.Fprintf(c.out, "My roll result is %d.\n", throw)
}

// ShowOutcome announces the final result
func (c *Console) ShowOutcome(session *models.Session) {
	switch session.Outcome {
	case models.OutcomeHumanWon:
		fmt.Fprintf(c.out, "You win (%d > %d)!\n", session.HumanThrow, session.ComputerThrow)
	case models.OutcomeComputerWon:
		fmt.Fprintf(c.out, "I win (%d > %d).\n", session.ComputerThrow, session.HumanThrow)
	case models.OutcomeTie:
		fmt.Fprintf(c.out, "It's a tie (%d = %d).\n", session.ComputerThrow, session.HumanThrow)
	}
}

// ShowAbandoned announces a cancelled session
func (c *Console) ShowAbandoned() {
	fmt.Fprintln(c.out, "Game cancelled.")
}
