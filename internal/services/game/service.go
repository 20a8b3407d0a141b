package game

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/fairdice/internal/common/clock"
	"github.com/KirkDiggler/fairdice/internal/common/entropy"
	"github.com/KirkDiggler/fairdice/internal/common/uuid"
	"github.com/KirkDiggler/fairdice/internal/models"
	auditRepo "github.com/KirkDiggler/fairdice/internal/repositories/audit"
	"github.com/KirkDiggler/fairdice/internal/services/fairness"
	"github.com/KirkDiggler/fairdice/internal/ui"
)

// service implements the Service interface
type service struct {
	config    *Config
	fairness  fairness.Service
	entropy   entropy.Source
	prompter  ui.Prompter
	presenter ui.Presenter
	help      ui.HelpRenderer
	auditRepo auditRepo.Repository
	clock     clock.Clock
	uuid      uuid.UUID
}

// NewService creates a new game service
func NewService(cfg *Config, fairnessService fairness.Service, source entropy.Source, prompter ui.Prompter, presenter ui.Presenter, help ui.HelpRenderer, auditRepository auditRepo.Repository, clk clock.Clock, uuidGen uuid.UUID) (*service, error) {
	// Set default values if not provided
	if cfg == nil || cfg.MaxTieRerolls < 1 {
		cfg = &Config{
			MaxTieRerolls: defaultMaxTieRerolls,
		}
	}

	if fairnessService == nil {
		return nil, ErrNilFairnessService
	}

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

	if auditRepository == nil {
		return nil, ErrNilAuditRepo
	}

	if clk == nil {
		return nil, ErrNilClock
	}

	if uuidGen == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		config:    cfg,
		fairness:  fairnessService,
		entropy:   source,
		prompter:  prompter,
		presenter: presenter,
		help:      help,
		auditRepo: auditRepository,
		clock:     clk,
		uuid:      uuidGen,
	}, nil
}

// PlaySession runs the session state machine: DeterminingFirstMove,
// SelectingDice, one Rolling step per side, Resolved. A cancel at any
// human-choice point abandons the whole session; nothing from an aborted
// round is reused.
func (s *service) PlaySession(ctx context.Context, input *PlaySessionInput) (*PlaySessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Dice) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughDice, len(input.Dice))
	}

	session := &models.Session{
		ID:        s.uuid.NewUUID(),
		Dice:      input.Dice,
		StartedAt: s.clock.Now(),
	}

	firstMover, err := s.determineFirstMove(ctx, session)
	if err != nil {
		return s.finish(session, err)
	}

	session.FirstMover = firstMover
	s.presenter.ShowFirstMover(firstMover)

	if err := s.selectDice(ctx, session); err != nil {
		return s.finish(session, err)
	}

	if err := s.rollUntilResolved(ctx, session); err != nil {
		return s.finish(session, err)
	}

	s.presenter.ShowOutcome(session)

	return &PlaySessionOutput{Session: session}, nil
}

// determineFirstMove runs the opening range-2 draw. The human's entered
// number doubles as their guess of the combined bit; guessing it right wins
// them the first move.
func (s *service) determineFirstMove(ctx context.Context, session *models.Session) (models.Side, error) {
	output, err := s.fairness.RunDraw(ctx, &fairness.RunDrawInput{
		Range:       firstMoveRange,
		Label:       "Let's determine who makes the first move.",
		PromptLabel: "Try to guess my selection.",
	})
	if err != nil {
		return "", err
	}

	s.saveReveal(ctx, session, models.RoundPurposeFirstMove, output)

	if output.Result.Combined == output.Result.HumanValue {
		return models.SideHuman, nil
	}

	return models.SideComputer, nil
}

// selectDice lets the first mover pick from the full set and the other side
// from the remainder, so the two sides can never hold the same die
func (s *service) selectDice(ctx context.Context, session *models.Session) error {
	available := make([]models.Die, len(session.Dice))
	copy(available, session.Dice)

	sides := []models.Side{session.FirstMover, otherSide(session.FirstMover)}
	for _, side := range sides {
		var picked int
		if side == models.SideHuman {
			index, err := s.promptDie(available)
			if err != nil {
				return err
			}
			picked = index
		} else {
			index, err := s.entropy.UniformInRange(len(available))
			if err != nil {
				return fmt.Errorf("failed to pick a die: %w", err)
			}
			picked = index
		}

		die := available[picked]
		available = append(available[:picked], available[picked+1:]...)

		if side == models.SideHuman {
			session.HumanDie = die
		} else {
			session.ComputerDie = die
		}
		s.presenter.ShowDieAssignment(side, die)
	}

	return nil
}

func (s *service) promptDie(available []models.Die) (int, error) {
	for {
		choice, err := s.prompter.PromptDie(&ui.DiePromptInput{
			Label: "Choose your die.",
			Dice:  available,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to read die choice: %w", err)
		}

		switch choice.Kind {
		case ui.ChoiceExit:
			return 0, fairness.ErrRoundCancelled
		case ui.ChoiceHelp:
			s.help.ShowHelp()
			continue
		default:
			return choice.Number, nil
		}
	}
}

// rollUntilResolved plays one roll per side, first mover first, replaying
// both on a tie up to the configured bound
func (s *service) rollUntilResolved(ctx context.Context, session *models.Session) error {
	sides := []models.Side{session.FirstMover, otherSide(session.FirstMover)}

	for attempt := 0; attempt < s.config.MaxTieRerolls; attempt++ {
		for _, side := range sides {
			if err := s.rollFor(ctx, session, side); err != nil {
				return err
			}
		}

		if session.ComputerThrow > session.HumanThrow {
			session.Outcome = models.OutcomeComputerWon
			return nil
		}
		if session.HumanThrow > session.ComputerThrow {
			session.Outcome = models.OutcomeHumanWon
			return nil
		}
		// Tied: both rolls are replayed with fresh commitments
	}

	session.Outcome = models.OutcomeTie
	return nil
}

// rollFor runs one fair draw for the side's die and resolves the combined
// result through the die's face ordering. The draw picks a face index; the
// throw value is whatever that position holds.
func (s *service) rollFor(ctx context.Context, session *models.Session, side models.Side) error {
	die := session.ComputerDie
	purpose := models.RoundPurposeComputerRoll
	label := "It's time for my roll."
	if side == models.SideHuman {
		die = session.HumanDie
		purpose = models.RoundPurposeHumanRoll
		label = "It's time for your roll."
	}

	output, err := s.fairness.RunDraw(ctx, &fairness.RunDrawInput{
		Range:       die.FaceCount(),
		Label:       label,
		PromptLabel: fmt.Sprintf("Add your number modulo %d.", die.FaceCount()),
	})
	if err != nil {
		return err
	}

	s.saveReveal(ctx, session, purpose, output)

	throw := die.Face(output.Result.Combined)
	if side == models.SideHuman {
		session.HumanThrow = throw
	} else {
		session.ComputerThrow = throw
	}
	s.presenter.ShowThrow(side, throw)

	return nil
}

// saveReveal appends the round to the audit trail. Failures here never stop
// the game; the disclosure already happened on screen.
func (s *service) saveReveal(ctx context.Context, session *models.Session, purpose models.RoundPurpose, output *fairness.RunDrawOutput) {
	err := s.auditRepo.SaveReveal(ctx, &auditRepo.SaveRevealInput{
		Record: &models.RevealRecord{
			ID:            s.uuid.NewUUID(),
			SessionID:     session.ID,
			Purpose:       purpose,
			Range:         output.Result.Range,
			ComputerValue: output.Result.ComputerValue,
			HumanValue:    output.Result.HumanValue,
			Combined:      output.Result.Combined,
			MAC:           output.Commitment.MAC,
			KeyHex:        hex.EncodeToString(output.Commitment.SecretKey),
			CreatedAt:     s.clock.Now(),
		},
	})
	if err != nil {
		log.Printf("failed to save reveal record: %v", err)
	}
}

// finish converts a cancellation into a clean abandoned session and passes
// every other error through
func (s *service) finish(session *models.Session, err error) (*PlaySessionOutput, error) {
	if errors.Is(err, fairness.ErrRoundCancelled) {
		session.Outcome = models.OutcomeAbandoned
		s.presenter.ShowAbandoned()
		return &PlaySessionOutput{Session: session}, nil
	}

	return nil, err
}

func otherSide(side models.Side) models.Side {
	if side == models.SideComputer {
		return models.SideHuman
	}

	return models.SideComputer
}
