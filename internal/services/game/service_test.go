package game

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/fairdice/internal/common/clock/mocks"
	entropyMocks "github.com/KirkDiggler/fairdice/internal/common/entropy/mocks"
	uuidMocks "github.com/KirkDiggler/fairdice/internal/common/uuid/mocks"
	"github.com/KirkDiggler/fairdice/internal/models"
	auditRepo "github.com/KirkDiggler/fairdice/internal/repositories/audit"
	auditMocks "github.com/KirkDiggler/fairdice/internal/repositories/audit/mocks"
	"github.com/KirkDiggler/fairdice/internal/services/fairness"
	fairnessMocks "github.com/KirkDiggler/fairdice/internal/services/fairness/mocks"
	"github.com/KirkDiggler/fairdice/internal/ui"
	uiMocks "github.com/KirkDiggler/fairdice/internal/ui/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockFairness  *fairnessMocks.MockService
	mockEntropy   *entropyMocks.MockSource
	mockPrompter  *uiMocks.MockPrompter
	mockPresenter *uiMocks.MockPresenter
	mockHelp      *uiMocks.MockHelpRenderer
	mockAuditRepo *auditMocks.MockRepository
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	gameService   Service
	ctx           context.Context

	testTime time.Time
	testDice []models.Die

	savedReveals []*models.RevealRecord
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFairness = fairnessMocks.NewMockService(s.mockCtrl)
	s.mockEntropy = entropyMocks.NewMockSource(s.mockCtrl)
	s.mockPrompter = uiMocks.NewMockPrompter(s.mockCtrl)
	s.mockPresenter = uiMocks.NewMockPresenter(s.mockCtrl)
	s.mockHelp = uiMocks.NewMockHelpRenderer(s.mockCtrl)
	s.mockAuditRepo = auditMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-id").AnyTimes()

	// Non-transitive triple: each die beats the next with probability 5/9
	s.testDice = []models.Die{
		models.NewDie([]int{2, 2, 4, 4, 9, 9}),
		models.NewDie([]int{6, 8, 1, 1, 8, 6}),
		models.NewDie([]int{7, 5, 3, 7, 5, 3}),
	}

	s.savedReveals = nil
	s.mockAuditRepo.EXPECT().SaveReveal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *auditRepo.SaveRevealInput) error {
			s.savedReveals = append(s.savedReveals, input.Record)
			return nil
		}).AnyTimes()

	svc, err := NewService(nil, s.mockFairness, s.mockEntropy, s.mockPrompter, s.mockPresenter, s.mockHelp, s.mockAuditRepo, s.mockClock, s.mockUUID)
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func drawOutput(rangeSize, computerValue, humanValue int) *fairness.RunDrawOutput {
	combined := (computerValue + humanValue) % rangeSize

	return &fairness.RunDrawOutput{
		Result: models.RoundResult{
			ComputerValue: computerValue,
			HumanValue:    humanValue,
			Range:         rangeSize,
			Combined:      combined,
		},
		Commitment: models.Commitment{
			SecretKey: []byte("0123456789abcdef0123456789abcdef"),
			Value:     computerValue,
			Range:     rangeSize,
			MAC:       "test-mac",
		},
	}
}

func (s *GameServiceTestSuite) TestComputerFirstScenario() {
	// First move: computer committed 1, human guessed 0, combined 1.
	// The guess misses, so the computer picks its die first.
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(2, 1, 0), nil)
	s.mockEntropy.EXPECT().UniformInRange(3).Return(1, nil)

	// Human picks from the remaining two dice
	s.mockPrompter.EXPECT().PromptDie(gomock.Any()).
		DoAndReturn(func(input *ui.DiePromptInput) (ui.Choice, error) {
			s.Require().Len(input.Dice, 2)
			s.Equal("2,2,4,4,9,9", input.Dice[0].String())
			s.Equal("7,5,3,7,5,3", input.Dice[1].String())
			return ui.Choice{Kind: ui.ChoiceNumber, Number: 0}, nil
		})

	// Computer rolls first: 3 + 4 mod 6 = index 1 of 6,8,1,1,8,6 = 8.
	// Human rolls second: 0 + 5 mod 6 = index 5 of 2,2,4,4,9,9 = 9.
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 3, 4), nil)
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 0, 5), nil)

	s.mockPresenter.EXPECT().ShowFirstMover(models.SideComputer)
	s.mockPresenter.EXPECT().ShowDieAssignment(models.SideComputer, s.testDice[1])
	s.mockPresenter.EXPECT().ShowDieAssignment(models.SideHuman, s.testDice[0])
	s.mockPresenter.EXPECT().ShowThrow(models.SideComputer, 8)
	s.mockPresenter.EXPECT().ShowThrow(models.SideHuman, 9)
	s.mockPresenter.EXPECT().ShowOutcome(gomock.Any())

	output, err := s.gameService.PlaySession(s.ctx, &PlaySessionInput{Dice: s.testDice})
	s.Require().NoError(err)

	session := output.Session
	s.Equal(models.SideComputer, session.FirstMover)
	s.Equal("6,8,1,1,8,6", session.ComputerDie.String())
	s.Equal("2,2,4,4,9,9", session.HumanDie.String())
	s.Equal(8, session.ComputerThrow)
	s.Equal(9, session.HumanThrow)
	s.Equal(models.OutcomeHumanWon, session.Outcome)

	// Every completed round left a verifiable audit record
	s.Require().Len(s.savedReveals, 3)
	s.Equal(models.RoundPurposeFirstMove, s.savedReveals[0].Purpose)
	s.Equal(models.RoundPurposeComputerRoll, s.savedReveals[1].Purpose)
	s.Equal(models.RoundPurposeHumanRoll, s.savedReveals[2].Purpose)
	s.Equal([]int{1, 1, 5}, []int{
		s.savedReveals[0].Combined,
		s.savedReveals[1].Combined,
		s.savedReveals[2].Combined,
	})
}

func (s *GameServiceTestSuite) TestHumanMovesFirstOnCorrectGuess() {
	// Human guessed 1, computer committed 0, combined 1: guess matches
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(2, 0, 1), nil)

	// Human picks from the full set first
	s.mockPrompter.EXPECT().PromptDie(gomock.Any()).
		DoAndReturn(func(input *ui.DiePromptInput) (ui.Choice, error) {
			s.Require().Len(input.Dice, 3)
			return ui.Choice{Kind: ui.ChoiceNumber, Number: 2}, nil
		})
	s.mockEntropy.EXPECT().UniformInRange(2).Return(0, nil)

	// Human rolls first as first mover
	humanRoll := s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 2, 0), nil)
	computerRoll := s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 1, 0), nil)
	gomock.InOrder(humanRoll, computerRoll)

	s.mockPresenter.EXPECT().ShowFirstMover(models.SideHuman)
	s.mockPresenter.EXPECT().ShowDieAssignment(models.SideHuman, s.testDice[2])
	s.mockPresenter.EXPECT().ShowDieAssignment(models.SideComputer, s.testDice[0])
	// Human: index 2 of 7,5,3,7,5,3 = 3. Computer: index 1 of 2,2,4,4,9,9 = 2.
	s.mockPresenter.EXPECT().ShowThrow(models.SideHuman, 3)
	s.mockPresenter.EXPECT().ShowThrow(models.SideComputer, 2)
	s.mockPresenter.EXPECT().ShowOutcome(gomock.Any())

	output, err := s.gameService.PlaySession(s.ctx, &PlaySessionInput{Dice: s.testDice})
	s.Require().NoError(err)

	session := output.Session
	s.Equal(models.SideHuman, session.FirstMover)
	s.Equal("7,5,3,7,5,3", session.HumanDie.String())
	s.Equal("2,2,4,4,9,9", session.ComputerDie.String())
	s.Equal(models.OutcomeHumanWon, session.Outcome)
}

func (s *GameServiceTestSuite) TestCancelledAtFirstMove() {
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(nil, fairness.ErrRoundCancelled)
	s.mockPresenter.EXPECT().ShowAbandoned()

	output, err := s.gameService.PlaySession(s.ctx, &PlaySessionInput{Dice: s.testDice})
	s.Require().NoError(err, "abandonment is a clean result")

	session := output.Session
	s.Equal(models.OutcomeAbandoned, session.Outcome)
	s.Zero(session.ComputerDie.FaceCount(), "no die was assigned")
	s.Zero(session.HumanDie.FaceCount())
	s.Empty(s.savedReveals, "no reveal exists for a cancelled round")
}

func (s *GameServiceTestSuite) TestCancelledAtDieSelection() {
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(2, 0, 0), nil)
	s.mockPresenter.EXPECT().ShowFirstMover(models.SideHuman)

	s.mockPrompter.EXPECT().PromptDie(gomock.Any()).Return(ui.Choice{Kind: ui.ChoiceExit}, nil)
	s.mockPresenter.EXPECT().ShowAbandoned()

	output, err := s.gameService.PlaySession(s.ctx, &PlaySessionInput{Dice: s.testDice})
	s.Require().NoError(err)

	session := output.Session
	s.Equal(models.OutcomeAbandoned, session.Outcome)
	s.Zero(session.HumanDie.FaceCount())
	s.Zero(session.ComputerDie.FaceCount())
}

func (s *GameServiceTestSuite) TestHelpAtDieSelectionReprompts() {
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(2, 0, 0), nil)
	s.mockPresenter.EXPECT().ShowFirstMover(models.SideHuman)

	first := s.mockPrompter.EXPECT().PromptDie(gomock.Any()).Return(ui.Choice{Kind: ui.ChoiceHelp}, nil)
	help := s.mockHelp.EXPECT().ShowHelp()
	second := s.mockPrompter.EXPECT().PromptDie(gomock.Any()).Return(ui.Choice{Kind: ui.ChoiceNumber, Number: 0}, nil)
	gomock.InOrder(first, help, second)

	s.mockEntropy.EXPECT().UniformInRange(2).Return(0, nil)

	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 0, 0), nil)
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 1, 0), nil)

	s.mockPresenter.EXPECT().ShowDieAssignment(gomock.Any(), gomock.Any()).Times(2)
	s.mockPresenter.EXPECT().ShowThrow(gomock.Any(), gomock.Any()).Times(2)
	s.mockPresenter.EXPECT().ShowOutcome(gomock.Any())

	_, err := s.gameService.PlaySession(s.ctx, &PlaySessionInput{Dice: s.testDice})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestTieRerollWithSharedFaces() {
	tieDice := []models.Die{
		models.NewDie([]int{1, 2, 3, 4, 5, 6}),
		models.NewDie([]int{1, 2, 3, 4, 5, 6}),
		models.NewDie([]int{6, 5, 4, 3, 2, 1}),
	}

	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(2, 1, 0), nil)
	s.mockEntropy.EXPECT().UniformInRange(3).Return(0, nil)
	s.mockPrompter.EXPECT().PromptDie(gomock.Any()).Return(ui.Choice{Kind: ui.ChoiceNumber, Number: 0}, nil)

	// Both dice are 1..6, so equal indexes tie. First pair ties at face 3;
	// the replay resolves 6 vs 1.
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 2, 0), nil)
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 0, 2), nil)
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 5, 0), nil)
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 0, 0), nil)

	s.mockPresenter.EXPECT().ShowFirstMover(models.SideComputer)
	s.mockPresenter.EXPECT().ShowDieAssignment(gomock.Any(), gomock.Any()).Times(2)
	s.mockPresenter.EXPECT().ShowThrow(gomock.Any(), gomock.Any()).Times(4)
	s.mockPresenter.EXPECT().ShowOutcome(gomock.Any())

	output, err := s.gameService.PlaySession(s.ctx, &PlaySessionInput{Dice: tieDice})
	s.Require().NoError(err)

	session := output.Session
	s.Equal(6, session.ComputerThrow)
	s.Equal(1, session.HumanThrow)
	s.Equal(models.OutcomeComputerWon, session.Outcome)

	// Four rolls plus the first-move draw were audited
	s.Len(s.savedReveals, 5)
}

func (s *GameServiceTestSuite) TestPersistentTieIsDeclared() {
	svc, err := NewService(&Config{MaxTieRerolls: 2}, s.mockFairness, s.mockEntropy, s.mockPrompter, s.mockPresenter, s.mockHelp, s.mockAuditRepo, s.mockClock, s.mockUUID)
	s.Require().NoError(err)

	tieDice := []models.Die{
		models.NewDie([]int{5, 5, 5, 5, 5, 5}),
		models.NewDie([]int{5, 5, 5, 5, 5, 5}),
		models.NewDie([]int{1, 2, 3, 4, 5, 6}),
	}

	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(2, 1, 0), nil)
	s.mockEntropy.EXPECT().UniformInRange(3).Return(0, nil)
	s.mockPrompter.EXPECT().PromptDie(gomock.Any()).Return(ui.Choice{Kind: ui.ChoiceNumber, Number: 0}, nil)

	// Two attempts, both tie on the all-fives dice
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 0, 0), nil).Times(4)

	s.mockPresenter.EXPECT().ShowFirstMover(models.SideComputer)
	s.mockPresenter.EXPECT().ShowDieAssignment(gomock.Any(), gomock.Any()).Times(2)
	s.mockPresenter.EXPECT().ShowThrow(gomock.Any(), gomock.Any()).Times(4)
	s.mockPresenter.EXPECT().ShowOutcome(gomock.Any())

	output, err := svc.PlaySession(s.ctx, &PlaySessionInput{Dice: tieDice})
	s.Require().NoError(err)
	s.Equal(models.OutcomeTie, output.Session.Outcome)
}

func (s *GameServiceTestSuite) TestNonPositiveRerollBoundIsDefaulted() {
	// A zero or negative bound would skip the roll loop and declare a tie
	// with no throws; the constructor falls back to the default instead.
	svc, err := NewService(&Config{MaxTieRerolls: 0}, s.mockFairness, s.mockEntropy, s.mockPrompter, s.mockPresenter, s.mockHelp, s.mockAuditRepo, s.mockClock, s.mockUUID)
	s.Require().NoError(err)

	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(2, 1, 0), nil)
	s.mockEntropy.EXPECT().UniformInRange(3).Return(0, nil)
	s.mockPrompter.EXPECT().PromptDie(gomock.Any()).Return(ui.Choice{Kind: ui.ChoiceNumber, Number: 0}, nil)

	// Computer: index 4 of 2,2,4,4,9,9 = 9. Human: index 0 of 6,8,1,1,8,6 = 6.
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 4, 0), nil)
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 0, 0), nil)

	s.mockPresenter.EXPECT().ShowFirstMover(models.SideComputer)
	s.mockPresenter.EXPECT().ShowDieAssignment(gomock.Any(), gomock.Any()).Times(2)
	s.mockPresenter.EXPECT().ShowThrow(gomock.Any(), gomock.Any()).Times(2)
	s.mockPresenter.EXPECT().ShowOutcome(gomock.Any())

	output, err := svc.PlaySession(s.ctx, &PlaySessionInput{Dice: s.testDice})
	s.Require().NoError(err)

	session := output.Session
	s.Equal(9, session.ComputerThrow)
	s.Equal(6, session.HumanThrow)
	s.Equal(models.OutcomeComputerWon, session.Outcome)
}

func (s *GameServiceTestSuite) TestAuditFailureDoesNotStopTheGame() {
	svc, err := NewService(nil, s.mockFairness, s.mockEntropy, s.mockPrompter, s.mockPresenter, s.mockHelp, s.failingAuditRepo(), s.mockClock, s.mockUUID)
	s.Require().NoError(err)

	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(2, 1, 0), nil)
	s.mockEntropy.EXPECT().UniformInRange(3).Return(0, nil)
	s.mockPrompter.EXPECT().PromptDie(gomock.Any()).Return(ui.Choice{Kind: ui.ChoiceNumber, Number: 0}, nil)
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 4, 0), nil)
	s.mockFairness.EXPECT().RunDraw(s.ctx, gomock.Any()).Return(drawOutput(6, 0, 0), nil)

	s.mockPresenter.EXPECT().ShowFirstMover(gomock.Any())
	s.mockPresenter.EXPECT().ShowDieAssignment(gomock.Any(), gomock.Any()).Times(2)
	s.mockPresenter.EXPECT().ShowThrow(gomock.Any(), gomock.Any()).Times(2)
	s.mockPresenter.EXPECT().ShowOutcome(gomock.Any())

	output, err := svc.PlaySession(s.ctx, &PlaySessionInput{Dice: s.testDice})
	s.Require().NoError(err)
	s.NotEqual(models.OutcomeAbandoned, output.Session.Outcome)
}

func (s *GameServiceTestSuite) failingAuditRepo() *auditMocks.MockRepository {
	repo := auditMocks.NewMockRepository(s.mockCtrl)
	repo.EXPECT().SaveReveal(gomock.Any(), gomock.Any()).
		Return(auditRepo.ErrNilRecord).AnyTimes()
	return repo
}

func (s *GameServiceTestSuite) TestPlaySessionValidatesInput() {
	_, err := s.gameService.PlaySession(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.gameService.PlaySession(s.ctx, &PlaySessionInput{Dice: s.testDice[:1]})
	s.ErrorIs(err, ErrNotEnoughDice)
}

func (s *GameServiceTestSuite) TestNewServiceValidatesDependencies() {
	_, err := NewService(nil, nil, s.mockEntropy, s.mockPrompter, s.mockPresenter, s.mockHelp, s.mockAuditRepo, s.mockClock, s.mockUUID)
	s.ErrorIs(err, ErrNilFairnessService)

	_, err = NewService(nil, s.mockFairness, nil, s.mockPrompter, s.mockPresenter, s.mockHelp, s.mockAuditRepo, s.mockClock, s.mockUUID)
	s.ErrorIs(err, ErrNilEntropySource)

	_, err = NewService(nil, s.mockFairness, s.mockEntropy, s.mockPrompter, s.mockPresenter, s.mockHelp, nil, s.mockClock, s.mockUUID)
	s.ErrorIs(err, ErrNilAuditRepo)

	_, err = NewService(nil, s.mockFairness, s.mockEntropy, s.mockPrompter, s.mockPresenter, s.mockHelp, s.mockAuditRepo, nil, s.mockUUID)
	s.ErrorIs(err, ErrNilClock)

	_, err = NewService(nil, s.mockFairness, s.mockEntropy, s.mockPrompter, s.mockPresenter, s.mockHelp, s.mockAuditRepo, s.mockClock, nil)
	s.ErrorIs(err, ErrNilUUIDGenerator)
}
