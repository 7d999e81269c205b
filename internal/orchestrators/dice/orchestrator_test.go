package dice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/orchestrators/dice"
	"github.com/anyventure/companion-api/internal/pkg/clock"
	"github.com/anyventure/companion-api/internal/pkg/idgen"
	characterrepo "github.com/anyventure/companion-api/internal/repositories/character"
	charactermock "github.com/anyventure/companion-api/internal/repositories/character/mock"
	"github.com/anyventure/companion-api/internal/repositories/rolllog"
	rolllogmock "github.com/anyventure/companion-api/internal/repositories/rolllog/mock"
	"github.com/anyventure/companion-api/internal/testutils"
)

// scriptedRoller returns fixed faces and records the last request
type scriptedRoller struct {
	faces     []int
	lastCount int
	lastSize  int
	err       error
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.lastCount, r.lastSize = 1, size
	if r.err != nil {
		return 0, r.err
	}
	return r.faces[0], nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	r.lastCount, r.lastSize = count, size
	if r.err != nil {
		return nil, r.err
	}
	return r.faces[:count], nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRollLog   *rolllogmock.MockRepository
	mockCharacter *charactermock.MockRepository
	roller        *scriptedRoller
	clock         *clock.Fixed
	orchestrator  dice.Service
	ctx           context.Context
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRollLog = rolllogmock.NewMockRepository(s.ctrl)
	s.mockCharacter = charactermock.NewMockRepository(s.ctrl)
	s.roller = &scriptedRoller{faces: []int{3, 7, 5, 2}}
	s.clock = &clock.Fixed{At: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()

	o, err := dice.NewOrchestrator(&dice.Config{
		RollLogRepo:   s.mockRollLog,
		CharacterRepo: s.mockCharacter,
		IDGenerator:   idgen.NewSequential(idgen.PrefixRoll),
		Roller:        s.roller,
		Clock:         s.clock,
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectAppend() {
	s.mockRollLog.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolllog.AppendInput) (*rolllog.AppendOutput, error) {
			return &rolllog.AppendOutput{Log: &rolllog.RollLog{
				CharacterID: input.CharacterID,
				Rolls:       []rolllog.SkillRoll{input.Roll},
			}}, nil
		})
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollSkillCheckKeepsHighestDie() {
	s.expectAppend()

	out, err := s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{
		CharacterID: "char_1",
		Skill:       "stealth",
		Talent:      3,
		Level:       2,
	})
	s.Require().NoError(err)

	s.Equal(3, s.roller.lastCount)
	s.Equal(8, s.roller.lastSize)
	s.Equal("3d8", out.Roll.Notation)
	s.Equal([]int32{3, 7, 5}, out.Roll.Dice)
	s.Equal(int32(7), out.Roll.Result)
	s.Equal(int32(8), out.Roll.DieSize)
	s.Equal("roll_1", out.Roll.RollID)
	s.Equal("stealth check", out.Roll.Description)
	s.Equal(s.clock.At, out.Roll.RolledAt)
	s.Len(out.Log.Rolls, 1)
}

func (s *OrchestratorTestSuite) TestRollSkillCheckTierModifier() {
	testCases := []struct {
		name     string
		modifier int
		size     int
	}{
		{name: "upgraded", modifier: 1, size: 10},
		{name: "downgraded", modifier: -1, size: 6},
		{name: "base", modifier: 0, size: 8},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectAppend()

			out, err := s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{
				CharacterID:  "char_1",
				Skill:        "might",
				Talent:       1,
				Level:        2,
				TierModifier: tc.modifier,
			})
			s.Require().NoError(err)
			s.Equal(tc.size, s.roller.lastSize)
			s.Equal(int32(tc.size), out.Roll.DieSize)
		})
	}
}

func (s *OrchestratorTestSuite) TestRollSkillCheckWithoutTalent() {
	s.expectAppend()

	out, err := s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{
		CharacterID: "char_1",
		Skill:       "stealth",
		Talent:      0,
		Level:       3,
	})
	s.Require().NoError(err)
	s.Equal("No dice", out.Roll.Notation)
	s.Empty(out.Roll.Dice)
	s.Equal(int32(0), out.Roll.Result)
	s.Zero(s.roller.lastCount)
}

func (s *OrchestratorTestSuite) TestRollSkillCheckNegativeLevelIsAutomaticOne() {
	s.expectAppend()

	out, err := s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{
		CharacterID: "char_1",
		Skill:       "stealth",
		Talent:      2,
		Level:       -1,
	})
	s.Require().NoError(err)
	s.Equal("1", out.Roll.Notation)
	s.Equal(int32(1), out.Roll.Result)
	s.Empty(out.Roll.Dice)
}

func (s *OrchestratorTestSuite) TestRollSkillCheckFromSheet() {
	char := testutils.CharacterFixture("char_1", "Wren")
	char.Attributes = map[string]int{"finesse": 2}
	char.Skills = map[string]int{"stealth": 4}

	s.mockCharacter.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.expectAppend()

	out, err := s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{
		CharacterID: "char_1",
		Skill:       "stealth",
		FromSheet:   true,
	})
	s.Require().NoError(err)
	s.Equal("2d12", out.Roll.Notation)
	s.Equal(int32(7), out.Roll.Result)
}

func (s *OrchestratorTestSuite) TestRollSkillCheckFromSheetUnknownSkill() {
	_, err := s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{
		CharacterID: "char_1",
		Skill:       "juggling",
		FromSheet:   true,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollSkillCheckValidation() {
	_, err := s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{Skill: "stealth"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{CharacterID: "char_1"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollSkillCheckRejectsOutOfRangeDice() {
	testCases := []struct {
		name   string
		talent int
		level  int
		field  string
	}{
		{name: "huge talent", talent: 5_000_000, level: 2, field: "field.talent"},
		{name: "negative talent", talent: -1, level: 2, field: "field.talent"},
		{name: "level above table", talent: 2, level: 8, field: "field.level"},
		{name: "level below table", talent: 2, level: -3, field: "field.level"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{
				CharacterID: "char_1",
				Skill:       "stealth",
				Talent:      tc.talent,
				Level:       tc.level,
			})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(errors.GetMeta(err), tc.field)
		})
	}
}

func (s *OrchestratorTestSuite) TestRollSkillCheckAcceptsTableEdges() {
	s.expectAppend()

	out, err := s.orchestrator.RollSkillCheck(s.ctx, &dice.RollSkillCheckInput{
		CharacterID: "char_1",
		Skill:       "stealth",
		Talent:      entities.MaxTalent,
		Level:       entities.MinSkillLevel,
	})
	s.Require().NoError(err)
	s.Equal(int32(1), out.Roll.Result)
}

func (s *OrchestratorTestSuite) TestGetRollLog() {
	s.mockRollLog.EXPECT().
		Get(s.ctx, rolllog.GetInput{CharacterID: "char_1"}).
		Return(nil, errors.NotFound("roll log not found"))

	_, err := s.orchestrator.GetRollLog(s.ctx, &dice.GetRollLogInput{CharacterID: "char_1"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestClearRollLog() {
	s.mockRollLog.EXPECT().
		Clear(s.ctx, rolllog.ClearInput{CharacterID: "char_1"}).
		Return(&rolllog.ClearOutput{RollsDeleted: 4}, nil)

	out, err := s.orchestrator.ClearRollLog(s.ctx, &dice.ClearRollLogInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(int32(4), out.RollsDeleted)

	_, err = s.orchestrator.ClearRollLog(s.ctx, &dice.ClearRollLogInput{})
	s.True(errors.IsInvalidArgument(err))
}
