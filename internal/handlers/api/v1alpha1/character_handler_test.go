package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/handlers/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/orchestrators/character"
	charactermock "github.com/anyventure/companion-api/internal/orchestrators/character/mock"
)

type CharacterHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharacter *charactermock.MockService
	handler       *v1alpha1.CharacterHandler
	ctx           context.Context
	testChar      *entities.Character
}

func TestCharacterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CharacterHandlerTestSuite))
}

func (s *CharacterHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacter = charactermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{
		CharacterService: s.mockCharacter,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.testChar = &entities.Character{
		ID:         "char_1",
		Name:       "Mira",
		PlayerID:   "player_1",
		SpellSlots: 10,
		Spells: []entities.CharacterSpell{
			{SpellID: "sp_1", Notes: "opener", AddedAt: 1700000000},
		},
		ExoticSchools: map[string]bool{entities.ExoticFey: true},
		Attributes:    map[string]int{"knowledge": 3},
		Skills:        map[string]int{"arcana": 2},
	}
}

func (s *CharacterHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CharacterHandlerTestSuite) TestCreateCharacter() {
	s.mockCharacter.EXPECT().
		CreateCharacter(s.ctx, &character.CreateCharacterInput{
			Name:       "Mira",
			PlayerID:   "player_1",
			Attributes: map[string]int{"knowledge": 3},
			Skills:     map[string]int{"arcana": 2},
		}).
		Return(&character.CreateCharacterOutput{Character: s.testChar}, nil)

	resp, err := s.handler.CreateCharacter(s.ctx, &apiv1alpha1.CreateCharacterRequest{
		Name:       "Mira",
		PlayerId:   "player_1",
		Attributes: map[string]int32{"knowledge": 3},
		Skills:     map[string]int32{"arcana": 2},
	})
	s.Require().NoError(err)
	s.Equal("char_1", resp.Character.Id)
	s.Equal(int32(10), resp.Character.SpellSlots)
	s.Equal(int32(1), resp.Character.SlotsUsed)
	s.Equal(int32(3), resp.Character.Attributes["knowledge"])
	s.Require().Len(resp.Character.Spells, 1)
	s.Equal("opener", resp.Character.Spells[0].Notes)
}

func (s *CharacterHandlerTestSuite) TestGetCharacter() {
	s.Run("requires id", func() {
		_, err := s.handler.GetCharacter(s.ctx, &apiv1alpha1.GetCharacterRequest{})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("found", func() {
		s.mockCharacter.EXPECT().
			GetCharacter(s.ctx, &character.GetCharacterInput{ID: "char_1"}).
			Return(&character.GetCharacterOutput{Character: s.testChar}, nil)

		resp, err := s.handler.GetCharacter(s.ctx, &apiv1alpha1.GetCharacterRequest{Id: "char_1"})
		s.Require().NoError(err)
		s.True(resp.Character.ExoticSchools[entities.ExoticFey])
	})
}

func (s *CharacterHandlerTestSuite) TestListCharacters() {
	s.mockCharacter.EXPECT().
		ListCharacters(s.ctx, &character.ListCharactersInput{PlayerID: "player_1"}).
		Return(&character.ListCharactersOutput{Characters: []*entities.Character{s.testChar}}, nil)

	resp, err := s.handler.ListCharacters(s.ctx, &apiv1alpha1.ListCharactersRequest{PlayerId: "player_1"})
	s.Require().NoError(err)
	s.Len(resp.Characters, 1)

	_, err = s.handler.ListCharacters(s.ctx, &apiv1alpha1.ListCharactersRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *CharacterHandlerTestSuite) TestLearnSpell_ErrorMapping() {
	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{
			name: "already known",
			err:  errors.AlreadyExists("spell already learned").WithMeta("character_id", "char_1"),
			code: codes.AlreadyExists,
		},
		{
			name: "no free slots",
			err:  errors.FailedPrecondition("no free spell slots").WithMeta("spell_slots", 10),
			code: codes.FailedPrecondition,
		},
		{
			name: "missing spell",
			err:  errors.NotFound("spell not found"),
			code: codes.NotFound,
		},
		{
			name: "locked exotic school",
			err:  errors.PermissionDenied("exotic school fiend is locked").WithMeta("school", "fiend"),
			code: codes.PermissionDenied,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCharacter.EXPECT().
				LearnSpell(s.ctx, &character.LearnSpellInput{CharacterID: "char_1", SpellID: "sp_9"}).
				Return(nil, tc.err)

			_, err := s.handler.LearnSpell(s.ctx, &apiv1alpha1.LearnSpellRequest{
				CharacterId: "char_1",
				SpellId:     "sp_9",
			})
			s.Require().Error(err)
			s.Equal(tc.code, status.Code(err))
		})
	}
}

func (s *CharacterHandlerTestSuite) TestLearnSpell_MetadataTravelsAsErrorInfo() {
	s.mockCharacter.EXPECT().
		LearnSpell(s.ctx, gomock.Any()).
		Return(nil, errors.PermissionDenied("exotic school fiend is locked").WithMeta("school", "fiend"))

	_, err := s.handler.LearnSpell(s.ctx, &apiv1alpha1.LearnSpellRequest{CharacterId: "char_1", SpellId: "sp_9"})
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Equal("fiend", info.GetMetadata()["school"])
}

func (s *CharacterHandlerTestSuite) TestLearnSpell_ValidationErrors() {
	_, err := s.handler.LearnSpell(s.ctx, &apiv1alpha1.LearnSpellRequest{SpellId: "sp_1"})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.LearnSpell(s.ctx, &apiv1alpha1.LearnSpellRequest{CharacterId: "char_1"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *CharacterHandlerTestSuite) TestForgetSpell() {
	s.mockCharacter.EXPECT().
		ForgetSpell(s.ctx, &character.ForgetSpellInput{CharacterID: "char_1", SpellID: "sp_1"}).
		Return(&character.ForgetSpellOutput{Character: &entities.Character{ID: "char_1", SpellSlots: 10}}, nil)

	resp, err := s.handler.ForgetSpell(s.ctx, &apiv1alpha1.ForgetSpellRequest{CharacterId: "char_1", SpellId: "sp_1"})
	s.Require().NoError(err)
	s.Equal(int32(0), resp.Character.SlotsUsed)
}

func (s *CharacterHandlerTestSuite) TestSetExoticAccess() {
	s.mockCharacter.EXPECT().
		SetExoticAccess(s.ctx, &character.SetExoticAccessInput{
			CharacterID: "char_1",
			School:      entities.ExoticFiend,
			Unlocked:    true,
		}).
		Return(&character.SetExoticAccessOutput{Character: &entities.Character{
			ID:            "char_1",
			ExoticSchools: map[string]bool{entities.ExoticFiend: true},
		}}, nil)

	resp, err := s.handler.SetExoticAccess(s.ctx, &apiv1alpha1.SetExoticAccessRequest{
		CharacterId: "char_1",
		School:      entities.ExoticFiend,
		Unlocked:    true,
	})
	s.Require().NoError(err)
	s.True(resp.Character.ExoticSchools[entities.ExoticFiend])
}
