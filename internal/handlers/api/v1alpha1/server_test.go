package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/handlers/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/orchestrators/catalog"
	catalogmock "github.com/anyventure/companion-api/internal/orchestrators/catalog/mock"
	"github.com/anyventure/companion-api/internal/orchestrators/character"
	charactermock "github.com/anyventure/companion-api/internal/orchestrators/character/mock"
	dicemock "github.com/anyventure/companion-api/internal/orchestrators/dice/mock"
)

// ServerTestSuite runs the handlers over an in-memory gRPC connection
type ServerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCatalog   *catalogmock.MockService
	mockCharacter *charactermock.MockService
	mockDice      *dicemock.MockService
	server        *grpc.Server
	conn          *grpc.ClientConn
	ctx           context.Context
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockService(s.ctrl)
	s.mockCharacter = charactermock.NewMockService(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	catalogHandler, err := v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{CatalogService: s.mockCatalog})
	s.Require().NoError(err)
	characterHandler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{CharacterService: s.mockCharacter})
	s.Require().NoError(err)
	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{DiceService: s.mockDice})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	apiv1alpha1.RegisterCatalogServiceServer(s.server, catalogHandler)
	apiv1alpha1.RegisterCharacterServiceServer(s.server, characterHandler)
	apiv1alpha1.RegisterDiceServiceServer(s.server, diceHandler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
}

func (s *ServerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ServerTestSuite) TestListSpellsRoundTrip() {
	s.mockCatalog.EXPECT().
		ListSpells(gomock.Any(), &catalog.ListSpellsInput{SearchTerm: "bolt"}).
		Return(&catalog.ListSpellsOutput{Spells: []*catalog.SpellView{
			{Spell: &entities.Spell{
				ID:         "sp_bolt",
				Name:       "Bolt",
				School:     entities.SchoolPrimal,
				Subschool:  "elemental",
				DamageType: entities.DamageLightning,
				Components: []string{"verbal"},
			}},
		}}, nil)

	client := apiv1alpha1.NewCatalogServiceClient(s.conn)
	resp, err := client.ListSpells(s.ctx, &apiv1alpha1.ListSpellsRequest{SearchTerm: "bolt"})
	s.Require().NoError(err)
	s.Require().Len(resp.Spells, 1)
	s.Equal("Bolt", resp.Spells[0].Name)
	s.Equal("lightning", resp.Spells[0].DamageType)
	s.Equal([]string{"verbal"}, resp.Spells[0].Components)
}

func (s *ServerTestSuite) TestErrorCodesSurviveTransport() {
	s.mockCharacter.EXPECT().
		LearnSpell(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("no free spell slots").WithMeta("spell_slots", 10))

	client := apiv1alpha1.NewCharacterServiceClient(s.conn)
	_, err := client.LearnSpell(s.ctx, &apiv1alpha1.LearnSpellRequest{CharacterId: "char_1", SpellId: "sp_1"})
	s.Require().Error(err)
	s.Equal(codes.FailedPrecondition, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.True(errors.IsFailedPrecondition(converted))
	s.Equal("10", errors.GetMeta(converted)["spell_slots"])
}

func (s *ServerTestSuite) TestCharacterRoundTrip() {
	s.mockCharacter.EXPECT().
		GetCharacter(gomock.Any(), &character.GetCharacterInput{ID: "char_1"}).
		Return(&character.GetCharacterOutput{Character: &entities.Character{
			ID:            "char_1",
			Name:          "Mira",
			SpellSlots:    10,
			ExoticSchools: map[string]bool{entities.ExoticCosmic: true},
		}}, nil)

	client := apiv1alpha1.NewCharacterServiceClient(s.conn)
	resp, err := client.GetCharacter(s.ctx, &apiv1alpha1.GetCharacterRequest{Id: "char_1"})
	s.Require().NoError(err)
	s.Equal("Mira", resp.Character.Name)
	s.True(resp.Character.ExoticSchools[entities.ExoticCosmic])
}

func (s *ServerTestSuite) TestValidationHappensBeforeService() {
	client := apiv1alpha1.NewDiceServiceClient(s.conn)
	_, err := client.GetRollLog(s.ctx, &apiv1alpha1.GetRollLogRequest{})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ServerTestSuite) TestFieldErrorsReachClient() {
	client := apiv1alpha1.NewDiceServiceClient(s.conn)
	_, err := client.RollSkillCheck(s.ctx, &apiv1alpha1.RollSkillCheckRequest{})
	s.Require().Error(err)

	meta := errors.GetMeta(errors.FromGRPCError(err))
	s.Equal("is required", meta["field.character_id"])
	s.Equal("is required", meta["field.skill"])
}
