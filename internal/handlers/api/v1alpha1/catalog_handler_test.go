package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/engine"
	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/handlers/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/orchestrators/catalog"
	catalogmock "github.com/anyventure/companion-api/internal/orchestrators/catalog/mock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *catalogmock.MockService
	handler     *v1alpha1.CatalogHandler
	ctx         context.Context
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{
		CatalogService: s.mockCatalog,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogHandlerTestSuite) TestListSpells() {
	s.mockCatalog.EXPECT().
		ListSpells(s.ctx, &catalog.ListSpellsInput{
			CharacterID: "char_1",
			School:      "black",
			Filter:      "energy <= 3",
		}).
		Return(&catalog.ListSpellsOutput{
			Spells: []*catalog.SpellView{
				{Spell: &entities.Spell{ID: "sp_2", Name: "Wither", School: "black", Subschool: "necromancy", Energy: 2}, Learned: true},
				{Spell: &entities.Spell{ID: "sp_1", Name: "Drain", School: "black", Subschool: "necromancy", Energy: 3}},
			},
		}, nil)

	resp, err := s.handler.ListSpells(s.ctx, &apiv1alpha1.ListSpellsRequest{
		CharacterId: "char_1",
		School:      "black",
		Filter:      "energy <= 3",
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Spells, 2)
	s.Equal("Wither", resp.Spells[0].Name)
	s.True(resp.Spells[0].Learned)
	s.Equal(int32(3), resp.Spells[1].Energy)
	s.False(resp.Spells[1].Learned)
}

func (s *CatalogHandlerTestSuite) TestListSpells_InvalidFilter() {
	s.mockCatalog.EXPECT().
		ListSpells(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("invalid filter"))

	_, err := s.handler.ListSpells(s.ctx, &apiv1alpha1.ListSpellsRequest{Filter: "energy <="})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *CatalogHandlerTestSuite) TestListItems() {
	minRange, maxRange := 2, 40
	bow := &entities.Item{
		ID:     "it_bow",
		Name:   "Longbow",
		Type:   "weapon",
		Rarity: "common",
		Value:  15,
		Weapon: &entities.WeaponData{
			Category: "bows",
			Primary: &entities.WeaponDamage{
				Damage:     "4",
				DamageType: entities.DamagePhysical,
				MinRange:   &minRange,
				MaxRange:   &maxRange,
			},
		},
	}

	s.mockCatalog.EXPECT().
		ListItems(s.ctx, &catalog.ListItemsInput{Type: "weapon", OrderBy: "rarity desc"}).
		Return(&catalog.ListItemsOutput{
			Items: []*catalog.ItemView{
				{Item: bow, ValueDisplay: "1 gold, 5 silver", PrimaryRange: "Nearby to Far"},
			},
		}, nil)

	resp, err := s.handler.ListItems(s.ctx, &apiv1alpha1.ListItemsRequest{Type: "weapon", OrderBy: "rarity desc"})
	s.Require().NoError(err)
	s.Require().Len(resp.Items, 1)

	item := resp.Items[0]
	s.Equal("1 gold, 5 silver", item.ValueDisplay)
	s.Equal("bows", item.WeaponCategory)
	s.Require().NotNil(item.Primary)
	s.Equal("Nearby to Far", item.Primary.Range)
	s.Nil(item.Secondary)
	s.Empty(item.Mitigation)
}

func (s *CatalogHandlerTestSuite) TestGetItem() {
	s.Run("requires id", func() {
		_, err := s.handler.GetItem(s.ctx, &apiv1alpha1.GetItemRequest{})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("maps mitigation grid", func() {
		s.mockCatalog.EXPECT().
			GetItem(s.ctx, &catalog.GetItemInput{ID: "it_mail"}).
			Return(&catalog.GetItemOutput{Item: &catalog.ItemView{
				Item: &entities.Item{
					ID:         "it_mail",
					Name:       "Chain Mail",
					Type:       "body",
					Mitigation: map[entities.DamageType]int{entities.DamagePhysical: 5},
				},
				ValueDisplay: "Free",
			}}, nil)

		resp, err := s.handler.GetItem(s.ctx, &apiv1alpha1.GetItemRequest{Id: "it_mail"})
		s.Require().NoError(err)
		s.Require().Len(resp.Item.Mitigation, len(entities.DamageTypes))
		s.Equal("physical", resp.Item.Mitigation[0].DamageType)
		s.Equal("3", resp.Item.Mitigation[0].Half)
		s.Equal("5", resp.Item.Mitigation[0].Full)
	})

	s.Run("not found", func() {
		s.mockCatalog.EXPECT().
			GetItem(s.ctx, &catalog.GetItemInput{ID: "nope"}).
			Return(nil, errors.NotFound("item not found"))

		_, err := s.handler.GetItem(s.ctx, &apiv1alpha1.GetItemRequest{Id: "nope"})
		s.Equal(codes.NotFound, status.Code(err))
	})
}

func (s *CatalogHandlerTestSuite) TestGetCreature() {
	creature := &entities.Creature{
		ID:     "cr_wolf",
		Name:   "Dire Wolf",
		Tier:   entities.TierFoe,
		Type:   "beast",
		Health: entities.Pool{Max: 30, Current: 30},
		Reactions: []entities.Reaction{
			{Name: "Snap", Cost: 1, Trigger: "enemy moves adjacent"},
		},
	}

	s.mockCatalog.EXPECT().
		GetCreature(s.ctx, &catalog.GetCreatureInput{ID: "cr_wolf"}).
		Return(&catalog.GetCreatureOutput{Sheet: &catalog.CreatureSheet{
			Creature:  creature,
			TierColor: entities.TierFoe.Color(),
			Skills: []catalog.SkillDice{
				{Skill: "brawling", Attribute: "physique", Talent: 3, Level: 2, Dice: "3d8", DieLabel: "d8"},
			},
			Mitigation: engine.MitigationGrid(nil),
			Detections: []engine.Detection{{Sense: "normal", Tier: 4, Label: "Short"}},
			Actions: []catalog.ActionView{
				{Kind: entities.AbilityAttack, Name: "Bite", Cost: 2, Range: "Melee", Roll: "2d6", Damage: "4/2 physical"},
			},
		}}, nil)

	resp, err := s.handler.GetCreature(s.ctx, &apiv1alpha1.GetCreatureRequest{Id: "cr_wolf"})
	s.Require().NoError(err)

	sheet := resp.Creature
	s.Equal("foe", sheet.Tier)
	s.Equal("#FD5E53", sheet.TierColor)
	s.Equal(int32(30), sheet.Health.Max)
	s.Require().Len(sheet.Skills, 1)
	s.Equal("3d8", sheet.Skills[0].Dice)
	s.Require().Len(sheet.Detections, 1)
	s.Equal("Short", sheet.Detections[0].Label)
	s.Require().Len(sheet.Actions, 1)
	s.Equal("attack", sheet.Actions[0].Kind)
	s.Equal("Melee", sheet.Actions[0].Range)
	s.Require().Len(sheet.Reactions, 1)
	s.Equal("Snap", sheet.Reactions[0].Name)
	s.Len(sheet.Mitigation, len(entities.DamageTypes))
}

func (s *CatalogHandlerTestSuite) TestListCreatures() {
	s.mockCatalog.EXPECT().
		ListCreatures(s.ctx, &catalog.ListCreaturesInput{Tier: "elite", SearchTerm: "drake"}).
		Return(&catalog.ListCreaturesOutput{Creatures: []*entities.Creature{
			{ID: "cr_1", Name: "Ash Drake", Tier: entities.TierElite, ChallengeRating: 7},
		}}, nil)

	resp, err := s.handler.ListCreatures(s.ctx, &apiv1alpha1.ListCreaturesRequest{Tier: "elite", SearchTerm: "drake"})
	s.Require().NoError(err)
	s.Require().Len(resp.Creatures, 1)
	s.Equal("#8E44AD", resp.Creatures[0].TierColor)
	s.Equal(int32(7), resp.Creatures[0].ChallengeRating)
}
