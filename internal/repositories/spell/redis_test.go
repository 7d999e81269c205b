package spell_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/pkg/clock"
	"github.com/anyventure/companion-api/internal/repositories/spell"
	"github.com/anyventure/companion-api/internal/testutils"
)

type RedisSpellTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  spell.Repository
	ctx   context.Context
}

func TestRedisSpellTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSpellTestSuite))
}

func (s *RedisSpellTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()
	s.clock = &clock.Fixed{At: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := spell.NewRedis(&spell.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisSpellTestSuite) TestNewRedis() {
	_, err := spell.NewRedis(nil)
	s.ErrorContains(err, "config cannot be nil")

	_, err = spell.NewRedis(&spell.RedisConfig{})
	s.ErrorContains(err, "client cannot be nil")
}

func (s *RedisSpellTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, spell.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, spell.SaveInput{Spell: &entities.Spell{Name: "No ID"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisSpellTestSuite) TestSaveAndGet() {
	sp := testutils.SpellFixture("spell_1", "Shadow Bolt")

	out, err := s.repo.Save(s.ctx, spell.SaveInput{Spell: sp})
	s.Require().NoError(err)
	s.Equal(s.clock.At.Unix(), out.Spell.CreatedAt)

	got, err := s.repo.Get(s.ctx, spell.GetInput{ID: "spell_1"})
	s.Require().NoError(err)
	s.Equal("Shadow Bolt", got.Spell.Name)
	s.Equal(entities.DamageDark, got.Spell.DamageType)

	_, err = s.repo.Get(s.ctx, spell.GetInput{ID: "spell_missing"})
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), entities.TypeSpell+" with ID spell_missing not found")
}

func (s *RedisSpellTestSuite) TestSaveKeepsCreatedAtAndMovesSchoolIndex() {
	sp := testutils.SpellFixture("spell_1", "Shadow Bolt")
	_, err := s.repo.Save(s.ctx, spell.SaveInput{Spell: sp})
	s.Require().NoError(err)
	created := sp.CreatedAt

	s.clock.Advance(time.Hour)
	moved := testutils.SpellFixture("spell_1", "Shadow Bolt")
	moved.School = entities.SchoolPrimal
	moved.Subschool = "nature"
	out, err := s.repo.Save(s.ctx, spell.SaveInput{Spell: moved})
	s.Require().NoError(err)
	s.Equal(created, out.Spell.CreatedAt)
	s.Equal(s.clock.At.Unix(), out.Spell.UpdatedAt)

	black, err := s.repo.List(s.ctx, spell.ListInput{School: entities.SchoolBlack})
	s.Require().NoError(err)
	s.Empty(black.Spells)

	primal, err := s.repo.List(s.ctx, spell.ListInput{School: entities.SchoolPrimal})
	s.Require().NoError(err)
	s.Require().Len(primal.Spells, 1)
	s.Equal("nature", primal.Spells[0].Subschool)
}

func (s *RedisSpellTestSuite) TestListAll() {
	for _, sp := range []*entities.Spell{
		testutils.SpellFixture("spell_b", "Curse"),
		testutils.SpellFixture("spell_a", "Blight"),
	} {
		_, err := s.repo.Save(s.ctx, spell.SaveInput{Spell: sp})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, spell.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 2)
	s.Equal("spell_a", out.Spells[0].ID)
}

func (s *RedisSpellTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, spell.SaveInput{Spell: testutils.SpellFixture("spell_1", "Curse")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, spell.DeleteInput{ID: "spell_1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("spell:spell_1"))

	_, err = s.repo.Delete(s.ctx, spell.DeleteInput{ID: "spell_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, spell.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
