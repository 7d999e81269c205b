package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/anyventure/companion-api/internal/engine"
	"github.com/anyventure/companion-api/internal/entities"
)

type FilterTestSuite struct {
	suite.Suite
	spells []*entities.Spell
	items  []*entities.Item
}

func TestFilterTestSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}

func (s *FilterTestSuite) SetupTest() {
	s.spells = []*entities.Spell{
		{ID: "s1", Name: "Shadow Bolt", Description: "A bolt of darkness", School: "black", Subschool: "necromancy", CheckToCast: 3},
		{ID: "s2", Name: "Hellfire", Description: "Summon infernal flame", School: "black", Subschool: "fiend", CheckToCast: 5},
		{ID: "s3", Name: "Glamour", Description: "Fey charm", School: "alteration", Subschool: "fey", CheckToCast: 2},
		{ID: "s4", Name: "Bark Skin", Description: "Hardens skin like bark", School: "primal", Subschool: "nature", CheckToCast: 1},
		{ID: "s5", Name: "Curse", Description: "Hex a target with shadow", School: "black", Subschool: "witchcraft", CheckToCast: 3},
		{ID: "s6", Name: "Blink", Description: "Short teleport", School: "alteration", Subschool: "transmutation", CheckToCast: 2},
	}
	s.items = []*entities.Item{
		{ID: "i1", Name: "Dagger", Type: "weapon", Rarity: "common", Weapon: &entities.WeaponData{Category: "simpleMelee"}},
		{ID: "i2", Name: "Longbow", Type: "weapon", Rarity: "rare", Weapon: &entities.WeaponData{Category: "complexRanged"}},
		{ID: "i3", Name: "Rope", Type: "gear", Rarity: "common"},
		{ID: "i4", Name: "Crown", Type: "gear", Rarity: "artifact"},
		{ID: "i5", Name: "Axe", Type: "weapon", Rarity: "uncommon", Weapon: &entities.WeaponData{Category: "simpleMelee"}},
	}
}

func ids[R engine.Record](records []R) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.GetID())
	}
	return out
}

func (s *FilterTestSuite) TestEmptyInput() {
	out := engine.FilterRecords([]*entities.Spell{}, engine.Query{SearchTerm: "x"})
	s.NotNil(out)
	s.Empty(out)

	out = engine.FilterRecords[*entities.Spell](nil, engine.Query{})
	s.NotNil(out)
	s.Empty(out)
}

func (s *FilterTestSuite) TestExoticGate() {
	out := engine.FilterRecords(s.spells, engine.Query{
		GateExotic:   true,
		ExoticAccess: map[string]bool{entities.ExoticFey: true, entities.ExoticFiend: false},
	})

	s.ElementsMatch([]string{"s1", "s3", "s4", "s5", "s6"}, ids(out))
}

func (s *FilterTestSuite) TestExoticGateHoldsRegardlessOfFilters() {
	out := engine.FilterRecords(s.spells, engine.Query{
		GateExotic: true,
		Filters:    map[string]string{"school": "black", "subschool": "fiend"},
		SearchTerm: "hell",
	})

	s.Empty(out)
}

func (s *FilterTestSuite) TestUngatedListShowsExotic() {
	out := engine.FilterRecords(s.spells, engine.Query{Filters: map[string]string{"subschool": "fiend"}})
	s.Equal([]string{"s2"}, ids(out))
}

func (s *FilterTestSuite) TestCategoricalFiltersAreANDed() {
	out := engine.FilterRecords(s.items, engine.Query{
		Filters: map[string]string{
			"type":            "weapon",
			"weapon_category": "simpleMelee",
			"rarity":          engine.FilterAll,
			"flavor":          "spicy",
		},
	})

	s.Equal([]string{"i5", "i1"}, ids(out))
}

func (s *FilterTestSuite) TestSearchMatchesNameOrDescription() {
	out := engine.FilterRecords(s.spells, engine.Query{SearchTerm: "  SHADOW "})
	s.Equal([]string{"s5", "s1"}, ids(out))
}

func (s *FilterTestSuite) TestEmptySearchKeepsFilteredSet() {
	filtered := engine.FilterRecords(s.spells, engine.Query{Filters: map[string]string{"school": "black"}})
	searched := engine.FilterRecords(s.spells, engine.Query{Filters: map[string]string{"school": "black"}, SearchTerm: "   "})
	s.Equal(ids(filtered), ids(searched))
}

func (s *FilterTestSuite) TestSortKnownFirstThenKeysThenName() {
	out := engine.FilterRecords(s.spells, engine.Query{
		Known: map[string]bool{"s4": true},
		SortKeys: []engine.SortKey{
			{Field: "school"},
			{Field: "subschool"},
			{Field: "check_to_cast", Numeric: true},
		},
	})

	s.Equal([]string{"s4", "s3", "s6", "s2", "s1", "s5"}, ids(out))
}

func (s *FilterTestSuite) TestSortByRank() {
	out := engine.FilterRecords(s.items, engine.Query{
		SortKeys: []engine.SortKey{{Field: "rarity", Rank: entities.RarityRank}},
	})
	s.Equal([]string{"i1", "i3", "i5", "i2", "i4"}, ids(out))

	out = engine.FilterRecords(s.items, engine.Query{
		SortKeys: []engine.SortKey{{Field: "rarity", Rank: entities.RarityRank, Desc: true}},
	})
	s.Equal([]string{"i4", "i2", "i5", "i1", "i3"}, ids(out))
}

func (s *FilterTestSuite) TestSortIsStable() {
	twins := []*entities.Spell{
		{ID: "a", Name: "Ward", School: "divine"},
		{ID: "b", Name: "Ward", School: "divine"},
		{ID: "c", Name: "Ward", School: "divine"},
	}

	out := engine.FilterRecords(twins, engine.Query{SortKeys: []engine.SortKey{{Field: "school"}}})
	s.Equal([]string{"a", "b", "c"}, ids(out))

	reversed := []*entities.Spell{twins[2], twins[1], twins[0]}
	out = engine.FilterRecords(reversed, engine.Query{SortKeys: []engine.SortKey{{Field: "school"}}})
	s.Equal([]string{"c", "b", "a"}, ids(out))
}

func (s *FilterTestSuite) TestIdempotent() {
	q := engine.Query{
		SearchTerm:   "a",
		GateExotic:   true,
		ExoticAccess: map[string]bool{entities.ExoticFey: true},
		Known:        map[string]bool{"s6": true},
		SortKeys:     []engine.SortKey{{Field: "school"}, {Field: "subschool"}},
	}

	once := engine.FilterRecords(s.spells, q)
	twice := engine.FilterRecords(once, q)
	s.Equal(once, twice)
}

func (s *FilterTestSuite) TestInputNotMutated() {
	before := ids(s.spells)
	_ = engine.FilterRecords(s.spells, engine.Query{SortKeys: []engine.SortKey{{Field: "school"}}})
	s.Equal(before, ids(s.spells))
}

func (s *FilterTestSuite) TestExpressionNarrows() {
	e, err := engine.ParseFilter(`school = "black" AND check_to_cast <= 3`, engine.Fields{
		"school":        engine.FieldString,
		"check_to_cast": engine.FieldInt,
	})
	s.Require().NoError(err)

	out := engine.FilterRecords(s.spells, engine.Query{Expression: e})
	s.Equal([]string{"s5", "s1"}, ids(out))
}
