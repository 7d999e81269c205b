package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/anyventure/companion-api/internal/entities"
)

type AbilityTestSuite struct {
	suite.Suite
}

func TestAbilityTestSuite(t *testing.T) {
	suite.Run(t, new(AbilityTestSuite))
}

func intPtr(v int) *int { return &v }

func (s *AbilityTestSuite) TestDecodeYAMLVariants() {
	doc := `
- name: Bite
  cost: 1
  type: attack
  description: Snapping jaws
  attack:
    roll: 2d6
    damage: "3"
    damage_type: physical
    category: pierce
    min_range: 1
    max_range: 1
- name: Ember Lash
  cost: 2
  type: spell
  description: A whip of flame
  spell:
    roll: 3d8
    damage: "4"
    damage_type: heat
    target_defense: evasion
    defense_difficulty: 6
    max_range: 10
- name: Burrow
  cost: 1
  type: movement
  description: Digs underground
`
	var actions entities.Abilities
	s.Require().NoError(yaml.Unmarshal([]byte(doc), &actions))
	s.Require().Len(actions, 3)

	attack, ok := actions[0].(*entities.AttackAbility)
	s.Require().True(ok)
	s.Equal("Bite", attack.Name)
	s.Equal("pierce", attack.Category)
	s.Equal(1, *attack.MaxRange)
	s.Equal(entities.DamagePhysical, attack.DamageType)

	spell, ok := actions[1].(*entities.SpellAbility)
	s.Require().True(ok)
	s.True(spell.Magic)
	s.Equal("evasion", spell.TargetDefense)
	s.Nil(spell.MinRange)
	s.Equal(10, *spell.MaxRange)

	s.Equal(entities.AbilityMovement, actions[2].Kind())
}

func (s *AbilityTestSuite) TestJSONKeepsVariantFields() {
	actions := entities.Abilities{
		entities.NewAttack(
			entities.AbilityHeader{Name: "Longbow", Cost: 1, Description: "Arrow"},
			entities.DamageRoll{Roll: "2d8", DamageType: entities.DamagePhysical},
			"ranged", intPtr(3), intPtr(40),
		),
		entities.NewUtility(entities.AbilityHeader{Name: "Howl", Cost: 1, Description: "Rally"}),
	}

	data, err := json.Marshal(actions)
	s.Require().NoError(err)
	s.Contains(string(data), `"type":"attack"`)
	s.Contains(string(data), `"max_range":40`)

	var decoded entities.Abilities
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Require().Len(decoded, 2)
	s.Equal(actions[0], decoded[0])
	s.Equal(actions[1], decoded[1])
}

func (s *AbilityTestSuite) TestUnknownKindFails() {
	var actions entities.Abilities
	err := json.Unmarshal([]byte(`[{"name":"Odd","type":"dance"}]`), &actions)
	s.Error(err)
}
