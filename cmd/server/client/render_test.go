package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
)

func TestRenderCreatureSheetSkipsZeroMitigation(t *testing.T) {
	out := renderCreatureSheet(&apiv1alpha1.CreatureSheet{
		Name:      "Dire Wolf",
		Tier:      "foe",
		TierColor: "#FD5E53",
		Skills:    []*apiv1alpha1.SkillDice{{Skill: "might", Dice: "3d8", DieLabel: "d8"}},
		Mitigation: []*apiv1alpha1.MitigationRow{
			{DamageType: "physical", Value: 2, Half: "1", Full: "2"},
			{DamageType: "heat", Value: 0, Half: "0", Full: "0"},
		},
		Detections: []*apiv1alpha1.Detection{{Sense: "normal", Label: "Short"}},
	})

	assert.Contains(t, out, "Dire Wolf")
	assert.Contains(t, out, "FOE")
	assert.Contains(t, out, "3d8")
	assert.Contains(t, out, "physical")
	assert.NotContains(t, out, "heat")
}

func TestRenderRollFallsBackToSkill(t *testing.T) {
	out := renderRoll(&apiv1alpha1.SkillRoll{Skill: "stealth", Notation: "2d6", Dice: []int32{4, 2}, Result: 4})
	assert.Contains(t, out, "stealth")
	assert.Contains(t, out, "2d6")
	assert.Contains(t, out, "[4 2]")
}

func TestRenderCharacterSlots(t *testing.T) {
	out := renderCharacter(&apiv1alpha1.Character{
		Id:         "char_1",
		Name:       "Mira",
		SpellSlots: 6,
		SlotsUsed:  1,
		Spells:     []*apiv1alpha1.LearnedSpell{{SpellId: "spell_wither", Notes: "opener"}},
	})
	assert.Contains(t, out, "Spell slots 1/6")
	assert.Contains(t, out, "spell_wither")
}
