package testutils

import "github.com/anyventure/companion-api/internal/entities"

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// SpellFixture returns a plain black-magic spell; override fields as needed
func SpellFixture(id, name string) *entities.Spell {
	return &entities.Spell{
		ID:          id,
		Name:        name,
		Description: name + " description",
		School:      entities.SchoolBlack,
		Subschool:   "necromancy",
		CheckToCast: 3,
		Energy:      2,
		Damage:      4,
		DamageType:  entities.DamageDark,
	}
}

// ItemFixture returns a common gear item
func ItemFixture(id, name string) *entities.Item {
	return &entities.Item{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Type:        entities.ItemTypeGear,
		Rarity:      entities.RarityCommon,
		Value:       15,
		Weight:      1,
	}
}

// WeaponFixture returns a weapon with a primary profile covering minRange..maxRange
func WeaponFixture(id, name string, minRange, maxRange int) *entities.Item {
	item := ItemFixture(id, name)
	item.Type = entities.ItemTypeWeapon
	item.Weapon = &entities.WeaponData{
		Category: entities.WeaponSimpleMelee,
		Primary: &entities.WeaponDamage{
			Damage:     "4",
			DamageType: entities.DamagePhysical,
			Category:   "slash",
			MinRange:   IntPtr(minRange),
			MaxRange:   IntPtr(maxRange),
		},
	}
	return item
}

// CreatureFixture returns a foe-tier creature with one attack
func CreatureFixture(id, name string) *entities.Creature {
	return &entities.Creature{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Tier:        entities.TierFoe,
		Type:        "monster",
		Size:        "medium",
		Health:      entities.Pool{Max: 20, Current: 20},
		Energy:      entities.Pool{Max: 5, Current: 5, Recovery: 2},
		Resolve:     entities.Pool{Max: 3, Current: 3, Recovery: 1},
		Movement:    5,
		Attributes:  map[string]int{"physique": 3, "finesse": 2},
		Skills:      map[string]int{"might": 2, "stealth": 1},
		Mitigation:  map[entities.DamageType]int{entities.DamagePhysical: 3},
		Detections:  map[string]int{"normal": 5},
		Actions: entities.Abilities{
			entities.NewAttack(
				entities.AbilityHeader{Name: "Claw", Cost: 1, Description: "Rake"},
				entities.DamageRoll{Roll: "2d8", Damage: "3", DamageType: entities.DamagePhysical},
				"slash", nil, nil,
			),
		},
		ChallengeRating: 2,
	}
}

// CharacterFixture returns a character with default spell slots and nothing learned
func CharacterFixture(id, name string) *entities.Character {
	return &entities.Character{
		ID:         id,
		Name:       name,
		SpellSlots: entities.DefaultSpellSlots,
	}
}
