package catalog

import (
	"github.com/anyventure/companion-api/internal/engine"
	"github.com/anyventure/companion-api/internal/entities"
)

var spellFields = engine.Fields{
	"name":          engine.FieldString,
	"description":   engine.FieldString,
	"school":        engine.FieldString,
	"subschool":     engine.FieldString,
	"damage_type":   engine.FieldString,
	"check_to_cast": engine.FieldInt,
	"energy":        engine.FieldInt,
	"damage":        engine.FieldInt,
	"concentration": engine.FieldBool,
	"reaction":      engine.FieldBool,
	"is_homebrew":   engine.FieldBool,
}

var spellOrderKeys = map[string]engine.SortKey{
	"school":        {},
	"subschool":     {},
	"damage_type":   {},
	"check_to_cast": {Numeric: true},
}

var defaultSpellOrder = []engine.SortKey{
	{Field: "school"},
	{Field: "subschool"},
	{Field: "check_to_cast", Numeric: true},
}

var itemFields = engine.Fields{
	"name":            engine.FieldString,
	"description":     engine.FieldString,
	"type":            engine.FieldString,
	"rarity":          engine.FieldString,
	"weapon_category": engine.FieldString,
	"value":           engine.FieldInt,
	"is_homebrew":     engine.FieldBool,
}

var itemOrderKeys = map[string]engine.SortKey{
	"type":            {},
	"rarity":          {Rank: entities.RarityRank},
	"weapon_category": {},
}

var defaultItemOrder = []engine.SortKey{
	{Field: "rarity", Rank: entities.RarityRank},
}

var creatureFields = engine.Fields{
	"name":             engine.FieldString,
	"description":      engine.FieldString,
	"tier":             engine.FieldString,
	"type":             engine.FieldString,
	"size":             engine.FieldString,
	"challenge_rating": engine.FieldInt,
	"movement":         engine.FieldInt,
	"health":           engine.FieldInt,
	"is_homebrew":      engine.FieldBool,
}

var tierRank = func() map[string]int {
	rank := make(map[string]int, len(entities.Tiers))
	for i, t := range entities.Tiers {
		rank[string(t)] = i
	}
	return rank
}()

var creatureOrderKeys = map[string]engine.SortKey{
	"tier":             {Rank: tierRank},
	"type":             {},
	"size":             {},
	"challenge_rating": {Numeric: true},
}

var defaultCreatureOrder = []engine.SortKey{
	{Field: "tier", Rank: tierRank},
}
