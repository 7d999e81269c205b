package catalog

import (
	"github.com/anyventure/companion-api/internal/engine"
	"github.com/anyventure/companion-api/internal/entities"
)

// ListSpellsInput defines the request for browsing spells
type ListSpellsInput struct {
	// CharacterID, when set, gates exotic subschools and sorts learned spells first
	CharacterID string
	SearchTerm  string
	School      string
	Subschool   string
	// Filter is an AIP-160 expression over the spell fields
	Filter string
	// OrderBy is an AIP-132 clause replacing the default order
	OrderBy string
}

// SpellView is a spell as seen by one character
type SpellView struct {
	Spell   *entities.Spell
	Learned bool
}

// ListSpellsOutput defines the response for browsing spells
type ListSpellsOutput struct {
	Spells []*SpellView
}

// ListItemsInput defines the request for browsing items
type ListItemsInput struct {
	SearchTerm     string
	Type           string
	Rarity         string
	WeaponCategory string
	Filter         string
	OrderBy        string
}

// ItemView is an item with its display strings
type ItemView struct {
	Item *entities.Item
	// ValueDisplay renders value as gold and silver
	ValueDisplay string
	// PrimaryRange and SecondaryRange are set for weapons with that profile
	PrimaryRange   string
	SecondaryRange string
}

// ListItemsOutput defines the response for browsing items
type ListItemsOutput struct {
	Items []*ItemView
}

// GetItemInput defines the request for one item
type GetItemInput struct {
	ID string
}

// GetItemOutput defines the response for one item
type GetItemOutput struct {
	Item *ItemView
}

// GetCreatureInput defines the request for a creature sheet
type GetCreatureInput struct {
	ID string
}

// SkillDice is one row of a creature's skill table
type SkillDice struct {
	Skill     string
	Attribute string
	Talent    int
	Level     int
	// Dice is the roll, e.g. "3d8", "No dice" or "1"
	Dice     string
	DieLabel string
}

// ActionView is a creature action with its range phrase
type ActionView struct {
	Kind        entities.AbilityKind
	Name        string
	Cost        int
	Description string
	Magic       bool
	// Range is empty for actions without one
	Range  string
	Roll   string
	Damage string
}

// CreatureSheet is everything needed to render a bestiary entry
type CreatureSheet struct {
	Creature   *entities.Creature
	TierColor  string
	Skills     []SkillDice
	Mitigation []engine.MitigationRow
	Detections []engine.Detection
	Actions    []ActionView
}

// GetCreatureOutput defines the response for a creature sheet
type GetCreatureOutput struct {
	Sheet *CreatureSheet
}

// ListCreaturesInput defines the request for browsing creatures
type ListCreaturesInput struct {
	SearchTerm string
	Tier       string
	Type       string
	Filter     string
	OrderBy    string
}

// ListCreaturesOutput defines the response for browsing creatures
type ListCreaturesOutput struct {
	Creatures []*entities.Creature
}
