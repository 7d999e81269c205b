package entities

// DefaultSpellSlots is the slot count of a new character
const DefaultSpellSlots = 10

// Talent counts dice and skill level picks the die. Talent 0 rolls nothing.
const (
	MaxTalent     = 5
	MinSkillLevel = -2
	MaxSkillLevel = 7
)

// Character is the spellcasting view of a player character
type Character struct {
	ID            string           `json:"id" yaml:"id"`
	Name          string           `json:"name" yaml:"name"`
	PlayerID      string           `json:"player_id,omitempty" yaml:"player_id,omitempty"`
	SpellSlots    int              `json:"spell_slots" yaml:"spell_slots"`
	Spells        []CharacterSpell `json:"spells,omitempty" yaml:"spells,omitempty"`
	ExoticSchools map[string]bool  `json:"exotic_schools,omitempty" yaml:"exotic_schools,omitempty"`
	Attributes    map[string]int   `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Skills        map[string]int   `json:"skills,omitempty" yaml:"skills,omitempty"`
	CreatedAt     int64            `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt     int64            `json:"updated_at,omitempty" yaml:"-"`
}

// CharacterSpell is a learned spell reference
type CharacterSpell struct {
	SpellID  string `json:"spell_id" yaml:"spell_id"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Favorite bool   `json:"favorite,omitempty" yaml:"favorite,omitempty"`
	AddedAt  int64  `json:"added_at,omitempty" yaml:"added_at,omitempty"`
}

func (c *Character) GetID() string { return c.ID }

// GetType implements core.Entity
func (c *Character) GetType() string { return TypeCharacter }

// KnownSpells returns the set of learned spell IDs
func (c *Character) KnownSpells() map[string]bool {
	known := make(map[string]bool, len(c.Spells))
	for _, s := range c.Spells {
		known[s.SpellID] = true
	}
	return known
}

// HasSpell reports whether spellID is learned
func (c *Character) HasSpell(spellID string) bool {
	for _, s := range c.Spells {
		if s.SpellID == spellID {
			return true
		}
	}
	return false
}

// CanAccess reports whether the character may see spells of subschool.
// Non-exotic subschools are always accessible.
func (c *Character) CanAccess(subschool string) bool {
	if !IsExoticSchool(subschool) {
		return true
	}
	return c.ExoticSchools[subschool]
}

// Talent returns the talent of the attribute governing skill, or 0
func (c *Character) Talent(skill string) int {
	attr, ok := AttributeForSkill(skill)
	if !ok {
		return 0
	}
	return c.Attributes[attr]
}
