package entities

import "strconv"

// Creature is a bestiary entry
type Creature struct {
	ID              string             `json:"id" yaml:"id"`
	Name            string             `json:"name" yaml:"name"`
	Description     string             `json:"description" yaml:"description"`
	Tactics         string             `json:"tactics,omitempty" yaml:"tactics,omitempty"`
	Tier            Tier               `json:"tier" yaml:"tier"`
	Type            string             `json:"type" yaml:"type"`
	Size            string             `json:"size" yaml:"size"`
	Health          Pool               `json:"health" yaml:"health"`
	Energy          Pool               `json:"energy" yaml:"energy"`
	Resolve         Pool               `json:"resolve" yaml:"resolve"`
	Movement        int                `json:"movement" yaml:"movement"`
	Attributes      map[string]int     `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Skills          map[string]int     `json:"skills,omitempty" yaml:"skills,omitempty"`
	Mitigation      map[DamageType]int `json:"mitigation,omitempty" yaml:"mitigation,omitempty"`
	Detections      map[string]int     `json:"detections,omitempty" yaml:"detections,omitempty"`
	Actions         Abilities          `json:"actions,omitempty" yaml:"actions,omitempty"`
	Reactions       []Reaction         `json:"reactions,omitempty" yaml:"reactions,omitempty"`
	Traits          []Trait            `json:"traits,omitempty" yaml:"traits,omitempty"`
	Loot            []string           `json:"loot,omitempty" yaml:"loot,omitempty"`
	Languages       []string           `json:"languages,omitempty" yaml:"languages,omitempty"`
	ChallengeRating int                `json:"challenge_rating" yaml:"challenge_rating"`
	SpellIDs        []string           `json:"spell_ids,omitempty" yaml:"spell_ids,omitempty"`
	IsHomebrew      bool               `json:"is_homebrew,omitempty" yaml:"is_homebrew,omitempty"`
	CreatedAt       int64              `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt       int64              `json:"updated_at,omitempty" yaml:"-"`
}

// Pool is a resource with a cap and per-round recovery
type Pool struct {
	Max      int `json:"max" yaml:"max"`
	Current  int `json:"current" yaml:"current"`
	Recovery int `json:"recovery,omitempty" yaml:"recovery,omitempty"`
}

// Reaction is a triggered creature response
type Reaction struct {
	Name        string `json:"name" yaml:"name"`
	Cost        int    `json:"cost" yaml:"cost"`
	Trigger     string `json:"trigger" yaml:"trigger"`
	Description string `json:"description" yaml:"description"`
}

// Trait is a passive creature feature
type Trait struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func (c *Creature) GetID() string          { return c.ID }
func (c *Creature) GetName() string        { return c.Name }
func (c *Creature) GetDescription() string { return c.Description }

// GetType implements core.Entity
func (c *Creature) GetType() string { return TypeCreature }

// Talent returns the talent of the attribute governing skill, or 0
func (c *Creature) Talent(skill string) int {
	attr, ok := AttributeForSkill(skill)
	if !ok {
		return 0
	}
	return c.Attributes[attr]
}

// Field returns categorical fields used by list filters and sorts
func (c *Creature) Field(key string) (string, bool) {
	switch key {
	case "tier":
		return string(c.Tier), true
	case "type":
		return c.Type, true
	case "size":
		return c.Size, true
	case "challenge_rating":
		return strconv.Itoa(c.ChallengeRating), true
	default:
		return "", false
	}
}

// FilterValue returns typed fields for filter expressions
func (c *Creature) FilterValue(key string) (any, bool) {
	switch key {
	case "name":
		return c.Name, true
	case "description":
		return c.Description, true
	case "challenge_rating":
		return int64(c.ChallengeRating), true
	case "movement":
		return int64(c.Movement), true
	case "health":
		return int64(c.Health.Max), true
	case "is_homebrew":
		return c.IsHomebrew, true
	}
	return c.Field(key)
}
