package entities

import "strconv"

// Spell is a catalog spell
type Spell struct {
	ID            string     `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	Description   string     `json:"description" yaml:"description"`
	School        string     `json:"school" yaml:"school"`
	Subschool     string     `json:"subschool" yaml:"subschool"`
	CheckToCast   int        `json:"check_to_cast" yaml:"check_to_cast"`
	Energy        int        `json:"energy" yaml:"energy"`
	Damage        int        `json:"damage" yaml:"damage"`
	DamageType    DamageType `json:"damage_type,omitempty" yaml:"damage_type,omitempty"`
	Range         string     `json:"range,omitempty" yaml:"range,omitempty"`
	Duration      string     `json:"duration,omitempty" yaml:"duration,omitempty"`
	Charge        string     `json:"charge,omitempty" yaml:"charge,omitempty"`
	Components    []string   `json:"components,omitempty" yaml:"components,omitempty"`
	Concentration bool       `json:"concentration,omitempty" yaml:"concentration,omitempty"`
	Reaction      bool       `json:"reaction,omitempty" yaml:"reaction,omitempty"`
	IsHomebrew    bool       `json:"is_homebrew,omitempty" yaml:"is_homebrew,omitempty"`
	CreatedAt     int64      `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt     int64      `json:"updated_at,omitempty" yaml:"-"`
}

func (s *Spell) GetID() string          { return s.ID }
func (s *Spell) GetType() string        { return TypeSpell }
func (s *Spell) GetName() string        { return s.Name }
func (s *Spell) GetDescription() string { return s.Description }

// Field returns categorical fields used by list filters and sorts
func (s *Spell) Field(key string) (string, bool) {
	switch key {
	case "school":
		return s.School, true
	case "subschool":
		return s.Subschool, true
	case "damage_type":
		return string(s.DamageType), true
	case "check_to_cast":
		return strconv.Itoa(s.CheckToCast), true
	default:
		return "", false
	}
}

// FilterValue returns typed fields for filter expressions
func (s *Spell) FilterValue(key string) (any, bool) {
	switch key {
	case "name":
		return s.Name, true
	case "description":
		return s.Description, true
	case "check_to_cast":
		return int64(s.CheckToCast), true
	case "energy":
		return int64(s.Energy), true
	case "damage":
		return int64(s.Damage), true
	case "concentration":
		return s.Concentration, true
	case "reaction":
		return s.Reaction, true
	case "is_homebrew":
		return s.IsHomebrew, true
	}
	return s.Field(key)
}
