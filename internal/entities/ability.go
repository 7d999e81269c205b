package entities

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AbilityKind tags which variant an Ability is
type AbilityKind string

// Ability kinds
const (
	AbilityAttack   AbilityKind = "attack"
	AbilitySpell    AbilityKind = "spell"
	AbilityUtility  AbilityKind = "utility"
	AbilityMovement AbilityKind = "movement"
)

// AbilityHeader holds the fields every creature action carries
type AbilityHeader struct {
	Name        string `json:"name" yaml:"name"`
	Cost        int    `json:"cost" yaml:"cost"`
	Description string `json:"description" yaml:"description"`
	Magic       bool   `json:"magic,omitempty" yaml:"magic,omitempty"`
}

// DamageRoll describes the roll and damage of an attack or spell action
type DamageRoll struct {
	Roll                 string     `json:"roll,omitempty" yaml:"roll,omitempty"`
	Damage               string     `json:"damage,omitempty" yaml:"damage,omitempty"`
	DamageExtra          string     `json:"damage_extra,omitempty" yaml:"damage_extra,omitempty"`
	DamageType           DamageType `json:"damage_type,omitempty" yaml:"damage_type,omitempty"`
	SecondaryDamage      string     `json:"secondary_damage,omitempty" yaml:"secondary_damage,omitempty"`
	SecondaryDamageExtra string     `json:"secondary_damage_extra,omitempty" yaml:"secondary_damage_extra,omitempty"`
	SecondaryDamageType  DamageType `json:"secondary_damage_type,omitempty" yaml:"secondary_damage_type,omitempty"`
}

// Ability is one of AttackAbility, SpellAbility, UtilityAbility or MovementAbility
type Ability interface {
	Kind() AbilityKind
	Header() AbilityHeader
}

// AttackAbility is a weapon-style action with a reach
type AttackAbility struct {
	AbilityHeader
	DamageRoll
	Category string
	MinRange *int
	MaxRange *int
}

// SpellAbility is a magical action resisted by a defense
type SpellAbility struct {
	AbilityHeader
	DamageRoll
	TargetDefense     string
	DefenseDifficulty int
	MinRange          *int
	MaxRange          *int
}

// UtilityAbility has no roll
type UtilityAbility struct {
	AbilityHeader
}

// MovementAbility repositions the creature
type MovementAbility struct {
	AbilityHeader
}

func (a *AttackAbility) Kind() AbilityKind     { return AbilityAttack }
func (a *AttackAbility) Header() AbilityHeader { return a.AbilityHeader }

func (a *SpellAbility) Kind() AbilityKind     { return AbilitySpell }
func (a *SpellAbility) Header() AbilityHeader { return a.AbilityHeader }

func (a *UtilityAbility) Kind() AbilityKind     { return AbilityUtility }
func (a *UtilityAbility) Header() AbilityHeader { return a.AbilityHeader }

func (a *MovementAbility) Kind() AbilityKind     { return AbilityMovement }
func (a *MovementAbility) Header() AbilityHeader { return a.AbilityHeader }

// NewAttack builds an attack action. Nil ranges mean melee reach.
func NewAttack(header AbilityHeader, roll DamageRoll, category string, minRange, maxRange *int) *AttackAbility {
	return &AttackAbility{
		AbilityHeader: header,
		DamageRoll:    roll,
		Category:      category,
		MinRange:      minRange,
		MaxRange:      maxRange,
	}
}

// NewSpellAction builds a spell action. Magic is always set.
func NewSpellAction(header AbilityHeader, roll DamageRoll, targetDefense string, difficulty int, minRange, maxRange *int) *SpellAbility {
	header.Magic = true
	return &SpellAbility{
		AbilityHeader:     header,
		DamageRoll:        roll,
		TargetDefense:     targetDefense,
		DefenseDifficulty: difficulty,
		MinRange:          minRange,
		MaxRange:          maxRange,
	}
}

// NewUtility builds a utility action
func NewUtility(header AbilityHeader) *UtilityAbility {
	return &UtilityAbility{AbilityHeader: header}
}

// NewMovement builds a movement action
func NewMovement(header AbilityHeader) *MovementAbility {
	return &MovementAbility{AbilityHeader: header}
}

// Abilities is an ordered action list stored as kind-tagged objects
type Abilities []Ability

type abilityWire struct {
	AbilityHeader `yaml:",inline"`
	Type          AbilityKind `json:"type" yaml:"type"`
	Attack        *attackWire `json:"attack,omitempty" yaml:"attack,omitempty"`
	Spell         *spellWire  `json:"spell,omitempty" yaml:"spell,omitempty"`
}

type attackWire struct {
	DamageRoll `yaml:",inline"`
	Category   string `json:"category,omitempty" yaml:"category,omitempty"`
	MinRange   *int   `json:"min_range,omitempty" yaml:"min_range,omitempty"`
	MaxRange   *int   `json:"max_range,omitempty" yaml:"max_range,omitempty"`
}

type spellWire struct {
	DamageRoll        `yaml:",inline"`
	TargetDefense     string `json:"target_defense,omitempty" yaml:"target_defense,omitempty"`
	DefenseDifficulty int    `json:"defense_difficulty,omitempty" yaml:"defense_difficulty,omitempty"`
	MinRange          *int   `json:"min_range,omitempty" yaml:"min_range,omitempty"`
	MaxRange          *int   `json:"max_range,omitempty" yaml:"max_range,omitempty"`
}

func toWire(a Ability) abilityWire {
	w := abilityWire{AbilityHeader: a.Header(), Type: a.Kind()}
	switch v := a.(type) {
	case *AttackAbility:
		w.Attack = &attackWire{
			DamageRoll: v.DamageRoll,
			Category:   v.Category,
			MinRange:   v.MinRange,
			MaxRange:   v.MaxRange,
		}
	case *SpellAbility:
		w.Spell = &spellWire{
			DamageRoll:        v.DamageRoll,
			TargetDefense:     v.TargetDefense,
			DefenseDifficulty: v.DefenseDifficulty,
			MinRange:          v.MinRange,
			MaxRange:          v.MaxRange,
		}
	}
	return w
}

func fromWire(w abilityWire) (Ability, error) {
	switch w.Type {
	case AbilityAttack:
		if w.Attack == nil {
			w.Attack = &attackWire{}
		}
		return NewAttack(w.AbilityHeader, w.Attack.DamageRoll, w.Attack.Category, w.Attack.MinRange, w.Attack.MaxRange), nil
	case AbilitySpell:
		if w.Spell == nil {
			w.Spell = &spellWire{}
		}
		return NewSpellAction(w.AbilityHeader, w.Spell.DamageRoll, w.Spell.TargetDefense,
			w.Spell.DefenseDifficulty, w.Spell.MinRange, w.Spell.MaxRange), nil
	case AbilityUtility:
		return NewUtility(w.AbilityHeader), nil
	case AbilityMovement:
		return NewMovement(w.AbilityHeader), nil
	default:
		return nil, fmt.Errorf("ability %q: unknown type %q", w.Name, w.Type)
	}
}

func (a Abilities) wire() []abilityWire {
	out := make([]abilityWire, 0, len(a))
	for _, ability := range a {
		if ability == nil {
			continue
		}
		out = append(out, toWire(ability))
	}
	return out
}

func (a *Abilities) fromWires(wires []abilityWire) error {
	out := make(Abilities, 0, len(wires))
	for _, w := range wires {
		ability, err := fromWire(w)
		if err != nil {
			return err
		}
		out = append(out, ability)
	}
	*a = out
	return nil
}

// MarshalJSON implements json.Marshaler
func (a Abilities) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.wire())
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Abilities) UnmarshalJSON(data []byte) error {
	var wires []abilityWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return err
	}
	return a.fromWires(wires)
}

// MarshalYAML implements yaml.Marshaler
func (a Abilities) MarshalYAML() (any, error) {
	return a.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (a *Abilities) UnmarshalYAML(value *yaml.Node) error {
	var wires []abilityWire
	if err := value.Decode(&wires); err != nil {
		return err
	}
	return a.fromWires(wires)
}
