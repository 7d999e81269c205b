package catalog

import (
	"github.com/anyventure/companion-api/internal/engine"
	"github.com/anyventure/companion-api/internal/entities"
)

func newItemView(item *entities.Item) *ItemView {
	view := &ItemView{
		Item:         item,
		ValueDisplay: engine.FormatGoldDisplay(item.Value),
	}

	if item.Weapon != nil {
		if p := item.Weapon.Primary; p != nil {
			view.PrimaryRange = engine.FormatOptionalRangeSpan(p.MinRange, p.MaxRange, engine.RangeContextWeapon)
		}
		if s := item.Weapon.Secondary; s != nil {
			view.SecondaryRange = engine.FormatOptionalRangeSpan(s.MinRange, s.MaxRange, engine.RangeContextWeapon)
		}
	}

	return view
}

func newCreatureSheet(c *entities.Creature) *CreatureSheet {
	sheet := &CreatureSheet{
		Creature:   c,
		TierColor:  c.Tier.Color(),
		Mitigation: engine.MitigationGrid(c.Mitigation),
		Detections: engine.DetectionList(c.Detections),
	}

	for _, attr := range entities.Attributes {
		talent := c.Attributes[attr.Name]
		for _, skill := range attr.Skills {
			level := c.Skills[skill]
			sheet.Skills = append(sheet.Skills, SkillDice{
				Skill:     skill,
				Attribute: attr.Name,
				Talent:    talent,
				Level:     level,
				Dice:      engine.SkillDiceString(talent, level, 0),
				DieLabel:  engine.DieLabelFor(level),
			})
		}
	}

	for _, a := range c.Actions {
		sheet.Actions = append(sheet.Actions, newActionView(a))
	}

	return sheet
}

func newActionView(a entities.Ability) ActionView {
	h := a.Header()
	view := ActionView{
		Kind:        a.Kind(),
		Name:        h.Name,
		Cost:        h.Cost,
		Description: h.Description,
		Magic:       h.Magic,
	}

	switch v := a.(type) {
	case *entities.AttackAbility:
		view.Range = engine.FormatOptionalRangeSpan(v.MinRange, v.MaxRange, engine.RangeContextWeapon)
		view.Roll = v.Roll
		view.Damage = damagePhrase(v.DamageRoll)
	case *entities.SpellAbility:
		view.Range = engine.FormatOptionalRangeSpan(v.MinRange, v.MaxRange, engine.RangeContextSpell)
		view.Roll = v.Roll
		view.Damage = damagePhrase(v.DamageRoll)
	}

	return view
}

// damagePhrase renders "3/1 physical", dropping an empty extra
func damagePhrase(d entities.DamageRoll) string {
	if d.Damage == "" {
		return ""
	}
	out := d.Damage
	if d.DamageExtra != "" {
		out += "/" + d.DamageExtra
	}
	if d.DamageType != "" {
		out += " " + string(d.DamageType)
	}
	return out
}
