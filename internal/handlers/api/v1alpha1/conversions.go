package v1alpha1

import (
	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/engine"
	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/orchestrators/catalog"
	"github.com/anyventure/companion-api/internal/repositories/rolllog"
)

// nolint:gosec // game values are small
func int32Map(in map[string]int) map[string]int32 {
	if in == nil {
		return nil
	}
	out := make(map[string]int32, len(in))
	for k, v := range in {
		out[k] = int32(v)
	}
	return out
}

func intMap(in map[string]int32) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = int(v)
	}
	return out
}

func convertSpellView(v *catalog.SpellView) *apiv1alpha1.Spell {
	s := v.Spell
	// nolint:gosec // game values are small
	return &apiv1alpha1.Spell{
		Id:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		School:        s.School,
		Subschool:     s.Subschool,
		CheckToCast:   int32(s.CheckToCast),
		Energy:        int32(s.Energy),
		Damage:        int32(s.Damage),
		DamageType:    string(s.DamageType),
		Range:         s.Range,
		Duration:      s.Duration,
		Charge:        s.Charge,
		Components:    s.Components,
		Concentration: s.Concentration,
		Reaction:      s.Reaction,
		IsHomebrew:    s.IsHomebrew,
		Learned:       v.Learned,
	}
}

func convertMitigation(rows []engine.MitigationRow) []*apiv1alpha1.MitigationRow {
	out := make([]*apiv1alpha1.MitigationRow, len(rows))
	for i, r := range rows {
		out[i] = &apiv1alpha1.MitigationRow{
			DamageType: string(r.DamageType),
			Value:      int32(r.Value), // nolint:gosec // mitigation is small
			Half:       r.Half,
			Full:       r.Full,
		}
	}
	return out
}

func convertWeaponProfile(d *entities.WeaponDamage, rangePhrase string) *apiv1alpha1.WeaponProfile {
	if d == nil {
		return nil
	}
	return &apiv1alpha1.WeaponProfile{
		Damage:      d.Damage,
		DamageExtra: d.DamageExtra,
		DamageType:  string(d.DamageType),
		Category:    d.Category,
		Range:       rangePhrase,
	}
}

func convertItemView(v *catalog.ItemView) *apiv1alpha1.Item {
	item := v.Item
	out := &apiv1alpha1.Item{
		Id:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		Type:           item.Type,
		Rarity:         item.Rarity,
		Value:          int32(item.Value), // nolint:gosec // silver values are small
		ValueDisplay:   v.ValueDisplay,
		Weight:         item.Weight,
		WeaponCategory: item.WeaponCategory(),
		IsHomebrew:     item.IsHomebrew,
	}
	if item.Weapon != nil {
		out.WeaponFlags = item.Weapon.Flags
		out.Primary = convertWeaponProfile(item.Weapon.Primary, v.PrimaryRange)
		out.Secondary = convertWeaponProfile(item.Weapon.Secondary, v.SecondaryRange)
	}
	if len(item.Mitigation) > 0 {
		out.Mitigation = convertMitigation(engine.MitigationGrid(item.Mitigation))
	}
	return out
}

// nolint:gosec // pool values are small
func convertPool(p entities.Pool) *apiv1alpha1.Pool {
	return &apiv1alpha1.Pool{
		Max:      int32(p.Max),
		Current:  int32(p.Current),
		Recovery: int32(p.Recovery),
	}
}

// nolint:gosec // sheet values are small
func convertCreatureSheet(sheet *catalog.CreatureSheet) *apiv1alpha1.CreatureSheet {
	c := sheet.Creature
	out := &apiv1alpha1.CreatureSheet{
		Id:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Tactics:         c.Tactics,
		Tier:            string(c.Tier),
		TierColor:       sheet.TierColor,
		Type:            c.Type,
		Size:            c.Size,
		Health:          convertPool(c.Health),
		Energy:          convertPool(c.Energy),
		Resolve:         convertPool(c.Resolve),
		Movement:        int32(c.Movement),
		ChallengeRating: int32(c.ChallengeRating),
		Mitigation:      convertMitigation(sheet.Mitigation),
		Languages:       c.Languages,
		Loot:            c.Loot,
	}

	for _, sk := range sheet.Skills {
		out.Skills = append(out.Skills, &apiv1alpha1.SkillDice{
			Skill:     sk.Skill,
			Attribute: sk.Attribute,
			Talent:    int32(sk.Talent),
			Level:     int32(sk.Level),
			Dice:      sk.Dice,
			DieLabel:  sk.DieLabel,
		})
	}
	for _, d := range sheet.Detections {
		out.Detections = append(out.Detections, &apiv1alpha1.Detection{
			Sense: d.Sense,
			Tier:  int32(d.Tier),
			Label: d.Label,
		})
	}
	for _, a := range sheet.Actions {
		out.Actions = append(out.Actions, &apiv1alpha1.Action{
			Kind:        string(a.Kind),
			Name:        a.Name,
			Cost:        int32(a.Cost),
			Description: a.Description,
			Magic:       a.Magic,
			Range:       a.Range,
			Roll:        a.Roll,
			Damage:      a.Damage,
		})
	}
	for _, r := range c.Reactions {
		out.Reactions = append(out.Reactions, &apiv1alpha1.Reaction{
			Name:        r.Name,
			Cost:        int32(r.Cost),
			Trigger:     r.Trigger,
			Description: r.Description,
		})
	}
	for _, t := range c.Traits {
		out.Traits = append(out.Traits, &apiv1alpha1.Trait{Name: t.Name, Description: t.Description})
	}

	return out
}

func convertCreatureSummary(c *entities.Creature) *apiv1alpha1.CreatureSummary {
	return &apiv1alpha1.CreatureSummary{
		Id:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Tier:            string(c.Tier),
		TierColor:       c.Tier.Color(),
		Type:            c.Type,
		Size:            c.Size,
		ChallengeRating: int32(c.ChallengeRating), // nolint:gosec // small
	}
}

// nolint:gosec // slot counts are small
func convertCharacter(c *entities.Character) *apiv1alpha1.Character {
	if c == nil {
		return nil
	}
	out := &apiv1alpha1.Character{
		Id:            c.ID,
		Name:          c.Name,
		PlayerId:      c.PlayerID,
		SpellSlots:    int32(c.SpellSlots),
		SlotsUsed:     int32(len(c.Spells)),
		ExoticSchools: c.ExoticSchools,
		Attributes:    int32Map(c.Attributes),
		Skills:        int32Map(c.Skills),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	for _, s := range c.Spells {
		out.Spells = append(out.Spells, &apiv1alpha1.LearnedSpell{
			SpellId:  s.SpellID,
			Notes:    s.Notes,
			Favorite: s.Favorite,
			AddedAt:  s.AddedAt,
		})
	}
	return out
}

func convertSkillRoll(r *rolllog.SkillRoll) *apiv1alpha1.SkillRoll {
	return &apiv1alpha1.SkillRoll{
		RollId:      r.RollID,
		Skill:       r.Skill,
		Notation:    r.Notation,
		Dice:        r.Dice,
		DieSize:     r.DieSize,
		Result:      r.Result,
		Description: r.Description,
		RolledAt:    r.RolledAt.Unix(),
	}
}
