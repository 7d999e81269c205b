package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	learnedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4CAF50"))

	sheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

func tierBadge(tier, color string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(strings.ToUpper(tier))
}

func renderSpells(spells []*apiv1alpha1.Spell) string {
	var b strings.Builder
	for _, s := range spells {
		marker := "  "
		if s.Learned {
			marker = learnedStyle.Render("* ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, titleStyle.Render(s.Name),
			dimStyle.Render(fmt.Sprintf("[%s/%s] check %d, energy %d", s.School, s.Subschool, s.CheckToCast, s.Energy)))
		if s.Description != "" {
			fmt.Fprintf(&b, "    %s\n", s.Description)
		}
	}
	fmt.Fprintf(&b, "\n%d spells", len(spells))
	return b.String()
}

func renderItems(items []*apiv1alpha1.Item) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s %s %s\n", titleStyle.Render(item.Name),
			dimStyle.Render(fmt.Sprintf("[%s, %s]", item.Type, item.Rarity)), item.ValueDisplay)
		for _, p := range []*apiv1alpha1.WeaponProfile{item.Primary, item.Secondary} {
			if p == nil {
				continue
			}
			fmt.Fprintf(&b, "    %s/%s %s, %s\n", p.Damage, p.DamageExtra, p.DamageType, p.Range)
		}
	}
	fmt.Fprintf(&b, "\n%d items", len(items))
	return b.String()
}

func renderCreatureSheet(c *apiv1alpha1.CreatureSheet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", tierBadge(c.Tier, c.TierColor), titleStyle.Render(c.Name))
	fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf("%s %s, CR %d, movement %d", c.Size, c.Type, c.ChallengeRating, c.Movement)))
	if c.Description != "" {
		fmt.Fprintf(&b, "%s\n", c.Description)
	}
	if c.Health != nil {
		fmt.Fprintf(&b, "Health %d/%d", c.Health.Current, c.Health.Max)
	}
	if c.Energy != nil {
		fmt.Fprintf(&b, "  Energy %d/%d", c.Energy.Current, c.Energy.Max)
	}
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Skills") + "\n")
	for _, sk := range c.Skills {
		fmt.Fprintf(&b, "  %-14s %-8s %s\n", sk.Skill, sk.Dice, dimStyle.Render(sk.DieLabel))
	}

	b.WriteString("\n" + headerStyle.Render("Mitigation") + "\n")
	for _, m := range c.Mitigation {
		if m.Value == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-10s %s/%s\n", m.DamageType, m.Half, m.Full)
	}

	b.WriteString("\n" + headerStyle.Render("Senses") + "\n")
	for _, d := range c.Detections {
		fmt.Fprintf(&b, "  %-12s %s\n", d.Sense, d.Label)
	}

	if len(c.Actions) > 0 {
		b.WriteString("\n" + headerStyle.Render("Actions") + "\n")
		for _, a := range c.Actions {
			fmt.Fprintf(&b, "  %s (%d) %s %s %s\n", a.Name, a.Cost, a.Range, a.Roll, a.Damage)
		}
	}
	if len(c.Reactions) > 0 {
		b.WriteString("\n" + headerStyle.Render("Reactions") + "\n")
		for _, r := range c.Reactions {
			fmt.Fprintf(&b, "  %s (%d): %s\n", r.Name, r.Cost, r.Trigger)
		}
	}

	return sheetStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderCharacter(c *apiv1alpha1.Character) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(c.Name), dimStyle.Render(c.Id))
	fmt.Fprintf(&b, "Spell slots %d/%d\n", c.SlotsUsed, c.SpellSlots)
	for _, s := range c.Spells {
		line := "  " + s.SpellId
		if s.Notes != "" {
			line += dimStyle.Render(" - " + s.Notes)
		}
		b.WriteString(line + "\n")
	}

	var unlocked []string
	for school, ok := range c.ExoticSchools {
		if ok {
			unlocked = append(unlocked, school)
		}
	}
	if len(unlocked) > 0 {
		fmt.Fprintf(&b, "Exotic: %s\n", strings.Join(unlocked, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderRoll(r *apiv1alpha1.SkillRoll) string {
	result := titleStyle.Render(fmt.Sprintf("%d", r.Result))
	desc := r.Description
	if desc == "" {
		desc = r.Skill
	}
	return fmt.Sprintf("%s  %s %v -> %s", desc, r.Notation, r.Dice, result)
}
