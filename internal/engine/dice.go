package engine

import "fmt"

var (
	baseDieSizes       = [...]int{4, 6, 8, 10, 12, 16, 20}
	upgradedDieSizes   = [...]int{6, 8, 10, 12, 16, 20, 30}
	downgradedDieSizes = [...]int{2, 4, 6, 8, 10, 12, 16}
)

// dieLabels is the skill-level display table including the d2 and d30 extremes.
var dieLabels = map[int]string{
	-2: "d2",
	-1: "-",
	0:  "d4",
	1:  "d6",
	2:  "d8",
	3:  "d10",
	4:  "d12",
	5:  "d16",
	6:  "d20",
	7:  "d30",
}

// MaxSkillLevel is the highest level with a base die
const MaxSkillLevel = len(baseDieSizes) - 1

// DieSizeFor returns the die faces for a skill level.
// Levels outside [0, MaxSkillLevel] return the smallest die.
func DieSizeFor(level int) int {
	if level < 0 || level > MaxSkillLevel {
		return baseDieSizes[0]
	}
	return baseDieSizes[level]
}

// DieLabelFor returns the display label for a skill level, "d4" when unknown
func DieLabelFor(level int) string {
	if label, ok := dieLabels[level]; ok {
		return label
	}
	return dieLabels[0]
}

// ModifiedDieSize returns the die for level after a tier upgrade (modifier > 0)
// or downgrade (modifier < 0). Level is clamped to [0, MaxSkillLevel].
func ModifiedDieSize(level, tierModifier int) int {
	level = max(0, min(level, MaxSkillLevel))
	switch {
	case tierModifier > 0:
		return upgradedDieSizes[level]
	case tierModifier < 0:
		return downgradedDieSizes[level]
	default:
		return baseDieSizes[level]
	}
}

// SkillDiceString formats a skill roll as "<talent>d<size>".
// No talent means no dice; a negative level is an automatic result of 1.
func SkillDiceString(talent, level, tierModifier int) string {
	if talent <= 0 {
		return "No dice"
	}
	if level < 0 {
		return "1"
	}
	return fmt.Sprintf("%dd%d", talent, ModifiedDieSize(level, tierModifier))
}

// TierModifierIndicator returns "U" for upgraded, "D" for downgraded, or ""
func TierModifierIndicator(tierModifier int) string {
	switch {
	case tierModifier > 0:
		return "U"
	case tierModifier < 0:
		return "D"
	default:
		return ""
	}
}
