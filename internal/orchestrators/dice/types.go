package dice

import (
	"time"

	"github.com/anyventure/companion-api/internal/repositories/rolllog"
)

// RollSkillCheckInput defines the request for rolling a skill check
type RollSkillCheckInput struct {
	CharacterID string
	Skill       string
	// Talent is the number of dice rolled
	Talent int
	// Level selects the die size
	Level int
	// TierModifier upgrades (> 0) or downgrades (< 0) the die
	TierModifier int
	// FromSheet reads talent and level from the stored character instead
	FromSheet   bool
	Description string
	TTL         time.Duration
}

// RollSkillCheckOutput defines the response for rolling a skill check
type RollSkillCheckOutput struct {
	Roll *rolllog.SkillRoll
	Log  *rolllog.RollLog
}

// GetRollLogInput defines the request for getting a roll log
type GetRollLogInput struct {
	CharacterID string
}

// GetRollLogOutput defines the response for getting a roll log
type GetRollLogOutput struct {
	Log *rolllog.RollLog
}

// ClearRollLogInput defines the request for clearing a roll log
type ClearRollLogInput struct {
	CharacterID string
}

// ClearRollLogOutput defines the response for clearing a roll log
type ClearRollLogOutput struct {
	RollsDeleted int32
}
