package v1alpha1

// SkillRoll is one recorded skill check
type SkillRoll struct {
	RollId      string  `json:"roll_id"`
	Skill       string  `json:"skill"`
	Notation    string  `json:"notation"`
	Dice        []int32 `json:"dice,omitempty"`
	DieSize     int32   `json:"die_size,omitempty"`
	Result      int32   `json:"result"`
	Description string  `json:"description,omitempty"`
	RolledAt    int64   `json:"rolled_at"`
}

type RollSkillCheckRequest struct {
	CharacterId  string `json:"character_id"`
	Skill        string `json:"skill"`
	Talent       int32  `json:"talent,omitempty"`
	Level        int32  `json:"level,omitempty"`
	TierModifier int32  `json:"tier_modifier,omitempty"`
	// FromSheet reads talent and level from the stored character
	FromSheet   bool   `json:"from_sheet,omitempty"`
	Description string `json:"description,omitempty"`
}

type RollSkillCheckResponse struct {
	Roll      *SkillRoll `json:"roll"`
	ExpiresAt int64      `json:"expires_at"`
}

type GetRollLogRequest struct {
	CharacterId string `json:"character_id"`
}

type GetRollLogResponse struct {
	Rolls     []*SkillRoll `json:"rolls"`
	ExpiresAt int64        `json:"expires_at"`
}

type ClearRollLogRequest struct {
	CharacterId string `json:"character_id"`
}

type ClearRollLogResponse struct {
	RollsDeleted int32 `json:"rolls_deleted"`
}
