package v1alpha1

// LearnedSpell is one spellbook entry
type LearnedSpell struct {
	SpellId  string `json:"spell_id"`
	Notes    string `json:"notes,omitempty"`
	Favorite bool   `json:"favorite,omitempty"`
	AddedAt  int64  `json:"added_at,omitempty"`
}

type Character struct {
	Id            string           `json:"id"`
	Name          string           `json:"name"`
	PlayerId      string           `json:"player_id,omitempty"`
	SpellSlots    int32            `json:"spell_slots"`
	SlotsUsed     int32            `json:"slots_used"`
	Spells        []*LearnedSpell  `json:"spells,omitempty"`
	ExoticSchools map[string]bool  `json:"exotic_schools,omitempty"`
	Attributes    map[string]int32 `json:"attributes,omitempty"`
	Skills        map[string]int32 `json:"skills,omitempty"`
	CreatedAt     int64            `json:"created_at,omitempty"`
	UpdatedAt     int64            `json:"updated_at,omitempty"`
}

type CreateCharacterRequest struct {
	Name       string           `json:"name"`
	PlayerId   string           `json:"player_id,omitempty"`
	SpellSlots int32            `json:"spell_slots,omitempty"`
	Attributes map[string]int32 `json:"attributes,omitempty"`
	Skills     map[string]int32 `json:"skills,omitempty"`
}

type CreateCharacterResponse struct {
	Character *Character `json:"character"`
}

type GetCharacterRequest struct {
	Id string `json:"id"`
}

type GetCharacterResponse struct {
	Character *Character `json:"character"`
}

type ListCharactersRequest struct {
	PlayerId string `json:"player_id"`
}

type ListCharactersResponse struct {
	Characters []*Character `json:"characters"`
}

type LearnSpellRequest struct {
	CharacterId string `json:"character_id"`
	SpellId     string `json:"spell_id"`
	Notes       string `json:"notes,omitempty"`
}

type LearnSpellResponse struct {
	Character *Character `json:"character"`
}

type ForgetSpellRequest struct {
	CharacterId string `json:"character_id"`
	SpellId     string `json:"spell_id"`
}

type ForgetSpellResponse struct {
	Character *Character `json:"character"`
}

type SetExoticAccessRequest struct {
	CharacterId string `json:"character_id"`
	School      string `json:"school"`
	Unlocked    bool   `json:"unlocked"`
}

type SetExoticAccessResponse struct {
	Character *Character `json:"character"`
}
