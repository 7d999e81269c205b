package v1alpha1

// Spell is a catalog spell as seen by the caller
type Spell struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	School        string   `json:"school"`
	Subschool     string   `json:"subschool"`
	CheckToCast   int32    `json:"check_to_cast"`
	Energy        int32    `json:"energy"`
	Damage        int32    `json:"damage"`
	DamageType    string   `json:"damage_type,omitempty"`
	Range         string   `json:"range,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Charge        string   `json:"charge,omitempty"`
	Components    []string `json:"components,omitempty"`
	Concentration bool     `json:"concentration,omitempty"`
	Reaction      bool     `json:"reaction,omitempty"`
	IsHomebrew    bool     `json:"is_homebrew,omitempty"`
	Learned       bool     `json:"learned,omitempty"`
}

type ListSpellsRequest struct {
	CharacterId string `json:"character_id,omitempty"`
	SearchTerm  string `json:"search_term,omitempty"`
	School      string `json:"school,omitempty"`
	Subschool   string `json:"subschool,omitempty"`
	Filter      string `json:"filter,omitempty"`
	OrderBy     string `json:"order_by,omitempty"`
}

type ListSpellsResponse struct {
	Spells []*Spell `json:"spells"`
}

// MitigationRow is one damage type of a mitigation grid
type MitigationRow struct {
	DamageType string `json:"damage_type"`
	Value      int32  `json:"value"`
	Half       string `json:"half"`
	Full       string `json:"full"`
}

// WeaponProfile is one attack mode of a weapon
type WeaponProfile struct {
	Damage      string `json:"damage,omitempty"`
	DamageExtra string `json:"damage_extra,omitempty"`
	DamageType  string `json:"damage_type,omitempty"`
	Category    string `json:"category,omitempty"`
	Range       string `json:"range"`
}

type Item struct {
	Id             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Type           string           `json:"type"`
	Rarity         string           `json:"rarity"`
	Value          int32            `json:"value"`
	ValueDisplay   string           `json:"value_display"`
	Weight         float64          `json:"weight"`
	WeaponCategory string           `json:"weapon_category,omitempty"`
	WeaponFlags    []string         `json:"weapon_flags,omitempty"`
	Primary        *WeaponProfile   `json:"primary,omitempty"`
	Secondary      *WeaponProfile   `json:"secondary,omitempty"`
	Mitigation     []*MitigationRow `json:"mitigation,omitempty"`
	IsHomebrew     bool             `json:"is_homebrew,omitempty"`
}

type ListItemsRequest struct {
	SearchTerm     string `json:"search_term,omitempty"`
	Type           string `json:"type,omitempty"`
	Rarity         string `json:"rarity,omitempty"`
	WeaponCategory string `json:"weapon_category,omitempty"`
	Filter         string `json:"filter,omitempty"`
	OrderBy        string `json:"order_by,omitempty"`
}

type ListItemsResponse struct {
	Items []*Item `json:"items"`
}

type GetItemRequest struct {
	Id string `json:"id"`
}

type GetItemResponse struct {
	Item *Item `json:"item"`
}

type Pool struct {
	Max      int32 `json:"max"`
	Current  int32 `json:"current"`
	Recovery int32 `json:"recovery,omitempty"`
}

type SkillDice struct {
	Skill     string `json:"skill"`
	Attribute string `json:"attribute"`
	Talent    int32  `json:"talent"`
	Level     int32  `json:"level"`
	Dice      string `json:"dice"`
	DieLabel  string `json:"die_label"`
}

type Detection struct {
	Sense string `json:"sense"`
	Tier  int32  `json:"tier"`
	Label string `json:"label"`
}

type Action struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Cost        int32  `json:"cost"`
	Description string `json:"description,omitempty"`
	Magic       bool   `json:"magic,omitempty"`
	Range       string `json:"range,omitempty"`
	Roll        string `json:"roll,omitempty"`
	Damage      string `json:"damage,omitempty"`
}

type Reaction struct {
	Name        string `json:"name"`
	Cost        int32  `json:"cost"`
	Trigger     string `json:"trigger"`
	Description string `json:"description"`
}

type Trait struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatureSheet is a creature with every derived display value
type CreatureSheet struct {
	Id              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Tactics         string           `json:"tactics,omitempty"`
	Tier            string           `json:"tier"`
	TierColor       string           `json:"tier_color"`
	Type            string           `json:"type"`
	Size            string           `json:"size"`
	Health          *Pool            `json:"health"`
	Energy          *Pool            `json:"energy"`
	Resolve         *Pool            `json:"resolve"`
	Movement        int32            `json:"movement"`
	ChallengeRating int32            `json:"challenge_rating"`
	Skills          []*SkillDice     `json:"skills"`
	Mitigation      []*MitigationRow `json:"mitigation"`
	Detections      []*Detection     `json:"detections"`
	Actions         []*Action        `json:"actions,omitempty"`
	Reactions       []*Reaction      `json:"reactions,omitempty"`
	Traits          []*Trait         `json:"traits,omitempty"`
	Languages       []string         `json:"languages,omitempty"`
	Loot            []string         `json:"loot,omitempty"`
}

type GetCreatureRequest struct {
	Id string `json:"id"`
}

type GetCreatureResponse struct {
	Creature *CreatureSheet `json:"creature"`
}

// CreatureSummary is a bestiary list entry
type CreatureSummary struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Tier            string `json:"tier"`
	TierColor       string `json:"tier_color"`
	Type            string `json:"type"`
	Size            string `json:"size"`
	ChallengeRating int32  `json:"challenge_rating"`
}

type ListCreaturesRequest struct {
	SearchTerm string `json:"search_term,omitempty"`
	Tier       string `json:"tier,omitempty"`
	Type       string `json:"type,omitempty"`
	Filter     string `json:"filter,omitempty"`
	OrderBy    string `json:"order_by,omitempty"`
}

type ListCreaturesResponse struct {
	Creatures []*CreatureSummary `json:"creatures"`
}
