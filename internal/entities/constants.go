package entities

// Spell schools
const (
	SchoolAlteration = "alteration"
	SchoolBlack      = "black"
	SchoolDivine     = "divine"
	SchoolMysticism  = "mysticism"
	SchoolPrimal     = "primal"
)

// Exotic subschools
const (
	ExoticFiend     = "fiend"
	ExoticDraconic  = "draconic"
	ExoticFey       = "fey"
	ExoticCelestial = "celestial"
	ExoticCosmic    = "cosmic"
)

// ExoticSchools lists every subschool gated behind a per-character unlock.
var ExoticSchools = []string{
	ExoticFiend,
	ExoticDraconic,
	ExoticFey,
	ExoticCelestial,
	ExoticCosmic,
}

// Subschools maps each school to its valid subschools.
var Subschools = map[string][]string{
	SchoolAlteration: {ExoticFey, "illusion", "transmutation"},
	SchoolBlack:      {ExoticFiend, "necromancy", "witchcraft"},
	SchoolDivine:     {ExoticCelestial, "radiant", "protection"},
	SchoolMysticism:  {"spirit", "divination", ExoticCosmic},
	SchoolPrimal:     {ExoticDraconic, "elemental", "nature"},
}

// IsExoticSchool reports whether subschool is gated by exotic access
func IsExoticSchool(subschool string) bool {
	for _, s := range ExoticSchools {
		if s == subschool {
			return true
		}
	}
	return false
}

// IsValidSubschool reports whether subschool belongs to school
func IsValidSubschool(school, subschool string) bool {
	for _, s := range Subschools[school] {
		if s == subschool {
			return true
		}
	}
	return false
}

// DamageType is a mitigation and damage category
type DamageType string

// Damage types
const (
	DamagePhysical  DamageType = "physical"
	DamageHeat      DamageType = "heat"
	DamageCold      DamageType = "cold"
	DamageLightning DamageType = "lightning"
	DamageDark      DamageType = "dark"
	DamageDivine    DamageType = "divine"
	DamageAether    DamageType = "aether"
	DamagePsychic   DamageType = "psychic"
	DamageToxic     DamageType = "toxic"
)

// DamageTypes is the canonical display order.
var DamageTypes = []DamageType{
	DamagePhysical,
	DamageHeat,
	DamageCold,
	DamageLightning,
	DamageDark,
	DamageDivine,
	DamageAether,
	DamagePsychic,
	DamageToxic,
}

// IsValidDamageType reports whether d is one of DamageTypes
func IsValidDamageType(d DamageType) bool {
	for _, t := range DamageTypes {
		if t == d {
			return true
		}
	}
	return false
}

// Tier is a creature power category
type Tier string

// Creature tiers, weakest first
const (
	TierMinion   Tier = "minion"
	TierThrall   Tier = "thrall"
	TierFoe      Tier = "foe"
	TierChampion Tier = "champion"
	TierElite    Tier = "elite"
	TierLegend   Tier = "legend"
	TierMythic   Tier = "mythic"
)

// Tiers is ordered weakest first.
var Tiers = []Tier{TierMinion, TierThrall, TierFoe, TierChampion, TierElite, TierLegend, TierMythic}

var tierColors = map[Tier]string{
	TierMinion:   "#D9D9D9",
	TierThrall:   "#CFB53B",
	TierFoe:      "#FD5E53",
	TierChampion: "#4F6D7A",
	TierElite:    "#8E44AD",
	TierLegend:   "#D4AF37",
	TierMythic:   "#FF6B35",
}

// Color returns the display color for the tier; unknown tiers use the minion color
func (t Tier) Color() string {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return tierColors[TierMinion]
}

// Rank returns the tier's position in Tiers, or len(Tiers) when unknown
func (t Tier) Rank() int {
	for i, tier := range Tiers {
		if tier == t {
			return i
		}
	}
	return len(Tiers)
}

// Item rarities
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
	RarityArtifact  = "artifact"
)

// RarityRank orders rarities for sorting.
var RarityRank = map[string]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityArtifact:  5,
}

// Item types
const (
	ItemTypeWeapon     = "weapon"
	ItemTypeArmor      = "armor"
	ItemTypeGear       = "gear"
	ItemTypeConsumable = "consumable"
	ItemTypeContainer  = "container"
	ItemTypeCurrency   = "currency"
)

// ItemTypes lists valid item types.
var ItemTypes = []string{
	ItemTypeWeapon, ItemTypeArmor, ItemTypeGear,
	ItemTypeConsumable, ItemTypeContainer, ItemTypeCurrency,
}

// Weapon categories
const (
	WeaponSimpleMelee   = "simpleMelee"
	WeaponSimpleRanged  = "simpleRanged"
	WeaponComplexMelee  = "complexMelee"
	WeaponComplexRanged = "complexRanged"
	WeaponUnarmed       = "unarmed"
	WeaponThrowing      = "throwing"
)

// Detection senses in display order
var Detections = []string{
	"normal",
	"darksight",
	"infravision",
	"deadsight",
	"echolocation",
	"tremorsense",
	"truesight",
	"aethersight",
}

// Attribute is a talent group with its four basic skills
type Attribute struct {
	Name   string
	Skills []string
}

// Attributes lists talents and their skills in sheet order.
var Attributes = []Attribute{
	{Name: "physique", Skills: []string{"fitness", "deflection", "might", "endurance"}},
	{Name: "finesse", Skills: []string{"evasion", "stealth", "coordination", "thievery"}},
	{Name: "mind", Skills: []string{"resilience", "concentration", "senses", "logic"}},
	{Name: "knowledge", Skills: []string{"wildcraft", "academics", "magic", "medicine"}},
	{Name: "social", Skills: []string{"expression", "presence", "insight", "persuasion"}},
}

// AttributeForSkill returns the attribute governing skill
func AttributeForSkill(skill string) (string, bool) {
	for _, attr := range Attributes {
		for _, s := range attr.Skills {
			if s == skill {
				return attr.Name, true
			}
		}
	}
	return "", false
}
