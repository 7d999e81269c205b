package entities

// Item is a catalog item. Value is in silver; 10 silver is 1 gold.
type Item struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Type        string             `json:"type" yaml:"type"`
	Rarity      string             `json:"rarity" yaml:"rarity"`
	Value       int                `json:"value" yaml:"value"`
	Weight      float64            `json:"weight" yaml:"weight"`
	Weapon      *WeaponData        `json:"weapon_data,omitempty" yaml:"weapon_data,omitempty"`
	Armor       *ArmorData         `json:"armor_data,omitempty" yaml:"armor_data,omitempty"`
	Mitigation  map[DamageType]int `json:"mitigation,omitempty" yaml:"mitigation,omitempty"`
	IsHomebrew  bool               `json:"is_homebrew,omitempty" yaml:"is_homebrew,omitempty"`
	CreatedAt   int64              `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt   int64              `json:"updated_at,omitempty" yaml:"-"`
}

// WeaponData holds weapon-only fields
type WeaponData struct {
	Category  string        `json:"category" yaml:"category"`
	Flags     []string      `json:"flags,omitempty" yaml:"flags,omitempty"`
	Primary   *WeaponDamage `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary *WeaponDamage `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// WeaponDamage is one attack profile of a weapon. Ranges are raw distance units.
type WeaponDamage struct {
	Damage      string     `json:"damage,omitempty" yaml:"damage,omitempty"`
	DamageExtra string     `json:"damage_extra,omitempty" yaml:"damage_extra,omitempty"`
	DamageType  DamageType `json:"damage_type,omitempty" yaml:"damage_type,omitempty"`
	Category    string     `json:"category,omitempty" yaml:"category,omitempty"`
	MinRange    *int       `json:"min_range,omitempty" yaml:"min_range,omitempty"`
	MaxRange    *int       `json:"max_range,omitempty" yaml:"max_range,omitempty"`
}

// ArmorData holds armor-only fields
type ArmorData struct {
	Category       string `json:"category" yaml:"category"`
	BaseMitigation int    `json:"base_mitigation" yaml:"base_mitigation"`
	DexterityLimit int    `json:"dexterity_limit" yaml:"dexterity_limit"`
}

func (i *Item) GetID() string          { return i.ID }
func (i *Item) GetType() string        { return TypeItem }
func (i *Item) GetName() string        { return i.Name }
func (i *Item) GetDescription() string { return i.Description }

// WeaponCategory returns the weapon category or empty for non-weapons
func (i *Item) WeaponCategory() string {
	if i.Weapon == nil {
		return ""
	}
	return i.Weapon.Category
}

// Field returns categorical fields used by list filters and sorts
func (i *Item) Field(key string) (string, bool) {
	switch key {
	case "type":
		return i.Type, true
	case "rarity":
		return i.Rarity, true
	case "weapon_category":
		return i.WeaponCategory(), true
	default:
		return "", false
	}
}

// FilterValue returns typed fields for filter expressions
func (i *Item) FilterValue(key string) (any, bool) {
	switch key {
	case "name":
		return i.Name, true
	case "description":
		return i.Description, true
	case "value":
		return int64(i.Value), true
	case "is_homebrew":
		return i.IsHomebrew, true
	}
	return i.Field(key)
}
