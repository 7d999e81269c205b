package character

import "github.com/anyventure/companion-api/internal/entities"

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name     string
	PlayerID string
	// SpellSlots defaults to entities.DefaultSpellSlots when zero
	SpellSlots int
	Attributes map[string]int
	Skills     map[string]int
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing a player's characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// LearnSpellInput defines the request for learning a spell
type LearnSpellInput struct {
	CharacterID string
	SpellID     string
	Notes       string
}

// LearnSpellOutput defines the response for learning a spell
type LearnSpellOutput struct {
	Character *entities.Character
}

// ForgetSpellInput defines the request for forgetting a spell
type ForgetSpellInput struct {
	CharacterID string
	SpellID     string
}

// ForgetSpellOutput defines the response for forgetting a spell
type ForgetSpellOutput struct {
	Character *entities.Character
}

// SetExoticAccessInput defines the request for locking or unlocking an exotic subschool
type SetExoticAccessInput struct {
	CharacterID string
	School      string
	Unlocked    bool
}

// SetExoticAccessOutput defines the response for changing exotic access
type SetExoticAccessOutput struct {
	Character *entities.Character
}
