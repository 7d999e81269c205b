// Package character implements the character orchestrator for spellbooks and exotic access
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/anyventure/companion-api/internal/orchestrators/character Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/pkg/clock"
	"github.com/anyventure/companion-api/internal/pkg/idgen"
	characterrepo "github.com/anyventure/companion-api/internal/repositories/character"
	spellrepo "github.com/anyventure/companion-api/internal/repositories/spell"
)

// Service defines the interface for character operations
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// Spellbook
	LearnSpell(ctx context.Context, input *LearnSpellInput) (*LearnSpellOutput, error)
	ForgetSpell(ctx context.Context, input *ForgetSpellInput) (*ForgetSpellOutput, error)
	SetExoticAccess(ctx context.Context, input *SetExoticAccessInput) (*SetExoticAccessOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	SpellRepo     spellrepo.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	characterRepo characterrepo.Repository
	spellRepo     spellrepo.Repository
	idGen         idgen.Generator
	clock         clock.Clock
}

var _ Service = (*Orchestrator)(nil)

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		spellRepo:     cfg.SpellRepo,
		idGen:         cfg.IDGenerator,
		clock:         c,
	}, nil
}

// CreateCharacter creates a character with an empty spellbook
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if input.SpellSlots < 0 {
		vb.Field("spell_slots", "cannot be negative")
	}
	for skill := range input.Skills {
		if _, ok := entities.AttributeForSkill(skill); !ok {
			vb.Fieldf("skills", "unknown skill %s", skill)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	slots := input.SpellSlots
	if slots == 0 {
		slots = entities.DefaultSpellSlots
	}

	char := &entities.Character{
		ID:         o.idGen.Generate(),
		Name:       strings.TrimSpace(input.Name),
		PlayerID:   input.PlayerID,
		SpellSlots: slots,
		Attributes: input.Attributes,
		Skills:     input.Skills,
	}

	createOutput, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "Character created",
		"character_id", char.ID,
		"player_id", char.PlayerID,
	)

	return &CreateCharacterOutput{Character: createOutput.Character}, nil
}

// GetCharacter returns one character
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: char}, nil
}

// ListCharacters returns a player's characters
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listOutput, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: listOutput.Characters}, nil
}

// LearnSpell adds a spell to the character's spellbook.
// Checks run in order: already known, no free slot, spell missing, exotic subschool locked.
func (o *Orchestrator) LearnSpell(ctx context.Context, input *LearnSpellInput) (*LearnSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("spell_id", input.SpellID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if char.HasSpell(input.SpellID) {
		return nil, errors.AlreadyExistsf("spell %s is already learned", input.SpellID).
			WithMeta("character_id", char.ID)
	}
	if len(char.Spells) >= char.SpellSlots {
		return nil, errors.FailedPreconditionf("no free spell slots (%d of %d used)", len(char.Spells), char.SpellSlots).
			WithMeta("character_id", char.ID).
			WithMeta("spell_slots", char.SpellSlots)
	}

	spellOutput, err := o.spellRepo.Get(ctx, spellrepo.GetInput{ID: input.SpellID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get spell")
	}
	spell := spellOutput.Spell

	if !char.CanAccess(spell.Subschool) {
		return nil, errors.PermissionDeniedf("exotic school %s is locked", spell.Subschool).
			WithMeta("character_id", char.ID).
			WithMeta("school", spell.Subschool)
	}

	char.Spells = append(char.Spells, entities.CharacterSpell{
		SpellID: spell.ID,
		Notes:   input.Notes,
		AddedAt: o.clock.Now().Unix(),
	})

	updated, err := o.save(ctx, char)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Spell learned",
		"character_id", char.ID,
		"spell_id", spell.ID,
		"slots_used", len(updated.Spells),
		"spell_slots", updated.SpellSlots,
	)

	return &LearnSpellOutput{Character: updated}, nil
}

// ForgetSpell removes a spell from the character's spellbook
func (o *Orchestrator) ForgetSpell(ctx context.Context, input *ForgetSpellInput) (*ForgetSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("spell_id", input.SpellID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if !char.HasSpell(input.SpellID) {
		return nil, errors.NotFoundf("spell %s is not learned", input.SpellID)
	}

	kept := make([]entities.CharacterSpell, 0, len(char.Spells)-1)
	for _, s := range char.Spells {
		if s.SpellID != input.SpellID {
			kept = append(kept, s)
		}
	}
	char.Spells = kept

	updated, err := o.save(ctx, char)
	if err != nil {
		return nil, err
	}

	return &ForgetSpellOutput{Character: updated}, nil
}

// SetExoticAccess locks or unlocks one exotic subschool
func (o *Orchestrator) SetExoticAccess(
	ctx context.Context,
	input *SetExoticAccessInput,
) (*SetExoticAccessOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateEnum("school", input.School, entities.ExoticSchools, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if char.ExoticSchools == nil {
		char.ExoticSchools = make(map[string]bool, len(entities.ExoticSchools))
	}
	char.ExoticSchools[input.School] = input.Unlocked

	updated, err := o.save(ctx, char)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Exotic access changed",
		"character_id", char.ID,
		"school", input.School,
		"unlocked", input.Unlocked,
	)

	return &SetExoticAccessOutput{Character: updated}, nil
}

func (o *Orchestrator) load(ctx context.Context, id string) (*entities.Character, error) {
	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	return getOutput.Character, nil
}

func (o *Orchestrator) save(ctx context.Context, char *entities.Character) (*entities.Character, error) {
	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}
	return updateOutput.Character, nil
}
