package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/orchestrators/character"
)

// CharacterHandlerConfig holds dependencies for the character handler
type CharacterHandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *CharacterHandlerConfig) Validate() error {
	if c == nil || c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// CharacterHandler implements the character gRPC service
type CharacterHandler struct {
	apiv1alpha1.UnimplementedCharacterServiceServer
	characterService character.Service
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(cfg *CharacterHandlerConfig) (*CharacterHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CharacterHandler{
		characterService: cfg.CharacterService,
	}, nil
}

func (h *CharacterHandler) CreateCharacter(
	ctx context.Context,
	req *apiv1alpha1.CreateCharacterRequest,
) (*apiv1alpha1.CreateCharacterResponse, error) {
	out, err := h.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{
		Name:       req.Name,
		PlayerID:   req.PlayerId,
		SpellSlots: int(req.SpellSlots),
		Attributes: intMap(req.Attributes),
		Skills:     intMap(req.Skills),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CreateCharacterResponse{Character: convertCharacter(out.Character)}, nil
}

func (h *CharacterHandler) GetCharacter(
	ctx context.Context,
	req *apiv1alpha1.GetCharacterRequest,
) (*apiv1alpha1.GetCharacterResponse, error) {
	if req.Id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{ID: req.Id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetCharacterResponse{Character: convertCharacter(out.Character)}, nil
}

func (h *CharacterHandler) ListCharacters(
	ctx context.Context,
	req *apiv1alpha1.ListCharactersRequest,
) (*apiv1alpha1.ListCharactersResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{PlayerID: req.PlayerId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	characters := make([]*apiv1alpha1.Character, len(out.Characters))
	for i, c := range out.Characters {
		characters[i] = convertCharacter(c)
	}

	return &apiv1alpha1.ListCharactersResponse{Characters: characters}, nil
}

func (h *CharacterHandler) LearnSpell(
	ctx context.Context,
	req *apiv1alpha1.LearnSpellRequest,
) (*apiv1alpha1.LearnSpellResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.SpellId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("spell_id is required"))
	}

	out, err := h.characterService.LearnSpell(ctx, &character.LearnSpellInput{
		CharacterID: req.CharacterId,
		SpellID:     req.SpellId,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.LearnSpellResponse{Character: convertCharacter(out.Character)}, nil
}

func (h *CharacterHandler) ForgetSpell(
	ctx context.Context,
	req *apiv1alpha1.ForgetSpellRequest,
) (*apiv1alpha1.ForgetSpellResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.SpellId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("spell_id is required"))
	}

	out, err := h.characterService.ForgetSpell(ctx, &character.ForgetSpellInput{
		CharacterID: req.CharacterId,
		SpellID:     req.SpellId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ForgetSpellResponse{Character: convertCharacter(out.Character)}, nil
}

func (h *CharacterHandler) SetExoticAccess(
	ctx context.Context,
	req *apiv1alpha1.SetExoticAccessRequest,
) (*apiv1alpha1.SetExoticAccessResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.SetExoticAccess(ctx, &character.SetExoticAccessInput{
		CharacterID: req.CharacterId,
		School:      req.School,
		Unlocked:    req.Unlocked,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.SetExoticAccessResponse{Character: convertCharacter(out.Character)}, nil
}
