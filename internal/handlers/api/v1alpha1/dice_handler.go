package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/orchestrators/dice"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	if c == nil || c.DiceService == nil {
		return errors.InvalidArgument("dice service is required")
	}
	return nil
}

// DiceHandler implements the dice gRPC service
type DiceHandler struct {
	apiv1alpha1.UnimplementedDiceServiceServer
	diceService dice.Service
}

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

// RollSkillCheck rolls a skill check and records it in the character's log
func (h *DiceHandler) RollSkillCheck(
	ctx context.Context,
	req *apiv1alpha1.RollSkillCheckRequest,
) (*apiv1alpha1.RollSkillCheckResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", req.CharacterId, vb)
	errors.ValidateRequired("skill", req.Skill, vb)
	if !req.FromSheet {
		errors.ValidateRange("talent", int(req.Talent), 0, entities.MaxTalent, vb)
		errors.ValidateRange("level", int(req.Level), entities.MinSkillLevel, entities.MaxSkillLevel, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.diceService.RollSkillCheck(ctx, &dice.RollSkillCheckInput{
		CharacterID:  req.CharacterId,
		Skill:        req.Skill,
		Talent:       int(req.Talent),
		Level:        int(req.Level),
		TierModifier: int(req.TierModifier),
		FromSheet:    req.FromSheet,
		Description:  req.Description,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RollSkillCheckResponse{
		Roll:      convertSkillRoll(out.Roll),
		ExpiresAt: out.Log.ExpiresAt.Unix(),
	}, nil
}

// GetRollLog returns a character's recent rolls
func (h *DiceHandler) GetRollLog(
	ctx context.Context,
	req *apiv1alpha1.GetRollLogRequest,
) (*apiv1alpha1.GetRollLogResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	out, err := h.diceService.GetRollLog(ctx, &dice.GetRollLogInput{CharacterID: req.CharacterId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rolls := make([]*apiv1alpha1.SkillRoll, len(out.Log.Rolls))
	for i := range out.Log.Rolls {
		rolls[i] = convertSkillRoll(&out.Log.Rolls[i])
	}

	return &apiv1alpha1.GetRollLogResponse{
		Rolls:     rolls,
		ExpiresAt: out.Log.ExpiresAt.Unix(),
	}, nil
}

// ClearRollLog removes a character's recent rolls
func (h *DiceHandler) ClearRollLog(
	ctx context.Context,
	req *apiv1alpha1.ClearRollLogRequest,
) (*apiv1alpha1.ClearRollLogResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	out, err := h.diceService.ClearRollLog(ctx, &dice.ClearRollLogInput{CharacterID: req.CharacterId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ClearRollLogResponse{RollsDeleted: out.RollsDeleted}, nil
}

func requireCharacterID(id string) error {
	if id == "" {
		return errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	return nil
}
