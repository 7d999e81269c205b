// Package dice implements the dice orchestrator for skill checks and roll logs
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/anyventure/companion-api/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/anyventure/companion-api/internal/engine"
	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/pkg/clock"
	"github.com/anyventure/companion-api/internal/pkg/idgen"
	characterrepo "github.com/anyventure/companion-api/internal/repositories/character"
	"github.com/anyventure/companion-api/internal/repositories/rolllog"
)

// Service defines the interface for dice operations
type Service interface {
	RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error)
	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	RollLogRepo rolllog.Repository
	// CharacterRepo is needed only for rolls made from the character sheet
	CharacterRepo characterrepo.Repository
	IDGenerator   idgen.Generator
	Roller        dice.Roller
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.RollLogRepo == nil {
		vb.RequiredField("RollLogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	rollLogRepo   rolllog.Repository
	characterRepo characterrepo.Repository
	idGen         idgen.Generator
	roller        dice.Roller
	clock         clock.Clock
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		rollLogRepo:   cfg.RollLogRepo,
		characterRepo: cfg.CharacterRepo,
		idGen:         cfg.IDGenerator,
		roller:        roller,
		clock:         c,
	}, nil
}

// RollSkillCheck rolls talent dice of the skill's die size and keeps the highest
func (o *orchestrator) RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("skill", input.Skill, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	talent, level := input.Talent, input.Level
	if input.FromSheet {
		var err error
		talent, level, err = o.sheetValues(ctx, input.CharacterID, input.Skill)
		if err != nil {
			return nil, err
		}
	}

	// sheet values are checked too; a stored sheet is not trusted to be in range
	vb = errors.NewValidationBuilder()
	errors.ValidateRange("talent", talent, 0, entities.MaxTalent, vb)
	errors.ValidateRange("level", level, entities.MinSkillLevel, entities.MaxSkillLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	roll, err := o.rollSkill(input.Skill, talent, level, input.TierModifier)
	if err != nil {
		return nil, err
	}
	roll.Description = input.Description
	if roll.Description == "" {
		roll.Description = fmt.Sprintf("%s check", input.Skill)
	}

	appendOutput, err := o.rollLogRepo.Append(ctx, rolllog.AppendInput{
		CharacterID: input.CharacterID,
		Roll:        *roll,
		TTL:         input.TTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record skill roll")
	}

	slog.InfoContext(ctx, "Skill check rolled",
		"character_id", input.CharacterID,
		"skill", input.Skill,
		"notation", roll.Notation,
		"result", roll.Result,
		"roll_id", roll.RollID,
	)

	return &RollSkillCheckOutput{
		Roll: roll,
		Log:  appendOutput.Log,
	}, nil
}

func (o *orchestrator) sheetValues(ctx context.Context, characterID, skill string) (talent, level int, err error) {
	if o.characterRepo == nil {
		return 0, 0, errors.FailedPrecondition("character sheet rolls are not configured")
	}
	if _, ok := entities.AttributeForSkill(skill); !ok {
		return 0, 0, errors.InvalidArgumentf("unknown skill: %s", skill)
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to get character")
	}

	return out.Character.Talent(skill), out.Character.Skills[skill], nil
}

// rollSkill applies the skill dice rules: no talent rolls nothing and a
// negative level is an automatic 1.
func (o *orchestrator) rollSkill(skill string, talent, level, tierModifier int) (*rolllog.SkillRoll, error) {
	roll := &rolllog.SkillRoll{
		RollID:   o.idGen.Generate(),
		Skill:    skill,
		Notation: engine.SkillDiceString(talent, level, tierModifier),
		RolledAt: o.clock.Now(),
	}

	switch {
	case talent <= 0:
		return roll, nil
	case level < 0:
		roll.Result = 1
		return roll, nil
	}

	size := engine.ModifiedDieSize(level, tierModifier)
	values, err := o.roller.RollN(talent, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", roll.Notation)
	}
	if len(values) == 0 {
		return nil, errors.Internalf("roller returned no dice for %s", roll.Notation)
	}

	roll.DieSize = int32(size) // nolint:gosec // die sizes are small
	roll.Dice = make([]int32, len(values))
	for i, v := range values {
		roll.Dice[i] = int32(v) // nolint:gosec // die faces are small
	}
	roll.Result = slices.Max(roll.Dice)

	return roll, nil
}

// GetRollLog retrieves a character's recent rolls
func (o *orchestrator) GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.rollLogRepo.Get(ctx, rolllog.GetInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get roll log")
	}

	return &GetRollLogOutput{Log: getOutput.Log}, nil
}

// ClearRollLog removes a character's recent rolls
func (o *orchestrator) ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	clearOutput, err := o.rollLogRepo.Clear(ctx, rolllog.ClearInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear roll log")
	}

	slog.InfoContext(ctx, "Roll log cleared",
		"character_id", input.CharacterID,
		"rolls_deleted", clearOutput.RollsDeleted,
	)

	return &ClearRollLogOutput{RollsDeleted: clearOutput.RollsDeleted}, nil
}
