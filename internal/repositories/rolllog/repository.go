// Package rolllog provides repository interface and types for per-character skill roll logs
package rolllog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/anyventure/companion-api/internal/repositories/rolllog Repository

// RollLog is the recent roll history of one character
type RollLog struct {
	// Character that made these rolls
	CharacterID string

	// Rolls in the order they were made, oldest first
	Rolls []SkillRoll

	// When the first roll of this log was made
	CreatedAt time.Time

	// When this log expires
	ExpiresAt time.Time
}

// SkillRoll represents a single skill check
type SkillRoll struct {
	// Unique identifier for this roll
	RollID string

	// Skill that was rolled, e.g. "stealth"
	Skill string

	// Dice expression that was rolled, e.g. "3d8"
	Notation string

	// Individual dice values
	Dice []int32

	// Size of each die, 0 when no dice were rolled
	DieSize int32

	// Highest die, or 1 on an automatic failure
	Result int32

	// Human-readable description of the roll
	Description string

	RolledAt time.Time
}

// AppendInput contains parameters for appending a roll
type AppendInput struct {
	CharacterID string
	Roll        SkillRoll
	// TTL applies when the append starts a new log
	TTL time.Duration
}

// AppendOutput contains the log after the append
type AppendOutput struct {
	Log *RollLog
}

// GetInput contains parameters for retrieving a roll log
type GetInput struct {
	CharacterID string
}

// GetOutput contains the retrieved roll log
type GetOutput struct {
	Log *RollLog
}

// ClearInput contains parameters for clearing a roll log
type ClearInput struct {
	CharacterID string
}

// ClearOutput contains the result of clearing a roll log
type ClearOutput struct {
	RollsDeleted int32
}

// Repository defines the interface for roll log storage operations
type Repository interface {
	// Append adds a roll, starting a new log if none is live
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get retrieves the live roll log of a character
	// Returns errors.NotFound if no log exists or it has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Clear removes a character's roll log
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
