// Package spell provides the interface for spell catalog persistence
package spell

//go:generate mockgen -destination=mock/mock_repository.go -package=spellmock github.com/anyventure/companion-api/internal/repositories/spell Repository

import (
	"context"

	"github.com/anyventure/companion-api/internal/entities"
)

// Repository defines the interface for spell persistence
type Repository interface {
	// Save creates or replaces a spell
	// Returns errors.InvalidArgument for a nil spell or empty ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a spell by ID
	// Returns errors.NotFound if the spell does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns spells, optionally restricted to one school
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a spell
	// Returns errors.NotFound if the spell does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a spell
type SaveInput struct {
	Spell *entities.Spell
}

// SaveOutput defines the output for saving a spell
type SaveOutput struct {
	Spell *entities.Spell
}

// GetInput defines the input for getting a spell
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a spell
type GetOutput struct {
	Spell *entities.Spell
}

// ListInput defines the input for listing spells
type ListInput struct {
	// School uses the school index when set
	School string
}

// ListOutput defines the output for listing spells
type ListOutput struct {
	Spells []*entities.Spell
}

// DeleteInput defines the input for deleting a spell
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a spell
type DeleteOutput struct{}
