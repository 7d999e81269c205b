// Package creature provides the interface for bestiary persistence
package creature

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturemock github.com/anyventure/companion-api/internal/repositories/creature Repository

import (
	"context"

	"github.com/anyventure/companion-api/internal/entities"
)

// Repository defines the interface for creature persistence
type Repository interface {
	// Save creates or replaces a creature
	// Returns errors.InvalidArgument for a nil creature or empty ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a creature by ID
	// Returns errors.NotFound if the creature does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns creatures, optionally restricted to one tier
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a creature
	// Returns errors.NotFound if the creature does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a creature
type SaveInput struct {
	Creature *entities.Creature
}

// SaveOutput defines the output for saving a creature
type SaveOutput struct {
	Creature *entities.Creature
}

// GetInput defines the input for getting a creature
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a creature
type GetOutput struct {
	Creature *entities.Creature
}

// ListInput defines the input for listing creatures
type ListInput struct {
	// Tier uses the tier index when set
	Tier entities.Tier
}

// ListOutput defines the output for listing creatures
type ListOutput struct {
	Creatures []*entities.Creature
}

// DeleteInput defines the input for deleting a creature
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a creature
type DeleteOutput struct{}
