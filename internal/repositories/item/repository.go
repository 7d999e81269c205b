// Package item provides the interface for item catalog persistence
package item

//go:generate mockgen -destination=mock/mock_repository.go -package=itemmock github.com/anyventure/companion-api/internal/repositories/item Repository

import (
	"context"

	"github.com/anyventure/companion-api/internal/entities"
)

// Repository defines the interface for item persistence
type Repository interface {
	// Save creates or replaces an item
	// Returns errors.InvalidArgument for a nil item or empty ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves an item by ID
	// Returns errors.NotFound if the item does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns items, optionally restricted to one item type
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes an item
	// Returns errors.NotFound if the item does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving an item
type SaveInput struct {
	Item *entities.Item
}

// SaveOutput defines the output for saving an item
type SaveOutput struct {
	Item *entities.Item
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *entities.Item
}

// ListInput defines the input for listing items
type ListInput struct {
	// Type uses the item type index when set
	Type string
}

// ListOutput defines the output for listing items
type ListOutput struct {
	Items []*entities.Item
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}
