// Package v1alpha1 implements the anyventure.api.v1alpha1 gRPC services
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/orchestrators/catalog"
)

// CatalogHandlerConfig holds dependencies for the catalog handler
type CatalogHandlerConfig struct {
	CatalogService catalog.Service
}

// Validate ensures all required dependencies are present
func (c *CatalogHandlerConfig) Validate() error {
	if c == nil || c.CatalogService == nil {
		return errors.InvalidArgument("catalog service is required")
	}
	return nil
}

// CatalogHandler implements the catalog gRPC service
type CatalogHandler struct {
	apiv1alpha1.UnimplementedCatalogServiceServer
	catalogService catalog.Service
}

// NewCatalogHandler creates a new catalog handler with the given configuration
func NewCatalogHandler(cfg *CatalogHandlerConfig) (*CatalogHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CatalogHandler{
		catalogService: cfg.CatalogService,
	}, nil
}

// ListSpells browses spells, gated and ordered for a character when one is named
func (h *CatalogHandler) ListSpells(
	ctx context.Context,
	req *apiv1alpha1.ListSpellsRequest,
) (*apiv1alpha1.ListSpellsResponse, error) {
	out, err := h.catalogService.ListSpells(ctx, &catalog.ListSpellsInput{
		CharacterID: req.CharacterId,
		SearchTerm:  req.SearchTerm,
		School:      req.School,
		Subschool:   req.Subschool,
		Filter:      req.Filter,
		OrderBy:     req.OrderBy,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	spells := make([]*apiv1alpha1.Spell, len(out.Spells))
	for i, v := range out.Spells {
		spells[i] = convertSpellView(v)
	}

	return &apiv1alpha1.ListSpellsResponse{Spells: spells}, nil
}

// ListItems browses items
func (h *CatalogHandler) ListItems(
	ctx context.Context,
	req *apiv1alpha1.ListItemsRequest,
) (*apiv1alpha1.ListItemsResponse, error) {
	out, err := h.catalogService.ListItems(ctx, &catalog.ListItemsInput{
		SearchTerm:     req.SearchTerm,
		Type:           req.Type,
		Rarity:         req.Rarity,
		WeaponCategory: req.WeaponCategory,
		Filter:         req.Filter,
		OrderBy:        req.OrderBy,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	items := make([]*apiv1alpha1.Item, len(out.Items))
	for i, v := range out.Items {
		items[i] = convertItemView(v)
	}

	return &apiv1alpha1.ListItemsResponse{Items: items}, nil
}

// GetItem returns one item
func (h *CatalogHandler) GetItem(
	ctx context.Context,
	req *apiv1alpha1.GetItemRequest,
) (*apiv1alpha1.GetItemResponse, error) {
	if req.Id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.catalogService.GetItem(ctx, &catalog.GetItemInput{ID: req.Id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetItemResponse{Item: convertItemView(out.Item)}, nil
}

// GetCreature returns a derived creature sheet
func (h *CatalogHandler) GetCreature(
	ctx context.Context,
	req *apiv1alpha1.GetCreatureRequest,
) (*apiv1alpha1.GetCreatureResponse, error) {
	if req.Id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.catalogService.GetCreature(ctx, &catalog.GetCreatureInput{ID: req.Id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetCreatureResponse{Creature: convertCreatureSheet(out.Sheet)}, nil
}

// ListCreatures browses the bestiary
func (h *CatalogHandler) ListCreatures(
	ctx context.Context,
	req *apiv1alpha1.ListCreaturesRequest,
) (*apiv1alpha1.ListCreaturesResponse, error) {
	out, err := h.catalogService.ListCreatures(ctx, &catalog.ListCreaturesInput{
		SearchTerm: req.SearchTerm,
		Tier:       req.Tier,
		Type:       req.Type,
		Filter:     req.Filter,
		OrderBy:    req.OrderBy,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	creatures := make([]*apiv1alpha1.CreatureSummary, len(out.Creatures))
	for i, c := range out.Creatures {
		creatures[i] = convertCreatureSummary(c)
	}

	return &apiv1alpha1.ListCreaturesResponse{Creatures: creatures}, nil
}
