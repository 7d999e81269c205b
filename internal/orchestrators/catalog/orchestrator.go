// Package catalog implements browsing of the spell, item and creature catalogs
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/anyventure/companion-api/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"

	"github.com/anyventure/companion-api/internal/engine"
	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	characterrepo "github.com/anyventure/companion-api/internal/repositories/character"
	creaturerepo "github.com/anyventure/companion-api/internal/repositories/creature"
	itemrepo "github.com/anyventure/companion-api/internal/repositories/item"
	spellrepo "github.com/anyventure/companion-api/internal/repositories/spell"
)

// Service defines the interface for catalog browsing
type Service interface {
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error)
	ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	SpellRepo     spellrepo.Repository
	ItemRepo      itemrepo.Repository
	CreatureRepo  creaturerepo.Repository
	CharacterRepo characterrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	spellRepo     spellrepo.Repository
	itemRepo      itemrepo.Repository
	creatureRepo  creaturerepo.Repository
	characterRepo characterrepo.Repository
}

// NewOrchestrator creates a new catalog orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		spellRepo:     cfg.SpellRepo,
		itemRepo:      cfg.ItemRepo,
		creatureRepo:  cfg.CreatureRepo,
		characterRepo: cfg.CharacterRepo,
	}, nil
}

// listQuery carries the request parts shared by every list operation
type listQuery struct {
	searchTerm string
	filters    map[string]string
	filter     string
	orderBy    string
	fields     engine.Fields
	orderKeys  map[string]engine.SortKey
	defaults   []engine.SortKey
}

func (q listQuery) build() (engine.Query, error) {
	expression, err := engine.ParseFilter(q.filter, q.fields)
	if err != nil {
		return engine.Query{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid filter")
	}

	sortKeys, err := engine.ParseOrderBy(q.orderBy, q.orderKeys)
	if err != nil {
		return engine.Query{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid order_by")
	}
	if len(sortKeys) == 0 {
		sortKeys = q.defaults
	}

	return engine.Query{
		SearchTerm: q.searchTerm,
		Filters:    q.filters,
		SortKeys:   sortKeys,
		Expression: expression,
	}, nil
}

// ListSpells browses spells, optionally from one character's point of view
func (o *orchestrator) ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	query, err := listQuery{
		searchTerm: input.SearchTerm,
		filters:    map[string]string{"subschool": input.Subschool},
		filter:     input.Filter,
		orderBy:    input.OrderBy,
		fields:     spellFields,
		orderKeys:  spellOrderKeys,
		defaults:   defaultSpellOrder,
	}.build()
	if err != nil {
		return nil, err
	}

	if input.CharacterID != "" {
		charOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to get character")
		}
		query.GateExotic = true
		query.ExoticAccess = charOutput.Character.ExoticSchools
		query.Known = charOutput.Character.KnownSpells()
	}

	school := input.School
	if school == engine.FilterAll {
		school = ""
	}
	listOutput, err := o.spellRepo.List(ctx, spellrepo.ListInput{School: school})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells")
	}

	spells := engine.FilterRecords(listOutput.Spells, query)

	slog.DebugContext(ctx, "listed spells",
		"character_id", input.CharacterID,
		"candidates", len(listOutput.Spells),
		"matched", len(spells))

	views := make([]*SpellView, len(spells))
	for i, s := range spells {
		views[i] = &SpellView{Spell: s, Learned: query.Known[s.ID]}
	}

	return &ListSpellsOutput{Spells: views}, nil
}

// ListItems browses items ordered by rarity by default
func (o *orchestrator) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	query, err := listQuery{
		searchTerm: input.SearchTerm,
		filters: map[string]string{
			"rarity":          input.Rarity,
			"weapon_category": input.WeaponCategory,
		},
		filter:    input.Filter,
		orderBy:   input.OrderBy,
		fields:    itemFields,
		orderKeys: itemOrderKeys,
		defaults:  defaultItemOrder,
	}.build()
	if err != nil {
		return nil, err
	}

	itemType := input.Type
	if itemType == engine.FilterAll {
		itemType = ""
	}
	listOutput, err := o.itemRepo.List(ctx, itemrepo.ListInput{Type: itemType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := engine.FilterRecords(listOutput.Items, query)

	views := make([]*ItemView, len(items))
	for i, item := range items {
		views[i] = newItemView(item)
	}

	return &ListItemsOutput{Items: views}, nil
}

// GetItem returns one item with its display strings
func (o *orchestrator) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	getOutput, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item")
	}

	return &GetItemOutput{Item: newItemView(getOutput.Item)}, nil
}

// GetCreature returns the derived sheet of one creature
func (o *orchestrator) GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	getOutput, err := o.creatureRepo.Get(ctx, creaturerepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get creature")
	}

	return &GetCreatureOutput{Sheet: newCreatureSheet(getOutput.Creature)}, nil
}

// ListCreatures browses the bestiary ordered by tier by default
func (o *orchestrator) ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	query, err := listQuery{
		searchTerm: input.SearchTerm,
		filters:    map[string]string{"type": input.Type},
		filter:     input.Filter,
		orderBy:    input.OrderBy,
		fields:     creatureFields,
		orderKeys:  creatureOrderKeys,
		defaults:   defaultCreatureOrder,
	}.build()
	if err != nil {
		return nil, err
	}

	tier := entities.Tier(input.Tier)
	if input.Tier == engine.FilterAll {
		tier = ""
	}
	listOutput, err := o.creatureRepo.List(ctx, creaturerepo.ListInput{Tier: tier})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}

	return &ListCreaturesOutput{Creatures: engine.FilterRecords(listOutput.Creatures, query)}, nil
}
