// Package seed loads catalog and character YAML files into the repositories
package seed

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/pkg/idgen"
	characterrepo "github.com/anyventure/companion-api/internal/repositories/character"
	creaturerepo "github.com/anyventure/companion-api/internal/repositories/creature"
	itemrepo "github.com/anyventure/companion-api/internal/repositories/item"
	spellrepo "github.com/anyventure/companion-api/internal/repositories/spell"
)

// Seed file names inside the seed directory
const (
	SpellsFile     = "spells.yaml"
	ItemsFile      = "items.yaml"
	CreaturesFile  = "creatures.yaml"
	CharactersFile = "characters.yaml"
)

// Config holds the loader dependencies. ID generators default to prefixed UUIDs.
type Config struct {
	SpellRepo     spellrepo.Repository
	ItemRepo      itemrepo.Repository
	CreatureRepo  creaturerepo.Repository
	CharacterRepo characterrepo.Repository

	SpellIDs     idgen.Generator
	ItemIDs      idgen.Generator
	CreatureIDs  idgen.Generator
	CharacterIDs idgen.Generator
}

// Validate validates the configuration
func (c *Config) Validate() error {
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

// Counts reports what happened to the records of one file
type Counts struct {
	Loaded  int
	Skipped int
}

// LoadInput defines the request for seeding a directory
type LoadInput struct {
	Dir string
}

// LoadOutput reports per-file counts keyed by file name. Missing files are absent.
type LoadOutput struct {
	Files map[string]Counts
}

// Loader writes seed files through the repositories
type Loader struct {
	spellRepo     spellrepo.Repository
	itemRepo      itemrepo.Repository
	creatureRepo  creaturerepo.Repository
	characterRepo characterrepo.Repository

	spellIDs     idgen.Generator
	itemIDs      idgen.Generator
	creatureIDs  idgen.Generator
	characterIDs idgen.Generator
}

// New creates a loader
func New(cfg *Config) (*Loader, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid seed config")
	}

	return &Loader{
		spellRepo:     cfg.SpellRepo,
		itemRepo:      cfg.ItemRepo,
		creatureRepo:  cfg.CreatureRepo,
		characterRepo: cfg.CharacterRepo,
		spellIDs:      orUUID(cfg.SpellIDs, idgen.PrefixSpell),
		itemIDs:       orUUID(cfg.ItemIDs, idgen.PrefixItem),
		creatureIDs:   orUUID(cfg.CreatureIDs, idgen.PrefixCreature),
		characterIDs:  orUUID(cfg.CharacterIDs, idgen.PrefixCharacter),
	}, nil
}

func orUUID(g idgen.Generator, prefix string) idgen.Generator {
	if g != nil {
		return g
	}
	return idgen.NewUUID(prefix)
}

// Load reads every seed file present in input.Dir. Records without a name are
// skipped; a write failure aborts the load.
func (l *Loader) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Dir == "" {
		return nil, errors.InvalidArgument("dir is required")
	}

	out := &LoadOutput{Files: make(map[string]Counts)}

	steps := []struct {
		file string
		load func(context.Context, string) (Counts, error)
	}{
		{SpellsFile, l.loadSpells},
		{ItemsFile, l.loadItems},
		{CreaturesFile, l.loadCreatures},
		{CharactersFile, l.loadCharacters},
	}

	for _, step := range steps {
		path := filepath.Join(input.Dir, step.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			slog.DebugContext(ctx, "seed file not present", "path", path)
			continue
		}

		counts, err := step.load(ctx, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed %s", step.file)
		}
		out.Files[step.file] = counts

		slog.InfoContext(ctx, "seeded file",
			"file", step.file,
			"loaded", counts.Loaded,
			"skipped", counts.Skipped)
	}

	return out, nil
}

func readFile[T any](path string) ([]*T, error) {
	data, err := os.ReadFile(path) // #nosec G304 // operator-supplied seed path
	if err != nil {
		return nil, errors.Wrap(err, "failed to read seed file")
	}

	var records []*T
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse seed file")
	}
	return records, nil
}

func skip(ctx context.Context, path string, index int, reason string) {
	slog.WarnContext(ctx, "skipping seed record",
		"path", path,
		"index", index,
		"reason", reason)
}

func (l *Loader) loadSpells(ctx context.Context, path string) (Counts, error) {
	records, err := readFile[entities.Spell](path)
	if err != nil {
		return Counts{}, err
	}

	var counts Counts
	for i, s := range records {
		if s == nil || strings.TrimSpace(s.Name) == "" {
			skip(ctx, path, i, "missing name")
			counts.Skipped++
			continue
		}
		if s.Subschool != "" && !entities.IsValidSubschool(s.School, s.Subschool) {
			skip(ctx, path, i, "subschool does not belong to school")
			counts.Skipped++
			continue
		}
		if s.ID == "" {
			s.ID = l.spellIDs.Generate()
		}
		if _, err := l.spellRepo.Save(ctx, spellrepo.SaveInput{Spell: s}); err != nil {
			return counts, err
		}
		counts.Loaded++
	}
	return counts, nil
}

func (l *Loader) loadItems(ctx context.Context, path string) (Counts, error) {
	records, err := readFile[entities.Item](path)
	if err != nil {
		return Counts{}, err
	}

	var counts Counts
	for i, item := range records {
		if item == nil || strings.TrimSpace(item.Name) == "" {
			skip(ctx, path, i, "missing name")
			counts.Skipped++
			continue
		}
		if item.ID == "" {
			item.ID = l.itemIDs.Generate()
		}
		if _, err := l.itemRepo.Save(ctx, itemrepo.SaveInput{Item: item}); err != nil {
			return counts, err
		}
		counts.Loaded++
	}
	return counts, nil
}

func (l *Loader) loadCreatures(ctx context.Context, path string) (Counts, error) {
	records, err := readFile[entities.Creature](path)
	if err != nil {
		return Counts{}, err
	}

	var counts Counts
	for i, c := range records {
		if c == nil || strings.TrimSpace(c.Name) == "" {
			skip(ctx, path, i, "missing name")
			counts.Skipped++
			continue
		}
		if c.ID == "" {
			c.ID = l.creatureIDs.Generate()
		}
		if _, err := l.creatureRepo.Save(ctx, creaturerepo.SaveInput{Creature: c}); err != nil {
			return counts, err
		}
		counts.Loaded++
	}
	return counts, nil
}

// loadCharacters creates new characters and replaces ones that already exist
func (l *Loader) loadCharacters(ctx context.Context, path string) (Counts, error) {
	records, err := readFile[entities.Character](path)
	if err != nil {
		return Counts{}, err
	}

	var counts Counts
	for i, c := range records {
		if c == nil || strings.TrimSpace(c.Name) == "" {
			skip(ctx, path, i, "missing name")
			counts.Skipped++
			continue
		}
		if c.ID == "" {
			c.ID = l.characterIDs.Generate()
		}
		if c.SpellSlots == 0 {
			c.SpellSlots = entities.DefaultSpellSlots
		}

		_, err := l.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c})
		if errors.IsAlreadyExists(err) {
			_, err = l.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: c})
		}
		if err != nil {
			return counts, err
		}
		counts.Loaded++
	}
	return counts, nil
}
