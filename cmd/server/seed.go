package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/anyventure/companion-api/internal/seed"
)

var seedDir string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog YAML files into Redis",
	Long: `Load spells.yaml, items.yaml, creatures.yaml and characters.yaml from a
directory into Redis. Records without an ID get one; records without a name are skipped.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedDir, "dir", "", "Seed directory (overrides ANYVENTURE_SEED_DIR)")
	seedCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (overrides ANYVENTURE_REDIS_ADDR)")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	setupLogger(cfg)

	dir := cfg.SeedDir
	if cmd.Flags().Changed("dir") {
		dir = seedDir
	}

	ctx := cmd.Context()
	repos, err := connectRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = repos.Close()
	}()

	loader, err := seed.New(&seed.Config{
		SpellRepo:     repos.spells,
		ItemRepo:      repos.items,
		CreatureRepo:  repos.creatures,
		CharacterRepo: repos.chars,
	})
	if err != nil {
		return err
	}

	out, err := loader.Load(ctx, &seed.LoadInput{Dir: dir})
	if err != nil {
		return err
	}

	files := make([]string, 0, len(out.Files))
	for f := range out.Files {
		files = append(files, f)
	}
	sort.Strings(files)

	for _, f := range files {
		c := out.Files[f]
		fmt.Printf("%-16s loaded %3d  skipped %3d\n", f, c.Loaded, c.Skipped)
	}
	return nil
}
