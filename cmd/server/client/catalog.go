package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
)

var (
	searchTerm  string
	filterExpr  string
	orderBy     string
	characterID string
	school      string
	subschool   string
	itemType    string
	rarity      string
	tier        string
)

var listSpellsCmd = &cobra.Command{
	Use:   "list-spells",
	Short: "Browse the spell catalog",
	Long: `Browse spells. With --character, locked exotic subschools are hidden and
learned spells are listed first. Examples:

  list-spells --school black
  list-spells --filter 'energy <= 2 AND concentration = false'
  list-spells --character char_mira --order-by 'check_to_cast desc'`,
	RunE: runListSpells,
}

var listItemsCmd = &cobra.Command{
	Use:   "list-items",
	Short: "Browse the item catalog",
	RunE:  runListItems,
}

var listCreaturesCmd = &cobra.Command{
	Use:   "list-creatures",
	Short: "Browse the bestiary",
	RunE:  runListCreatures,
}

var getCreatureCmd = &cobra.Command{
	Use:   "get-creature [creature-id]",
	Short: "Show a creature sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetCreature,
}

func init() {
	for _, cmd := range []*cobra.Command{listSpellsCmd, listItemsCmd, listCreaturesCmd} {
		cmd.Flags().StringVar(&searchTerm, "search", "", "Match name or description")
		cmd.Flags().StringVar(&filterExpr, "filter", "", "AIP-160 filter expression")
		cmd.Flags().StringVar(&orderBy, "order-by", "", "AIP-132 order_by clause")
	}

	listSpellsCmd.Flags().StringVar(&characterID, "character", "", "Character whose spellbook gates the list")
	listSpellsCmd.Flags().StringVar(&school, "school", "", "School, or all")
	listSpellsCmd.Flags().StringVar(&subschool, "subschool", "", "Subschool, or all")

	listItemsCmd.Flags().StringVar(&itemType, "type", "", "Item type, or all")
	listItemsCmd.Flags().StringVar(&rarity, "rarity", "", "Rarity, or all")

	listCreaturesCmd.Flags().StringVar(&tier, "tier", "", "Tier, or all")
}

func runListSpells(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListSpells(ctx, &apiv1alpha1.ListSpellsRequest{
		CharacterId: characterID,
		SearchTerm:  searchTerm,
		School:      school,
		Subschool:   subschool,
		Filter:      filterExpr,
		OrderBy:     orderBy,
	})
	if err != nil {
		return fmt.Errorf("failed to list spells: %w", err)
	}

	fmt.Println(renderSpells(resp.Spells))
	return nil
}

func runListItems(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListItems(ctx, &apiv1alpha1.ListItemsRequest{
		SearchTerm: searchTerm,
		Type:       itemType,
		Rarity:     rarity,
		Filter:     filterExpr,
		OrderBy:    orderBy,
	})
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	fmt.Println(renderItems(resp.Items))
	return nil
}

func runListCreatures(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCreatures(ctx, &apiv1alpha1.ListCreaturesRequest{
		SearchTerm: searchTerm,
		Tier:       tier,
		Filter:     filterExpr,
		OrderBy:    orderBy,
	})
	if err != nil {
		return fmt.Errorf("failed to list creatures: %w", err)
	}

	for _, c := range resp.Creatures {
		fmt.Printf("%s  %s (%s %s, CR %d)\n", tierBadge(c.Tier, c.TierColor), c.Name, c.Size, c.Type, c.ChallengeRating)
	}
	fmt.Printf("\n%d creatures\n", len(resp.Creatures))
	return nil
}

func runGetCreature(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCreature(ctx, &apiv1alpha1.GetCreatureRequest{Id: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get creature: %w", err)
	}

	fmt.Println(renderCreatureSheet(resp.Creature))
	return nil
}
