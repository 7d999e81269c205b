package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
)

var (
	spellNotes string
	lockSchool bool
)

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Show a character's spellbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetCharacter,
}

var learnSpellCmd = &cobra.Command{
	Use:   "learn-spell [character-id] [spell-id]",
	Short: "Add a spell to a character's spellbook",
	Args:  cobra.ExactArgs(2),
	RunE:  runLearnSpell,
}

var forgetSpellCmd = &cobra.Command{
	Use:   "forget-spell [character-id] [spell-id]",
	Short: "Remove a spell from a character's spellbook",
	Args:  cobra.ExactArgs(2),
	RunE:  runForgetSpell,
}

var setExoticCmd = &cobra.Command{
	Use:   "set-exotic [character-id] [school]",
	Short: "Unlock an exotic subschool for a character",
	Long: `Unlock (or with --lock, lock) an exotic subschool:
fiend, draconic, fey, celestial or cosmic.`,
	Args: cobra.ExactArgs(2),
	RunE: runSetExotic,
}

func init() {
	learnSpellCmd.Flags().StringVar(&spellNotes, "notes", "", "Notes to keep with the spell")
	setExoticCmd.Flags().BoolVar(&lockSchool, "lock", false, "Lock the school instead of unlocking it")
}

func runGetCharacter(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCharacter(ctx, &apiv1alpha1.GetCharacterRequest{Id: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	fmt.Println(renderCharacter(resp.Character))
	return nil
}

func runLearnSpell(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.LearnSpell(ctx, &apiv1alpha1.LearnSpellRequest{
		CharacterId: args[0],
		SpellId:     args[1],
		Notes:       spellNotes,
	})
	if err != nil {
		return fmt.Errorf("failed to learn spell: %w", err)
	}

	fmt.Println(renderCharacter(resp.Character))
	return nil
}

func runForgetSpell(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ForgetSpell(ctx, &apiv1alpha1.ForgetSpellRequest{
		CharacterId: args[0],
		SpellId:     args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to forget spell: %w", err)
	}

	fmt.Println(renderCharacter(resp.Character))
	return nil
}

func runSetExotic(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetExoticAccess(ctx, &apiv1alpha1.SetExoticAccessRequest{
		CharacterId: args[0],
		School:      args[1],
		Unlocked:    !lockSchool,
	})
	if err != nil {
		return fmt.Errorf("failed to set exotic access: %w", err)
	}

	fmt.Println(renderCharacter(resp.Character))
	return nil
}
