package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
)

var (
	talent       int32
	level        int32
	tierModifier int32
	fromSheet    bool
	rollDesc     string
	clearLog     bool
)

var rollSkillCmd = &cobra.Command{
	Use:   "roll-skill [character-id] [skill]",
	Short: "Roll a skill check",
	Long: `Roll talent dice of the skill's die size and keep the highest. Examples:

  roll-skill char_mira magic --from-sheet
  roll-skill char_tobin might --talent 3 --level 2
  roll-skill goblin stealth --talent 2 --level 1 --tier-modifier -1`,
	Args: cobra.ExactArgs(2),
	RunE: runRollSkill,
}

var rollLogCmd = &cobra.Command{
	Use:   "roll-log [character-id]",
	Short: "Show or clear a character's recent rolls",
	Args:  cobra.ExactArgs(1),
	RunE:  runRollLog,
}

func init() {
	rollSkillCmd.Flags().Int32Var(&talent, "talent", 0, "Number of dice to roll")
	rollSkillCmd.Flags().Int32Var(&level, "level", 0, "Skill level (-1 fails automatically)")
	rollSkillCmd.Flags().Int32Var(&tierModifier, "tier-modifier", 0, "Positive upgrades the die, negative downgrades")
	rollSkillCmd.Flags().BoolVar(&fromSheet, "from-sheet", false, "Use the character's talent and skill level")
	rollSkillCmd.Flags().StringVar(&rollDesc, "description", "", "Roll description")

	rollLogCmd.Flags().BoolVar(&clearLog, "clear", false, "Clear the log instead of showing it")
}

func runRollSkill(_ *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollSkillCheck(ctx, &apiv1alpha1.RollSkillCheckRequest{
		CharacterId:  args[0],
		Skill:        args[1],
		Talent:       talent,
		Level:        level,
		TierModifier: tierModifier,
		FromSheet:    fromSheet,
		Description:  rollDesc,
	})
	if err != nil {
		return fmt.Errorf("failed to roll skill check: %w", err)
	}

	fmt.Println(renderRoll(resp.Roll))
	fmt.Printf("Log expires at %s\n", time.Unix(resp.ExpiresAt, 0).Format(time.Kitchen))
	return nil
}

func runRollLog(_ *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if clearLog {
		resp, err := client.ClearRollLog(ctx, &apiv1alpha1.ClearRollLogRequest{CharacterId: args[0]})
		if err != nil {
			return fmt.Errorf("failed to clear roll log: %w", err)
		}
		fmt.Printf("Cleared %d rolls\n", resp.RollsDeleted)
		return nil
	}

	resp, err := client.GetRollLog(ctx, &apiv1alpha1.GetRollLogRequest{CharacterId: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get roll log: %w", err)
	}

	for _, roll := range resp.Rolls {
		fmt.Println(renderRoll(roll))
	}
	fmt.Printf("\n%d rolls, expires at %s\n", len(resp.Rolls), time.Unix(resp.ExpiresAt, 0).Format(time.Kitchen))
	return nil
}
