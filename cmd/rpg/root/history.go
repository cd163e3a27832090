package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wizinfantry/LLM-Text-RPG/internal/storage"
	"github.com/wizinfantry/LLM-Text-RPG/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the encounter chronicle, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := g.encounters.ListRecent(ctx, storage.MainHeroKey, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Chronicle"))
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No battles yet. Run `rpg play` to start one."))
				return nil
			}
			for _, e := range list {
				line := fmt.Sprintf("- %s  %s vs %s  %s",
					ui.Muted.Render(e.FoughtAt.Local().Format("2006-01-02 15:04")),
					g.player.Name(), ui.Bad.Render(e.MonsterName), ui.OutcomeText(e.Outcome))
				if e.Outcome == storage.OutcomeVictory {
					line += ui.Muted.Render(fmt.Sprintf("  (+%d exp, +%d gold)", e.ExpAwarded, e.GoldAwarded))
				}
				line += ui.Muted.Render(fmt.Sprintf("  dealt %d / taken %d", e.DamageDealt, e.DamageTaken))
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum encounters to show")
	return cmd
}
