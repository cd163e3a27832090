package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wizinfantry/LLM-Text-RPG/internal/engine"
	"github.com/wizinfantry/LLM-Text-RPG/internal/storage"
	"github.com/wizinfantry/LLM-Text-RPG/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your hero's sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := g.player
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, p.Name()))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level()))
			fmt.Fprintln(out, ui.LabelValue("Exp", fmt.Sprintf("%d / %d", p.Track().Experience(), p.Track().Threshold())))
			fmt.Fprintf(out, "%s %s\n", ui.IconHeart, ui.Bar(p.HP().Current(), p.HP().Maximum(), 20))
			fmt.Fprintf(out, "%s %s\n", ui.IconMana, ui.Bar(p.MP().Current(), p.MP().Maximum(), 20))
			fmt.Fprintf(out, "%s %s\n", ui.IconGold, ui.LabelValue("Gold", p.Gold()))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Abilities"))
			for _, a := range engine.Abilities {
				v, _ := p.Stats().Get(a)
				fmt.Fprintf(out, "- %s: %d (%+d)\n", ui.Key.Render(string(a)), v, engine.ScoreBonus(v))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("⚔️ Combat"))
			fmt.Fprintln(out, "- "+ui.LabelValue("Attack", p.AttackPower()))
			fmt.Fprintln(out, "- "+ui.LabelValue("Defense", p.Defense()))
			fmt.Fprintf(out, "- %s  %s  %s\n",
				ui.LabelValue("Hit", fmt.Sprintf("%.0f%%", p.HitChance())),
				ui.LabelValue("Evade", fmt.Sprintf("%.0f%%", p.EvasionRate())),
				ui.LabelValue("Crit", fmt.Sprintf("%.1f%%", p.CriticalChance())))
			w := p.Weapon()
			fmt.Fprintf(out, "- %s %s", ui.Key.Render("Weapon:"), ui.Gold.Render(w.Name))
			if w.Damage != "" {
				fmt.Fprintf(out, " (%s)", w.Damage)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, "")

			if items := p.Inventory(); len(items) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconBag+" Inventory"))
				for _, it := range items {
					line := "- " + it.Name
					if it.Effect != "" {
						line += " " + ui.Muted.Render("("+it.Effect+")")
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, "")
			}

			tally, err := g.encounters.Tally(ctx, storage.MainHeroKey)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Record"))
			fmt.Fprintf(out, "- %s %d  %s %d  %s %d\n",
				ui.Good.Render("victories:"), tally[storage.OutcomeVictory],
				ui.Bad.Render("defeats:"), tally[storage.OutcomeDefeat],
				ui.Warn.Render("fled:"), tally[storage.OutcomeFled])
			return nil
		},
	}
	return cmd
}
