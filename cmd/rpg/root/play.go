package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wizinfantry/LLM-Text-RPG/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var hint string
	var name string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Fight model-conjured monsters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			session := g.newSession()
			if name != "" {
				session.Player().Rename(name)
				if err := session.Save(ctx); err != nil {
					return err
				}
			}

			return tui.RunBattle(ctx, session, hint, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&hint, "hint", "", "theme hint passed to the monster generator (e.g. \"undead\", \"swamp\")")
	cmd.Flags().StringVar(&name, "name", "", "rename your hero before the battle")
	return cmd
}
