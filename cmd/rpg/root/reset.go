package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wizinfantry/LLM-Text-RPG/internal/storage"
	"github.com/wizinfantry/LLM-Text-RPG/internal/ui"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved hero and chronicle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("this wipes your hero and chronicle; re-run with --force to confirm")
			}

			ctx := context.Background()
			db, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := storage.NewHeroRepo(db).Delete(ctx, storage.MainHeroKey); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Save wiped. A fresh hero awaits."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "confirm the wipe")
	return cmd
}
