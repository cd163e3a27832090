package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizinfantry/LLM-Text-RPG/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "rpg",
	Short:         "LLM Text RPG — console battles against model-conjured monsters",
	Long:          "LLM Text RPG is a turn-based console RPG whose monsters, actions and loot are generated by a local language-model server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newPlayCmd(),
		newStatusCmd(),
		newHistoryCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
