package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrader/pmpts/internal/config"
	"github.com/andrader/pmpts/internal/prompt"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a prompt by name",
	Long: `Remove a prompt by name (with or without the suffix).

The file is moved to the root's .trash directory, never deleted, and the
removal can be reversed with "pmpts undo".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		store := prompt.NewStore(cfg.RootDir(), confirmStdin)

		action, err := store.Remove(args[0], removeYes)
		if err != nil {
			return err
		}

		cfg.LastAction = action
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Printf("removed %s (moved to trash)\n", prompt.NormalizeName(args[0]))
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Don't prompt for confirmation")
	rootCmd.AddCommand(removeCmd)
}
