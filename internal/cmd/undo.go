package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/andrader/pmpts/internal/config"
	"github.com/andrader/pmpts/internal/prompt"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last add/remove where possible",
	Long: `Undo the most recent add or remove.

Only the last mutation is recorded; a successful undo clears the record,
so undo cannot be repeated. Renames are recorded but cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		msg, err := prompt.Undo(cfg.LastAction)
		if err != nil {
			return err
		}

		// The slot is cleared only after a successful undo.
		cfg.LastAction = nil
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Printf("%s %s\n", color.GreenString("✓"), msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
