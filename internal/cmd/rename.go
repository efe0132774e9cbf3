package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrader/pmpts/internal/config"
	"github.com/andrader/pmpts/internal/prompt"
)

var renameForce bool

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a prompt",
	Long: `Rename a prompt. Both names may be given with or without the suffix.

An existing target is moved to the trash first, after confirmation (or
without one with --force).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		store := prompt.NewStore(cfg.RootDir(), confirmStdin)

		action, err := store.Rename(args[0], args[1], renameForce)
		if err != nil {
			return err
		}

		cfg.LastAction = action
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Printf("renamed %s -> %s\n", prompt.NormalizeName(args[0]), prompt.NormalizeName(args[1]))
		return nil
	},
}

func init() {
	renameCmd.Flags().BoolVarP(&renameForce, "force", "f", false, "Overwrite target if exists")
	rootCmd.AddCommand(renameCmd)
}
