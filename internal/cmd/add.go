package cmd

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/andrader/pmpts/internal/config"
	"github.com/andrader/pmpts/internal/prompt"
)

var addForce bool

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Move a file into the prompts root",
	Long: `Move a file into the prompts root, appending the ` + prompt.Suffix + `
suffix to its name if missing.

An existing prompt with the same name is moved to the trash first, after
confirmation (or without one with --force). The move can be reversed
with "pmpts undo".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := homedir.Expand(args[0])
		if err != nil {
			src = args[0]
		}

		cfg := config.Load()
		store := prompt.NewStore(cfg.RootDir(), confirmStdin)
		if err := store.EnsureRoot(); err != nil {
			return err
		}

		base, action, err := store.Add(src, addForce)
		if err != nil {
			return err
		}

		cfg.LastAction = action
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Printf("added prompt %s\n", base)
		fmt.Printf("use /%s to use it\n", prompt.DisplayName(base))
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false, "Overwrite existing prompt without prompting")
	rootCmd.AddCommand(addCmd)
}
