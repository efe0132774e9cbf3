package cmd

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/andrader/pmpts/internal/config"
	"github.com/andrader/pmpts/internal/prompt"
)

var copyCmd = &cobra.Command{
	Use:   "copy <name> <out>",
	Short: "Copy a prompt to an output file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := homedir.Expand(args[1])
		if err != nil {
			out = args[1]
		}

		cfg := config.Load()
		store := prompt.NewStore(cfg.RootDir(), nil)

		if err := store.Copy(args[0], out); err != nil {
			return err
		}

		fmt.Printf("copied %s -> %s\n", prompt.NormalizeName(args[0]), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
