package cmd

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/andrader/pmpts/internal/config"
)

var setrootCmd = &cobra.Command{
	Use:   "setroot <path>",
	Short: "Set the prompts root directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := homedir.Expand(args[0])
		if err != nil {
			path = args[0]
		}

		cfg := config.Load()
		cfg.Root = path
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Printf("root set to: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setrootCmd)
}
