package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrNoCommand is returned when pmpts is invoked without a subcommand.
// main maps it to a distinct exit code.
var ErrNoCommand = errors.New("no command given")

// rootCmd is the base command for pmpts.
var rootCmd = &cobra.Command{
	Use:           "pmpts",
	Short:         "Manage VS Code prompt files",
	Long:          "A CLI/TUI tool for managing a directory of prompt files, with trash-based removal and undo.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return ErrNoCommand
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
