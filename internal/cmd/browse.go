package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andrader/pmpts/internal/config"
	"github.com/andrader/pmpts/internal/prompt"
	"github.com/andrader/pmpts/internal/tui/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse prompts interactively",
	Long: `Browse the prompts root interactively.

Navigate the prompt list, filter with /, multi-select with space, move
selected prompts to the trash with d, and rename with r. Trash and
rename are recorded, so the most recent one can be reversed with
"pmpts undo".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		store := prompt.NewStore(cfg.RootDir(), nil)
		if err := store.EnsureRoot(); err != nil {
			return err
		}

		record := func(a *prompt.Action) error {
			cfg.LastAction = a
			return cfg.Save()
		}

		p := tea.NewProgram(browse.New(store, record), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
