package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/andrader/pmpts/internal/config"
	"github.com/andrader/pmpts/internal/prompt"
)

var (
	listVerbose bool
	listFiles   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		store := prompt.NewStore(cfg.RootDir(), nil)

		if _, err := os.Stat(store.Root()); err != nil {
			fmt.Println("(no prompts directory)")
			return nil
		}

		entries, err := store.Entries()
		if err != nil {
			return err
		}

		switch {
		case listVerbose:
			printTable(entries)
		case listFiles:
			for _, e := range entries {
				fmt.Printf("%s\t%s\n", e.Name, e.File)
			}
		default:
			for _, e := range entries {
				fmt.Println(e.Name)
			}
		}
		return nil
	},
}

// printTable renders a frontmatter table: name and description first,
// remaining keys in sorted order.
func printTable(entries []prompt.Entry) {
	rows := make([]map[string]string, 0, len(entries))
	keys := make(map[string]bool)
	for _, e := range entries {
		row := prompt.Frontmatter(e.Path)
		row["name"] = e.Name
		rows = append(rows, row)
		for k := range row {
			keys[k] = true
		}
	}

	cols := []string{"name"}
	if keys["description"] {
		cols = append(cols, "description")
	}
	var other []string
	for k := range keys {
		if k != "name" && k != "description" {
			other = append(other, k)
		}
	}
	sort.Strings(other)
	cols = append(cols, other...)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(cols)
	table.SetAutoWrapText(true)
	table.SetColWidth(40)

	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = row[c]
		}
		table.Append(cells)
	}
	table.Render()
}

func init() {
	listCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "Show frontmatter fields in a table")
	listCmd.Flags().BoolVarP(&listFiles, "files", "f", false, "Also show filenames (with and without suffix)")
	rootCmd.AddCommand(listCmd)
}
