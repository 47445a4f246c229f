package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/quizgrid/quizgrid/internal/catalog"
)

const categoryColumn = 20

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "List categories and tiles without answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetInt("category")
		out := cmd.OutOrStdout()

		cats := runtime.catalog.Categories()
		if category < 0 || category > len(cats) {
			return fmt.Errorf("no category %d (have %d)", category, len(cats))
		}

		// Header.
		fmt.Fprintf(out, "%-10s  %-12s  %-20s  %6s  %s\n",
			"Tile", "Header", "Category", "Value", "Label")
		fmt.Fprintln(out, strings.Repeat("─", 78))

		tiles := 0
		for ci, cat := range cats {
			if category != 0 && ci != category-1 {
				continue
			}
			name := fitColumn(cat.Name, categoryColumn)
			for qi, q := range cat.Questions {
				id := catalog.TileID{Category: ci, Question: qi}
				fmt.Fprintf(out, "%-10s  %-12s  %s  %6s  %s\n",
					id, catalog.CategoryHeaderID(ci), name,
					catalog.ValueLabel(q.Value), runtime.catalog.TileLabel(id))
				tiles++
			}
		}

		fmt.Fprintf(out, "\n%d tiles\n", tiles)
		return nil
	},
}

// fitColumn truncates s to width terminal cells and pads it to exactly
// that width.
func fitColumn(s string, width int) string {
	s = ansi.Truncate(s, width, "...")
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}

func init() {
	boardCmd.Flags().Int("category", 0, "Only list one category (numbered from 1)")
}
