package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/badges/pkg/badge"
)

// colorsCommand creates the "colors" command.
func (c *CLI) colorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the named badge colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), paletteTable().Render())
			return nil
		},
	}
}

// swatch renders a short block filled with col.
func swatch(col badge.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(col.Canonical())).
		Render("      ")
}

// paletteTable lists every palette entry with its markup value, canonical
// hex form and a swatch.
func paletteTable() *table.Table {
	palette := badge.Palette()
	rows := make([][]string, len(palette))
	for i, col := range palette {
		rows[i] = []string{col.Name(), col.Hex(), col.Canonical(), swatch(col)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Markup", "Hex", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 3:
				return lipgloss.NewStyle()
			}
			return StyleDim
		})
}
