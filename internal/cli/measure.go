package cli

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/badges/pkg/measure"
)

// measureCommand creates the "measure" command.
func (c *CLI) measureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "measure <text>...",
		Short: "Print segment widths for each measurer",
		Long: `Print the width, in pixels, of a badge segment holding each text.

"shape" shapes the text against the embedded DejaVu Sans font and adds
padding. "heuristic" counts characters (8px each) plus 16px padding.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), measureTable(args).Render())
			return nil
		},
	}
}

// measureTable builds the width table for texts.
func measureTable(texts []string) *table.Table {
	shaped := measure.New(measure.ModeShape)
	heuristic := measure.New(measure.ModeHeuristic)

	rows := make([][]string, len(texts))
	for i, text := range texts {
		rows[i] = []string{
			strconv.Quote(text),
			strconv.Itoa(utf8.RuneCountInString(text)),
			strconv.Itoa(int(shaped.Measure(text))),
			strconv.Itoa(int(heuristic.Measure(text))),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Text", "Runes", "Shape", "Heuristic").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleValue
			}
			return StyleNumber
		})
}
