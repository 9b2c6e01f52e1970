package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/badges/pkg/badge"
)

// errPickCanceled is returned when the picker is closed without a choice.
var errPickCanceled = errors.New("no selection made")

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand creates the "pick" command.
func (c *CLI) pickCommand() *cobra.Command {
	var (
		opts   badgeOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "pick <label> <message>",
		Short: "Choose the message color and style interactively",
		Long: `Open an interactive picker for the message color and the style, then
render the badge. The picker draws on stderr so stdout can be redirected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			tmpl, renderer, _, err := opts.apply(cfg)
			if err != nil {
				return err
			}

			model := NewPickModel(tmpl.WithLabel(args[0]).WithMessage(args[1]))
			p := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("picker: %w", err)
			}

			result := final.(PickModel)
			if !result.Done {
				return errPickCanceled
			}

			svg, err := renderer.RenderContext(cmd.Context(), result.Badge())
			if err != nil {
				return err
			}
			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Wrote %s", output)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the SVG to a file instead of stdout")
	return cmd
}

// =============================================================================
// PickModel - Interactive color and style selection
// =============================================================================

// pickStage is the step the picker is on.
type pickStage int

const (
	stageColor pickStage = iota
	stageStyle
)

// PickModel is the bubbletea model for choosing a message color and a style.
type PickModel struct {
	Base   badge.Badge
	Colors []badge.Color
	Styles []badge.Style
	Stage  pickStage
	Cursor int
	Color  badge.Color
	Style  badge.Style
	Done   bool
}

// NewPickModel creates a picker starting from base. The cursor starts on
// base's message color when it is a palette entry.
func NewPickModel(base badge.Badge) PickModel {
	m := PickModel{
		Base:   base,
		Colors: badge.Palette(),
		Styles: badge.Styles(),
		Color:  base.MessageColor,
		Style:  base.Style,
	}
	for i, c := range m.Colors {
		if c == base.MessageColor {
			m.Cursor = i
		}
	}
	return m
}

// Badge returns the base badge with the chosen color and style.
func (m PickModel) Badge() badge.Badge {
	return m.Base.WithMessageColor(m.Color).WithStyle(m.Style)
}

func (m PickModel) Init() tea.Cmd {
	return nil
}

func (m PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < m.items()-1 {
			m.Cursor++
		}
	case "enter":
		if m.Stage == stageColor {
			m.Color = m.Colors[m.Cursor]
			m.Stage = stageStyle
			m.Cursor = 0
			for i, st := range m.Styles {
				if st == m.Style {
					m.Cursor = i
				}
			}
			return m, nil
		}
		m.Style = m.Styles[m.Cursor]
		m.Done = true
		return m, tea.Quit
	}

	if m.Stage == stageColor {
		m.Color = m.Colors[m.Cursor]
	} else {
		m.Style = m.Styles[m.Cursor]
	}
	return m, nil
}

func (m PickModel) items() int {
	if m.Stage == stageColor {
		return len(m.Colors)
	}
	return len(m.Styles)
}

func (m PickModel) View() string {
	var b strings.Builder

	title := "Select Message Color"
	if m.Stage == stageStyle {
		title = "Select Style"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i := 0; i < m.items(); i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		var line string
		if m.Stage == stageColor {
			c := m.Colors[i]
			line = fmt.Sprintf("%s%s %-12s %s", cursor, swatch(c), c.Name(), listDimStyle.Render(c.Hex()))
		} else {
			line = cursor + m.Styles[i].String()
		}

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(preview(m.Badge()))
	b.WriteString("\n")
	return b.String()
}

// preview approximates the badge in the terminal.
func preview(b badge.Badge) string {
	seg := func(text string, c badge.Color) string {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(c.Canonical())).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Render(text)
	}
	return "  " + seg(b.Label, b.LabelColor) + seg(b.Message, b.MessageColor) +
		listDimStyle.Render("  "+b.Style.String())
}
