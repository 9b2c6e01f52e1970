package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// renderCommand creates the root command, which renders one badge.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts   badgeOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "badges <label> <message>",
		Short: "Render SVG status badges",
		Long: `badges renders two-segment status badges ("build | passing") as SVG.

Colors are palette names (green, light-green, yellow, red, grey, light-grey)
or hex values like #4c1 and #e05d44. Defaults come from the config file.`,
		Example: `  badges build passing -m green > build.svg
  badges coverage 97% -m "#a3c51c" -s flat-square -o coverage.svg`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			tmpl, renderer, mode, err := opts.apply(cfg)
			if err != nil {
				return err
			}

			b := tmpl.WithLabel(args[0]).WithMessage(args[1])
			prog := newProgress(logger)
			svg, err := renderer.RenderContext(ctx, b)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %s badge with %s measurer", b.Style, mode))

			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Debug("wrote badge", "path", output, "bytes", len(svg))
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the SVG to a file instead of stdout")

	return cmd
}
