package cli

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirbars/internal/dirstat"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Command builds the root command. start is the instant the reported execution time is measured from.
func (c CLI) Command(start time.Time) *cobra.Command {
	var options dirstat.Options

	cmd := &cobra.Command{
		Use:   "dirbars [path]",
		Short: "Show the disk usage of each subdirectory as a bar chart",
		Long: heredoc.Doc(`
			dirbars reports the disk usage of each immediate subdirectory of a directory,
			largest first, as a colored bar chart followed by the total and the elapsed time.

			Positional Arguments:
			  path    Directory to analyze. Defaults to current directory if not specified.

			Sizes include every regular file below each subdirectory. Files directly inside
			the analyzed directory are not listed and not part of the total. Unreadable
			directories below it count as empty.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Path = "."
			if len(args) > 0 {
				options.Path = args[0]
			}

			return logic(cmd.Context(), options, start, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")
	_ = cmd.Flags().MarkHidden("debug")

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command(time.Now()).Execute()
}
