package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Eeeeast/diff/internal/adapter"
	"github.com/Eeeeast/diff/internal/domain"
	m "github.com/Eeeeast/diff/internal/model"
)

// exampleCmd represents the example command.
var exampleCmd = newExampleCmd()

func newExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example <count> [path]",
		Short: "Generate a test file with placeholder cases",
		Long: `Generate <count> placeholder test cases to edit by hand.

The cases are written to [path] when given, otherwise printed. The format
comes from --format, else from the path extension, else TOML.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}

			exampleArgs := domain.ExampleArgs{Count: count}
			if len(args) == 2 {
				exampleArgs.Output = m.Path(args[1])
			}

			if settings.Format != "" {
				if exampleArgs.Format, err = adapter.ParseFormat(settings.Format); err != nil {
					return err
				}
			}

			return workflow.Example(exampleArgs)
		},
	}
	cmd.Flags().StringP("format", "f", "", "output format: toml or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
