package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Eeeeast/diff/internal/config"
	"github.com/Eeeeast/diff/internal/domain"
	m "github.com/Eeeeast/diff/internal/model"
)

const getLongDescription = `Compare two inputs and show the character-level differences.

Modes:
  interactive  compare the two arguments as literal text (default)
  batch        treat the arguments as files and compare their contents
  program      run <left> once per test case in the <right> test file
               (.toml, .yaml or .yml) and compare its output with the
               expected output; exits non-zero when any case fails`

// getCmd represents the get command.
var getCmd = newGetCmd()

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <left> <right>",
		Short: "Compare two texts, two files or a program against a test file",
		Long:  getLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := m.Mode(settings.Mode)
			if mode == m.ModeProgram {
				return workflow.Program(cmd.Context(), domain.ProgramArgs{
					Target:  m.Path(args[0]),
					Tests:   m.Path(args[1]),
					Threads: settings.Parallel,
					Timeout: settings.Timeout,
				})
			}

			return workflow.Compare(domain.CompareArgs{
				Left:  args[0],
				Right: args[1],
				Mode:  mode,
			})
		},
	}
	cmd.Flags().StringP("mode", "m", string(m.ModeInteractive), "comparison mode: interactive, batch or program")
	cmd.Flags().StringP("engine", "e", config.EngineLCS, "diff engine: lcs (minimal) or dmp (diff-match-patch)")
	cmd.Flags().IntP("parallel", "p", 1, "number of test cases to run at once in program mode")
	cmd.Flags().DurationP("timeout", "t", domain.DefaultTimeout, "time limit for each test case in program mode")

	return cmd
}

func init() {
	rootCmd.AddCommand(getCmd)
}
