// Package cmd provides the root command and CLI setup for diff.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Eeeeast/diff/internal/adapter"
	"github.com/Eeeeast/diff/internal/common"
	"github.com/Eeeeast/diff/internal/config"
	"github.com/Eeeeast/diff/internal/controller"
	"github.com/Eeeeast/diff/internal/domain"
)

// settings holds the resolved configuration of the running command.
var settings config.Config

var workflow domain.Workflow

// newWorkflow wires the workflow for a command once its configuration is
// known. Tests replace it to inject mocks.
var newWorkflow = buildWorkflow

// flagKeys maps config keys to the flag that overrides them.
var flagKeys = map[string]string{
	config.KeyMode:     "mode",
	config.KeyEngine:   "engine",
	config.KeyParallel: "parallel",
	config.KeyTimeout:  "timeout",
	config.KeyColor:    "color",
	config.KeyLogFile:  "log-file",
	config.KeyFormat:   "format",
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Character-level diff and output checker",
		Long: `Diff compares texts character by character and highlights what changed.

It can also run a program once per test case, feed it the case input and
compare what it prints with the expected output:

  diff get "hello" "world"
  diff get expected.txt actual.txt --mode batch
  diff get ./solution tests.toml --mode program -p 4`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().String("config", "", "config file (default is .diff.yaml in the working or home directory)")
	cmd.PersistentFlags().String("color", string(controller.ColorAuto), "colorize output: auto, always or never")
	cmd.PersistentFlags().String("log-file", "", "write diagnostic logs to `PATH`")

	return cmd
}

// setup resolves the configuration and wires the workflow for cmd.
func setup(cmd *cobra.Command, _ []string) error {
	v := config.New()

	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	used, err := config.ReadFile(v, cfgFile)
	if err != nil {
		return err
	}

	for key, name := range flagKeys {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}

		if err := config.BindFlag(v, key, cmd.Flags(), name); err != nil {
			return err
		}
	}

	if settings, err = config.Decode(v); err != nil {
		return err
	}

	logger := common.NewLogger(settings.LogFile, "diff "+cmd.Name())
	logger.Printf("=== diff %s ===", cmd.Name())
	logger.Printf("Args: %v", os.Args)

	if used != "" {
		logger.Printf("using config file %s", used)
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()), controller.ColorMode(settings.Color))
	workflow = newWorkflow(ui, settings, logger)

	return nil
}

func buildWorkflow(ui controller.UI, cfg config.Config, logger common.Logger) domain.Workflow {
	differ := newDiffer(cfg.Engine)
	harness := domain.NewHarness(adapter.NewLocalProcessRunner(), differ, logger)

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewTestCaseStore(),
		ui,
		harness,
		differ,
		logger,
	)
}

func newDiffer(engine string) domain.Differ {
	if engine == config.EngineDMP {
		return adapter.NewDMPDiffer()
	}

	return domain.NewLCSDiffer()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels a running test batch.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
