// Package cmd provides the root command and CLI setup for mutatex.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kalestew/mutatex/internal/adapter"
	"github.com/kalestew/mutatex/internal/controller"
	"github.com/kalestew/mutatex/internal/domain"
	m "github.com/kalestew/mutatex/internal/model"
)

var fsAdapter adapter.PositionFSAdapter
var pdbAdapter adapter.PDBFileAdapter
var runnerAdapter adapter.HeatmapRunnerAdapter
var reportStore adapter.ReportStore
var heatmapWorkflow domain.HeatmapWorkflow
var ui controller.UI

// reportPathFlag is a root-level flag enabling YAML run reports.
var reportPathFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalPositionFSAdapter()
	pdbAdapter = adapter.NewLocalPDBFileAdapter()
	runnerAdapter = adapter.NewLocalHeatmapRunnerAdapter()
	reportStore = adapter.NewLocalReportStore()
	heatmapWorkflow = domain.NewHeatmapWorkflow(fsAdapter, runnerAdapter, ui)
}

const rootLongDescription = `Mutatex bundles the position-list helpers of a Rosetta Flex ddG /
MutateX saturation-mutagenesis workflow:

  mutinfo   derive a position list from a mutinfo.txt mutation log
  pdb       derive a position list from a PDB structure and residue spans
  heatmap   run ddg2heatmap with positions lacking energy files filtered out

Position identifiers follow the MutateX convention
<wild-type residue letter><chain><residue number>, e.g. AA25.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutatex",
		Short: "Position-list helpers for Rosetta Flex ddG / MutateX",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&reportPathFlag, reportFlagName, "", "write a YAML run report to this path")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// writePositionList writes identifiers one per line, with a trailing newline.
func writePositionList(output m.Path, positions []m.Position) error {
	var content strings.Builder
	for _, pos := range positions {
		content.WriteString(string(pos))
		content.WriteByte('\n')
	}

	if err := fsAdapter.WriteFile(output, []byte(content.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write position list: %w", err)
	}

	return nil
}

// saveRunReport persists the report when --report was given.
func saveRunReport(report m.RunReport) error {
	if reportPathFlag == "" {
		return nil
	}

	return reportStore.Save(m.Path(reportPathFlag), report)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
