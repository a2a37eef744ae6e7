package cmd

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kalestew/mutatex/internal/domain"
	m "github.com/kalestew/mutatex/internal/model"
)

var mutinfoPathFlag string
var mutinfoOutputFlag string

const mutinfoLongDescription = `Create a MutateX-style position list (e.g. "AA25") from a mutinfo.txt
file produced by Rosetta Flex ddG saturation mutagenesis pipelines.

Each mutinfo line follows the four-column format of the RosettaDDG
scripts, for example:

  A.A.25.A,A-A25A,A25A,A25
  A.A.25.C,A-A25C,A25C,A25

The first column encodes the mutation as
<chain>.<wildtype>.<resnum>.<mutant>; the chain, wild-type residue and
residue number are extracted to build the position identifier. The output
contains unique identifiers, one per line, sorted by chain and residue
number. Lines that do not parse are skipped with a warning.`

// mutinfoCmd represents the mutinfo command.
var mutinfoCmd = newMutinfoCmd()

func newMutinfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutinfo",
		Short: "Generate a position list from a mutinfo.txt file",
		Long:  mutinfoLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			input := m.Path(viper.GetString(mutinfoInputKey))
			output := m.Path(viper.GetString(mutinfoOutputKey))

			return runMutinfo(input, output)
		},
	}

	configureMutinfoFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mutinfoCmd)
}

func configureMutinfoFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&mutinfoPathFlag, mutinfoFlagName, "m", viper.GetString(mutinfoInputKey), "path to mutinfo.txt")
	bindFlagToConfig(cmd.Flags().Lookup(mutinfoFlagName), mutinfoInputKey)

	cmd.Flags().StringVarP(&mutinfoOutputFlag, outputFlagName, "o", viper.GetString(mutinfoOutputKey), "filename for the generated position list")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), mutinfoOutputKey)
}

func runMutinfo(input, output m.Path) error {
	if info, err := fsAdapter.FileInfo(input); err != nil || info.IsDir() {
		return fmt.Errorf("mutinfo file not found: %s", input)
	}

	data, err := fsAdapter.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read mutinfo file: %w", err)
	}

	result, err := domain.NormalizeMutinfo(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse mutinfo file: %w", err)
	}

	for _, line := range result.Skipped {
		slog.Warn("Skipping unrecognised mutinfo line", "line", line)
	}
	ui.DisplaySkippedLines(result.Skipped)

	if err := writePositionList(output, result.Positions); err != nil {
		return err
	}

	slog.Info("Wrote position list",
		"input", input, "output", output,
		"written", len(result.Positions), "skipped", len(result.Skipped))

	ui.DisplayChainSummary(result.ByChain, len(result.Positions))
	ui.DisplayWrittenCount(len(result.Positions), output)

	return saveRunReport(m.RunReport{
		Command: "mutinfo",
		Input:   input,
		Output:  output,
		Written: len(result.Positions),
		Skipped: result.Skipped,
	})
}
