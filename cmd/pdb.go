package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kalestew/mutatex/internal/domain"
	m "github.com/kalestew/mutatex/internal/model"
)

var pdbPathFlag string
var pdbSpansFlag []string
var pdbOutputFlag string

const pdbLongDescription = `Generate a MutateX-style position list from a PDB structure, restricted
to the given residue spans.

Spans take the form CHAIN:START-END and can be repeated, e.g.:

  mutatex pdb -p input.pdb -s A:30-37 -s B:50-60

Residues are emitted in structure order as
<wild-type residue letter><chain><residue number>. Heteroatom records
(ligands, waters) are ignored; residues without a one-letter code are
skipped with a warning. Gzipped PDB files (.gz) are read transparently.`

// pdbCmd represents the pdb command.
var pdbCmd = newPdbCmd()

func newPdbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdb",
		Short: "Generate a position list from a PDB structure and residue spans",
		Long:  pdbLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			output := m.Path(viper.GetString(pdbOutputKey))

			return runPdb(m.Path(pdbPathFlag), pdbSpansFlag, output)
		},
	}

	configurePdbFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(pdbCmd)
}

func configurePdbFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&pdbPathFlag, "pdb", "p", "", "input PDB file")
	cobra.CheckErr(cmd.MarkFlagRequired("pdb"))

	cmd.Flags().StringArrayVarP(&pdbSpansFlag, "spans", "s", nil, "residue span to include, e.g. A:30-37 (can be repeated)")
	cobra.CheckErr(cmd.MarkFlagRequired("spans"))

	cmd.Flags().StringVarP(&pdbOutputFlag, outputFlagName, "o", viper.GetString(pdbOutputKey), "filename for the generated position list")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), pdbOutputKey)
}

func runPdb(pdbPath m.Path, spanArgs []string, output m.Path) error {
	spans, err := domain.ParseResidueSpans(spanArgs)
	if err != nil {
		return err
	}

	if info, err := fsAdapter.FileInfo(pdbPath); err != nil || info.IsDir() {
		return fmt.Errorf("PDB file not found: %s", pdbPath)
	}

	residues, err := pdbAdapter.ReadResidues(pdbPath)
	if err != nil {
		return err
	}

	result := domain.PositionsFromResidues(residues, spans)

	for _, chain := range result.MissingChains {
		slog.Warn("Chain not found in structure", "chain", chain, "pdb", pdbPath)
		ui.Warnf("chain %s not found in structure", chain)
	}
	for _, skipped := range result.Skipped {
		slog.Warn("Skipping unknown residue", "residue", skipped, "pdb", pdbPath)
		ui.Warnf("skipping unknown residue %s", skipped)
	}

	if err := writePositionList(output, result.Positions); err != nil {
		return err
	}

	slog.Info("Wrote position list",
		"input", pdbPath, "output", output,
		"written", len(result.Positions), "skipped", len(result.Skipped))

	ui.DisplayChainSummary(result.ByChain, len(result.Positions))
	ui.DisplayWrittenCount(len(result.Positions), output)

	return saveRunReport(m.RunReport{
		Command: "pdb",
		Input:   pdbPath,
		Output:  output,
		Written: len(result.Positions),
		Skipped: result.Skipped,
	})
}
