package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kalestew/mutatex/internal/domain"
	m "github.com/kalestew/mutatex/internal/model"
)

var heatmapPdbFlag string
var heatmapDataDirFlag string
var heatmapMutListFlag string
var heatmapPosListFlag string
var heatmapOutputFlag string
var heatmapKeepTempFlag bool

const heatmapLongDescription = `Run ddg2heatmap with a position list filtered down to the positions whose
energy files exist in the data directory.

When rosetta_ddg_aggregate --mutatex-convert leaves gaps (e.g. failed Flex
ddG replicas), passing the full position list makes ddg2heatmap abort with
"Couldn't open energy file". This command excludes the missing entries so a
heat map is still produced for the positions that are present.

Arguments after "--" are forwarded verbatim to ddg2heatmap, e.g.:

  mutatex heatmap -p prep.pdb -d mutatex_compatible \
      -l residues.txt -q position_list.txt -o heatmap.pdf -- -c jet -t`

// heatmapCmd represents the heatmap command.
var heatmapCmd = newHeatmapCmd()

func newHeatmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Run ddg2heatmap, excluding positions without energy files",
		Long:  heatmapLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			result, err := heatmapWorkflow.Run(context.Background(), domain.HeatmapArgs{
				PDB:          m.Path(heatmapPdbFlag),
				DataDir:      m.Path(heatmapDataDirFlag),
				MutationList: m.Path(heatmapMutListFlag),
				PositionList: m.Path(heatmapPosListFlag),
				Output:       m.Path(viper.GetString(heatmapOutputKey)),
				KeepTemp:     heatmapKeepTempFlag,
				Extra:        args,
			})
			if err != nil {
				return err
			}

			missing := make([]string, 0, len(result.Missing))
			for _, pos := range result.Missing {
				missing = append(missing, string(pos))
			}

			return saveRunReport(m.RunReport{
				Command: "heatmap",
				Input:   m.Path(heatmapPosListFlag),
				Output:  m.Path(viper.GetString(heatmapOutputKey)),
				Missing: missing,
			})
		},
	}

	configureHeatmapFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(heatmapCmd)
}

func configureHeatmapFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&heatmapPdbFlag, "pdb", "p", "", "input PDB file")
	cobra.CheckErr(cmd.MarkFlagRequired("pdb"))

	cmd.Flags().StringVarP(&heatmapDataDirFlag, "data-directory", "d", "", "directory containing MutateX energy files")
	cobra.CheckErr(cmd.MarkFlagRequired("data-directory"))

	cmd.Flags().StringVarP(&heatmapMutListFlag, "mutation-list", "l", "", "mutation list file (single-letter residues)")
	cobra.CheckErr(cmd.MarkFlagRequired("mutation-list"))

	cmd.Flags().StringVarP(&heatmapPosListFlag, "position-list", "q", "", "position list file (e.g. CA23)")
	cobra.CheckErr(cmd.MarkFlagRequired("position-list"))

	cmd.Flags().StringVarP(&heatmapOutputFlag, outputFlagName, "o", viper.GetString(heatmapOutputKey), "output filename passed to ddg2heatmap")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), heatmapOutputKey)

	cmd.Flags().BoolVar(&heatmapKeepTempFlag, "keep-temp", false, "keep the filtered position list instead of deleting it")
}
