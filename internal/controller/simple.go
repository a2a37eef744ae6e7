package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/kalestew/mutatex/internal/model"
)

// SimpleUI implements UI using the cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Infof prints a progress note to stderr.
func (s *SimpleUI) Infof(format string, a ...any) {
	s.cmd.PrintErrf("[INFO] "+format+"\n", a...)
}

// Warnf prints a warning to stderr.
func (s *SimpleUI) Warnf(format string, a ...any) {
	s.cmd.PrintErrf("[WARN] "+format+"\n", a...)
}

// DisplaySkippedLines warns about unparseable input lines, one per line.
func (s *SimpleUI) DisplaySkippedLines(lines []string) {
	for _, line := range lines {
		s.Warnf("skipping unrecognised line: %s", line)
	}
}

// DisplayChainSummary renders a per-chain count table on stderr.
func (s *SimpleUI) DisplayChainSummary(byChain map[string]int, total int) {
	if len(byChain) == 0 {
		return
	}

	chains := make([]string, 0, len(byChain))
	for chain := range byChain {
		chains = append(chains, chain)
	}
	sort.Strings(chains)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Chain", "Positions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, chain := range chains {
		table.Append([]string{chain, fmt.Sprintf("%d", byChain[chain])})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", total)})
	table.Render()

	s.cmd.PrintErrf("\n%s\n", tableBuffer.String())
}

// DisplayMissingPositions reports excluded positions.
func (s *SimpleUI) DisplayMissingPositions(missing []m.Position) {
	if len(missing) == 0 {
		s.Infof("all positions have energy files, no filtering needed")
		return
	}

	s.Infof("excluding %d position(s) with missing energy files:", len(missing))
	for _, pos := range missing {
		s.cmd.PrintErrf("  - %s\n", pos)
	}
}

// DisplayWrittenCount reports the emitted identifier count on stdout.
func (s *SimpleUI) DisplayWrittenCount(count int, output m.Path) {
	s.cmd.Printf("Wrote %d position(s) to %s\n", count, output)
}

// DisplayCommand echoes the external command line.
func (s *SimpleUI) DisplayCommand(name string, args []string) {
	s.Infof("running: %s %s", name, strings.Join(args, " "))
}
