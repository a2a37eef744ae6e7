// Package controller provides output adapters for reporting command results
// to the operator.
package controller

import (
	m "github.com/kalestew/mutatex/internal/model"
)

// UI defines the interface for operator-facing output. Informational output
// goes to stdout; warnings and progress notes go to stderr so position lists
// piped from stdout stay clean.
type UI interface {
	// Infof prints a progress note to stderr.
	Infof(format string, a ...any)

	// Warnf prints a warning to stderr.
	Warnf(format string, a ...any)

	// DisplaySkippedLines warns about input lines whose token failed
	// validation.
	DisplaySkippedLines(lines []string)

	// DisplayChainSummary renders a per-chain position count table.
	DisplayChainSummary(byChain map[string]int, total int)

	// DisplayMissingPositions reports positions excluded because their
	// energy file is absent.
	DisplayMissingPositions(missing []m.Position)

	// DisplayWrittenCount reports how many identifiers went to output.
	DisplayWrittenCount(count int, output m.Path)

	// DisplayCommand echoes an external command line before it runs.
	DisplayCommand(name string, args []string)
}
