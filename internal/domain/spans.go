package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "github.com/kalestew/mutatex/internal/model"
)

// ParseResidueSpans parses span arguments of the form "CHAIN:START-END",
// e.g. "A:30-37". Any malformed span is an error: spans come straight from
// the command line, so there is nothing sensible to skip to.
func ParseResidueSpans(args []string) ([]m.ResidueSpan, error) {
	spans := make([]m.ResidueSpan, 0, len(args))

	for _, arg := range args {
		chain, rng, ok := strings.Cut(arg, ":")
		if !ok || chain == "" {
			return nil, fmt.Errorf("invalid span %q: expected CHAIN:START-END", arg)
		}

		startStr, endStr, ok := strings.Cut(rng, "-")
		if !ok {
			return nil, fmt.Errorf("invalid span %q: expected CHAIN:START-END", arg)
		}

		start, err := strconv.Atoi(startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid span %q: bad start residue: %w", arg, err)
		}

		end, err := strconv.Atoi(endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid span %q: bad end residue: %w", arg, err)
		}

		if end < start {
			return nil, fmt.Errorf("invalid span %q: end before start", arg)
		}

		spans = append(spans, m.ResidueSpan{Chain: chain, Start: start, End: end})
	}

	return spans, nil
}

// PositionListResult carries the outcome of extracting positions from a
// structure.
type PositionListResult struct {
	// Positions are emitted in span order, then structure order within a
	// span, matching how the residues appear in the coordinate file.
	Positions []m.Position

	// ByChain counts positions per chain, for the operator summary.
	ByChain map[string]int

	// Skipped describes residues inside a span that have no one-letter code.
	Skipped []string

	// MissingChains lists span chains absent from the structure.
	MissingChains []string
}

// PositionsFromResidues selects the residues covered by spans and renders
// their MutateX identifiers. Heteroatom residues (ligands, waters) never
// match. A span whose chain does not occur in the structure at all is
// recorded in MissingChains rather than treated as an error.
func PositionsFromResidues(residues []m.Residue, spans []m.ResidueSpan) PositionListResult {
	result := PositionListResult{ByChain: make(map[string]int)}

	chains := make(map[string]struct{})
	for _, res := range residues {
		chains[res.Chain] = struct{}{}
	}

	for _, span := range spans {
		if _, ok := chains[span.Chain]; !ok {
			result.MissingChains = append(result.MissingChains, span.Chain)
			continue
		}

		for _, res := range residues {
			if res.Hetero || res.Chain != span.Chain {
				continue
			}
			if res.SeqNum < span.Start || res.SeqNum > span.End {
				continue
			}

			letter, ok := res.OneLetter()
			if !ok {
				result.Skipped = append(result.Skipped,
					fmt.Sprintf("%s at %s%d", res.Name, res.Chain, res.SeqNum))
				continue
			}

			id := m.Position(fmt.Sprintf("%c%s%d", letter, res.Chain, res.SeqNum))
			result.Positions = append(result.Positions, id)
			result.ByChain[res.Chain]++
		}
	}

	return result
}
