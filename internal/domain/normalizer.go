// Package domain provides the core logic behind the mutatex commands:
// mutinfo normalization, residue-span extraction and energy-file filtering.
package domain

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	m "github.com/kalestew/mutatex/internal/model"
)

var (
	wildTypePattern   = regexp.MustCompile(`^[A-Z]$`)
	residueNumPattern = regexp.MustCompile(`^(\d+)([A-Z]?)$`)
)

// ParseToken parses a mutinfo first-field token of the form
// "<chain>.<wildtype>.<resnum>.<mutant>". The fourth part is optional and is
// not validated against a residue alphabet. The second return value is false
// for malformed tokens.
func ParseToken(token string) (m.MutationToken, bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 3 {
		return m.MutationToken{}, false
	}

	chain, wildType, residueNum := parts[0], parts[1], parts[2]

	if chain == "" || !wildTypePattern.MatchString(wildType) {
		return m.MutationToken{}, false
	}

	match := residueNumPattern.FindStringSubmatch(residueNum)
	if match == nil {
		return m.MutationToken{}, false
	}

	// The numeric prefix fits an int for any sane structure; ParseInt guards
	// against pathological digit runs.
	seq, err := strconv.Atoi(match[1])
	if err != nil {
		return m.MutationToken{}, false
	}

	parsed := m.MutationToken{
		Chain:      chain,
		WildType:   wildType[0],
		ResidueNum: residueNum,
		ResidueSeq: seq,
	}

	if len(parts) > 3 && len(parts[3]) > 0 {
		parsed.Mutant = parts[3][0]
	}

	return parsed, true
}

// NormalizeResult carries the outcome of one mutinfo pass.
type NormalizeResult struct {
	// Positions are the unique identifiers, sorted by chain then residue
	// number.
	Positions []m.Position

	// ByChain counts positions per chain, for the operator summary.
	ByChain map[string]int

	// Skipped holds the raw lines whose token failed validation.
	Skipped []string
}

// NormalizeMutinfo reads mutinfo records and derives the unique, sorted
// position list. Blank lines and '#' comments are ignored; lines with a
// malformed token are collected in Skipped and never abort the pass.
//
// Ordering is total: chain, then numeric residue number, then the residue
// number string (so "25" precedes "25A"), then wild-type letter. Identifiers
// are deduplicated after the mutant residue is discarded, so two mutations
// at one position yield a single output line.
func NormalizeMutinfo(r io.Reader) (NormalizeResult, error) {
	result := NormalizeResult{ByChain: make(map[string]int)}
	seen := make(map[m.MutationToken]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		field, _, _ := strings.Cut(line, ",")

		token, ok := ParseToken(field)
		if !ok {
			result.Skipped = append(result.Skipped, line)
			continue
		}

		seen[token] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}

	tokens := make([]m.MutationToken, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}

	sort.Slice(tokens, func(i, j int) bool {
		a, b := tokens[i], tokens[j]
		if a.Chain != b.Chain {
			return a.Chain < b.Chain
		}
		if a.ResidueSeq != b.ResidueSeq {
			return a.ResidueSeq < b.ResidueSeq
		}
		if a.ResidueNum != b.ResidueNum {
			return a.ResidueNum < b.ResidueNum
		}
		return a.WildType < b.WildType
	})

	emitted := make(map[m.Position]struct{}, len(tokens))
	for _, token := range tokens {
		id := token.Position()
		if _, dup := emitted[id]; dup {
			continue
		}
		emitted[id] = struct{}{}

		result.Positions = append(result.Positions, id)
		result.ByChain[token.Chain]++
	}

	return result, nil
}
