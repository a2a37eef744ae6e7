// Package model defines the data structures shared by the mutatex commands.
package model

// Path represents a file system path.
type Path string

// Position is a MutateX position identifier addressing a single structural
// position, e.g. "AA25": wild-type residue letter, chain, residue number.
type Position string

// MutationToken is the parsed first field of a mutinfo record. The on-disk
// form is "<chain>.<wildtype>.<resnum>.<mutant>", for example "A.A.25.C".
type MutationToken struct {
	Chain string

	// WildType is the one-letter wild-type residue code.
	WildType byte

	// ResidueNum keeps the original residue number string, which may carry a
	// trailing insertion code ("25A"). ResidueSeq is its numeric prefix and
	// is what ordering is based on.
	ResidueNum string
	ResidueSeq int

	// Mutant is the one-letter substituted residue code. It is parsed for
	// validation symmetry but never appears in a Position.
	Mutant byte
}

// Position renders the MutateX identifier for the token. The mutant residue
// is deliberately absent, so distinct mutations at one position all map to
// the same identifier.
func (t MutationToken) Position() Position {
	return Position(string(t.WildType) + t.Chain + t.ResidueNum)
}

// ResidueSpan selects an inclusive residue-number range on one chain.
type ResidueSpan struct {
	Chain string
	Start int
	End   int
}
