package model

// AminoThreeToOne maps three-letter residue names from PDB coordinate files
// to their one-letter codes.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// Residue is one residue read from the coordinate section of a PDB file.
type Residue struct {
	Chain string

	// Name is the three-letter residue name, e.g. "ALA".
	Name string

	// SeqNum is the residue sequence number; ICode is the insertion code,
	// empty for most residues.
	SeqNum int
	ICode  string

	// Hetero marks residues that come from HETATM records (ligands, waters).
	Hetero bool
}

// OneLetter returns the one-letter code for the residue name. The second
// return value is false for non-standard residues.
func (r Residue) OneLetter() (byte, bool) {
	c, ok := AminoThreeToOne[r.Name]
	return c, ok
}
