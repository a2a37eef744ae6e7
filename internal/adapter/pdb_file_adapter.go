package adapter

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	m "github.com/kalestew/mutatex/internal/model"
)

// PDBFileAdapter encapsulates PDB coordinate parsing so the domain layer can
// work with residues without knowing the column layout of the format.
type PDBFileAdapter interface {
	// ReadResidues parses the coordinate section of a PDB file and returns
	// one entry per residue, in file order. Only the first model of a
	// multi-model file is read.
	ReadResidues(path m.Path) ([]m.Residue, error)
}

// LocalPDBFileAdapter is the concrete PDBFileAdapter backed by the local
// filesystem. Files ending in ".gz" are decompressed transparently.
type LocalPDBFileAdapter struct{}

// NewLocalPDBFileAdapter constructs a LocalPDBFileAdapter.
func NewLocalPDBFileAdapter() *LocalPDBFileAdapter {
	return &LocalPDBFileAdapter{}
}

// ReadResidues parses the ATOM and HETATM records of the PDB file at p. A
// new residue starts whenever the (chain, sequence number, insertion code,
// name) tuple changes between consecutive coordinate records.
func (a *LocalPDBFileAdapter) ReadResidues(p m.Path) ([]m.Residue, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var reader io.Reader = f
	if filepath.Ext(string(p)) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzipped PDB %s: %w", p, err)
		}
		defer func() {
			_ = gz.Close()
		}()
		reader = gz
	}

	var residues []m.Residue
	var last m.Residue
	haveLast := false

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}

		record := strings.TrimSpace(line[0:6])

		// Coordinate files from NMR and some pipelines carry several models
		// of the same chains; the first one is authoritative here.
		if record == "ENDMDL" {
			break
		}

		if record != "ATOM" && record != "HETATM" {
			continue
		}
		if len(line) < 27 {
			return nil, fmt.Errorf("short %s record in %s: %q", record, p, line)
		}

		seq, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
		if err != nil {
			return nil, fmt.Errorf("bad residue number in %s: %q", p, line)
		}

		res := m.Residue{
			Chain:  strings.TrimSpace(line[21:22]),
			Name:   strings.TrimSpace(line[17:20]),
			SeqNum: seq,
			ICode:  strings.TrimSpace(line[26:27]),
			Hetero: record == "HETATM",
		}

		if haveLast && res == last {
			continue
		}

		residues = append(residues, res)
		last = res
		haveLast = true
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read PDB %s: %w", p, err)
	}

	return residues, nil
}
