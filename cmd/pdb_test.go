package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/kalestew/mutatex/internal/model"
)

const pdbTestStructure = `HEADER    TEST
ATOM      1  N   MET A  29      11.104   6.134  -6.504  1.00  0.00           N
ATOM      2  CA  MET A  29      11.639   6.071  -5.147  1.00  0.00           C
ATOM      3  N   ALA A  30      10.853   7.203  -4.934  1.00  0.00           N
ATOM      4  N   TRP B  50       8.722   5.436  -4.871  1.00  0.00           N
END
`

func writePdbTestStructure(t *testing.T) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prep.pdb")
	require.NoError(t, os.WriteFile(path, []byte(pdbTestStructure), 0o644))

	return m.Path(path)
}

func TestRunPdb_WritesSpanPositions(t *testing.T) {
	silenceRootCmd(t)

	pdbPath := writePdbTestStructure(t)
	output := m.Path(filepath.Join(t.TempDir(), "position_list.txt"))

	require.NoError(t, runPdb(pdbPath, []string{"A:29-30", "B:50-60"}, output))

	content, err := os.ReadFile(string(output))
	require.NoError(t, err)
	assert.Equal(t, "MA29\nAA30\nWB50\n", string(content))
}

func TestRunPdb_MissingChainWarnsAndContinues(t *testing.T) {
	_, errOut := silenceRootCmd(t)

	pdbPath := writePdbTestStructure(t)
	output := m.Path(filepath.Join(t.TempDir(), "position_list.txt"))

	require.NoError(t, runPdb(pdbPath, []string{"C:1-10", "A:29-29"}, output))

	content, err := os.ReadFile(string(output))
	require.NoError(t, err)
	assert.Equal(t, "MA29\n", string(content))
	assert.Contains(t, errOut.String(), "chain C not found")
}

func TestRunPdb_LogsDiagnostics(t *testing.T) {
	silenceRootCmd(t)
	logs := captureLogs(t)

	pdbPath := writePdbTestStructure(t)
	output := m.Path(filepath.Join(t.TempDir(), "position_list.txt"))

	require.NoError(t, runPdb(pdbPath, []string{"C:1-10", "A:29-30"}, output))

	logged := logs.String()
	assert.Contains(t, logged, "Chain not found in structure")
	assert.Contains(t, logged, "chain=C")
	assert.Contains(t, logged, "Wrote position list")
	assert.Contains(t, logged, "written=2")
}

func TestRunPdb_MissingFileIsFatal(t *testing.T) {
	silenceRootCmd(t)

	dir := t.TempDir()
	output := m.Path(filepath.Join(dir, "position_list.txt"))

	err := runPdb(m.Path(filepath.Join(dir, "absent.pdb")), []string{"A:1-5"}, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDB file not found")

	_, statErr := os.Stat(string(output))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunPdb_MalformedSpanIsFatal(t *testing.T) {
	silenceRootCmd(t)

	pdbPath := writePdbTestStructure(t)
	output := m.Path(filepath.Join(t.TempDir(), "position_list.txt"))

	err := runPdb(pdbPath, []string{"A30-37"}, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid span")
}

func TestNewPdbCmd_Flags(t *testing.T) {
	cmd := newPdbCmd()

	assert.NotNil(t, cmd.Flags().Lookup("pdb"))
	assert.NotNil(t, cmd.Flags().Lookup("spans"))
	assert.NotNil(t, cmd.Flags().Lookup(outputFlagName))
}
