package domain

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalestew/mutatex/internal/adapter"
	m "github.com/kalestew/mutatex/internal/model"
)

// recordingRunner captures the arguments of each invocation.
type recordingRunner struct {
	calls [][]string
	err   error
}

func (r *recordingRunner) RunHeatmap(_ context.Context, args []string) error {
	r.calls = append(r.calls, args)
	return r.err
}

// silentUI satisfies controller.UI without printing anything.
type silentUI struct {
	missing []m.Position
}

func (u *silentUI) Infof(string, ...any)                    {}
func (u *silentUI) Warnf(string, ...any)                    {}
func (u *silentUI) DisplaySkippedLines([]string)            {}
func (u *silentUI) DisplayChainSummary(map[string]int, int) {}

func (u *silentUI) DisplayMissingPositions(missing []m.Position) {
	u.missing = missing
}

func (u *silentUI) DisplayWrittenCount(int, m.Path) {}
func (u *silentUI) DisplayCommand(string, []string) {}

type heatmapFixture struct {
	args   HeatmapArgs
	runner *recordingRunner
	ui     *silentUI
	flow   HeatmapWorkflow
}

func newHeatmapFixture(t *testing.T, positions []string, energyFiles []string) heatmapFixture {
	t.Helper()

	dir := t.TempDir()
	dataDir := filepath.Join(dir, "energies")
	require.NoError(t, os.Mkdir(dataDir, 0o755))

	for _, name := range energyFiles {
		writeEnergyFile(t, dataDir, name)
	}

	pdb := filepath.Join(dir, "prep.pdb")
	mutList := filepath.Join(dir, "residues.txt")
	posList := filepath.Join(dir, "position_list.txt")
	require.NoError(t, os.WriteFile(pdb, []byte("END\n"), 0o644))
	require.NoError(t, os.WriteFile(mutList, []byte("A\nC\n"), 0o644))
	require.NoError(t, os.WriteFile(posList, []byte(strings.Join(positions, "\n")+"\n"), 0o644))

	runner := &recordingRunner{}
	ui := &silentUI{}

	return heatmapFixture{
		args: HeatmapArgs{
			PDB:          m.Path(pdb),
			DataDir:      m.Path(dataDir),
			MutationList: m.Path(mutList),
			PositionList: m.Path(posList),
			Output:       "heatmap.pdf",
		},
		runner: runner,
		ui:     ui,
		flow:   NewHeatmapWorkflow(adapter.NewLocalPositionFSAdapter(), runner, ui),
	}
}

func filteredListArg(t *testing.T, args []string) string {
	t.Helper()

	for i, arg := range args {
		if arg == "-q" {
			require.Less(t, i+1, len(args))
			return args[i+1]
		}
	}

	t.Fatal("no -q argument passed to runner")
	return ""
}

func TestHeatmapWorkflow_FiltersMissingPositions(t *testing.T) {
	f := newHeatmapFixture(t, []string{"AA25", "CA28", "GA31"}, []string{"AA25", "GA31"})

	result, err := f.flow.Run(context.Background(), f.args)
	require.NoError(t, err)

	assert.Equal(t, []m.Position{"CA28"}, result.Missing)
	assert.Equal(t, []m.Position{"CA28"}, f.ui.missing)

	require.Len(t, f.runner.calls, 1)
	call := f.runner.calls[0]
	assert.Equal(t, []string{"-p", string(f.args.PDB), "-d", string(f.args.DataDir), "-l", string(f.args.MutationList)}, call[:6])
	assert.Equal(t, []string{"-o", "heatmap.pdf"}, call[8:10])
}

func TestHeatmapWorkflow_RemovesTempFileByDefault(t *testing.T) {
	f := newHeatmapFixture(t, []string{"AA25"}, []string{"AA25"})

	_, err := f.flow.Run(context.Background(), f.args)
	require.NoError(t, err)

	require.Len(t, f.runner.calls, 1)
	tmp := filteredListArg(t, f.runner.calls[0])
	_, statErr := os.Stat(tmp)
	assert.True(t, os.IsNotExist(statErr), "temp file %s should be removed", tmp)
}

func TestHeatmapWorkflow_KeepTempRetainsFilteredList(t *testing.T) {
	f := newHeatmapFixture(t, []string{"AA25", "CA28"}, []string{"AA25"})
	f.args.KeepTemp = true

	result, err := f.flow.Run(context.Background(), f.args)
	require.NoError(t, err)

	require.NotEmpty(t, result.Filtered)
	t.Cleanup(func() { _ = os.Remove(string(result.Filtered)) })

	content, err := os.ReadFile(string(result.Filtered))
	require.NoError(t, err)
	assert.Equal(t, "AA25\n", string(content))
}

func TestHeatmapWorkflow_ForwardsExtraArgs(t *testing.T) {
	f := newHeatmapFixture(t, []string{"AA25"}, []string{"AA25"})
	f.args.Extra = []string{"-c", "jet", "-t"}

	_, err := f.flow.Run(context.Background(), f.args)
	require.NoError(t, err)

	require.Len(t, f.runner.calls, 1)
	call := f.runner.calls[0]
	assert.Equal(t, []string{"-c", "jet", "-t"}, call[len(call)-3:])
}

func TestHeatmapWorkflow_LogsFilterAndCommand(t *testing.T) {
	f := newHeatmapFixture(t, []string{"AA25", "CA28"}, []string{"AA25"})

	logs := &bytes.Buffer{}
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	_, err := f.flow.Run(context.Background(), f.args)
	require.NoError(t, err)

	logged := logs.String()
	assert.Contains(t, logged, "Filtered position list against energy files")
	assert.Contains(t, logged, "available=1")
	assert.Contains(t, logged, "missing=1")
	assert.Contains(t, logged, "Running heat-map tool")
	assert.Contains(t, logged, "command=ddg2heatmap")
	assert.Contains(t, logged, "Heat-map tool completed")
}

func TestHeatmapWorkflow_MissingInputIsFatal(t *testing.T) {
	f := newHeatmapFixture(t, []string{"AA25"}, []string{"AA25"})
	f.args.PositionList = m.Path(filepath.Join(t.TempDir(), "absent.txt"))

	_, err := f.flow.Run(context.Background(), f.args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
	assert.Empty(t, f.runner.calls)
}

func TestHeatmapWorkflow_MissingDataDirIsFatal(t *testing.T) {
	f := newHeatmapFixture(t, []string{"AA25"}, []string{"AA25"})
	f.args.DataDir = m.Path(filepath.Join(t.TempDir(), "absent"))

	_, err := f.flow.Run(context.Background(), f.args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data directory not found")
}

func TestHeatmapWorkflow_RunnerErrorPropagates(t *testing.T) {
	f := newHeatmapFixture(t, []string{"AA25"}, []string{"AA25"})
	f.runner.err = errors.New("exit status 1")

	_, err := f.flow.Run(context.Background(), f.args)
	require.Error(t, err)
}
