package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kalestew/mutatex/internal/adapter"
	"github.com/kalestew/mutatex/internal/controller"
	m "github.com/kalestew/mutatex/internal/model"
)

// HeatmapArgs carries everything needed for a filtered heat-map invocation.
type HeatmapArgs struct {
	PDB          m.Path
	DataDir      m.Path
	MutationList m.Path
	PositionList m.Path
	Output       m.Path

	// KeepTemp leaves the filtered position list on disk for inspection.
	KeepTemp bool

	// Extra arguments are forwarded verbatim to the heat-map tool.
	Extra []string
}

// HeatmapResult reports what a heat-map run filtered out.
type HeatmapResult struct {
	Missing  []m.Position
	Filtered m.Path // path of the filtered list, set when KeepTemp is true
}

// HeatmapWorkflow runs the heat-map tool against a position list filtered
// down to the positions that actually have energy files.
type HeatmapWorkflow interface {
	Run(ctx context.Context, args HeatmapArgs) (HeatmapResult, error)
}

type heatmapWorkflow struct {
	fs     adapter.PositionFSAdapter
	runner adapter.HeatmapRunnerAdapter
	ui     controller.UI
}

// NewHeatmapWorkflow wires a HeatmapWorkflow from its collaborators.
func NewHeatmapWorkflow(
	fs adapter.PositionFSAdapter,
	runner adapter.HeatmapRunnerAdapter,
	ui controller.UI,
) HeatmapWorkflow {
	return &heatmapWorkflow{fs: fs, runner: runner, ui: ui}
}

// Run validates the inputs, filters the position list against the energy
// directory, writes the filtered list to a temporary file, and invokes the
// heat-map tool with it. The temporary file is removed afterwards unless
// KeepTemp is set.
func (w *heatmapWorkflow) Run(ctx context.Context, args HeatmapArgs) (HeatmapResult, error) {
	for _, p := range []m.Path{args.PDB, args.MutationList, args.PositionList} {
		info, err := w.fs.FileInfo(p)
		if err != nil || info.IsDir() {
			return HeatmapResult{}, fmt.Errorf("file not found: %s", p)
		}
	}

	if info, err := w.fs.FileInfo(args.DataDir); err != nil || !info.IsDir() {
		return HeatmapResult{}, fmt.Errorf("data directory not found: %s", args.DataDir)
	}

	positions, err := w.readPositionList(args.PositionList)
	if err != nil {
		return HeatmapResult{}, err
	}

	available, missing, err := PartitionByEnergyFile(ctx, w.fs, args.DataDir, positions)
	if err != nil {
		return HeatmapResult{}, err
	}

	slog.Info("Filtered position list against energy files",
		"dataDir", args.DataDir, "available", len(available), "missing", len(missing))

	w.ui.DisplayMissingPositions(missing)

	filtered, err := w.fs.CreateTemp("filtered_pos_*.txt")
	if err != nil {
		return HeatmapResult{}, err
	}

	if !args.KeepTemp {
		defer func() {
			_ = w.fs.Remove(filtered)
		}()
	}

	var content strings.Builder
	for _, pos := range available {
		content.WriteString(string(pos))
		content.WriteByte('\n')
	}

	if err := w.fs.WriteFile(filtered, []byte(content.String()), 0o644); err != nil {
		return HeatmapResult{}, fmt.Errorf("failed to write filtered position list: %w", err)
	}

	runArgs := []string{
		"-p", string(args.PDB),
		"-d", string(args.DataDir),
		"-l", string(args.MutationList),
		"-q", string(filtered),
		"-o", string(args.Output),
	}
	runArgs = append(runArgs, args.Extra...)

	w.ui.DisplayCommand("ddg2heatmap", runArgs)
	slog.Info("Running heat-map tool", "command", "ddg2heatmap", "args", strings.Join(runArgs, " "))

	if err := w.runner.RunHeatmap(ctx, runArgs); err != nil {
		slog.Error("Heat-map tool failed", "error", err)
		return HeatmapResult{}, err
	}

	slog.Debug("Heat-map tool completed", "output", args.Output)
	w.ui.Infof("ddg2heatmap completed")
	if len(missing) > 0 {
		w.ui.Infof("filtered out %d missing position(s)", len(missing))
	}

	result := HeatmapResult{Missing: missing}
	if args.KeepTemp {
		result.Filtered = filtered
		w.ui.Infof("filtered position list kept at %s", filtered)
	}

	return result, nil
}

// readPositionList loads a position list, skipping blank lines.
func (w *heatmapWorkflow) readPositionList(path m.Path) ([]m.Position, error) {
	data, err := w.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read position list: %w", err)
	}

	var positions []m.Position
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		positions = append(positions, m.Position(line))
	}

	return positions, nil
}
