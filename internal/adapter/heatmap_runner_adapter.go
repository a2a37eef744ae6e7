package adapter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// HeatmapRunnerAdapter abstracts the external ddg2heatmap invocation.
type HeatmapRunnerAdapter interface {
	// RunHeatmap invokes the heat-map tool with the given arguments,
	// streaming its output to this process's stdout/stderr. A non-zero exit
	// status comes back as an error.
	RunHeatmap(ctx context.Context, args []string) error
}

// LocalHeatmapRunnerAdapter provides a concrete implementation using os/exec.
type LocalHeatmapRunnerAdapter struct {
	command string
}

// NewLocalHeatmapRunnerAdapter constructs a LocalHeatmapRunnerAdapter that
// resolves "ddg2heatmap" from PATH.
func NewLocalHeatmapRunnerAdapter() *LocalHeatmapRunnerAdapter {
	return &LocalHeatmapRunnerAdapter{command: "ddg2heatmap"}
}

// RunHeatmap runs the heat-map tool with inherited standard streams.
func (a *LocalHeatmapRunnerAdapter) RunHeatmap(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, a.command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", a.command, err)
	}

	return nil
}
