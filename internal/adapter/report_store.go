package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/kalestew/mutatex/internal/model"
)

// ReportStore persists run reports for later inspection.
type ReportStore interface {
	Save(path m.Path, report m.RunReport) error
}

// LocalReportStore writes reports as YAML files.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// Save marshals the report and writes it to path.
func (s *LocalReportStore) Save(path m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}

	return nil
}
