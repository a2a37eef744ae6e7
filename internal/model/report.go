package model

// RunReport summarizes one command invocation. It is written as YAML when
// the operator passes --report.
type RunReport struct {
	Command string `yaml:"command"`
	Input   Path   `yaml:"input,omitempty"`
	Output  Path   `yaml:"output,omitempty"`

	// Written is the number of position identifiers emitted.
	Written int `yaml:"written"`

	// Skipped holds the raw input lines or residues that failed validation.
	Skipped []string `yaml:"skipped,omitempty"`

	// Missing holds positions excluded because their energy file was absent.
	Missing []string `yaml:"missing,omitempty"`
}
