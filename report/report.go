// Package report writes a YAML summary of a pipeline run.
package report

import (
	"os"

	"github.com/ArnaudCalmettes/morphos/pipeline"
	"gopkg.in/yaml.v3"
)

// Report is the on-disk form of a pipeline.Result.
type Report struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Operator  string `yaml:"operator"`
	Threshold string `yaml:"threshold"`
	Cutoff    int    `yaml:"cutoff,omitempty"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	ElapsedMS int64  `yaml:"elapsed_ms"`
}

// FromResult builds a report from a run result.
func FromResult(r *pipeline.Result) Report {
	return Report{
		Input:     r.Input,
		Output:    r.Output,
		Operator:  r.Operator,
		Threshold: r.Threshold,
		Cutoff:    int(r.Cutoff),
		Width:     r.Width,
		Height:    r.Height,
		ElapsedMS: r.Elapsed.Milliseconds(),
	}
}

// Write writes the report of a run to a YAML file
func Write(path string, r *pipeline.Result) error {
	data, err := yaml.Marshal(FromResult(r))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read reads a report from a YAML file
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rep Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, err
	}

	return &rep, nil
}
