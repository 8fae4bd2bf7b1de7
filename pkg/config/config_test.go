package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidateAggregatesEveryViolation(t *testing.T) {
	f := Default()
	f.Planner.MaxDepth = -1
	f.Planner.NumSimulations = -1
	f.Experiment.Name = ""

	err := f.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want an error for three simultaneous violations")
	}

	merr, ok := err.(*multierror.Error)
	if !ok {
		t.Fatalf("Validate() error type = %T, want *multierror.Error", err)
	}
	if len(merr.Errors) != 3 {
		t.Fatalf("len(merr.Errors) = %d, want 3 (one per violation)", len(merr.Errors))
	}
}

func TestValidateCatchesMaxDoublesBelowMinDoubles(t *testing.T) {
	f := Default()
	f.Experiment.MinDoubles = 5
	f.Experiment.MaxDoubles = 2

	if err := f.Validate(); err == nil {
		t.Fatal("Validate() = nil, want an error for max_doubles < min_doubles")
	}
}

func TestLoadRoundTripsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yamlContent := `
planner:
  max_depth: 42
  num_simulations: 7
experiment:
  name: roundtrip
  num_runs: 5
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.Planner.MaxDepth != 42 {
		t.Fatalf("Planner.MaxDepth = %d, want 42", f.Planner.MaxDepth)
	}
	if f.Planner.NumSimulations != 7 {
		t.Fatalf("Planner.NumSimulations = %d, want 7", f.Planner.NumSimulations)
	}
	if f.Experiment.Name != "roundtrip" {
		t.Fatalf("Experiment.Name = %q, want \"roundtrip\"", f.Experiment.Name)
	}
	// Fields absent from the YAML document fall back to Default(), not zero.
	if f.Planner.NumStartStates != Default().Planner.NumStartStates {
		t.Fatalf("Planner.NumStartStates = %d, want the default %d", f.Planner.NumStartStates, Default().Planner.NumStartStates)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(path, []byte("planner:\n  max_depth: -1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() = nil error, want a validation failure wrapped with the config path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load() on a missing file = nil error, want one")
	}
}
