package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/talefold/talefold/internal/dialect"
)

// Scenario defines one conformance scenario: an authored condition and/or
// instruction plus the engines to export it to.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Engines lists the export targets. Empty means every supported engine.
	Engines []string `yaml:"engines,omitempty"`

	// Condition is the authored condition tree, exactly as the editor
	// stores it. Optional.
	Condition map[string]interface{} `yaml:"condition,omitempty"`

	// Instruction is the authored assignment list. Optional.
	Instruction []map[string]interface{} `yaml:"instruction,omitempty"`

	// Expect holds inline per-engine expectations, checked in addition to
	// the golden snapshot.
	Expect []Expectation `yaml:"expect,omitempty"`
}

// Expectation pins the compiled output for one engine.
// Condition and Instruction are pointers so an expected-empty output is
// expressible; a nil field is simply not checked.
type Expectation struct {
	Engine      string  `yaml:"engine"`
	Condition   *string `yaml:"condition,omitempty"`
	Instruction *string `yaml:"instruction,omitempty"`

	// Warnings is the expected warning count across both compiles.
	Warnings *int `yaml:"warnings,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so a typo like "expects:" fails loudly instead of silently
// skipping checks.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// LoadScenarios loads every *.yaml scenario under dir, sorted by file name
// for deterministic test order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// Validate checks structural requirements before the scenario runs.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario missing name")
	}
	if s.Condition == nil && len(s.Instruction) == 0 {
		return fmt.Errorf("scenario %q has neither condition nor instruction", s.Name)
	}

	for _, engine := range s.Engines {
		if _, err := dialect.Parse(engine); err != nil {
			return err
		}
	}

	targets := s.TargetEngines()
	for _, e := range s.Expect {
		if _, err := dialect.Parse(e.Engine); err != nil {
			return err
		}
		found := false
		for _, engine := range targets {
			if engine == e.Engine {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("scenario %q expects engine %q it does not target", s.Name, e.Engine)
		}
	}
	return nil
}

// TargetEngines resolves the engine list, defaulting to all supported
// engines in stable order.
func (s *Scenario) TargetEngines() []string {
	if len(s.Engines) > 0 {
		return s.Engines
	}
	all := dialect.Engines()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = string(e)
	}
	return names
}
