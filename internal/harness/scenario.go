package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines one scripted console session with expectations.
type Scenario struct {
	// Name uniquely identifies this scenario; it becomes the subtest name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Date pins the clock for deterministic sale dates (YYYY-MM-DD).
	// Defaults to 2024-06-01 when empty.
	Date string `yaml:"date,omitempty"`

	// Input is the scripted console input, one line per prompt. The last
	// lines must navigate back to the welcome screen and pick Exit.
	Input []string `yaml:"input"`

	// Expect describes the final state and transcript checks.
	Expect Expectations `yaml:"expect"`
}

// Expectations validate the state and transcript after the session ends.
type Expectations struct {
	// Items checks individual inventory items by id.
	Items []ItemExpectation `yaml:"items,omitempty"`

	// ItemCount, SaleCount and AccountCount check collection sizes.
	ItemCount    *int `yaml:"item_count,omitempty"`
	SaleCount    *int `yaml:"sale_count,omitempty"`
	AccountCount *int `yaml:"account_count,omitempty"`

	// OutputContains lists substrings that must appear in the transcript.
	OutputContains []string `yaml:"output_contains,omitempty"`

	// OutputOmits lists substrings that must NOT appear in the transcript.
	OutputOmits []string `yaml:"output_omits,omitempty"`
}

// ItemExpectation checks one inventory item. Zero-valued fields are not
// checked; set Removed to assert the id no longer resolves.
type ItemExpectation struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name,omitempty"`
	Category string `yaml:"category,omitempty"`
	Price    string `yaml:"price,omitempty"`
	Quantity *int   `yaml:"quantity,omitempty"`
	Removed  bool   `yaml:"removed,omitempty"`
}

// LoadScenario reads and parses a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if len(sc.Input) == 0 {
		return nil, fmt.Errorf("scenario %s: empty input script", path)
	}
	return &sc, nil
}

// LoadScenarios reads every *.yaml scenario in dir, sorted by filename.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob scenarios in %s: %w", dir, err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
