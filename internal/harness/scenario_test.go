package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: smoke
description: exit immediately
date: "2024-06-01"
input:
  - "3"
expect:
  account_count: 0
  output_contains:
    - "Goodbye!"
`)
	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "smoke", sc.Name)
	assert.Equal(t, "2024-06-01", sc.Date)
	assert.Equal(t, []string{"3"}, sc.Input)
	require.NotNil(t, sc.Expect.AccountCount)
	assert.Equal(t, 0, *sc.Expect.AccountCount)
	assert.Equal(t, []string{"Goodbye!"}, sc.Expect.OutputContains)
}

func TestLoadScenarioMissingName(t *testing.T) {
	path := writeScenario(t, `
input:
  - "3"
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name")
}

func TestLoadScenarioEmptyInput(t *testing.T) {
	path := writeScenario(t, `
name: no-input
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input script")
}

func TestLoadScenariosSorted(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(scenarios), 5)

	for _, sc := range scenarios {
		assert.NotEmpty(t, sc.Name)
		assert.NotEmpty(t, sc.Input)
	}
}
