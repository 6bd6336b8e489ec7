package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarios runs every scenario under testdata/scenarios as a subtest.
func TestScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios, "scenario directory must not be empty")

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			result, err := Run(sc)
			require.NoError(t, err)
			result.Verify(t)
		})
	}
}

// TestScenarioIsolation runs the same scenario twice and checks the second
// run sees none of the first run's state.
func TestScenarioIsolation(t *testing.T) {
	sc, err := LoadScenario("testdata/scenarios/gold_ring_sale.yaml")
	require.NoError(t, err)

	first, err := Run(sc)
	require.NoError(t, err)
	second, err := Run(sc)
	require.NoError(t, err)

	assert.Equal(t, 1, first.State.Sales.Len())
	assert.Equal(t, 1, second.State.Sales.Len(), "each run starts from fresh state")
	assert.Equal(t, first.Transcript, second.Transcript, "runs are deterministic")
}

func TestRunRejectsBadDate(t *testing.T) {
	sc := &Scenario{Name: "bad-date", Date: "06/01/2024", Input: []string{"3"}}
	_, err := Run(sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad date")
}
