package harness

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gemshelf/gemshelf/internal/preset"
	"github.com/gemshelf/gemshelf/internal/shell"
	"github.com/gemshelf/gemshelf/internal/store"
	"github.com/gemshelf/gemshelf/internal/testutil"
)

// defaultDate pins scenarios that do not specify their own date.
const defaultDate = "2024-06-01"

// Result holds everything a scenario run produced: the full transcript,
// the final state, and the router's exit error (nil for a clean exit).
type Result struct {
	Scenario   *Scenario
	Transcript string
	State      *store.State
	RunErr     error
}

// Run executes a scenario against a fresh state and returns the result.
// The returned error covers harness setup problems only; session-level
// failures land in Result.RunErr so expectations can assert on them.
func Run(scenario *Scenario) (*Result, error) {
	date := scenario.Date
	if date == "" {
		date = defaultDate
	}
	day, err := time.Parse(store.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: bad date %q: %w", scenario.Name, date, err)
	}

	presets, err := preset.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load preset catalog: %w", err)
	}

	state := store.New(testutil.NewFixedClock(day))
	var out bytes.Buffer
	console := shell.NewConsole(testutil.Script(scenario.Input...), &out)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // suppress logs in tests
	router := shell.NewRouter(state, console, presets, logger)

	runErr := router.Run()
	return &Result{
		Scenario:   scenario,
		Transcript: out.String(),
		State:      state,
		RunErr:     runErr,
	}, nil
}
