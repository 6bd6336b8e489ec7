// Package harness runs conformance scenarios against the interactive shell.
//
// A scenario is a YAML file describing a complete console session: the
// scripted input lines, the pinned clock date, and expectations about the
// final state and the transcript. Each scenario runs against a fresh
// store.State, so scenarios are order-independent and isolated.
//
// Scenarios must end by exiting from the welcome screen; a session that
// runs out of scripted input is a scenario bug and fails verification.
package harness
