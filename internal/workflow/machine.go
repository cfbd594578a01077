// Package workflow implements the linear submission machines behind the
// enrollment, quiz-attempt, and assignment-submission views:
//
//	Loading → Ready → Submitting → Succeeded | Failed
//
// Loading fetches every dependency jointly and fails whole on the first
// error; Ready gates submission on local validation that never touches the
// network; Submitting admits one in-flight submission per instance; a
// failed submission returns to Ready with the draft preserved, while a
// failed load is terminal for the instance.
package workflow

import "sync"

// State is a workflow machine state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// machine tracks state transitions shared by all workflows.
type machine struct {
	mu    sync.Mutex
	state State
	err   error
}

func newMachine() machine {
	return machine{state: StateLoading}
}

// State returns the current state.
func (m *machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the error that moved the machine to Failed, if any.
func (m *machine) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// ready moves Loading → Ready after all dependencies resolved.
func (m *machine) ready() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateLoading {
		m.state = StateReady
	}
}

// fail records a terminal failure (load errors).
func (m *machine) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateFailed
	m.err = err
}

// beginSubmit moves Ready → Submitting; false when a submission is already
// in flight or the form is not ready, which the caller must treat as a
// rejected duplicate click.
func (m *machine) beginSubmit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return false
	}
	m.state = StateSubmitting
	return true
}

// finishSubmit resolves Submitting: success is terminal, a submission
// error returns to Ready with the draft intact so the user can retry.
func (m *machine) finishSubmit(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateSubmitting {
		return
	}
	if err != nil {
		m.state = StateReady
		m.err = err
		return
	}
	m.state = StateSucceeded
	m.err = nil
}
