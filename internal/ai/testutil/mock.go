// Package testutil provides a scripted text generator for orchestration tests.
package testutil

import (
	"context"
	"sync"
)

// Call records the instructions of one Generate call.
type Call struct {
	System string
	User   string
}

// MockTextGenerator is a thread-safe stand-in for a model client.
//
// Respond, when set, computes every answer. Otherwise Err is returned if set,
// then Responses are handed out in order, then "".
type MockTextGenerator struct {
	mu            sync.Mutex
	Respond       func(system, user string) (string, error)
	Responses     []string
	Err           error
	calls         []Call
	responseIndex int
}

// Generate implements ai.TextGenerator.
func (m *MockTextGenerator) Generate(_ context.Context, system, user string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, Call{System: system, User: user})

	if m.Respond != nil {
		return m.Respond(system, user)
	}
	if m.Err != nil {
		return "", m.Err
	}
	if m.responseIndex < len(m.Responses) {
		resp := m.Responses[m.responseIndex]
		m.responseIndex++
		return resp, nil
	}
	return "", nil
}

// Calls returns a copy of the recorded calls.
func (m *MockTextGenerator) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallCount returns the number of Generate calls made so far.
func (m *MockTextGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
