package vcs

import (
	"context"
	"sync"
)

// Mock is an in-memory history source.
type Mock struct {
	mu      sync.Mutex
	records []string
	err     error
	calls   []LogOpts
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SetRecords(records ...string) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = records
	return m
}

// SetError makes ReadRawCommits fail with err.
func (m *Mock) SetError(err error) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// Calls returns the options of every ReadRawCommits call.
func (m *Mock) Calls() []LogOpts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LogOpts(nil), m.calls...)
}

func (m *Mock) ReadRawCommits(ctx context.Context, opts LogOpts) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, opts)
	if m.err != nil {
		return nil, m.err
	}
	return append([]string(nil), m.records...), nil
}
