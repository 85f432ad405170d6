package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

type mockLogger struct {
	mu       sync.Mutex
	infos    []string
	errors   []string
	verboses []string
}

func (m *mockLogger) Verbose(format string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verboses = append(m.verboses, format)
}

func (m *mockLogger) Info(format string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, format)
}

func (m *mockLogger) Error(format string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, format)
}

// invocation is one recorded client run.
type invocation struct {
	argv  []string
	stdin string
}

// mockRunner records every invocation and fails the ones whose stdin
// matches a configured failure.
type mockRunner struct {
	calls  []invocation
	failOn map[string]sqlstage.RunResult
	runErr error
	onRun  func(call int)
}

func (m *mockRunner) Run(_ context.Context, cmd sqlstage.Command, stdin io.Reader) (sqlstage.RunResult, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return sqlstage.RunResult{}, err
	}
	m.calls = append(m.calls, invocation{argv: cmd.Argv(), stdin: string(data)})
	if m.onRun != nil {
		m.onRun(len(m.calls))
	}
	if m.runErr != nil {
		return sqlstage.RunResult{}, m.runErr
	}
	if res, ok := m.failOn[string(data)]; ok {
		return res, nil
	}
	return sqlstage.RunResult{}, nil
}

func (m *mockRunner) stdins() []string {
	var out []string
	for _, c := range m.calls {
		out = append(out, c.stdin)
	}
	return out
}

type mockScanner struct {
	files []sqlstage.DumpFile
	err   error
}

func (m *mockScanner) ListFiles(_ string) ([]sqlstage.DumpFile, error) {
	return m.files, m.err
}

var errBoom = errors.New("boom")
