package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockReporter is a testify mock implementation of types.Reporter.
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Info(msg string)    { m.Called(msg) }
func (m *MockReporter) Success(msg string) { m.Called(msg) }
func (m *MockReporter) Error(msg string)   { m.Called(msg) }

// ReportedLine is one message captured by RecordingReporter
type ReportedLine struct {
	Level string
	Msg   string
}

// RecordingReporter keeps every reported message in order.
type RecordingReporter struct {
	mu    sync.Mutex
	Lines []ReportedLine
}

func (r *RecordingReporter) record(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, ReportedLine{Level: level, Msg: msg})
}

func (r *RecordingReporter) Info(msg string)    { r.record("info", msg) }
func (r *RecordingReporter) Success(msg string) { r.record("success", msg) }
func (r *RecordingReporter) Error(msg string)   { r.record("error", msg) }

// Messages returns the reported messages of the given level, or all of
// them when level is empty.
func (r *RecordingReporter) Messages(level string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, l := range r.Lines {
		if level == "" || l.Level == level {
			out = append(out, l.Msg)
		}
	}
	return out
}
