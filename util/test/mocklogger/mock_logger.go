// Package mocklogger provides a call-tracking implementation of
// ulogger.Logger for tests that need to assert on what was logged.
package mocklogger

import (
	"fmt"
	"sync"
	"testing"

	"github.com/cloakchain/cloaknode/ulogger"
)

// MockLogger is a thread-safe ulogger.Logger that records every call and the
// formatted message it was given.
type MockLogger struct {
	mu       sync.Mutex
	calls    map[string]int
	messages map[string][]string
}

// NewTestLogger creates a new instance of MockLogger.
func NewTestLogger() *MockLogger {
	return &MockLogger{
		calls:    make(map[string]int),
		messages: make(map[string][]string),
	}
}

func (l *MockLogger) LogLevel() int {
	return 0
}

func (l *MockLogger) SetLogLevel(_ string) {
	// ignore
}

func (l *MockLogger) New(_ string, _ ...ulogger.Option) ulogger.Logger {
	return NewTestLogger()
}

func (l *MockLogger) Duplicate(_ ...ulogger.Option) ulogger.Logger {
	return l
}

func (l *MockLogger) Debugf(format string, args ...interface{}) {
	l.recordCall("Debugf", format, args...)
}

func (l *MockLogger) Infof(format string, args ...interface{}) {
	l.recordCall("Infof", format, args...)
}

func (l *MockLogger) Warnf(format string, args ...interface{}) {
	l.recordCall("Warnf", format, args...)
}

func (l *MockLogger) Errorf(format string, args ...interface{}) {
	l.recordCall("Errorf", format, args...)
}

func (l *MockLogger) Fatalf(format string, args ...interface{}) {
	l.recordCall("Fatalf", format, args...)
}

func (l *MockLogger) recordCall(methodName, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls[methodName]++
	l.messages[methodName] = append(l.messages[methodName], fmt.Sprintf(format, args...))
}

// Messages returns the formatted messages recorded for a method.
func (l *MockLogger) Messages(methodName string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.messages[methodName]))
	copy(out, l.messages[methodName])

	return out
}

// AssertNumberOfCalls is a test helper that verifies the expected number of calls to a method.
func (l *MockLogger) AssertNumberOfCalls(t *testing.T, methodName string, expectedCalls int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	actualCalls := l.calls[methodName]
	if actualCalls != expectedCalls {
		t.Errorf("Expected %v calls to %s, got %v", expectedCalls, methodName, actualCalls)
	}
}

// Reset clears all recorded method calls.
func (l *MockLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls = make(map[string]int)
	l.messages = make(map[string][]string)
}
