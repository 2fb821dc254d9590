package ulogger

import (
	"sync"
	"testing"
)

// VerboseTestLogger routes log output through the test runner so log lines
// interleave with the assertions that produced them. Fatalf fails the test.
type VerboseTestLogger struct {
	tb      testing.TB
	service string
	mutex   sync.Mutex
}

func NewVerboseTestLogger(tb testing.TB) *VerboseTestLogger {
	return &VerboseTestLogger{tb: tb}
}

func (l *VerboseTestLogger) LogLevel() int {
	return 0
}

func (l *VerboseTestLogger) SetLogLevel(level string) {}

func (l *VerboseTestLogger) New(service string, options ...Option) Logger {
	return &VerboseTestLogger{tb: l.tb, service: service}
}

func (l *VerboseTestLogger) Duplicate(options ...Option) Logger {
	return l
}

func (l *VerboseTestLogger) logf(level, format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	prefix := "[" + level + "] "
	if l.service != "" {
		prefix = "[" + level + "] " + l.service + ": "
	}

	l.tb.Logf(prefix+format, args...)
}

func (l *VerboseTestLogger) Debugf(format string, args ...interface{}) {
	l.logf("DEBUG", format, args...)
}

func (l *VerboseTestLogger) Infof(format string, args ...interface{}) {
	l.logf("INFO", format, args...)
}

func (l *VerboseTestLogger) Warnf(format string, args ...interface{}) {
	l.logf("WARN", format, args...)
}

func (l *VerboseTestLogger) Errorf(format string, args ...interface{}) {
	l.logf("ERROR", format, args...)
}

func (l *VerboseTestLogger) Fatalf(format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.tb.Fatalf("[FATAL] "+format, args...)
}
