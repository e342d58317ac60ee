package blambda

import (
	"log"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about errors the handler adapter swallows.
type Logger interface {
	LogUnhandledError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogUnhandledError(err error) {
	l.Logger.Printf("blambda: unhandled error: %s", err)
}

// NewStdLogger adapts a standard library logger. A nil logger uses [log.Default].
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}

	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogUnhandledError int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogUnhandledError(err error) {
	atomic.AddInt64(&l.NumLogUnhandledError, 1)
	l.tb.Logf("blambda: unhandled error: %s", err)
}

var _ Logger = &TestLogger{}
