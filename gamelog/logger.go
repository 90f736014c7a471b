package gamelog

// Logger is the logging surface used by the simulation and its hosts.
// Key-value pairs follow the log/slog convention.
type Logger interface {
	Info(msg string, keyValues ...any)
	Warn(msg string, keyValues ...any)
	Error(msg string, keyValues ...any)
	Debug(msg string, keyValues ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

// With attaches key-values to l when it supports them and returns l unchanged otherwise.
func With(l Logger, keyValues ...any) Logger {
	if a, ok := l.(*SlogAdapter); ok {
		return a.With(keyValues...)
	}
	return l
}
