package logging

// NopLogger discards everything.
type NopLogger struct{}

var _ Logger = NopLogger{}

// Nop returns a Logger that discards all records.
func Nop() Logger { return NopLogger{} }

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
