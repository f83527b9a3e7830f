package logging

// Logger is the capability callers depend on. It mirrors the level methods of *slog.Logger,
// so a *slog.Logger satisfies it as well.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
