package singleton

import (
	"github.com/AntonStoeckl/object-creation-go/config"
	"github.com/AntonStoeckl/object-creation-go/logging"
)

// Holder owns exactly one Logger for the lifetime of the process.
type Holder struct {
	logger logging.Logger
}

var instance = newHolder(logging.NewConsoleLogger(config.DefaultLoggerName()))

func newHolder(logger logging.Logger) *Holder {
	return &Holder{logger: logger}
}

// Instance returns the process-wide Holder. Every call returns the same pointer.
func Instance() *Holder {
	return instance
}

// LogInfo delegates to the Info method of the held logger.
func (h *Holder) LogInfo(message string, args ...any) {
	h.logger.Info(message, args...)
}

// LogWarn delegates to the Warn method of the held logger.
func (h *Holder) LogWarn(message string, args ...any) {
	h.logger.Warn(message, args...)
}

// LogError delegates to the Error method of the held logger.
func (h *Holder) LogError(message string, args ...any) {
	h.logger.Error(message, args...)
}
