// Package display provides implementations of the display collaborator that
// receives the display signals of the machine.
package display

import (
	"github.com/retroenv/retrogolib/log"
)

// Recorder counts the received display signals.
type Recorder struct {
	clears int
}

// NewRecorder returns a new display recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear records a clear signal.
func (r *Recorder) Clear() {
	r.clears++
}

// Clears returns the number of received clear signals.
func (r *Recorder) Clears() int {
	return r.clears
}

// Logger reports the received display signals to a logger.
type Logger struct {
	logger *log.Logger
}

// NewLogger returns a display that logs every signal.
func NewLogger(logger *log.Logger) *Logger {
	return &Logger{
		logger: logger,
	}
}

// Clear logs a clear signal.
func (l *Logger) Clear() {
	l.logger.Info("Clear display")
}
