package report

import "github.com/rs/zerolog"

// Sink receives the rendered diagnostic report for a failed check. Injecting
// it keeps the core free of global logging state and lets tests capture
// output directly.
type Sink interface {
	ReportError(runID string, message string)
}

// LogSink emits reports through a zerolog logger at error severity.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a Sink backed by the given logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// ReportError logs the report with the check's run ID attached.
func (s *LogSink) ReportError(runID string, message string) {
	s.logger.Error().Str("run_id", runID).Msg(message)
}
