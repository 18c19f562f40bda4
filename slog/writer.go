package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/quizdoc"
)

// Ensure LoggingWriter implements quizdoc.QuizWriter.
var _ quizdoc.QuizWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a QuizWriter for one format with debug logging.
type LoggingWriter struct {
	next   quizdoc.QuizWriter
	format quizdoc.Format
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next quizdoc.QuizWriter, format quizdoc.Format, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, format: format, logger: logger}
}

// WriteQuiz delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteQuiz(out io.Writer, quiz *quizdoc.Quiz) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("write quiz",
			"format", string(w.format),
			"title", quiz.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteQuiz(out, quiz)
}
