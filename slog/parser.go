// Package slog provides logging decorators for quizdoc services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/quizdoc"
)

// Ensure LoggingParser implements quizdoc.QuizParser.
var _ quizdoc.QuizParser = (*LoggingParser)(nil)

// LoggingParser wraps a QuizParser with debug logging.
type LoggingParser struct {
	next   quizdoc.QuizParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next quizdoc.QuizParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseQuiz delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) ParseQuiz(html string) (quiz *quizdoc.Quiz, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if quiz != nil {
			attrs = append(attrs,
				"title", quiz.Title,
				"fragments", quiz.NumberOfQuestions,
				"questions", quiz.Len(),
				"unanswered", quiz.Unanswered(),
			)
		}
		p.logger.Debug("parse quiz", attrs...)
	}(time.Now())
	return p.next.ParseQuiz(html)
}
