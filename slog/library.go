package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/quizdoc"
)

// Ensure LoggingQuizService implements quizdoc.QuizService.
var _ quizdoc.QuizService = (*LoggingQuizService)(nil)

// LoggingQuizService wraps a QuizService with debug logging.
type LoggingQuizService struct {
	next   quizdoc.QuizService
	logger *slog.Logger
}

// NewLoggingQuizService creates a new LoggingQuizService.
func NewLoggingQuizService(next quizdoc.QuizService, logger *slog.Logger) *LoggingQuizService {
	return &LoggingQuizService{next: next, logger: logger}
}

func (s *LoggingQuizService) CreateQuiz(ctx context.Context, rec *quizdoc.QuizRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create quiz",
			"id", rec.ID,
			"title", rec.Title,
			"hash", rec.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateQuiz(ctx, rec)
}

func (s *LoggingQuizService) FindQuizByID(ctx context.Context, id string) (rec *quizdoc.QuizRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find quiz",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindQuizByID(ctx, id)
}

func (s *LoggingQuizService) FindQuizzes(ctx context.Context, filter quizdoc.QuizFilter) (recs []*quizdoc.QuizRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find quizzes",
			"count", len(recs),
			"offset", filter.Offset,
			"limit", filter.Limit,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindQuizzes(ctx, filter)
}

func (s *LoggingQuizService) ContentHashes(ctx context.Context) (hashes []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("content hashes",
			"count", len(hashes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ContentHashes(ctx)
}

func (s *LoggingQuizService) DeleteQuiz(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete quiz",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteQuiz(ctx, id)
}
