package mock

import (
	"context"

	"github.com/fwojciec/quizdoc"
)

var _ quizdoc.QuizService = (*QuizService)(nil)

// QuizService is a mock implementation of quizdoc.QuizService.
type QuizService struct {
	CreateQuizFn    func(ctx context.Context, rec *quizdoc.QuizRecord) error
	FindQuizByIDFn  func(ctx context.Context, id string) (*quizdoc.QuizRecord, error)
	FindQuizzesFn   func(ctx context.Context, filter quizdoc.QuizFilter) ([]*quizdoc.QuizRecord, error)
	ContentHashesFn func(ctx context.Context) ([]string, error)
	DeleteQuizFn    func(ctx context.Context, id string) error
}

func (s *QuizService) CreateQuiz(ctx context.Context, rec *quizdoc.QuizRecord) error {
	return s.CreateQuizFn(ctx, rec)
}

func (s *QuizService) FindQuizByID(ctx context.Context, id string) (*quizdoc.QuizRecord, error) {
	return s.FindQuizByIDFn(ctx, id)
}

func (s *QuizService) FindQuizzes(ctx context.Context, filter quizdoc.QuizFilter) ([]*quizdoc.QuizRecord, error) {
	return s.FindQuizzesFn(ctx, filter)
}

func (s *QuizService) ContentHashes(ctx context.Context) ([]string, error) {
	return s.ContentHashesFn(ctx)
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.DeleteQuizFn(ctx, id)
}
