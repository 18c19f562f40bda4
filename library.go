package quizdoc

import (
	"context"
	"time"
)

// QuizRecord is a parsed quiz kept in the library.
type QuizRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	SourcePath  string    `json:"sourcePath"`
	ContentHash string    `json:"contentHash"`
	Quiz        *Quiz     `json:"quiz"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *QuizRecord) Validate() error {
	if r.Quiz == nil {
		return Errorf(EINVALID, "quiz record quiz required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "quiz record title required")
	}
	return nil
}

// QuizService represents a service for managing stored quizzes.
type QuizService interface {
	// CreateQuiz stores a new quiz record and assigns its ID.
	// Returns ECONFLICT if a record with the same content hash exists.
	CreateQuiz(ctx context.Context, rec *QuizRecord) error

	// FindQuizByID retrieves a quiz record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindQuizByID(ctx context.Context, id string) (*QuizRecord, error)

	// FindQuizzes retrieves quiz records matching the filter.
	FindQuizzes(ctx context.Context, filter QuizFilter) ([]*QuizRecord, error)

	// ContentHashes returns the content hash of every stored record.
	ContentHashes(ctx context.Context) ([]string, error)

	// DeleteQuiz permanently removes a quiz record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteQuiz(ctx context.Context, id string) error
}

// QuizFilter represents a filter for FindQuizzes.
type QuizFilter struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
