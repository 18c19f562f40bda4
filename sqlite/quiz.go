package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/quizdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ quizdoc.QuizService = (*QuizService)(nil)

// QuizService implements quizdoc.QuizService using SQLite.
type QuizService struct {
	db *DB
}

// NewQuizService creates a new QuizService.
func NewQuizService(db *DB) *QuizService {
	return &QuizService{db: db}
}

const quizColumns = "id, title, source_path, content_hash, quiz_json, created_at"

// hashContent computes the xxHash of content as a hex string.
func hashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// CreateQuiz stores a new quiz record. Records without a content hash are
// keyed by a hash of their serialized quiz.
func (s *QuizService) CreateQuiz(ctx context.Context, rec *quizdoc.QuizRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(rec.Quiz)
	if err != nil {
		return fmt.Errorf("failed to encode quiz: %w", err)
	}
	if rec.ContentHash == "" {
		rec.ContentHash = hashContent(data)
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quizzes (id, title, source_path, content_hash, quiz_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, rec.Title, rec.SourcePath, rec.ContentHash, string(data), createdAt.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return quizdoc.Errorf(quizdoc.ECONFLICT, "quiz already exists")
	}
	if err != nil {
		return err
	}

	rec.ID = id
	rec.CreatedAt = createdAt
	return nil
}

// FindQuizByID retrieves a quiz record by ID.
func (s *QuizService) FindQuizByID(ctx context.Context, id string) (*quizdoc.QuizRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+quizColumns+" FROM quizzes WHERE id = ?", id)
	rec, err := scanQuiz(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, quizdoc.Errorf(quizdoc.ENOTFOUND, "quiz not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindQuizzes retrieves quiz records matching the filter, newest first.
func (s *QuizService) FindQuizzes(ctx context.Context, filter quizdoc.QuizFilter) ([]*quizdoc.QuizRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + quizColumns + " FROM quizzes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*quizdoc.QuizRecord
	for rows.Next() {
		rec, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// ContentHashes returns the content hash of every stored quiz.
func (s *QuizService) ContentHashes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT content_hash FROM quizzes")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hashes []string
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}

	return hashes, rows.Err()
}

// DeleteQuiz permanently removes a quiz record.
func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM quizzes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return quizdoc.Errorf(quizdoc.ENOTFOUND, "quiz not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row scanner) (*quizdoc.QuizRecord, error) {
	var rec quizdoc.QuizRecord
	var data, createdAt string

	if err := row.Scan(&rec.ID, &rec.Title, &rec.SourcePath, &rec.ContentHash, &data, &createdAt); err != nil {
		return nil, err
	}

	rec.Quiz = quizdoc.NewQuiz("")
	if err := json.Unmarshal([]byte(data), rec.Quiz); err != nil {
		return nil, fmt.Errorf("failed to decode quiz %s: %w", rec.ID, err)
	}

	var err error
	rec.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
