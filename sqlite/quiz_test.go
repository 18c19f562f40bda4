package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/quizdoc"
	"github.com/fwojciec/quizdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(title, hash string) *quizdoc.QuizRecord {
	quiz := quizdoc.NewQuiz(title)
	quiz.NumberOfQuestions = 2
	quiz.MultipleChoiceQuestions = append(quiz.MultipleChoiceQuestions, &quizdoc.MultipleChoiceQuestion{
		Question: "What is 2 + 2?",
		Choices:  []string{"3", "4"},
		Answer:   "4",
	})
	quiz.AddUnrecognized("calculated_question", "<div>1 + 1</div>")
	return &quizdoc.QuizRecord{
		Title:       title,
		SourcePath:  "raw_html/" + title + ".html",
		ContentHash: hash,
		Quiz:        quiz,
	}
}

func TestQuizService_CreateQuiz(t *testing.T) {
	t.Parallel()

	t.Run("creates record with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		rec := newRecord("Week 1", "abc")

		err := svc.CreateQuiz(context.Background(), rec)

		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.CreatedAt.IsZero())
	})

	t.Run("returns error for invalid record", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))

		err := svc.CreateQuiz(context.Background(), &quizdoc.QuizRecord{})

		require.Error(t, err)
		assert.Equal(t, quizdoc.EINVALID, quizdoc.ErrorCode(err))
	})

	t.Run("returns conflict for duplicate content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateQuiz(ctx, newRecord("Week 1", "abc")))

		err := svc.CreateQuiz(ctx, newRecord("Week 1 again", "abc"))

		require.Error(t, err)
		assert.Equal(t, quizdoc.ECONFLICT, quizdoc.ErrorCode(err))
	})

	t.Run("hashes quiz when no content hash is given", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()
		rec := newRecord("Week 1", "")
		require.NoError(t, svc.CreateQuiz(ctx, rec))
		assert.Len(t, rec.ContentHash, 16)

		err := svc.CreateQuiz(ctx, newRecord("Week 1", ""))

		assert.Equal(t, quizdoc.ECONFLICT, quizdoc.ErrorCode(err))
	})
}

func TestQuizService_FindQuizByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored quiz", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()
		rec := newRecord("Week 1", "abc")
		require.NoError(t, svc.CreateQuiz(ctx, rec))

		found, err := svc.FindQuizByID(ctx, rec.ID)

		require.NoError(t, err)
		assert.Equal(t, rec.ID, found.ID)
		assert.Equal(t, "Week 1", found.Title)
		assert.Equal(t, "raw_html/Week 1.html", found.SourcePath)
		assert.Equal(t, "abc", found.ContentHash)
		assert.True(t, rec.CreatedAt.Equal(found.CreatedAt))
		assert.Equal(t, rec.Quiz, found.Quiz)
	})

	t.Run("returns ENOTFOUND for missing quiz", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))

		_, err := svc.FindQuizByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, quizdoc.ENOTFOUND, quizdoc.ErrorCode(err))
	})
}

func TestQuizService_FindQuizzes(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *sqlite.QuizService {
		t.Helper()
		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateQuiz(ctx, newRecord("Week 1", "a")))
		require.NoError(t, svc.CreateQuiz(ctx, newRecord("Week 2", "b")))
		require.NoError(t, svc.CreateQuiz(ctx, newRecord("Week 3", "c")))
		return svc
	}

	t.Run("returns all quizzes newest first", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)

		recs, err := svc.FindQuizzes(context.Background(), quizdoc.QuizFilter{})

		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, "Week 3", recs[0].Title)
		assert.Equal(t, "Week 1", recs[2].Title)
	})

	t.Run("filters by title", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)
		title := "Week 2"

		recs, err := svc.FindQuizzes(context.Background(), quizdoc.QuizFilter{Title: &title})

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "b", recs[0].ContentHash)
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)
		hash := "c"

		recs, err := svc.FindQuizzes(context.Background(), quizdoc.QuizFilter{ContentHash: &hash})

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Week 3", recs[0].Title)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)

		recs, err := svc.FindQuizzes(context.Background(), quizdoc.QuizFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Week 2", recs[0].Title)

		recs, err = svc.FindQuizzes(context.Background(), quizdoc.QuizFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Week 1", recs[0].Title)
	})

	t.Run("returns empty for no match", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)
		title := "Week 9"

		recs, err := svc.FindQuizzes(context.Background(), quizdoc.QuizFilter{Title: &title})

		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}

func TestQuizService_ContentHashes(t *testing.T) {
	t.Parallel()

	t.Run("returns hash of every quiz", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateQuiz(ctx, newRecord("Week 1", "a")))
		require.NoError(t, svc.CreateQuiz(ctx, newRecord("Week 2", "b")))

		hashes, err := svc.ContentHashes(ctx)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, hashes)
	})

	t.Run("returns nothing for empty library", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))

		hashes, err := svc.ContentHashes(context.Background())

		require.NoError(t, err)
		assert.Empty(t, hashes)
	})
}

func TestQuizService_DeleteQuiz(t *testing.T) {
	t.Parallel()

	t.Run("removes quiz", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))
		ctx := context.Background()
		rec := newRecord("Week 1", "abc")
		require.NoError(t, svc.CreateQuiz(ctx, rec))

		require.NoError(t, svc.DeleteQuiz(ctx, rec.ID))

		_, err := svc.FindQuizByID(ctx, rec.ID)
		assert.Equal(t, quizdoc.ENOTFOUND, quizdoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing quiz", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewQuizService(setupTestDB(t))

		err := svc.DeleteQuiz(context.Background(), "missing")

		assert.Equal(t, quizdoc.ENOTFOUND, quizdoc.ErrorCode(err))
	})
}
