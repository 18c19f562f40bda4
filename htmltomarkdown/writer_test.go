package htmltomarkdown_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/quizdoc"
	"github.com/fwojciec/quizdoc/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Writer implements quizdoc.QuizWriter at compile time.
var _ quizdoc.QuizWriter = (*htmltomarkdown.Writer)(nil)

func sampleQuiz() *quizdoc.Quiz {
	quiz := quizdoc.NewQuiz("Geography Quiz")
	quiz.NumberOfQuestions = 3
	quiz.MultipleChoiceQuestions = append(quiz.MultipleChoiceQuestions, &quizdoc.MultipleChoiceQuestion{
		Question: "What is the capital of France?",
		Answer:   "Paris",
		Choices:  []string{"Paris", "Madrid"},
	})
	quiz.MatchingQuestions = append(quiz.MatchingQuestions, &quizdoc.MatchingQuestion{
		Question:   "Match the capitals",
		Answers:    map[string]string{"France": "Paris", "Spain": "Madrid"},
		AnswerBank: []string{"Paris", "Madrid"},
		WordBank:   []string{"France", "Spain"},
	})
	quiz.ShortAnswerQuestions = append(quiz.ShortAnswerQuestions, &quizdoc.ShortAnswerQuestion{
		Question: "Name a river. It flows through Paris.",
		Answer:   "Seine",
	})
	return quiz
}

func TestWriter_WriteQuiz(t *testing.T) {
	t.Parallel()

	t.Run("writes title and summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := htmltomarkdown.NewWriter().WriteQuiz(&buf, sampleQuiz())

		require.NoError(t, err)
		md := buf.String()
		assert.True(t, strings.HasPrefix(md, "# Geography Quiz"))
		assert.Contains(t, md, "Number of questions: 3")
		assert.Contains(t, md, "[Multiple Choice Questions](#multiple-choice-questions): 1")
		assert.Contains(t, md, "[Short Answer Questions](#short-answer-questions): 1")
		assert.NotContains(t, md, "Multiple Answer Questions")
	})

	t.Run("writes sections and questions", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := htmltomarkdown.NewWriter().WriteQuiz(&buf, sampleQuiz())

		require.NoError(t, err)
		md := buf.String()
		assert.Contains(t, md, "## Multiple Choice Questions")
		assert.Contains(t, md, "#### What is the capital of France?")
		assert.Contains(t, md, "1. Paris")
		assert.Contains(t, md, "2. Madrid")
		assert.Contains(t, md, "Answer(s):")
		assert.Contains(t, md, "- Paris")
		assert.Contains(t, md, "#### Word Bank:")
		assert.Contains(t, md, "- France : Paris")
		assert.Contains(t, md, "- Spain : Madrid")
		assert.Contains(t, md, "- Seine")
	})

	t.Run("splits long prompts into lines", func(t *testing.T) {
		t.Parallel()

		outline := htmltomarkdown.Outline(sampleQuiz())

		assert.Contains(t, outline, "<p>Name a river.<br>\nIt flows through Paris.</p>")
	})

	t.Run("escapes markup in question text", func(t *testing.T) {
		t.Parallel()

		quiz := quizdoc.NewQuiz("Tags")
		quiz.MultipleChoiceQuestions = append(quiz.MultipleChoiceQuestions, &quizdoc.MultipleChoiceQuestion{
			Question: "Which tag makes a <b>bold</b> word?",
			Answer:   "<b>",
			Choices:  []string{"<b>", "<i>"},
		})

		outline := htmltomarkdown.Outline(quiz)

		assert.Contains(t, outline, "Which tag makes a &lt;b&gt;bold&lt;/b&gt; word?")
		assert.NotContains(t, outline, "<b>bold</b>")
	})

	t.Run("omits answer heading when nothing was recovered", func(t *testing.T) {
		t.Parallel()

		quiz := quizdoc.NewQuiz("Empty")
		quiz.MultipleChoiceQuestions = append(quiz.MultipleChoiceQuestions, &quizdoc.MultipleChoiceQuestion{
			Question: "Pick one",
			Choices:  []string{"A"},
		})

		outline := htmltomarkdown.Outline(quiz)

		assert.NotContains(t, outline, "Answer(s):")
	})

	t.Run("rejects nil quiz", func(t *testing.T) {
		t.Parallel()

		err := htmltomarkdown.NewWriter().WriteQuiz(&bytes.Buffer{}, nil)

		assert.Equal(t, quizdoc.EINVALID, quizdoc.ErrorCode(err))
	})
}
