package yaml_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/quizdoc"
	quizyaml "github.com/fwojciec/quizdoc/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Ensure Writer implements quizdoc.QuizWriter at compile time.
var _ quizdoc.QuizWriter = (*quizyaml.Writer)(nil)

func TestWriter_WriteQuiz(t *testing.T) {
	t.Parallel()

	t.Run("writes snake case keys", func(t *testing.T) {
		t.Parallel()

		quiz := quizdoc.NewQuiz("Geography Quiz")
		quiz.NumberOfQuestions = 1
		quiz.MatchingQuestions = append(quiz.MatchingQuestions, &quizdoc.MatchingQuestion{
			Question:   "Match the capitals",
			Answers:    map[string]string{"France": "Paris"},
			AnswerBank: []string{"Paris"},
			WordBank:   []string{"France"},
		})

		var buf bytes.Buffer
		err := quizyaml.NewWriter().WriteQuiz(&buf, quiz)

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "title: Geography Quiz\n")
		assert.Contains(t, out, "number_of_questions: 1\n")
		assert.Contains(t, out, "matching_questions:\n")
		assert.Contains(t, out, "answer_bank:\n")
		assert.Contains(t, out, "France: Paris\n")
		assert.NotContains(t, out, "unrecognized_questions")
	})

	t.Run("round trips through yaml decoding", func(t *testing.T) {
		t.Parallel()

		quiz := quizdoc.NewQuiz("Biology: Cells")
		quiz.NumberOfQuestions = 2
		quiz.MultipleChoiceQuestions = append(quiz.MultipleChoiceQuestions, &quizdoc.MultipleChoiceQuestion{
			Question: "Which organelle makes ATP?",
			Answer:   "Mitochondria",
			Choices:  []string{"Mitochondria", "Ribosome"},
		})
		quiz.AddUnrecognized("calculated_question", "<div>x</div>")

		var buf bytes.Buffer
		require.NoError(t, quizyaml.NewWriter().WriteQuiz(&buf, quiz))

		var got quizdoc.Quiz
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, quiz.Title, got.Title)
		assert.Equal(t, quiz.MultipleChoiceQuestions, got.MultipleChoiceQuestions)
		assert.Equal(t, quiz.Unrecognized, got.Unrecognized)
	})

	t.Run("rejects nil quiz", func(t *testing.T) {
		t.Parallel()

		err := quizyaml.NewWriter().WriteQuiz(&bytes.Buffer{}, nil)

		assert.Equal(t, quizdoc.EINVALID, quizdoc.ErrorCode(err))
	})
}
