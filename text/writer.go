// Package text renders quizzes as plain text study sheets and flashcard
// imports.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/quizdoc"
)

// Ensure Writer implements quizdoc.QuizWriter.
var _ quizdoc.QuizWriter = (*Writer)(nil)

const bannerWidth = 42

var rule = "\n\n" + strings.Repeat("-", bannerWidth) + "\n\n"

// section is one question list of a quiz with its display name.
type section struct {
	name      string
	questions []quizdoc.Question
}

// sections returns the non-empty question lists of quiz in display order.
func sections(quiz *quizdoc.Quiz) []section {
	all := []section{
		{name: "multiple choice questions", questions: asQuestions(quiz.MultipleChoiceQuestions)},
		{name: "matching questions", questions: asQuestions(quiz.MatchingQuestions)},
		{name: "multiple answers questions", questions: asQuestions(quiz.MultipleAnswersQuestions)},
		{name: "multiple short answer questions", questions: asQuestions(quiz.MultipleShortAnswerQuestions)},
		{name: "short answer questions", questions: asQuestions(quiz.ShortAnswerQuestions)},
	}

	var out []section
	for _, s := range all {
		if len(s.questions) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func asQuestions[T quizdoc.Question](qs []T) []quizdoc.Question {
	out := make([]quizdoc.Question, len(qs))
	for i, q := range qs {
		out[i] = q
	}
	return out
}

// Writer renders a quiz as a plain text study sheet: a summary banner
// followed by one banner per question type and the questions with their
// choices and answers.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteQuiz writes quiz to w.
func (*Writer) WriteQuiz(w io.Writer, quiz *quizdoc.Quiz) error {
	if quiz == nil {
		return quizdoc.Errorf(quizdoc.EINVALID, "quiz required")
	}

	var b strings.Builder
	b.WriteString(banner("QUIZ INFORMATION"))
	fmt.Fprintf(&b, "Title: %s\n\nNumber of questions: %d\n", quiz.Title, quiz.NumberOfQuestions)

	secs := sections(quiz)
	for _, s := range secs {
		fmt.Fprintf(&b, "Number of %s: %d\n", s.name, len(s.questions))
	}

	for _, s := range secs {
		b.WriteString(banner(strings.ToUpper(s.name)))
		b.WriteString("\n")
		for _, q := range s.questions {
			b.WriteString(prompt(q))
			b.WriteString("\n")
			b.WriteString(choices(q))
			b.WriteString("\n\n")
			b.WriteString(answers(q))
			b.WriteString(rule)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// banner centers title between two rules of equal signs.
func banner(title string) string {
	line := strings.Repeat("=", bannerWidth)
	pad := max((bannerWidth-len(title))/2, 0)
	return line + "\n" + strings.Repeat(" ", pad) + title + "\n" + line + "\n"
}

// prompt returns the question text. Prompts of questions that tend to
// contain several sentences are split one sentence per line.
func prompt(q quizdoc.Question) string {
	switch q.(type) {
	case *quizdoc.MultipleAnswersQuestion, *quizdoc.MultipleShortAnswerQuestion, *quizdoc.ShortAnswerQuestion:
		return quizdoc.SplitSentences(q.Prompt())
	}
	return q.Prompt()
}

func choices(q quizdoc.Question) string {
	switch q := q.(type) {
	case *quizdoc.MultipleChoiceQuestion:
		return numbered(q.Choices)
	case *quizdoc.MultipleAnswersQuestion:
		return numbered(q.Choices)
	case *quizdoc.MatchingQuestion:
		return "Answer Bank:\n" + numbered(q.AnswerBank) + "\n\nWord Bank:\n" + numbered(q.WordBank)
	}
	return ""
}

func answers(q quizdoc.Question) string {
	if value := answerText(q, ", "); value != "" {
		return "Answer(s): " + value
	}
	return ""
}

// answerText joins the answers of q with sep. Matching answers are rendered
// one "term : answer" pair per line.
func answerText(q quizdoc.Question, sep string) string {
	switch q := q.(type) {
	case *quizdoc.MultipleChoiceQuestion:
		return q.Answer
	case *quizdoc.ShortAnswerQuestion:
		return q.Answer
	case *quizdoc.MultipleAnswersQuestion:
		return strings.Join(q.Answers, sep)
	case *quizdoc.MultipleShortAnswerQuestion:
		return strings.Join(q.Answers, sep)
	case *quizdoc.MatchingQuestion:
		pairs := q.Pairs()
		lines := make([]string, len(pairs))
		for i, p := range pairs {
			lines[i] = p.Term + " : " + p.Answer
		}
		return strings.Join(lines, "\n")
	}
	return ""
}

// numbered renders items as a 1-based numbered list, one per line.
func numbered(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}
