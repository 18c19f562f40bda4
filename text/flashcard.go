package text

import (
	"io"
	"strings"

	"github.com/fwojciec/quizdoc"
)

// Ensure FlashcardWriter implements quizdoc.QuizWriter.
var _ quizdoc.QuizWriter = (*FlashcardWriter)(nil)

// Default delimiters for flashcard imports. Both must be configured as the
// custom delimiters when importing, since terms span several lines.
const (
	DefaultTermDelimiter = "|||"
	DefaultCardDelimiter = ";;;"
)

// FlashcardWriter renders a quiz as a flashcard import file. Each question
// becomes one card whose term is the prompt with its choices and whose
// definition is the answer. Matching questions yield one card per term.
type FlashcardWriter struct {
	TermDelimiter string
	CardDelimiter string
}

// NewFlashcardWriter creates a FlashcardWriter using the default delimiters.
func NewFlashcardWriter() *FlashcardWriter {
	return &FlashcardWriter{
		TermDelimiter: DefaultTermDelimiter,
		CardDelimiter: DefaultCardDelimiter,
	}
}

// WriteQuiz writes one card per question of quiz to w.
func (fw *FlashcardWriter) WriteQuiz(w io.Writer, quiz *quizdoc.Quiz) error {
	if quiz == nil {
		return quizdoc.Errorf(quizdoc.EINVALID, "quiz required")
	}

	var b strings.Builder
	for _, s := range sections(quiz) {
		for _, q := range s.questions {
			for _, c := range cards(q) {
				b.WriteString(c.term)
				b.WriteString(fw.TermDelimiter)
				b.WriteString(c.definition)
				b.WriteString(fw.CardDelimiter)
				b.WriteString("\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

type card struct {
	term       string
	definition string
}

func cards(q quizdoc.Question) []card {
	if mq, ok := q.(*quizdoc.MatchingQuestion); ok {
		bank := numbered(mq.AnswerBank)
		var out []card
		for _, p := range mq.Pairs() {
			out = append(out, card{
				term:       mq.Question + "\n\n" + p.Term + "\n\n" + bank,
				definition: p.Answer,
			})
		}
		return out
	}

	term := prompt(q)
	if c := choices(q); c != "" {
		term += "\n\n" + c
	}
	return []card{{term: term, definition: answerText(q, ", ")}}
}
