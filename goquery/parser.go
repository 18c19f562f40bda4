package goquery

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/quizdoc"
)

// Ensure Parser implements quizdoc.QuizParser.
var _ quizdoc.QuizParser = (*Parser)(nil)

// Parser builds quizzes from quiz-results pages.
// A Parser is safe for concurrent use.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a Parser that reports structural warnings to logger.
// A nil logger discards them.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{logger: logger}
}

// ParseQuiz parses one page. Fragments that fail to parse are kept in the
// quiz's unrecognized bucket and reported through the returned error, which
// joins every fragment failure; the quiz is still returned in that case.
// A document that cannot be read at all returns a nil quiz.
func (p *Parser) ParseQuiz(html string) (*quizdoc.Quiz, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, quizdoc.Errorf(quizdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	StripNoise(doc.Selection)

	quiz := quizdoc.NewQuiz(Title(doc))
	fragments := Fragments(doc)
	quiz.NumberOfQuestions = fragments.Length()

	var errs []error
	fragments.Each(func(i int, fragment *goquery.Selection) {
		if err := p.parseFragment(quiz, fragment); err != nil {
			errs = append(errs, fmt.Errorf("question %d: %w", i+1, err))
		}
	})

	return quiz, errors.Join(errs...)
}

// parseFragment dispatches one fragment by its type class and stores the
// result in quiz.
func (p *Parser) parseFragment(quiz *quizdoc.Quiz, fragment *goquery.Selection) error {
	typeName := TypeNotFound
	names := ClassNames(fragment)
	if len(names) > 0 {
		typeName = names[0]
	}
	if len(names) > 1 {
		p.logger.Warn("question has more than one type class", "classes", names, "using", typeName)
	}

	t, ok := quizdoc.ParseQuestionType(typeName)
	switch {
	case !ok:
		p.logger.Warn("unrecognized question type", "type", typeName)
		quiz.AddUnrecognized(typeName, outerHTML(fragment))
		return nil
	case t == quizdoc.QuestionEssay:
		p.logger.Info("skipping essay question", "question", QuestionText(fragment))
		return nil
	}

	q, err := ParseQuestion(t, fragment)
	if err != nil {
		p.logger.Warn("failed to parse question", "type", typeName, "error", err)
		quiz.AddUnrecognized(typeName, outerHTML(fragment))
		return err
	}
	return quiz.Add(q)
}
