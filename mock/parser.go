package mock

import "github.com/fwojciec/quizdoc"

var _ quizdoc.QuizParser = (*QuizParser)(nil)

// QuizParser is a mock implementation of quizdoc.QuizParser.
type QuizParser struct {
	ParseQuizFn func(html string) (*quizdoc.Quiz, error)
}

func (p *QuizParser) ParseQuiz(html string) (*quizdoc.Quiz, error) {
	return p.ParseQuizFn(html)
}
