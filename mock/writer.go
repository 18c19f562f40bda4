package mock

import (
	"io"

	"github.com/fwojciec/quizdoc"
)

var (
	_ quizdoc.QuizWriter = (*QuizWriter)(nil)
	_ quizdoc.QuizReader = (*QuizReader)(nil)
)

// QuizWriter is a mock implementation of quizdoc.QuizWriter.
type QuizWriter struct {
	WriteQuizFn func(w io.Writer, quiz *quizdoc.Quiz) error
}

func (qw *QuizWriter) WriteQuiz(w io.Writer, quiz *quizdoc.Quiz) error {
	return qw.WriteQuizFn(w, quiz)
}

// QuizReader is a mock implementation of quizdoc.QuizReader.
type QuizReader struct {
	ReadQuizFn func(r io.Reader) (*quizdoc.Quiz, error)
}

func (qr *QuizReader) ReadQuiz(r io.Reader) (*quizdoc.Quiz, error) {
	return qr.ReadQuizFn(r)
}
