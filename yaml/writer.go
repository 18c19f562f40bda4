// Package yaml renders quizzes as YAML using gopkg.in/yaml.v3.
package yaml

import (
	"fmt"
	"io"

	"github.com/fwojciec/quizdoc"
	"gopkg.in/yaml.v3"
)

// Ensure Writer implements quizdoc.QuizWriter at compile time.
var _ quizdoc.QuizWriter = (*Writer)(nil)

// Writer encodes quizzes as YAML documents with snake_case keys.
type Writer struct {
	// Indent is the number of spaces per nesting level. Zero means two.
	Indent int
}

// NewWriter creates a Writer with two-space indentation.
func NewWriter() *Writer {
	return &Writer{Indent: 2}
}

// WriteQuiz writes quiz to w as a single YAML document.
func (yw *Writer) WriteQuiz(w io.Writer, quiz *quizdoc.Quiz) error {
	if quiz == nil {
		return quizdoc.Errorf(quizdoc.EINVALID, "quiz required")
	}

	enc := yaml.NewEncoder(w)
	indent := yw.Indent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)

	if err := enc.Encode(quiz); err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	return enc.Close()
}
