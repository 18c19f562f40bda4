// Package htmltomarkdown renders quizzes as Markdown using html-to-markdown.
//
// The quiz is first laid out as an HTML outline and then converted, so that
// Markdown syntax appearing in question text is escaped by the converter
// rather than by hand.
package htmltomarkdown

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/quizdoc"
)

// Ensure Writer implements quizdoc.QuizWriter at compile time.
var _ quizdoc.QuizWriter = (*Writer)(nil)

// Writer renders a quiz as a Markdown document.
type Writer struct {
	conv *converter.Converter
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Writer{conv: conv}
}

// WriteQuiz writes quiz to w as Markdown.
func (mw *Writer) WriteQuiz(w io.Writer, quiz *quizdoc.Quiz) error {
	if quiz == nil {
		return quizdoc.Errorf(quizdoc.EINVALID, "quiz required")
	}

	md, err := mw.conv.ConvertString(Outline(quiz))
	if err != nil {
		return fmt.Errorf("convert quiz outline: %w", err)
	}

	_, err = io.WriteString(w, md+"\n")
	return err
}

type section struct {
	heading   string
	questions []quizdoc.Question
}

var headings = []struct {
	t       quizdoc.QuestionType
	heading string
}{
	{quizdoc.QuestionMultipleChoice, "Multiple Choice Questions"},
	{quizdoc.QuestionMatching, "Matching Questions"},
	{quizdoc.QuestionMultipleAnswers, "Multiple Answer Questions"},
	{quizdoc.QuestionMultipleShortAnswer, "Multiple Short Answer Questions"},
	{quizdoc.QuestionShortAnswer, "Short Answer Questions"},
}

// sections groups the questions of quiz by type, skipping empty groups.
func sections(quiz *quizdoc.Quiz) []section {
	byType := make(map[quizdoc.QuestionType][]quizdoc.Question)
	for _, q := range quiz.Questions() {
		byType[q.Type()] = append(byType[q.Type()], q)
	}

	var out []section
	for _, h := range headings {
		if qs := byType[h.t]; len(qs) > 0 {
			out = append(out, section{heading: h.heading, questions: qs})
		}
	}
	return out
}

// anchor returns the fragment identifier Markdown renderers derive from a heading.
func anchor(heading string) string {
	return strings.ReplaceAll(strings.ToLower(heading), " ", "-")
}

// Outline lays quiz out as HTML: a title, a summary list linking to each
// section, and per section the questions with their choices and answers.
func Outline(quiz *quizdoc.Quiz) string {
	var b strings.Builder
	esc := html.EscapeString

	secs := sections(quiz)

	fmt.Fprintf(&b, "<h1>%s</h1>\n<ul>\n", esc(quiz.Title))
	fmt.Fprintf(&b, "<li>Number of questions: %d</li>\n", quiz.NumberOfQuestions)
	for _, s := range secs {
		fmt.Fprintf(&b, `<li>Number of <a href="#%s">%s</a>: %d</li>`+"\n", anchor(s.heading), esc(s.heading), len(s.questions))
	}
	b.WriteString("</ul>\n<hr>\n")

	for _, s := range secs {
		fmt.Fprintf(&b, `<h2 id="%s">%s</h2>`+"\n", anchor(s.heading), esc(s.heading))
		for _, q := range s.questions {
			writeQuestion(&b, q)
			b.WriteString("<hr>\n")
		}
	}
	return b.String()
}

func writeQuestion(b *strings.Builder, q quizdoc.Question) {
	esc := html.EscapeString

	switch q := q.(type) {
	case *quizdoc.MultipleChoiceQuestion:
		fmt.Fprintf(b, "<h4>%s</h4>\n", esc(q.Question))
		writeList(b, "ol", q.Choices)
		writeAnswers(b, []string{q.Answer})
	case *quizdoc.MatchingQuestion:
		fmt.Fprintf(b, "<h4>%s</h4>\n", esc(q.Question))
		b.WriteString("<h4>Answer Bank:</h4>\n")
		writeList(b, "ol", q.AnswerBank)
		b.WriteString("<h4>Word Bank:</h4>\n")
		writeList(b, "ol", q.WordBank)
		pairs := q.Pairs()
		lines := make([]string, len(pairs))
		for i, p := range pairs {
			lines[i] = p.Term + " : " + p.Answer
		}
		writeAnswers(b, lines)
	case *quizdoc.MultipleAnswersQuestion:
		writeSentences(b, q.Question)
		writeList(b, "ol", q.Choices)
		writeAnswers(b, q.Answers)
	case *quizdoc.MultipleShortAnswerQuestion:
		writeSentences(b, q.Question)
		writeAnswers(b, q.Answers)
	case *quizdoc.ShortAnswerQuestion:
		writeSentences(b, q.Question)
		writeAnswers(b, []string{q.Answer})
	}
}

// writeSentences writes a prompt as a paragraph with one sentence per line.
func writeSentences(b *strings.Builder, prompt string) {
	lines := strings.Split(strings.TrimRight(quizdoc.SplitSentences(prompt), "\n"), "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(line)
	}
	fmt.Fprintf(b, "<p>%s</p>\n", strings.Join(lines, "<br>\n"))
}

func writeAnswers(b *strings.Builder, answers []string) {
	var nonEmpty []string
	for _, a := range answers {
		if a != "" {
			nonEmpty = append(nonEmpty, a)
		}
	}
	if len(nonEmpty) == 0 {
		return
	}
	b.WriteString("<h4><em>Answer(s):</em></h4>\n")
	writeList(b, "ul", nonEmpty)
}

func writeList(b *strings.Builder, tag string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "<%s>\n", tag)
	for _, item := range items {
		fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(item))
	}
	fmt.Fprintf(b, "</%s>\n", tag)
}
