package quizdoc

import (
	"io"
	"strings"
)

// Format identifies an output format by its file extension.
type Format string

// Supported output formats.
const (
	FormatText      Format = "txt"
	FormatMarkdown  Format = "md"
	FormatJSON      Format = "json"
	FormatYAML      Format = "yaml"
	FormatFlashcard Format = "qz.txt"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML, FormatFlashcard}

// ParseFormat returns the Format for an extension, with or without a leading dot.
// Returns EINVALID for unsupported formats.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", Errorf(EINVALID, "unsupported file type: %s", s)
}

// Ext returns the file extension for the format, including the leading dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// QuizWriter serializes a quiz.
type QuizWriter interface {
	WriteQuiz(w io.Writer, quiz *Quiz) error
}

// QuizReader deserializes a quiz previously written by a QuizWriter.
type QuizReader interface {
	ReadQuiz(r io.Reader) (*Quiz, error)
}
