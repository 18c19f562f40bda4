// Package fs provides file-based input and output for quizzes.
package fs

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/quizdoc"
)

// SafeName turns a quiz title into a file name that is valid on every
// common file system. Path separators and reserved characters become
// underscores and surrounding dots and spaces are trimmed. An empty result
// becomes "quiz".
func SafeName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, quizdoc.CleanString(title))

	name = strings.Trim(name, ". ")
	if name == "" {
		return "quiz"
	}
	return name
}

// Writer writes quizzes to a directory in one or more formats.
type Writer struct {
	dir     string
	writers map[quizdoc.Format]quizdoc.QuizWriter
}

// NewWriter creates a Writer that writes to dir using the given writer for
// each supported format.
func NewWriter(dir string, writers map[quizdoc.Format]quizdoc.QuizWriter) *Writer {
	return &Writer{dir: dir, writers: writers}
}

// Write writes quiz as <dir>/<base>.<ext> for every format and returns the
// paths written. Unsupported formats return EINVALID before anything is
// written. Each file is written to a temporary name first and renamed into
// place, so readers never observe a partial file.
func (w *Writer) Write(quiz *quizdoc.Quiz, base string, formats []quizdoc.Format) ([]string, error) {
	if quiz == nil {
		return nil, quizdoc.Errorf(quizdoc.EINVALID, "quiz required")
	}
	for _, f := range formats {
		if _, ok := w.writers[f]; !ok {
			return nil, quizdoc.Errorf(quizdoc.EINVALID, "unsupported file type: %s", f)
		}
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(w.dir, base+f.Ext())
		if err := writeFile(path, quiz, w.writers[f]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, quiz *quizdoc.Quiz, qw quizdoc.QuizWriter) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := qw.WriteQuiz(f, quiz); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
