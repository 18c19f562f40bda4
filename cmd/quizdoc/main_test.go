package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/quizdoc/cmd/quizdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geographyPage = `<!DOCTYPE html><html><head><title>Geography Quiz</title></head><body>
<div role="region" aria-label="Question" class="quiz_sortable question_holder">
<div class="display_question question multiple_choice_question">
<div class="user_points">1 / 1 pts</div>
<textarea name="question_text">&lt;p&gt;What is the capital of France?&lt;/p&gt;</textarea>
<div class="answer correct_answer"><div class="answer_text">Paris</div></div>
<div class="answer"><div class="answer_text">Madrid</div></div>
</div>
</div>
</body></html>`

// workspace creates a configuration file and an input page under a
// temporary directory and returns the directory and configuration path.
func workspace(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "configurations.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`directory_paths:
  raw_html: raw_html
  parsed_html: parsed_html
  output: output
`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "raw_html"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raw_html", "geo.html"), []byte(geographyPage), 0644))
	return dir, cfg
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("converts pages and saves them to the library", func(t *testing.T) {
		t.Parallel()

		dir, cfg := workspace(t)
		dbPath := filepath.Join(dir, "quizdoc.db")

		m := &main.Main{DBPath: dbPath}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"--config", cfg, "convert", "-f", "txt", "-f", "json", "--save"}, stdout, stderr)

		require.NoError(t, err, stderr.String())
		assert.Contains(t, stdout.String(), "Converted 1 of 1 files (1 questions)")
		assert.FileExists(t, filepath.Join(dir, "output", "Geography Quiz.txt"))
		assert.FileExists(t, filepath.Join(dir, "output", "Geography Quiz.json"))
		assert.FileExists(t, filepath.Join(dir, "parsed_html", "Geography Quiz.html"))
		assert.NoFileExists(t, filepath.Join(dir, "raw_html", "geo.html"))

		m = &main.Main{DBPath: dbPath}
		stdout.Reset()
		err = m.Run(context.Background(), []string{"--config", cfg, "list"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Geography Quiz")
		assert.Contains(t, stdout.String(), "1 questions")
	})

	t.Run("keeps pages with dont-move", func(t *testing.T) {
		t.Parallel()

		dir, cfg := workspace(t)

		m := &main.Main{DBPath: filepath.Join(dir, "quizdoc.db")}
		err := m.Run(context.Background(), []string{"--config", cfg, "convert", "--dont-move"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "raw_html", "geo.html"))
		assert.FileExists(t, filepath.Join(dir, "output", "Geography Quiz.qz.txt"))
		assert.NoFileExists(t, filepath.Join(dir, "quizdoc.db"))
	})

	t.Run("rejects remove-html with dont-move", func(t *testing.T) {
		t.Parallel()

		_, cfg := workspace(t)

		m := &main.Main{}
		err := m.Run(context.Background(), []string{"--config", cfg, "convert", "--remove-html", "--dont-move"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("rejects unsupported format", func(t *testing.T) {
		t.Parallel()

		_, cfg := workspace(t)

		stderr := &bytes.Buffer{}
		m := &main.Main{}
		err := m.Run(context.Background(), []string{"--config", cfg, "convert", "-f", "docx"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "unsupported file type: docx")
	})

	t.Run("returns error without command", func(t *testing.T) {
		t.Parallel()

		m := &main.Main{}
		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		m := &main.Main{}
		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "convert")
	})
}

func TestCores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested int
		numCPU    int
		want      int
	}{
		{"defaults to half the CPUs", 0, 8, 4},
		{"never below one", 0, 1, 1},
		{"clamps to CPU count", 32, 8, 8},
		{"clamps negative to one", -3, 1, 1},
		{"keeps valid request", 3, 8, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, main.Cores(tt.requested, tt.numCPU))
		})
	}
}
