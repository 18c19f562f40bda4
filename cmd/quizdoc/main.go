package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/quizdoc"
	"github.com/fwojciec/quizdoc/goquery"
	"github.com/fwojciec/quizdoc/htmltomarkdown"
	"github.com/fwojciec/quizdoc/jsonschema"
	quizslog "github.com/fwojciec/quizdoc/slog"
	"github.com/fwojciec/quizdoc/sqlite"
	"github.com/fwojciec/quizdoc/text"
	"github.com/fwojciec/quizdoc/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the library commands.
	DB *sqlite.DB

	// Quizzes overrides the SQLite library when set.
	Quizzes quizdoc.QuizService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("quizdoc"),
		kong.Description("Convert quiz result pages into study files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'quizdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Config, err = LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set QUIZDOC_CONFIG or --config to use a different configuration file\n")
		return err
	}
	if err := deps.Config.EnsureDirs(); err != nil {
		return err
	}

	codec := jsonschema.NewCodec()
	deps.Parser = goquery.NewParser(deps.Logger)
	deps.Reader = codec
	deps.Writers = map[quizdoc.Format]quizdoc.QuizWriter{
		quizdoc.FormatText:      text.NewWriter(),
		quizdoc.FormatMarkdown:  htmltomarkdown.NewWriter(),
		quizdoc.FormatJSON:      codec,
		quizdoc.FormatYAML:      yaml.NewWriter(),
		quizdoc.FormatFlashcard: text.NewFlashcardWriter(),
	}

	// The library is only opened by commands that use it.
	if cmd != "convert" || cli.Convert.Save {
		deps.Quizzes = m.Quizzes
		if deps.Quizzes == nil {
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set QUIZDOC_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			deps.Quizzes = sqlite.NewQuizService(m.DB)
		}
	}

	if cli.Debug {
		deps.Parser = quizslog.NewLoggingParser(deps.Parser, deps.Logger)
		for f, w := range deps.Writers {
			deps.Writers[f] = quizslog.NewLoggingWriter(w, f, deps.Logger)
		}
		if deps.Quizzes != nil {
			deps.Quizzes = quizslog.NewLoggingQuizService(deps.Quizzes, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("QUIZDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "quizdoc.db"
	}
	dir := filepath.Join(home, ".quizdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "quizdoc.db")
}
