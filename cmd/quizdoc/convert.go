package main

import (
	"fmt"
	"runtime"

	"github.com/fwojciec/quizdoc"
	"github.com/fwojciec/quizdoc/fs"
	"github.com/fwojciec/quizdoc/process"
	"github.com/samber/lo"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	formats, err := parseFormats(c.Formats)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quizdoc.ErrorMessage(err))
		return err
	}

	dirs := deps.Config.DirectoryPaths
	ext := ".html"
	if c.FromJSON {
		ext = quizdoc.FormatJSON.Ext()
	}
	files, err := fs.ListPages(dirs.RawHTML, ext)
	if err != nil {
		return fmt.Errorf("list pages: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(deps.Stdout, "No %s files found in %s\n", ext, dirs.RawHTML)
		return nil
	}

	p := &process.Processor{
		Parser:      deps.Parser,
		Output:      fs.NewWriter(dirs.Output, deps.Writers),
		Formats:     formats,
		Disposition: c.disposition(),
		ParsedDir:   dirs.ParsedHTML,
		Concurrency: Cores(c.Cores, runtime.NumCPU()),
		Logger:      deps.Logger,
	}
	if c.Save {
		p.Library = deps.Quizzes
	}

	progress := newProgress(deps.Stderr)

	var result *process.Result
	switch {
	case c.FromJSON:
		result, err = p.LoadAll(deps.Ctx, files, deps.Reader, progress)
	case c.Combine:
		result, err = p.CombineAll(deps.Ctx, files, progress)
	default:
		result, err = p.ConvertAll(deps.Ctx, files, progress)
	}
	if result != nil {
		printResult(deps, result, len(files))
	}
	return err
}

func (c *ConvertCmd) disposition() fs.Disposition {
	switch {
	case c.FromJSON, c.DontMove:
		return fs.Keep
	case c.RemoveHTML:
		return fs.Remove
	}
	return fs.Move
}

func printResult(deps *Dependencies, result *process.Result, total int) {
	fmt.Fprintf(deps.Stdout, "Converted %d of %d files (%d questions)\n", result.Converted, total, result.Questions)
	if result.Duplicates > 0 {
		fmt.Fprintf(deps.Stdout, "Skipped %d duplicate files\n", result.Duplicates)
	}
	if result.Partial > 0 {
		fmt.Fprintf(deps.Stdout, "%d files had questions that could not be parsed\n", result.Partial)
	}
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d files failed\n", result.Failed)
	}
	if result.Unsaved > 0 {
		fmt.Fprintf(deps.Stdout, "%d quizzes could not be saved to the library\n", result.Unsaved)
	}
	for _, path := range result.Paths {
		fmt.Fprintf(deps.Stdout, "  %s\n", path)
	}
}

// Cores clamps a requested worker count to [1, numCPU]. Zero or less
// requests half the CPUs.
func Cores(requested, numCPU int) int {
	if requested <= 0 {
		requested = numCPU / 2
	}
	return max(min(requested, numCPU), 1)
}

// parseFormats parses format names, dropping repeats.
func parseFormats(names []string) ([]quizdoc.Format, error) {
	formats := make([]quizdoc.Format, 0, len(names))
	for _, name := range names {
		f, err := quizdoc.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return lo.Uniq(formats), nil
}
