package main

import (
	"fmt"

	"github.com/fwojciec/quizdoc"
	"github.com/fwojciec/quizdoc/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	formats, err := parseFormats(c.Formats)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quizdoc.ErrorMessage(err))
		return err
	}

	rec, err := deps.Quizzes.FindQuizByID(deps.Ctx, c.ID)
	if err != nil {
		if quizdoc.ErrorCode(err) == quizdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: quiz %q not found. Use 'quizdoc list' to see saved quizzes.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", quizdoc.ErrorMessage(err))
		}
		return err
	}

	w := fs.NewWriter(deps.Config.DirectoryPaths.Output, deps.Writers)
	paths, err := w.Write(rec.Quiz, fs.SafeName(rec.Title), formats)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quizdoc.ErrorMessage(err))
		return err
	}

	for _, path := range paths {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	}
	return nil
}
