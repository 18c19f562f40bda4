package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/quizdoc"
	"github.com/fwojciec/quizdoc/process"
	"golang.org/x/term"
)

// newProgress returns a progress callback writing to w. On a terminal the
// status line is redrawn in place; otherwise each page gets its own line.
func newProgress(w io.Writer) process.ProgressFunc {
	live := isTerminal(w)
	return func(e process.ProgressEvent) {
		switch e.Type {
		case process.ProgressCompleted:
			if live {
				fmt.Fprintf(w, "\r\033[K[%d/%d] %s", e.Completed, e.Total, e.Path)
				return
			}
			fmt.Fprintf(w, "[%d/%d] %s\n", e.Completed, e.Total, e.Path)
		case process.ProgressFailed:
			if live {
				fmt.Fprint(w, "\r\033[K")
			}
			fmt.Fprintf(w, "[%d/%d] %s: %s\n", e.Completed, e.Total, e.Path, quizdoc.ErrorMessage(e.Error))
		case process.ProgressFinished:
			if live {
				fmt.Fprint(w, "\r\033[K")
			}
		}
	}
}

// isTerminal reports whether w is attached to a terminal.
func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
