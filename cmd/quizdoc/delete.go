package main

import (
	"fmt"

	"github.com/fwojciec/quizdoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return quizdoc.Errorf(quizdoc.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Quizzes.DeleteQuiz(deps.Ctx, c.ID); err != nil {
		if quizdoc.ErrorCode(err) == quizdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: quiz %q not found. Use 'quizdoc list' to see saved quizzes.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", quizdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted quiz %s\n", c.ID)
	return nil
}
