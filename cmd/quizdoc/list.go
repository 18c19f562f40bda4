package main

import (
	"fmt"

	"github.com/fwojciec/quizdoc"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := quizdoc.QuizFilter{Limit: c.Limit}
	if c.Query != "" {
		// Matching happens after the query, so the limit applies to matches.
		filter.Limit = 0
	}

	recs, err := deps.Quizzes.FindQuizzes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quizdoc.ErrorMessage(err))
		return err
	}

	if c.Query != "" {
		recs = matchTitles(recs, c.Query, c.Limit)
	}

	if len(recs) == 0 {
		if c.Query != "" {
			fmt.Fprintf(deps.Stdout, "No quizzes match %q.\n", c.Query)
			return nil
		}
		fmt.Fprintln(deps.Stdout, "No quizzes found. Use 'quizdoc convert --save' to add some.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d questions  %s\n",
			r.ID, r.Title, r.Quiz.Len(), r.CreatedAt.Format("2006-01-02"))
	}

	return nil
}

// matchTitles keeps the records whose title fuzzily contains query, up to
// limit records when limit is positive.
func matchTitles(recs []*quizdoc.QuizRecord, query string, limit int) []*quizdoc.QuizRecord {
	var out []*quizdoc.QuizRecord
	for _, r := range recs {
		if !fuzzy.MatchFold(query, r.Title) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
