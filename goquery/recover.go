package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/quizdoc"
)

// Literal phrases in the title attribute of a graded wrong matching item.
const (
	selectedMarker = "You selected"
	correctMarker  = "The correct answer was"
)

// FragmentScore parses the div.user_points text of a fragment. ok is false
// when the fragment carries no score, as on ungraded pages. A score that is
// present but malformed returns an EPARSE error.
func FragmentScore(fragment *goquery.Selection) (score quizdoc.Score, ok bool, err error) {
	points := fragment.Find("div.user_points").First()
	if points.Length() == 0 {
		return quizdoc.Score{}, false, nil
	}
	score, err = quizdoc.ParseScore(Text(points))
	if err != nil {
		return quizdoc.Score{}, false, err
	}
	return score, true, nil
}

// fullCredit reports whether the fragment was graded with full credit.
// A fragment without a score never was.
func fullCredit(fragment *goquery.Selection) (bool, error) {
	score, ok, err := FragmentScore(fragment)
	if err != nil || !ok {
		return false, err
	}
	return score.FullCredit(), nil
}

// recoverAnswers falls back to the fragment's score when the graded markup
// named no correct answer. On full credit the user's selected answers are
// correct and are returned; otherwise the result is nil and the caller
// substitutes the sentinel.
func recoverAnswers(fragment *goquery.Selection) ([]string, error) {
	full, err := fullCredit(fragment)
	if err != nil || !full {
		return nil, err
	}
	return TextByFilter(fragment, "selected_answer", "answer_text"), nil
}

// matchingAnswers recovers the term to answer mapping of a matching question.
//
// Graded wrong items are reconciled first. Without them the score decides:
// on full credit the word bank and answer bank are zipped by position, which
// assumes the page lists both banks in matched order; otherwise, or when the
// fragment has no score, the pairs shown on the page are used as they are.
func matchingAnswers(fragment *goquery.Selection, wordBank, answerBank []string) (map[string]string, error) {
	if fragment.Find("div.wrong_answer").Length() > 0 {
		return reconcileMatches(fragment), nil
	}

	full, err := fullCredit(fragment)
	if err != nil {
		return nil, err
	}
	if full {
		return zipBanks(wordBank, answerBank), nil
	}
	return reconcileMatches(fragment), nil
}

// zipBanks pairs the banks by position, truncating to the shorter one.
func zipBanks(wordBank, answerBank []string) map[string]string {
	n := min(len(wordBank), len(answerBank))
	answers := make(map[string]string, n)
	for i := range n {
		answers[wordBank[i]] = answerBank[i]
	}
	return quizdoc.CleanMap(answers)
}

// reconcileMatches builds the answer map from the items of a graded matching
// question. Wrong items carry the correct value in their title attribute,
// falling back to the following element's answer text and then the sentinel.
// Remaining items contribute their left and right columns unless the left
// term was already resolved.
func reconcileMatches(fragment *goquery.Selection) map[string]string {
	answers := make(map[string]string)

	fragment.Find("div.wrong_answer").Each(func(_ int, item *goquery.Selection) {
		sel, ok := parseSelection(item.AttrOr("title", ""))
		term := Text(item.Find("div.answer_match_left").First())
		if term == "" {
			term = sel.term
		}
		if term == "" {
			return
		}
		if ok && sel.correct != "" {
			answers[term] = sel.correct
			return
		}
		if next := Text(item.Next().Find("div.answer_text").First()); next != "" {
			answers[term] = next
			return
		}
		answers[term] = quizdoc.NoAnswer
	})

	fragment.Find("div.answer, div.correct_answer").Each(func(_ int, item *goquery.Selection) {
		if item.HasClass("wrong_answer") {
			return
		}
		term := Text(item.Find("div.answer_match_left").First())
		if _, ok := answers[term]; ok || term == "" {
			return
		}
		answers[term] = Text(item.Find("div.answer_match_right").First())
	})

	return quizdoc.CleanMap(answers)
}

// selection is what a graded title attribute says about one matching item.
type selection struct {
	term    string
	correct string
}

// parseSelection splits a graded title such as
// "France. You selected Madrid. The correct answer was Paris." into its
// parts. ok is false when the title does not name a correct answer.
func parseSelection(title string) (sel selection, ok bool) {
	i := strings.Index(title, correctMarker)
	if i < 0 {
		return selection{}, false
	}
	sel.correct = trimValue(title[i+len(correctMarker):])

	head := title[:i]
	if j := strings.Index(head, selectedMarker); j >= 0 {
		sel.term = trimValue(head[:j])
	}
	return sel, true
}

// trimValue removes the period that ends a title sentence. Values that end
// in an abbreviation, such as "U.S.", keep their own period.
func trimValue(s string) string {
	s = quizdoc.CleanString(s)
	v, ok := strings.CutSuffix(s, ".")
	if !ok || endsWithAbbreviation(v) {
		return s
	}
	return v
}

// endsWithAbbreviation reports whether s ends in a dotted abbreviation such
// as "U.S" or "e.g", meaning a trailing period belongs to the value.
func endsWithAbbreviation(s string) bool {
	word := s[strings.LastIndex(s, " ")+1:]
	n := len(word)
	return n >= 3 && word[n-2] == '.' && unicode.IsLetter(rune(word[n-1]))
}
