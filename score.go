package quizdoc

import (
	"regexp"
	"strconv"
)

// Sentinel answers used when the correct answer cannot be recovered from a page.
const (
	NoAnswer      = "CANNOT DETERMINE ANSWER. PLEASE CHECK MANUALLY."
	NoAnswerShort = "CANNOT DETERMINE ANSWER."
)

// IsSentinel reports whether s is one of the sentinel answers.
func IsSentinel(s string) bool {
	return s == NoAnswer || s == NoAnswerShort
}

var scoreRe = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)\s*pts\s*$`)

// Score is the points awarded for a single question as displayed on the page.
type Score struct {
	User  float64
	Total float64
}

// ParseScore parses a score string of the form "<user> / <total> pts".
// Returns EPARSE if the string does not have that shape.
func ParseScore(text string) (Score, error) {
	m := scoreRe.FindStringSubmatch(text)
	if m == nil {
		return Score{}, Errorf(EPARSE, "malformed score %q", text)
	}
	user, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Score{}, Errorf(EPARSE, "malformed user points %q", m[1])
	}
	total, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Score{}, Errorf(EPARSE, "malformed total points %q", m[2])
	}
	return Score{User: user, Total: total}, nil
}

// FullCredit reports whether the respondent received every available point,
// in which case their selection is the correct answer.
func (s Score) FullCredit() bool {
	return s.User == s.Total
}

// String renders the score the way the page displays it. Whole numbers are
// printed without a fractional part.
func (s Score) String() string {
	return formatPoints(s.User) + " / " + formatPoints(s.Total) + " pts"
}

func formatPoints(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
