package quizdoc

// QuizParser extracts a quiz from the HTML of one quiz-results page.
type QuizParser interface {
	// ParseQuiz processes raw HTML and returns the assembled quiz.
	//
	// Fragments that fail to parse are kept in the quiz's Unrecognized
	// bucket and reported through the returned error, which then accompanies
	// a non-nil quiz holding every fragment that did parse. A page that
	// cannot be read as HTML at all returns a nil quiz.
	ParseQuiz(html string) (*Quiz, error)
}
