package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/quizdoc"
)

// parseFunc turns one question fragment into a question record.
// The only error a parseFunc returns is an EPARSE error for a malformed score.
type parseFunc func(fragment *goquery.Selection) (quizdoc.Question, error)

// parsers is the closed set of question types stored in a quiz. Essay
// questions are recognised but deliberately absent.
var parsers = map[quizdoc.QuestionType]parseFunc{
	quizdoc.QuestionMultipleChoice:      parseMultipleChoice,
	quizdoc.QuestionTrueFalse:           parseMultipleChoice,
	quizdoc.QuestionMultipleAnswers:     parseMultipleAnswers,
	quizdoc.QuestionMatching:            parseMatching,
	quizdoc.QuestionMultipleShortAnswer: parseMultipleShortAnswer,
	quizdoc.QuestionShortAnswer:         parseShortAnswer,
}

// ParseQuestion parses fragment as a question of type t.
// Returns EINVALID if t has no parser.
func ParseQuestion(t quizdoc.QuestionType, fragment *goquery.Selection) (quizdoc.Question, error) {
	parse, ok := parsers[t]
	if !ok {
		return nil, quizdoc.Errorf(quizdoc.EINVALID, "no parser for question type %q", t)
	}
	return parse(fragment)
}

func parseMultipleChoice(fragment *goquery.Selection) (quizdoc.Question, error) {
	q := &quizdoc.MultipleChoiceQuestion{
		Question: QuestionText(fragment),
		Choices:  TextByFilter(fragment, "answer", "answer_text"),
	}

	for _, outer := range []string{"correct_answer", "answer_for_correct_answer"} {
		if answers := TextByFilter(fragment, outer, "answer_text"); len(answers) > 0 {
			q.Answer = answers[0]
			return q, nil
		}
	}

	full, err := fullCredit(fragment)
	if err != nil {
		return nil, err
	}
	if !full {
		q.Answer = quizdoc.NoAnswer
		return q, nil
	}
	if selected := TextByFilter(fragment, "selected_answer", "answer_text"); len(selected) > 0 {
		q.Answer = selected[0]
	}
	return q, nil
}

func parseMultipleAnswers(fragment *goquery.Selection) (quizdoc.Question, error) {
	q := &quizdoc.MultipleAnswersQuestion{
		Question: QuestionText(fragment),
		Answers:  TextByFilter(fragment, "correct_answer", "answer_text"),
		Choices:  TextByFilter(fragment, "select_answer", ""),
	}
	if len(q.Answers) > 0 {
		return q, nil
	}

	answers, err := recoverAnswers(fragment)
	if err != nil {
		return nil, err
	}
	q.Answers = orSentinel(answers)
	return q, nil
}

func parseMatching(fragment *goquery.Selection) (quizdoc.Question, error) {
	q := &quizdoc.MatchingQuestion{
		Question:   QuestionText(fragment),
		WordBank:   TextByFilter(fragment, "answer_match_left", ""),
		AnswerBank: TextByFilter(fragment, "answer_match_right", ""),
	}

	answers, err := matchingAnswers(fragment, q.WordBank, q.AnswerBank)
	if err != nil {
		return nil, err
	}
	q.Answers = answers
	return q, nil
}

func parseMultipleShortAnswer(fragment *goquery.Selection) (quizdoc.Question, error) {
	q := &quizdoc.MultipleShortAnswerQuestion{
		Question: QuestionText(fragment),
		Answers:  TextByFilter(fragment, "answer_group", "answer_text"),
	}
	if len(q.Answers) > 0 {
		return q, nil
	}

	answers, err := recoverAnswers(fragment)
	if err != nil {
		return nil, err
	}
	q.Answers = orSentinel(answers)
	return q, nil
}

// parseShortAnswer has no graded markup to read: the respondent's own input
// is the answer when they received full credit.
func parseShortAnswer(fragment *goquery.Selection) (quizdoc.Question, error) {
	q := &quizdoc.ShortAnswerQuestion{
		Question: QuestionText(fragment),
		Answer:   quizdoc.NoAnswer,
	}

	full, err := fullCredit(fragment)
	if err != nil {
		return nil, err
	}
	if full {
		if value := InputValue(fragment, "question_input"); value != "" {
			q.Answer = value
		}
	}
	return q, nil
}

func orSentinel(answers []string) []string {
	if len(answers) == 0 {
		return []string{quizdoc.NoAnswer}
	}
	return answers
}
