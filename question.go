package quizdoc

import (
	"slices"
	"sort"
	"strings"
)

// QuestionType identifies a question by the class name the exporting platform
// attaches to the question container.
type QuestionType string

// Supported question types. True/false questions are parsed as multiple
// choice; essay questions are recognised but never stored.
const (
	QuestionMultipleChoice      QuestionType = "multiple_choice_question"
	QuestionTrueFalse           QuestionType = "true_false_question"
	QuestionMultipleAnswers     QuestionType = "multiple_answers_question"
	QuestionMatching            QuestionType = "matching_question"
	QuestionMultipleShortAnswer QuestionType = "fill_in_multiple_blanks_question"
	QuestionShortAnswer         QuestionType = "short_answer_question"
	QuestionEssay               QuestionType = "essay_question"
)

// QuestionTypes lists every known question type.
var QuestionTypes = []QuestionType{
	QuestionMultipleChoice,
	QuestionTrueFalse,
	QuestionMultipleAnswers,
	QuestionMatching,
	QuestionMultipleShortAnswer,
	QuestionShortAnswer,
	QuestionEssay,
}

// ParseQuestionType returns the QuestionType named by s.
// The bool result is false if s names no known type.
func ParseQuestionType(s string) (QuestionType, bool) {
	t := QuestionType(s)
	if slices.Contains(QuestionTypes, t) {
		return t, true
	}
	return "", false
}

// Question is implemented by every concrete question record.
type Question interface {
	// Prompt returns the question text.
	Prompt() string

	// Type returns the list the question belongs to.
	Type() QuestionType

	// Key returns the structural identity of the question: its text plus its
	// answer fields. Two questions with the same Key are duplicates.
	Key() string

	// Answered reports whether a real answer was recovered, as opposed to
	// nothing or a sentinel.
	Answered() bool
}

// keySep separates the fields of a question key. It cannot occur in text
// that went through CleanString.
const keySep = "\x1f"

// MultipleChoiceQuestion has exactly one correct choice.
type MultipleChoiceQuestion struct {
	Question string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Choices  []string `json:"choices" yaml:"choices"`
}

func (q *MultipleChoiceQuestion) Prompt() string     { return q.Question }
func (q *MultipleChoiceQuestion) Type() QuestionType { return QuestionMultipleChoice }
func (q *MultipleChoiceQuestion) Answered() bool     { return q.Answer != "" && !IsSentinel(q.Answer) }

func (q *MultipleChoiceQuestion) Key() string {
	return joinKey("mc", q.Question, q.Answer, strings.Join(q.Choices, keySep))
}

// MultipleAnswersQuestion has zero or more correct choices.
type MultipleAnswersQuestion struct {
	Question string   `json:"question" yaml:"question"`
	Answers  []string `json:"answers" yaml:"answers"`
	Choices  []string `json:"choices" yaml:"choices"`
}

func (q *MultipleAnswersQuestion) Prompt() string     { return q.Question }
func (q *MultipleAnswersQuestion) Type() QuestionType { return QuestionMultipleAnswers }
func (q *MultipleAnswersQuestion) Answered() bool     { return answeredList(q.Answers) }

// Key treats Answers as a set: answer order does not affect identity.
func (q *MultipleAnswersQuestion) Key() string {
	answers := slices.Clone(q.Answers)
	sort.Strings(answers)
	return joinKey("ma", q.Question, strings.Join(answers, keySep), strings.Join(q.Choices, keySep))
}

// MatchingQuestion pairs terms from the word bank (left column) with terms
// from the answer bank (right column).
type MatchingQuestion struct {
	Question   string            `json:"question" yaml:"question"`
	Answers    map[string]string `json:"answers" yaml:"answers"`
	AnswerBank []string          `json:"answer_bank" yaml:"answer_bank"`
	WordBank   []string          `json:"word_bank" yaml:"word_bank"`
}

func (q *MatchingQuestion) Prompt() string     { return q.Question }
func (q *MatchingQuestion) Type() QuestionType { return QuestionMatching }

func (q *MatchingQuestion) Answered() bool {
	if len(q.Answers) == 0 {
		return false
	}
	for _, v := range q.Answers {
		if IsSentinel(v) {
			return false
		}
	}
	return true
}

func (q *MatchingQuestion) Key() string {
	pairs := make([]string, 0, len(q.Answers))
	for k, v := range q.Answers {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return joinKey("mq", q.Question,
		strings.Join(pairs, keySep),
		strings.Join(q.AnswerBank, keySep),
		strings.Join(q.WordBank, keySep))
}

// MatchPair is one term of a matching question with its matched answer.
type MatchPair struct {
	Term   string
	Answer string
}

// Pairs returns the answers ordered by the word bank. Answer keys missing from
// the word bank follow in lexical order.
func (q *MatchingQuestion) Pairs() []MatchPair {
	pairs := make([]MatchPair, 0, len(q.Answers))
	used := make(map[string]bool, len(q.Answers))
	for _, term := range q.WordBank {
		if v, ok := q.Answers[term]; ok && !used[term] {
			pairs = append(pairs, MatchPair{Term: term, Answer: v})
			used[term] = true
		}
	}

	var rest []string
	for k := range q.Answers {
		if !used[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		pairs = append(pairs, MatchPair{Term: k, Answer: q.Answers[k]})
	}
	return pairs
}

// MultipleShortAnswerQuestion has one accepted answer per blank, in order.
type MultipleShortAnswerQuestion struct {
	Question string   `json:"question" yaml:"question"`
	Answers  []string `json:"answers" yaml:"answers"`
}

func (q *MultipleShortAnswerQuestion) Prompt() string     { return q.Question }
func (q *MultipleShortAnswerQuestion) Type() QuestionType { return QuestionMultipleShortAnswer }
func (q *MultipleShortAnswerQuestion) Answered() bool     { return answeredList(q.Answers) }

func (q *MultipleShortAnswerQuestion) Key() string {
	return joinKey("msa", q.Question, strings.Join(q.Answers, keySep))
}

// ShortAnswerQuestion has a single free-text answer.
type ShortAnswerQuestion struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

func (q *ShortAnswerQuestion) Prompt() string     { return q.Question }
func (q *ShortAnswerQuestion) Type() QuestionType { return QuestionShortAnswer }
func (q *ShortAnswerQuestion) Answered() bool     { return q.Answer != "" && !IsSentinel(q.Answer) }

func (q *ShortAnswerQuestion) Key() string {
	return joinKey("sa", q.Question, q.Answer)
}

func joinKey(kind string, fields ...string) string {
	return kind + keySep + strings.Join(fields, keySep+keySep)
}

func answeredList(answers []string) bool {
	if len(answers) == 0 {
		return false
	}
	for _, a := range answers {
		if IsSentinel(a) {
			return false
		}
	}
	return true
}
