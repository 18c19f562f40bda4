package quizdoc

import "slices"

// Quiz is everything recovered from one quiz-results page.
//
// NumberOfQuestions counts the question fragments found on the page, whether
// or not they could be parsed. Fragments whose type is not recognised are
// kept in Unrecognized, keyed by their raw type name, as HTML.
type Quiz struct {
	Title                        string                         `json:"title" yaml:"title"`
	NumberOfQuestions            int                            `json:"number_of_questions" yaml:"number_of_questions"`
	MultipleChoiceQuestions      []*MultipleChoiceQuestion      `json:"multiple_choice_questions" yaml:"multiple_choice_questions"`
	MatchingQuestions            []*MatchingQuestion            `json:"matching_questions" yaml:"matching_questions"`
	MultipleAnswersQuestions     []*MultipleAnswersQuestion     `json:"multiple_answers_questions" yaml:"multiple_answers_questions"`
	MultipleShortAnswerQuestions []*MultipleShortAnswerQuestion `json:"multiple_short_answer_questions" yaml:"multiple_short_answer_questions"`
	ShortAnswerQuestions         []*ShortAnswerQuestion         `json:"short_answer_questions" yaml:"short_answer_questions"`
	Unrecognized                 map[string][]string            `json:"unrecognized_questions,omitempty" yaml:"unrecognized_questions,omitempty"`
}

// NewQuiz returns an empty quiz with the given title.
func NewQuiz(title string) *Quiz {
	return &Quiz{
		Title:                        title,
		MultipleChoiceQuestions:      []*MultipleChoiceQuestion{},
		MatchingQuestions:            []*MatchingQuestion{},
		MultipleAnswersQuestions:     []*MultipleAnswersQuestion{},
		MultipleShortAnswerQuestions: []*MultipleShortAnswerQuestion{},
		ShortAnswerQuestions:         []*ShortAnswerQuestion{},
		Unrecognized:                 map[string][]string{},
	}
}

// Add appends q to the list matching its concrete type.
func (z *Quiz) Add(q Question) error {
	switch q := q.(type) {
	case *MultipleChoiceQuestion:
		z.MultipleChoiceQuestions = append(z.MultipleChoiceQuestions, q)
	case *MultipleAnswersQuestion:
		z.MultipleAnswersQuestions = append(z.MultipleAnswersQuestions, q)
	case *MatchingQuestion:
		z.MatchingQuestions = append(z.MatchingQuestions, q)
	case *MultipleShortAnswerQuestion:
		z.MultipleShortAnswerQuestions = append(z.MultipleShortAnswerQuestions, q)
	case *ShortAnswerQuestion:
		z.ShortAnswerQuestions = append(z.ShortAnswerQuestions, q)
	default:
		return Errorf(EINVALID, "unsupported question %T", q)
	}
	return nil
}

// AddUnrecognized records the raw HTML of a fragment that could not be
// parsed under its raw type name.
func (z *Quiz) AddUnrecognized(typeName, rawHTML string) {
	if z.Unrecognized == nil {
		z.Unrecognized = map[string][]string{}
	}
	z.Unrecognized[typeName] = append(z.Unrecognized[typeName], rawHTML)
}

// Questions returns every stored question, section by section in the order
// multiple choice, matching, multiple answers, multiple short answer, short
// answer.
func (z *Quiz) Questions() []Question {
	out := make([]Question, 0, z.Len())
	for _, q := range z.MultipleChoiceQuestions {
		out = append(out, q)
	}
	for _, q := range z.MatchingQuestions {
		out = append(out, q)
	}
	for _, q := range z.MultipleAnswersQuestions {
		out = append(out, q)
	}
	for _, q := range z.MultipleShortAnswerQuestions {
		out = append(out, q)
	}
	for _, q := range z.ShortAnswerQuestions {
		out = append(out, q)
	}
	return out
}

// Len returns the number of stored questions.
func (z *Quiz) Len() int {
	return len(z.MultipleChoiceQuestions) +
		len(z.MatchingQuestions) +
		len(z.MultipleAnswersQuestions) +
		len(z.MultipleShortAnswerQuestions) +
		len(z.ShortAnswerQuestions)
}

// Unanswered returns the number of stored questions without a recovered answer.
func (z *Quiz) Unanswered() int {
	n := 0
	for _, q := range z.Questions() {
		if !q.Answered() {
			n++
		}
	}
	return n
}

// Combine returns a new quiz holding the union of z and other. The title is
// taken from z. Questions with the same Key appear once, in first-seen
// order, and NumberOfQuestions is reduced by the number of duplicate
// questions and unrecognized fragments dropped. A nil other yields a copy of
// z. Neither input is modified.
func (z *Quiz) Combine(other *Quiz) *Quiz {
	if other == nil {
		other = NewQuiz(z.Title)
	}
	out := NewQuiz(z.Title)
	out.NumberOfQuestions = z.NumberOfQuestions + other.NumberOfQuestions

	seen := make(map[string]struct{})
	for _, src := range []*Quiz{z, other} {
		for _, q := range src.Questions() {
			key := q.Key()
			if _, ok := seen[key]; ok {
				out.NumberOfQuestions--
				continue
			}
			seen[key] = struct{}{}
			_ = out.Add(q)
		}
		for typeName, fragments := range src.Unrecognized {
			for _, raw := range fragments {
				if slices.Contains(out.Unrecognized[typeName], raw) {
					out.NumberOfQuestions--
					continue
				}
				out.AddUnrecognized(typeName, raw)
			}
		}
	}
	return out
}
