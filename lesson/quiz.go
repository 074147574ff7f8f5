package lesson

import (
	"errors"
	"math"
)

// ErrAnswerRequired is returned by Next when the current question has no
// recorded answer. It is an inline validation message for the learner,
// not a failure of the session.
var ErrAnswerRequired = errors.New("please select an answer before proceeding")

// QuizSession is the per-sitting quiz state machine. It starts at the
// first question and moves to the result summary once the last question
// is answered and advanced past. Not safe for concurrent use; each
// learner sitting owns its own session.
type QuizSession struct {
	questions  []Question
	current    int
	answers    map[int]int // question index -> selected option index
	showResult bool
	showHint   bool
}

// QuestionResult is one row of the result summary.
type QuestionResult struct {
	Prompt        string `json:"question"`
	Answered      bool   `json:"answered"`
	SelectedLabel string `json:"selected_label,omitempty"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectLabel  string `json:"correct_label"`
}

// NewQuizSession starts a session at the first question with no
// recorded answers.
func NewQuizSession(questions []Question) *QuizSession {
	return &QuizSession{
		questions: questions,
		answers:   make(map[int]int),
	}
}

// CurrentIndex returns the 0-based index of the question on screen.
func (s *QuizSession) CurrentIndex() int { return s.current }

// CurrentQuestion returns the question on screen.
func (s *QuizSession) CurrentQuestion() Question { return s.questions[s.current] }

// Finished reports whether the session has reached the result summary.
func (s *QuizSession) Finished() bool { return s.showResult }

// HintVisible reports whether the current question's hint is shown.
func (s *QuizSession) HintVisible() bool { return s.showHint }

// SelectOption records the chosen option for the current question,
// overwriting any prior selection.
func (s *QuizSession) SelectOption(optionIndex int) {
	s.answers[s.current] = optionIndex
}

// SelectedOption returns the recorded selection for the current
// question, or ok=false when it has none.
func (s *QuizSession) SelectedOption() (int, bool) {
	idx, ok := s.answers[s.current]
	return idx, ok
}

// ToggleHint flips hint visibility. It never affects scoring.
func (s *QuizSession) ToggleHint() {
	s.showHint = !s.showHint
}

// Next advances to the following question, or to the result summary
// from the last one. It refuses to move while the current question is
// unanswered, leaving all state unchanged.
func (s *QuizSession) Next() error {
	if _, ok := s.answers[s.current]; !ok {
		return ErrAnswerRequired
	}
	if s.current == len(s.questions)-1 {
		s.showResult = true
		return nil
	}
	s.current++
	s.showHint = false
	return nil
}

// Previous steps back one question, keeping every recorded answer.
// It is a no-op on the first question.
func (s *QuizSession) Previous() {
	if s.current == 0 {
		return
	}
	s.current--
	s.showHint = false
}

// Retry resets the session to its initial state: first question, no
// answers, result and hint hidden.
func (s *QuizSession) Retry() {
	s.current = 0
	s.answers = make(map[int]int)
	s.showResult = false
	s.showHint = false
}

// Answers returns a copy of the recorded answers for persisting.
func (s *QuizSession) Answers() map[int]int {
	out := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// CorrectCount returns how many questions have a correct recorded
// answer.
func (s *QuizSession) CorrectCount() int {
	correct, _ := Grade(s.questions, s.answers)
	return correct
}

// Score returns the percentage of correctly answered questions, rounded
// to one decimal place. Unanswered questions score zero.
func (s *QuizSession) Score() float64 {
	_, percent := Grade(s.questions, s.answers)
	return percent
}

// Results builds the per-question summary for the session's recorded
// answers.
func (s *QuizSession) Results() []QuestionResult {
	return Summarize(s.questions, s.answers)
}

// Summarize builds the per-question result summary: the learner's
// chosen label (or none), a correctness mark and the correct label.
// When authoring flags more than one option correct, the first in
// declaration order is authoritative.
func Summarize(questions []Question, answers map[int]int) []QuestionResult {
	results := make([]QuestionResult, len(questions))
	for i, q := range questions {
		r := QuestionResult{Prompt: q.Prompt, CorrectLabel: firstCorrectLabel(q)}
		if sel, ok := answers[i]; ok && sel >= 0 && sel < len(q.Options) {
			r.Answered = true
			r.SelectedLabel = q.Options[sel].Label
			r.IsCorrect = q.Options[sel].IsCorrect
		}
		results[i] = r
	}
	return results
}

// Grade scores a full answer map against the questions: the count of
// correct answers and the percentage rounded to one decimal place.
// Absent or out-of-range selections count as incorrect, never an error.
func Grade(questions []Question, answers map[int]int) (correct int, percent float64) {
	for i, q := range questions {
		sel, ok := answers[i]
		if !ok || sel < 0 || sel >= len(q.Options) {
			continue
		}
		if q.Options[sel].IsCorrect {
			correct++
		}
	}
	if len(questions) == 0 {
		return 0, 0
	}
	percent = math.Round(float64(correct)/float64(len(questions))*1000) / 10
	return correct, percent
}

func firstCorrectLabel(q Question) string {
	for _, opt := range q.Options {
		if opt.IsCorrect {
			return opt.Label
		}
	}
	return ""
}
