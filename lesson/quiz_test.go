package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestionQuiz() []Question {
	return []Question{
		{
			Prompt: "Which valve prevents backflow into the left atrium?",
			Hint:   "It has two leaflets.",
			Options: []Option{
				{Label: "Mitral valve", IsCorrect: true},
				{Label: "Aortic valve"},
				{Label: "Pulmonary valve"},
			},
		},
		{
			Prompt: "Where does gas exchange happen?",
			Hint:   "Tiny air sacs.",
			Options: []Option{
				{Label: "Bronchi"},
				{Label: "Alveoli", IsCorrect: true},
			},
		},
	}
}

func TestQuizSessionInitialState(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())

	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.Finished())
	assert.False(t, s.HintVisible())
	_, answered := s.SelectedOption()
	assert.False(t, answered)
}

func TestQuizNextRequiresAnswer(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())

	err := s.Next()
	require.ErrorIs(t, err, ErrAnswerRequired)
	assert.Equal(t, 0, s.CurrentIndex(), "state must be unchanged after a rejected Next")
	assert.False(t, s.Finished())
}

func TestQuizNextAdvancesAndResetsHint(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	s.SelectOption(0)
	s.ToggleHint()
	require.True(t, s.HintVisible())

	require.NoError(t, s.Next())
	assert.Equal(t, 1, s.CurrentIndex())
	assert.False(t, s.HintVisible(), "hint resets when moving on")
}

func TestQuizNextFromLastQuestionFinishes(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	s.SelectOption(0)
	require.NoError(t, s.Next())

	// last question unanswered: stays put
	err := s.Next()
	require.ErrorIs(t, err, ErrAnswerRequired)
	assert.False(t, s.Finished())

	s.SelectOption(1)
	require.NoError(t, s.Next())
	assert.True(t, s.Finished())
}

func TestQuizPreviousKeepsAnswers(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())

	s.Previous() // no-op at index 0
	assert.Equal(t, 0, s.CurrentIndex())

	s.SelectOption(1)
	require.NoError(t, s.Next())
	s.ToggleHint()

	s.Previous()
	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.HintVisible())
	sel, answered := s.SelectedOption()
	require.True(t, answered, "Previous never clears a recorded answer")
	assert.Equal(t, 1, sel)
}

func TestQuizSelectOptionOverwrites(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	s.SelectOption(2)
	s.SelectOption(0)

	sel, _ := s.SelectedOption()
	assert.Equal(t, 0, sel)
}

func TestQuizScore(t *testing.T) {
	tests := []struct {
		name    string
		answers map[int]int
		want    float64
	}{
		{"all correct", map[int]int{0: 0, 1: 1}, 100.0},
		{"half correct", map[int]int{0: 0, 1: 0}, 50.0},
		{"none answered", map[int]int{}, 0.0},
		{"unanswered counts as wrong", map[int]int{0: 0}, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewQuizSession(twoQuestionQuiz())
			for i := 0; i < 2; i++ {
				sel, ok := tt.answers[i]
				if !ok {
					break
				}
				s.SelectOption(sel)
				require.NoError(t, s.Next())
			}
			assert.InDelta(t, tt.want, s.Score(), 0.0001)
		})
	}
}

func TestQuizScoreRoundsToOneDecimal(t *testing.T) {
	// one of three correct: 33.333...% -> 33.3
	questions := []Question{
		{Prompt: "q1", Options: []Option{{Label: "a", IsCorrect: true}, {Label: "b"}}},
		{Prompt: "q2", Options: []Option{{Label: "a", IsCorrect: true}, {Label: "b"}}},
		{Prompt: "q3", Options: []Option{{Label: "a", IsCorrect: true}, {Label: "b"}}},
	}
	_, percent := Grade(questions, map[int]int{0: 0, 1: 1, 2: 1})
	assert.InDelta(t, 33.3, percent, 0.0001)
}

func TestQuizRetryRestoresInitialState(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	s.SelectOption(0)
	require.NoError(t, s.Next())
	s.SelectOption(1)
	s.ToggleHint()
	require.NoError(t, s.Next())
	require.True(t, s.Finished())

	s.Retry()

	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.Finished())
	assert.False(t, s.HintVisible())
	assert.Empty(t, s.Answers())
	assert.InDelta(t, 0.0, s.Score(), 0.0001)
}

func TestQuizResultSummaryScenario(t *testing.T) {
	// Q1 correct option index 0, Q2 correct option index 1. Learner picks
	// 0 for both: 50.0% with Q2 wrong.
	s := NewQuizSession(twoQuestionQuiz())
	s.SelectOption(0)
	require.NoError(t, s.Next())
	s.SelectOption(0)
	require.NoError(t, s.Next())

	require.True(t, s.Finished())
	assert.InDelta(t, 50.0, s.Score(), 0.0001)

	results := s.Results()
	require.Len(t, results, 2)

	assert.True(t, results[0].IsCorrect)
	assert.Equal(t, "Mitral valve", results[0].SelectedLabel)

	assert.True(t, results[1].Answered)
	assert.False(t, results[1].IsCorrect)
	assert.Equal(t, "Bronchi", results[1].SelectedLabel)
	assert.Equal(t, "Alveoli", results[1].CorrectLabel)
}

func TestQuizResultMarksUnanswered(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())

	results := s.Results()
	require.Len(t, results, 2)
	assert.False(t, results[0].Answered)
	assert.Empty(t, results[0].SelectedLabel)
	assert.Equal(t, "Mitral valve", results[0].CorrectLabel)
}

func TestQuizFirstCorrectOptionIsAuthoritative(t *testing.T) {
	questions := []Question{{
		Prompt: "pick one",
		Options: []Option{
			{Label: "first", IsCorrect: true},
			{Label: "second", IsCorrect: true},
		},
	}}
	s := NewQuizSession(questions)

	results := s.Results()
	assert.Equal(t, "first", results[0].CorrectLabel)
}

func TestGradeIgnoresOutOfRangeSelection(t *testing.T) {
	correct, percent := Grade(twoQuestionQuiz(), map[int]int{0: 99, 1: -1})
	assert.Equal(t, 0, correct)
	assert.InDelta(t, 0.0, percent, 0.0001)
}
