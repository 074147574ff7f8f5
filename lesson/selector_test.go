package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectViewText(t *testing.T) {
	view := SelectView(ChapterText, []byte(`{"content":"<p>Welcome</p>"}`))

	require.Equal(t, ViewText, view.Kind)
	require.NotNil(t, view.Text)
	assert.Equal(t, "<p>Welcome</p>", view.Text.Content)
}

func TestSelectViewTextAllowsEmptyBody(t *testing.T) {
	view := SelectView(ChapterText, []byte(`{}`))

	require.Equal(t, ViewText, view.Kind)
	assert.Empty(t, view.Text.Content)
}

func TestSelectViewVideo(t *testing.T) {
	view := SelectView(ChapterVideo, []byte(`{"videoUrl":"https://cdn.example.com/v.mp4"}`))

	require.Equal(t, ViewVideo, view.Kind)
	assert.Equal(t, "https://cdn.example.com/v.mp4", view.Video.VideoURL)
}

func TestSelectViewQuizStripsCorrectness(t *testing.T) {
	details := []byte(`{"questions":[{"question":"Q1","hint":"H1","options":[{"option":"a","isCorrect":true},{"option":"b","isCorrect":false}]}]}`)

	view := SelectView(ChapterQuiz, details)

	require.Equal(t, ViewQuiz, view.Kind)
	require.Len(t, view.Quiz.Questions, 1)
	assert.Equal(t, "Q1", view.Quiz.Questions[0].Prompt)
	assert.Equal(t, []string{"a", "b"}, view.Quiz.Questions[0].Options)
}

func TestSelectViewLabOmitsAnswerArea(t *testing.T) {
	details := []byte(`{"imageUrl":"https://cdn.example.com/i.png","question":"Tap it","answerArea":{"x":10,"y":20}}`)

	view := SelectView(ChapterLab, details)

	require.Equal(t, ViewLab, view.Kind)
	assert.Equal(t, "Tap it", view.Lab.Question)
	assert.Empty(t, view.Lab.VideoURL)
}

func TestSelectViewFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		typ     ChapterType
		details string
	}{
		{"match has no handler", ChapterMatch, `{"content":"x"}`},
		{"unknown type", ChapterType("hologram"), `{}`},
		{"video without url", ChapterVideo, `{}`},
		{"quiz without questions", ChapterQuiz, `{"questions":[]}`},
		{"lab missing imageUrl", ChapterLab, `{"question":"q","answerArea":{"x":1,"y":2}}`},
		{"lab missing question", ChapterLab, `{"imageUrl":"u","answerArea":{"x":1,"y":2}}`},
		{"lab missing answerArea", ChapterLab, `{"imageUrl":"u","question":"q"}`},
		{"malformed payload", ChapterText, `{"content":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := SelectView(tt.typ, []byte(tt.details))

			assert.Equal(t, ViewFallback, view.Kind)
			assert.NotEmpty(t, view.Message, "fallback must be visible, not blank")
			assert.Nil(t, view.Text)
			assert.Nil(t, view.Video)
			assert.Nil(t, view.Quiz)
			assert.Nil(t, view.Lab)
		})
	}
}

func TestParseContentLabHappyPath(t *testing.T) {
	details := []byte(`{"imageUrl":"u","question":"q","answerArea":{"x":100,"y":100},"videoUrl":"v"}`)

	content, err := ParseContent(ChapterLab, details)
	require.NoError(t, err)

	lab, ok := content.(LabContent)
	require.True(t, ok)
	assert.InDelta(t, 100.0, lab.AnswerArea.X, 0.0001)
	assert.Equal(t, "v", lab.VideoURL)
}
