package lesson

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLabContent() LabContent {
	return LabContent{
		ImageURL:   "https://cdn.example.com/labs/heart.png",
		Question:   "Tap the aortic arch.",
		AnswerArea: Point{X: 100, Y: 100},
		VideoURL:   "https://cdn.example.com/labs/heart-explainer.mp4",
	}
}

func TestLabProjectionHitScenario(t *testing.T) {
	// Native 800x600 shown at 400x300: a tap at rendered (50,50)
	// projects to native (100,100), distance 0 to the answer area.
	s := NewLabSession(testLabContent())

	result := s.Tap(TapInput{
		X: 50, Y: 50,
		DisplayWidth: 400, DisplayHeight: 300,
		NativeWidth: 800, NativeHeight: 600,
	})

	assert.True(t, result.Hit)
	assert.InDelta(t, 0.0, result.Distance, 0.0001)
	assert.Equal(t, 1, result.Attempts)
	assert.True(t, s.Solved())
}

func TestLabThresholdIsExclusive(t *testing.T) {
	s := NewLabSession(testLabContent())
	unscaled := TapInput{DisplayWidth: 800, DisplayHeight: 600, NativeWidth: 800, NativeHeight: 600}

	// distance exactly 30.0 is a miss
	in := unscaled
	in.X, in.Y = 130, 100
	result := s.Tap(in)
	assert.InDelta(t, 30.0, result.Distance, 0.0001)
	assert.False(t, result.Hit)

	// distance 29.999 is a hit
	in.X, in.Y = 129.999, 100
	result = s.Tap(in)
	assert.True(t, result.Hit)
}

func TestLabEveryTapCountsAnAttempt(t *testing.T) {
	s := NewLabSession(testLabContent())
	in := TapInput{X: 500, Y: 500, DisplayWidth: 800, DisplayHeight: 600, NativeWidth: 800, NativeHeight: 600}

	for i := 1; i <= 3; i++ {
		result := s.Tap(in)
		assert.False(t, result.Hit)
		assert.Equal(t, i, result.Attempts)
	}

	require.NotNil(t, s.LastTap())
	assert.InDelta(t, 500.0, s.LastTap().X, 0.0001)
}

func TestLabInputStaysLiveAfterSuccess(t *testing.T) {
	s := NewLabSession(testLabContent())
	hit := TapInput{X: 100, Y: 100, DisplayWidth: 800, DisplayHeight: 600, NativeWidth: 800, NativeHeight: 600}
	miss := TapInput{X: 700, Y: 500, DisplayWidth: 800, DisplayHeight: 600, NativeWidth: 800, NativeHeight: 600}

	require.True(t, s.Tap(hit).Hit)

	// dismissing the modal returns control to the image; taps keep counting
	result := s.Tap(miss)
	assert.False(t, result.Hit)
	assert.Equal(t, 2, result.Attempts)
	assert.True(t, s.Solved(), "a later miss does not unsolve the exercise")
}

func TestLabFeedbackValues(t *testing.T) {
	s := NewLabSession(testLabContent())

	result := s.Tap(TapInput{X: 10, Y: 20, DisplayWidth: 400, DisplayHeight: 300, NativeWidth: 800, NativeHeight: 600})

	assert.InDelta(t, 10.0, result.Feedback.X, 0.0001)
	assert.InDelta(t, 20.0, result.Feedback.Y, 0.0001)
	assert.InDelta(t, 1.2, result.Feedback.Scale, 0.0001)
	assert.InDelta(t, 1.0, result.Feedback.Opacity, 0.0001)
	assert.Equal(t, 2*time.Second, result.Feedback.Dwell)
}

func TestProjectToNativeGuardsZeroDisplay(t *testing.T) {
	p := ProjectToNative(TapInput{X: 50, Y: 50, NativeWidth: 800, NativeHeight: 600})
	assert.InDelta(t, 50.0, p.X, 0.0001)
	assert.InDelta(t, 50.0, p.Y, 0.0001)
}

func TestLabSuccessVideoURL(t *testing.T) {
	s := NewLabSession(testLabContent())
	assert.Equal(t, "https://cdn.example.com/labs/heart-explainer.mp4", s.SuccessVideoURL())

	noVideo := testLabContent()
	noVideo.VideoURL = ""
	assert.Empty(t, NewLabSession(noVideo).SuccessVideoURL())
}
