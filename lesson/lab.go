package lesson

import (
	"math"
	"time"
)

// TouchThreshold is the exclusive hit radius around the answer area, in
// native pixel units. A projected distance of exactly the threshold is
// a miss.
const TouchThreshold = 30.0

// FeedbackDwell is how long the tap marker stays visible before fading.
const FeedbackDwell = 2 * time.Second

// feedback animation peaks
const (
	feedbackScale   = 1.2
	feedbackOpacity = 1.0
)

// TapInput is a tap in the rendered image's coordinate space together
// with the dimensions needed to project it into native pixel space.
type TapInput struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	DisplayWidth  float64 `json:"display_width"`
	DisplayHeight float64 `json:"display_height"`
	NativeWidth   float64 `json:"native_width"`
	NativeHeight  float64 `json:"native_height"`
}

// Feedback carries the transient tap acknowledgment: a marker at the
// tap location that scales in and fades out after the dwell time.
type Feedback struct {
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
	Scale   float64       `json:"scale"`
	Opacity float64       `json:"opacity"`
	Dwell   time.Duration `json:"dwell"`
}

// TapResult is the outcome of a single tap.
type TapResult struct {
	Hit      bool     `json:"hit"`
	Distance float64  `json:"distance"`
	Attempts int      `json:"attempts"`
	Feedback Feedback `json:"feedback"`
}

// LabSession runs one learner's image-tap exercise. Every tap counts an
// attempt and produces feedback; input stays live after a hit since the
// learner can dismiss the success modal and keep tapping.
type LabSession struct {
	content  LabContent
	attempts int
	solved   bool
	lastTap  *Point // rendered coordinate space
}

// NewLabSession starts a lab session for fully-populated lab content.
// Content validation happens upstream in the renderer selector; the
// session itself never re-checks it.
func NewLabSession(content LabContent) *LabSession {
	return &LabSession{content: content}
}

// Attempts returns the number of taps so far.
func (s *LabSession) Attempts() int { return s.attempts }

// Solved reports whether any tap has hit the answer area.
func (s *LabSession) Solved() bool { return s.solved }

// LastTap returns the most recent tap in rendered coordinates, or nil
// before the first tap.
func (s *LabSession) LastTap() *Point { return s.lastTap }

// Tap records a tap: the position is projected into native pixel space
// by the native-to-display ratio, its Euclidean distance to the answer
// area decides hit or miss, and the attempt counter increments either
// way.
func (s *LabSession) Tap(in TapInput) TapResult {
	s.attempts++
	s.lastTap = &Point{X: in.X, Y: in.Y}

	hit, distance := HitTest(s.content, in)
	if hit {
		s.solved = true
	}

	return TapResult{
		Hit:      hit,
		Distance: distance,
		Attempts: s.attempts,
		Feedback: Feedback{
			X:       in.X,
			Y:       in.Y,
			Scale:   feedbackScale,
			Opacity: feedbackOpacity,
			Dwell:   FeedbackDwell,
		},
	}
}

// SuccessVideoURL returns the optional explainer URL shown after a hit,
// or the empty string when the chapter has none.
func (s *LabSession) SuccessVideoURL() string {
	return s.content.VideoURL
}

// HitTest projects a tap into native pixel space and measures it
// against the lab's answer area. The threshold is exclusive: a distance
// of exactly TouchThreshold misses.
func HitTest(content LabContent, in TapInput) (hit bool, distance float64) {
	native := ProjectToNative(in)
	distance = math.Hypot(native.X-content.AnswerArea.X, native.Y-content.AnswerArea.Y)
	return distance < TouchThreshold, distance
}

// ProjectToNative maps a tap from rendered to native pixel space. A
// non-positive display dimension leaves that axis unscaled rather than
// dividing by zero.
func ProjectToNative(in TapInput) Point {
	scaleX, scaleY := 1.0, 1.0
	if in.DisplayWidth > 0 {
		scaleX = in.NativeWidth / in.DisplayWidth
	}
	if in.DisplayHeight > 0 {
		scaleY = in.NativeHeight / in.DisplayHeight
	}
	return Point{X: in.X * scaleX, Y: in.Y * scaleY}
}
