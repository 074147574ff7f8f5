// Package lesson implements the chapter interaction engines: content
// parsing and view selection, the quiz flow, the lab image-tap exercise
// and per-course progress tracking. It has no transport or storage
// dependencies; callers inject what they need.
package lesson

import (
	"encoding/json"
	"fmt"
)

// ChapterType enumerates the declared chapter content types.
type ChapterType string

const (
	ChapterText  ChapterType = "text"
	ChapterVideo ChapterType = "video"
	ChapterQuiz  ChapterType = "quiz"
	ChapterMatch ChapterType = "match" // declared by authoring, no handler yet
	ChapterLab   ChapterType = "lab"
)

// Option is one selectable answer of a quiz question.
type Option struct {
	Label     string `json:"option"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is a single quiz question with its hint and ordered options.
type Question struct {
	Prompt  string   `json:"question"`
	Hint    string   `json:"hint"`
	Options []Option `json:"options"`
}

// Point is a coordinate in the image's native pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Content is the variant-specific chapter payload. Exactly one concrete
// type exists per renderable ChapterType, so a missing required field is
// a parse failure instead of a nil dereference later.
type Content interface {
	chapterContent()
}

// TextContent carries an HTML-like markup body. An absent body parses to
// the empty string.
type TextContent struct {
	Body string
}

// VideoContent carries a playable media URL.
type VideoContent struct {
	VideoURL string
}

// QuizContent carries the ordered question list.
type QuizContent struct {
	Questions []Question
}

// LabContent carries the tap exercise: an image, a prompt, the target
// point in native pixel space and an optional post-success explainer.
type LabContent struct {
	ImageURL   string
	Question   string
	AnswerArea Point
	VideoURL   string
}

func (TextContent) chapterContent()  {}
func (VideoContent) chapterContent() {}
func (QuizContent) chapterContent()  {}
func (LabContent) chapterContent()   {}

// rawDetails mirrors the stored details document. All fields are
// optional at the storage level; ParseContent enforces what each
// variant actually requires.
type rawDetails struct {
	Content    *string    `json:"content"`
	VideoURL   string     `json:"videoUrl"`
	Questions  []Question `json:"questions"`
	ImageURL   string     `json:"imageUrl"`
	Question   string     `json:"question"`
	AnswerArea *Point     `json:"answerArea"`
}

// ParseContent decodes a chapter's details payload into the typed
// variant for the given chapter type. It returns an error naming the
// first missing required field; match and unknown types always error
// since no handler exists for them.
func ParseContent(t ChapterType, details []byte) (Content, error) {
	var raw rawDetails
	if len(details) > 0 {
		if err := json.Unmarshal(details, &raw); err != nil {
			return nil, fmt.Errorf("malformed details payload: %w", err)
		}
	}

	switch t {
	case ChapterText:
		body := ""
		if raw.Content != nil {
			body = *raw.Content
		}
		return TextContent{Body: body}, nil

	case ChapterVideo:
		if raw.VideoURL == "" {
			return nil, fmt.Errorf("video chapter is missing videoUrl")
		}
		return VideoContent{VideoURL: raw.VideoURL}, nil

	case ChapterQuiz:
		if len(raw.Questions) == 0 {
			return nil, fmt.Errorf("quiz chapter has no questions")
		}
		return QuizContent{Questions: raw.Questions}, nil

	case ChapterLab:
		if raw.ImageURL == "" {
			return nil, fmt.Errorf("lab chapter is missing imageUrl")
		}
		if raw.Question == "" {
			return nil, fmt.Errorf("lab chapter is missing question")
		}
		if raw.AnswerArea == nil {
			return nil, fmt.Errorf("lab chapter is missing answerArea")
		}
		return LabContent{
			ImageURL:   raw.ImageURL,
			Question:   raw.Question,
			AnswerArea: *raw.AnswerArea,
			VideoURL:   raw.VideoURL,
		}, nil

	case ChapterMatch:
		return nil, fmt.Errorf("no handler for match chapters")

	default:
		return nil, fmt.Errorf("unrecognized chapter type %q", t)
	}
}
