package lesson

// ViewKind identifies which content handler a chapter dispatched to.
type ViewKind string

const (
	ViewText     ViewKind = "text"
	ViewVideo    ViewKind = "video"
	ViewQuiz     ViewKind = "quiz"
	ViewLab      ViewKind = "lab"
	ViewFallback ViewKind = "fallback"
)

// View is the rendering of exactly one content handler. At most one of
// the payload pointers is set, matching Kind; a fallback view carries
// only the user-facing message.
type View struct {
	Kind    ViewKind   `json:"kind"`
	Text    *TextView  `json:"text,omitempty"`
	Video   *VideoView `json:"video,omitempty"`
	Quiz    *QuizView  `json:"quiz,omitempty"`
	Lab     *LabView   `json:"lab,omitempty"`
	Message string     `json:"message,omitempty"`
}

type TextView struct {
	Content string `json:"content"`
}

type VideoView struct {
	VideoURL string `json:"videoUrl"`
}

// QuestionView is a question as shown to the learner: correctness flags
// are stripped so answers never reach the client.
type QuestionView struct {
	Prompt  string   `json:"question"`
	Hint    string   `json:"hint"`
	Options []string `json:"options"`
}

type QuizView struct {
	Questions []QuestionView `json:"questions"`
}

// LabView deliberately omits the answer area; hit-testing happens in the
// engine, not on the client.
type LabView struct {
	ImageURL string `json:"imageUrl"`
	Question string `json:"question"`
	VideoURL string `json:"videoUrl,omitempty"`
}

const fallbackMessage = "This content is unavailable. Please check back later."

// SelectView dispatches a chapter to its content handler. Unrecognized
// or unimplemented types and payloads with missing required fields all
// produce the same explicit fallback view, never an error and never a
// blank screen.
func SelectView(t ChapterType, details []byte) View {
	content, err := ParseContent(t, details)
	if err != nil {
		return View{Kind: ViewFallback, Message: fallbackMessage}
	}

	switch c := content.(type) {
	case TextContent:
		return View{Kind: ViewText, Text: &TextView{Content: c.Body}}
	case VideoContent:
		return View{Kind: ViewVideo, Video: &VideoView{VideoURL: c.VideoURL}}
	case QuizContent:
		questions := make([]QuestionView, len(c.Questions))
		for i, q := range c.Questions {
			options := make([]string, len(q.Options))
			for j, opt := range q.Options {
				options[j] = opt.Label
			}
			questions[i] = QuestionView{Prompt: q.Prompt, Hint: q.Hint, Options: options}
		}
		return View{Kind: ViewQuiz, Quiz: &QuizView{Questions: questions}}
	case LabContent:
		return View{Kind: ViewLab, Lab: &LabView{
			ImageURL: c.ImageURL,
			Question: c.Question,
			VideoURL: c.VideoURL,
		}}
	default:
		return View{Kind: ViewFallback, Message: fallbackMessage}
	}
}
