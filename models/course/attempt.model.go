package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt records a full quiz submission for a quiz chapter.
// Answers holds the question-index to option-index map as JSON.
type QuizAttempt struct {
	gorm.Model
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	ChapterID     uint           `json:"chapter_id" gorm:"index;not null"`
	Answers       datatypes.JSON `json:"answers"`
	Score         int            `json:"score"`      // correctly answered questions
	MaxScore      int            `json:"max_score"`  // total questions
	Percentage    float64        `json:"percentage"` // rounded to one decimal
	AttemptNumber int            `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool           `gorm:"default:false"`
}

// LabAttempt records a single tap at a lab chapter's image.
type LabAttempt struct {
	gorm.Model
	UserID        uint    `json:"user_id" gorm:"index;not null"`
	ChapterID     uint    `json:"chapter_id" gorm:"index;not null"`
	TapX          float64 `json:"tap_x"` // projected into native pixel space
	TapY          float64 `json:"tap_y"`
	Distance      float64 `json:"distance"`
	IsHit         bool    `json:"is_hit" gorm:"default:false"`
	AttemptNumber int     `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool    `gorm:"default:false"`
}
