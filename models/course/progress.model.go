package course

import "gorm.io/gorm"

// ChapterCompletion is one completed-chapter membership row of a user's
// per-course progress record. Duplicates carry no extra meaning; the
// unique index keeps marking idempotent.
type ChapterCompletion struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_chapter"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	ChapterID uint   `json:"chapter_id" gorm:"index;not null;uniqueIndex:idx_user_chapter"`
	Status    string `json:"status" gorm:"default:'COMPLETED'"`
	IsDeleted bool   `gorm:"default:false"`
}
