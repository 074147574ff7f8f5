package database

import (
	courseModels "academy/models/course"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ProgressStore is the gorm-backed implementation of
// lesson.ProgressStore over ChapterCompletion rows.
type ProgressStore struct {
	db *gorm.DB
}

// NewProgressStore wires a progress store to a database handle.
func NewProgressStore(db *gorm.DB) *ProgressStore {
	return &ProgressStore{db: db}
}

// CompletedChapters returns the user's completed chapter ids for a
// course. No rows reads as empty, never as an error.
func (s *ProgressStore) CompletedChapters(ctx context.Context, userID, courseID uint) ([]uint, error) {
	var chapterIDs []uint
	err := s.db.WithContext(ctx).
		Model(&courseModels.ChapterCompletion{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Pluck("chapter_id", &chapterIDs).Error
	if err != nil {
		return nil, err
	}
	return chapterIDs, nil
}

// MarkChapterComplete appends a completion row. Marking an already
// completed chapter is a no-op.
func (s *ProgressStore) MarkChapterComplete(ctx context.Context, userID, courseID, chapterID uint) error {
	var existing courseModels.ChapterCompletion
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND chapter_id = ? AND is_deleted = ?", userID, chapterID, false).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	completion := courseModels.ChapterCompletion{
		UserID:    userID,
		CourseID:  courseID,
		ChapterID: chapterID,
		Status:    "COMPLETED",
	}
	return s.db.WithContext(ctx).Create(&completion).Error
}
