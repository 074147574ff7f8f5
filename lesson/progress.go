package lesson

import (
	"context"
	"math"
)

// ComputeCompletionPercentage returns the integer completion percentage
// for a set of completed chapter ids against the total chapter count.
// Duplicate ids are collapsed before counting; a zero total is 0, not a
// division error.
func ComputeCompletionPercentage(completedChapterIDs []uint, totalChapterCount int) int {
	if totalChapterCount <= 0 {
		return 0
	}
	seen := make(map[uint]struct{}, len(completedChapterIDs))
	for _, id := range completedChapterIDs {
		seen[id] = struct{}{}
	}
	return int(math.Round(float64(len(seen)) / float64(totalChapterCount) * 100))
}

// IsChapterComplete reports membership of a chapter in the completed
// set. It drives badge rendering only; navigation is never gated on it.
func IsChapterComplete(chapterID uint, completedChapterIDs []uint) bool {
	for _, id := range completedChapterIDs {
		if id == chapterID {
			return true
		}
	}
	return false
}

// ProgressStore is the persistence boundary for per-user, per-course
// progress records. An absent record reads as empty, and marking an
// already-completed chapter is a no-op.
type ProgressStore interface {
	CompletedChapters(ctx context.Context, userID, courseID uint) ([]uint, error)
	MarkChapterComplete(ctx context.Context, userID, courseID, chapterID uint) error
}

// Tracker aggregates completed chapters per course for one store. The
// store arrives by injection so tests run against a fake.
type Tracker struct {
	store ProgressStore
}

// NewTracker wires a tracker to its store.
func NewTracker(store ProgressStore) *Tracker {
	return &Tracker{store: store}
}

// CompletedChapters returns the user's completed chapter ids for a
// course, empty when no record exists.
func (t *Tracker) CompletedChapters(ctx context.Context, userID, courseID uint) ([]uint, error) {
	return t.store.CompletedChapters(ctx, userID, courseID)
}

// MarkChapterComplete appends a chapter to the user's completion record.
func (t *Tracker) MarkChapterComplete(ctx context.Context, userID, courseID, chapterID uint) error {
	return t.store.MarkChapterComplete(ctx, userID, courseID, chapterID)
}

// CompletionPercentage reads the completion record and computes the
// course percentage in one step.
func (t *Tracker) CompletionPercentage(ctx context.Context, userID, courseID uint, totalChapterCount int) (int, error) {
	completed, err := t.store.CompletedChapters(ctx, userID, courseID)
	if err != nil {
		return 0, err
	}
	return ComputeCompletionPercentage(completed, totalChapterCount), nil
}
