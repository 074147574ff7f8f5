package lesson

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed []uint
		total     int
		want      int
	}{
		{"empty over zero", nil, 0, 0},
		{"two of four", []uint{1, 2}, 4, 50},
		{"three of four", []uint{1, 2, 3}, 4, 75},
		{"all complete", []uint{1, 2, 3}, 3, 100},
		{"duplicates collapse", []uint{1, 1, 2}, 4, 50},
		{"rounds half up", []uint{1}, 3, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCompletionPercentage(tt.completed, tt.total))
		})
	}
}

func TestIsChapterComplete(t *testing.T) {
	completed := []uint{3, 7, 11}

	assert.True(t, IsChapterComplete(7, completed))
	assert.False(t, IsChapterComplete(8, completed))
	assert.False(t, IsChapterComplete(7, nil))
}

// fakeProgressStore is an in-memory ProgressStore for tracker tests.
type fakeProgressStore struct {
	records map[[2]uint][]uint
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[[2]uint][]uint)}
}

func (f *fakeProgressStore) CompletedChapters(_ context.Context, userID, courseID uint) ([]uint, error) {
	return f.records[[2]uint{userID, courseID}], nil
}

func (f *fakeProgressStore) MarkChapterComplete(_ context.Context, userID, courseID, chapterID uint) error {
	key := [2]uint{userID, courseID}
	for _, id := range f.records[key] {
		if id == chapterID {
			return nil
		}
	}
	f.records[key] = append(f.records[key], chapterID)
	return nil
}

func TestTrackerMarkAndRead(t *testing.T) {
	store := newFakeProgressStore()
	tracker := NewTracker(store)
	ctx := context.Background()

	completed, err := tracker.CompletedChapters(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, completed, "absent record reads as empty")

	require.NoError(t, tracker.MarkChapterComplete(ctx, 1, 10, 100))
	require.NoError(t, tracker.MarkChapterComplete(ctx, 1, 10, 101))
	require.NoError(t, tracker.MarkChapterComplete(ctx, 1, 10, 100), "remark is a no-op")

	completed, err = tracker.CompletedChapters(ctx, 1, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{100, 101}, completed)

	percent, err := tracker.CompletionPercentage(ctx, 1, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 50, percent)
}

func TestTrackerKeepsUsersSeparate(t *testing.T) {
	store := newFakeProgressStore()
	tracker := NewTracker(store)
	ctx := context.Background()

	require.NoError(t, tracker.MarkChapterComplete(ctx, 1, 10, 100))

	completed, err := tracker.CompletedChapters(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, completed)
}
