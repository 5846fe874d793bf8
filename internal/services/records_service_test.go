package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bigfootdev/bigfoot/internal/models"
)

func TestGetHallOfFameEmptyStore(t *testing.T) {
	service := NewRecordsService(newFakeStore())

	fame, err := service.GetHallOfFame(mustDate(t, "2024-03-15"))
	assert.NoError(t, err)

	assert.Equal(t, 0, fame.BestSingleDayCommits.Value)
	assert.Equal(t, "No commits yet", fame.BestSingleDayCommits.Description)
	assert.Equal(t, 0, fame.BestSingleDayLines.Value)
	assert.Equal(t, "No lines yet", fame.BestSingleDayLines.Description)
	assert.Equal(t, 0, fame.BestWeekCommits.Value)
	assert.Equal(t, "No weekly data yet", fame.BestWeekCommits.Description)
	assert.Equal(t, 0, fame.CurrentDayCommits)
	assert.Equal(t, 0, fame.CurrentDayLines)
	assert.Equal(t, 0.0, fame.RecordChaseProgress)
}

func TestGetHallOfFameRecords(t *testing.T) {
	store := newFakeStore()
	store.add("bigfoot", "2024-03-01", 12, 400, 100)
	store.add("scratch", "2024-03-01", 3, 50, 10)
	store.add("bigfoot", "2024-03-10", 6, 9000, 2000)
	store.add("bigfoot", "2024-03-15", 9, 20, 5)
	service := NewRecordsService(store)

	fame, err := service.GetHallOfFame(mustDate(t, "2024-03-15"))
	assert.NoError(t, err)

	// Best commit day sums across repos
	assert.Equal(t, models.RecordDailyCommits, fame.BestSingleDayCommits.RecordType)
	assert.Equal(t, 15, fame.BestSingleDayCommits.Value)
	assert.Equal(t, mustDate(t, "2024-03-01"), fame.BestSingleDayCommits.Date)
	assert.Equal(t, "15 commits in one day", fame.BestSingleDayCommits.Description)

	assert.Equal(t, 11000, fame.BestSingleDayLines.Value)
	assert.Equal(t, mustDate(t, "2024-03-10"), fame.BestSingleDayLines.Date)
	assert.Equal(t, "11,000 lines in one day", fame.BestSingleDayLines.Description)

	assert.Equal(t, 9, fame.CurrentDayCommits)
	assert.Equal(t, 25, fame.CurrentDayLines)
	assert.InDelta(t, 9.0/15.0, fame.RecordChaseProgress, 1e-9)
}

func TestGetHallOfFameRollingWeek(t *testing.T) {
	// The best week is a trailing 7-day window, not a calendar week:
	// Mar 5 + Mar 10 fall in the window ending Mar 10 even though they
	// belong to different calendar weeks.
	store := newFakeStore()
	store.add("bigfoot", "2024-03-05", 10, 0, 0)
	store.add("bigfoot", "2024-03-10", 10, 0, 0)
	store.add("bigfoot", "2024-03-20", 12, 0, 0)
	service := NewRecordsService(store)

	fame, err := service.GetHallOfFame(mustDate(t, "2024-03-20"))
	assert.NoError(t, err)

	assert.Equal(t, models.RecordWeeklyCommits, fame.BestWeekCommits.RecordType)
	assert.Equal(t, 20, fame.BestWeekCommits.Value)
	assert.Equal(t, mustDate(t, "2024-03-10"), fame.BestWeekCommits.Date)
}

func TestRecordChaseProgressClamped(t *testing.T) {
	// Beating the record today still reports at most 1.0
	store := newFakeStore()
	store.add("bigfoot", "2024-03-01", 5, 0, 0)
	store.add("bigfoot", "2024-03-15", 8, 0, 0)
	service := NewRecordsService(store)

	fame, err := service.GetHallOfFame(mustDate(t, "2024-03-15"))
	assert.NoError(t, err)

	assert.Equal(t, 1.0, fame.RecordChaseProgress)
}
