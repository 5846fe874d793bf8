package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bigfootdev/bigfoot/internal/models"
)

func TestWeekOverWeekChange(t *testing.T) {
	testCases := []struct {
		name     string
		thisWeek int
		lastWeek int
		expected float64
	}{
		{name: "Growth", thisWeek: 30, lastWeek: 20, expected: 50.0},
		{name: "Started from nothing", thisWeek: 10, lastWeek: 0, expected: 100.0},
		{name: "No activity at all", thisWeek: 0, lastWeek: 0, expected: 0.0},
		{name: "Decline", thisWeek: 10, lastWeek: 20, expected: -50.0},
		{name: "Flat", thisWeek: 20, lastWeek: 20, expected: 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, weekOverWeekChange(tc.thisWeek, tc.lastWeek), 1e-9)
		})
	}
}

func TestCategorizePerformance(t *testing.T) {
	testCases := []struct {
		name        string
		weekCommits int
		consistency int
		dailyAvg    float64
		expected    models.PerformanceLevel
	}{
		{
			name:        "Legendary when every threshold holds",
			weekCommits: 50, consistency: 6, dailyAvg: 7,
			expected: models.PerformanceLegendary,
		},
		{
			name:        "High commits with weak average falls to building",
			weekCommits: 50, consistency: 6, dailyAvg: 3,
			expected: models.PerformanceBuilding,
		},
		{
			name:        "Crushing tier",
			weekCommits: 25, consistency: 5, dailyAvg: 4,
			expected: models.PerformanceCrushing,
		},
		{
			name:        "Building tier",
			weekCommits: 10, consistency: 3, dailyAvg: 2,
			expected: models.PerformanceBuilding,
		},
		{
			name:        "Starting when nothing matches",
			weekCommits: 5, consistency: 2, dailyAvg: 0.5,
			expected: models.PerformanceStarting,
		},
		{
			name:        "Consistency alone is not enough",
			weekCommits: 9, consistency: 7, dailyAvg: 1.2,
			expected: models.PerformanceStarting,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level := categorizePerformance(tc.weekCommits, tc.consistency, tc.dailyAvg)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestAnalyzeWindows(t *testing.T) {
	// Reference 2024-01-14: this week is Jan 8-14, last week Jan 1-7.
	// The two windows never overlap and span exactly 14 consecutive days.
	store := newFakeStore()
	store.add("bigfoot", "2024-01-01", 2, 0, 0)  // last week
	store.add("bigfoot", "2024-01-07", 3, 0, 0)  // last week boundary
	store.add("bigfoot", "2024-01-08", 4, 0, 0)  // this week boundary
	store.add("bigfoot", "2024-01-14", 6, 0, 0)  // reference day
	store.add("bigfoot", "2023-12-31", 99, 0, 0) // outside both windows
	service := NewMomentumService(store)

	metrics, err := service.Analyze(mustDate(t, "2024-01-14"))
	assert.NoError(t, err)

	assert.Equal(t, 10, metrics.ThisWeekCommits)
	assert.Equal(t, 5, metrics.LastWeekCommits)
	assert.InDelta(t, 100.0, metrics.WeekOverWeekChange, 1e-9)

	assert.Len(t, metrics.DailyTrend, 7)
	assert.Equal(t, []int{4, 0, 0, 0, 0, 0, 6}, metrics.DailyTrend)
	assert.Equal(t, 2, metrics.ConsistencyScore)
	assert.InDelta(t, 10.0/7.0, metrics.AverageDaily, 1e-9)
}

func TestAnalyzeEmptyStore(t *testing.T) {
	service := NewMomentumService(newFakeStore())

	metrics, err := service.Analyze(mustDate(t, "2024-01-14"))
	assert.NoError(t, err)

	assert.Equal(t, 0, metrics.ThisWeekCommits)
	assert.Equal(t, 0, metrics.LastWeekCommits)
	assert.Equal(t, 0.0, metrics.WeekOverWeekChange)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, metrics.DailyTrend)
	assert.Equal(t, 0, metrics.ConsistencyScore)
	assert.Equal(t, 0.0, metrics.AverageDaily)
	assert.Equal(t, models.PerformanceStarting, metrics.PerformanceLevel)
}

func TestAnalyzePerformanceLevelFromStore(t *testing.T) {
	// 8 commits every day of the week: 56 weekly, 7 consistent, 8 average
	store := newFakeStore()
	day := mustDate(t, "2024-01-08")
	for i := 0; i < 7; i++ {
		store.add("bigfoot", day.AddDate(0, 0, i).Format(models.DateFormat), 8, 0, 0)
	}
	service := NewMomentumService(store)

	metrics, err := service.Analyze(mustDate(t, "2024-01-14"))
	assert.NoError(t, err)

	assert.Equal(t, 56, metrics.ThisWeekCommits)
	assert.Equal(t, 7, metrics.ConsistencyScore)
	assert.Equal(t, models.PerformanceLegendary, metrics.PerformanceLevel)
}
