package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/bigfootdev/bigfoot/internal/models"
)

func init() {
	color.NoColor = true
}

func TestProgressBar(t *testing.T) {
	testCases := []struct {
		name     string
		ratio    float64
		expected string
	}{
		{name: "Empty", ratio: 0, expected: "░░░░░░░░░░░░░░░░░░░░   0%"},
		{name: "Half", ratio: 0.5, expected: "██████████░░░░░░░░░░  50%"},
		{name: "Full", ratio: 1, expected: "████████████████████ 100%"},
		{name: "Clamped above", ratio: 1.5, expected: "████████████████████ 100%"},
		{name: "Clamped below", ratio: -0.2, expected: "░░░░░░░░░░░░░░░░░░░░   0%"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, progressBar(tc.ratio))
		})
	}
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", sparkline(nil))
	assert.Equal(t, "▁▁▁", sparkline([]int{0, 0, 0}))
	assert.Equal(t, "▁█", sparkline([]int{0, 10}))
	assert.Len(t, []rune(sparkline([]int{1, 2, 3, 4, 5, 6, 7})), 7)
}

func TestHistoryBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", chartBarWidth), historyBar(0, 0))
	assert.Equal(t, strings.Repeat("█", chartBarWidth), historyBar(10, 10))

	// Tiny nonzero values still show at least one block
	partial := historyBar(1, 1000)
	assert.True(t, strings.HasPrefix(partial, "█"))
}

func TestRenderStreak(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewRenderer(&buf)

	renderer.RenderStreak(&models.StreakData{
		CurrentStreak:   5,
		LongestStreak:   12,
		NextMilestone:   7,
		DaysToMilestone: 2,
		GoalProgress:    5.0 / 7.0,
		IsActiveToday:   true,
	})

	out := buf.String()
	assert.Contains(t, out, "Current: 5 days")
	assert.Contains(t, out, "active today")
	assert.Contains(t, out, "Longest: 12 days")
	assert.Contains(t, out, "Next milestone: 7 days (2 to go)")
}

func TestRenderAchievementsCounts(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewRenderer(&buf)

	progress := 0.5
	renderer.RenderAchievements([]*models.Achievement{
		{ID: "a", Name: "A", Emoji: "🔥", Description: "first", Unlocked: true},
		{ID: "b", Name: "B", Emoji: "⚡", Description: "second", Progress: &progress},
	})

	out := buf.String()
	assert.Contains(t, out, "(1/2 unlocked)")
	assert.Contains(t, out, "unlocked")
	assert.Contains(t, out, "50%")
}

func TestRenderTrackResultEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewRenderer(&buf)

	renderer.RenderTrackResult(&models.TrackResult{
		Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}, nil)

	assert.Contains(t, buf.String(), "No commits found")
}

func TestRenderHistoryChart(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewRenderer(&buf)

	renderer.RenderHistoryChart(&models.HistoricalData{
		ChartType: models.ChartWeekly,
		Periods: []models.HistoricalPeriod{
			{Label: "W1", Commits: 3},
			{Label: "W2", Commits: 6},
		},
		TotalCommits:    9,
		PeakCommits:     6,
		AverageCommits:  4.5,
		TrendDirection:  models.TrendUp,
		TrendPercentage: 100,
		DateRangeLabel:  "Mar 04 - Mar 17",
	})

	out := buf.String()
	assert.Contains(t, out, "W1")
	assert.Contains(t, out, "W2")
	assert.Contains(t, out, "Total: 9 | Peak: 6 | Average: 4.5")
	assert.Contains(t, out, "↑ 100.0%")
}
