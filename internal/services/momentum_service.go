package services

import (
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
)

const trendDays = 7

type MomentumService struct {
	store CommitStore
}

func NewMomentumService(store CommitStore) *MomentumService {
	return &MomentumService{store: store}
}

// Analyze computes momentum metrics for the 7-day window ending at
// referenceDate and the 7 days immediately before it
func (s *MomentumService) Analyze(referenceDate time.Time) (*models.MomentumMetrics, error) {
	endDate := models.DateOnly(referenceDate)

	// This week: the 7 days ending at the reference date inclusive
	weekStart := endDate.AddDate(0, 0, -(trendDays - 1))
	thisWeek, err := s.store.CommitsInRange(weekStart, endDate)
	if err != nil {
		return nil, err
	}

	// Last week: the 7 days immediately preceding, no gap and no overlap
	lastWeekEnd := weekStart.AddDate(0, 0, -1)
	lastWeekStart := lastWeekEnd.AddDate(0, 0, -(trendDays - 1))
	lastWeek, err := s.store.CommitsInRange(lastWeekStart, lastWeekEnd)
	if err != nil {
		return nil, err
	}

	weekChange := weekOverWeekChange(thisWeek, lastWeek)

	totals, err := s.store.DailyTotalsInRange(weekStart, endDate)
	if err != nil {
		return nil, err
	}

	dailyTrend := make([]int, 0, trendDays)
	consistencyDays := 0
	sum := 0
	for i := 0; i < trendDays; i++ {
		day := weekStart.AddDate(0, 0, i)
		dayCommits := totals[day.Format(models.DateFormat)]
		dailyTrend = append(dailyTrend, dayCommits)
		sum += dayCommits
		if dayCommits > 0 {
			consistencyDays++
		}
	}

	averageDaily := float64(sum) / float64(trendDays)

	return &models.MomentumMetrics{
		ThisWeekCommits:    thisWeek,
		LastWeekCommits:    lastWeek,
		WeekOverWeekChange: weekChange,
		DailyTrend:         dailyTrend,
		AverageDaily:       averageDaily,
		ConsistencyScore:   consistencyDays,
		PerformanceLevel:   categorizePerformance(thisWeek, consistencyDays, averageDaily),
	}, nil
}

// weekOverWeekChange returns the percentage change between two weekly
// totals. A zero previous week yields 100 when activity started, else 0.
func weekOverWeekChange(thisWeek, lastWeek int) float64 {
	if lastWeek > 0 {
		return float64(thisWeek-lastWeek) / float64(lastWeek) * 100
	}
	if thisWeek > 0 {
		return 100.0
	}
	return 0.0
}

// categorizePerformance runs the strictly ordered threshold cascade,
// first match wins
func categorizePerformance(weekCommits, consistency int, dailyAvg float64) models.PerformanceLevel {
	switch {
	case weekCommits >= 50 && consistency >= 6 && dailyAvg >= 7:
		return models.PerformanceLegendary
	case weekCommits >= 25 && consistency >= 5 && dailyAvg >= 4:
		return models.PerformanceCrushing
	case weekCommits >= 10 && consistency >= 3 && dailyAvg >= 2:
		return models.PerformanceBuilding
	default:
		return models.PerformanceStarting
	}
}
