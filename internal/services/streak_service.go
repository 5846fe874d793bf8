package services

import (
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
)

// streakMilestones is the ladder of streak goals shown on the dashboard
var streakMilestones = []int{7, 14, 21, 30, 50, 75, 100, 200, 365}

const fallbackMilestone = 1000

type StreakService struct {
	store CommitStore
}

func NewStreakService(store CommitStore) *StreakService {
	return &StreakService{store: store}
}

// CurrentStreak counts consecutive active days ending at referenceDate,
// including referenceDate itself. An inactive reference day means 0.
func (s *StreakService) CurrentStreak(referenceDate time.Time) (int, error) {
	dates, err := s.store.DistinctActiveDates()
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	active := make(map[string]bool, len(dates))
	for _, date := range dates {
		active[date.Format(models.DateFormat)] = true
	}

	streak := 0
	day := models.DateOnly(referenceDate)
	for active[day.Format(models.DateFormat)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak, nil
}

// LongestStreak returns the longest run of consecutive active days ever
func (s *StreakService) LongestStreak() (int, error) {
	dates, err := s.store.DistinctActiveDates()
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	maxStreak := 1
	currentStreak := 1

	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			currentStreak++
			if currentStreak > maxStreak {
				maxStreak = currentStreak
			}
		} else {
			currentStreak = 1
		}
	}

	return maxStreak, nil
}

// GetStreakData calculates streak state and milestone progress for a date
func (s *StreakService) GetStreakData(referenceDate time.Time) (*models.StreakData, error) {
	currentStreak, err := s.CurrentStreak(referenceDate)
	if err != nil {
		return nil, err
	}

	longestStreak, err := s.LongestStreak()
	if err != nil {
		return nil, err
	}

	nextMilestone := fallbackMilestone
	for _, milestone := range streakMilestones {
		if milestone > currentStreak {
			nextMilestone = milestone
			break
		}
	}

	todayCommits, err := s.store.TotalCommitsByDate(models.DateOnly(referenceDate))
	if err != nil {
		return nil, err
	}

	return &models.StreakData{
		CurrentStreak:   currentStreak,
		LongestStreak:   longestStreak,
		NextMilestone:   nextMilestone,
		DaysToMilestone: nextMilestone - currentStreak,
		GoalProgress:    float64(currentStreak) / float64(nextMilestone),
		IsActiveToday:   todayCommits > 0,
	}, nil
}
