package services

import (
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
)

type GoalService struct {
	store CommitStore
}

func NewGoalService(store CommitStore) *GoalService {
	return &GoalService{store: store}
}

// GetGoalProgress measures current commit counts against daily, weekly and
// monthly goals. The weekly window is the 7 days ending at referenceDate;
// the monthly window is the calendar month up to referenceDate.
func (s *GoalService) GetGoalProgress(dailyGoal, weeklyGoal, monthlyGoal int, referenceDate time.Time) (*models.GoalProgress, error) {
	endDate := models.DateOnly(referenceDate)

	dailyCurrent, err := s.store.TotalCommitsByDate(endDate)
	if err != nil {
		return nil, err
	}

	weekStart := endDate.AddDate(0, 0, -6)
	weeklyCurrent, err := s.store.CommitsInRange(weekStart, endDate)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(endDate.Year(), endDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthlyCurrent, err := s.store.CommitsInRange(monthStart, endDate)
	if err != nil {
		return nil, err
	}

	return &models.GoalProgress{
		DailyGoal:       dailyGoal,
		WeeklyGoal:      weeklyGoal,
		MonthlyGoal:     monthlyGoal,
		DailyCurrent:    dailyCurrent,
		WeeklyCurrent:   weeklyCurrent,
		MonthlyCurrent:  monthlyCurrent,
		DailyProgress:   goalRatio(dailyCurrent, dailyGoal),
		WeeklyProgress:  goalRatio(weeklyCurrent, weeklyGoal),
		MonthlyProgress: goalRatio(monthlyCurrent, monthlyGoal),
	}, nil
}

// goalRatio clamps current/goal to [0, 1]; a zero goal yields 0
func goalRatio(current, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	ratio := float64(current) / float64(goal)
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}
