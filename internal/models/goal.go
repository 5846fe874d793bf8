package models

// GoalProgress tracks progress toward daily, weekly and monthly commit goals
type GoalProgress struct {
	DailyGoal       int     `json:"daily_goal"`
	WeeklyGoal      int     `json:"weekly_goal"`
	MonthlyGoal     int     `json:"monthly_goal"`
	DailyCurrent    int     `json:"daily_current"`
	WeeklyCurrent   int     `json:"weekly_current"`
	MonthlyCurrent  int     `json:"monthly_current"`
	DailyProgress   float64 `json:"daily_progress"`
	WeeklyProgress  float64 `json:"weekly_progress"`
	MonthlyProgress float64 `json:"monthly_progress"`
}
