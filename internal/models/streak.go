package models

// StreakData holds streak information and milestone progress
type StreakData struct {
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	NextMilestone   int     `json:"next_milestone"`
	DaysToMilestone int     `json:"days_to_milestone"`
	GoalProgress    float64 `json:"goal_progress"`
	IsActiveToday   bool    `json:"is_active_today"`
}
