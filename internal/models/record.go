package models

import "time"

// Personal record types
const (
	RecordDailyCommits  = "daily_commits"
	RecordDailyLines    = "daily_lines"
	RecordWeeklyCommits = "weekly_commits"
)

// PersonalRecord is the best-ever value of a single metric
type PersonalRecord struct {
	RecordType  string    `json:"record_type"`
	Value       int       `json:"value"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// HallOfFame collects personal records and today's chase progress
type HallOfFame struct {
	BestSingleDayCommits PersonalRecord `json:"best_single_day_commits"`
	BestSingleDayLines   PersonalRecord `json:"best_single_day_lines"`
	BestWeekCommits      PersonalRecord `json:"best_week_commits"`
	CurrentDayCommits    int            `json:"current_day_commits"`
	CurrentDayLines      int            `json:"current_day_lines"`
	RecordChaseProgress  float64        `json:"record_chase_progress"`
}
