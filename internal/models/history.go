package models

import "time"

// ChartType selects the bucketing granularity for historical charts
type ChartType string

const (
	ChartDaily   ChartType = "daily"
	ChartWeekly  ChartType = "weekly"
	ChartMonthly ChartType = "monthly"
)

// TrendDirection classifies how activity moved over a lookback window
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// HistoricalPeriod is one labeled bucket of commit activity
type HistoricalPeriod struct {
	Label      string    `json:"label"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Commits    int       `json:"commits"`
	PeriodType ChartType `json:"period_type"`
}

// HistoricalData holds chart periods and their aggregate analysis
type HistoricalData struct {
	Periods         []HistoricalPeriod `json:"periods"` // oldest first
	ChartType       ChartType          `json:"chart_type"`
	TotalCommits    int                `json:"total_commits"`
	PeakCommits     int                `json:"peak_commits"`
	AverageCommits  float64            `json:"average_commits"`
	TrendDirection  TrendDirection     `json:"trend_direction"`
	TrendPercentage float64            `json:"trend_percentage"`
	DateRangeLabel  string             `json:"date_range_label"`
}
