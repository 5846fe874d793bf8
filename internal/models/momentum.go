package models

// PerformanceLevel categorizes weekly activity for motivational messaging
type PerformanceLevel string

const (
	PerformanceStarting  PerformanceLevel = "starting"
	PerformanceBuilding  PerformanceLevel = "building"
	PerformanceCrushing  PerformanceLevel = "crushing"
	PerformanceLegendary PerformanceLevel = "legendary"
)

// MomentumMetrics holds week-over-week trend analysis
type MomentumMetrics struct {
	ThisWeekCommits    int              `json:"this_week_commits"`
	LastWeekCommits    int              `json:"last_week_commits"`
	WeekOverWeekChange float64          `json:"week_over_week_change"`
	DailyTrend         []int            `json:"daily_trend"` // oldest to newest
	AverageDaily       float64          `json:"average_daily"`
	ConsistencyScore   int              `json:"consistency_score"` // days active out of 7
	PerformanceLevel   PerformanceLevel `json:"performance_level"`
}
