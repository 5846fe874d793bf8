package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
)

// ErrUnsupportedChartType signals a chart type outside daily/weekly/monthly
var ErrUnsupportedChartType = errors.New("unsupported chart type")

// Default period counts per chart type
const (
	DefaultDailyPeriods   = 90
	DefaultWeeklyPeriods  = 13
	DefaultMonthlyPeriods = 3
)

// Trend thresholds: changes within ±10% count as stable
const trendThresholdPct = 10.0

type HistoryService struct {
	store CommitStore
}

func NewHistoryService(store CommitStore) *HistoryService {
	return &HistoryService{store: store}
}

// BuildHistory buckets commit history into labeled periods ending at
// referenceDate and computes peak/average/trend metrics over them.
// A periodCount of zero or less selects the chart type's default.
func (s *HistoryService) BuildHistory(chartType models.ChartType, periodCount int, referenceDate time.Time) (*models.HistoricalData, error) {
	endDate := models.DateOnly(referenceDate)

	switch chartType {
	case models.ChartDaily:
		if periodCount <= 0 {
			periodCount = DefaultDailyPeriods
		}
		return s.buildDailyHistory(periodCount, endDate)
	case models.ChartWeekly:
		if periodCount <= 0 {
			periodCount = DefaultWeeklyPeriods
		}
		return s.buildWeeklyHistory(periodCount, endDate)
	case models.ChartMonthly:
		if periodCount <= 0 {
			periodCount = DefaultMonthlyPeriods
		}
		return s.buildMonthlyHistory(periodCount, endDate)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChartType, chartType)
	}
}

// buildDailyHistory creates one period per calendar day
func (s *HistoryService) buildDailyHistory(days int, endDate time.Time) (*models.HistoricalData, error) {
	startDate := endDate.AddDate(0, 0, -(days - 1))

	totals, err := s.store.DailyTotalsInRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	periods := make([]models.HistoricalPeriod, 0, days)
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		periods = append(periods, models.HistoricalPeriod{
			Label:      day.Format("Jan 02"),
			StartDate:  day,
			EndDate:    day,
			Commits:    totals[day.Format(models.DateFormat)],
			PeriodType: models.ChartDaily,
		})
	}

	return buildHistoricalData(periods, models.ChartDaily, fmt.Sprintf("Last %d days", days)), nil
}

// buildWeeklyHistory creates trailing 7-day windows, the most recent ending
// at endDate, each prior window immediately preceding the next. Labels run
// W1..Wn with the oldest window as W1.
func (s *HistoryService) buildWeeklyHistory(weeks int, endDate time.Time) (*models.HistoricalData, error) {
	periods := make([]models.HistoricalPeriod, 0, weeks)

	for i := 0; i < weeks; i++ {
		weekEnd := endDate.AddDate(0, 0, -7*(weeks-1-i))
		weekStart := weekEnd.AddDate(0, 0, -6)

		weekCommits, err := s.store.CommitsInRange(weekStart, weekEnd)
		if err != nil {
			return nil, err
		}

		periods = append(periods, models.HistoricalPeriod{
			Label:      fmt.Sprintf("W%d", i+1),
			StartDate:  weekStart,
			EndDate:    weekEnd,
			Commits:    weekCommits,
			PeriodType: models.ChartWeekly,
		})
	}

	return buildHistoricalData(periods, models.ChartWeekly, fmt.Sprintf("Last %d weeks", weeks)), nil
}

// buildMonthlyHistory creates calendar-month periods, the most recent month
// truncated to endDate, all prior months in full
func (s *HistoryService) buildMonthlyHistory(months int, endDate time.Time) (*models.HistoricalData, error) {
	label := "January"
	if months > 12 {
		// Disambiguate years on long lookbacks
		label = "Jan 2006"
	}

	periods := make([]models.HistoricalPeriod, 0, months)

	for i := 0; i < months; i++ {
		offset := months - 1 - i
		monthStart := time.Date(endDate.Year(), endDate.Month()-time.Month(offset), 1, 0, 0, 0, 0, time.UTC)

		var monthEnd time.Time
		if offset == 0 {
			monthEnd = endDate
		} else {
			monthEnd = monthStart.AddDate(0, 1, -1)
		}

		monthCommits, err := s.store.CommitsInRange(monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		periods = append(periods, models.HistoricalPeriod{
			Label:      monthStart.Format(label),
			StartDate:  monthStart,
			EndDate:    monthEnd,
			Commits:    monthCommits,
			PeriodType: models.ChartMonthly,
		})
	}

	return buildHistoricalData(periods, models.ChartMonthly, fmt.Sprintf("Last %d months", months)), nil
}

// Heatmap returns per-day commit totals for the trailing window ending at
// referenceDate, zero-filled for inactive days, keyed by YYYY-MM-DD
func (s *HistoryService) Heatmap(days int, referenceDate time.Time) (map[string]int, error) {
	endDate := models.DateOnly(referenceDate)
	startDate := endDate.AddDate(0, 0, -(days - 1))

	totals, err := s.store.DailyTotalsInRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	heatmap := make(map[string]int, days)
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		key := day.Format(models.DateFormat)
		heatmap[key] = totals[key]
	}

	return heatmap, nil
}

// buildHistoricalData computes totals, peak, average and trend for periods
func buildHistoricalData(periods []models.HistoricalPeriod, chartType models.ChartType, rangeLabel string) *models.HistoricalData {
	data := &models.HistoricalData{
		Periods:        periods,
		ChartType:      chartType,
		TrendDirection: models.TrendStable,
		DateRangeLabel: rangeLabel,
	}
	if len(periods) == 0 {
		return data
	}

	counts := make([]int, len(periods))
	for i, period := range periods {
		counts[i] = period.Commits
		data.TotalCommits += period.Commits
		if period.Commits > data.PeakCommits {
			data.PeakCommits = period.Commits
		}
	}
	data.AverageCommits = float64(data.TotalCommits) / float64(len(periods))

	data.TrendDirection, data.TrendPercentage = calculateTrend(counts)

	return data
}

// calculateTrend splits the series at its midpoint and compares half means.
// The reported magnitude is always non-negative; the sign lives in the
// direction.
func calculateTrend(values []int) (models.TrendDirection, float64) {
	if len(values) < 2 {
		return models.TrendStable, 0.0
	}

	midpoint := len(values) / 2
	firstSum, secondSum := 0, 0
	for _, v := range values[:midpoint] {
		firstSum += v
	}
	for _, v := range values[midpoint:] {
		secondSum += v
	}

	firstMean := float64(firstSum) / float64(midpoint)
	secondMean := float64(secondSum) / float64(len(values)-midpoint)

	if firstMean == 0 {
		if secondMean > 0 {
			return models.TrendUp, 100.0
		}
		return models.TrendStable, 0.0
	}

	pct := (secondMean - firstMean) / firstMean * 100

	switch {
	case pct > trendThresholdPct:
		return models.TrendUp, pct
	case pct < -trendThresholdPct:
		return models.TrendDown, -pct
	default:
		if pct < 0 {
			pct = -pct
		}
		return models.TrendStable, pct
	}
}
