package display

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bigfootdev/bigfoot/internal/models"
)

const chartBarWidth = 40

// RenderHistoryChart prints a horizontal bar chart of historical periods
// together with the aggregate summary line
func (r *Renderer) RenderHistoryChart(data *models.HistoricalData) {
	headerColor.Fprintf(r.out, "📊 Commit History (%s)\n", data.ChartType)
	dimColor.Fprintf(r.out, "  %s\n", data.DateRangeLabel)
	fmt.Fprintln(r.out)

	labelWidth := 0
	for _, period := range data.Periods {
		if len(period.Label) > labelWidth {
			labelWidth = len(period.Label)
		}
	}

	for _, period := range data.Periods {
		fmt.Fprintf(r.out, "  %-*s %s %d\n",
			labelWidth, period.Label, historyBar(period.Commits, data.PeakCommits), period.Commits)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "  Total: %d | Peak: %d | Average: %.1f | Trend: %s\n",
		data.TotalCommits, data.PeakCommits, data.AverageCommits, trendLabel(data))
}

// WriteHistoryHTML renders the same periods as an interactive HTML bar chart
func WriteHistoryHTML(data *models.HistoricalData, path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Bigfoot Commit History",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Commit History (%s)", data.ChartType),
			Subtitle: data.DateRangeLabel,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(data.Periods))
	values := make([]opts.BarData, len(data.Periods))
	for i, period := range data.Periods {
		labels[i] = period.Label
		values[i] = opts.BarData{Value: period.Commits}
	}

	bar.SetXAxis(labels).AddSeries("Commits", values)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer file.Close()

	return bar.Render(file)
}

// RenderHeatmap prints a calendar grid of daily activity, one row per
// weekday and one column per week, newest week on the right
func (r *Renderer) RenderHeatmap(totals map[string]int, days int, referenceDate time.Time) {
	headerColor.Fprintf(r.out, "🗓  Activity (last %d days)\n", days)

	endDate := models.DateOnly(referenceDate)
	startDate := endDate.AddDate(0, 0, -(days - 1))

	// Align the first column to the Monday on or before the start date
	offset := (int(startDate.Weekday()) + 6) % 7
	gridStart := startDate.AddDate(0, 0, -offset)
	weeks := int(endDate.Sub(gridStart).Hours()/24)/7 + 1

	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for row, name := range weekdays {
		fmt.Fprintf(r.out, "  %s ", name)
		for week := 0; week < weeks; week++ {
			day := gridStart.AddDate(0, 0, week*7+row)
			if day.Before(startDate) || day.After(endDate) {
				fmt.Fprint(r.out, "  ")
				continue
			}
			fmt.Fprintf(r.out, "%s ", intensityGlyph(totals[day.Format(models.DateFormat)]))
		}
		fmt.Fprintln(r.out)
	}
}

func intensityGlyph(count int) string {
	switch {
	case count == 0:
		return "·"
	case count <= 2:
		return "░"
	case count <= 5:
		return "▒"
	case count <= 9:
		return "▓"
	default:
		return "█"
	}
}

// historyBar scales one period against the peak so the tallest bar is full width
func historyBar(value, peak int) string {
	if peak <= 0 {
		return strings.Repeat("░", chartBarWidth)
	}

	filled := value * chartBarWidth / peak
	if value > 0 && filled == 0 {
		filled = 1
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", chartBarWidth-filled)
}

func trendLabel(data *models.HistoricalData) string {
	switch data.TrendDirection {
	case models.TrendUp:
		return fmt.Sprintf("↑ %.1f%%", data.TrendPercentage)
	case models.TrendDown:
		return fmt.Sprintf("↓ %.1f%%", data.TrendPercentage)
	default:
		return "→ stable"
	}
}
