// Package display renders analytics to the terminal and to HTML charts.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bigfootdev/bigfoot/internal/models"
)

const progressBarWidth = 20

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.Faint)
)

// Renderer writes formatted analytics sections to a single output stream
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderDashboard prints the combined motivational dashboard
func (r *Renderer) RenderDashboard(
	streak *models.StreakData,
	momentum *models.MomentumMetrics,
	hallOfFame *models.HallOfFame,
	goals *models.GoalProgress,
	message string,
) {
	headerColor.Fprintln(r.out, "🦶 BIGFOOT DASHBOARD")
	fmt.Fprintln(r.out)

	r.RenderStreak(streak)
	fmt.Fprintln(r.out)
	r.RenderMomentum(momentum)
	fmt.Fprintln(r.out)
	r.RenderGoals(goals)
	fmt.Fprintln(r.out)
	r.RenderRecords(hallOfFame)

	if message != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, message)
	}
}

// RenderStreak prints current and longest streak with milestone progress
func (r *Renderer) RenderStreak(streak *models.StreakData) {
	headerColor.Fprintln(r.out, "🔥 Streak")

	status := "inactive today"
	statusColor := warnColor
	if streak.IsActiveToday {
		status = "active today"
		statusColor = successColor
	}

	fmt.Fprintf(r.out, "  Current: %d days (", streak.CurrentStreak)
	statusColor.Fprint(r.out, status)
	fmt.Fprintln(r.out, ")")
	fmt.Fprintf(r.out, "  Longest: %d days\n", streak.LongestStreak)
	fmt.Fprintf(r.out, "  Next milestone: %d days (%d to go)\n", streak.NextMilestone, streak.DaysToMilestone)
	fmt.Fprintf(r.out, "  %s\n", progressBar(streak.GoalProgress))
}

// RenderMomentum prints week-over-week analysis and the daily trend sparkline
func (r *Renderer) RenderMomentum(momentum *models.MomentumMetrics) {
	headerColor.Fprintln(r.out, "📈 Momentum")

	change := fmt.Sprintf("%+.1f%%", momentum.WeekOverWeekChange)
	changeColor := successColor
	if momentum.WeekOverWeekChange < 0 {
		changeColor = warnColor
	}

	fmt.Fprintf(r.out, "  This week: %d commits (last week: %d, ", momentum.ThisWeekCommits, momentum.LastWeekCommits)
	changeColor.Fprint(r.out, change)
	fmt.Fprintln(r.out, ")")
	fmt.Fprintf(r.out, "  Daily average: %.1f | Active days: %d/7\n", momentum.AverageDaily, momentum.ConsistencyScore)
	fmt.Fprintf(r.out, "  Trend: %s\n", sparkline(momentum.DailyTrend))
	fmt.Fprintf(r.out, "  Level: %s\n", performanceLabel(momentum.PerformanceLevel))
}

// RenderGoals prints daily, weekly and monthly goal progress bars
func (r *Renderer) RenderGoals(goals *models.GoalProgress) {
	headerColor.Fprintln(r.out, "🎯 Goals")
	fmt.Fprintf(r.out, "  Daily   %s %d/%d\n", progressBar(goals.DailyProgress), goals.DailyCurrent, goals.DailyGoal)
	fmt.Fprintf(r.out, "  Weekly  %s %d/%d\n", progressBar(goals.WeeklyProgress), goals.WeeklyCurrent, goals.WeeklyGoal)
	fmt.Fprintf(r.out, "  Monthly %s %d/%d\n", progressBar(goals.MonthlyProgress), goals.MonthlyCurrent, goals.MonthlyGoal)
}

// RenderRecords prints the hall of fame table and today's record chase
func (r *Renderer) RenderRecords(hallOfFame *models.HallOfFame) {
	headerColor.Fprintln(r.out, "🏆 Hall of Fame")

	tbl := table.NewWriter()
	tbl.SetOutputMirror(r.out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Record", "Value", "Date"})

	tbl.AppendRow(recordRow("Most commits in a day", hallOfFame.BestSingleDayCommits))
	tbl.AppendRow(recordRow("Most lines in a day", hallOfFame.BestSingleDayLines))
	tbl.AppendRow(recordRow("Best 7-day stretch", hallOfFame.BestWeekCommits))
	tbl.Render()

	fmt.Fprintf(r.out, "  Today: %d commits, %s lines\n",
		hallOfFame.CurrentDayCommits, humanize.Comma(int64(hallOfFame.CurrentDayLines)))
	fmt.Fprintf(r.out, "  Record chase: %s\n", progressBar(hallOfFame.RecordChaseProgress))
}

// RenderAchievements prints the full catalogue, unlocked entries first style
// kept flat so locked progress stays visible
func (r *Renderer) RenderAchievements(achievements []*models.Achievement) {
	unlocked := 0
	for _, achievement := range achievements {
		if achievement.Unlocked {
			unlocked++
		}
	}

	headerColor.Fprintf(r.out, "🏅 Achievements (%d/%d unlocked)\n", unlocked, len(achievements))

	tbl := table.NewWriter()
	tbl.SetOutputMirror(r.out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"", "Achievement", "Description", "Status"})

	for _, achievement := range achievements {
		status := dimColor.Sprint("locked")
		if achievement.Unlocked {
			status = successColor.Sprint("unlocked")
		} else if achievement.Progress != nil {
			status = progressBar(*achievement.Progress)
		}
		tbl.AppendRow(table.Row{achievement.Emoji, achievement.Name, achievement.Description, status})
	}

	tbl.Render()
}

// RenderTrackResult prints the per-repo outcome of a tracking run
func (r *Renderer) RenderTrackResult(result *models.TrackResult, rewards []*models.Reward) {
	headerColor.Fprintf(r.out, "📦 Tracked %s\n", result.Date.Format("Mon, Jan 2 2006"))

	if len(result.Repositories) == 0 {
		dimColor.Fprintln(r.out, "  No commits found for this date")
		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(r.out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Repository", "Commits", "Added", "Deleted", "Files"})

	for _, repo := range result.Repositories {
		tbl.AppendRow(table.Row{
			repo.Repo, repo.Count,
			humanize.Comma(int64(repo.LinesAdded)), humanize.Comma(int64(repo.LinesDeleted)),
			repo.FilesChanged,
		})
	}

	tbl.AppendFooter(table.Row{"Total", result.TotalCommits, "", "", ""})
	tbl.Render()

	for _, reward := range rewards {
		successColor.Fprintf(r.out, "  %s\n", reward.Message)
	}
}

// RenderRewards prints recent rewards, newest first
func (r *Renderer) RenderRewards(rewards []*models.Reward) {
	headerColor.Fprintln(r.out, "🎁 Recent Rewards")

	if len(rewards) == 0 {
		dimColor.Fprintln(r.out, "  Nothing yet. Keep committing!")
		return
	}

	for _, reward := range rewards {
		fmt.Fprintf(r.out, "  %s  %s\n", reward.Date.Format(models.DateFormat), reward.Message)
	}
}

func recordRow(label string, record models.PersonalRecord) table.Row {
	date := "-"
	if !record.Date.IsZero() && record.Value > 0 {
		date = record.Date.Format(models.DateFormat)
	}
	return table.Row{label, humanize.Comma(int64(record.Value)), date}
}

// progressBar renders a fixed-width unicode bar for a ratio in [0, 1]
func progressBar(ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * progressBarWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	return fmt.Sprintf("%s %3.0f%%", bar, ratio*100)
}

// sparkline renders a compact block-character trend of daily counts
func sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune("▁▂▃▄▅▆▇█")

	max := 0
	for _, value := range values {
		if value > max {
			max = value
		}
	}
	if max == 0 {
		return strings.Repeat("▁", len(values))
	}

	var sb strings.Builder
	for _, value := range values {
		index := value * (len(blocks) - 1) / max
		sb.WriteRune(blocks[index])
	}
	return sb.String()
}

func performanceLabel(level models.PerformanceLevel) string {
	switch level {
	case models.PerformanceLegendary:
		return "🚀 LEGENDARY"
	case models.PerformanceCrushing:
		return "🔥 CRUSHING IT"
	case models.PerformanceBuilding:
		return "💪 BUILDING MOMENTUM"
	default:
		return "🌱 GETTING STARTED"
	}
}
