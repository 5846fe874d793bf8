package services

import (
	"sort"
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
)

// fakeStore is an in-memory CommitStore for service tests
type fakeStore struct {
	records []*models.CommitRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

// add inserts a record for repo on the given YYYY-MM-DD date
func (f *fakeStore) add(repo, date string, count, linesAdded, linesDeleted int) {
	day, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	f.records = append(f.records, models.NewCommitRecord(repo, day, count, linesAdded, linesDeleted))
}

func (f *fakeStore) TotalCommitsByDate(date time.Time) (int, error) {
	total := 0
	for _, r := range f.records {
		if r.Date.Equal(models.DateOnly(date)) {
			total += r.Count
		}
	}
	return total, nil
}

func (f *fakeStore) CommitsInRange(startDate, endDate time.Time) (int, error) {
	total := 0
	for _, r := range f.records {
		if !r.Date.Before(models.DateOnly(startDate)) && !r.Date.After(models.DateOnly(endDate)) {
			total += r.Count
		}
	}
	return total, nil
}

func (f *fakeStore) TotalLinesByDate(date time.Time) (int, error) {
	total := 0
	for _, r := range f.records {
		if r.Date.Equal(models.DateOnly(date)) {
			total += r.TotalLines()
		}
	}
	return total, nil
}

func (f *fakeStore) GetByDateRange(startDate, endDate time.Time) ([]*models.CommitRecord, error) {
	var records []*models.CommitRecord
	for _, r := range f.records {
		if !r.Date.Before(models.DateOnly(startDate)) && !r.Date.After(models.DateOnly(endDate)) {
			records = append(records, r)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].Repo < records[j].Repo
	})
	return records, nil
}

func (f *fakeStore) DistinctActiveDates() ([]time.Time, error) {
	seen := make(map[time.Time]bool)
	for _, r := range f.records {
		if r.Count > 0 {
			seen[r.Date] = true
		}
	}
	dates := make([]time.Time, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func (f *fakeStore) DailyTotalsInRange(startDate, endDate time.Time) (map[string]int, error) {
	totals := make(map[string]int)
	for _, r := range f.records {
		if !r.Date.Before(models.DateOnly(startDate)) && !r.Date.After(models.DateOnly(endDate)) && r.Count > 0 {
			totals[r.Date.Format(models.DateFormat)] += r.Count
		}
	}
	return totals, nil
}

func (f *fakeStore) BestDayByCommits() (time.Time, int, error) {
	return f.bestDay(func(r *models.CommitRecord) int { return r.Count })
}

func (f *fakeStore) BestDayByLines() (time.Time, int, error) {
	return f.bestDay(func(r *models.CommitRecord) int { return r.TotalLines() })
}

func (f *fakeStore) bestDay(metric func(*models.CommitRecord) int) (time.Time, int, error) {
	totals := make(map[time.Time]int)
	for _, r := range f.records {
		totals[r.Date] += metric(r)
	}
	var bestDate time.Time
	best := -1
	for date, total := range totals {
		if total > best || (total == best && date.Before(bestDate)) {
			best = total
			bestDate = date
		}
	}
	if best < 0 {
		return time.Time{}, 0, nil
	}
	return bestDate, best, nil
}

func (f *fakeStore) BestRollingWeekByCommits() (time.Time, int, error) {
	dates, _ := f.DistinctActiveDates()
	if len(dates) == 0 {
		return time.Time{}, 0, nil
	}

	var bestDate time.Time
	best := -1
	for _, end := range dates {
		total, _ := f.CommitsInRange(end.AddDate(0, 0, -6), end)
		if total > best {
			best = total
			bestDate = end
		}
	}
	return bestDate, best, nil
}

func (f *fakeStore) GetRepositories() ([]string, error) {
	seen := make(map[string]bool)
	var repos []string
	for _, r := range f.records {
		if !seen[r.Repo] {
			seen[r.Repo] = true
			repos = append(repos, r.Repo)
		}
	}
	sort.Strings(repos)
	return repos, nil
}
