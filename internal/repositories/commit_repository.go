package repositories

import (
	"database/sql"
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
)

type CommitRepository struct {
	db *sql.DB
}

func NewCommitRepository(db *sql.DB) *CommitRepository {
	return &CommitRepository{db: db}
}

// Upsert inserts a commit record or replaces the existing record for the
// same (repo, date) pair. Last write wins, counts never accumulate.
func (r *CommitRepository) Upsert(record *models.CommitRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO commits (id, repo, date, count, lines_added, lines_deleted)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(repo, date)
		DO UPDATE SET
			count = EXCLUDED.count,
			lines_added = EXCLUDED.lines_added,
			lines_deleted = EXCLUDED.lines_deleted,
			collected_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query,
		record.ID, record.Repo, record.Date.Format(models.DateFormat),
		record.Count, record.LinesAdded, record.LinesDeleted,
	)

	return err
}

// GetByDate retrieves all commit records for a specific date
func (r *CommitRepository) GetByDate(date time.Time) ([]*models.CommitRecord, error) {
	query := `
		SELECT id, repo, date, count, lines_added, lines_deleted
		FROM commits
		WHERE date = ?
		ORDER BY repo
	`

	rows, err := r.db.Query(query, date.Format(models.DateFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCommitRecords(rows)
}

// GetByDateRange retrieves commit records for an inclusive date range,
// ordered by date descending then repo
func (r *CommitRepository) GetByDateRange(startDate, endDate time.Time) ([]*models.CommitRecord, error) {
	query := `
		SELECT id, repo, date, count, lines_added, lines_deleted
		FROM commits
		WHERE date BETWEEN ? AND ?
		ORDER BY date DESC, repo
	`

	rows, err := r.db.Query(query, startDate.Format(models.DateFormat), endDate.Format(models.DateFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCommitRecords(rows)
}

// TotalCommitsByDate returns the commit total across all repos for a date
func (r *CommitRepository) TotalCommitsByDate(date time.Time) (int, error) {
	query := `SELECT COALESCE(SUM(count), 0) FROM commits WHERE date = ?`

	var total int
	err := r.db.QueryRow(query, date.Format(models.DateFormat)).Scan(&total)
	return total, err
}

// CommitsInRange returns the commit total over an inclusive date range
func (r *CommitRepository) CommitsInRange(startDate, endDate time.Time) (int, error) {
	query := `SELECT COALESCE(SUM(count), 0) FROM commits WHERE date BETWEEN ? AND ?`

	var total int
	err := r.db.QueryRow(query, startDate.Format(models.DateFormat), endDate.Format(models.DateFormat)).Scan(&total)
	return total, err
}

// TotalLinesByDate returns lines added plus deleted across all repos for a date
func (r *CommitRepository) TotalLinesByDate(date time.Time) (int, error) {
	query := `SELECT COALESCE(SUM(lines_added + lines_deleted), 0) FROM commits WHERE date = ?`

	var total int
	err := r.db.QueryRow(query, date.Format(models.DateFormat)).Scan(&total)
	return total, err
}

// DistinctActiveDates returns all dates with at least one commit, ascending
func (r *CommitRepository) DistinctActiveDates() ([]time.Time, error) {
	query := `
		SELECT DISTINCT date
		FROM commits
		WHERE count > 0
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		date, err := models.ParseDate(value)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}

	return dates, rows.Err()
}

// DailyTotalsInRange returns per-day commit totals over an inclusive range,
// keyed by YYYY-MM-DD. Days without activity are absent.
func (r *CommitRepository) DailyTotalsInRange(startDate, endDate time.Time) (map[string]int, error) {
	query := `
		SELECT date, SUM(count)
		FROM commits
		WHERE date BETWEEN ? AND ?
		GROUP BY date
	`

	rows, err := r.db.Query(query, startDate.Format(models.DateFormat), endDate.Format(models.DateFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var date string
		var total int
		if err := rows.Scan(&date, &total); err != nil {
			return nil, err
		}
		totals[date] = total
	}

	return totals, rows.Err()
}

// BestDayByCommits returns the date with the highest daily commit total.
// A zero date and zero value mean the store is empty.
func (r *CommitRepository) BestDayByCommits() (time.Time, int, error) {
	query := `
		SELECT date, SUM(count) AS daily_commits
		FROM commits
		GROUP BY date
		ORDER BY daily_commits DESC, date ASC
		LIMIT 1
	`

	return r.bestDay(query)
}

// BestDayByLines returns the date with the highest daily lines-changed total.
// A zero date and zero value mean the store is empty.
func (r *CommitRepository) BestDayByLines() (time.Time, int, error) {
	query := `
		SELECT date, SUM(lines_added + lines_deleted) AS daily_lines
		FROM commits
		GROUP BY date
		ORDER BY daily_lines DESC, date ASC
		LIMIT 1
	`

	return r.bestDay(query)
}

func (r *CommitRepository) bestDay(query string) (time.Time, int, error) {
	var value string
	var total int

	err := r.db.QueryRow(query).Scan(&value, &total)
	if err == sql.ErrNoRows {
		return time.Time{}, 0, nil
	}
	if err != nil {
		return time.Time{}, 0, err
	}

	date, err := models.ParseDate(value)
	if err != nil {
		return time.Time{}, 0, err
	}

	return date, total, nil
}

// BestRollingWeekByCommits returns the end date of the trailing 7-day window
// (end date plus the 6 preceding days) with the highest commit total.
// Ties resolve to the earliest end date. A zero date means an empty store.
func (r *CommitRepository) BestRollingWeekByCommits() (time.Time, int, error) {
	query := `
		SELECT date, SUM(count)
		FROM commits
		GROUP BY date
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return time.Time{}, 0, err
	}
	defer rows.Close()

	type dailyTotal struct {
		date  time.Time
		total int
	}

	var days []dailyTotal
	for rows.Next() {
		var value string
		var total int
		if err := rows.Scan(&value, &total); err != nil {
			return time.Time{}, 0, err
		}
		date, err := models.ParseDate(value)
		if err != nil {
			return time.Time{}, 0, err
		}
		days = append(days, dailyTotal{date: date, total: total})
	}
	if err := rows.Err(); err != nil {
		return time.Time{}, 0, err
	}
	if len(days) == 0 {
		return time.Time{}, 0, nil
	}

	// Slide a true 7-day date window over the daily totals. The window is
	// anchored on days, not rows, so gaps between active dates count.
	var bestDate time.Time
	bestTotal := -1
	start := 0

	for end, day := range days {
		windowStart := day.date.AddDate(0, 0, -6)
		for days[start].date.Before(windowStart) {
			start++
		}

		windowTotal := 0
		for i := start; i <= end; i++ {
			windowTotal += days[i].total
		}

		if windowTotal > bestTotal {
			bestTotal = windowTotal
			bestDate = day.date
		}
	}

	return bestDate, bestTotal, nil
}

// GetRepositories returns all tracked repository names, ascending
func (r *CommitRepository) GetRepositories() ([]string, error) {
	query := `
		SELECT DISTINCT repo
		FROM commits
		ORDER BY repo
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repos []string
	for rows.Next() {
		var repo string
		if err := rows.Scan(&repo); err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}

	return repos, rows.Err()
}

func scanCommitRecords(rows *sql.Rows) ([]*models.CommitRecord, error) {
	var records []*models.CommitRecord
	for rows.Next() {
		record := &models.CommitRecord{}
		var date string
		err := rows.Scan(
			&record.ID, &record.Repo, &date,
			&record.Count, &record.LinesAdded, &record.LinesDeleted,
		)
		if err != nil {
			return nil, err
		}
		record.Date, err = models.ParseDate(date)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
