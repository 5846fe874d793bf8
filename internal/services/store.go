package services

import (
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
)

// CommitStore is the read contract the analytics services consume.
// *repositories.CommitRepository satisfies it. The analytics side never
// writes; ingestion goes through the tracker.
type CommitStore interface {
	TotalCommitsByDate(date time.Time) (int, error)
	CommitsInRange(startDate, endDate time.Time) (int, error)
	TotalLinesByDate(date time.Time) (int, error)
	GetByDateRange(startDate, endDate time.Time) ([]*models.CommitRecord, error)
	DistinctActiveDates() ([]time.Time, error)
	DailyTotalsInRange(startDate, endDate time.Time) (map[string]int, error)
	BestDayByCommits() (time.Time, int, error)
	BestDayByLines() (time.Time, int, error)
	BestRollingWeekByCommits() (time.Time, int, error)
	GetRepositories() ([]string, error)
}
