package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the calendar-day format used throughout the store
const DateFormat = "2006-01-02"

// CommitRecord represents aggregated commit activity for one repository
// on one calendar day
type CommitRecord struct {
	ID           string    `json:"id"`
	Repo         string    `json:"repo"`
	Date         time.Time `json:"date"`
	Count        int       `json:"count"`
	LinesAdded   int       `json:"lines_added"`
	LinesDeleted int       `json:"lines_deleted"`
	CollectedAt  time.Time `json:"collected_at"`
}

// NewCommitRecord creates a new CommitRecord with a generated UUID
func NewCommitRecord(repo string, date time.Time, count, linesAdded, linesDeleted int) *CommitRecord {
	return &CommitRecord{
		ID:           uuid.New().String(),
		Repo:         repo,
		Date:         DateOnly(date),
		Count:        count,
		LinesAdded:   linesAdded,
		LinesDeleted: linesDeleted,
		CollectedAt:  time.Now(),
	}
}

// Validate validates the CommitRecord fields
func (c *CommitRecord) Validate() error {
	if c.Repo == "" {
		return errors.New("repo is required")
	}
	if c.Date.IsZero() {
		return errors.New("date is required")
	}
	if c.Count < 0 {
		return errors.New("count cannot be negative")
	}
	if c.LinesAdded < 0 {
		return errors.New("lines added cannot be negative")
	}
	if c.LinesDeleted < 0 {
		return errors.New("lines deleted cannot be negative")
	}
	return nil
}

// TotalLines returns lines added plus lines deleted
func (c *CommitRecord) TotalLines() int {
	return c.LinesAdded + c.LinesDeleted
}

// DateOnly truncates a timestamp to its calendar day in UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date string
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}
