package services

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bigfootdev/bigfoot/internal/models"
)

type RecordsService struct {
	store CommitStore
}

func NewRecordsService(store CommitStore) *RecordsService {
	return &RecordsService{store: store}
}

// GetHallOfFame scans the full history for personal bests and measures how
// close referenceDate's activity is to the daily commit record
func (s *RecordsService) GetHallOfFame(referenceDate time.Time) (*models.HallOfFame, error) {
	today := models.DateOnly(referenceDate)

	bestCommitsDate, bestCommits, err := s.store.BestDayByCommits()
	if err != nil {
		return nil, err
	}
	bestCommitsRecord := models.PersonalRecord{
		RecordType:  models.RecordDailyCommits,
		Value:       bestCommits,
		Date:        bestCommitsDate,
		Description: fmt.Sprintf("%d commits in one day", bestCommits),
	}
	if bestCommitsDate.IsZero() {
		bestCommitsRecord.Date = today
		bestCommitsRecord.Description = "No commits yet"
	}

	bestLinesDate, bestLines, err := s.store.BestDayByLines()
	if err != nil {
		return nil, err
	}
	bestLinesRecord := models.PersonalRecord{
		RecordType:  models.RecordDailyLines,
		Value:       bestLines,
		Date:        bestLinesDate,
		Description: fmt.Sprintf("%s lines in one day", humanize.Comma(int64(bestLines))),
	}
	if bestLinesDate.IsZero() {
		bestLinesRecord.Date = today
		bestLinesRecord.Description = "No lines yet"
	}

	bestWeekDate, bestWeek, err := s.store.BestRollingWeekByCommits()
	if err != nil {
		return nil, err
	}
	bestWeekRecord := models.PersonalRecord{
		RecordType:  models.RecordWeeklyCommits,
		Value:       bestWeek,
		Date:        bestWeekDate,
		Description: fmt.Sprintf("%d commits in one week", bestWeek),
	}
	if bestWeekDate.IsZero() {
		bestWeekRecord.Date = today
		bestWeekRecord.Description = "No weekly data yet"
	}

	currentDayCommits, err := s.store.TotalCommitsByDate(today)
	if err != nil {
		return nil, err
	}
	currentDayLines, err := s.store.TotalLinesByDate(today)
	if err != nil {
		return nil, err
	}

	recordChase := 0.0
	if bestCommits > 0 {
		recordChase = float64(currentDayCommits) / float64(bestCommits)
		if recordChase > 1.0 {
			recordChase = 1.0
		}
	}

	return &models.HallOfFame{
		BestSingleDayCommits: bestCommitsRecord,
		BestSingleDayLines:   bestLinesRecord,
		BestWeekCommits:      bestWeekRecord,
		CurrentDayCommits:    currentDayCommits,
		CurrentDayLines:      currentDayLines,
		RecordChaseProgress:  recordChase,
	}, nil
}
