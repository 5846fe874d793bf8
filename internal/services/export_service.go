package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bigfootdev/bigfoot/internal/models"
)

type ExportService struct {
	store          CommitStore
	recordsService *RecordsService
}

func NewExportService(store CommitStore, recordsService *RecordsService) *ExportService {
	return &ExportService{store: store, recordsService: recordsService}
}

// ExportWorkbook writes commit history and personal records for the
// trailing window ending at referenceDate into an xlsx workbook
func (s *ExportService) ExportWorkbook(path string, days int, referenceDate time.Time) error {
	endDate := models.DateOnly(referenceDate)
	startDate := endDate.AddDate(0, 0, -(days - 1))

	records, err := s.store.GetByDateRange(startDate, endDate)
	if err != nil {
		return fmt.Errorf("failed to load commit history: %w", err)
	}

	hallOfFame, err := s.recordsService.GetHallOfFame(referenceDate)
	if err != nil {
		return fmt.Errorf("failed to load personal records: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	commitsSheet := "Commits"
	if err := f.SetSheetName("Sheet1", commitsSheet); err != nil {
		return err
	}

	headers := []string{"Date", "Repository", "Commits", "Lines Added", "Lines Deleted"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(commitsSheet, cell, header); err != nil {
			return err
		}
	}

	for i, record := range records {
		row := i + 2
		values := []interface{}{
			record.Date.Format(models.DateFormat),
			record.Repo,
			record.Count,
			record.LinesAdded,
			record.LinesDeleted,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(commitsSheet, cell, value); err != nil {
				return err
			}
		}
	}

	recordsSheet := "Records"
	if _, err := f.NewSheet(recordsSheet); err != nil {
		return err
	}

	personalRecords := []models.PersonalRecord{
		hallOfFame.BestSingleDayCommits,
		hallOfFame.BestSingleDayLines,
		hallOfFame.BestWeekCommits,
	}

	recordHeaders := []string{"Record", "Value", "Date", "Description"}
	for i, header := range recordHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(recordsSheet, cell, header); err != nil {
			return err
		}
	}

	for i, record := range personalRecords {
		row := i + 2
		values := []interface{}{
			record.RecordType,
			record.Value,
			record.Date.Format(models.DateFormat),
			record.Description,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(recordsSheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
