package repositories

import (
	"database/sql"
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
)

type RewardRepository struct {
	db *sql.DB
}

func NewRewardRepository(db *sql.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// Create saves a new reward
func (r *RewardRepository) Create(reward *models.Reward) error {
	if err := reward.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO rewards (id, type, message, date, triggered_by)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		reward.ID, reward.Type, reward.Message,
		reward.Date.Format(models.DateFormat), reward.TriggeredBy,
	)

	return err
}

// GetByDateRange retrieves rewards for an inclusive date range, newest first
func (r *RewardRepository) GetByDateRange(startDate, endDate time.Time) ([]*models.Reward, error) {
	query := `
		SELECT id, type, message, date, triggered_by
		FROM rewards
		WHERE date BETWEEN ? AND ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, startDate.Format(models.DateFormat), endDate.Format(models.DateFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []*models.Reward
	for rows.Next() {
		reward := &models.Reward{}
		var date string
		var triggeredBy sql.NullString
		if err := rows.Scan(&reward.ID, &reward.Type, &reward.Message, &date, &triggeredBy); err != nil {
			return nil, err
		}
		reward.Date, err = models.ParseDate(date)
		if err != nil {
			return nil, err
		}
		reward.TriggeredBy = triggeredBy.String
		rewards = append(rewards, reward)
	}

	return rewards, rows.Err()
}

// ExistsByTrigger checks whether a reward was already recorded for a
// trigger on a date, so re-tracking a day does not duplicate rewards
func (r *RewardRepository) ExistsByTrigger(date time.Time, triggeredBy string) (bool, error) {
	query := `SELECT COUNT(*) FROM rewards WHERE date = ? AND triggered_by = ?`

	var count int
	err := r.db.QueryRow(query, date.Format(models.DateFormat), triggeredBy).Scan(&count)
	return count > 0, err
}

// CountByType returns reward counts grouped by type
func (r *RewardRepository) CountByType() (map[string]int, error) {
	query := `
		SELECT type, COUNT(*) AS count
		FROM rewards
		GROUP BY type
		ORDER BY count DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var rewardType string
		var count int
		if err := rows.Scan(&rewardType, &count); err != nil {
			return nil, err
		}
		counts[rewardType] = count
	}

	return counts, rows.Err()
}

// CountSince returns the number of rewards recorded on or after a date
func (r *RewardRepository) CountSince(date time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM rewards WHERE date >= ?`

	var count int
	err := r.db.QueryRow(query, date.Format(models.DateFormat)).Scan(&count)
	return count, err
}
