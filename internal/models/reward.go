package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Reward types recorded at track time
const (
	RewardStreakMilestone   = "streak_milestone"
	RewardDailyCommits      = "daily_commits"
	RewardDailyGoal         = "daily_goal"
	RewardWeeklyConsistency = "weekly_consistency"
)

// Reward is a motivational milestone recorded when tracking commits
type Reward struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	Date        time.Time `json:"date"`
	TriggeredBy string    `json:"triggered_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewReward creates a new Reward with a generated UUID
func NewReward(rewardType, message string, date time.Time, triggeredBy string) *Reward {
	return &Reward{
		ID:          uuid.New().String(),
		Type:        rewardType,
		Message:     message,
		Date:        DateOnly(date),
		TriggeredBy: triggeredBy,
		CreatedAt:   time.Now(),
	}
}

// Validate validates the Reward fields
func (r *Reward) Validate() error {
	if r.Type == "" {
		return errors.New("reward type is required")
	}
	if r.Message == "" {
		return errors.New("reward message is required")
	}
	if r.Date.IsZero() {
		return errors.New("reward date is required")
	}
	return nil
}
