package services

import (
	"fmt"
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
	"github.com/bigfootdev/bigfoot/internal/repositories"
)

// Milestones that trigger a reward the day they are hit
var (
	streakRewardMilestones = []int{3, 7, 14, 30, 60, 100}
	commitRewardMilestones = []int{5, 10, 20, 50}
)

const weeklyConsistencyThreshold = 50

// RewardStats summarizes the recorded reward history
type RewardStats struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
	Recent int            `json:"recent"` // last 30 days
}

type RewardService struct {
	store      CommitStore
	rewardRepo *repositories.RewardRepository
}

func NewRewardService(store CommitStore, rewardRepo *repositories.RewardRepository) *RewardService {
	return &RewardService{store: store, rewardRepo: rewardRepo}
}

// CheckMilestones evaluates milestone rules for a tracked day and records
// any newly hit ones. Re-tracking the same day never duplicates rewards.
func (s *RewardService) CheckMilestones(date time.Time, commits, streak, dailyGoal int) ([]*models.Reward, error) {
	day := models.DateOnly(date)
	var rewards []*models.Reward

	for _, milestone := range streakRewardMilestones {
		if streak == milestone {
			rewards = append(rewards, models.NewReward(
				models.RewardStreakMilestone,
				fmt.Sprintf("🔥 %d Day Streak! You're on fire!", milestone),
				day,
				fmt.Sprintf("streak_%d", milestone),
			))
		}
	}

	for _, milestone := range commitRewardMilestones {
		if commits == milestone {
			rewards = append(rewards, models.NewReward(
				models.RewardDailyCommits,
				fmt.Sprintf("🚀 %d Commits Today! Amazing productivity!", milestone),
				day,
				fmt.Sprintf("daily_commits_%d", milestone),
			))
		}
	}

	if dailyGoal > 0 && commits >= dailyGoal {
		rewards = append(rewards, models.NewReward(
			models.RewardDailyGoal,
			fmt.Sprintf("🎯 Daily Goal Achieved! %d/%d commits", commits, dailyGoal),
			day,
			"daily_goal_met",
		))
	}

	weekStart := day.AddDate(0, 0, -6)
	weekCommits, err := s.store.CommitsInRange(weekStart, day)
	if err != nil {
		return nil, err
	}
	if weekCommits >= weeklyConsistencyThreshold {
		rewards = append(rewards, models.NewReward(
			models.RewardWeeklyConsistency,
			fmt.Sprintf("📈 %d commits this week! Consistent progress!", weekCommits),
			day,
			fmt.Sprintf("weekly_%d_commits", weeklyConsistencyThreshold),
		))
	}

	var saved []*models.Reward
	for _, reward := range rewards {
		exists, err := s.rewardRepo.ExistsByTrigger(reward.Date, reward.TriggeredBy)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		if err := s.rewardRepo.Create(reward); err != nil {
			return nil, err
		}
		saved = append(saved, reward)
	}

	return saved, nil
}

// GetRecent returns rewards recorded in the trailing window, newest first
func (s *RewardService) GetRecent(days int, referenceDate time.Time) ([]*models.Reward, error) {
	endDate := models.DateOnly(referenceDate)
	startDate := endDate.AddDate(0, 0, -days)
	return s.rewardRepo.GetByDateRange(startDate, endDate)
}

// GetStats returns overall reward statistics
func (s *RewardService) GetStats(referenceDate time.Time) (*RewardStats, error) {
	byType, err := s.rewardRepo.CountByType()
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range byType {
		total += count
	}

	recent, err := s.rewardRepo.CountSince(models.DateOnly(referenceDate).AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	return &RewardStats{Total: total, ByType: byType, Recent: recent}, nil
}

// MotivationalMessage picks a contextual message for the current streak
func (s *RewardService) MotivationalMessage(streak int) string {
	switch {
	case streak == 0:
		return "💡 Every journey starts with a single commit!"
	case streak < 3:
		return fmt.Sprintf("🌱 %d day streak! Keep building momentum!", streak)
	case streak < 7:
		return fmt.Sprintf("💪 %d day streak! You're building great habits!", streak)
	case streak < 30:
		return fmt.Sprintf("🔥 %d day streak! You're on fire!", streak)
	default:
		return fmt.Sprintf("🏆 %d day streak! You're unstoppable!", streak)
	}
}
