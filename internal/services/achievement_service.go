package services

import (
	"time"

	"github.com/bigfootdev/bigfoot/internal/models"
)

// achievementMetrics holds every value the catalogue rules read
type achievementMetrics struct {
	currentStreak   float64
	longestStreak   float64
	consistencyDays float64
	weeklyGrowthPct float64
	bestDayCommits  float64
	bestDayLines    float64
}

// achievementRule is one fixed catalogue entry: a stable id, a threshold
// and an accessor for the current value. Rules are evaluated uniformly.
type achievementRule struct {
	id          string
	name        string
	emoji       string
	description string
	threshold   float64
	current     func(m *achievementMetrics) float64
}

// achievementCatalogue is the fixed, ordered achievement list. Identity is
// stable: the same id always maps to the same rule.
var achievementCatalogue = []achievementRule{
	// Streak milestones
	{
		id: "first_step", name: "First Step", emoji: "👶",
		description: "Made your first commit", threshold: 1,
		current: func(m *achievementMetrics) float64 {
			if m.longestStreak > m.currentStreak {
				return m.longestStreak
			}
			return m.currentStreak
		},
	},
	{
		id: "fire_starter", name: "Fire Starter", emoji: "🔥",
		description: "3 day coding streak", threshold: 3,
		current:     func(m *achievementMetrics) float64 { return m.currentStreak },
	},
	{
		id: "consistent_coder", name: "Consistent Coder", emoji: "⚡",
		description: "7 day coding streak", threshold: 7,
		current:     func(m *achievementMetrics) float64 { return m.currentStreak },
	},
	{
		id: "streak_master", name: "Streak Master", emoji: "🎯",
		description: "21 day coding streak", threshold: 21,
		current:     func(m *achievementMetrics) float64 { return m.currentStreak },
	},
	{
		id: "code_warrior", name: "Code Warrior", emoji: "🎖️",
		description: "30 day coding streak", threshold: 30,
		current:     func(m *achievementMetrics) float64 { return m.currentStreak },
	},

	// Daily commit volume
	{
		id: "commit_surge", name: "Commit Surge", emoji: "💥",
		description: "5 commits in one day", threshold: 5,
		current:     func(m *achievementMetrics) float64 { return m.bestDayCommits },
	},
	{
		id: "commit_storm", name: "Commit Storm", emoji: "⛈️",
		description: "8 commits in one day", threshold: 8,
		current:     func(m *achievementMetrics) float64 { return m.bestDayCommits },
	},
	{
		id: "commit_hurricane", name: "Commit Hurricane", emoji: "🌪️",
		description: "12 commits in one day", threshold: 12,
		current:     func(m *achievementMetrics) float64 { return m.bestDayCommits },
	},
	{
		id: "commit_legend", name: "Commit Legend", emoji: "👑",
		description: "15 commits in one day", threshold: 15,
		current:     func(m *achievementMetrics) float64 { return m.bestDayCommits },
	},

	// Daily lines volume
	{
		id: "line_crusher", name: "Line Crusher", emoji: "💪",
		description: "1,000 lines in one day", threshold: 1000,
		current:     func(m *achievementMetrics) float64 { return m.bestDayLines },
	},
	{
		id: "code_beast", name: "Code Beast", emoji: "🦁",
		description: "5,000 lines in one day", threshold: 5000,
		current:     func(m *achievementMetrics) float64 { return m.bestDayLines },
	},
	{
		id: "coding_machine", name: "Coding Machine", emoji: "🤖",
		description: "10,000 lines in one day", threshold: 10000,
		current:     func(m *achievementMetrics) float64 { return m.bestDayLines },
	},
	{
		id: "line_god", name: "Line God", emoji: "🚀",
		description: "50,000 lines in one day", threshold: 50000,
		current:     func(m *achievementMetrics) float64 { return m.bestDayLines },
	},

	// Consistency
	{
		id: "perfect_week", name: "Perfect Week", emoji: "⭐",
		description: "7 days of coding in a row", threshold: 7,
		current:     func(m *achievementMetrics) float64 { return m.consistencyDays },
	},
	{
		id: "momentum_builder", name: "Momentum Builder", emoji: "📈",
		description: "Increased weekly commits by 25%+", threshold: 25,
		current: func(m *achievementMetrics) float64 {
			if m.weeklyGrowthPct < 0 {
				return 0
			}
			return m.weeklyGrowthPct
		},
	},
}

type AchievementService struct {
	streakService   *StreakService
	momentumService *MomentumService
	recordsService  *RecordsService
}

func NewAchievementService(streakService *StreakService, momentumService *MomentumService, recordsService *RecordsService) *AchievementService {
	return &AchievementService{
		streakService:   streakService,
		momentumService: momentumService,
		recordsService:  recordsService,
	}
}

// GetAchievements evaluates the full catalogue against current metrics.
// Evaluation is idempotent: no unlock state is persisted, every call
// re-derives unlocked/locked from the store.
func (s *AchievementService) GetAchievements(referenceDate time.Time) ([]*models.Achievement, error) {
	streakData, err := s.streakService.GetStreakData(referenceDate)
	if err != nil {
		return nil, err
	}

	momentum, err := s.momentumService.Analyze(referenceDate)
	if err != nil {
		return nil, err
	}

	hallOfFame, err := s.recordsService.GetHallOfFame(referenceDate)
	if err != nil {
		return nil, err
	}

	metrics := &achievementMetrics{
		currentStreak:   float64(streakData.CurrentStreak),
		longestStreak:   float64(streakData.LongestStreak),
		consistencyDays: float64(momentum.ConsistencyScore),
		weeklyGrowthPct: momentum.WeekOverWeekChange,
		bestDayCommits:  float64(hallOfFame.BestSingleDayCommits.Value),
		bestDayLines:    float64(hallOfFame.BestSingleDayLines.Value),
	}

	unlockedDate := models.DateOnly(referenceDate)

	achievements := make([]*models.Achievement, 0, len(achievementCatalogue))
	for _, rule := range achievementCatalogue {
		achievements = append(achievements, evaluateRule(rule, metrics, unlockedDate))
	}

	return achievements, nil
}

// evaluateRule applies the uniform unlock/progress rule to one entry
func evaluateRule(rule achievementRule, metrics *achievementMetrics, unlockedDate time.Time) *models.Achievement {
	current := rule.current(metrics)

	achievement := &models.Achievement{
		ID:          rule.id,
		Name:        rule.name,
		Emoji:       rule.emoji,
		Description: rule.description,
	}

	if current >= rule.threshold {
		achievement.Unlocked = true
		achievement.UnlockedDate = &unlockedDate
		return achievement
	}

	progress := current / rule.threshold
	if progress > 1.0 {
		progress = 1.0
	}
	achievement.Progress = &progress

	return achievement
}
