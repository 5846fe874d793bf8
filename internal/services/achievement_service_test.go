package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bigfootdev/bigfoot/internal/models"
)

func newAchievementService(store CommitStore) *AchievementService {
	return NewAchievementService(
		NewStreakService(store),
		NewMomentumService(store),
		NewRecordsService(store),
	)
}

func achievementByID(t *testing.T, achievements []*models.Achievement, id string) *models.Achievement {
	t.Helper()
	for _, achievement := range achievements {
		if achievement.ID == id {
			return achievement
		}
	}
	t.Fatalf("achievement %q not found", id)
	return nil
}

func TestCatalogueIdentityIsStable(t *testing.T) {
	expected := []string{
		"first_step", "fire_starter", "consistent_coder", "streak_master", "code_warrior",
		"commit_surge", "commit_storm", "commit_hurricane", "commit_legend",
		"line_crusher", "code_beast", "coding_machine", "line_god",
		"perfect_week", "momentum_builder",
	}

	service := newAchievementService(newFakeStore())
	achievements, err := service.GetAchievements(mustDate(t, "2024-03-15"))
	assert.NoError(t, err)

	ids := make([]string, len(achievements))
	for i, achievement := range achievements {
		ids[i] = achievement.ID
	}
	assert.Equal(t, expected, ids)
}

func TestFireStarterProgression(t *testing.T) {
	testCases := []struct {
		name             string
		activeDates      []string
		expectedUnlocked bool
		expectedProgress float64
	}{
		{
			name:             "No streak",
			activeDates:      nil,
			expectedUnlocked: false,
			expectedProgress: 0,
		},
		{
			name:             "One day streak",
			activeDates:      []string{"2024-03-15"},
			expectedUnlocked: false,
			expectedProgress: 1.0 / 3.0,
		},
		{
			name:             "Two day streak",
			activeDates:      []string{"2024-03-14", "2024-03-15"},
			expectedUnlocked: false,
			expectedProgress: 2.0 / 3.0,
		},
		{
			name:             "Three day streak unlocks",
			activeDates:      []string{"2024-03-13", "2024-03-14", "2024-03-15"},
			expectedUnlocked: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			for _, date := range tc.activeDates {
				store.add("bigfoot", date, 1, 0, 0)
			}
			service := newAchievementService(store)

			achievements, err := service.GetAchievements(mustDate(t, "2024-03-15"))
			assert.NoError(t, err)

			fireStarter := achievementByID(t, achievements, "fire_starter")
			assert.Equal(t, tc.expectedUnlocked, fireStarter.Unlocked)

			if tc.expectedUnlocked {
				// Progress is absent once unlocked
				assert.Nil(t, fireStarter.Progress)
				assert.NotNil(t, fireStarter.UnlockedDate)
				assert.Equal(t, mustDate(t, "2024-03-15"), *fireStarter.UnlockedDate)
			} else {
				assert.NotNil(t, fireStarter.Progress)
				assert.InDelta(t, tc.expectedProgress, *fireStarter.Progress, 1e-9)
				assert.Nil(t, fireStarter.UnlockedDate)
			}
		})
	}
}

func TestFirstStepUsesLongestStreak(t *testing.T) {
	// A broken streak still keeps first_step unlocked through the
	// longest-streak fallback
	store := newFakeStore()
	store.add("bigfoot", "2024-03-01", 2, 0, 0)
	service := newAchievementService(store)

	achievements, err := service.GetAchievements(mustDate(t, "2024-03-15"))
	assert.NoError(t, err)

	firstStep := achievementByID(t, achievements, "first_step")
	assert.True(t, firstStep.Unlocked)
}

func TestVolumeAchievementsUseBestDay(t *testing.T) {
	store := newFakeStore()
	store.add("bigfoot", "2024-02-01", 9, 6000, 1000)
	store.add("bigfoot", "2024-03-15", 1, 10, 0)
	service := newAchievementService(store)

	achievements, err := service.GetAchievements(mustDate(t, "2024-03-15"))
	assert.NoError(t, err)

	// Best day had 9 commits: surge (5) and storm (8) unlock, hurricane (12) does not
	assert.True(t, achievementByID(t, achievements, "commit_surge").Unlocked)
	assert.True(t, achievementByID(t, achievements, "commit_storm").Unlocked)

	hurricane := achievementByID(t, achievements, "commit_hurricane")
	assert.False(t, hurricane.Unlocked)
	assert.InDelta(t, 9.0/12.0, *hurricane.Progress, 1e-9)

	// Best day changed 7,000 lines: crusher (1k) unlocks, beast (5k) unlocks
	assert.True(t, achievementByID(t, achievements, "line_crusher").Unlocked)
	assert.True(t, achievementByID(t, achievements, "code_beast").Unlocked)
	assert.False(t, achievementByID(t, achievements, "coding_machine").Unlocked)
}

func TestMomentumBuilderGrowth(t *testing.T) {
	// Last week 10 commits, this week 20: 100% growth unlocks the badge
	store := newFakeStore()
	store.add("bigfoot", "2024-03-05", 10, 0, 0) // last week
	store.add("bigfoot", "2024-03-12", 20, 0, 0) // this week
	service := newAchievementService(store)

	achievements, err := service.GetAchievements(mustDate(t, "2024-03-15"))
	assert.NoError(t, err)

	assert.True(t, achievementByID(t, achievements, "momentum_builder").Unlocked)
}

func TestMomentumBuilderDeclineClampsToZero(t *testing.T) {
	store := newFakeStore()
	store.add("bigfoot", "2024-03-05", 20, 0, 0) // last week
	store.add("bigfoot", "2024-03-12", 10, 0, 0) // this week
	service := newAchievementService(store)

	achievements, err := service.GetAchievements(mustDate(t, "2024-03-15"))
	assert.NoError(t, err)

	builder := achievementByID(t, achievements, "momentum_builder")
	assert.False(t, builder.Unlocked)
	assert.Equal(t, 0.0, *builder.Progress)
}

func TestEvaluationIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.add("bigfoot", "2024-03-14", 6, 1200, 300)
	store.add("bigfoot", "2024-03-15", 3, 100, 50)
	service := newAchievementService(store)

	reference := mustDate(t, "2024-03-15")

	first, err := service.GetAchievements(reference)
	assert.NoError(t, err)
	second, err := service.GetAchievements(reference)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPerfectWeek(t *testing.T) {
	store := newFakeStore()
	day := mustDate(t, "2024-03-09")
	for i := 0; i < 7; i++ {
		store.add("bigfoot", day.AddDate(0, 0, i).Format(models.DateFormat), 1, 0, 0)
	}
	service := newAchievementService(store)

	achievements, err := service.GetAchievements(day.AddDate(0, 0, 6))
	assert.NoError(t, err)

	perfectWeek := achievementByID(t, achievements, "perfect_week")
	assert.True(t, perfectWeek.Unlocked)
}

func TestUnlockedDateMatchesReference(t *testing.T) {
	store := newFakeStore()
	store.add("bigfoot", "2024-03-15", 5, 0, 0)
	service := newAchievementService(store)

	reference := time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC)
	achievements, err := service.GetAchievements(reference)
	assert.NoError(t, err)

	surge := achievementByID(t, achievements, "commit_surge")
	assert.True(t, surge.Unlocked)
	assert.Equal(t, mustDate(t, "2024-03-15"), *surge.UnlockedDate)
}
