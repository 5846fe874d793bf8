// Package commands implements the bigfoot CLI commands.
package commands

import (
	"fmt"
	"time"

	"github.com/bigfootdev/bigfoot/internal/repositories"
	"github.com/bigfootdev/bigfoot/internal/services"
	"github.com/bigfootdev/bigfoot/pkg/config"
	"github.com/bigfootdev/bigfoot/pkg/database"
	"github.com/bigfootdev/bigfoot/pkg/logger"
)

// App wires configuration, storage and services for one command invocation
type App struct {
	CommitRepo *repositories.CommitRepository
	RewardRepo *repositories.RewardRepository

	Tracker      *services.TrackerService
	Streaks      *services.StreakService
	Momentum     *services.MomentumService
	History      *services.HistoryService
	Records      *services.RecordsService
	Achievements *services.AchievementService
	Goals        *services.GoalService
	Rewards      *services.RewardService
	Export       *services.ExportService
}

// newApp initializes config, logging and the database, then builds the
// service graph. Callers must Close the returned app.
func newApp() (*App, error) {
	logger.Init()

	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	commitRepo := repositories.NewCommitRepository(database.DB)
	rewardRepo := repositories.NewRewardRepository(database.DB)

	streaks := services.NewStreakService(commitRepo)
	momentum := services.NewMomentumService(commitRepo)
	records := services.NewRecordsService(commitRepo)

	gitTimeout := time.Duration(config.AppConfig.Tracker.TimeoutSeconds) * time.Second

	return &App{
		CommitRepo:   commitRepo,
		RewardRepo:   rewardRepo,
		Tracker:      services.NewTrackerService(commitRepo, config.AppConfig.Tracker.SearchPaths, gitTimeout),
		Streaks:      streaks,
		Momentum:     momentum,
		History:      services.NewHistoryService(commitRepo),
		Records:      records,
		Achievements: services.NewAchievementService(streaks, momentum, records),
		Goals:        services.NewGoalService(commitRepo),
		Rewards:      services.NewRewardService(commitRepo, rewardRepo),
		Export:       services.NewExportService(commitRepo, records),
	}, nil
}

func (a *App) Close() {
	if err := database.Close(); err != nil {
		logger.Errorf("Failed to close database: %v", err)
	}
}
