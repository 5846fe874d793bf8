// Package handlers exposes the analytics engine as a local JSON API.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bigfootdev/bigfoot/internal/models"
	"github.com/bigfootdev/bigfoot/internal/services"
	"github.com/bigfootdev/bigfoot/pkg/config"
)

type DashboardHandler struct {
	streakService      *services.StreakService
	momentumService    *services.MomentumService
	historyService     *services.HistoryService
	recordsService     *services.RecordsService
	achievementService *services.AchievementService
	goalService        *services.GoalService
	rewardService      *services.RewardService
}

func NewDashboardHandler(
	streakService *services.StreakService,
	momentumService *services.MomentumService,
	historyService *services.HistoryService,
	recordsService *services.RecordsService,
	achievementService *services.AchievementService,
	goalService *services.GoalService,
	rewardService *services.RewardService,
) *DashboardHandler {
	return &DashboardHandler{
		streakService:      streakService,
		momentumService:    momentumService,
		historyService:     historyService,
		recordsService:     recordsService,
		achievementService: achievementService,
		goalService:        goalService,
		rewardService:      rewardService,
	}
}

// RegisterRoutes attaches all API routes to the router
func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/streak", h.Streak)
		api.GET("/momentum", h.Momentum)
		api.GET("/history", h.History)
		api.GET("/records", h.Records)
		api.GET("/achievements", h.Achievements)
		api.GET("/goals", h.Goals)
		api.GET("/rewards", h.Rewards)
	}
}

// Streak returns current streak data
func (h *DashboardHandler) Streak(c *gin.Context) {
	streak, err := h.streakService.GetStreakData(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, streak)
}

// Momentum returns week-over-week momentum metrics
func (h *DashboardHandler) Momentum(c *gin.Context) {
	momentum, err := h.momentumService.Analyze(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, momentum)
}

// History returns historical chart data. Query params: type, periods.
func (h *DashboardHandler) History(c *gin.Context) {
	chartType := models.ChartType(c.DefaultQuery("type", string(models.ChartDaily)))

	periods := 0
	if raw := c.Query("periods"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "periods must be an integer"})
			return
		}
		periods = value
	}

	history, err := h.historyService.BuildHistory(chartType, periods, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedChartType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

// Records returns the hall of fame
func (h *DashboardHandler) Records(c *gin.Context) {
	hallOfFame, err := h.recordsService.GetHallOfFame(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, hallOfFame)
}

// Achievements returns the evaluated achievement catalogue
func (h *DashboardHandler) Achievements(c *gin.Context) {
	achievements, err := h.achievementService.GetAchievements(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// Goals returns progress against configured goals
func (h *DashboardHandler) Goals(c *gin.Context) {
	cfg := config.AppConfig
	goals, err := h.goalService.GetGoalProgress(cfg.Goals.Daily, cfg.Goals.Weekly, cfg.Goals.Monthly, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Rewards returns recent rewards. Query param: days (default 30).
func (h *DashboardHandler) Rewards(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = value
	}

	rewards, err := h.rewardService.GetRecent(days, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}
