package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// ActivityRequest defines the structure for activity log creation requests
type ActivityRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Action  string `json:"action" validate:"required"`
	Details string `json:"details"`
}

// recentActivityLimit bounds the feed returned to clients.
const recentActivityLimit = 50

// ListActivities retrieves the recent-activity feed, most recent first
func ListActivities(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing recent activity")

	var activities []model.UserActivityLog
	result := database.GetDB().
		Order("id desc").
		Limit(recentActivityLimit).
		Find(&activities)
	if result.Error != nil {
		log.Error("Failed to retrieve recent activity", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve recent activity",
		})
	}

	prometheus.RecordActivityOperation("list")
	log.Info("Recent activity retrieved successfully", zap.Int("count", len(activities)))
	return c.JSON(http.StatusOK, echo.Map{"data": activities})
}

// CreateActivity appends an entry to the activity log
func CreateActivity(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if err := c.Validate(&req); err != nil {
		log.Warn("Activity request failed validation", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	entry := model.UserActivityLog{
		UserID:  req.UserID,
		Action:  req.Action,
		Details: req.Details,
	}

	result := database.GetDB().Create(&entry)
	if result.Error != nil {
		log.Error("Failed to record activity",
			zap.Uint("user_id", req.UserID),
			zap.String("action", req.Action),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to record activity",
		})
	}

	prometheus.RecordActivityOperation("create")
	log.Info("Activity recorded",
		zap.Uint("user_id", entry.UserID),
		zap.String("action", entry.Action))
	return c.JSON(http.StatusCreated, echo.Map{"data": entry})
}
