package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mohanapra/personal-diary-web-app/internal/core/ports/services"
	"github.com/mohanapra/personal-diary-web-app/internal/dto"
	"github.com/mohanapra/personal-diary-web-app/internal/middleware"
)

// analyticsHandler handles HTTP requests for the aggregate mood views.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsService
}

func newAnalyticsHandler(as portssvc.AnalyticsService) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// RegisterAnalyticsRoutes sets up the routes for the analytics views.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsService) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/mood-distribution", h.moodDistribution)
		analytics.GET("/mood-trends", h.moodTrends)
		analytics.GET("/stats", h.summaryStats)
	}
}

// moodDistribution godoc
// @Summary Mood distribution
// @Description Counts the user's entries per mood, zero-filled over all five moods
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.MoodDistributionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute mood distribution"
// @Security BearerAuth
// @Router /api/v1/analytics/mood-distribution [get]
func (h *analyticsHandler) moodDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	distribution, err := h.analyticsService.MoodDistribution(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute mood distribution", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute mood distribution"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMoodDistributionResponse(distribution))
}

// moodTrends godoc
// @Summary Mood trends
// @Description Groups entries from the trailing window by calendar day and mood
// @Tags analytics
// @Produce json
// @Param days query int false "Window size in days" default(30)
// @Success 200 {object} dto.MoodTrendsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute mood trends"
// @Security BearerAuth
// @Router /api/v1/analytics/mood-trends [get]
func (h *analyticsHandler) moodTrends(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.MoodTrendsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for moodTrends", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	trends, err := h.analyticsService.MoodTrends(c.Request.Context(), userID, params.Days)
	if err != nil {
		logger.Error("Failed to compute mood trends", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute mood trends"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMoodTrendsResponse(trends))
}

// summaryStats godoc
// @Summary Summary statistics
// @Description Entry totals, first/last entry dates, this month's count, and the most common mood
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.SummaryStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary stats"
// @Security BearerAuth
// @Router /api/v1/analytics/stats [get]
func (h *analyticsHandler) summaryStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.analyticsService.SummaryStats(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute summary stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryStatsResponse(stats))
}
