package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/pkg/response"
)

// Stats godoc
// @Summary  Completion statistics
// @Tags     Analysis
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} statsResp
// @Router   /api/v1/analysis/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStatsResp(out))
}

// Activity godoc
// @Summary  Daily completions for the last 12 months
// @Tags     Analysis
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} activityDayResp
// @Router   /api/v1/analysis/activity [GET]
func (h *handler) Activity(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	days, err := h.uc.Activity(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Activity: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newActivityResp(days))
}

// Leaderboard godoc
// @Summary  Top users by completed tasks
// @Tags     Analysis
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} leaderboardEntryResp
// @Router   /api/v1/analysis/leaderboard [GET]
func (h *handler) Leaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.uc.Leaderboard(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Leaderboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newLeaderboardResp(entries))
}

// Insights godoc
// @Summary  Weekly and monthly progress
// @Tags     Analysis
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} insightsResp
// @Router   /api/v1/analysis/insights [GET]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Insights(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newInsightsResp(out))
}
