package handlers

import (
	"net/http"
	"strconv"

	"github.com/campushire/jobboard-api/internal/auth"
	"github.com/campushire/jobboard-api/internal/services"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	DashboardService *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{DashboardService: dashboard}
}

// Overview is GET /dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	user := auth.CurrentUser(c)
	view, err := h.DashboardService.Overview(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Recommendations is GET /dashboard/recommendations?limit=
func (h *DashboardHandler) Recommendations(c *gin.Context) {
	user := auth.CurrentUser(c)
	limit, _ := strconv.Atoi(c.Query("limit"))
	jobs, err := h.DashboardService.Recommendations(user.ID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// QuickActions is GET /dashboard/actions
func (h *DashboardHandler) QuickActions(c *gin.Context) {
	user := auth.CurrentUser(c)
	actions, err := h.DashboardService.QuickActions(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, actions)
}
