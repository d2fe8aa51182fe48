package handlers

import (
	"net/http"
	"strconv"

	"github.com/campushire/jobboard-api/internal/auth"
	"github.com/campushire/jobboard-api/internal/dtos"
	"github.com/campushire/jobboard-api/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	JobService         *services.JobService
	ApplicationService *services.ApplicationService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, apps *services.ApplicationService) *JobHandler {
	return &JobHandler{
		JobService:         jobs,
		ApplicationService: apps,
	}
}

// ListJobs is GET /jobs?category_id=&status=
func (h *JobHandler) ListJobs(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	jobs, err := h.JobService.ListJobs(uint(categoryID), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	job, err := h.JobService.GetJob(jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is POST /admin/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.CreateJob(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJobStatus is PATCH /admin/jobs/:id/status
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.JobStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.UpdateJobStatus(jobID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Apply is POST /jobs/:id/apply
func (h *JobHandler) Apply(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	user := auth.CurrentUser(c)
	app, err := h.ApplicationService.Apply(user.ID, jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Withdraw is DELETE /jobs/:id/apply
func (h *JobHandler) Withdraw(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	user := auth.CurrentUser(c)
	if err := h.ApplicationService.Withdraw(user.ID, jobID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SaveJob is POST /jobs/:id/save
func (h *JobHandler) SaveJob(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	user := auth.CurrentUser(c)
	if err := h.ApplicationService.SaveJob(user.ID, jobID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UnsaveJob is DELETE /jobs/:id/save
func (h *JobHandler) UnsaveJob(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	user := auth.CurrentUser(c)
	if err := h.ApplicationService.UnsaveJob(user.ID, jobID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListApplications is GET /applications
func (h *JobHandler) ListApplications(c *gin.Context) {
	user := auth.CurrentUser(c)
	apps, err := h.ApplicationService.ListForUser(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// pathID parses the :id path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
