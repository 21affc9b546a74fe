package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/dtos"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/middleware"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// CreateJob is the POST /api/jobs endpoint (employer only)
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	employer := middleware.CurrentUser(c)
	job, err := h.JobService.Create(&req, employer.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GetAllJobs is the public GET /api/jobs endpoint
func (h *JobHandler) GetAllJobs(c *gin.Context) {
	jobs, err := h.JobService.ListAll()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobByID is the public GET /api/jobs/:id endpoint
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	job, err := h.JobService.GetByID(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// GetMyJobs is the GET /api/jobs/my-jobs endpoint (employer only)
func (h *JobHandler) GetMyJobs(c *gin.Context) {
	employer := middleware.CurrentUser(c)
	jobs, err := h.JobService.ListForEmployer(employer.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
