package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/apperrors"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/middleware"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

// NewApplicationHandler creates the handler with dependencies
func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// Apply is the POST /api/applications/job/:id/apply endpoint (candidate only)
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found."})
		return
	}

	// A missing or malformed "resume" part is reported by the service as
	// invalid input, but only after the role check has passed.
	resume, err := c.FormFile("resume")
	if err != nil {
		resume = nil
	}

	applicant := middleware.CurrentUser(c)
	if err := h.ApplicationService.Apply(uint(jobID), applicant, resume); err != nil {
		// The API reports a duplicate application as a plain 400,
		// unlike the 409 used for duplicate emails.
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": apperrors.Message(err)})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully."})
}

// MyApplications is the GET /api/applications/my-applications endpoint
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	candidate := middleware.CurrentUser(c)
	applications, err := h.ApplicationService.ListForCandidate(candidate.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// JobApplications is the GET /api/applications/job/:id/applications endpoint
// (employer only; the job must belong to the caller)
func (h *ApplicationHandler) JobApplications(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found or you are not authorized."})
		return
	}

	employer := middleware.CurrentUser(c)
	applications, err := h.ApplicationService.ListForJob(uint(jobID), employer.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}
