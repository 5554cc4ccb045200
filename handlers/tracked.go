package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobfit/backend/models"
	"github.com/jobfit/backend/storage"
)

// TrackedJobHandler manages a user's saved and applied jobs
type TrackedJobHandler struct {
	store TrackedJobStore
}

// NewTrackedJobHandler creates a new tracked job handler
func NewTrackedJobHandler(store TrackedJobStore) *TrackedJobHandler {
	return &TrackedJobHandler{store: store}
}

// List returns the user's tracked jobs
// @Summary List tracked jobs
// @Description List saved and applied jobs, most recently updated first
// @Tags Tracked Jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TrackedJobsResponse "Tracked jobs"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /tracked-jobs [get]
func (h *TrackedJobHandler) List(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	jobs, err := h.store.ListTrackedJobs(c.Request.Context(), claims.Email)
	if err != nil {
		log.Printf("[TrackedJobHandler] Failed to list tracked jobs: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to list tracked jobs", "")
		return
	}

	c.JSON(http.StatusOK, models.TrackedJobsResponse{Jobs: jobs, Count: len(jobs)})
}

// Upsert creates or updates a tracked job
// @Summary Track a job
// @Description Create or update the tracked job with the given ID
// @Tags Tracked Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body models.TrackJobRequest true "Tracked job"
// @Success 200 {object} models.TrackedJob "Tracked job"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /tracked-jobs/{id} [put]
func (h *TrackedJobHandler) Upsert(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	jobID := strings.TrimSpace(c.Param("id"))
	var req models.TrackJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !models.ValidTrackedStatus(status) {
		respondError(c, http.StatusBadRequest, "Invalid status", "status must be saved, applied, interview, offer or rejected")
		return
	}
	if req.Job != nil && req.Job.ID != "" && req.Job.ID != jobID {
		respondError(c, http.StatusBadRequest, "Job ID mismatch", "job.id must match the path ID")
		return
	}

	tracked := &models.TrackedJob{
		JobID:  jobID,
		Status: status,
		Notes:  req.Notes,
	}
	if req.Job != nil {
		tracked.Job = *req.Job
		tracked.Job.ID = jobID
	}

	if err := h.store.UpsertTrackedJob(c.Request.Context(), claims.Email, tracked); err != nil {
		log.Printf("[TrackedJobHandler] Failed to track job %s: %v", jobID, err)
		respondError(c, http.StatusInternalServerError, "Failed to save tracked job", "")
		return
	}

	c.JSON(http.StatusOK, tracked)
}

// Delete removes a tracked job
// @Summary Untrack a job
// @Description Remove the tracked job with the given ID
// @Tags Tracked Jobs
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 204 "Deleted"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Tracked job not found"
// @Router /tracked-jobs/{id} [delete]
func (h *TrackedJobHandler) Delete(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	if err := h.store.DeleteTrackedJob(c.Request.Context(), claims.Email, c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrTrackedJobNotFound) {
			respondError(c, http.StatusNotFound, "Tracked job not found", "")
			return
		}
		log.Printf("[TrackedJobHandler] Failed to delete tracked job: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to delete tracked job", "")
		return
	}

	c.Status(http.StatusNoContent)
}
