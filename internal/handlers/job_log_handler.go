package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "figimap/internal/errors"
	"figimap/internal/models"
	"figimap/internal/pagination"
	"figimap/internal/services"
)

// JobLogHandler exposes the jobs recorded by the mapping endpoints.
type JobLogHandler struct {
	jobLogService services.JobLogServicer
}

// NewJobLogHandler creates a new JobLogHandler
func NewJobLogHandler(jobLogService services.JobLogServicer) *JobLogHandler {
	return &JobLogHandler{jobLogService: jobLogService}
}

// JobLogQuery holds the optional filters for listing job log entries.
type JobLogQuery struct {
	IDType string           `form:"id_type" binding:"omitempty,max=64"`
	Source models.JobSource `form:"source" binding:"omitempty,oneof=classify explicit"`
}

// ListJobLogs handles listing recorded jobs.
// @Summary     List job log entries
// @Description Get a paginated list of built jobs, newest first
// @Tags        job-logs
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id_type   query string false "Filter by id type"
// @Param       source    query string false "Filter by source (classify/explicit)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       before    query string false "Keyset cursor from next_before; ignores page"
// @Success     200 {object} pagination.PageResponse[models.JobLog] "Paginated job log entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Admin API not configured"
// @Router      /mapping/logs [get]
func (h *JobLogHandler) ListJobLogs(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	var query JobLogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.jobLogService.List(services.JobLogFilter{
		IDType: query.IDType,
		Source: query.Source,
	}, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetJobLog handles fetching one recorded job.
// @Summary     Get job log entry
// @Tags        job-logs
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Job log ID"
// @Success     200 {object} models.JobLog "Job log entry"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Job log entry not found"
// @Router      /mapping/logs/{id} [get]
func (h *JobLogHandler) GetJobLog(c *gin.Context) {
	entry, err := h.jobLogService.GetByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job_log": entry, "job": entry.Job()})
}
