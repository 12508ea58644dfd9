package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "figimap/internal/errors"
	"figimap/internal/mapping"
	"figimap/internal/models"
	"figimap/internal/services"
	"figimap/internal/validator"
)

// MappingHandler builds OpenFIGI mapping jobs from free text or explicit fields.
type MappingHandler struct {
	jobLogService services.JobLogServicer
	maxJobs       int
}

// NewMappingHandler creates a new MappingHandler. maxJobs caps the number of
// jobs accepted in a single request.
func NewMappingHandler(jobLogService services.JobLogServicer, maxJobs int) *MappingHandler {
	return &MappingHandler{jobLogService: jobLogService, maxJobs: maxJobs}
}

// ClassifyRequest represents the request payload for classifying descriptors.
type ClassifyRequest struct {
	Queries []string `json:"queries" binding:"required,min=1,dive,required,max=256"`
}

// ExplicitJobRequest represents one explicitly specified job.
type ExplicitJobRequest struct {
	IDType       string `json:"idType" binding:"required,max=64"`
	IDValue      string `json:"idValue" binding:"required,max=64"`
	ExchCode     string `json:"exchCode" binding:"omitempty,max=16,excluded_with=MicCode"`
	MicCode      string `json:"micCode" binding:"omitempty,max=16"`
	Currency     string `json:"currency" binding:"omitempty,max=8"`
	MarketSecDes string `json:"marketSecDes" binding:"omitempty,max=16"`
}

// BuildJobsRequest represents the request payload for building explicit jobs.
type BuildJobsRequest struct {
	Jobs []ExplicitJobRequest `json:"jobs" binding:"required,min=1,dive"`
}

// JobsResponse wraps the built jobs.
type JobsResponse struct {
	Jobs []mapping.MappingJob `json:"jobs"`
}

// ReferenceResponse lists the recognized exchange codes and market sectors.
type ReferenceResponse struct {
	ExchangeCodes []string `json:"exchange_codes"`
	MarketSectors []string `json:"market_sectors"`
}

func (r ExplicitJobRequest) spec() mapping.Spec {
	return mapping.Spec{
		IDType:       r.IDType,
		IDValue:      r.IDValue,
		ExchCode:     r.ExchCode,
		MicCode:      r.MicCode,
		Currency:     r.Currency,
		MarketSecDes: r.MarketSecDes,
	}
}

// Reference handles listing the recognized exchange codes and market sectors.
// @Summary     Reference tables
// @Description List the exchange codes and market sectors recognized by the classifier
// @Tags        mapping
// @Produce     json
// @Success     200 {object} ReferenceResponse "Reference tables"
// @Router      /mapping/reference [get]
func (h *MappingHandler) Reference(c *gin.Context) {
	c.JSON(http.StatusOK, ReferenceResponse{
		ExchangeCodes: mapping.ExchangeCodes(),
		MarketSectors: mapping.MarketSectors(),
	})
}

// Classify handles turning free-text descriptors into mapping jobs.
// @Summary     Classify descriptors
// @Description Build one mapping job per free-text descriptor such as "MSFT US Equity"
// @Tags        mapping
// @Accept      json
// @Produce     json
// @Param       strict  query bool            false "Reject jobs with malformed fields"
// @Param       request body  ClassifyRequest true  "Descriptors"
// @Success     200 {object} JobsResponse  "Built jobs"
// @Failure     400 {object} ErrorResponse "Invalid input or job"
// @Failure     413 {object} ErrorResponse "Too many jobs"
// @Router      /mapping/classify [post]
func (h *MappingHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if err := h.checkLimit(len(req.Queries)); err != nil {
		respondWithError(c, err)
		return
	}

	jobs := make([]mapping.MappingJob, len(req.Queries))
	for i, q := range req.Queries {
		jobs[i] = mapping.Classify(q)
	}

	if strictRequested(c) {
		if err := checkJobs(jobs); err != nil {
			respondWithError(c, err)
			return
		}
	}

	h.jobLogService.Record(models.JobSourceClassify, c.ClientIP(), req.Queries, jobs)

	c.JSON(http.StatusOK, JobsResponse{Jobs: jobs})
}

// BuildJobs handles building jobs from explicit fields.
// @Summary     Build explicit jobs
// @Description Build mapping jobs from an id type, id value and optional modifiers
// @Tags        mapping
// @Accept      json
// @Produce     json
// @Param       strict  query bool             false "Reject jobs with malformed fields"
// @Param       request body  BuildJobsRequest true  "Explicit jobs"
// @Success     200 {object} JobsResponse  "Built jobs"
// @Failure     400 {object} ErrorResponse "Invalid input or job"
// @Failure     413 {object} ErrorResponse "Too many jobs"
// @Router      /mapping/jobs [post]
func (h *MappingHandler) BuildJobs(c *gin.Context) {
	var req BuildJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if err := h.checkLimit(len(req.Jobs)); err != nil {
		respondWithError(c, err)
		return
	}

	jobs := make([]mapping.MappingJob, len(req.Jobs))
	for i, r := range req.Jobs {
		jobs[i] = r.spec().Build()
	}

	if strictRequested(c) {
		if err := checkJobs(jobs); err != nil {
			respondWithError(c, err)
			return
		}
	}

	h.jobLogService.Record(models.JobSourceExplicit, c.ClientIP(), nil, jobs)

	c.JSON(http.StatusOK, JobsResponse{Jobs: jobs})
}

func (h *MappingHandler) checkLimit(n int) error {
	if h.maxJobs > 0 && n > h.maxJobs {
		return apperrors.WithMessage(apperrors.ErrTooManyJobs,
			fmt.Sprintf("At most %d jobs per request, got %d", h.maxJobs, n))
	}
	return nil
}

// checkJobs runs the strict checks and reports the first failing job.
func checkJobs(jobs []mapping.MappingJob) error {
	for i, job := range jobs {
		if err := validator.ValidateJob(job); err != nil {
			return apperrors.WithMessage(apperrors.ErrInvalidJob,
				fmt.Sprintf("job %d: %s", i, validator.Describe(err)))
		}
	}
	return nil
}
