package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "figimap/internal/errors"
	"figimap/internal/logger"
	"figimap/internal/mapping"
	"figimap/internal/models"
	"figimap/internal/pagination"
	"figimap/internal/uuid"
)

const recordBatchSize = 100

// jobLogService persists built mapping jobs.
type jobLogService struct {
	db *gorm.DB
}

// NewJobLogService creates a new JobLogServicer backed by db.
func NewJobLogService(db *gorm.DB) JobLogServicer {
	return &jobLogService{db: db}
}

// Record stores one entry per job. Errors are logged but never propagate
// to avoid disrupting the request that built the jobs.
func (s *jobLogService) Record(source models.JobSource, clientIP string, inputs []string, jobs []mapping.MappingJob) {
	if len(jobs) == 0 {
		return
	}

	entries := make([]models.JobLog, len(jobs))
	for i, job := range jobs {
		var input string
		if i < len(inputs) {
			input = inputs[i]
		}
		entries[i] = models.NewJobLog(source, input, clientIP, job)
	}

	if err := s.db.CreateInBatches(entries, recordBatchSize).Error; err != nil {
		logger.Get().Errorw("failed to record job log entries",
			"error", err,
			"source", source,
			"count", len(entries),
		)
	}
}

// List returns a page of job log entries, newest first.
func (s *jobLogService) List(filter JobLogFilter, page pagination.PageRequest) (*pagination.PageResponse[models.JobLog], error) {
	page.Defaults()

	base := s.db.Model(&models.JobLog{})
	if filter.IDType != "" {
		base = base.Where("id_type = ?", filter.IDType)
	}
	if filter.Source != "" {
		base = base.Where("source = ?", filter.Source)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.JobLog
	if err := base.Order("id DESC").Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems).
		WithCursor(func(e models.JobLog) string { return e.ID })
	return &resp, nil
}

// GetByID returns one job log entry.
func (s *jobLogService) GetByID(id string) (*models.JobLog, error) {
	if !uuid.IsValid(id) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid job log id")
	}

	var entry models.JobLog
	if err := s.db.Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobLogNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// nopJobLogService is used when no job log database is configured.
type nopJobLogService struct{}

// NewNopJobLogService returns a JobLogServicer that stores nothing.
func NewNopJobLogService() JobLogServicer {
	return nopJobLogService{}
}

func (nopJobLogService) Record(models.JobSource, string, []string, []mapping.MappingJob) {}

func (nopJobLogService) List(_ JobLogFilter, page pagination.PageRequest) (*pagination.PageResponse[models.JobLog], error) {
	page.Defaults()
	resp := pagination.NewPageResponse([]models.JobLog{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (nopJobLogService) GetByID(string) (*models.JobLog, error) {
	return nil, apperrors.ErrJobLogNotFound
}
