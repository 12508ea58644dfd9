package services

import (
	"figimap/internal/mapping"
	"figimap/internal/models"
	"figimap/internal/pagination"
)

// JobLogFilter holds optional filter parameters for listing job log entries.
type JobLogFilter struct {
	IDType string
	Source models.JobSource
}

// JobLogServicer defines the contract for recording and reading built jobs.
type JobLogServicer interface {
	// Record stores jobs built from one request. inputs is either nil or
	// parallel to jobs. Failures are logged and never returned.
	Record(source models.JobSource, clientIP string, inputs []string, jobs []mapping.MappingJob)
	List(filter JobLogFilter, page pagination.PageRequest) (*pagination.PageResponse[models.JobLog], error)
	GetByID(id string) (*models.JobLog, error)
}
