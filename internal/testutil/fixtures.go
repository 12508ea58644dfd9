package testutil

import (
	"testing"

	"figimap/internal/mapping"
	"figimap/internal/models"

	"gorm.io/gorm"
)

// CreateTestJobLog classifies input and stores the result as a job log entry.
func CreateTestJobLog(t *testing.T, db *gorm.DB, input string) *models.JobLog {
	t.Helper()

	entry := models.NewJobLog(models.JobSourceClassify, input, "127.0.0.1", mapping.Classify(input))
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("failed to create test job log: %v", err)
	}
	return &entry
}

// CreateTestExplicitJobLog stores job as an explicit job log entry.
func CreateTestExplicitJobLog(t *testing.T, db *gorm.DB, job mapping.MappingJob) *models.JobLog {
	t.Helper()

	entry := models.NewJobLog(models.JobSourceExplicit, "", "127.0.0.1", job)
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("failed to create test job log: %v", err)
	}
	return &entry
}
