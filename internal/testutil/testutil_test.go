package testutil_test

import (
	"testing"

	"figimap/internal/errors"
	"figimap/internal/mapping"
	"figimap/internal/models"
	"figimap/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	if err := db.Table("job_logs").Count(&count).Error; err != nil {
		t.Errorf("table job_logs should exist after migration: %v", err)
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestJobLog(t, first, "MSFT US Equity")

	var count int64
	second.Table("job_logs").Count(&count)
	if count != 0 {
		t.Errorf("expected isolated database, found %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	entry := testutil.CreateTestJobLog(t, db, "MSFT US Equity")
	if entry.ID == "" {
		t.Fatal("job log should have an ID")
	}
	if entry.IDValue != "MSFT" || entry.ExchCode != "US" || entry.MarketSecDes != "Equity" {
		t.Errorf("unexpected entry %+v", entry)
	}

	explicit := testutil.CreateTestExplicitJobLog(t, db, mapping.FromExplicit("ID_SEDOL", "2005973").WithMICCode("EDGX"))
	if explicit.MicCode != "EDGX" || explicit.ExchCode != "" {
		t.Errorf("unexpected entry %+v", explicit)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrJobLogNotFound, "JOB_LOG_NOT_FOUND")
	testutil.AssertAppError(t, errors.Wrap(errors.ErrInternalServer, nil), "INTERNAL_ERROR")
}

func TestAssertLoggedJobs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	job := mapping.FromExplicit("TICKER", "IBM").WithExchangeCode("US").WithCurrency("USD")
	entry := testutil.CreateTestExplicitJobLog(t, db, job)

	var entries []models.JobLog
	testutil.AssertNoError(t, db.Where("id = ?", entry.ID).Find(&entries).Error)
	testutil.AssertLoggedJobs(t, entries, []mapping.MappingJob{job})
}
