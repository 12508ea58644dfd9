package models

import (
	"testing"

	"figimap/internal/mapping"
)

func TestJobLog_RoundTrip(t *testing.T) {
	jobs := []mapping.MappingJob{
		mapping.Classify("MSFT US Equity"),
		mapping.Classify("US4592001014"),
		mapping.FromExplicit("ID_SEDOL", "2005973").WithMICCode("EDGX").WithCurrency("USD"),
		mapping.FromExplicit("ID_WERTPAPIER", "851399").WithExchangeCode("US"),
	}

	for _, job := range jobs {
		entry := NewJobLog(JobSourceExplicit, "", "10.0.0.1", job)
		if got := entry.Job(); got != job {
			t.Errorf("round trip mismatch: want %+v, got %+v", job, got)
		}
	}
}

func TestNewJobLog_CopiesFields(t *testing.T) {
	entry := NewJobLog(JobSourceClassify, "MSFT US Equity", "10.0.0.1", mapping.Classify("MSFT US Equity"))

	if entry.Source != JobSourceClassify {
		t.Errorf("expected source classify, got %s", entry.Source)
	}
	if entry.Input != "MSFT US Equity" {
		t.Errorf("expected raw input kept, got %q", entry.Input)
	}
	if entry.IDType != "TICKER" || entry.IDValue != "MSFT" {
		t.Errorf("unexpected id fields %q/%q", entry.IDType, entry.IDValue)
	}
	if entry.ExchCode != "US" || entry.MarketSecDes != "Equity" {
		t.Errorf("unexpected optional fields %+v", entry)
	}
	if entry.ClientIP != "10.0.0.1" {
		t.Errorf("expected client ip, got %q", entry.ClientIP)
	}
}
