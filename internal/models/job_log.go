package models

import "figimap/internal/mapping"

// JobSource records which entry point built a logged job.
type JobSource string

const (
	JobSourceClassify JobSource = "classify"
	JobSourceExplicit JobSource = "explicit"
)

// JobLog is one mapping job built by the service, kept for auditing what
// callers submitted and how their input was interpreted.
type JobLog struct {
	Base
	Source       JobSource `gorm:"type:varchar(16);not null" json:"source"`
	Input        string    `gorm:"not null;default:''" json:"input,omitempty"`
	IDType       string    `gorm:"type:varchar(64);not null;index" json:"id_type"`
	IDValue      string    `gorm:"not null;default:''" json:"id_value"`
	ExchCode     string    `gorm:"type:varchar(16);not null;default:''" json:"exch_code,omitempty"`
	MicCode      string    `gorm:"type:varchar(16);not null;default:''" json:"mic_code,omitempty"`
	Currency     string    `gorm:"type:varchar(8);not null;default:''" json:"currency,omitempty"`
	MarketSecDes string    `gorm:"type:varchar(16);not null;default:''" json:"market_sec_des,omitempty"`
	ClientIP     string    `gorm:"type:varchar(64);not null;default:''" json:"client_ip,omitempty"`
}

// NewJobLog captures job together with the raw input it was built from.
func NewJobLog(source JobSource, input, clientIP string, job mapping.MappingJob) JobLog {
	return JobLog{
		Source:       source,
		Input:        input,
		IDType:       string(job.IDType),
		IDValue:      job.IDValue,
		ExchCode:     job.ExchangeCode,
		MicCode:      job.MICCode,
		Currency:     job.Currency,
		MarketSecDes: job.MarketSectorDescription,
		ClientIP:     clientIP,
	}
}

// Job rebuilds the mapping job recorded by the entry.
func (l JobLog) Job() mapping.MappingJob {
	job := mapping.FromExplicit(l.IDType, l.IDValue).
		WithCurrency(l.Currency).
		WithMarketSectorDescription(l.MarketSecDes)
	if l.MicCode != "" {
		return job.WithMICCode(l.MicCode)
	}
	return job.WithExchangeCode(l.ExchCode)
}
