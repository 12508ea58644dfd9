package mapping

// Spec describes one job as either free text (Query) or an explicit
// IDType/IDValue pair, plus modifiers applied on top. It is the shape used by
// job files and HTTP request bodies.
type Spec struct {
	Query        string `json:"query,omitempty" yaml:"query,omitempty"`
	IDType       string `json:"idType,omitempty" yaml:"idType,omitempty"`
	IDValue      string `json:"idValue,omitempty" yaml:"idValue,omitempty"`
	ExchCode     string `json:"exchCode,omitempty" yaml:"exchCode,omitempty"`
	MicCode      string `json:"micCode,omitempty" yaml:"micCode,omitempty"`
	Currency     string `json:"currency,omitempty" yaml:"currency,omitempty"`
	MarketSecDes string `json:"marketSecDes,omitempty" yaml:"marketSecDes,omitempty"`
}

// Build returns the job described by s. A non-empty Query is classified and
// IDType/IDValue are ignored. Modifiers override whatever Classify extracted;
// when both ExchCode and MicCode are set the MIC code is applied last and wins.
func (s Spec) Build() MappingJob {
	var job MappingJob
	if s.Query != "" {
		job = Classify(s.Query)
	} else {
		job = FromExplicit(s.IDType, s.IDValue)
	}

	if s.ExchCode != "" {
		job = job.WithExchangeCode(s.ExchCode)
	}
	if s.MicCode != "" {
		job = job.WithMICCode(s.MicCode)
	}
	if s.Currency != "" {
		job = job.WithCurrency(s.Currency)
	}
	if s.MarketSecDes != "" {
		job = job.WithMarketSectorDescription(s.MarketSecDes)
	}
	return job
}
