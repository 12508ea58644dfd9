// Package mapping builds OpenFIGI mapping jobs from free-text security
// descriptors or from explicit identifier pairs.
package mapping

import "strings"

// IDType is an OpenFIGI identifier type.
type IDType string

// Identifier types inferred by Classify.
const (
	IDTypeTicker   IDType = "TICKER"
	IDTypeISIN     IDType = "ID_ISIN"
	IDTypeBBGlobal IDType = "ID_BB_GLOBAL"
)

// Other identifier types accepted by the mapping API. They are never
// inferred; callers supply them through FromExplicit.
const (
	IDTypeBBUnique                IDType = "ID_BB_UNIQUE"
	IDTypeSEDOL                   IDType = "ID_SEDOL"
	IDTypeCommon                  IDType = "ID_COMMON"
	IDTypeWertpapier              IDType = "ID_WERTPAPIER"
	IDTypeCUSIP                   IDType = "ID_CUSIP"
	IDTypeCINS                    IDType = "ID_CINS"
	IDTypeBB                      IDType = "ID_BB"
	IDTypeItaly                   IDType = "ID_ITALY"
	IDTypeExchSymbol              IDType = "ID_EXCH_SYMBOL"
	IDTypeFullExchangeSymbol      IDType = "ID_FULL_EXCHANGE_SYMBOL"
	IDTypeCompositeBBGlobal       IDType = "COMPOSITE_ID_BB_GLOBAL"
	IDTypeBBGlobalShareClassLevel IDType = "ID_BB_GLOBAL_SHARE_CLASS_LEVEL"
	IDTypeBBSecNumDes             IDType = "ID_BB_SEC_NUM_DES"
	IDTypeCUSIP8Chr               IDType = "ID_CUSIP_8_CHR"
	IDTypeOCCSymbol               IDType = "OCC_SYMBOL"
	IDTypeUniqueIDFutOpt          IDType = "UNIQUE_ID_FUT_OPT"
	IDTypeOPRASymbol              IDType = "OPRA_SYMBOL"
	IDTypeTradingSystemIdentifier IDType = "TRADING_SYSTEM_IDENTIFIER"
)

// MappingJob is one entry of a mapping request. It is a value type: the With
// methods return a modified copy and never touch the receiver, so a job handed
// to a serializer cannot change underneath it.
//
// Empty optional fields are omitted when the job is marshaled to JSON.
type MappingJob struct {
	IDType                  IDType `json:"idType" yaml:"idType"`
	IDValue                 string `json:"idValue" yaml:"idValue"`
	ExchangeCode            string `json:"exchCode,omitempty" yaml:"exchCode,omitempty"`
	MICCode                 string `json:"micCode,omitempty" yaml:"micCode,omitempty"`
	Currency                string `json:"currency,omitempty" yaml:"currency,omitempty"`
	MarketSectorDescription string `json:"marketSecDes,omitempty" yaml:"marketSecDes,omitempty"`
}

// FromExplicit returns a job carrying idType and idValue verbatim. No
// validation is performed; unknown id types are left for the mapping API to
// reject.
func FromExplicit(idType, idValue string) MappingJob {
	return MappingJob{IDType: IDType(idType), IDValue: idValue}
}

// WithExchangeCode sets the exchange code and clears the MIC code.
func (j MappingJob) WithExchangeCode(code string) MappingJob {
	j.ExchangeCode = code
	j.MICCode = ""
	return j
}

// WithMICCode sets the market identifier code and clears the exchange code.
func (j MappingJob) WithMICCode(code string) MappingJob {
	j.MICCode = code
	j.ExchangeCode = ""
	return j
}

// WithCurrency sets the currency.
func (j MappingJob) WithCurrency(code string) MappingJob {
	j.Currency = code
	return j
}

// WithMarketSectorDescription overwrites the market sector, including one
// extracted by Classify.
func (j MappingJob) WithMarketSectorDescription(desc string) MappingJob {
	j.MarketSectorDescription = desc
	return j
}

// Descriptor composes the Bloomberg-style descriptor for the job,
// "<idValue> <exchCode> <marketSecDes>", skipping empty parts.
func (j MappingJob) Descriptor() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{j.IDValue, j.ExchangeCode, j.MarketSectorDescription} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
