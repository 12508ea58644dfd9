// Package validator registers figimap's custom validation tags and provides
// the opt-in strict format check for mapping jobs.
package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"figimap/internal/mapping"
)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = map[string]bool{
	"AED": true, "AFN": true, "ALL": true, "AMD": true, "ANG": true,
	"AOA": true, "ARS": true, "AUD": true, "AWG": true, "AZN": true,
	"BAM": true, "BBD": true, "BDT": true, "BGN": true, "BHD": true,
	"BIF": true, "BMD": true, "BND": true, "BOB": true, "BRL": true,
	"BSD": true, "BTN": true, "BWP": true, "BYN": true, "BZD": true,
	"CAD": true, "CDF": true, "CHF": true, "CLP": true, "CNY": true,
	"COP": true, "CRC": true, "CUP": true, "CVE": true, "CZK": true,
	"DJF": true, "DKK": true, "DOP": true, "DZD": true, "EGP": true,
	"ERN": true, "ETB": true, "EUR": true, "FJD": true, "FKP": true,
	"GBP": true, "GEL": true, "GHS": true, "GIP": true, "GMD": true,
	"GNF": true, "GTQ": true, "GYD": true, "HKD": true, "HNL": true,
	"HRK": true, "HTG": true, "HUF": true, "IDR": true, "ILS": true,
	"INR": true, "IQD": true, "IRR": true, "ISK": true, "JMD": true,
	"JOD": true, "JPY": true, "KES": true, "KGS": true, "KHR": true,
	"KMF": true, "KPW": true, "KRW": true, "KWD": true, "KYD": true,
	"KZT": true, "LAK": true, "LBP": true, "LKR": true, "LRD": true,
	"LSL": true, "LYD": true, "MAD": true, "MDL": true, "MGA": true,
	"MKD": true, "MMK": true, "MNT": true, "MOP": true, "MRU": true,
	"MUR": true, "MVR": true, "MWK": true, "MXN": true, "MYR": true,
	"MZN": true, "NAD": true, "NGN": true, "NIO": true, "NOK": true,
	"NPR": true, "NZD": true, "OMR": true, "PAB": true, "PEN": true,
	"PGK": true, "PHP": true, "PKR": true, "PLN": true, "PYG": true,
	"QAR": true, "RON": true, "RSD": true, "RUB": true, "RWF": true,
	"SAR": true, "SBD": true, "SCR": true, "SDG": true, "SEK": true,
	"SGD": true, "SHP": true, "SLE": true, "SOS": true, "SRD": true,
	"SSP": true, "STN": true, "SVC": true, "SYP": true, "SZL": true,
	"THB": true, "TJS": true, "TMT": true, "TND": true, "TOP": true,
	"TRY": true, "TTD": true, "TWD": true, "TZS": true, "UAH": true,
	"UGX": true, "USD": true, "UYU": true, "UZS": true, "VES": true,
	"VND": true, "VUV": true, "WST": true, "XAF": true, "XCD": true,
	"XOF": true, "XPF": true, "YER": true, "ZAR": true, "ZMW": true,
	"ZWL": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerTags(v)
	}
}

func registerTags(v *validator.Validate) {
	_ = v.RegisterValidation("iso4217", validateISO4217)
	_ = v.RegisterValidation("exch_code", validateExchCode)
	_ = v.RegisterValidation("mic_code", validateMICCode)
	_ = v.RegisterValidation("market_sector", validateMarketSector)
	_ = v.RegisterValidation("id_type", validateIDType)
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateExchCode(fl validator.FieldLevel) bool {
	return mapping.IsExchangeCode(fl.Field().String())
}

func validateMarketSector(fl validator.FieldLevel) bool {
	return mapping.IsMarketSector(fl.Field().String())
}

func validateIDType(fl validator.FieldLevel) bool {
	return mapping.IsKnownIDType(mapping.IDType(fl.Field().String()))
}

// validateMICCode accepts four uppercase letters or digits (ISO 10383).
func validateMICCode(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isUpperAlnum(s[i]) {
			return false
		}
	}
	return true
}

// strictJob mirrors mapping.MappingJob with the tags checked in strict mode.
type strictJob struct {
	IDType       string `validate:"required,id_type"`
	IDValue      string `validate:"required"`
	ExchCode     string `validate:"omitempty,exch_code,excluded_with=MicCode"`
	MicCode      string `validate:"omitempty,mic_code"`
	Currency     string `validate:"omitempty,iso4217"`
	MarketSecDes string `validate:"omitempty,market_sector"`
}

var (
	strict     *validator.Validate
	strictOnce sync.Once
)

func strictValidator() *validator.Validate {
	strictOnce.Do(func() {
		strict = validator.New(validator.WithRequiredStructEnabled())
		registerTags(strict)
		strict.RegisterStructValidation(validateIDValueFormat, strictJob{})
	})
	return strict
}

// validateIDValueFormat checks identifier values whose format is fixed by
// their id type.
func validateIDValueFormat(sl validator.StructLevel) {
	job := sl.Current().Interface().(strictJob)
	switch mapping.IDType(job.IDType) {
	case mapping.IDTypeISIN:
		if !IsISIN(job.IDValue) {
			sl.ReportError(job.IDValue, "IDValue", "IDValue", "isin", "")
		}
	case mapping.IDTypeBBGlobal, mapping.IDTypeCompositeBBGlobal, mapping.IDTypeBBGlobalShareClassLevel:
		if !IsFIGI(job.IDValue) {
			sl.ReportError(job.IDValue, "IDValue", "IDValue", "figi", "")
		}
	}
}

// ValidateJob runs the strict format checks against job. Building a job never
// validates; callers opt in to this check.
func ValidateJob(job mapping.MappingJob) error {
	return strictValidator().Struct(strictJob{
		IDType:       string(job.IDType),
		IDValue:      job.IDValue,
		ExchCode:     job.ExchangeCode,
		MicCode:      job.MICCode,
		Currency:     job.Currency,
		MarketSecDes: job.MarketSectorDescription,
	})
}

// Describe renders validation errors from ValidateJob as a short message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

// IsISIN reports whether s has the ISO 6166 layout: two uppercase letters,
// nine uppercase alphanumerics and a check digit. The checksum is not verified.
func IsISIN(s string) bool {
	if len(s) != 12 {
		return false
	}
	for i := 0; i < 2; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	for i := 2; i < 11; i++ {
		if !isUpperAlnum(s[i]) {
			return false
		}
	}
	return s[11] >= '0' && s[11] <= '9'
}

// IsFIGI reports whether s is "BBG" followed by nine uppercase alphanumerics.
func IsFIGI(s string) bool {
	if len(s) != 12 || !strings.HasPrefix(s, "BBG") {
		return false
	}
	for i := 3; i < len(s); i++ {
		if !isUpperAlnum(s[i]) {
			return false
		}
	}
	return true
}

func isUpperAlnum(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
