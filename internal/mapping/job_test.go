package mapping

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromExplicit(t *testing.T) {
	got := FromExplicit("ID_SEDOL", "2005973").WithMICCode("EDGX").WithCurrency("USD")
	want := MappingJob{IDType: IDTypeSEDOL, IDValue: "2005973", MICCode: "EDGX", Currency: "USD"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFromExplicit_AcceptsUnknownIDType(t *testing.T) {
	got := FromExplicit("NOT_A_TYPE", " raw value ")
	if got.IDType != "NOT_A_TYPE" || got.IDValue != " raw value " {
		t.Errorf("expected verbatim fields, got %+v", got)
	}
	if IsKnownIDType(got.IDType) {
		t.Error("expected NOT_A_TYPE to be unknown")
	}
}

func TestMutualExclusion(t *testing.T) {
	t.Run("mic_after_exchange", func(t *testing.T) {
		job := FromExplicit("TICKER", "IBM").WithExchangeCode("US").WithMICCode("XNYS")
		if job.ExchangeCode != "" {
			t.Errorf("expected exchange code cleared, got %q", job.ExchangeCode)
		}
		if job.MICCode != "XNYS" {
			t.Errorf("expected mic code XNYS, got %q", job.MICCode)
		}
	})

	t.Run("exchange_after_mic", func(t *testing.T) {
		job := FromExplicit("TICKER", "IBM").WithMICCode("XNYS").WithExchangeCode("US")
		if job.MICCode != "" {
			t.Errorf("expected mic code cleared, got %q", job.MICCode)
		}
		if job.ExchangeCode != "US" {
			t.Errorf("expected exchange code US, got %q", job.ExchangeCode)
		}
	})

	t.Run("mic_on_classified_job", func(t *testing.T) {
		job := Classify("MSFT US Equity").WithMICCode("XNAS")
		if job.ExchangeCode != "" {
			t.Errorf("expected exchange code cleared, got %q", job.ExchangeCode)
		}
		if job.MarketSectorDescription != "Equity" {
			t.Errorf("expected market sector kept, got %q", job.MarketSectorDescription)
		}
	})
}

func TestWithMethods_DoNotMutateReceiver(t *testing.T) {
	base := FromExplicit("TICKER", "MSFT").WithExchangeCode("US")
	_ = base.WithMICCode("XNAS")
	_ = base.WithCurrency("EUR")
	_ = base.WithMarketSectorDescription("Corp")

	want := MappingJob{IDType: IDTypeTicker, IDValue: "MSFT", ExchangeCode: "US"}
	if diff := cmp.Diff(want, base); diff != "" {
		t.Errorf("receiver changed (-want +got):\n%s", diff)
	}
}

func TestWithCurrency_LeavesVenueAlone(t *testing.T) {
	job := FromExplicit("TICKER", "MSFT").WithExchangeCode("US").WithCurrency("USD")
	if job.ExchangeCode != "US" || job.Currency != "USD" {
		t.Errorf("unexpected job %+v", job)
	}
}

func TestWithMarketSectorDescription_Overwrites(t *testing.T) {
	job := Classify("MSFT US Equity").WithMarketSectorDescription("Pfd")
	if job.MarketSectorDescription != "Pfd" {
		t.Errorf("expected Pfd, got %q", job.MarketSectorDescription)
	}
	if job.IDValue != "MSFT" || job.ExchangeCode != "US" {
		t.Errorf("unexpected job %+v", job)
	}
}

func TestMappingJob_JSON(t *testing.T) {
	tests := []struct {
		name string
		job  MappingJob
		want string
	}{
		{
			name: "omits_empty_optionals",
			job:  Classify("US4592001014"),
			want: `{"idType":"ID_ISIN","idValue":"US4592001014"}`,
		},
		{
			name: "ticker_with_exchange_and_sector",
			job:  Classify("MSFT US Equity"),
			want: `{"idType":"TICKER","idValue":"MSFT","exchCode":"US","marketSecDes":"Equity"}`,
		},
		{
			name: "mic_and_currency",
			job:  FromExplicit("ID_SEDOL", "2005973").WithMICCode("EDGX").WithCurrency("USD"),
			want: `{"idType":"ID_SEDOL","idValue":"2005973","micCode":"EDGX","currency":"USD"}`,
		},
		{
			name: "empty_job_keeps_required_fields",
			job:  Classify(""),
			want: `{"idType":"TICKER","idValue":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.job)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, data)
			}
		})
	}
}

func TestDescriptor(t *testing.T) {
	tests := []struct {
		job  MappingJob
		want string
	}{
		{Classify("MSFT US Equity"), "MSFT US Equity"},
		{Classify("  IBM   UN    Equity  "), "IBM UN Equity"},
		{Classify("US4592001014"), "US4592001014"},
		{FromExplicit("TICKER", "VOD").WithMarketSectorDescription("Equity"), "VOD Equity"},
		{MappingJob{}, ""},
	}
	for _, tt := range tests {
		if got := tt.job.Descriptor(); got != tt.want {
			t.Errorf("Descriptor() of %+v = %q, want %q", tt.job, got, tt.want)
		}
	}
}

func TestDescriptor_RoundTrip(t *testing.T) {
	inputs := []string{"MSFT US Equity", "BBG000BLNNH6 Equity", "T 2.5 05/15/24 Govt", "VOD LN", "US4592001014"}
	for _, in := range inputs {
		job := Classify(in)
		if diff := cmp.Diff(job, Classify(job.Descriptor())); diff != "" {
			t.Errorf("%q: round trip mismatch (-want +got):\n%s", in, diff)
		}
	}
}
