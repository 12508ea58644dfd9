package mapping

import "sort"

// exchangeCodes is the set of two-character exchange codes recognized when
// classifying free-text descriptors.
var exchangeCodes = newSet(
	"A0", "AB", "AG", "AI", "AL", "AR", "AU", "AV", "AY", "AZ", "B3", "BA", "BB", "BC", "BD", "BG",
	"BH", "BI", "BK", "BM", "BQ", "BT", "BU", "BY", "BZ", "C1", "CB", "CH", "CI", "CN", "CP", "CR",
	"CY", "CZ", "DC", "DE", "DU", "DX", "EB", "ED", "EK", "EL", "EO", "ES", "ET", "EU", "EY", "FH",
	"FP", "FS", "GA", "GG", "GL", "GN", "GR", "GU", "H1", "HB", "HK", "HM", "HO", "IA", "ID", "IE",
	"IJ", "IM", "IN", "IQ", "IR", "IT", "IX", "JA", "JP", "JR", "JY", "K3", "KB", "KF", "KH", "KK",
	"KN", "KS", "KY", "KZ", "L3", "LB", "LD", "LH", "LI", "LN", "LR", "LS", "LX", "LY", "MB", "MC",
	"ME", "MK", "MM", "MO", "MP", "MQ", "MS", "MT", "MV", "MW", "MX", "MZ", "NA", "NC", "NK", "NL",
	"NO", "NQ", "NR", "NW", "NX", "NZ", "OM", "PA", "PB", "PE", "PG", "PL", "PM", "PN", "PO", "PP",
	"PS", "PW", "PX", "PZ", "QD", "QM", "QT", "QX", "RB", "RM", "RO", "RU", "RW", "S1", "S2", "SD",
	"SG", "SJ", "SK", "SL", "SM", "SP", "SS", "SV", "SW", "SY", "SZ", "TB", "TE", "TH", "TI", "TL",
	"TP", "TQ", "TT", "TU", "TZ", "UG", "UH", "US", "UY", "UZ", "VB", "VC", "VN", "VR", "VX", "ZH",
	"ZL", "ZS", "ZU",
)

// Market sectors ("yellow keys").
const (
	SectorGovt   = "Govt"
	SectorCorp   = "Corp"
	SectorMtge   = "Mtge"
	SectorMMkt   = "M-Mkt"
	SectorMuni   = "Muni"
	SectorPfd    = "Pfd"
	SectorEquity = "Equity"
	SectorComdty = "Comdty"
	SectorCurncy = "Curncy"
	SectorIndex  = "Index"
)

var marketSectors = newSet(
	SectorGovt, SectorCorp, SectorMtge, SectorMMkt, SectorMuni,
	SectorPfd, SectorEquity, SectorComdty, SectorCurncy, SectorIndex,
)

func newSet(values ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func sortedKeys(s map[string]struct{}) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsExchangeCode reports whether code is a known exchange code.
// Matching is case-sensitive.
func IsExchangeCode(code string) bool {
	_, ok := exchangeCodes[code]
	return ok
}

// IsMarketSector reports whether desc is one of the market sector yellow keys.
// Matching is case-sensitive.
func IsMarketSector(desc string) bool {
	_, ok := marketSectors[desc]
	return ok
}

// ExchangeCodes returns a sorted copy of the known exchange codes.
func ExchangeCodes() []string { return sortedKeys(exchangeCodes) }

// MarketSectors returns a sorted copy of the market sector yellow keys.
func MarketSectors() []string { return sortedKeys(marketSectors) }

var idTypes = newSet(
	string(IDTypeTicker), string(IDTypeISIN), string(IDTypeBBGlobal),
	string(IDTypeBBUnique), string(IDTypeSEDOL), string(IDTypeCommon),
	string(IDTypeWertpapier), string(IDTypeCUSIP), string(IDTypeCINS),
	string(IDTypeBB), string(IDTypeItaly), string(IDTypeExchSymbol),
	string(IDTypeFullExchangeSymbol), string(IDTypeCompositeBBGlobal),
	string(IDTypeBBGlobalShareClassLevel), string(IDTypeBBSecNumDes),
	string(IDTypeCUSIP8Chr), string(IDTypeOCCSymbol), string(IDTypeUniqueIDFutOpt),
	string(IDTypeOPRASymbol), string(IDTypeTradingSystemIdentifier),
)

// IsKnownIDType reports whether t is an identifier type the mapping API accepts.
func IsKnownIDType(t IDType) bool {
	_, ok := idTypes[string(t)]
	return ok
}
