package mapping

import "strings"

// Classify parses a free-text descriptor such as "MSFT US Equity" into a
// mapping job.
//
// The last token that is a market sector becomes MarketSectorDescription and
// the last remaining token that is an exchange code becomes ExchangeCode. Each
// is removed once; whatever is left, joined by single spaces, is the IDValue.
// The IDValue is typed ID_BB_GLOBAL, then ID_ISIN, then TICKER, first match
// wins. Classify never fails: empty or unrecognizable input yields a TICKER job.
func Classify(raw string) MappingJob {
	tokens := strings.Fields(raw)

	var job MappingJob
	job.MarketSectorDescription, tokens = extractLast(tokens, IsMarketSector)
	job.ExchangeCode, tokens = extractLast(tokens, IsExchangeCode)
	job.IDValue = strings.Join(tokens, " ")
	job.IDType = inferIDType(job.IDValue)
	return job
}

// extractLast removes the token closest to the end that satisfies match and
// returns it with the remaining tokens. Only that one token is removed.
func extractLast(tokens []string, match func(string) bool) (string, []string) {
	for i := len(tokens) - 1; i >= 0; i-- {
		if !match(tokens[i]) {
			continue
		}
		rest := make([]string, 0, len(tokens)-1)
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+1:]...)
		return tokens[i], rest
	}
	return "", tokens
}

func inferIDType(value string) IDType {
	switch {
	case value == "":
		return IDTypeTicker
	case isGlobalID(value):
		return IDTypeBBGlobal
	case isISINShape(value):
		return IDTypeISIN
	default:
		return IDTypeTicker
	}
}

// isGlobalID matches "BBG" followed by exactly nine word characters.
func isGlobalID(s string) bool {
	if len(s) != 12 || !strings.HasPrefix(s, "BBG") {
		return false
	}
	return allWordChars(s[3:])
}

// isISINShape matches two ASCII letters followed by exactly ten word
// characters. Check digits are not verified.
func isISINShape(s string) bool {
	if len(s) != 12 || !isLetter(s[0]) || !isLetter(s[1]) {
		return false
	}
	return allWordChars(s[2:])
}

func allWordChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isLetter(c) || ('0' <= c && c <= '9') || c == '_'
}
