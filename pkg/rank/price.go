package rank

import (
	"regexp"
	"strconv"
)

// Bare 2-5 digit numbers in a query are read as a target price ("zipper 199").
var priceRe = regexp.MustCompile(`\b(\d{2,5})\b`)

// ExtractPriceTarget pulls a price target out of free text. Returns false when
// the query mentions no number.
func ExtractPriceTarget(text string) (float64, bool) {
	match := priceRe.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
