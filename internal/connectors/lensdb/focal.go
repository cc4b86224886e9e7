package lensdb

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// ParseFocal reads the focal range from the first name token containing
// "mm" that parses as a length or a range. "24-70mm" gives (24, 70);
// "50mm" gives (50, 50). Words such as "Summilux-SL" are skipped.
// Fractional lengths are rounded to the nearest millimetre.
func ParseFocal(name string) (minMM, maxMM int, err error) {
	detail := "no focal token"
	for _, token := range strings.Fields(name) {
		if !strings.Contains(token, "mm") {
			continue
		}
		minMM, maxMM, detail = parseFocalToken(token)
		if detail == "" {
			return minMM, maxMM, nil
		}
	}
	return 0, 0, focalGap(name, detail)
}

// parseFocalToken returns the range in token, or a non-empty detail
// describing why it is not a focal length.
func parseFocalToken(token string) (minMM, maxMM int, detail string) {
	value := strings.Replace(token, "mm", "", 1)
	value = strings.ReplaceAll(value, "–", "-")
	value = strings.TrimFunc(value, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})

	lo, hi, isRange := strings.Cut(value, "-")
	minMM, err := parseLength(lo)
	if err != nil {
		return 0, 0, "bad focal token " + token
	}
	if !isRange {
		return minMM, minMM, ""
	}

	maxMM, err = parseLength(hi)
	if err != nil || maxMM < minMM {
		return 0, 0, "bad focal range " + token
	}
	return minMM, maxMM, ""
}

func parseLength(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, strconv.ErrRange
	}
	return int(math.Round(f)), nil
}

func focalGap(name, detail string) error {
	return &domain.ExtractionGapError{Lens: name, Field: "focal", Detail: detail}
}
